package store

import (
	"context"
	"sort"
	"sync"

	"github.com/eventlyhq/eventbackend/models"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// MemoryUserStore is an in-memory UserStore with the same uniqueness
// semantics as the mongo index on users.email. Used by tests.
type MemoryUserStore struct {
	mu    sync.Mutex
	users []models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{}
}

func (s *MemoryUserStore) Insert(_ context.Context, user *models.User) (bson.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return bson.ObjectID{}, ErrDuplicate
		}
	}
	if user.ID.IsZero() {
		user.ID = bson.NewObjectID()
	}
	s.users = append(s.users, *user)
	return user.ID, nil
}

func (s *MemoryUserStore) FindByID(_ context.Context, id bson.ObjectID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryUserStore) FindByEmailAndRole(_ context.Context, email string, role models.Role) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email && u.Role == role {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

// MemoryEventStore is an in-memory EventStore. Used by tests.
type MemoryEventStore struct {
	mu     sync.Mutex
	events []models.Event
}

func NewMemoryEventStore() *MemoryEventStore {
	return &MemoryEventStore{}
}

func (s *MemoryEventStore) Insert(_ context.Context, event *models.Event) (bson.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if event.ID.IsZero() {
		event.ID = bson.NewObjectID()
	}
	s.events = append(s.events, *event)
	return event.ID, nil
}

func (s *MemoryEventStore) FindByID(_ context.Context, id bson.ObjectID) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.events {
		if e.ID == id {
			event := e
			return &event, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryEventStore) All(_ context.Context) ([]models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedByCreatedAtDesc(s.events, func(models.Event) bool { return true }), nil
}

func (s *MemoryEventStore) ByAdmin(_ context.Context, adminID bson.ObjectID) ([]models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedByCreatedAtDesc(s.events, func(e models.Event) bool { return e.AdminID == adminID }), nil
}

func sortedByCreatedAtDesc(events []models.Event, keep func(models.Event) bool) []models.Event {
	out := make([]models.Event, 0)
	for _, e := range events {
		if keep(e) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
