package store

import (
	"context"
	"errors"

	"github.com/eventlyhq/eventbackend/models"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var (
	ErrNotFound  = errors.New("store: not found")
	ErrDuplicate = errors.New("store: duplicate key")
)

// UserStore holds user and admin records in a single collection,
// discriminated by role.
type UserStore interface {
	Insert(ctx context.Context, user *models.User) (bson.ObjectID, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error)
	FindByEmailAndRole(ctx context.Context, email string, role models.Role) (*models.User, error)
}

// EventStore holds event listings. Events are insert-only; listings are
// always returned newest first.
type EventStore interface {
	Insert(ctx context.Context, event *models.Event) (bson.ObjectID, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Event, error)
	All(ctx context.Context) ([]models.Event, error)
	ByAdmin(ctx context.Context, adminID bson.ObjectID) ([]models.Event, error)
}
