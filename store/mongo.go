package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventlyhq/eventbackend/models"
	"github.com/eventlyhq/eventbackend/utils"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type MongoUserStore struct {
	col *mongo.Collection
}

func NewMongoUserStore(col *mongo.Collection) *MongoUserStore {
	return &MongoUserStore{col: col}
}

func (s *MongoUserStore) Insert(ctx context.Context, user *models.User) (bson.ObjectID, error) {
	res, err := s.col.InsertOne(ctx, user)
	if err != nil {
		if utils.IsDuplicateKey(err) {
			return bson.ObjectID{}, ErrDuplicate
		}
		return bson.ObjectID{}, fmt.Errorf("insert user: %w", err)
	}
	id, _ := res.InsertedID.(bson.ObjectID)
	return id, nil
}

func (s *MongoUserStore) FindByID(ctx context.Context, id bson.ObjectID) (*models.User, error) {
	var user models.User
	if err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &user, nil
}

func (s *MongoUserStore) FindByEmailAndRole(ctx context.Context, email string, role models.Role) (*models.User, error) {
	var user models.User
	if err := s.col.FindOne(ctx, bson.M{"email": email, "role": role}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

type MongoEventStore struct {
	col *mongo.Collection
}

func NewMongoEventStore(col *mongo.Collection) *MongoEventStore {
	return &MongoEventStore{col: col}
}

func (s *MongoEventStore) Insert(ctx context.Context, event *models.Event) (bson.ObjectID, error) {
	res, err := s.col.InsertOne(ctx, event)
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("insert event: %w", err)
	}
	id, _ := res.InsertedID.(bson.ObjectID)
	return id, nil
}

func (s *MongoEventStore) FindByID(ctx context.Context, id bson.ObjectID) (*models.Event, error) {
	var event models.Event
	if err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&event); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find event by id: %w", err)
	}
	return &event, nil
}

func (s *MongoEventStore) All(ctx context.Context) ([]models.Event, error) {
	return s.list(ctx, bson.M{})
}

func (s *MongoEventStore) ByAdmin(ctx context.Context, adminID bson.ObjectID) ([]models.Event, error) {
	return s.list(ctx, bson.M{"adminId": adminID})
}

func (s *MongoEventStore) list(ctx context.Context, filter bson.M) ([]models.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find events: %w", err)
	}
	defer cursor.Close(ctx)

	events := make([]models.Event, 0)
	for cursor.Next(ctx) {
		var event models.Event
		if err := cursor.Decode(&event); err != nil {
			return nil, fmt.Errorf("decode event: %w", err)
		}
		events = append(events, event)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}
