package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureIndexes creates the indexes the handlers rely on. The unique index
// on users.email is what makes signup conflicts atomic: two concurrent
// signups with the same email cannot both insert.
func EnsureIndexes(ctx context.Context, usersCol, eventsCol *mongo.Collection) error {
	_, err := usersCol.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("users email index: %w", err)
	}

	// Listings always sort newest first.
	_, err = eventsCol.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("events createdAt index: %w", err)
	}

	_, err = eventsCol.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "adminId", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("events adminId index: %w", err)
	}

	return nil
}
