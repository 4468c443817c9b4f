package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string        `bson:"name" json:"name"`
	Email        string        `bson:"email" json:"email"`
	PasswordHash string        `bson:"passwordHash" json:"-"` // never expose
	Role         Role          `bson:"role" json:"role"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
}

// Identity is the store-backed principal resolved from a validated token.
// Always populated fully from the users collection, never from token
// claims alone.
type Identity struct {
	ID    bson.ObjectID `json:"id"`
	Role  Role          `json:"role"`
	Name  string        `json:"name"`
	Email string        `json:"email"`
}
