package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a renter account. Users live in their own collection, so a phone
// number may exist both here and in owners without conflict.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Phone    string             `bson:"phone" json:"phone"`
	Password string             `bson:"password" json:"password"`
}
