package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Owner is a property-listing publisher account. Passwords are stored
// verbatim for compatibility with the existing dataset.
type Owner struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Phone    string             `bson:"phone" json:"phone"`
	Password string             `bson:"password" json:"password"`
}
