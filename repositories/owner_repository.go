package repositories

import (
	"context"
	"errors"

	"github.com/ashishk-dev/renteasy-backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned by every repository when a lookup matches no
// document, so callers never have to know about driver sentinels.
var ErrNotFound = errors.New("record not found")

type OwnerRepository struct {
	coll *mongo.Collection
}

func NewOwnerRepository(coll *mongo.Collection) *OwnerRepository {
	return &OwnerRepository{coll: coll}
}

func (r *OwnerRepository) FindByPhone(ctx context.Context, phone string) (*models.Owner, error) {
	var owner models.Owner
	err := r.coll.FindOne(ctx, bson.M{"phone": phone}).Decode(&owner)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &owner, nil
}

func (r *OwnerRepository) Insert(ctx context.Context, owner *models.Owner) error {
	_, err := r.coll.InsertOne(ctx, owner)
	return err
}
