package repositories

import (
	"context"

	"github.com/ashishk-dev/renteasy-backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PropertyRepository struct {
	coll *mongo.Collection
}

func NewPropertyRepository(coll *mongo.Collection) *PropertyRepository {
	return &PropertyRepository{coll: coll}
}

func (r *PropertyRepository) Insert(ctx context.Context, property *models.Property) error {
	_, err := r.coll.InsertOne(ctx, property)
	return err
}

// FindByType returns all properties of the given type, newest first.
func (r *PropertyRepository) FindByType(ctx context.Context, propertyType string) ([]models.Property, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.coll.Find(ctx, bson.M{"type": propertyType}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// DeleteByID removes the property with the given hex id. A malformed id is
// treated the same as an unknown one: ErrNotFound.
func (r *PropertyRepository) DeleteByID(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
