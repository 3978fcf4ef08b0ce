package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ashishk-dev/renteasy-backend/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	OwnerCollection    *mongo.Collection
	UserCollection     *mongo.Collection
	PropertyCollection *mongo.Collection
)

func ConnectDB() (*mongo.Client, error) {
	MONGO_URI := os.Getenv("MONGO_URI")
	if MONGO_URI == "" {
		return nil, fmt.Errorf("MONGO_URI not set in environment")
	}

	clientOptions := options.Client().ApplyURI(MONGO_URI)
	client, err := mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("MongoDB ping failed: %v", err)
	}

	utils.Logger.Info("Connected to MongoDB")
	return client, nil
}

func InitCollections(client *mongo.Client) {
	dbName := os.Getenv("DB")
	OwnerCollection = client.Database(dbName).Collection("owners")
	UserCollection = client.Database(dbName).Collection("users")
	PropertyCollection = client.Database(dbName).Collection("properties")

	ensurePhoneIndexes()
}

// ensurePhoneIndexes backs the one-account-per-phone invariant at the
// database level. Handlers still pre-check for a friendly 400; this index
// closes the race between check and insert.
func ensurePhoneIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	index := mongo.IndexModel{
		Keys:    bson.D{{Key: "phone", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	for _, coll := range []*mongo.Collection{OwnerCollection, UserCollection} {
		if _, err := coll.Indexes().CreateOne(ctx, index); err != nil {
			utils.Logger.Errorf("Failed to create phone index on %s: %v", coll.Name(), err)
		}
	}
}

func CloseDBConnection(client *mongo.Client) {
	if err := client.Disconnect(context.TODO()); err != nil {
		utils.Logger.Fatalf("Error closing database connection: %v", err)
	}
	utils.Logger.Info("MongoDB connection closed")
}
