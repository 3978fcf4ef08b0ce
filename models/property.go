package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Property is a single rental/sale listing. OwnerName and Mobile are
// free-text contact details, not references into the owners collection.
// ImageURL keeps the durable media URLs in upload order.
type Property struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type        string             `bson:"type" json:"type"`
	OwnerName   string             `bson:"ownerName" json:"ownerName"`
	Mobile      string             `bson:"mobile" json:"mobile"`
	Location    string             `bson:"location" json:"location"`
	Price       float64            `bson:"price" json:"price"`
	Rent        float64            `bson:"rent" json:"rent"`
	Description string             `bson:"description" json:"description"`
	Floor       string             `bson:"floor" json:"floor"`
	Kitchen     string             `bson:"kitchen" json:"kitchen"`
	Bedroom     string             `bson:"bedroom" json:"bedroom"`
	Hall        string             `bson:"hall" json:"hall"`
	Garden      string             `bson:"garden" json:"garden"`
	WaterSupply string             `bson:"waterSupply" json:"waterSupply"`
	ImageURL    []string           `bson:"imageUrl" json:"imageUrl"`
	MapLink     string             `bson:"mapLink" json:"mapLink"`
	Date        time.Time          `bson:"date" json:"date"`
}
