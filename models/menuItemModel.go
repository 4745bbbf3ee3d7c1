package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuItem struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Item_id         string             `bson:"item_id" json:"item_id"`
	Name            *string            `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Description     string             `bson:"description" json:"description"`
	Price           *float64           `bson:"price" json:"price" validate:"required,gte=0"`
	PreparationTime *int               `bson:"preparation_time" json:"preparation_time" validate:"required,gte=0"`
	ImageURL        string             `bson:"image_url" json:"image_url"`
	Category        string             `bson:"category" json:"category"`
	IsAvailable     bool               `bson:"is_available" json:"is_available"`
}
