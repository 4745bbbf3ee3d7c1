package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderDetail is one line item of a live order. Item name and price are
// snapshotted at order time so later menu edits do not rewrite history.
type OrderDetail struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Order_id     string             `bson:"order_id" json:"order_id" validate:"required"`
	Item_id      string             `bson:"item_id" json:"item_id"`
	ItemName     string             `bson:"item_name" json:"item_name"`
	Quantity     int                `bson:"quantity" json:"quantity" validate:"required,gte=1"`
	PricePerItem float64            `bson:"price_per_item" json:"price_per_item"`
}
