package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CompletedOrder is the append-only archive record of a fulfilled order.
// Never mutated after insertion.
type CompletedOrder struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Order_id       string             `bson:"order_id" json:"order_id"`
	CustomerName   string             `bson:"customer_name" json:"customer_name"`
	TotalPrice     float64            `bson:"total_price" json:"total_price"`
	Order_Date     time.Time          `bson:"order_date" json:"order_date"`
	CompletionTime time.Time          `bson:"completion_time" json:"completion_time"`
	WasLate        int                `bson:"was_late" json:"was_late"`
}

type CompletedOrderDetail struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Order_id     string             `bson:"order_id" json:"order_id"`
	ItemName     string             `bson:"item_name" json:"item_name"`
	Quantity     int                `bson:"quantity" json:"quantity"`
	PricePerItem float64            `bson:"price_per_item" json:"price_per_item"`
}
