package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order status values. Completed orders are eventually archived and deleted
// from the live collection; there is no transition back to Pending.
const (
	StatusPending   = "Pending"
	StatusCancelled = "Cancelled"
	StatusCompleted = "Completed"
)

type Order struct {
	ID                      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Order_id                string             `bson:"order_id" json:"order_id"`
	CustomerName            string             `bson:"customer_name" json:"customer_name" validate:"required"`
	TotalPrice              float64            `bson:"total_price" json:"total_price"`
	OrderStatus             string             `bson:"order_status" json:"order_status"`
	Order_Date              time.Time          `bson:"order_date" json:"order_date"`
	EstimatedCompletionTime time.Time          `bson:"estimated_completion_time" json:"estimated_completion_time"`
}
