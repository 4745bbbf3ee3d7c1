package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CanteenStatusKey = "canteen_open_status"
	CanteenOpen      = "OPEN"
	CanteenClosed    = "CLOSED"
)

// CanteenStatus is a singleton flag document keyed by CanteenStatusKey.
type CanteenStatus struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Key   string             `bson:"key" json:"key"`
	Value string             `bson:"value" json:"value"`
}
