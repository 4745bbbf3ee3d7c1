package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	database "github.com/02priyeshraj/Canteen_Management_Backend/config"
	"github.com/02priyeshraj/Canteen_Management_Backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var canteenStatusCollection *mongo.Collection = database.OpenCollection(database.Client, "canteen_status")

// fetchCanteenStatus reads the singleton flag, defaulting to CLOSED when unset
func fetchCanteenStatus(ctx context.Context) string {
	var status models.CanteenStatus
	err := canteenStatusCollection.FindOne(ctx, bson.M{"key": models.CanteenStatusKey}).Decode(&status)
	if err != nil {
		return models.CanteenClosed
	}
	return status.Value
}

// GetCanteenStatus returns the OPEN/CLOSED flag
func GetCanteenStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":        true,
		"canteen_status": fetchCanteenStatus(ctx),
	})
}

// UpdateCanteenStatus sets the flag to OPEN or CLOSED
func UpdateCanteenStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var req struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if req.Value != models.CanteenOpen && req.Value != models.CanteenClosed {
		http.Error(w, `{"success": false, "message": "Status must be OPEN or CLOSED"}`, http.StatusBadRequest)
		return
	}

	filter := bson.M{"key": models.CanteenStatusKey}
	update := bson.M{"$set": bson.M{"value": req.Value}}
	opt := options.Update().SetUpsert(true)

	if _, err := canteenStatusCollection.UpdateOne(ctx, filter, update, opt); err != nil {
		http.Error(w, `{"success": false, "message": "Failed to update canteen status"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":        true,
		"message":        "Canteen status updated successfully",
		"canteen_status": req.Value,
	})
}
