package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	database "github.com/02priyeshraj/Canteen_Management_Backend/config"
	"github.com/02priyeshraj/Canteen_Management_Backend/models"

	"github.com/go-playground/validator"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var menuItemCollection *mongo.Collection = database.OpenCollection(database.Client, "menu_items")
var validate = validator.New()

// GetMenu is the customer landing view: available items plus the canteen flag
func GetMenu(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	cursor, err := menuItemCollection.Find(ctx, bson.M{"is_available": true})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving menu items"}`, http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var menuItems []models.MenuItem
	if err := cursor.All(ctx, &menuItems); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding menu data"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":        true,
		"message":        "Menu retrieved successfully",
		"menu_items":     menuItems,
		"canteen_status": fetchCanteenStatus(ctx),
	})
}

// GetAllMenuItems is the admin view: every item, available or not
func GetAllMenuItems(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := menuItemCollection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving menu items"}`, http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var menuItems []models.MenuItem
	if err := cursor.All(ctx, &menuItems); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding menu data"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Menu items retrieved successfully",
		"data":    menuItems,
	})
}

// AddMenuItem creates a menu item
func AddMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var item models.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(item); validationErr != nil {
		http.Error(w, `{"success": false, "message": "`+validationErr.Error()+`"}`, http.StatusBadRequest)
		return
	}

	if item.Category == "" {
		item.Category = "General"
	}

	item.ID = primitive.NewObjectID()
	item.Item_id = item.ID.Hex()
	item.IsAvailable = true

	if _, err := menuItemCollection.InsertOne(ctx, item); err != nil {
		http.Error(w, `{"success": false, "message": "Menu item could not be created"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Menu item created successfully",
		"data":    item,
	})
}

// EditMenuItem applies a partial update to a menu item
func EditMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	itemId := mux.Vars(r)["item_id"]

	var req struct {
		Name            *string  `json:"name" validate:"omitempty,min=2,max=100"`
		Description     *string  `json:"description"`
		Price           *float64 `json:"price" validate:"omitempty,gte=0"`
		PreparationTime *int     `json:"preparation_time" validate:"omitempty,gte=0"`
		ImageURL        *string  `json:"image_url"`
		Category        *string  `json:"category"`
		IsAvailable     *bool    `json:"is_available"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(req); validationErr != nil {
		http.Error(w, `{"success": false, "message": "`+validationErr.Error()+`"}`, http.StatusBadRequest)
		return
	}

	updateObj := bson.D{}
	if req.Name != nil {
		updateObj = append(updateObj, bson.E{Key: "name", Value: *req.Name})
	}
	if req.Description != nil {
		updateObj = append(updateObj, bson.E{Key: "description", Value: *req.Description})
	}
	if req.Price != nil {
		updateObj = append(updateObj, bson.E{Key: "price", Value: *req.Price})
	}
	if req.PreparationTime != nil {
		updateObj = append(updateObj, bson.E{Key: "preparation_time", Value: *req.PreparationTime})
	}
	if req.ImageURL != nil {
		updateObj = append(updateObj, bson.E{Key: "image_url", Value: *req.ImageURL})
	}
	if req.Category != nil {
		updateObj = append(updateObj, bson.E{Key: "category", Value: *req.Category})
	}
	if req.IsAvailable != nil {
		updateObj = append(updateObj, bson.E{Key: "is_available", Value: *req.IsAvailable})
	}

	if len(updateObj) == 0 {
		http.Error(w, `{"success": false, "message": "No fields to update"}`, http.StatusBadRequest)
		return
	}

	result, err := menuItemCollection.UpdateOne(ctx, bson.M{"item_id": itemId}, bson.D{{Key: "$set", Value: updateObj}})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Menu item update failed"}`, http.StatusInternalServerError)
		return
	}
	if result.MatchedCount == 0 {
		http.Error(w, `{"success": false, "message": "Menu item not found"}`, http.StatusNotFound)
		return
	}

	var updated models.MenuItem
	if err := menuItemCollection.FindOne(ctx, bson.M{"item_id": itemId}).Decode(&updated); err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving updated menu item"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Menu item updated successfully",
		"data":    updated,
	})
}

// DeleteMenuItem removes a menu item
func DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	itemId := mux.Vars(r)["item_id"]

	result, err := menuItemCollection.DeleteOne(ctx, bson.M{"item_id": itemId})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error deleting menu item"}`, http.StatusInternalServerError)
		return
	}
	if result.DeletedCount == 0 {
		http.Error(w, `{"success": false, "message": "Menu item not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Menu item deleted successfully",
	})
}
