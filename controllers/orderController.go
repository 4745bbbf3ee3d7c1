package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	database "github.com/02priyeshraj/Canteen_Management_Backend/config"
	"github.com/02priyeshraj/Canteen_Management_Backend/helper"
	"github.com/02priyeshraj/Canteen_Management_Backend/models"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var orderCollection *mongo.Collection = database.OpenCollection(database.Client, "orders")
var orderDetailCollection *mongo.Collection = database.OpenCollection(database.Client, "order_details")

type cartLine struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type placeOrderRequest struct {
	CustomerName string     `json:"customer_name"`
	Cart         []cartLine `json:"cart"`
	TotalPrice   float64    `json:"total_price"`
}

// PlaceOrder creates an order with its line items. The estimate is driven
// by the slowest item in the cart; cart lines that no longer match a menu
// item are kept as details but contribute no preparation time.
func PlaceOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	customerName, err := helper.ValidateOrderRequest(req.CustomerName, len(req.Cart))
	if err != nil {
		http.Error(w, `{"success": false, "message": "Invalid data"}`, http.StatusBadRequest)
		return
	}

	var prepTimes []int
	for _, line := range req.Cart {
		var item models.MenuItem
		err := menuItemCollection.FindOne(ctx, bson.M{"item_id": line.ID}).Decode(&item)
		if err != nil {
			// Unknown items are skipped, not rejected
			continue
		}
		if item.PreparationTime != nil {
			prepTimes = append(prepTimes, *item.PreparationTime)
		} else {
			prepTimes = append(prepTimes, helper.DefaultPrepMinutes)
		}
	}

	now := time.Now()
	order := models.Order{
		ID:                      primitive.NewObjectID(),
		CustomerName:            customerName,
		TotalPrice:              req.TotalPrice,
		OrderStatus:             models.StatusPending,
		Order_Date:              now,
		EstimatedCompletionTime: helper.EstimatedCompletion(prepTimes, now),
	}
	order.Order_id = order.ID.Hex()

	details := make([]interface{}, 0, len(req.Cart))
	for _, line := range req.Cart {
		details = append(details, models.OrderDetail{
			ID:           primitive.NewObjectID(),
			Order_id:     order.Order_id,
			Item_id:      line.ID,
			ItemName:     line.Name,
			Quantity:     line.Quantity,
			PricePerItem: line.Price,
		})
	}

	session, err := database.Client.StartSession()
	if err != nil {
		http.Error(w, `{"success": false, "message": "Order creation failed"}`, http.StatusInternalServerError)
		return
	}
	defer session.EndSession(ctx)

	// Order and details become visible together or not at all
	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := orderCollection.InsertOne(sc, order); err != nil {
			return nil, err
		}
		if _, err := orderDetailCollection.InsertMany(sc, details); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Order creation failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":  true,
		"order_id": order.Order_id,
	})
}

// GetOrderSuccess returns the order and its line items for the confirmation view
func GetOrderSuccess(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	orderId := mux.Vars(r)["order_id"]

	var order models.Order
	err := orderCollection.FindOne(ctx, bson.M{"order_id": orderId}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		http.Error(w, `{"success": false, "message": "Order not found"}`, http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving order"}`, http.StatusInternalServerError)
		return
	}

	cursor, err := orderDetailCollection.Find(ctx, bson.M{"order_id": orderId})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving order items"}`, http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var items []models.OrderDetail
	if err := cursor.All(ctx, &items); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding order items"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":     true,
		"message":     "Order retrieved successfully",
		"data":        order,
		"order_items": items,
	})
}

// TrackOrderPage points polling clients at the status endpoint
func TrackOrderPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Poll /get_order_status/{order_id} for live order updates",
	})
}

// GetOrderStatus returns status, estimate and line items for polling clients
func GetOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	orderId := mux.Vars(r)["order_id"]

	var order models.Order
	err := orderCollection.FindOne(ctx, bson.M{"order_id": orderId}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		http.Error(w, `{"success": false, "message": "Order not found"}`, http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving order"}`, http.StatusInternalServerError)
		return
	}

	cursor, err := orderDetailCollection.Find(ctx, bson.M{"order_id": orderId})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving order items"}`, http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var details []models.OrderDetail
	if err := cursor.All(ctx, &details); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding order items"}`, http.StatusInternalServerError)
		return
	}

	items := make([]map[string]interface{}, 0, len(details))
	for _, d := range details {
		items = append(items, map[string]interface{}{
			"name":     d.ItemName,
			"quantity": d.Quantity,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":         true,
		"status":          order.OrderStatus,
		"completion_time": order.EstimatedCompletionTime,
		"customer_name":   order.CustomerName,
		"total_price":     order.TotalPrice,
		"items":           items,
	})
}

// CancelOrder lets a customer withdraw a pending order inside the grace window
func CancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	orderId := mux.Vars(r)["order_id"]

	var order models.Order
	err := orderCollection.FindOne(ctx, bson.M{"order_id": orderId}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		http.Error(w, `{"success": false, "message": "Order not found"}`, http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving order"}`, http.StatusInternalServerError)
		return
	}

	if err := helper.CanCancel(order.OrderStatus, order.Order_Date, time.Now()); err != nil {
		if errors.Is(err, helper.ErrGraceWindowExpired) {
			http.Error(w, `{"success": false, "message": "Cancellation window has expired"}`, http.StatusForbidden)
			return
		}
		http.Error(w, `{"success": false, "message": "Order can no longer be cancelled"}`, http.StatusBadRequest)
		return
	}

	update := bson.M{"$set": bson.M{"order_status": models.StatusCancelled}}
	if _, err := orderCollection.UpdateOne(ctx, bson.M{"order_id": orderId}, update); err != nil {
		http.Error(w, `{"success": false, "message": "Failed to cancel order"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Order cancelled successfully",
	})
}

// SweepExpiredOrders marks every pending order whose estimate has elapsed as
// completed. Archiving stays a separate, manual admin action.
func SweepExpiredOrders(ctx context.Context) (int64, error) {
	filter := bson.M{
		"order_status":              models.StatusPending,
		"estimated_completion_time": bson.M{"$lte": time.Now()},
	}
	update := bson.M{"$set": bson.M{"order_status": models.StatusCompleted}}

	result, err := orderCollection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

// AdminDashboard lists all live orders, oldest first
func AdminDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "order_date", Value: 1}})
	cursor, err := orderCollection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving orders"}`, http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding order data"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Orders retrieved successfully",
		"data":    orders,
	})
}
