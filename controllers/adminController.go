package controller

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	database "github.com/02priyeshraj/Canteen_Management_Backend/config"
	"github.com/02priyeshraj/Canteen_Management_Backend/helper"
	middleware "github.com/02priyeshraj/Canteen_Management_Backend/middlewares"
	"github.com/02priyeshraj/Canteen_Management_Backend/models"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var completedOrderCollection *mongo.Collection = database.OpenCollection(database.Client, "completed_orders_archive")
var completedOrderDetailCollection *mongo.Collection = database.OpenCollection(database.Client, "completed_order_details_archive")

// The admin password is hashed once at startup; only the hash is kept in memory.
var adminUsername string = adminUser()
var adminPasswordHash string = adminPassHash()

var errOrderGone = errors.New("order no longer exists")

func adminUser() string {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	return username
}

func adminPassHash() string {
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "password123"
	}
	hash, err := helper.HashPassword(password)
	if err != nil {
		log.Fatal(err)
	}
	return hash
}

// AdminLoginPage is the stand-in for the login form
func AdminLoginPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Submit credentials to obtain an admin session",
	})
}

// AdminLogin checks credentials and issues a session token cookie
func AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if req.Username != adminUsername || !helper.CheckPassword(adminPasswordHash, req.Password) {
		http.Error(w, `{"success": false, "message": "Invalid credentials"}`, http.StatusUnauthorized)
		return
	}

	token, err := helper.GenerateAdminToken(req.Username)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Failed to create session"}`, http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AdminSessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(helper.AdminTokenTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Login successful",
	})
}

// AdminLogout clears the session cookie and sends the admin back to login
func AdminLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AdminSessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// CompleteOrder archives an order and removes it from the live collections.
// The delete runs first inside the transaction so the order is claimed; a
// concurrent completion of the same order loses and gets a 404.
func CompleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var req struct {
		OrderID string `json:"order_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.OrderID == "" {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	var order models.Order
	err := orderCollection.FindOne(ctx, bson.M{"order_id": req.OrderID}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		http.Error(w, `{"success": false, "message": "Order not found"}`, http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving order"}`, http.StatusInternalServerError)
		return
	}

	now := time.Now()

	session, err := database.Client.StartSession()
	if err != nil {
		http.Error(w, `{"success": false, "message": "Failed to archive order"}`, http.StatusInternalServerError)
		return
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		delResult, err := orderCollection.DeleteOne(sc, bson.M{"order_id": order.Order_id})
		if err != nil {
			return nil, err
		}
		if delResult.DeletedCount == 0 {
			return nil, errOrderGone
		}

		cursor, err := orderDetailCollection.Find(sc, bson.M{"order_id": order.Order_id})
		if err != nil {
			return nil, err
		}
		var details []models.OrderDetail
		if err := cursor.All(sc, &details); err != nil {
			return nil, err
		}

		archived, archivedDetails := helper.BuildArchiveRecords(order, details, now)
		if _, err := completedOrderCollection.InsertOne(sc, archived); err != nil {
			return nil, err
		}
		if len(archivedDetails) > 0 {
			docs := make([]interface{}, 0, len(archivedDetails))
			for _, d := range archivedDetails {
				docs = append(docs, d)
			}
			if _, err := completedOrderDetailCollection.InsertMany(sc, docs); err != nil {
				return nil, err
			}
		}

		if _, err := orderDetailCollection.DeleteMany(sc, bson.M{"order_id": order.Order_id}); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if errors.Is(err, errOrderGone) {
		http.Error(w, `{"success": false, "message": "Order not found"}`, http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, `{"success": false, "message": "Failed to archive order"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Order completed and archived",
	})
}

// GetCompletedOrders lists the archive, newest completion first, with a
// running sales total over the returned records
func GetCompletedOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "completion_time", Value: -1}})
	cursor, err := completedOrderCollection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving completed orders"}`, http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var orders []models.CompletedOrder
	if err := cursor.All(ctx, &orders); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding completed orders"}`, http.StatusInternalServerError)
		return
	}

	totalSales := 0.0
	for _, o := range orders {
		totalSales += o.TotalPrice
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":     true,
		"message":     "Completed orders retrieved successfully",
		"data":        orders,
		"total_sales": totalSales,
	})
}

// GetOrderDetails returns archived line items for an order, falling back to
// live details when the order has not been archived yet
func GetOrderDetails(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	orderId := mux.Vars(r)["order_id"]

	items := make([]map[string]interface{}, 0)

	cursor, err := completedOrderDetailCollection.Find(ctx, bson.M{"order_id": orderId})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving order details"}`, http.StatusInternalServerError)
		return
	}
	var archivedDetails []models.CompletedOrderDetail
	if err := cursor.All(ctx, &archivedDetails); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding order details"}`, http.StatusInternalServerError)
		return
	}
	for _, d := range archivedDetails {
		items = append(items, map[string]interface{}{
			"name":           d.ItemName,
			"quantity":       d.Quantity,
			"price_per_item": d.PricePerItem,
		})
	}

	if len(items) == 0 {
		cursor, err := orderDetailCollection.Find(ctx, bson.M{"order_id": orderId})
		if err != nil {
			http.Error(w, `{"success": false, "message": "Error retrieving order details"}`, http.StatusInternalServerError)
			return
		}
		var liveDetails []models.OrderDetail
		if err := cursor.All(ctx, &liveDetails); err != nil {
			http.Error(w, `{"success": false, "message": "Error decoding order details"}`, http.StatusInternalServerError)
			return
		}
		for _, d := range liveDetails {
			items = append(items, map[string]interface{}{
				"name":           d.ItemName,
				"quantity":       d.Quantity,
				"price_per_item": d.PricePerItem,
			})
		}
	}

	if len(items) == 0 {
		http.Error(w, `{"success": false, "message": "No order details found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"items":   items,
	})
}

// ResetDailyData irreversibly clears all live and archived order data.
// Menu items are untouched.
func ResetDailyData(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	collections := []*mongo.Collection{
		orderDetailCollection,
		completedOrderDetailCollection,
		orderCollection,
		completedOrderCollection,
	}
	for _, col := range collections {
		if _, err := col.DeleteMany(ctx, bson.M{}); err != nil {
			http.Error(w, `{"success": false, "message": "Failed to reset order data"}`, http.StatusInternalServerError)
			return
		}
	}

	log.Printf("Daily order data reset by %s", middleware.GetAdminFromContext(r))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Daily order data cleared",
	})
}
