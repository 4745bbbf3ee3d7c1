package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	controller "github.com/02priyeshraj/Canteen_Management_Backend/controllers"
	middleware "github.com/02priyeshraj/Canteen_Management_Backend/middlewares"
	routes "github.com/02priyeshraj/Canteen_Management_Backend/routes"
	"github.com/joho/godotenv"

	"github.com/gorilla/mux"
)

// LoadEnv loads environment variables from the .env file
func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment defaults")
	}
}

const sweepInterval = 30 * time.Second

// runExpirySweep promotes overdue pending orders on a fixed timer, keeping
// the admin dashboard a pure read.
func runExpirySweep() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		swept, err := controller.SweepExpiredOrders(ctx)
		cancel()
		if err != nil {
			log.Printf("Expiry sweep failed: %v", err)
			continue
		}
		if swept > 0 {
			log.Printf("Expiry sweep marked %d orders as completed", swept)
		}
	}
}

func main() {
	// Load environment variables
	LoadEnv()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	router := mux.NewRouter()

	// Public Routes (No Authentication)
	routes.MenuPublicRoutes(router)
	routes.OrderPublicRoutes(router)
	routes.AdminPublicRoutes(router)

	// Apply Authentication Middleware to Admin Routes
	adminRoutes := router.PathPrefix("/admin").Subrouter()
	adminRoutes.Use(middleware.Authentication)
	routes.AdminProtectedRoutes(adminRoutes)
	routes.MenuProtectedRoutes(adminRoutes)

	go runExpirySweep()

	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
