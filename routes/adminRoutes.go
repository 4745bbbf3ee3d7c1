package routes

import (
	"net/http"

	controller "github.com/02priyeshraj/Canteen_Management_Backend/controllers"

	"github.com/gorilla/mux"
)

// AdminPublicRoutes must be registered before the protected subrouter so the
// login and logout endpoints stay reachable without a session.
func AdminPublicRoutes(router *mux.Router) {
	router.HandleFunc("/admin", controller.AdminLoginPage).Methods(http.MethodGet)
	router.HandleFunc("/admin", controller.AdminLogin).Methods(http.MethodPost)
	router.HandleFunc("/admin/logout", controller.AdminLogout).Methods(http.MethodGet)
}

func AdminProtectedRoutes(router *mux.Router) {
	router.HandleFunc("/dashboard", controller.AdminDashboard).Methods(http.MethodGet)
	router.HandleFunc("/update_order_status_api", controller.CompleteOrder).Methods(http.MethodPost)
	router.HandleFunc("/completed_orders", controller.GetCompletedOrders).Methods(http.MethodGet)
	router.HandleFunc("/api/order_details/{order_id}", controller.GetOrderDetails).Methods(http.MethodGet)
	router.HandleFunc("/canteen_status", controller.UpdateCanteenStatus).Methods(http.MethodPost)
	router.HandleFunc("/reset_daily_data", controller.ResetDailyData).Methods(http.MethodPost)
}
