package routes

import (
	"net/http"

	controller "github.com/02priyeshraj/Canteen_Management_Backend/controllers"

	"github.com/gorilla/mux"
)

func OrderPublicRoutes(router *mux.Router) {

	router.HandleFunc("/place_order", controller.PlaceOrder).Methods(http.MethodPost)
	router.HandleFunc("/order_success/{order_id}", controller.GetOrderSuccess).Methods(http.MethodGet)
	router.HandleFunc("/track", controller.TrackOrderPage).Methods(http.MethodGet)
	router.HandleFunc("/get_order_status/{order_id}", controller.GetOrderStatus).Methods(http.MethodGet)
	router.HandleFunc("/cancel_order/{order_id}", controller.CancelOrder).Methods(http.MethodPost)
}
