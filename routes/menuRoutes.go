package routes

import (
	"net/http"

	controller "github.com/02priyeshraj/Canteen_Management_Backend/controllers"

	"github.com/gorilla/mux"
)

func MenuPublicRoutes(router *mux.Router) {
	router.HandleFunc("/", controller.GetMenu).Methods(http.MethodGet)
	router.HandleFunc("/canteen_status", controller.GetCanteenStatus).Methods(http.MethodGet)
}

// MenuProtectedRoutes registers catalog management under the admin subrouter
func MenuProtectedRoutes(router *mux.Router) {
	router.HandleFunc("/menu", controller.GetAllMenuItems).Methods(http.MethodGet)
	router.HandleFunc("/menu/add", controller.AddMenuItem).Methods(http.MethodPost)
	router.HandleFunc("/menu/edit/{item_id}", controller.EditMenuItem).Methods(http.MethodPost)
	router.HandleFunc("/menu/delete/{item_id}", controller.DeleteMenuItem).Methods(http.MethodPost)
}
