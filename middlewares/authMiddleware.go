package middleware

import (
	"context"
	"net/http"

	helper "github.com/02priyeshraj/Canteen_Management_Backend/helper"
)

// AdminSessionCookie carries the signed admin session token.
const AdminSessionCookie = "admin_session"

// Context keys to store admin information
type contextKey string

const UsernameKey contextKey = "username"

// Authentication guards admin-only routes for Gorilla Mux. Browser clients
// without a valid session are sent back to the login page.
func Authentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(AdminSessionCookie)
		if err != nil || cookie.Value == "" {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}

		claims, errMsg := helper.ValidateAdminToken(cookie.Value)
		if errMsg != "" {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}

		// Store admin details in the request context
		ctx := context.WithValue(r.Context(), UsernameKey, claims.Username)

		// Pass modified request with context to the next handler
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAdminFromContext retrieves the logged-in admin from the request context
func GetAdminFromContext(r *http.Request) string {
	username, _ := r.Context().Value(UsernameKey).(string)
	return username
}
