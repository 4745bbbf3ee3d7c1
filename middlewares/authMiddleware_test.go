package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	helper "github.com/02priyeshraj/Canteen_Management_Backend/helper"
)

func TestAuthenticationRedirectsWithoutCookie(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler was called without a session")
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	rec := httptest.NewRecorder()

	Authentication(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin" {
		t.Errorf("Location = %q, want %q", loc, "/admin")
	}
}

func TestAuthenticationRedirectsOnInvalidToken(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler was called with an invalid session")
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: AdminSessionCookie, Value: "not-a-token"})
	rec := httptest.NewRecorder()

	Authentication(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}
}

func TestAuthenticationPassesValidToken(t *testing.T) {
	token, err := helper.GenerateAdminToken("admin")
	if err != nil {
		t.Fatalf("GenerateAdminToken() error = %v", err)
	}

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if got := GetAdminFromContext(r); got != "admin" {
			t.Errorf("GetAdminFromContext() = %q, want %q", got, "admin")
		}
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: AdminSessionCookie, Value: token})
	rec := httptest.NewRecorder()

	Authentication(next).ServeHTTP(rec, req)

	if !called {
		t.Fatal("next handler was not called with a valid session")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}
