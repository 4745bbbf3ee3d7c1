package helper

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type AdminClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AdminTokenTTL keeps admin sessions short-lived; a new login is required
// after expiry.
const AdminTokenTTL = 2 * time.Hour

// SecretKey returns the HMAC signing key for session tokens.
func SecretKey() string {
	key := os.Getenv("SECRET_KEY")
	if key == "" {
		key = "canteen-secret-key-2025"
	}
	return key
}

// GenerateAdminToken creates a signed session token for a logged-in admin
func GenerateAdminToken(username string) (string, error) {
	claims := &AdminClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(AdminTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(SecretKey()))
}

// ValidateAdminToken checks if a session token is valid and not expired
func ValidateAdminToken(signedToken string) (*AdminClaims, string) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&AdminClaims{},
		func(token *jwt.Token) (interface{}, error) {
			return []byte(SecretKey()), nil
		},
	)

	if err != nil {
		return nil, fmt.Sprintf("token parsing error: %v", err)
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid {
		return nil, "the token is invalid"
	}

	// Check token expiration; tokens without an expiry are never accepted
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		return nil, "token is expired"
	}

	return claims, ""
}
