package helper

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndValidateAdminToken(t *testing.T) {
	token, err := GenerateAdminToken("admin")
	if err != nil {
		t.Fatalf("GenerateAdminToken() error = %v", err)
	}

	claims, errMsg := ValidateAdminToken(token)
	if errMsg != "" {
		t.Fatalf("ValidateAdminToken() rejected fresh token: %s", errMsg)
	}
	if claims.Username != "admin" {
		t.Errorf("claims.Username = %q, want %q", claims.Username, "admin")
	}
	if claims.ID == "" {
		t.Error("claims.ID is empty, want a token ID")
	}
}

func TestValidateAdminTokenRejectsGarbage(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty string", ""},
		{"not a token", "not-a-token"},
		{"truncated token", "eyJhbGciOiJIUzI1NiJ9.e30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, errMsg := ValidateAdminToken(tt.token); errMsg == "" {
				t.Errorf("ValidateAdminToken(%q) accepted an invalid token", tt.token)
			}
		})
	}
}

func TestValidateAdminTokenRejectsExpired(t *testing.T) {
	claims := &AdminClaims{
		Username: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-3 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(SecretKey()))
	if err != nil {
		t.Fatalf("signing expired token: %v", err)
	}

	if _, errMsg := ValidateAdminToken(expired); errMsg == "" {
		t.Error("ValidateAdminToken() accepted an expired token")
	}
}

func TestValidateAdminTokenRejectsMissingExpiry(t *testing.T) {
	claims := &AdminClaims{
		Username: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(SecretKey()))
	if err != nil {
		t.Fatalf("signing token without expiry: %v", err)
	}

	if _, errMsg := ValidateAdminToken(noExpiry); errMsg == "" {
		t.Error("ValidateAdminToken() accepted a token without an expiry")
	}
}

func TestValidateAdminTokenRejectsWrongKey(t *testing.T) {
	claims := &AdminClaims{
		Username: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("some-other-key"))
	if err != nil {
		t.Fatalf("signing forged token: %v", err)
	}

	if _, errMsg := ValidateAdminToken(forged); errMsg == "" {
		t.Error("ValidateAdminToken() accepted a token signed with the wrong key")
	}
}
