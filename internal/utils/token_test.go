package utils

import (
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestMain(m *testing.M) {
	_ = os.Setenv("JWT_SECRET", "nutri_tracker_test_jwt_secret_1234567890")
	os.Exit(m.Run())
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "alice")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != 42 || claims.Username != "alice" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestTokenRejectsTampering(t *testing.T) {
	token, err := GenerateToken(42, "alice")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	// Corrupt the signature segment.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape")
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := ValidateToken(tampered); err == nil {
		t.Fatalf("expected tampered token to be rejected")
	}
}

func TestTokenRejectsExpired(t *testing.T) {
	secret, err := getJWTSecret()
	if err != nil {
		t.Fatalf("getJWTSecret: %v", err)
	}

	past := time.Now().Add(-8 * 24 * time.Hour)
	claims := Claims{
		UserID:   42,
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(42),
			Issuer:    jwtIssuer,
			IssuedAt:  jwt.NewNumericDate(past),
			NotBefore: jwt.NewNumericDate(past),
			ExpiresAt: jwt.NewNumericDate(past.Add(tokenTTL)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}

	if _, err := ValidateToken(expired); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestTokenRejectsEmpty(t *testing.T) {
	if _, err := ValidateToken("  "); err == nil {
		t.Fatalf("expected empty token to be rejected")
	}
}

func TestGenerateTokenRejectsInvalidUser(t *testing.T) {
	if _, err := GenerateToken(0, "nobody"); err == nil {
		t.Fatalf("expected error for non-positive user id")
	}
}
