package utils

import (
	"testing"

	"shopmart/config"
)

func TestGenerateAndValidateToken(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret", JWTExpiry: "1h"}

	token, err := GenerateToken("user-1", "user@example.com", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "user@example.com" || claims.Role != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "first-secret", JWTExpiry: "1h"}

	token, err := GenerateToken("user-1", "user@example.com", "user")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	config.AppConfig = &config.Config{JWTSecret: "other-secret", JWTExpiry: "1h"}
	if _, err := ValidateToken(token); err == nil {
		t.Fatal("token signed with a different secret was accepted")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret", JWTExpiry: "1h"}
	if _, err := ValidateToken("not.a.jwt"); err == nil {
		t.Fatal("malformed token was accepted")
	}
}
