package utils

import (
	"testing"

	"github.com/google/uuid"

	"project-user-api/config"
)

func TestGenerateAndParseJWTToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	userID := uuid.New()
	access, refresh, err := GenerateJWTToken(userID)
	if err != nil {
		t.Fatalf("GenerateJWTToken() error = %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatal("GenerateJWTToken() returned empty tokens")
	}

	claims, err := ParseJWTToken(access)
	if err != nil {
		t.Fatalf("ParseJWTToken() error = %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("claims user = %v, want %v", claims.UserID, userID)
	}
}

func TestParseJWTTokenWrongSecret(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	_, refresh, err := GenerateJWTToken(uuid.New())
	if err != nil {
		t.Fatalf("GenerateJWTToken() error = %v", err)
	}

	config.AppConfig.JWTSecret = "other-secret"
	if _, err := ParseJWTToken(refresh); err == nil {
		t.Error("ParseJWTToken() accepted a token signed with a different secret")
	}
}

func TestParseJWTTokenGarbage(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	if _, err := ParseJWTToken("not-a-token"); err == nil {
		t.Error("ParseJWTToken() accepted garbage input")
	}
}
