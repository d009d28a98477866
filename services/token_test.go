package services

import (
	"os"
	"testing"

	"main/utils"
)

func TestMain(m *testing.M) {
	os.Setenv("GO_ENV", "test")
	utils.InitJWT()
	os.Exit(m.Run())
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	token, err := GenerateRefreshToken("user-123")
	if err != nil {
		t.Fatalf("GenerateRefreshToken failed: %v", err)
	}

	userID, err := ValidateRefreshToken(token)
	if err != nil {
		t.Fatalf("ValidateRefreshToken failed: %v", err)
	}
	if userID != "user-123" {
		t.Errorf("expected user-123, got %q", userID)
	}
}

func TestAccessTokenRejectedAsRefresh(t *testing.T) {
	token, err := GenerateToken("user-123")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := ValidateRefreshToken(token); err == nil {
		t.Error("access token must not validate as a refresh token")
	}
}

func TestValidateRefreshTokenGarbage(t *testing.T) {
	if _, err := ValidateRefreshToken("not.a.token"); err == nil {
		t.Error("expected an error for a malformed token")
	}
}
