package utils

import (
	"log"
	"os"
	"time"
)

var (
	JWTSecret              string
	JWTExpiration          time.Duration
	RefreshTokenExpiration time.Duration
)

// InitJWT loads token settings from the environment.
func InitJWT() {
	if os.Getenv("GO_ENV") == "test" && os.Getenv("JWT_SECRET") == "" {
		os.Setenv("JWT_SECRET", "test_secret_key")
	}

	JWTSecret = os.Getenv("JWT_SECRET")
	if JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	JWTExpiration = GetEnvAsDuration("JWT_EXPIRATION", time.Hour)
	RefreshTokenExpiration = GetEnvAsDuration("REFRESH_TOKEN_EXPIRATION", 7*24*time.Hour)
}
