package services

import (
	"errors"
	"time"

	"main/utils"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "wafa"

// GenerateToken creates a signed access token for the user.
func GenerateToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"iss":     tokenIssuer,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(utils.JWTExpiration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(utils.JWTSecret))
}

// GenerateRefreshToken creates a signed refresh token, marked with a
// type claim so it cannot be used as an access token.
func GenerateRefreshToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"type":    "refresh",
		"iss":     tokenIssuer,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(utils.RefreshTokenExpiration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(utils.JWTSecret))
}

// ValidateRefreshToken parses a refresh token and returns its user ID.
func ValidateRefreshToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(utils.JWTSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", errors.New("token has expired")
		}
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid claims")
	}

	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return "", errors.New("invalid token type")
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", errors.New("invalid claims")
	}

	return userID, nil
}
