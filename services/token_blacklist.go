package services

import (
	"context"
	"fmt"
	"time"

	"main/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

type RedisTokenBlacklist struct {
	Client *redis.Client
}

// TokenBlacklist is the global instance, set during startup. When nil
// (redis unavailable) blacklisting is disabled and logout is best-effort.
var TokenBlacklist *RedisTokenBlacklist

// NewTokenBlacklist creates a new Redis-backed token blacklist
func NewTokenBlacklist(redisURL string) (*RedisTokenBlacklist, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &RedisTokenBlacklist{Client: client}, nil
}

// BlacklistToken stores the token until its own expiry.
func (tb *RedisTokenBlacklist) BlacklistToken(tokenString string) error {
	ttl := utils.JWTExpiration

	// Use the token's remaining lifetime when it can be parsed.
	parser := jwt.NewParser()
	if token, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{}); err == nil {
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if exp, ok := claims["exp"].(float64); ok {
				if remaining := time.Until(time.Unix(int64(exp), 0)); remaining > 0 {
					ttl = remaining
				}
			}
		}
	}

	return tb.Client.Set(context.Background(), blacklistKey(tokenString), "1", ttl).Err()
}

// IsTokenBlacklisted reports whether the token has been invalidated.
func IsTokenBlacklisted(tokenString string) bool {
	if TokenBlacklist == nil {
		return false
	}

	n, err := TokenBlacklist.Client.Exists(context.Background(), blacklistKey(tokenString)).Result()
	if err != nil {
		utils.TrackError("auth", "blacklist_lookup")
		return false
	}
	return n > 0
}

// BlacklistTokens invalidates both tokens of a session.
func BlacklistTokens(accessToken, refreshToken string) error {
	if TokenBlacklist == nil {
		return fmt.Errorf("token blacklist not initialized")
	}

	if accessToken != "" {
		if err := TokenBlacklist.BlacklistToken(accessToken); err != nil {
			return err
		}
	}
	if refreshToken != "" {
		if err := TokenBlacklist.BlacklistToken(refreshToken); err != nil {
			return err
		}
	}
	return nil
}

func blacklistKey(token string) string {
	return "blacklist:" + token
}
