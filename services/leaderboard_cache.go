package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const leaderboardKey = "leaderboard:top"

// LeaderboardEntry is the cached projection of a user's rank.
type LeaderboardEntry struct {
	UserID      string `json:"userId"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	TotalPoints int    `json:"totalPoints"`
	Rank        int    `json:"rank"`
}

type LeaderboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

// GlobalLeaderboardCache is set during startup; nil means every
// leaderboard read goes to the database.
var GlobalLeaderboardCache *LeaderboardCache

// NewLeaderboardCache connects to redis and verifies the connection.
func NewLeaderboardCache(redisURL string, ttl time.Duration) (*LeaderboardCache, error) {
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

	return &LeaderboardCache{client: client, ttl: ttl}, nil
}

// Get returns the cached leaderboard, or nil on a miss.
func (lc *LeaderboardCache) Get(ctx context.Context) ([]LeaderboardEntry, error) {
	data, err := lc.client.Get(ctx, leaderboardKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []LeaderboardEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Set caches the leaderboard with the configured TTL.
func (lc *LeaderboardCache) Set(ctx context.Context, entries []LeaderboardEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return lc.client.Set(ctx, leaderboardKey, data, lc.ttl).Err()
}

// Invalidate drops the cached leaderboard, used after rank recomputation.
func (lc *LeaderboardCache) Invalidate(ctx context.Context) error {
	return lc.client.Del(ctx, leaderboardKey).Err()
}
