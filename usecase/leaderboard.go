package usecase

import (
	"context"
	"log"

	"main/model"
	"main/services"
)

type RankStore interface {
	TopByPoints(ctx context.Context, limit int) ([]*model.UserStats, error)
	SetRank(ctx context.Context, userID string, rank int) error
}

type LeaderboardService struct {
	StatsRepo RankStore
	UsersRepo UserStore
	Cache     *services.LeaderboardCache
}

// GetLeaderboard returns the top users by total points, preferring the
// redis cache. Cache failures degrade to a database read.
func (s *LeaderboardService) GetLeaderboard(ctx context.Context, limit int) ([]services.LeaderboardEntry, error) {
	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx)
		if err != nil {
			log.Printf("Leaderboard cache read failed: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	records, err := s.StatsRepo.TopByPoints(ctx, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]services.LeaderboardEntry, 0, len(records))
	for i, record := range records {
		entry := services.LeaderboardEntry{
			UserID:      record.UserID,
			TotalPoints: record.TotalPoints,
			Rank:        i + 1,
		}
		if user, err := s.UsersRepo.FindUser(ctx, record.UserID); err == nil && user != nil {
			entry.FirstName = user.FirstName
			entry.LastName = user.LastName
		}
		entries = append(entries, entry)
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, entries); err != nil {
			log.Printf("Leaderboard cache write failed: %v", err)
		}
	}

	return entries, nil
}

// RecomputeRanks denormalizes 1-based positions onto every stats record
// and invalidates the cache. Returns the number of records updated.
func (s *LeaderboardService) RecomputeRanks(ctx context.Context) (int, error) {
	records, err := s.StatsRepo.TopByPoints(ctx, 0)
	if err != nil {
		return 0, err
	}

	updated := 0
	for i, record := range records {
		rank := i + 1
		if record.Rank == rank {
			continue
		}
		if err := s.StatsRepo.SetRank(ctx, record.UserID, rank); err != nil {
			log.Printf("Failed to set rank for user %s: %v", record.UserID, err)
			continue
		}
		updated++
	}

	if s.Cache != nil {
		if err := s.Cache.Invalidate(ctx); err != nil {
			log.Printf("Leaderboard cache invalidation failed: %v", err)
		}
	}

	return updated, nil
}
