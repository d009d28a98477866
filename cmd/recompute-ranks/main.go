// Recomputes leaderboard ranks from totalPoints and prints a drift
// diagnostic for records whose answer counters no longer add up.
package main

import (
	"context"
	"log"
	"os"

	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	if utils.MongoURI() == "" {
		log.Println("MONGO_URL is not set")
		os.Exit(1)
	}

	ctx := context.Background()
	client, err := utils.ConnectMongo(ctx)
	if err != nil {
		log.Printf("Failed to connect to MongoDB: %v", err)
		os.Exit(1)
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Printf("Failed to disconnect: %v", err)
		}
	}()

	statsRepo := repository.GetStatsRepo(client)

	// Drift diagnostic: correct + incorrect should equal attempted.
	// Nothing enforces that, so report records that have drifted.
	records, err := statsRepo.TopByPoints(ctx, 0)
	if err != nil {
		log.Printf("Failed to load stats records: %v", err)
		os.Exit(1)
	}

	drifted := 0
	for _, record := range records {
		sum := record.TotalCorrectAnswers + record.TotalIncorrectAnswers
		if sum != record.TotalQuestionsAttempted {
			log.Printf("Drift: user %s attempted=%d correct+incorrect=%d",
				record.UserID, record.TotalQuestionsAttempted, sum)
			drifted++
		}
	}
	log.Printf("Checked %d records, %d drifted", len(records), drifted)

	leaderboardService := &usecase.LeaderboardService{
		StatsRepo: statsRepo,
		UsersRepo: repository.GetUserRepo(client),
	}

	updated, err := leaderboardService.RecomputeRanks(ctx)
	if err != nil {
		log.Printf("Rank recomputation failed: %v", err)
		os.Exit(1)
	}

	log.Printf("Rank recomputation complete: %d/%d records updated", updated, len(records))
}
