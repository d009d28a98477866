// Backfills the weeklyActivity series for stats records that have
// recorded attempts but an empty series. Safe to re-run: records with a
// series are never touched.
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

	statsService := &usecase.StatsService{
		StatsRepo: repository.GetStatsRepo(client),
	}

	log.Println("Scanning for stats records with missing weekly activity...")
	fixed, total, err := statsService.BackfillWeeklyActivity(ctx)
	if err != nil {
		log.Printf("Backfill failed: %v", err)
		os.Exit(1)
	}

	log.Printf("Backfill complete: fixed %d/%d records", fixed, total)
}
