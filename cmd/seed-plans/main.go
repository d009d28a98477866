// Seeds the default subscription plan set. Existing plan names are
// skipped, so the script can run against a populated database.
package main

import (
	"context"
	"log"
	"os"

	"main/model"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/joho/godotenv"
)

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

// Seed data deliberately mixes legacy plain-string features with
// {text, included} objects; normalization handles both.
func defaultPlans() []model.CreatePlanRequest {
	return []model.CreatePlanRequest{
		{
			Name:  "Free",
			Price: floatPtr(0),
			Features: []any{
				"Browse all modules",
				"20 questions per day",
				map[string]any{"text": "Detailed explanations", "included": false},
				map[string]any{"text": "Playlists", "included": false},
			},
			Order: intPtr(0),
		},
		{
			Name:     "Semester",
			Price:    floatPtr(1500),
			OldPrice: floatPtr(2000),
			Features: []any{
				"Unlimited questions",
				"Detailed explanations",
				"Playlists and notes",
				map[string]any{"text": "Priority support", "included": false},
			},
			Order: intPtr(1),
		},
		{
			Name:   "Annual",
			Price:  floatPtr(2500),
			Period: "Year",
			Features: []any{
				"Unlimited questions",
				"Detailed explanations",
				"Playlists and notes",
				"Priority support",
			},
			Order: intPtr(2),
		},
	}
}

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

	planService := &usecase.PlanService{
		PlanRepo: repository.GetPlanRepo(client),
	}

	created, skipped := 0, 0
	for _, req := range defaultPlans() {
		plan, err := planService.CreatePlan(ctx, req)
		if err == usecase.ErrPlanNameTaken {
			log.Printf("Plan %q already exists, skipping", req.Name)
			skipped++
			continue
		}
		if err != nil {
			log.Printf("Failed to seed plan %q: %v", req.Name, err)
			os.Exit(1)
		}
		log.Printf("Created plan %q (%d features)", plan.Name, len(plan.Features))
		created++
	}

	log.Printf("Plan seeding complete: %d created, %d skipped", created, skipped)
}
