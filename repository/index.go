package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SetupIndexes creates the index set for all collections.
func SetupIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_unique").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetName("user_id_unique").SetUnique(true),
		},
	}

	statsIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetName("stats_user_unique").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "totalPoints", Value: -1}},
			Options: options.Index().SetName("leaderboard_points"),
		},
	}

	planIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetName("plan_name_unique").SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "order", Value: 1},
				{Key: "createdAt", Value: 1},
			},
			Options: options.Index().SetName("plan_display_order"),
		},
	}

	questionIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "questionId", Value: 1}},
			Options: options.Index().SetName("question_id_unique").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "moduleId", Value: 1}},
			Options: options.Index().SetName("question_module"),
		},
	}

	sessionIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "isActive", Value: 1},
			},
			Options: options.Index().SetName("user_active_sessions"),
		},
		{
			Keys:    bson.D{{Key: "expiresAt", Value: 1}},
			Options: options.Index().SetName("session_ttl").SetExpireAfterSeconds(0),
		},
	}

	noteIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "createdAt", Value: -1},
			},
			Options: options.Index().SetName("user_notes_date"),
		},
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "questionId", Value: 1},
			},
			Options: options.Index().SetName("user_question_notes"),
		},
	}

	playlistIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "createdAt", Value: -1},
			},
			Options: options.Index().SetName("user_playlists_date"),
		},
	}

	reportIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "status", Value: 1},
				{Key: "createdAt", Value: -1},
			},
			Options: options.Index().SetName("report_status_date"),
		},
	}

	collections := map[string][]mongo.IndexModel{
		"users":             userIndexes,
		"userStats":         statsIndexes,
		"subscriptionPlans": planIndexes,
		"questions":         questionIndexes,
		"sessions":          sessionIndexes,
		"notes":             noteIndexes,
		"playlists":         playlistIndexes,
		"reports":           reportIndexes,
	}

	for name, indexes := range collections {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", name, err)
		}
	}

	log.Println("Successfully created all indexes")
	return nil
}
