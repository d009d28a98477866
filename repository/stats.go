package repository

import (
	"context"
	"os"
	"time"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StatsRepo struct {
	MongoCollection *mongo.Collection
}

func GetStatsRepo(client *mongo.Client) *StatsRepo {
	return &StatsRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("userStats"),
	}
}

// FindByUserID returns the stats document, or nil when the user has no
// activity yet. Absence is not an error.
func (r *StatsRepo) FindByUserID(ctx context.Context, userID string) (*model.UserStats, error) {
	timer := utils.TrackDBOperation("find", "userStats")
	defer timer.ObserveDuration()

	var stats model.UserStats
	err := r.MongoCollection.FindOne(ctx, bson.M{"userId": userID}).Decode(&stats)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "stats_lookup_error")
		return nil, err
	}

	return &stats, nil
}

// Save upserts the whole stats document by user ID.
func (r *StatsRepo) Save(ctx context.Context, stats *model.UserStats) error {
	timer := utils.TrackDBOperation("replace", "userStats")
	defer timer.ObserveDuration()

	stats.UpdatedAt = time.Now()
	if stats.CreatedAt.IsZero() {
		stats.CreatedAt = stats.UpdatedAt
	}

	opts := options.Replace().SetUpsert(true)
	_, err := r.MongoCollection.ReplaceOne(ctx, bson.M{"userId": stats.UserID}, stats, opts)
	if err != nil {
		utils.TrackError("database", "stats_save_failed")
	}
	return err
}

// FindMissingWeeklyActivity returns records eligible for the backfill
// repair pass: activity recorded but no weekly series.
func (r *StatsRepo) FindMissingWeeklyActivity(ctx context.Context) ([]*model.UserStats, error) {
	timer := utils.TrackDBOperation("find", "userStats")
	defer timer.ObserveDuration()

	filter := bson.M{
		"$and": bson.A{
			bson.M{"$or": bson.A{
				bson.M{"weeklyActivity": bson.M{"$exists": false}},
				bson.M{"weeklyActivity": bson.M{"$size": 0}},
			}},
			bson.M{"totalQuestionsAttempted": bson.M{"$gt": 0}},
		},
	}

	cursor, err := r.MongoCollection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*model.UserStats
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// SetWeeklyActivity writes only the weekly series, leaving the rest of
// the record untouched.
func (r *StatsRepo) SetWeeklyActivity(ctx context.Context, userID string, series []model.DailyActivity) error {
	timer := utils.TrackDBOperation("update", "userStats")
	defer timer.ObserveDuration()

	update := bson.M{"$set": bson.M{
		"weeklyActivity": series,
		"updatedAt":      time.Now(),
	}}

	_, err := r.MongoCollection.UpdateOne(ctx, bson.M{"userId": userID}, update)
	if err != nil {
		utils.TrackError("database", "weekly_activity_update_failed")
	}
	return err
}

// TopByPoints returns records ordered by total points descending.
// limit <= 0 returns all records.
func (r *StatsRepo) TopByPoints(ctx context.Context, limit int) ([]*model.UserStats, error) {
	timer := utils.TrackDBOperation("find", "userStats")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "totalPoints", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.MongoCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*model.UserStats
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// SetRank denormalizes a leaderboard position onto the record.
func (r *StatsRepo) SetRank(ctx context.Context, userID string, rank int) error {
	timer := utils.TrackDBOperation("update", "userStats")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{"$set": bson.M{"rank": rank}})
	return err
}
