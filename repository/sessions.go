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

type SessionRepo struct {
	MongoCollection *mongo.Collection
}

func GetSessionRepo(client *mongo.Client) *SessionRepo {
	return &SessionRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("sessions"),
	}
}

func (r *SessionRepo) CreateSession(ctx context.Context, session *model.Session) error {
	timer := utils.TrackDBOperation("insert", "sessions")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, session)
	if err != nil {
		utils.TrackError("database", "session_creation_failed")
	}
	return err
}

func (r *SessionRepo) GetUserActiveSessions(ctx context.Context, userID string) ([]*model.Session, error) {
	timer := utils.TrackDBOperation("find", "sessions")
	defer timer.ObserveDuration()

	filter := bson.M{
		"userId":    userID,
		"isActive":  true,
		"expiresAt": bson.M{"$gt": time.Now()},
	}
	opts := options.Find().SetSort(bson.D{{Key: "lastActivityAt", Value: -1}})

	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []*model.Session
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// UpdateLastActivity bumps lastActivityAt on the user's active sessions.
func (r *SessionRepo) UpdateLastActivity(ctx context.Context, userID string) error {
	timer := utils.TrackDBOperation("update", "sessions")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.UpdateMany(ctx,
		bson.M{"userId": userID, "isActive": true},
		bson.M{"$set": bson.M{"lastActivityAt": time.Now()}})
	return err
}

func (r *SessionRepo) EndAllUserSessions(ctx context.Context, userID string) (int64, error) {
	timer := utils.TrackDBOperation("update", "sessions")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateMany(ctx,
		bson.M{"userId": userID, "isActive": true},
		bson.M{"$set": bson.M{"isActive": false}})
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}
