package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepo struct {
	MongoCollection *mongo.Collection
}

func GetUserRepo(client *mongo.Client) *UserRepo {
	return &UserRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("users"),
	}
}

func (r *UserRepo) AddUser(ctx context.Context, user *model.User) error {
	timer := utils.TrackDBOperation("insert", "users")
	defer timer.ObserveDuration()

	if user.Email == "" || user.Password == "" {
		utils.TrackError("database", "invalid_user_data")
		return errors.New("email and password required")
	}

	user.CreatedAt = time.Now()
	if _, err := r.MongoCollection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.New("email already registered")
		}
		utils.TrackError("database", "user_creation_failed")
		return fmt.Errorf("failed to add user: %w", err)
	}

	return nil
}

func (r *UserRepo) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	err := r.MongoCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "user_lookup_error")
		return nil, err
	}

	return &user, nil
}

func (r *UserRepo) FindUser(ctx context.Context, userID string) (*model.User, error) {
	timer := utils.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	err := r.MongoCollection.FindOne(ctx, bson.M{"userId": userID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		utils.TrackError("database", "user_lookup_error")
		return nil, err
	}

	return &user, nil
}

func (r *UserRepo) UpdateSubscription(ctx context.Context, userID string, sub model.Subscription) error {
	timer := utils.TrackDBOperation("update", "users")
	defer timer.ObserveDuration()

	update := bson.M{"$set": bson.M{
		"plan":         sub.PlanName,
		"subscription": sub,
	}}

	result, err := r.MongoCollection.UpdateOne(ctx, bson.M{"userId": userID}, update)
	if err != nil {
		utils.TrackError("database", "subscription_update_failed")
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("user not found")
	}
	return nil
}

func (r *UserRepo) DeleteUserByID(ctx context.Context, userID string) (int64, error) {
	timer := utils.TrackDBOperation("delete", "users")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"userId": userID})
	if err != nil {
		utils.TrackError("database", "user_deletion_failed")
		return 0, err
	}

	return result.DeletedCount, nil
}
