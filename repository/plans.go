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

type PlanRepo struct {
	MongoCollection *mongo.Collection
}

func GetPlanRepo(client *mongo.Client) *PlanRepo {
	return &PlanRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("subscriptionPlans"),
	}
}

// ListPlans returns all plans in display order.
func (r *PlanRepo) ListPlans(ctx context.Context) ([]*model.SubscriptionPlan, error) {
	timer := utils.TrackDBOperation("find", "subscriptionPlans")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{
		{Key: "order", Value: 1},
		{Key: "createdAt", Value: 1},
	})

	cursor, err := r.MongoCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var plans []*model.SubscriptionPlan
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *PlanRepo) FindByID(ctx context.Context, planID string) (*model.SubscriptionPlan, error) {
	timer := utils.TrackDBOperation("find", "subscriptionPlans")
	defer timer.ObserveDuration()

	var plan model.SubscriptionPlan
	err := r.MongoCollection.FindOne(ctx, bson.M{"planId": planID}).Decode(&plan)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *PlanRepo) FindByName(ctx context.Context, name string) (*model.SubscriptionPlan, error) {
	timer := utils.TrackDBOperation("find", "subscriptionPlans")
	defer timer.ObserveDuration()

	var plan model.SubscriptionPlan
	err := r.MongoCollection.FindOne(ctx, bson.M{"name": name}).Decode(&plan)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *PlanRepo) InsertPlan(ctx context.Context, plan *model.SubscriptionPlan) error {
	timer := utils.TrackDBOperation("insert", "subscriptionPlans")
	defer timer.ObserveDuration()

	now := time.Now()
	plan.CreatedAt = now
	plan.UpdatedAt = now

	if _, err := r.MongoCollection.InsertOne(ctx, plan); err != nil {
		utils.TrackError("database", "plan_creation_failed")
		return err
	}
	return nil
}

// UpdatePlan applies the given field set; returns the matched count so
// callers can distinguish not-found.
func (r *PlanRepo) UpdatePlan(ctx context.Context, planID string, fields bson.M) (int64, error) {
	timer := utils.TrackDBOperation("update", "subscriptionPlans")
	defer timer.ObserveDuration()

	fields["updatedAt"] = time.Now()
	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"planId": planID},
		bson.M{"$set": fields})
	if err != nil {
		utils.TrackError("database", "plan_update_failed")
		return 0, err
	}
	return result.MatchedCount, nil
}

func (r *PlanRepo) DeletePlan(ctx context.Context, planID string) (int64, error) {
	timer := utils.TrackDBOperation("delete", "subscriptionPlans")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"planId": planID})
	if err != nil {
		utils.TrackError("database", "plan_deletion_failed")
		return 0, err
	}
	return result.DeletedCount, nil
}
