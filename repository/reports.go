package repository

import (
	"context"
	"errors"
	"os"
	"time"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReportRepo struct {
	MongoCollection *mongo.Collection
}

func GetReportRepo(client *mongo.Client) *ReportRepo {
	return &ReportRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("reports"),
	}
}

func (r *ReportRepo) CreateReport(ctx context.Context, report *model.Report) error {
	timer := utils.TrackDBOperation("insert", "reports")
	defer timer.ObserveDuration()

	report.Status = model.ReportStatusOpen
	report.CreatedAt = time.Now()

	_, err := r.MongoCollection.InsertOne(ctx, report)
	return err
}

// ListReports returns reports, optionally filtered by status.
func (r *ReportRepo) ListReports(ctx context.Context, status string) ([]*model.Report, error) {
	timer := utils.TrackDBOperation("find", "reports")
	defer timer.ObserveDuration()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reports []*model.Report
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *ReportRepo) UpdateStatus(ctx context.Context, reportID, status string) error {
	timer := utils.TrackDBOperation("update", "reports")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"reportId": reportID},
		bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("report not found")
	}
	return nil
}
