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

type NotesRepo struct {
	MongoCollection *mongo.Collection
}

func GetNotesRepo(client *mongo.Client) *NotesRepo {
	return &NotesRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("notes"),
	}
}

func (r *NotesRepo) CreateNote(ctx context.Context, note *model.Note) error {
	timer := utils.TrackDBOperation("insert", "notes")
	defer timer.ObserveDuration()

	if note.UserID == "" {
		return errors.New("user ID is required")
	}

	note.CreatedAt = time.Now()
	note.UpdatedAt = note.CreatedAt

	_, err := r.MongoCollection.InsertOne(ctx, note)
	return err
}

func (r *NotesRepo) GetUserNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notes []*model.Note
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *NotesRepo) GetQuestionNotes(ctx context.Context, userID, questionID string) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx,
		bson.M{"userId": userID, "questionId": questionID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notes []*model.Note
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *NotesRepo) UpdateNote(ctx context.Context, noteID, userID, content string) error {
	timer := utils.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	update := bson.M{"$set": bson.M{
		"content":   content,
		"updatedAt": time.Now(),
	}}

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"noteId": noteID, "userId": userID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("note not found")
	}
	return nil
}

func (r *NotesRepo) DeleteNote(ctx context.Context, noteID, userID string) error {
	timer := utils.TrackDBOperation("delete", "notes")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx,
		bson.M{"noteId": noteID, "userId": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.New("note not found")
	}
	return nil
}
