package repository

import (
	"context"
	"os"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ModuleRepo struct {
	MongoCollection *mongo.Collection
}

func GetModuleRepo(client *mongo.Client) *ModuleRepo {
	return &ModuleRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("modules"),
	}
}

func (r *ModuleRepo) ListModules(ctx context.Context) ([]*model.Module, error) {
	timer := utils.TrackDBOperation("find", "modules")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{
		{Key: "order", Value: 1},
		{Key: "name", Value: 1},
	})

	cursor, err := r.MongoCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var modules []*model.Module
	if err := cursor.All(ctx, &modules); err != nil {
		return nil, err
	}
	return modules, nil
}

func (r *ModuleRepo) FindModule(ctx context.Context, moduleID string) (*model.Module, error) {
	timer := utils.TrackDBOperation("find", "modules")
	defer timer.ObserveDuration()

	var module model.Module
	err := r.MongoCollection.FindOne(ctx, bson.M{"moduleId": moduleID}).Decode(&module)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &module, nil
}

// ModuleIDsBySemester returns the IDs of every module in a semester,
// used to filter per-module progress on the stats read path.
func (r *ModuleRepo) ModuleIDsBySemester(ctx context.Context, semester string) ([]string, error) {
	timer := utils.TrackDBOperation("find", "modules")
	defer timer.ObserveDuration()

	opts := options.Find().SetProjection(bson.M{"moduleId": 1})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"semester": semester}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var modules []*model.Module
	if err := cursor.All(ctx, &modules); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(modules))
	for _, m := range modules {
		ids = append(ids, m.ModuleID)
	}
	return ids, nil
}

type QuestionRepo struct {
	MongoCollection *mongo.Collection
}

func GetQuestionRepo(client *mongo.Client) *QuestionRepo {
	return &QuestionRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("questions"),
	}
}

func (r *QuestionRepo) ListByModule(ctx context.Context, moduleID string) ([]*model.Question, error) {
	timer := utils.TrackDBOperation("find", "questions")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"moduleId": moduleID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []*model.Question
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *QuestionRepo) FindQuestion(ctx context.Context, questionID string) (*model.Question, error) {
	timer := utils.TrackDBOperation("find", "questions")
	defer timer.ObserveDuration()

	var question model.Question
	err := r.MongoCollection.FindOne(ctx, bson.M{"questionId": questionID}).Decode(&question)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}
