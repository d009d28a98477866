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

type PlaylistRepo struct {
	MongoCollection *mongo.Collection
}

func GetPlaylistRepo(client *mongo.Client) *PlaylistRepo {
	return &PlaylistRepo{
		MongoCollection: client.Database(os.Getenv("MONGO_DB")).Collection("playlists"),
	}
}

func (r *PlaylistRepo) CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	timer := utils.TrackDBOperation("insert", "playlists")
	defer timer.ObserveDuration()

	if playlist.UserID == "" {
		return errors.New("user ID is required")
	}
	if playlist.QuestionIDs == nil {
		playlist.QuestionIDs = []string{}
	}

	playlist.CreatedAt = time.Now()
	playlist.UpdatedAt = playlist.CreatedAt

	_, err := r.MongoCollection.InsertOne(ctx, playlist)
	return err
}

func (r *PlaylistRepo) GetUserPlaylists(ctx context.Context, userID string) ([]*model.Playlist, error) {
	timer := utils.TrackDBOperation("find", "playlists")
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var playlists []*model.Playlist
	if err := cursor.All(ctx, &playlists); err != nil {
		return nil, err
	}
	return playlists, nil
}

func (r *PlaylistRepo) GetPlaylist(ctx context.Context, playlistID, userID string) (*model.Playlist, error) {
	timer := utils.TrackDBOperation("find", "playlists")
	defer timer.ObserveDuration()

	var playlist model.Playlist
	err := r.MongoCollection.FindOne(ctx,
		bson.M{"playlistId": playlistID, "userId": userID}).Decode(&playlist)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("playlist not found")
		}
		return nil, err
	}
	return &playlist, nil
}

// AddQuestion appends a question ID without duplicating it.
func (r *PlaylistRepo) AddQuestion(ctx context.Context, playlistID, userID, questionID string) error {
	timer := utils.TrackDBOperation("update", "playlists")
	defer timer.ObserveDuration()

	update := bson.M{
		"$addToSet": bson.M{"questionIds": questionID},
		"$set":      bson.M{"updatedAt": time.Now()},
	}

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"playlistId": playlistID, "userId": userID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("playlist not found")
	}
	return nil
}

func (r *PlaylistRepo) RemoveQuestion(ctx context.Context, playlistID, userID, questionID string) error {
	timer := utils.TrackDBOperation("update", "playlists")
	defer timer.ObserveDuration()

	update := bson.M{
		"$pull": bson.M{"questionIds": questionID},
		"$set":  bson.M{"updatedAt": time.Now()},
	}

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"playlistId": playlistID, "userId": userID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("playlist not found")
	}
	return nil
}

func (r *PlaylistRepo) RenamePlaylist(ctx context.Context, playlistID, userID, name string) error {
	timer := utils.TrackDBOperation("update", "playlists")
	defer timer.ObserveDuration()

	update := bson.M{"$set": bson.M{
		"name":      name,
		"updatedAt": time.Now(),
	}}

	result, err := r.MongoCollection.UpdateOne(ctx,
		bson.M{"playlistId": playlistID, "userId": userID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("playlist not found")
	}
	return nil
}

func (r *PlaylistRepo) DeletePlaylist(ctx context.Context, playlistID, userID string) error {
	timer := utils.TrackDBOperation("delete", "playlists")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx,
		bson.M{"playlistId": playlistID, "userId": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.New("playlist not found")
	}
	return nil
}
