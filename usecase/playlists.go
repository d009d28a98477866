package usecase

import (
	"context"
	"errors"
	"strings"

	"main/model"
	"main/repository"
	"main/utils"
)

const maxPlaylistName = 100

type PlaylistService struct {
	PlaylistRepo *repository.PlaylistRepo
}

func validatePlaylistName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New("playlist name is required")
	}
	if len(name) > maxPlaylistName {
		return "", errors.New("playlist name exceeds maximum length")
	}
	return name, nil
}

func (s *PlaylistService) CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	name, err := validatePlaylistName(playlist.Name)
	if err != nil {
		return err
	}
	playlist.Name = name
	playlist.PlaylistID = utils.GenerateID()
	return s.PlaylistRepo.CreatePlaylist(ctx, playlist)
}

func (s *PlaylistService) GetUserPlaylists(ctx context.Context, userID string) ([]*model.Playlist, error) {
	playlists, err := s.PlaylistRepo.GetUserPlaylists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if playlists == nil {
		playlists = []*model.Playlist{}
	}
	return playlists, nil
}

func (s *PlaylistService) GetPlaylist(ctx context.Context, playlistID, userID string) (*model.Playlist, error) {
	return s.PlaylistRepo.GetPlaylist(ctx, playlistID, userID)
}

func (s *PlaylistService) RenamePlaylist(ctx context.Context, playlistID, userID, name string) error {
	name, err := validatePlaylistName(name)
	if err != nil {
		return err
	}
	return s.PlaylistRepo.RenamePlaylist(ctx, playlistID, userID, name)
}

func (s *PlaylistService) AddQuestion(ctx context.Context, playlistID, userID, questionID string) error {
	if questionID == "" {
		return errors.New("question ID is required")
	}
	return s.PlaylistRepo.AddQuestion(ctx, playlistID, userID, questionID)
}

func (s *PlaylistService) RemoveQuestion(ctx context.Context, playlistID, userID, questionID string) error {
	return s.PlaylistRepo.RemoveQuestion(ctx, playlistID, userID, questionID)
}

func (s *PlaylistService) DeletePlaylist(ctx context.Context, playlistID, userID string) error {
	return s.PlaylistRepo.DeletePlaylist(ctx, playlistID, userID)
}
