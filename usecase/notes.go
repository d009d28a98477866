package usecase

import (
	"context"
	"errors"
	"strings"

	"main/model"
	"main/repository"
	"main/utils"
)

const maxNoteLength = 10000

type NotesService struct {
	NotesRepo *repository.NotesRepo
}

func (s *NotesService) validateNote(note *model.Note) error {
	note.Content = strings.TrimSpace(note.Content)
	if note.Content == "" {
		return errors.New("note content is required")
	}
	if len(note.Content) > maxNoteLength {
		return errors.New("note content exceeds maximum length")
	}
	if note.QuestionID == "" {
		return errors.New("question ID is required")
	}
	return nil
}

func (s *NotesService) CreateNote(ctx context.Context, note *model.Note) error {
	if err := s.validateNote(note); err != nil {
		return err
	}
	note.NoteID = utils.GenerateID()
	return s.NotesRepo.CreateNote(ctx, note)
}

func (s *NotesService) GetUserNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}
	notes, err := s.NotesRepo.GetUserNotes(ctx, userID)
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []*model.Note{}
	}
	return notes, nil
}

func (s *NotesService) GetQuestionNotes(ctx context.Context, userID, questionID string) ([]*model.Note, error) {
	notes, err := s.NotesRepo.GetQuestionNotes(ctx, userID, questionID)
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []*model.Note{}
	}
	return notes, nil
}

func (s *NotesService) UpdateNote(ctx context.Context, noteID, userID, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return errors.New("note content is required")
	}
	if len(content) > maxNoteLength {
		return errors.New("note content exceeds maximum length")
	}
	return s.NotesRepo.UpdateNote(ctx, noteID, userID, content)
}

func (s *NotesService) DeleteNote(ctx context.Context, noteID, userID string) error {
	return s.NotesRepo.DeleteNote(ctx, noteID, userID)
}
