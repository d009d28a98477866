package usecase

import (
	"context"
	"errors"

	"main/model"
	"main/services"
	"main/utils"
)

var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrUserNotFound = errors.New("user not found")
)

type UserStore interface {
	AddUser(ctx context.Context, user *model.User) error
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
	FindUser(ctx context.Context, userID string) (*model.User, error)
	UpdateSubscription(ctx context.Context, userID string, sub model.Subscription) error
	DeleteUserByID(ctx context.Context, userID string) (int64, error)
}

type UserService struct {
	UsersRepo UserStore
}

// Register creates a user on the free plan with a hashed password.
func (s *UserService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	existing, err := s.UsersRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		utils.TrackError("auth", "duplicate_email")
		return nil, ErrEmailTaken
	}

	hashed, err := services.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UserID:    utils.GenerateID(),
		Email:     req.Email,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Plan:      "Free",
		Subscription: model.Subscription{
			PlanName: "Free",
			Active:   false,
		},
		Semesters: []string{},
	}

	if err := s.UsersRepo.AddUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.UsersRepo.FindUserByEmail(ctx, email)
}

func (s *UserService) FindUser(ctx context.Context, userID string) (*model.User, error) {
	return s.UsersRepo.FindUser(ctx, userID)
}

// ChangeSubscription replaces the user's subscription and denormalizes
// the plan name onto the user document.
func (s *UserService) ChangeSubscription(ctx context.Context, userID string, sub model.Subscription) error {
	if sub.PlanName == "" {
		return errors.New("plan name is required")
	}

	user, err := s.UsersRepo.FindUser(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	return s.UsersRepo.UpdateSubscription(ctx, userID, sub)
}

// DeleteAccount removes the user document. Stats, notes and playlists
// are keyed by user ID and become unreachable once the user is gone.
func (s *UserService) DeleteAccount(ctx context.Context, userID string) error {
	deleted, err := s.UsersRepo.DeleteUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrUserNotFound
	}
	return nil
}
