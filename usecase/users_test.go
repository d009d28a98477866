package usecase

import (
	"context"
	"testing"

	"main/model"
	"main/services"
)

func TestRegister(t *testing.T) {
	store := &fakeUserStore{users: map[string]*model.User{}}
	svc := &UserService{UsersRepo: store}

	user, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:     "amina@example.com",
		Password:  "secret1!",
		FirstName: "Amina",
		LastName:  "K",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.UserID == "" {
		t.Error("expected a generated user id")
	}
	if user.Plan != "Free" || user.Subscription.PlanName != "Free" || user.Subscription.Active {
		t.Errorf("free plan defaults not applied: %+v", user)
	}
	if user.Password == "secret1!" {
		t.Error("password stored in plaintext")
	}
	if ok, err := services.VerifyPassword(user.Password, "secret1!"); err != nil || !ok {
		t.Errorf("stored hash does not verify: ok=%v err=%v", ok, err)
	}

	// Duplicate email is a conflict.
	if _, err := svc.Register(context.Background(), model.RegisterRequest{
		Email:    "amina@example.com",
		Password: "other2@",
	}); err != ErrEmailTaken {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestChangeSubscription(t *testing.T) {
	store := &fakeUserStore{users: map[string]*model.User{
		"u1": {UserID: "u1", Plan: "Free"},
	}}
	svc := &UserService{UsersRepo: store}

	sub := model.Subscription{PlanName: "Semester", Active: true}
	if err := svc.ChangeSubscription(context.Background(), "u1", sub); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.users["u1"].Plan != "Semester" || !store.users["u1"].Subscription.Active {
		t.Errorf("subscription not applied: %+v", store.users["u1"])
	}

	if err := svc.ChangeSubscription(context.Background(), "missing", sub); err != ErrUserNotFound {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
	if err := svc.ChangeSubscription(context.Background(), "u1", model.Subscription{}); err == nil {
		t.Error("expected an error for a missing plan name")
	}
}

func TestDeleteAccount(t *testing.T) {
	store := &fakeUserStore{users: map[string]*model.User{
		"u1": {UserID: "u1"},
	}}
	svc := &UserService{UsersRepo: store}

	if err := svc.DeleteAccount(context.Background(), "u1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := store.users["u1"]; ok {
		t.Error("user document still present after deletion")
	}

	if err := svc.DeleteAccount(context.Background(), "u1"); err != ErrUserNotFound {
		t.Errorf("expected ErrUserNotFound on repeat delete, got %v", err)
	}
}
