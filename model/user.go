package model

import "time"

type Subscription struct {
	PlanName string     `bson:"planName" json:"planName"`
	Active   bool       `bson:"active" json:"active"`
	StartsAt *time.Time `bson:"startsAt,omitempty" json:"startsAt,omitempty"`
	EndsAt   *time.Time `bson:"endsAt,omitempty" json:"endsAt,omitempty"`
}

type User struct {
	UserID           string       `bson:"userId" json:"userId"`
	Email            string       `bson:"email" json:"email" validate:"required,email"`
	Password         string       `bson:"password" json:"-" validate:"required,min=6"`
	FirstName        string       `bson:"firstName" json:"firstName"`
	LastName         string       `bson:"lastName" json:"lastName"`
	Plan             string       `bson:"plan" json:"plan"`
	Subscription     Subscription `bson:"subscription" json:"subscription"`
	Semesters        []string     `bson:"semesters" json:"semesters"`
	IsAdmin          bool         `bson:"isAdmin" json:"isAdmin"`
	AdminRole        string       `bson:"adminRole,omitempty" json:"adminRole,omitempty"`
	Permissions      []string     `bson:"permissions,omitempty" json:"permissions,omitempty"`
	TwoFactorEnabled bool         `bson:"twoFactorEnabled" json:"twoFactorEnabled"`
	TwoFactorSecret  string       `bson:"twoFactorSecret,omitempty" json:"-"`
	CreatedAt        time.Time    `bson:"createdAt" json:"createdAt"`
}

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,password"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

type LoginRequest struct {
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required"`
	TwoFactorCode string `json:"twoFactorCode,omitempty"`
}
