package model

import "time"

// Note is a per-user note attached to a question.
type Note struct {
	NoteID     string    `bson:"noteId" json:"noteId"`
	UserID     string    `bson:"userId" json:"userId"`
	QuestionID string    `bson:"questionId" json:"questionId" binding:"required"`
	Content    string    `bson:"content" json:"content" binding:"required"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}
