package model

import "time"

// Playlist is a user-curated list of question IDs.
type Playlist struct {
	PlaylistID  string    `bson:"playlistId" json:"playlistId"`
	UserID      string    `bson:"userId" json:"userId"`
	Name        string    `bson:"name" json:"name" binding:"required"`
	QuestionIDs []string  `bson:"questionIds" json:"questionIds"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
