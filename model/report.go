package model

import "time"

const (
	ReportStatusOpen     = "Open"
	ReportStatusResolved = "Resolved"
)

// Report is a user-filed issue against a question (wrong answer key,
// typo, outdated reference).
type Report struct {
	ReportID   string    `bson:"reportId" json:"reportId"`
	UserID     string    `bson:"userId" json:"userId"`
	QuestionID string    `bson:"questionId" json:"questionId"`
	Reason     string    `bson:"reason" json:"reason"`
	Status     string    `bson:"status" json:"status"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}
