package model

import "time"

const (
	DifficultyNormal = "normal"
	DifficultyGreen  = "green"
	DifficultyBlue   = "blue"
)

type Module struct {
	ModuleID    string    `bson:"moduleId" json:"moduleId"`
	Name        string    `bson:"name" json:"name"`
	Semester    string    `bson:"semester" json:"semester"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Order       int       `bson:"order" json:"order"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

type QuestionOption struct {
	Key  string `bson:"key" json:"key"`
	Text string `bson:"text" json:"text"`
}

type Question struct {
	QuestionID     string           `bson:"questionId" json:"questionId"`
	ModuleID       string           `bson:"moduleId" json:"moduleId"`
	ExamID         string           `bson:"examId,omitempty" json:"examId,omitempty"`
	Text           string           `bson:"text" json:"text"`
	Options        []QuestionOption `bson:"options" json:"options"`
	CorrectAnswers []string         `bson:"correctAnswers" json:"-"`
	Difficulty     string           `bson:"difficulty" json:"difficulty"`
	Explanation    string           `bson:"explanation,omitempty" json:"explanation,omitempty"`
	IsVerified     bool             `bson:"isVerified" json:"isVerified"`
	CreatedAt      time.Time        `bson:"createdAt" json:"createdAt"`
}

type AnswerSubmission struct {
	SelectedAnswers []string `json:"selectedAnswers" binding:"required"`
	TimeSpent       int      `json:"timeSpent"` // seconds
	ExamID          string   `json:"examId,omitempty"`
}
