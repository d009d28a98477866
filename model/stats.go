package model

import "time"

// UserStats is the per-user denormalized statistics document. It is created
// lazily on the first answered question, or by the repair scripts.
type UserStats struct {
	UserID string `bson:"userId" json:"userId"`

	// Point counters. By convention totalPoints tracks
	// normalPoints + 30*greenPoints + 40*bluePoints; only the award
	// helper maintains it, there is no schema validator.
	NormalPoints int `bson:"normalPoints" json:"normalPoints"`
	GreenPoints  int `bson:"greenPoints" json:"greenPoints"`
	BluePoints   int `bson:"bluePoints" json:"bluePoints"`
	TotalPoints  int `bson:"totalPoints" json:"totalPoints"`

	TotalQuestionsAttempted int `bson:"totalQuestionsAttempted" json:"totalQuestionsAttempted"`
	TotalCorrectAnswers     int `bson:"totalCorrectAnswers" json:"totalCorrectAnswers"`
	TotalIncorrectAnswers   int `bson:"totalIncorrectAnswers" json:"totalIncorrectAnswers"`

	TotalExams          int     `bson:"totalExams" json:"totalExams"`
	TotalExamsCompleted int     `bson:"totalExamsCompleted" json:"totalExamsCompleted"`
	AverageScore        float64 `bson:"averageScore" json:"averageScore"`
	TotalScore          float64 `bson:"totalScore" json:"totalScore"`
	StudyHours          int     `bson:"studyHours" json:"studyHours"`
	TotalTimeSpent      int     `bson:"totalTimeSpent" json:"totalTimeSpent"` // seconds

	// Rank is computed externally (leaderboard pass) and denormalized here.
	Rank int `bson:"rank" json:"rank"`

	Achievements   []Achievement    `bson:"achievements" json:"achievements"`
	ModuleProgress []ModuleProgress `bson:"moduleProgress" json:"moduleProgress"`
	WeeklyActivity []DailyActivity  `bson:"weeklyActivity" json:"weeklyActivity"`

	// One entry per question ever answered, keyed by question ID. Never pruned.
	AnsweredQuestions map[string]AnsweredQuestion `bson:"answeredQuestions" json:"answeredQuestions"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

type Achievement struct {
	AchievementID   string    `bson:"achievementId" json:"achievementId"`
	AchievementName string    `bson:"achievementName" json:"achievementName"`
	Description     string    `bson:"description" json:"description"`
	EarnedAt        time.Time `bson:"earnedAt" json:"earnedAt"`
}

type ModuleProgress struct {
	ModuleID           string    `bson:"moduleId" json:"moduleId"`
	ModuleName         string    `bson:"moduleName" json:"moduleName"`
	QuestionsAttempted int       `bson:"questionsAttempted" json:"questionsAttempted"`
	CorrectAnswers     int       `bson:"correctAnswers" json:"correctAnswers"`
	IncorrectAnswers   int       `bson:"incorrectAnswers" json:"incorrectAnswers"`
	TimeSpent          int       `bson:"timeSpent" json:"timeSpent"` // seconds
	LastAttempted      time.Time `bson:"lastAttempted" json:"lastAttempted"`
}

// DailyActivity is one bucket of the weekly activity series. The series
// covers at most the last 7 calendar days, oldest first.
type DailyActivity struct {
	Date               time.Time `bson:"date" json:"date"`
	QuestionsAttempted int       `bson:"questionsAttempted" json:"questionsAttempted"`
	CorrectAnswers     int       `bson:"correctAnswers" json:"correctAnswers"`
	TimeSpent          int       `bson:"timeSpent" json:"timeSpent"` // seconds
	ExamsCompleted     int       `bson:"examsCompleted" json:"examsCompleted"`
}

type AnsweredQuestion struct {
	SelectedAnswers []string  `bson:"selectedAnswers" json:"selectedAnswers"`
	IsVerified      bool      `bson:"isVerified" json:"isVerified"`
	IsCorrect       bool      `bson:"isCorrect" json:"isCorrect"`
	AnsweredAt      time.Time `bson:"answeredAt" json:"answeredAt"`
	ExamID          string    `bson:"examId,omitempty" json:"examId,omitempty"`
	ModuleID        string    `bson:"moduleId" json:"moduleId"`
}
