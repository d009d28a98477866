package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"main/model"
	"main/utils"
)

// StatsStore is the slice of the stats repository the service needs.
type StatsStore interface {
	FindByUserID(ctx context.Context, userID string) (*model.UserStats, error)
	Save(ctx context.Context, stats *model.UserStats) error
	FindMissingWeeklyActivity(ctx context.Context) ([]*model.UserStats, error)
	SetWeeklyActivity(ctx context.Context, userID string, series []model.DailyActivity) error
}

type ModuleStore interface {
	FindModule(ctx context.Context, moduleID string) (*model.Module, error)
	ModuleIDsBySemester(ctx context.Context, semester string) ([]string, error)
}

type QuestionStore interface {
	FindQuestion(ctx context.Context, questionID string) (*model.Question, error)
}

var ErrQuestionNotFound = errors.New("question not found")

type StatsService struct {
	StatsRepo    StatsStore
	ModuleRepo   ModuleStore
	QuestionRepo QuestionStore

	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *StatsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// midnight truncates to local midnight.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// GenerateWeeklyActivity synthesizes up to 7 days of activity that sums
// back to the stored totals. The per-day count uses a uniform ceil, so
// the series may overshoot the true total; the backfill keeps that
// behavior rather than special-casing a remainder day.
func GenerateWeeklyActivity(totalAttempted, totalCorrect int, now time.Time) []model.DailyActivity {
	if totalAttempted <= 0 {
		return []model.DailyActivity{}
	}

	days := totalAttempted
	if days > 7 {
		days = 7
	}

	perDay := int(math.Ceil(float64(totalAttempted) / float64(days)))
	correctPerDay := int(math.Ceil(float64(totalCorrect) / float64(totalAttempted) * float64(perDay)))

	today := midnight(now)
	series := make([]model.DailyActivity, 0, days)
	for i := days - 1; i >= 0; i-- {
		series = append(series, model.DailyActivity{
			Date:               today.AddDate(0, 0, -i),
			QuestionsAttempted: perDay,
			CorrectAnswers:     correctPerDay,
			TimeSpent:          perDay * 60,
			ExamsCompleted:     0,
		})
	}
	return series
}

// BackfillWeeklyActivity runs the repair pass: every stats record with
// recorded attempts but an empty weekly series gets a synthesized one.
// A per-record write failure is logged and the batch continues.
func (s *StatsService) BackfillWeeklyActivity(ctx context.Context) (fixed, total int, err error) {
	records, err := s.StatsRepo.FindMissingWeeklyActivity(ctx)
	if err != nil {
		return 0, 0, err
	}

	total = len(records)
	for _, record := range records {
		// The query already filters, but re-check so a stale cursor
		// never overwrites good data.
		if record.TotalQuestionsAttempted <= 0 || len(record.WeeklyActivity) > 0 {
			continue
		}

		series := GenerateWeeklyActivity(record.TotalQuestionsAttempted, record.TotalCorrectAnswers, s.now())
		if err := s.StatsRepo.SetWeeklyActivity(ctx, record.UserID, series); err != nil {
			log.Printf("Failed to backfill weekly activity for user %s: %v", record.UserID, err)
			utils.TrackError("stats", "backfill_write_failed")
			continue
		}
		utils.StatsBackfillsTotal.Inc()
		fixed++
	}

	return fixed, total, nil
}

// MyStatsResponse is the stats endpoint payload. Every field has a
// usable zero value so a brand-new user renders as empty charts, not
// an error.
type MyStatsResponse struct {
	ExamsCompleted          int                               `json:"examsCompleted"`
	AverageScore            float64                           `json:"averageScore"`
	StudyHours              int                               `json:"studyHours"`
	TotalQuestionsAttempted int                               `json:"totalQuestionsAttempted"`
	TotalCorrectAnswers     int                               `json:"totalCorrectAnswers"`
	TotalIncorrectAnswers   int                               `json:"totalIncorrectAnswers"`
	ModuleProgress          []model.ModuleProgress            `json:"moduleProgress"`
	WeeklyActivity          []model.DailyActivity             `json:"weeklyActivity"`
	AnsweredQuestions       map[string]model.AnsweredQuestion `json:"answeredQuestions"`
}

// MyStats assembles the stats payload for a user. A missing stats
// document is a valid state and yields the zero-valued response.
// When semester is set, moduleProgress is filtered to that semester's
// modules.
func (s *StatsService) MyStats(ctx context.Context, userID, semester string) (*MyStatsResponse, error) {
	resp := &MyStatsResponse{
		ModuleProgress:    []model.ModuleProgress{},
		WeeklyActivity:    []model.DailyActivity{},
		AnsweredQuestions: map[string]model.AnsweredQuestion{},
	}

	stats, err := s.StatsRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		return resp, nil
	}

	if stats.TotalExams != 0 {
		resp.ExamsCompleted = stats.TotalExams
	} else {
		resp.ExamsCompleted = stats.TotalExamsCompleted
	}
	resp.AverageScore = stats.AverageScore
	resp.StudyHours = int(math.Round(float64(stats.TotalTimeSpent) / 3600))
	resp.TotalQuestionsAttempted = stats.TotalQuestionsAttempted
	resp.TotalCorrectAnswers = stats.TotalCorrectAnswers
	resp.TotalIncorrectAnswers = stats.TotalIncorrectAnswers

	if stats.ModuleProgress != nil {
		resp.ModuleProgress = stats.ModuleProgress
	}
	if stats.WeeklyActivity != nil {
		resp.WeeklyActivity = stats.WeeklyActivity
	}
	if stats.AnsweredQuestions != nil {
		resp.AnsweredQuestions = stats.AnsweredQuestions
	}

	if semester != "" && len(resp.ModuleProgress) > 0 {
		ids, err := s.ModuleRepo.ModuleIDsBySemester(ctx, semester)
		if err != nil {
			return nil, err
		}
		inSemester := make(map[string]bool, len(ids))
		for _, id := range ids {
			inSemester[id] = true
		}

		filtered := make([]model.ModuleProgress, 0, len(resp.ModuleProgress))
		for _, mp := range resp.ModuleProgress {
			if inSemester[mp.ModuleID] {
				filtered = append(filtered, mp)
			}
		}
		resp.ModuleProgress = filtered
	}

	return resp, nil
}

// AnswerResult is returned to the client after grading.
type AnswerResult struct {
	IsCorrect      bool     `json:"isCorrect"`
	CorrectAnswers []string `json:"correctAnswers"`
	Explanation    string   `json:"explanation,omitempty"`
	PointsAwarded  int      `json:"pointsAwarded"`
	TotalPoints    int      `json:"totalPoints"`
}

// SubmitAnswer grades a submission and eagerly folds it into the user's
// stats document: totals, points, module progress, today's weekly
// activity bucket and the answered-question log.
//
// Re-answering a question overwrites its log entry but still bumps the
// attempt counters; the repair scripts exist to offset that drift.
func (s *StatsService) SubmitAnswer(ctx context.Context, userID, questionID string, sub model.AnswerSubmission) (*AnswerResult, error) {
	question, err := s.QuestionRepo.FindQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}

	correct := gradeAnswer(question.CorrectAnswers, sub.SelectedAnswers)

	stats, err := s.StatsRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		stats = &model.UserStats{UserID: userID}
	}
	if stats.AnsweredQuestions == nil {
		stats.AnsweredQuestions = map[string]model.AnsweredQuestion{}
	}

	now := s.now()

	stats.TotalQuestionsAttempted++
	if correct {
		stats.TotalCorrectAnswers++
	} else {
		stats.TotalIncorrectAnswers++
	}
	stats.TotalTimeSpent += sub.TimeSpent

	points := 0
	if correct {
		points = awardPoints(stats, question.Difficulty)
	}

	s.upsertModuleProgress(ctx, stats, question.ModuleID, correct, sub.TimeSpent, now)
	bumpDailyActivity(stats, now, correct, sub.TimeSpent)

	stats.AnsweredQuestions[questionID] = model.AnsweredQuestion{
		SelectedAnswers: sub.SelectedAnswers,
		IsVerified:      question.IsVerified,
		IsCorrect:       correct,
		AnsweredAt:      now,
		ExamID:          sub.ExamID,
		ModuleID:        question.ModuleID,
	}

	if err := s.StatsRepo.Save(ctx, stats); err != nil {
		return nil, err
	}

	utils.TrackAnswer(correct)

	return &AnswerResult{
		IsCorrect:      correct,
		CorrectAnswers: question.CorrectAnswers,
		Explanation:    question.Explanation,
		PointsAwarded:  points,
		TotalPoints:    stats.TotalPoints,
	}, nil
}

// gradeAnswer compares selections as sets; order does not matter.
func gradeAnswer(correct, selected []string) bool {
	if len(correct) != len(selected) || len(correct) == 0 {
		return false
	}

	want := make(map[string]bool, len(correct))
	for _, key := range correct {
		want[key] = true
	}
	for _, key := range selected {
		if !want[key] {
			return false
		}
	}
	return true
}

// awardPoints increments the difficulty counter and keeps totalPoints
// on the normal + 30*green + 40*blue convention. Returns the delta.
func awardPoints(stats *model.UserStats, difficulty string) int {
	var delta int
	switch difficulty {
	case model.DifficultyGreen:
		stats.GreenPoints++
		delta = 30
	case model.DifficultyBlue:
		stats.BluePoints++
		delta = 40
	default:
		stats.NormalPoints++
		delta = 1
	}

	stats.TotalPoints = stats.NormalPoints + 30*stats.GreenPoints + 40*stats.BluePoints
	return delta
}

func (s *StatsService) upsertModuleProgress(ctx context.Context, stats *model.UserStats, moduleID string, correct bool, timeSpent int, now time.Time) {
	for i := range stats.ModuleProgress {
		if stats.ModuleProgress[i].ModuleID != moduleID {
			continue
		}
		stats.ModuleProgress[i].QuestionsAttempted++
		if correct {
			stats.ModuleProgress[i].CorrectAnswers++
		} else {
			stats.ModuleProgress[i].IncorrectAnswers++
		}
		stats.ModuleProgress[i].TimeSpent += timeSpent
		stats.ModuleProgress[i].LastAttempted = now
		return
	}

	entry := model.ModuleProgress{
		ModuleID:           moduleID,
		QuestionsAttempted: 1,
		TimeSpent:          timeSpent,
		LastAttempted:      now,
	}
	if correct {
		entry.CorrectAnswers = 1
	} else {
		entry.IncorrectAnswers = 1
	}

	// Name lookup is best-effort; a progress entry without a display
	// name is still usable.
	if module, err := s.ModuleRepo.FindModule(ctx, moduleID); err == nil && module != nil {
		entry.ModuleName = module.Name
	}

	stats.ModuleProgress = append(stats.ModuleProgress, entry)
}

// bumpDailyActivity updates today's bucket, keeping the series at most
// 7 calendar days long and oldest first.
func bumpDailyActivity(stats *model.UserStats, now time.Time, correct bool, timeSpent int) {
	today := midnight(now)

	n := len(stats.WeeklyActivity)
	if n > 0 && stats.WeeklyActivity[n-1].Date.Equal(today) {
		stats.WeeklyActivity[n-1].QuestionsAttempted++
		if correct {
			stats.WeeklyActivity[n-1].CorrectAnswers++
		}
		stats.WeeklyActivity[n-1].TimeSpent += timeSpent
	} else {
		bucket := model.DailyActivity{
			Date:               today,
			QuestionsAttempted: 1,
			TimeSpent:          timeSpent,
		}
		if correct {
			bucket.CorrectAnswers = 1
		}
		stats.WeeklyActivity = append(stats.WeeklyActivity, bucket)
	}

	cutoff := today.AddDate(0, 0, -6)
	trimmed := stats.WeeklyActivity[:0]
	for _, bucket := range stats.WeeklyActivity {
		if !bucket.Date.Before(cutoff) {
			trimmed = append(trimmed, bucket)
		}
	}
	stats.WeeklyActivity = trimmed
}
