package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"main/model"
)

type fakeStatsStore struct {
	records   map[string]*model.UserStats
	saved     int
	setSeries int
	failFor   map[string]bool
}

func newFakeStatsStore() *fakeStatsStore {
	return &fakeStatsStore{
		records: make(map[string]*model.UserStats),
		failFor: make(map[string]bool),
	}
}

func (f *fakeStatsStore) FindByUserID(_ context.Context, userID string) (*model.UserStats, error) {
	stats, ok := f.records[userID]
	if !ok {
		return nil, nil
	}
	copied := *stats
	return &copied, nil
}

func (f *fakeStatsStore) Save(_ context.Context, stats *model.UserStats) error {
	f.saved++
	copied := *stats
	f.records[stats.UserID] = &copied
	return nil
}

func (f *fakeStatsStore) FindMissingWeeklyActivity(_ context.Context) ([]*model.UserStats, error) {
	var out []*model.UserStats
	for _, stats := range f.records {
		if len(stats.WeeklyActivity) == 0 && stats.TotalQuestionsAttempted > 0 {
			copied := *stats
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeStatsStore) SetWeeklyActivity(_ context.Context, userID string, series []model.DailyActivity) error {
	if f.failFor[userID] {
		return errors.New("write failed")
	}
	f.setSeries++
	f.records[userID].WeeklyActivity = series
	return nil
}

type fakeModuleStore struct {
	modules map[string]*model.Module
}

func (f *fakeModuleStore) FindModule(_ context.Context, moduleID string) (*model.Module, error) {
	return f.modules[moduleID], nil
}

func (f *fakeModuleStore) ModuleIDsBySemester(_ context.Context, semester string) ([]string, error) {
	var ids []string
	for _, m := range f.modules {
		if m.Semester == semester {
			ids = append(ids, m.ModuleID)
		}
	}
	return ids, nil
}

type fakeQuestionStore struct {
	questions map[string]*model.Question
}

func (f *fakeQuestionStore) FindQuestion(_ context.Context, questionID string) (*model.Question, error) {
	return f.questions[questionID], nil
}

func fixedNow() time.Time {
	return time.Date(2025, 3, 15, 14, 30, 0, 0, time.Local)
}

func TestGenerateWeeklyActivity(t *testing.T) {
	now := fixedNow()
	midnightToday := time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name          string
		attempted     int
		correct       int
		wantDays      int
		wantPerDay    int
		wantCorrect   int
		wantTimeSpent int
	}{
		{
			name:      "zero attempts produces empty series",
			attempted: 0,
			correct:   0,
			wantDays:  0,
		},
		{
			name:          "fewer attempts than days",
			attempted:     3,
			correct:       2,
			wantDays:      3,
			wantPerDay:    1, // ceil(3/3)
			wantCorrect:   1, // ceil((2/3)*1)
			wantTimeSpent: 60,
		},
		{
			name:          "documented example",
			attempted:     100,
			correct:       45,
			wantDays:      7,
			wantPerDay:    15, // ceil(100/7)
			wantCorrect:   7,  // ceil((45/100)*15)
			wantTimeSpent: 900,
		},
		{
			name:          "all correct",
			attempted:     14,
			correct:       14,
			wantDays:      7,
			wantPerDay:    2,
			wantCorrect:   2,
			wantTimeSpent: 120,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series := GenerateWeeklyActivity(tt.attempted, tt.correct, now)

			if len(series) != tt.wantDays {
				t.Fatalf("expected %d days, got %d", tt.wantDays, len(series))
			}

			for i, day := range series {
				if day.QuestionsAttempted != tt.wantPerDay {
					t.Errorf("day %d: expected %d attempted, got %d", i, tt.wantPerDay, day.QuestionsAttempted)
				}
				if day.CorrectAnswers != tt.wantCorrect {
					t.Errorf("day %d: expected %d correct, got %d", i, tt.wantCorrect, day.CorrectAnswers)
				}
				if day.TimeSpent != tt.wantTimeSpent {
					t.Errorf("day %d: expected %d timeSpent, got %d", i, tt.wantTimeSpent, day.TimeSpent)
				}
				if day.ExamsCompleted != 0 {
					t.Errorf("day %d: backfill must not invent exams, got %d", i, day.ExamsCompleted)
				}

				// Oldest first, truncated to local midnight, ending today.
				wantDate := midnightToday.AddDate(0, 0, -(len(series) - 1 - i))
				if !day.Date.Equal(wantDate) {
					t.Errorf("day %d: expected date %v, got %v", i, wantDate, day.Date)
				}
			}
		})
	}
}

func TestBackfillWeeklyActivity(t *testing.T) {
	store := newFakeStatsStore()
	store.records["active"] = &model.UserStats{
		UserID:                  "active",
		TotalQuestionsAttempted: 100,
		TotalCorrectAnswers:     45,
	}
	store.records["untouched"] = &model.UserStats{
		UserID:                  "untouched",
		TotalQuestionsAttempted: 10,
		TotalCorrectAnswers:     5,
		WeeklyActivity: []model.DailyActivity{
			{Date: fixedNow(), QuestionsAttempted: 10},
		},
	}
	store.records["empty"] = &model.UserStats{UserID: "empty"}

	svc := &StatsService{StatsRepo: store, Now: fixedNow}

	fixed, total, err := svc.BackfillWeeklyActivity(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fixed != 1 || total != 1 {
		t.Fatalf("expected 1/1 fixed, got %d/%d", fixed, total)
	}

	got := store.records["active"].WeeklyActivity
	if len(got) != 7 {
		t.Fatalf("expected 7 synthesized days, got %d", len(got))
	}

	// Existing data must never be overwritten.
	if got := store.records["untouched"].WeeklyActivity; len(got) != 1 || got[0].QuestionsAttempted != 10 {
		t.Errorf("record with existing weekly activity was modified: %+v", got)
	}

	// Re-running is a no-op once the series exists.
	fixed, total, err = svc.BackfillWeeklyActivity(context.Background())
	if err != nil {
		t.Fatalf("unexpected error on second run: %v", err)
	}
	if fixed != 0 || total != 0 {
		t.Errorf("expected idempotent second run, got %d/%d", fixed, total)
	}
	if store.setSeries != 1 {
		t.Errorf("expected exactly one write, got %d", store.setSeries)
	}
}

func TestBackfillContinuesPastWriteFailures(t *testing.T) {
	store := newFakeStatsStore()
	store.records["bad"] = &model.UserStats{UserID: "bad", TotalQuestionsAttempted: 5, TotalCorrectAnswers: 2}
	store.records["good"] = &model.UserStats{UserID: "good", TotalQuestionsAttempted: 5, TotalCorrectAnswers: 2}
	store.failFor["bad"] = true

	svc := &StatsService{StatsRepo: store, Now: fixedNow}

	fixed, total, err := svc.BackfillWeeklyActivity(context.Background())
	if err != nil {
		t.Fatalf("batch must not abort on a per-record failure: %v", err)
	}
	if total != 2 {
		t.Errorf("expected 2 candidates, got %d", total)
	}
	if fixed != 1 {
		t.Errorf("expected 1 fixed, got %d", fixed)
	}
}

func TestMyStatsDefaultsForNewUser(t *testing.T) {
	svc := &StatsService{
		StatsRepo:  newFakeStatsStore(),
		ModuleRepo: &fakeModuleStore{},
		Now:        fixedNow,
	}

	resp, err := svc.MyStats(context.Background(), "nobody", "")
	if err != nil {
		t.Fatalf("missing stats must not be an error: %v", err)
	}

	if resp.ExamsCompleted != 0 || resp.AverageScore != 0 || resp.StudyHours != 0 ||
		resp.TotalQuestionsAttempted != 0 || resp.TotalCorrectAnswers != 0 || resp.TotalIncorrectAnswers != 0 {
		t.Errorf("expected zero counters, got %+v", resp)
	}
	if resp.ModuleProgress == nil || len(resp.ModuleProgress) != 0 {
		t.Errorf("moduleProgress must be an empty list, got %v", resp.ModuleProgress)
	}
	if resp.WeeklyActivity == nil || len(resp.WeeklyActivity) != 0 {
		t.Errorf("weeklyActivity must be an empty list, got %v", resp.WeeklyActivity)
	}
	if resp.AnsweredQuestions == nil {
		t.Error("answeredQuestions must be an empty map, not nil")
	}
}

func TestMyStatsAssembly(t *testing.T) {
	store := newFakeStatsStore()
	store.records["u1"] = &model.UserStats{
		UserID:                  "u1",
		TotalExamsCompleted:     4,
		AverageScore:            72.5,
		TotalTimeSpent:          7300, // rounds to 2 hours
		TotalQuestionsAttempted: 50,
		TotalCorrectAnswers:     30,
		TotalIncorrectAnswers:   20,
		ModuleProgress: []model.ModuleProgress{
			{ModuleID: "anat", QuestionsAttempted: 30},
			{ModuleID: "phys", QuestionsAttempted: 20},
		},
	}

	modules := &fakeModuleStore{modules: map[string]*model.Module{
		"anat": {ModuleID: "anat", Name: "Anatomy", Semester: "S1"},
		"phys": {ModuleID: "phys", Name: "Physiology", Semester: "S2"},
	}}

	svc := &StatsService{StatsRepo: store, ModuleRepo: modules, Now: fixedNow}

	resp, err := svc.MyStats(context.Background(), "u1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// totalExams is zero, so totalExamsCompleted wins.
	if resp.ExamsCompleted != 4 {
		t.Errorf("expected examsCompleted=4, got %d", resp.ExamsCompleted)
	}
	if resp.StudyHours != 2 {
		t.Errorf("expected studyHours=2, got %d", resp.StudyHours)
	}
	if len(resp.ModuleProgress) != 2 {
		t.Errorf("expected 2 progress entries, got %d", len(resp.ModuleProgress))
	}

	// totalExams takes precedence when set.
	store.records["u1"].TotalExams = 9
	resp, err = svc.MyStats(context.Background(), "u1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ExamsCompleted != 9 {
		t.Errorf("expected examsCompleted=9, got %d", resp.ExamsCompleted)
	}

	// Semester filter keeps only that semester's modules.
	resp, err = svc.MyStats(context.Background(), "u1", "S1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.ModuleProgress) != 1 || resp.ModuleProgress[0].ModuleID != "anat" {
		t.Errorf("expected only anatomy progress, got %+v", resp.ModuleProgress)
	}
}

func TestSubmitAnswer(t *testing.T) {
	store := newFakeStatsStore()
	modules := &fakeModuleStore{modules: map[string]*model.Module{
		"anat": {ModuleID: "anat", Name: "Anatomy", Semester: "S1"},
	}}
	questions := &fakeQuestionStore{questions: map[string]*model.Question{
		"q1": {
			QuestionID:     "q1",
			ModuleID:       "anat",
			CorrectAnswers: []string{"a", "c"},
			Difficulty:     model.DifficultyGreen,
			IsVerified:     true,
		},
	}}

	svc := &StatsService{
		StatsRepo:    store,
		ModuleRepo:   modules,
		QuestionRepo: questions,
		Now:          fixedNow,
	}

	// Correct multi-select, order independent.
	result, err := svc.SubmitAnswer(context.Background(), "u1", "q1",
		model.AnswerSubmission{SelectedAnswers: []string{"c", "a"}, TimeSpent: 90})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsCorrect {
		t.Error("expected correct grading")
	}
	if result.PointsAwarded != 30 {
		t.Errorf("green question should award 30 points, got %d", result.PointsAwarded)
	}

	stats := store.records["u1"]
	if stats.TotalQuestionsAttempted != 1 || stats.TotalCorrectAnswers != 1 {
		t.Errorf("counters not updated: %+v", stats)
	}
	if stats.GreenPoints != 1 || stats.TotalPoints != 30 {
		t.Errorf("points not on convention: green=%d total=%d", stats.GreenPoints, stats.TotalPoints)
	}
	if len(stats.ModuleProgress) != 1 || stats.ModuleProgress[0].ModuleName != "Anatomy" {
		t.Errorf("module progress missing: %+v", stats.ModuleProgress)
	}
	if len(stats.WeeklyActivity) != 1 || stats.WeeklyActivity[0].QuestionsAttempted != 1 {
		t.Errorf("weekly activity bucket missing: %+v", stats.WeeklyActivity)
	}
	if entry, ok := stats.AnsweredQuestions["q1"]; !ok || !entry.IsCorrect || entry.ModuleID != "anat" {
		t.Errorf("answered questions log wrong: %+v", stats.AnsweredQuestions)
	}

	// Wrong answer: counters advance, the log entry is overwritten.
	result, err = svc.SubmitAnswer(context.Background(), "u1", "q1",
		model.AnswerSubmission{SelectedAnswers: []string{"a"}, TimeSpent: 30})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsCorrect {
		t.Error("partial selection must grade incorrect")
	}

	stats = store.records["u1"]
	if stats.TotalQuestionsAttempted != 2 || stats.TotalIncorrectAnswers != 1 {
		t.Errorf("counters not updated on re-answer: %+v", stats)
	}
	if len(stats.AnsweredQuestions) != 1 {
		t.Errorf("expected one log entry per question, got %d", len(stats.AnsweredQuestions))
	}
	if stats.AnsweredQuestions["q1"].IsCorrect {
		t.Error("log entry should reflect the latest answer")
	}
	if len(stats.WeeklyActivity) != 1 || stats.WeeklyActivity[0].QuestionsAttempted != 2 {
		t.Errorf("same-day answers must share a bucket: %+v", stats.WeeklyActivity)
	}

	// Unknown question.
	if _, err := svc.SubmitAnswer(context.Background(), "u1", "missing",
		model.AnswerSubmission{SelectedAnswers: []string{"a"}}); err != ErrQuestionNotFound {
		t.Errorf("expected ErrQuestionNotFound, got %v", err)
	}
}

func TestBumpDailyActivityPrunesOldBuckets(t *testing.T) {
	now := fixedNow()
	stats := &model.UserStats{
		WeeklyActivity: []model.DailyActivity{
			{Date: midnight(now).AddDate(0, 0, -9), QuestionsAttempted: 3},
			{Date: midnight(now).AddDate(0, 0, -3), QuestionsAttempted: 2},
		},
	}

	bumpDailyActivity(stats, now, true, 60)

	if len(stats.WeeklyActivity) != 2 {
		t.Fatalf("expected stale bucket pruned, got %d buckets", len(stats.WeeklyActivity))
	}
	if stats.WeeklyActivity[0].Date.Before(midnight(now).AddDate(0, 0, -6)) {
		t.Errorf("bucket older than 7 days survived: %v", stats.WeeklyActivity[0].Date)
	}
	last := stats.WeeklyActivity[len(stats.WeeklyActivity)-1]
	if !last.Date.Equal(midnight(now)) || last.QuestionsAttempted != 1 {
		t.Errorf("today's bucket wrong: %+v", last)
	}
}
