package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"main/model"
	"main/usecase"

	"github.com/gin-gonic/gin"
)

type memStatsStore struct {
	records map[string]*model.UserStats
}

func newMemStatsStore() *memStatsStore {
	return &memStatsStore{records: make(map[string]*model.UserStats)}
}

func (m *memStatsStore) FindByUserID(_ context.Context, userID string) (*model.UserStats, error) {
	return m.records[userID], nil
}

func (m *memStatsStore) Save(_ context.Context, stats *model.UserStats) error {
	m.records[stats.UserID] = stats
	return nil
}

func (m *memStatsStore) FindMissingWeeklyActivity(_ context.Context) ([]*model.UserStats, error) {
	return nil, nil
}

func (m *memStatsStore) SetWeeklyActivity(_ context.Context, userID string, series []model.DailyActivity) error {
	m.records[userID].WeeklyActivity = series
	return nil
}

type memModuleStore struct {
	modules map[string]*model.Module
}

func (m *memModuleStore) FindModule(_ context.Context, moduleID string) (*model.Module, error) {
	return m.modules[moduleID], nil
}

func (m *memModuleStore) ModuleIDsBySemester(_ context.Context, semester string) ([]string, error) {
	var ids []string
	for _, mod := range m.modules {
		if mod.Semester == semester {
			ids = append(ids, mod.ModuleID)
		}
	}
	return ids, nil
}

type memQuestionStore struct {
	questions map[string]*model.Question
}

func (m *memQuestionStore) FindQuestion(_ context.Context, questionID string) (*model.Question, error) {
	return m.questions[questionID], nil
}

func setupStatsRouter(svc *usecase.StatsService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewStatsHandler(svc)

	r := gin.New()
	authed := r.Group("/", func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
		}
		c.Next()
	})
	authed.GET("/users/my-stats", h.MyStats)
	authed.POST("/questions/:id/answer", h.SubmitAnswer)
	return r
}

func TestMyStatsEndpointNewUser(t *testing.T) {
	svc := &usecase.StatsService{
		StatsRepo:  newMemStatsStore(),
		ModuleRepo: &memModuleStore{},
	}
	r := setupStatsRouter(svc, "u1")

	w := doJSON(t, r, http.MethodGet, "/users/my-stats", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for a user with no stats, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	// Every field the dashboard reads must be present with a usable zero.
	for field, want := range map[string]string{
		"examsCompleted":          "0",
		"averageScore":            "0",
		"studyHours":              "0",
		"totalQuestionsAttempted": "0",
		"totalCorrectAnswers":     "0",
		"totalIncorrectAnswers":   "0",
		"moduleProgress":          "[]",
		"weeklyActivity":          "[]",
		"answeredQuestions":       "{}",
	} {
		raw, ok := resp.Data[field]
		if !ok {
			t.Errorf("missing field %q", field)
			continue
		}
		if string(raw) != want {
			t.Errorf("field %q: expected %s, got %s", field, want, raw)
		}
	}
}

func TestMyStatsEndpointUnauthorized(t *testing.T) {
	svc := &usecase.StatsService{StatsRepo: newMemStatsStore(), ModuleRepo: &memModuleStore{}}
	r := setupStatsRouter(svc, "")

	w := doJSON(t, r, http.MethodGet, "/users/my-stats", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without a user, got %d", w.Code)
	}
}

func TestSubmitAnswerEndpoint(t *testing.T) {
	store := newMemStatsStore()
	svc := &usecase.StatsService{
		StatsRepo: store,
		ModuleRepo: &memModuleStore{modules: map[string]*model.Module{
			"anat": {ModuleID: "anat", Name: "Anatomy", Semester: "S1"},
		}},
		QuestionRepo: &memQuestionStore{questions: map[string]*model.Question{
			"q1": {
				QuestionID:     "q1",
				ModuleID:       "anat",
				CorrectAnswers: []string{"b"},
				Difficulty:     model.DifficultyNormal,
			},
		}},
		Now: func() time.Time { return time.Date(2025, 3, 15, 10, 0, 0, 0, time.Local) },
	}
	r := setupStatsRouter(svc, "u1")

	w := doJSON(t, r, http.MethodPost, "/questions/q1/answer", gin.H{
		"selectedAnswers": []string{"b"},
		"timeSpent":       45,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data usecase.AnswerResult `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Data.IsCorrect || resp.Data.PointsAwarded != 1 {
		t.Errorf("unexpected result: %+v", resp.Data)
	}

	if stats := store.records["u1"]; stats == nil || stats.TotalQuestionsAttempted != 1 {
		t.Errorf("stats not persisted: %+v", stats)
	}

	w = doJSON(t, r, http.MethodPost, "/questions/unknown/answer", gin.H{
		"selectedAnswers": []string{"a"},
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown question, got %d", w.Code)
	}
}
