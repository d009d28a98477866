package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"main/model"
	"main/usecase"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

type memPlanStore struct {
	plans map[string]*model.SubscriptionPlan
}

func newMemPlanStore() *memPlanStore {
	return &memPlanStore{plans: make(map[string]*model.SubscriptionPlan)}
}

func (m *memPlanStore) ListPlans(_ context.Context) ([]*model.SubscriptionPlan, error) {
	var out []*model.SubscriptionPlan
	for _, plan := range m.plans {
		out = append(out, plan)
	}
	return out, nil
}

func (m *memPlanStore) FindByID(_ context.Context, planID string) (*model.SubscriptionPlan, error) {
	return m.plans[planID], nil
}

func (m *memPlanStore) FindByName(_ context.Context, name string) (*model.SubscriptionPlan, error) {
	for _, plan := range m.plans {
		if plan.Name == name {
			return plan, nil
		}
	}
	return nil, nil
}

func (m *memPlanStore) InsertPlan(_ context.Context, plan *model.SubscriptionPlan) error {
	m.plans[plan.PlanID] = plan
	return nil
}

func (m *memPlanStore) UpdatePlan(_ context.Context, planID string, fields bson.M) (int64, error) {
	plan, ok := m.plans[planID]
	if !ok {
		return 0, nil
	}
	if v, ok := fields["name"]; ok {
		plan.Name = v.(string)
	}
	if v, ok := fields["price"]; ok {
		plan.Price = v.(float64)
	}
	if v, ok := fields["features"]; ok {
		plan.Features = v.([]model.PlanFeature)
	}
	return 1, nil
}

func (m *memPlanStore) DeletePlan(_ context.Context, planID string) (int64, error) {
	if _, ok := m.plans[planID]; !ok {
		return 0, nil
	}
	delete(m.plans, planID)
	return 1, nil
}

func setupPlanRouter(store usecase.PlanStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPlanHandler(&usecase.PlanService{PlanRepo: store})

	r := gin.New()
	r.GET("/plans", h.ListPlans)
	r.GET("/plans/:id", h.GetPlan)
	r.POST("/plans", h.CreatePlan)
	r.PATCH("/plans/:id", h.UpdatePlan)
	r.DELETE("/plans/:id", h.DeletePlan)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreatePlanEndpoint(t *testing.T) {
	r := setupPlanRouter(newMemPlanStore())

	w := doJSON(t, r, http.MethodPost, "/plans", gin.H{
		"name":     "Semester",
		"price":    1500,
		"features": []any{"All modules", gin.H{"text": "Exam mode", "included": false}},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data model.SubscriptionPlan `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.Name != "Semester" || resp.Data.Price != 1500 {
		t.Errorf("unexpected plan: %+v", resp.Data)
	}
	if len(resp.Data.Features) != 2 || !resp.Data.Features[0].Included || resp.Data.Features[1].Included {
		t.Errorf("features not normalized: %+v", resp.Data.Features)
	}

	// Duplicate name.
	w = doJSON(t, r, http.MethodPost, "/plans", gin.H{"name": "Semester", "price": 900})
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 for duplicate name, got %d", w.Code)
	}

	// Missing price.
	w = doJSON(t, r, http.MethodPost, "/plans", gin.H{"name": "Annual"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing price, got %d", w.Code)
	}

	// Missing name.
	w = doJSON(t, r, http.MethodPost, "/plans", gin.H{"price": 100})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing name, got %d", w.Code)
	}
}

func TestUpdatePlanEndpoint(t *testing.T) {
	store := newMemPlanStore()
	r := setupPlanRouter(store)

	w := doJSON(t, r, http.MethodPost, "/plans", gin.H{"name": "Semester", "price": 1500})
	if w.Code != http.StatusCreated {
		t.Fatalf("seed failed: %d", w.Code)
	}
	var created struct {
		Data model.SubscriptionPlan `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	// Explicit price 0 overwrites.
	w = doJSON(t, r, http.MethodPatch, "/plans/"+created.Data.PlanID, gin.H{"price": 0})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var updated struct {
		Data model.SubscriptionPlan `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if updated.Data.Price != 0 {
		t.Errorf("expected price 0, got %v", updated.Data.Price)
	}

	w = doJSON(t, r, http.MethodPatch, "/plans/does-not-exist", gin.H{"price": 10})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestDeletePlanEndpoint(t *testing.T) {
	store := newMemPlanStore()
	r := setupPlanRouter(store)

	w := doJSON(t, r, http.MethodPost, "/plans", gin.H{"name": "Temp", "price": 10})
	var created struct {
		Data model.SubscriptionPlan `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	w = doJSON(t, r, http.MethodDelete, "/plans/"+created.Data.PlanID, nil)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodDelete, "/plans/"+created.Data.PlanID, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}
}

func TestListPlansEmpty(t *testing.T) {
	r := setupPlanRouter(newMemPlanStore())

	w := doJSON(t, r, http.MethodGet, "/plans", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Data struct {
			Plans []model.SubscriptionPlan `json:"plans"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.Plans == nil {
		t.Error("expected an empty list, not null")
	}
}
