package usecase

import (
	"context"
	"errors"
	"strings"

	"main/model"
	"main/utils"

	"go.mongodb.org/mongo-driver/bson"
)

var (
	ErrPlanNotFound  = errors.New("plan not found")
	ErrPlanNameTaken = errors.New("plan name already exists")
	ErrPlanInvalid   = errors.New("name and price are required")
)

type PlanStore interface {
	ListPlans(ctx context.Context) ([]*model.SubscriptionPlan, error)
	FindByID(ctx context.Context, planID string) (*model.SubscriptionPlan, error)
	FindByName(ctx context.Context, name string) (*model.SubscriptionPlan, error)
	InsertPlan(ctx context.Context, plan *model.SubscriptionPlan) error
	UpdatePlan(ctx context.Context, planID string, fields bson.M) (int64, error)
	DeletePlan(ctx context.Context, planID string) (int64, error)
}

type PlanService struct {
	PlanRepo PlanStore
}

// NormalizeFeatures canonicalizes the polymorphic features field. Seed
// data and legacy clients send plain strings; newer clients send
// {text, included} objects. The function is total: bad entries are
// dropped, never rejected.
func NormalizeFeatures(raw []any) []model.PlanFeature {
	features := make([]model.PlanFeature, 0, len(raw))

	for _, entry := range raw {
		switch v := entry.(type) {
		case string:
			text := strings.TrimSpace(v)
			if text == "" {
				continue
			}
			features = append(features, model.PlanFeature{Text: text, Included: true})

		case map[string]any:
			text, _ := v["text"].(string)
			text = strings.TrimSpace(text)
			if text == "" {
				continue
			}
			included := true
			if flag, ok := v["included"].(bool); ok {
				included = flag
			}
			features = append(features, model.PlanFeature{Text: text, Included: included})

		case model.PlanFeature:
			text := strings.TrimSpace(v.Text)
			if text == "" {
				continue
			}
			features = append(features, model.PlanFeature{Text: text, Included: v.Included})
		}
	}

	return features
}

func (s *PlanService) ListPlans(ctx context.Context) ([]*model.SubscriptionPlan, error) {
	return s.PlanRepo.ListPlans(ctx)
}

func (s *PlanService) GetPlan(ctx context.Context, planID string) (*model.SubscriptionPlan, error) {
	plan, err := s.PlanRepo.FindByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}
	return plan, nil
}

func (s *PlanService) CreatePlan(ctx context.Context, req model.CreatePlanRequest) (*model.SubscriptionPlan, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || req.Price == nil {
		return nil, ErrPlanInvalid
	}

	existing, err := s.PlanRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		utils.TrackError("plans", "duplicate_name")
		return nil, ErrPlanNameTaken
	}

	plan := &model.SubscriptionPlan{
		PlanID:   utils.GenerateID(),
		Name:     name,
		Price:    *req.Price,
		OldPrice: req.OldPrice,
		Period:   "Semester",
		Features: NormalizeFeatures(req.Features),
		Status:   model.PlanStatusActive,
	}
	if req.Period != "" {
		plan.Period = req.Period
	}
	if req.Status != "" {
		plan.Status = req.Status
	}
	if req.Order != nil {
		plan.Order = *req.Order
	}

	if err := s.PlanRepo.InsertPlan(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *PlanService) UpdatePlan(ctx context.Context, planID string, req model.UpdatePlanRequest) (*model.SubscriptionPlan, error) {
	plan, err := s.PlanRepo.FindByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}

	fields := bson.M{}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrPlanInvalid
		}
		if name != plan.Name {
			existing, err := s.PlanRepo.FindByName(ctx, name)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.PlanID != planID {
				utils.TrackError("plans", "duplicate_name")
				return nil, ErrPlanNameTaken
			}
		}
		fields["name"] = name
	}
	// Pointer fields so a provided zero (price 0) still overwrites.
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.OldPrice != nil {
		fields["oldPrice"] = *req.OldPrice
	}
	if req.Period != nil {
		fields["period"] = *req.Period
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Order != nil {
		fields["order"] = *req.Order
	}
	if req.Features != nil {
		fields["features"] = NormalizeFeatures(req.Features)
	}

	if len(fields) > 0 {
		matched, err := s.PlanRepo.UpdatePlan(ctx, planID, fields)
		if err != nil {
			return nil, err
		}
		if matched == 0 {
			return nil, ErrPlanNotFound
		}
	}

	return s.GetPlan(ctx, planID)
}

func (s *PlanService) DeletePlan(ctx context.Context, planID string) error {
	deleted, err := s.PlanRepo.DeletePlan(ctx, planID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrPlanNotFound
	}
	return nil
}
