package model

import "time"

const (
	PlanStatusActive   = "Active"
	PlanStatusInactive = "Inactive"
	PlanStatusArchived = "Archived"
)

type PlanFeature struct {
	Text     string `bson:"text" json:"text"`
	Included bool   `bson:"included" json:"included"`
}

type SubscriptionPlan struct {
	PlanID    string        `bson:"planId" json:"planId"`
	Name      string        `bson:"name" json:"name"`
	Price     float64       `bson:"price" json:"price"`
	OldPrice  *float64      `bson:"oldPrice" json:"oldPrice"`
	Period    string        `bson:"period" json:"period"`
	Features  []PlanFeature `bson:"features" json:"features"`
	Status    string        `bson:"status" json:"status"`
	Order     int           `bson:"order" json:"order"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// CreatePlanRequest accepts features as raw values because the field is
// polymorphic: legacy clients send plain strings, newer ones send
// {text, included} objects. Normalization happens at the ingress boundary.
type CreatePlanRequest struct {
	Name     string   `json:"name"`
	Price    *float64 `json:"price"`
	OldPrice *float64 `json:"oldPrice"`
	Period   string   `json:"period"`
	Features []any    `json:"features"`
	Status   string   `json:"status"`
	Order    *int     `json:"order"`
}

// UpdatePlanRequest uses pointers throughout so a provided zero value
// (for example price 0) still overwrites.
type UpdatePlanRequest struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	OldPrice *float64 `json:"oldPrice"`
	Period   *string  `json:"period"`
	Features []any    `json:"features"`
	Status   *string  `json:"status"`
	Order    *int     `json:"order"`
}
