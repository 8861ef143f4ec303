package models

import "time"

// General estimate types (non-interior work)
const (
	GeneralTypePermit   = "permit"
	GeneralTypeBuilding = "building"
	GeneralType3D       = "3d"
	GeneralTypeOther    = "other"
)

// GeneralItem is one area-rate line of a general estimate
type GeneralItem struct {
	Particulars   string  `json:"particulars"`
	AmountPerSqFt float64 `json:"amount_per_sq_ft"`
	SqFeet        float64 `json:"sq_feet"`
	TotalAmount   float64 `json:"total_amount"`
}

type GeneralEstimate struct {
	ID           int           `json:"id"`
	UserID       int           `json:"user_id"`
	ClientID     int           `json:"client_id"`
	EstimateName string        `json:"estimate_name"`
	EstimateType string        `json:"estimate_type"`
	Items        []GeneralItem `json:"items"`
	Subtotal     float64       `json:"subtotal"`
	Discount     float64       `json:"discount"`
	DiscountType string        `json:"discount_type"`
	TotalAmount  float64       `json:"total_amount"`
	Status       string        `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

type CreateGeneralEstimateRequest struct {
	ClientID     int           `json:"client_id"`
	EstimateName string        `json:"estimate_name"`
	EstimateType string        `json:"estimate_type"`
	Items        []GeneralItem `json:"items"`
	Discount     float64       `json:"discount"`
	DiscountType string        `json:"discount_type"`
}

type UpdateGeneralEstimateRequest struct {
	EstimateName string        `json:"estimate_name"`
	EstimateType string        `json:"estimate_type"`
	Items        []GeneralItem `json:"items"`
	Discount     float64       `json:"discount"`
	DiscountType string        `json:"discount_type"`
	Status       string        `json:"status"`
}
