package models

import "time"

// Estimate lifecycle. Approval is the transition with side effects: siblings
// of the client are removed and a stage plus an advance income record are
// created in the same transaction.
const (
	EstimateStatusPending   = "pending"
	EstimateStatusApproved  = "approved"
	EstimateStatusCompleted = "completed"
)

// Measurement types for interior estimate items
const (
	MeasurementArea          = "area"
	MeasurementPieces        = "pieces"
	MeasurementRunning       = "running"
	MeasurementRunningSqFeet = "running_sq_feet"
)

// Discount types shared by interior and general estimates
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// EstimateItem is one priced line of an interior estimate. Width/Height are
// used for area items, Length for running measurements, Count for pieces.
type EstimateItem struct {
	SectionID   int     `json:"section_id,omitempty"`
	Material    string  `json:"material"`
	Description string  `json:"description"`
	Measurement string  `json:"measurement"`
	Width       float64 `json:"width,omitempty"`
	Height      float64 `json:"height,omitempty"`
	Length      float64 `json:"length,omitempty"`
	Count       float64 `json:"count,omitempty"`
	Rate        float64 `json:"rate"`
	TotalAmount float64 `json:"total_amount"`
}

type InteriorEstimate struct {
	ID           int            `json:"id"`
	UserID       int            `json:"user_id"`
	ClientID     int            `json:"client_id"`
	EstimateName string         `json:"estimate_name"`
	Items        []EstimateItem `json:"items"`
	Subtotal     float64        `json:"subtotal"`
	Discount     float64        `json:"discount"`
	DiscountType string         `json:"discount_type"`
	TotalAmount  float64        `json:"total_amount"`
	Status       string         `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

type CreateInteriorEstimateRequest struct {
	ClientID     int            `json:"client_id"`
	EstimateName string         `json:"estimate_name"`
	Items        []EstimateItem `json:"items"`
	Discount     float64        `json:"discount"`
	DiscountType string         `json:"discount_type"`
}

type UpdateInteriorEstimateRequest struct {
	EstimateName string         `json:"estimate_name"`
	Items        []EstimateItem `json:"items"`
	Discount     float64        `json:"discount"`
	DiscountType string         `json:"discount_type"`
	Status       string         `json:"status"`
}

// ApprovalResult reports what the approval cascade did
type ApprovalResult struct {
	Success      bool    `json:"success"`
	ApprovedID   int     `json:"approved_id"`
	DeletedCount int     `json:"deleted_count"`
	IncomeAmount float64 `json:"income_amount"`
}
