package models

import "time"

// InteriorPreset is a reusable named bundle of estimate items with a
// precomputed total, independent of any client. Used as a template source
// when building new estimates.
type InteriorPreset struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	Items       []EstimateItem `json:"items"`
	TotalAmount float64        `json:"total_amount"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type PresetRequest struct {
	Name  string         `json:"name"`
	Items []EstimateItem `json:"items"`
}
