package models

import "time"

// Stage is an append-only timeline event on a client's project. One is
// inserted automatically with StageDesc "approved" when an estimate is
// approved.
type Stage struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	ClientID  int       `json:"client_id"`
	Date      time.Time `json:"date"`
	StageDesc string    `json:"stage_desc"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateStageRequest struct {
	ClientID  int    `json:"client_id"`
	Date      string `json:"date"`
	StageDesc string `json:"stage_desc"`
}
