package models

import "time"

// Income status: pending on creation (approval advance), paid once collected,
// completed when the project closes out.
const (
	IncomeStatusPending   = "pending"
	IncomeStatusPaid      = "paid"
	IncomeStatusCompleted = "completed"
)

// Collection methods
const (
	IncomeMethodCash   = "cash"
	IncomeMethodUPI    = "upi"
	IncomeMethodBank   = "bank"
	IncomeMethodOnline = "online"
)

type InteriorIncome struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	ClientID  int       `json:"client_id"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	Method    *string   `json:"method"` // null until collected (cash/upi/bank/online)
	MarkedBy  string    `json:"marked_by"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateIncomeRequest struct {
	ClientID int     `json:"client_id"`
	Amount   float64 `json:"amount"`
	Status   string  `json:"status"`
	Method   *string `json:"method"`
	Date     string  `json:"date"`
}

// UpdateIncomeRequest is the cash-collection action: status/method/amount.
// Pointer fields distinguish "leave unchanged" from explicit values.
type UpdateIncomeRequest struct {
	Amount   *float64 `json:"amount"`
	Status   *string  `json:"status"`
	Method   *string  `json:"method"`
	MarkedBy string   `json:"marked_by"`
}
