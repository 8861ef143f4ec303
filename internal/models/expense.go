package models

import "time"

// Expense is a project-tied cost. CommonExpense is the same shape without a
// client: firm overhead (office rent, salaries, tools).
type Expense struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	ClientID  int       `json:"client_id"`
	Category  string    `json:"category"`
	Notes     string    `json:"notes"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
	AddedBy   string    `json:"added_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CommonExpense struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Category  string    `json:"category"`
	Notes     string    `json:"notes"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
	AddedBy   string    `json:"added_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateExpenseRequest struct {
	ClientID int     `json:"client_id"`
	Category string  `json:"category"`
	Notes    string  `json:"notes"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
}

type CreateCommonExpenseRequest struct {
	Category string  `json:"category"`
	Notes    string  `json:"notes"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
}
