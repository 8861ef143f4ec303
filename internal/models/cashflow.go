package models

import "time"

// Cash-flow entry kinds
const (
	CashFlowIncome  = "income"
	CashFlowExpense = "expense"
)

// CashFlowEntry is one row of the combined ledger view: collected income
// merged with project and overhead expenses. Not persisted; recomputed from
// the full record set on every read.
type CashFlowEntry struct {
	Kind        string    `json:"kind"` // income or expense
	Source      string    `json:"source"` // interior_income, expense, common_expense
	RefID       int       `json:"ref_id"`
	ClientID    int       `json:"client_id,omitempty"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Balance     float64   `json:"balance"` // running balance after this entry
	Date        time.Time `json:"date"`
}

// CashFlowSummary heads the cash-flow response
type CashFlowSummary struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	Balance      float64 `json:"balance"`
}
