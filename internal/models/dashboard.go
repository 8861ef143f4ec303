package models

// DashboardStats is the admin overview: entity counts plus collected
// revenue and spend totals.
type DashboardStats struct {
	Clients          int     `json:"clients"`
	PendingEstimates int     `json:"pending_estimates"`
	ApprovedEstimates int    `json:"approved_estimates"`
	OpenQuotes       int     `json:"open_quotes"`
	TotalIncome      float64 `json:"total_income"`
	TotalExpense     float64 `json:"total_expense"`
	Balance          float64 `json:"balance"`
}
