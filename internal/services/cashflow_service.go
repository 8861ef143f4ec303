package services

import (
	"context"
	"fmt"
	"sort"

	"studio-backend/internal/models"
	"studio-backend/internal/repositories"
)

type CashFlowService struct {
	IncomeRepo  *repositories.IncomeRepository
	ExpenseRepo *repositories.ExpenseRepository
	CommonRepo  *repositories.CommonExpenseRepository
}

func NewCashFlowService(
	incomeRepo *repositories.IncomeRepository,
	expenseRepo *repositories.ExpenseRepository,
	commonRepo *repositories.CommonExpenseRepository,
) *CashFlowService {
	return &CashFlowService{
		IncomeRepo:  incomeRepo,
		ExpenseRepo: expenseRepo,
		CommonRepo:  commonRepo,
	}
}

type CashFlowResponse struct {
	Summary models.CashFlowSummary `json:"summary"`
	Entries []models.CashFlowEntry `json:"entries"`
}

// GetCashFlow merges collected income with project and overhead expenses
// into one newest-first list with a running balance. Pure projection; the
// balance is only as correct as the full record set fetched here.
func (s *CashFlowService) GetCashFlow(ctx context.Context) (*CashFlowResponse, error) {
	incomes, err := s.IncomeRepo.ListCollected(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.ExpenseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	common, err := s.CommonRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	entries := BuildCashFlow(incomes, expenses, common)

	var summary models.CashFlowSummary
	for _, e := range entries {
		if e.Kind == models.CashFlowIncome {
			summary.TotalIncome += e.Amount
		} else {
			summary.TotalExpense += e.Amount
		}
	}
	summary.Balance = summary.TotalIncome - summary.TotalExpense

	return &CashFlowResponse{Summary: summary, Entries: entries}, nil
}

// BuildCashFlow produces the combined ledger view: sorted oldest-first to
// accumulate the running balance (+income, -expense), then reversed so the
// newest entry leads.
func BuildCashFlow(
	incomes []*models.InteriorIncome,
	expenses []*models.Expense,
	common []*models.CommonExpense,
) []models.CashFlowEntry {
	entries := make([]models.CashFlowEntry, 0, len(incomes)+len(expenses)+len(common))

	for _, in := range incomes {
		method := ""
		if in.Method != nil {
			method = *in.Method
		}
		entries = append(entries, models.CashFlowEntry{
			Kind:        models.CashFlowIncome,
			Source:      "interior_income",
			RefID:       in.ID,
			ClientID:    in.ClientID,
			Description: fmt.Sprintf("income (%s)", orUnspecified(method)),
			Amount:      in.Amount,
			Date:        in.Date,
		})
	}
	for _, e := range expenses {
		entries = append(entries, models.CashFlowEntry{
			Kind:        models.CashFlowExpense,
			Source:      "expense",
			RefID:       e.ID,
			ClientID:    e.ClientID,
			Description: e.Category,
			Amount:      e.Amount,
			Date:        e.Date,
		})
	}
	for _, e := range common {
		entries = append(entries, models.CashFlowEntry{
			Kind:        models.CashFlowExpense,
			Source:      "common_expense",
			RefID:       e.ID,
			Description: e.Category,
			Amount:      e.Amount,
			Date:        e.Date,
		})
	}

	// oldest first for the accumulation
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})

	balance := 0.0
	for i := range entries {
		if entries[i].Kind == models.CashFlowIncome {
			balance += entries[i].Amount
		} else {
			balance -= entries[i].Amount
		}
		entries[i].Balance = balance
	}

	// newest first for display
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries
}

func orUnspecified(s string) string {
	if s == "" {
		return "unspecified"
	}
	return s
}
