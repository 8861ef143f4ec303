package services

import (
	"testing"
	"time"

	"studio-backend/internal/models"
)

func day(n int) time.Time {
	return time.Date(2025, 6, n, 0, 0, 0, 0, time.UTC)
}

func TestBuildCashFlowOrderingAndBalance(t *testing.T) {
	cash := models.IncomeMethodCash
	incomes := []*models.InteriorIncome{
		{ID: 1, ClientID: 1, Amount: 50000, Method: &cash, Date: day(1)},
		{ID: 2, ClientID: 1, Amount: 30000, Method: &cash, Date: day(10)},
	}
	expenses := []*models.Expense{
		{ID: 3, ClientID: 1, Category: "Carpentry labour", Amount: 12000, Date: day(5)},
	}
	common := []*models.CommonExpense{
		{ID: 4, Category: "Office rent", Amount: 8000, Date: day(8)},
	}

	entries := BuildCashFlow(incomes, expenses, common)
	if len(entries) != 4 {
		t.Fatalf("got %d entries, want 4", len(entries))
	}

	// Newest first
	for i := 1; i < len(entries); i++ {
		if entries[i].Date.After(entries[i-1].Date) {
			t.Fatalf("entries not newest-first at index %d", i)
		}
	}

	// Oldest-first accumulation: +50000, -12000, -8000, +30000
	wantBalances := map[int]float64{1: 50000, 3: 38000, 4: 30000, 2: 60000}
	for _, e := range entries {
		if want := wantBalances[e.RefID]; e.Balance != want {
			t.Errorf("ref %d balance: got %v want %v", e.RefID, e.Balance, want)
		}
	}

	if entries[0].RefID != 2 || entries[0].Balance != 60000 {
		t.Errorf("head entry: %+v", entries[0])
	}
}

func TestBuildCashFlowDescriptions(t *testing.T) {
	upi := models.IncomeMethodUPI
	entries := BuildCashFlow(
		[]*models.InteriorIncome{
			{ID: 1, Amount: 100, Method: &upi, Date: day(2)},
			{ID: 2, Amount: 100, Method: nil, Date: day(1)},
		},
		[]*models.Expense{{ID: 3, Category: "Paint", Amount: 50, Date: day(3)}},
		nil,
	)

	byRef := map[int]models.CashFlowEntry{}
	for _, e := range entries {
		byRef[e.RefID] = e
	}

	if got := byRef[1].Description; got != "income (upi)" {
		t.Errorf("income description: got %q", got)
	}
	if got := byRef[2].Description; got != "income (unspecified)" {
		t.Errorf("nil method description: got %q", got)
	}
	if got := byRef[3].Description; got != "Paint" {
		t.Errorf("expense description: got %q", got)
	}
	if byRef[3].Kind != models.CashFlowExpense || byRef[3].Source != "expense" {
		t.Errorf("expense entry: %+v", byRef[3])
	}
}

func TestBuildCashFlowEmpty(t *testing.T) {
	entries := BuildCashFlow(nil, nil, nil)
	if len(entries) != 0 {
		t.Fatalf("got %d entries, want 0", len(entries))
	}
}
