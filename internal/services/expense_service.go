package services

import (
	"context"
	"time"

	"studio-backend/internal/models"
	"studio-backend/internal/repositories"
	"studio-backend/internal/timeutil"
)

type ExpenseService struct {
	ExpenseRepo *repositories.ExpenseRepository
	CommonRepo  *repositories.CommonExpenseRepository
}

func NewExpenseService(expenseRepo *repositories.ExpenseRepository, commonRepo *repositories.CommonExpenseRepository) *ExpenseService {
	return &ExpenseService{
		ExpenseRepo: expenseRepo,
		CommonRepo:  commonRepo,
	}
}

func parseExpenseDate(raw string) (time.Time, error) {
	if raw == "" {
		return timeutil.Now(), nil
	}
	parsed, err := time.ParseInLocation(timeutil.DateLayout, raw, timeutil.IST)
	if err != nil {
		return time.Time{}, Invalid("date must be YYYY-MM-DD")
	}
	return parsed, nil
}

func (s *ExpenseService) CreateExpense(ctx context.Context, userID int, addedBy string, req *models.CreateExpenseRequest) (*models.Expense, error) {
	if req.ClientID == 0 {
		return nil, Invalid("client_id is required")
	}
	if req.Amount <= 0 {
		return nil, Invalid("amount must be positive")
	}

	date, err := parseExpenseDate(req.Date)
	if err != nil {
		return nil, err
	}

	expense := &models.Expense{
		UserID:   userID,
		ClientID: req.ClientID,
		Category: req.Category,
		Notes:    req.Notes,
		Amount:   req.Amount,
		Date:     date,
		AddedBy:  addedBy,
	}
	if err := s.ExpenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *ExpenseService) ListExpenses(ctx context.Context) ([]*models.Expense, error) {
	return s.ExpenseRepo.List(ctx)
}

func (s *ExpenseService) ListByClient(ctx context.Context, clientID int) ([]*models.Expense, error) {
	return s.ExpenseRepo.ListByClient(ctx, clientID)
}

func (s *ExpenseService) DeleteExpense(ctx context.Context, id int) error {
	return s.ExpenseRepo.Delete(ctx, id)
}

// CreateCommonExpense records firm overhead; no client attached.
func (s *ExpenseService) CreateCommonExpense(ctx context.Context, userID int, addedBy string, req *models.CreateCommonExpenseRequest) (*models.CommonExpense, error) {
	if req.Amount <= 0 {
		return nil, Invalid("amount must be positive")
	}

	date, err := parseExpenseDate(req.Date)
	if err != nil {
		return nil, err
	}

	expense := &models.CommonExpense{
		UserID:   userID,
		Category: req.Category,
		Notes:    req.Notes,
		Amount:   req.Amount,
		Date:     date,
		AddedBy:  addedBy,
	}
	if err := s.CommonRepo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *ExpenseService) ListCommonExpenses(ctx context.Context) ([]*models.CommonExpense, error) {
	return s.CommonRepo.List(ctx)
}

func (s *ExpenseService) DeleteCommonExpense(ctx context.Context, id int) error {
	return s.CommonRepo.Delete(ctx, id)
}
