package services

import (
	"context"
	"time"

	"studio-backend/internal/models"
	"studio-backend/internal/repositories"
	"studio-backend/internal/timeutil"
)

type IncomeService struct {
	Repo *repositories.IncomeRepository
}

func NewIncomeService(repo *repositories.IncomeRepository) *IncomeService {
	return &IncomeService{Repo: repo}
}

func validIncomeStatus(s string) bool {
	switch s {
	case models.IncomeStatusPending, models.IncomeStatusPaid, models.IncomeStatusCompleted:
		return true
	}
	return false
}

func (s *IncomeService) CreateIncome(ctx context.Context, userID int, req *models.CreateIncomeRequest) (*models.InteriorIncome, error) {
	if req.ClientID == 0 {
		return nil, Invalid("client_id is required")
	}
	if req.Amount <= 0 {
		return nil, Invalid("amount must be positive")
	}
	if req.Status == "" {
		req.Status = models.IncomeStatusPending
	}
	if !validIncomeStatus(req.Status) {
		return nil, Invalid("status must be pending, paid or completed")
	}

	date := timeutil.Now()
	if req.Date != "" {
		parsed, err := time.ParseInLocation(timeutil.DateLayout, req.Date, timeutil.IST)
		if err != nil {
			return nil, Invalid("date must be YYYY-MM-DD")
		}
		date = parsed
	}

	income := &models.InteriorIncome{
		UserID:   userID,
		ClientID: req.ClientID,
		Amount:   req.Amount,
		Status:   req.Status,
		Method:   req.Method,
		Date:     date,
	}
	if err := s.Repo.Create(ctx, income); err != nil {
		return nil, err
	}
	return income, nil
}

func (s *IncomeService) GetIncome(ctx context.Context, id int) (*models.InteriorIncome, error) {
	income, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return income, nil
}

func (s *IncomeService) ListIncome(ctx context.Context) ([]*models.InteriorIncome, error) {
	return s.Repo.List(ctx)
}

func (s *IncomeService) ListByClient(ctx context.Context, clientID int) ([]*models.InteriorIncome, error) {
	return s.Repo.ListByClient(ctx, clientID)
}

// UpdateIncome is the cash-collection action: mark a pending advance as
// paid/completed, record the method and who collected it, optionally adjust
// the amount.
func (s *IncomeService) UpdateIncome(ctx context.Context, id int, markedBy string, req *models.UpdateIncomeRequest) (*models.InteriorIncome, error) {
	income, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	if req.Amount != nil {
		if *req.Amount <= 0 {
			return nil, Invalid("amount must be positive")
		}
		income.Amount = *req.Amount
	}
	if req.Status != nil {
		if !validIncomeStatus(*req.Status) {
			return nil, Invalid("status must be pending, paid or completed")
		}
		income.Status = *req.Status
	}
	if req.Method != nil {
		income.Method = req.Method
	}
	if markedBy != "" {
		income.MarkedBy = markedBy
	}

	if err := s.Repo.Update(ctx, income); err != nil {
		return nil, ErrNotFound
	}
	return income, nil
}
