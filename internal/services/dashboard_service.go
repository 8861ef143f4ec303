package services

import (
	"context"
	"encoding/json"
	"time"

	"studio-backend/internal/cache"
	"studio-backend/internal/models"
	"studio-backend/internal/repositories"
)

const dashboardCacheTTL = 60 * time.Second

// DashboardService assembles the admin overview stats. Counts and sums come
// straight from Postgres; the assembled result is cached for a minute.
type DashboardService struct {
	ClientRepo   *repositories.ClientRepository
	EstimateRepo *repositories.InteriorEstimateRepository
	QuoteRepo    *repositories.QuoteRepository
	IncomeRepo   *repositories.IncomeRepository
	ExpenseRepo  *repositories.ExpenseRepository
	CommonRepo   *repositories.CommonExpenseRepository
}

func NewDashboardService(
	clientRepo *repositories.ClientRepository,
	estimateRepo *repositories.InteriorEstimateRepository,
	quoteRepo *repositories.QuoteRepository,
	incomeRepo *repositories.IncomeRepository,
	expenseRepo *repositories.ExpenseRepository,
	commonRepo *repositories.CommonExpenseRepository,
) *DashboardService {
	return &DashboardService{
		ClientRepo:   clientRepo,
		EstimateRepo: estimateRepo,
		QuoteRepo:    quoteRepo,
		IncomeRepo:   incomeRepo,
		ExpenseRepo:  expenseRepo,
		CommonRepo:   commonRepo,
	}
}

func (s *DashboardService) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	if data, ok := cache.GetCached(ctx, cache.DashboardStatsKey); ok {
		var stats models.DashboardStats
		if err := json.Unmarshal(data, &stats); err == nil {
			return &stats, nil
		}
	}

	stats, err := s.collect(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(stats); err == nil {
		cache.SetCached(ctx, cache.DashboardStatsKey, data, dashboardCacheTTL)
	}
	return stats, nil
}

func (s *DashboardService) collect(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	var err error

	if stats.Clients, err = s.ClientRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.PendingEstimates, err = s.EstimateRepo.CountByStatus(ctx, models.EstimateStatusPending); err != nil {
		return nil, err
	}
	if stats.ApprovedEstimates, err = s.EstimateRepo.CountByStatus(ctx, models.EstimateStatusApproved); err != nil {
		return nil, err
	}
	if stats.OpenQuotes, err = s.QuoteRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalIncome, err = s.IncomeRepo.SumCollected(ctx); err != nil {
		return nil, err
	}

	expenses, err := s.ExpenseRepo.Sum(ctx)
	if err != nil {
		return nil, err
	}
	common, err := s.CommonRepo.Sum(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalExpense = expenses + common
	stats.Balance = stats.TotalIncome - stats.TotalExpense

	return &stats, nil
}
