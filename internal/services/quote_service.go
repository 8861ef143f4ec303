package services

import (
	"context"

	"studio-backend/internal/models"
	"studio-backend/internal/repositories"
)

type QuoteService struct {
	Repo *repositories.QuoteRepository
}

func NewQuoteService(repo *repositories.QuoteRepository) *QuoteService {
	return &QuoteService{Repo: repo}
}

// QuoteFromRequest applies the lead-capture defaults: the enquiry form is
// public and half-filled submissions are accepted, only a name is required.
func QuoteFromRequest(req *models.CreateQuoteRequest) (*models.Quote, error) {
	if req.Name == "" {
		return nil, Invalid("name is required")
	}
	return &models.Quote{
		Name:            req.Name,
		Phone:           req.Phone,
		RequestCall:     req.RequestCall,
		ServiceInterest: req.ServiceInterest,
		SqFeet:          req.SqFeet,
		Package:         req.Package,
		AdditionalInfo:  req.AdditionalInfo,
	}, nil
}

func (s *QuoteService) CreateQuote(ctx context.Context, req *models.CreateQuoteRequest) (*models.Quote, error) {
	quote, err := QuoteFromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, quote); err != nil {
		return nil, err
	}
	return quote, nil
}

func (s *QuoteService) ListQuotes(ctx context.Context) ([]*models.Quote, error) {
	return s.Repo.List(ctx)
}

func (s *QuoteService) DeleteQuote(ctx context.Context, id int) error {
	return s.Repo.Delete(ctx, id)
}
