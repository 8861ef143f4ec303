package services

import (
	"context"
	"time"

	"studio-backend/internal/models"
	"studio-backend/internal/repositories"
	"studio-backend/internal/timeutil"
)

type StageService struct {
	Repo *repositories.StageRepository
}

func NewStageService(repo *repositories.StageRepository) *StageService {
	return &StageService{Repo: repo}
}

func (s *StageService) CreateStage(ctx context.Context, userID int, req *models.CreateStageRequest) (*models.Stage, error) {
	if req.ClientID == 0 {
		return nil, Invalid("client_id is required")
	}
	if req.StageDesc == "" {
		return nil, Invalid("stage_desc is required")
	}

	date := timeutil.Now()
	if req.Date != "" {
		parsed, err := time.ParseInLocation(timeutil.DateLayout, req.Date, timeutil.IST)
		if err != nil {
			return nil, Invalid("date must be YYYY-MM-DD")
		}
		date = parsed
	}

	stage := &models.Stage{
		UserID:    userID,
		ClientID:  req.ClientID,
		Date:      date,
		StageDesc: req.StageDesc,
	}
	if err := s.Repo.Create(ctx, stage); err != nil {
		return nil, err
	}
	return stage, nil
}

func (s *StageService) ListStages(ctx context.Context) ([]*models.Stage, error) {
	return s.Repo.List(ctx)
}

func (s *StageService) ListByClient(ctx context.Context, clientID int) ([]*models.Stage, error) {
	return s.Repo.ListByClient(ctx, clientID)
}
