package services

import (
	"context"

	"studio-backend/internal/models"
	"studio-backend/internal/pricing"
	"studio-backend/internal/repositories"
)

type PresetService struct {
	Repo *repositories.PresetRepository
}

func NewPresetService(repo *repositories.PresetRepository) *PresetService {
	return &PresetService{Repo: repo}
}

// CreatePreset stores a reusable item bundle. Totals are recomputed here, so
// a preset's total always matches its items.
func (s *PresetService) CreatePreset(ctx context.Context, req *models.PresetRequest) (*models.InteriorPreset, error) {
	if req.Name == "" {
		return nil, Invalid("name is required")
	}
	if len(req.Items) == 0 {
		return nil, Invalid("at least one item is required")
	}

	preset := &models.InteriorPreset{
		Name:  req.Name,
		Items: req.Items,
	}
	preset.TotalAmount = pricing.Subtotal(preset.Items)

	if err := s.Repo.Create(ctx, preset); err != nil {
		return nil, err
	}
	return preset, nil
}

func (s *PresetService) GetPreset(ctx context.Context, id int) (*models.InteriorPreset, error) {
	preset, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return preset, nil
}

func (s *PresetService) ListPresets(ctx context.Context) ([]*models.InteriorPreset, error) {
	return s.Repo.List(ctx)
}

func (s *PresetService) UpdatePreset(ctx context.Context, id int, req *models.PresetRequest) (*models.InteriorPreset, error) {
	if req.Name == "" {
		return nil, Invalid("name is required")
	}
	if len(req.Items) == 0 {
		return nil, Invalid("at least one item is required")
	}

	preset := &models.InteriorPreset{
		ID:    id,
		Name:  req.Name,
		Items: req.Items,
	}
	preset.TotalAmount = pricing.Subtotal(preset.Items)

	if err := s.Repo.Update(ctx, preset); err != nil {
		return nil, ErrNotFound
	}
	return preset, nil
}

func (s *PresetService) DeletePreset(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return ErrNotFound
	}
	return nil
}
