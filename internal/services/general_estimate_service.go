package services

import (
	"context"

	"studio-backend/internal/models"
	"studio-backend/internal/pricing"
	"studio-backend/internal/repositories"
)

type GeneralEstimateService struct {
	Repo *repositories.GeneralEstimateRepository
}

func NewGeneralEstimateService(repo *repositories.GeneralEstimateRepository) *GeneralEstimateService {
	return &GeneralEstimateService{Repo: repo}
}

func validGeneralType(t string) bool {
	switch t {
	case models.GeneralTypePermit, models.GeneralTypeBuilding, models.GeneralType3D, models.GeneralTypeOther:
		return true
	}
	return false
}

func (s *GeneralEstimateService) Create(ctx context.Context, userID int, req *models.CreateGeneralEstimateRequest) (*models.GeneralEstimate, error) {
	if req.ClientID == 0 {
		return nil, Invalid("client_id is required")
	}
	if len(req.Items) == 0 {
		return nil, Invalid("at least one item is required")
	}
	if req.EstimateType == "" {
		req.EstimateType = models.GeneralTypeOther
	}
	if !validGeneralType(req.EstimateType) {
		return nil, Invalid("estimate_type must be permit, building, 3d or other")
	}
	if req.DiscountType == "" {
		req.DiscountType = models.DiscountPercentage
	}
	if !validDiscountType(req.DiscountType) {
		return nil, Invalid("discount_type must be percentage or fixed")
	}

	subtotal := pricing.GeneralSubtotal(req.Items)
	estimate := &models.GeneralEstimate{
		UserID:       userID,
		ClientID:     req.ClientID,
		EstimateName: req.EstimateName,
		EstimateType: req.EstimateType,
		Items:        req.Items,
		Subtotal:     subtotal,
		Discount:     req.Discount,
		DiscountType: req.DiscountType,
		TotalAmount:  pricing.ApplyDiscount(subtotal, req.Discount, req.DiscountType),
		Status:       models.EstimateStatusPending,
	}

	if err := s.Repo.Create(ctx, estimate); err != nil {
		return nil, err
	}
	return estimate, nil
}

func (s *GeneralEstimateService) Get(ctx context.Context, id int) (*models.GeneralEstimate, error) {
	estimate, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return estimate, nil
}

func (s *GeneralEstimateService) List(ctx context.Context) ([]*models.GeneralEstimate, error) {
	return s.Repo.List(ctx)
}

func (s *GeneralEstimateService) ListByClient(ctx context.Context, clientID int) ([]*models.GeneralEstimate, error) {
	return s.Repo.ListByClient(ctx, clientID)
}

func (s *GeneralEstimateService) Update(ctx context.Context, id int, req *models.UpdateGeneralEstimateRequest) (*models.GeneralEstimate, error) {
	estimate, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	if req.EstimateName != "" {
		estimate.EstimateName = req.EstimateName
	}
	if req.EstimateType != "" {
		if !validGeneralType(req.EstimateType) {
			return nil, Invalid("estimate_type must be permit, building, 3d or other")
		}
		estimate.EstimateType = req.EstimateType
	}
	if req.Items != nil {
		estimate.Items = req.Items
	}
	if req.DiscountType != "" {
		if !validDiscountType(req.DiscountType) {
			return nil, Invalid("discount_type must be percentage or fixed")
		}
		estimate.DiscountType = req.DiscountType
	}
	estimate.Discount = req.Discount
	if req.Status != "" {
		switch req.Status {
		case models.EstimateStatusPending, models.EstimateStatusApproved, models.EstimateStatusCompleted:
			estimate.Status = req.Status
		default:
			return nil, Invalid("invalid status")
		}
	}

	estimate.Subtotal = pricing.GeneralSubtotal(estimate.Items)
	estimate.TotalAmount = pricing.ApplyDiscount(estimate.Subtotal, estimate.Discount, estimate.DiscountType)

	if err := s.Repo.Update(ctx, estimate); err != nil {
		return nil, ErrNotFound
	}
	return estimate, nil
}

func (s *GeneralEstimateService) Delete(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return ErrNotFound
	}
	return nil
}
