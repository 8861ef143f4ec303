package services

import (
	"context"

	"studio-backend/internal/metrics"
	"studio-backend/internal/models"
	"studio-backend/internal/pricing"
	"studio-backend/internal/repositories"
	"studio-backend/internal/timeutil"
)

// interiorEstimateStore is implemented by InteriorEstimateRepository.
type interiorEstimateStore interface {
	Create(ctx context.Context, e *models.InteriorEstimate) error
	Get(ctx context.Context, id int) (*models.InteriorEstimate, error)
	List(ctx context.Context) ([]*models.InteriorEstimate, error)
	ListByClient(ctx context.Context, clientID int) ([]*models.InteriorEstimate, error)
	Update(ctx context.Context, e *models.InteriorEstimate) error
	Delete(ctx context.Context, id int) error
	WithApprovalTx(ctx context.Context, fn func(repositories.ApprovalTx) error) error
}

type EstimateService struct {
	Repo interiorEstimateStore
}

func NewEstimateService(repo interiorEstimateStore) *EstimateService {
	return &EstimateService{Repo: repo}
}

func validDiscountType(t string) bool {
	return t == models.DiscountPercentage || t == models.DiscountFixed
}

func (s *EstimateService) CreateEstimate(ctx context.Context, userID int, req *models.CreateInteriorEstimateRequest) (*models.InteriorEstimate, error) {
	if req.ClientID == 0 {
		return nil, Invalid("client_id is required")
	}
	if len(req.Items) == 0 {
		return nil, Invalid("at least one item is required")
	}
	if req.DiscountType == "" {
		req.DiscountType = models.DiscountPercentage
	}
	if !validDiscountType(req.DiscountType) {
		return nil, Invalid("discount_type must be percentage or fixed")
	}

	// Totals are always recomputed server-side
	subtotal := pricing.Subtotal(req.Items)
	estimate := &models.InteriorEstimate{
		UserID:       userID,
		ClientID:     req.ClientID,
		EstimateName: req.EstimateName,
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

func (s *EstimateService) GetEstimate(ctx context.Context, id int) (*models.InteriorEstimate, error) {
	estimate, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return estimate, nil
}

func (s *EstimateService) ListEstimates(ctx context.Context) ([]*models.InteriorEstimate, error) {
	return s.Repo.List(ctx)
}

func (s *EstimateService) ListByClient(ctx context.Context, clientID int) ([]*models.InteriorEstimate, error) {
	return s.Repo.ListByClient(ctx, clientID)
}

func (s *EstimateService) UpdateEstimate(ctx context.Context, id int, req *models.UpdateInteriorEstimateRequest) (*models.InteriorEstimate, error) {
	estimate, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}

	if req.EstimateName != "" {
		estimate.EstimateName = req.EstimateName
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

	estimate.Subtotal = pricing.Subtotal(estimate.Items)
	estimate.TotalAmount = pricing.ApplyDiscount(estimate.Subtotal, estimate.Discount, estimate.DiscountType)

	if err := s.Repo.Update(ctx, estimate); err != nil {
		return nil, ErrNotFound
	}
	return estimate, nil
}

func (s *EstimateService) DeleteEstimate(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return ErrNotFound
	}
	return nil
}

// Approve commits an estimate and runs the cascade: the client's other
// non-completed estimates are removed, an "approved" stage is appended to
// the timeline, and a 50% advance income record is created. The whole
// sequence runs in one transaction. Re-approving an approved estimate is
// rejected rather than re-running the side effects.
func (s *EstimateService) Approve(ctx context.Context, id, approverID int) (*models.ApprovalResult, error) {
	var result *models.ApprovalResult

	err := s.Repo.WithApprovalTx(ctx, func(tx repositories.ApprovalTx) error {
		estimate, err := tx.GetEstimate(ctx, id)
		if err != nil {
			return ErrNotFound
		}
		if estimate.Status == models.EstimateStatusApproved {
			return ErrAlreadyApproved
		}

		now := timeutil.Now()
		rows, err := tx.MarkApproved(ctx, id, now)
		if err != nil {
			return err
		}
		if rows == 0 {
			// deleted between lookup and update
			return ErrNotFound
		}

		deleted, err := tx.DeleteSiblings(ctx, estimate.ClientID, id)
		if err != nil {
			return err
		}

		stage := &models.Stage{
			UserID:    approverID,
			ClientID:  estimate.ClientID,
			Date:      now,
			StageDesc: "approved",
		}
		if err := tx.InsertStage(ctx, stage); err != nil {
			return err
		}

		income := &models.InteriorIncome{
			UserID:   approverID,
			ClientID: estimate.ClientID,
			Amount:   estimate.TotalAmount * 0.5,
			Status:   models.IncomeStatusPending,
			Method:   nil,
			Date:     now,
		}
		if err := tx.InsertIncome(ctx, income); err != nil {
			return err
		}

		result = &models.ApprovalResult{
			Success:      true,
			ApprovedID:   id,
			DeletedCount: int(deleted),
			IncomeAmount: income.Amount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.EstimatesApproved.Inc()
	return result, nil
}
