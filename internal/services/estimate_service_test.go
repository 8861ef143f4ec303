package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"studio-backend/internal/models"
	"studio-backend/internal/repositories"
)

// fakeApprovalTx records the cascade operations so tests can assert on them.
type fakeApprovalTx struct {
	estimate *models.InteriorEstimate

	markedID       int
	deletedClient  int
	deletedExclude int
	siblingCount   int64
	stage          *models.Stage
	income         *models.InteriorIncome
}

func (f *fakeApprovalTx) GetEstimate(ctx context.Context, id int) (*models.InteriorEstimate, error) {
	if f.estimate == nil || f.estimate.ID != id {
		return nil, errors.New("no rows")
	}
	return f.estimate, nil
}

func (f *fakeApprovalTx) MarkApproved(ctx context.Context, id int, at time.Time) (int64, error) {
	f.markedID = id
	return 1, nil
}

func (f *fakeApprovalTx) DeleteSiblings(ctx context.Context, clientID, excludeID int) (int64, error) {
	f.deletedClient = clientID
	f.deletedExclude = excludeID
	return f.siblingCount, nil
}

func (f *fakeApprovalTx) InsertStage(ctx context.Context, s *models.Stage) error {
	f.stage = s
	return nil
}

func (f *fakeApprovalTx) InsertIncome(ctx context.Context, in *models.InteriorIncome) error {
	f.income = in
	return nil
}

type fakeEstimateStore struct {
	estimates map[int]*models.InteriorEstimate
	tx        *fakeApprovalTx
	nextID    int
}

func newFakeEstimateStore() *fakeEstimateStore {
	return &fakeEstimateStore{estimates: map[int]*models.InteriorEstimate{}, nextID: 1}
}

func (f *fakeEstimateStore) Create(ctx context.Context, e *models.InteriorEstimate) error {
	e.ID = f.nextID
	f.nextID++
	f.estimates[e.ID] = e
	return nil
}

func (f *fakeEstimateStore) Get(ctx context.Context, id int) (*models.InteriorEstimate, error) {
	e, ok := f.estimates[id]
	if !ok {
		return nil, errors.New("no rows")
	}
	return e, nil
}

func (f *fakeEstimateStore) List(ctx context.Context) ([]*models.InteriorEstimate, error) {
	var out []*models.InteriorEstimate
	for _, e := range f.estimates {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEstimateStore) ListByClient(ctx context.Context, clientID int) ([]*models.InteriorEstimate, error) {
	var out []*models.InteriorEstimate
	for _, e := range f.estimates {
		if e.ClientID == clientID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEstimateStore) Update(ctx context.Context, e *models.InteriorEstimate) error {
	if _, ok := f.estimates[e.ID]; !ok {
		return errors.New("no rows")
	}
	f.estimates[e.ID] = e
	return nil
}

func (f *fakeEstimateStore) Delete(ctx context.Context, id int) error {
	if _, ok := f.estimates[id]; !ok {
		return errors.New("no rows")
	}
	delete(f.estimates, id)
	return nil
}

func (f *fakeEstimateStore) WithApprovalTx(ctx context.Context, fn func(repositories.ApprovalTx) error) error {
	return fn(f.tx)
}

func TestCreateEstimateRecomputesTotals(t *testing.T) {
	store := newFakeEstimateStore()
	svc := NewEstimateService(store)

	req := &models.CreateInteriorEstimateRequest{
		ClientID: 3,
		Items: []models.EstimateItem{
			{Measurement: "area", Width: 10, Height: 10, Rate: 100, TotalAmount: 1}, // client total ignored
			{Measurement: "pieces", Count: 2, Rate: 500},
		},
		Discount:     10,
		DiscountType: models.DiscountPercentage,
	}

	estimate, err := svc.CreateEstimate(context.Background(), 7, req)
	if err != nil {
		t.Fatalf("CreateEstimate: %v", err)
	}
	if estimate.Subtotal != 11000 {
		t.Errorf("subtotal: got %v want 11000", estimate.Subtotal)
	}
	if estimate.TotalAmount != 9900 {
		t.Errorf("total: got %v want 9900", estimate.TotalAmount)
	}
	if estimate.Status != models.EstimateStatusPending {
		t.Errorf("status: got %q want pending", estimate.Status)
	}
	if estimate.UserID != 7 {
		t.Errorf("user_id: got %d want 7", estimate.UserID)
	}
}

func TestCreateEstimateValidation(t *testing.T) {
	svc := NewEstimateService(newFakeEstimateStore())
	ctx := context.Background()

	item := models.EstimateItem{Measurement: "pieces", Count: 1, Rate: 100}

	_, err := svc.CreateEstimate(ctx, 1, &models.CreateInteriorEstimateRequest{Items: []models.EstimateItem{item}})
	if !IsValidation(err) {
		t.Errorf("missing client_id: got %v, want validation error", err)
	}

	_, err = svc.CreateEstimate(ctx, 1, &models.CreateInteriorEstimateRequest{ClientID: 1})
	if !IsValidation(err) {
		t.Errorf("no items: got %v, want validation error", err)
	}

	_, err = svc.CreateEstimate(ctx, 1, &models.CreateInteriorEstimateRequest{
		ClientID:     1,
		Items:        []models.EstimateItem{item},
		DiscountType: "bulk",
	})
	if !IsValidation(err) {
		t.Errorf("bad discount_type: got %v, want validation error", err)
	}
}

func TestApproveCascade(t *testing.T) {
	store := newFakeEstimateStore()
	store.tx = &fakeApprovalTx{
		estimate: &models.InteriorEstimate{
			ID:          5,
			ClientID:    2,
			TotalAmount: 80000,
			Status:      models.EstimateStatusPending,
		},
		siblingCount: 3,
	}
	svc := NewEstimateService(store)

	result, err := svc.Approve(context.Background(), 5, 9)
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}

	if !result.Success || result.ApprovedID != 5 {
		t.Errorf("result: %+v", result)
	}
	if result.DeletedCount != 3 {
		t.Errorf("deleted count: got %d want 3", result.DeletedCount)
	}
	if store.tx.markedID != 5 {
		t.Errorf("marked id: got %d want 5", store.tx.markedID)
	}
	if store.tx.deletedClient != 2 || store.tx.deletedExclude != 5 {
		t.Errorf("siblings deleted for client=%d exclude=%d", store.tx.deletedClient, store.tx.deletedExclude)
	}

	stage := store.tx.stage
	if stage == nil || stage.StageDesc != "approved" || stage.ClientID != 2 || stage.UserID != 9 {
		t.Errorf("stage: %+v", stage)
	}

	income := store.tx.income
	if income == nil {
		t.Fatal("no income inserted")
	}
	if income.Amount != 40000 {
		t.Errorf("advance amount: got %v want 40000 (50%% of total)", income.Amount)
	}
	if income.Status != models.IncomeStatusPending {
		t.Errorf("income status: got %q want pending", income.Status)
	}
	if income.Method != nil {
		t.Errorf("income method: got %v want nil", *income.Method)
	}
	if result.IncomeAmount != income.Amount {
		t.Errorf("result income amount: got %v want %v", result.IncomeAmount, income.Amount)
	}
}

func TestApproveAlreadyApproved(t *testing.T) {
	store := newFakeEstimateStore()
	store.tx = &fakeApprovalTx{
		estimate: &models.InteriorEstimate{ID: 5, ClientID: 2, Status: models.EstimateStatusApproved},
	}
	svc := NewEstimateService(store)

	_, err := svc.Approve(context.Background(), 5, 9)
	if !errors.Is(err, ErrAlreadyApproved) {
		t.Fatalf("got %v, want ErrAlreadyApproved", err)
	}
	if store.tx.markedID != 0 || store.tx.income != nil {
		t.Error("cascade side effects ran on an already approved estimate")
	}
}

func TestApproveMissingEstimate(t *testing.T) {
	store := newFakeEstimateStore()
	store.tx = &fakeApprovalTx{}
	svc := NewEstimateService(store)

	_, err := svc.Approve(context.Background(), 42, 9)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestUpdateEstimateRecomputesTotals(t *testing.T) {
	store := newFakeEstimateStore()
	svc := NewEstimateService(store)
	ctx := context.Background()

	created, err := svc.CreateEstimate(ctx, 1, &models.CreateInteriorEstimateRequest{
		ClientID: 1,
		Items:    []models.EstimateItem{{Measurement: "pieces", Count: 1, Rate: 1000}},
	})
	if err != nil {
		t.Fatalf("CreateEstimate: %v", err)
	}

	updated, err := svc.UpdateEstimate(ctx, created.ID, &models.UpdateInteriorEstimateRequest{
		Items:        []models.EstimateItem{{Measurement: "pieces", Count: 3, Rate: 1000}},
		Discount:     500,
		DiscountType: models.DiscountFixed,
	})
	if err != nil {
		t.Fatalf("UpdateEstimate: %v", err)
	}
	if updated.Subtotal != 3000 {
		t.Errorf("subtotal: got %v want 3000", updated.Subtotal)
	}
	if updated.TotalAmount != 2500 {
		t.Errorf("total: got %v want 2500", updated.TotalAmount)
	}

	_, err = svc.UpdateEstimate(ctx, created.ID, &models.UpdateInteriorEstimateRequest{Status: "archived"})
	if !IsValidation(err) {
		t.Errorf("bad status: got %v, want validation error", err)
	}
}
