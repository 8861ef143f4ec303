package repositories

import (
	"context"
	"encoding/json"

	"studio-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GeneralEstimateRepository struct {
	DB *pgxpool.Pool
}

func NewGeneralEstimateRepository(db *pgxpool.Pool) *GeneralEstimateRepository {
	return &GeneralEstimateRepository{DB: db}
}

const generalColumns = `id, user_id, client_id, estimate_name, estimate_type, items,
        subtotal, discount, discount_type, total_amount, status, created_at, updated_at`

func scanGeneralEstimate(row pgx.Row) (*models.GeneralEstimate, error) {
	var e models.GeneralEstimate
	var items []byte
	err := row.Scan(&e.ID, &e.UserID, &e.ClientID, &e.EstimateName, &e.EstimateType,
		&items, &e.Subtotal, &e.Discount, &e.DiscountType, &e.TotalAmount, &e.Status,
		&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &e.Items); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *GeneralEstimateRepository) Create(ctx context.Context, e *models.GeneralEstimate) error {
	items, err := json.Marshal(e.Items)
	if err != nil {
		return err
	}
	return r.DB.QueryRow(ctx,
		`INSERT INTO general_estimates(user_id, client_id, estimate_name, estimate_type,
                items, subtotal, discount, discount_type, total_amount, status)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
         RETURNING id, created_at, updated_at`,
		e.UserID, e.ClientID, e.EstimateName, e.EstimateType, items,
		e.Subtotal, e.Discount, e.DiscountType, e.TotalAmount, e.Status,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func (r *GeneralEstimateRepository) Get(ctx context.Context, id int) (*models.GeneralEstimate, error) {
	return scanGeneralEstimate(r.DB.QueryRow(ctx,
		`SELECT `+generalColumns+` FROM general_estimates WHERE id=$1`, id))
}

func (r *GeneralEstimateRepository) List(ctx context.Context) ([]*models.GeneralEstimate, error) {
	return r.listWhere(ctx, `ORDER BY created_at DESC`)
}

func (r *GeneralEstimateRepository) ListByClient(ctx context.Context, clientID int) ([]*models.GeneralEstimate, error) {
	return r.listWhere(ctx, `WHERE client_id=$1 ORDER BY created_at DESC`, clientID)
}

func (r *GeneralEstimateRepository) listWhere(ctx context.Context, clause string, args ...interface{}) ([]*models.GeneralEstimate, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+generalColumns+` FROM general_estimates `+clause, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var estimates []*models.GeneralEstimate
	for rows.Next() {
		e, err := scanGeneralEstimate(rows)
		if err != nil {
			return nil, err
		}
		estimates = append(estimates, e)
	}
	return estimates, rows.Err()
}

func (r *GeneralEstimateRepository) Update(ctx context.Context, e *models.GeneralEstimate) error {
	items, err := json.Marshal(e.Items)
	if err != nil {
		return err
	}
	tag, err := r.DB.Exec(ctx,
		`UPDATE general_estimates SET estimate_name=$1, estimate_type=$2, items=$3,
                subtotal=$4, discount=$5, discount_type=$6, total_amount=$7, status=$8,
                updated_at=CURRENT_TIMESTAMP
         WHERE id=$9`,
		e.EstimateName, e.EstimateType, items, e.Subtotal, e.Discount,
		e.DiscountType, e.TotalAmount, e.Status, e.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *GeneralEstimateRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM general_estimates WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
