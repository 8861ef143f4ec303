package repositories

import (
	"context"
	"encoding/json"
	"time"

	"studio-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ApprovalTx is the set of storage operations the approval cascade performs.
// The pgx implementation runs them inside one transaction; tests supply an
// in-memory fake.
type ApprovalTx interface {
	GetEstimate(ctx context.Context, id int) (*models.InteriorEstimate, error)
	MarkApproved(ctx context.Context, id int, at time.Time) (int64, error)
	DeleteSiblings(ctx context.Context, clientID, excludeID int) (int64, error)
	InsertStage(ctx context.Context, s *models.Stage) error
	InsertIncome(ctx context.Context, in *models.InteriorIncome) error
}

type InteriorEstimateRepository struct {
	DB *pgxpool.Pool
}

func NewInteriorEstimateRepository(db *pgxpool.Pool) *InteriorEstimateRepository {
	return &InteriorEstimateRepository{DB: db}
}

func scanEstimate(row pgx.Row) (*models.InteriorEstimate, error) {
	var e models.InteriorEstimate
	var items []byte
	err := row.Scan(&e.ID, &e.UserID, &e.ClientID, &e.EstimateName, &items,
		&e.Subtotal, &e.Discount, &e.DiscountType, &e.TotalAmount, &e.Status,
		&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &e.Items); err != nil {
		return nil, err
	}
	return &e, nil
}

const estimateColumns = `id, user_id, client_id, estimate_name, items, subtotal,
        discount, discount_type, total_amount, status, created_at, updated_at`

func (r *InteriorEstimateRepository) Create(ctx context.Context, e *models.InteriorEstimate) error {
	items, err := json.Marshal(e.Items)
	if err != nil {
		return err
	}
	return r.DB.QueryRow(ctx,
		`INSERT INTO interior_estimates(user_id, client_id, estimate_name, items,
                subtotal, discount, discount_type, total_amount, status)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
         RETURNING id, created_at, updated_at`,
		e.UserID, e.ClientID, e.EstimateName, items,
		e.Subtotal, e.Discount, e.DiscountType, e.TotalAmount, e.Status,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func (r *InteriorEstimateRepository) Get(ctx context.Context, id int) (*models.InteriorEstimate, error) {
	return scanEstimate(r.DB.QueryRow(ctx,
		`SELECT `+estimateColumns+` FROM interior_estimates WHERE id=$1`, id))
}

func (r *InteriorEstimateRepository) List(ctx context.Context) ([]*models.InteriorEstimate, error) {
	return r.listWhere(ctx, `ORDER BY created_at DESC`)
}

func (r *InteriorEstimateRepository) ListByClient(ctx context.Context, clientID int) ([]*models.InteriorEstimate, error) {
	return r.listWhere(ctx, `WHERE client_id=$1 ORDER BY created_at DESC`, clientID)
}

func (r *InteriorEstimateRepository) listWhere(ctx context.Context, clause string, args ...interface{}) ([]*models.InteriorEstimate, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+estimateColumns+` FROM interior_estimates `+clause, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var estimates []*models.InteriorEstimate
	for rows.Next() {
		e, err := scanEstimate(rows)
		if err != nil {
			return nil, err
		}
		estimates = append(estimates, e)
	}
	return estimates, rows.Err()
}

func (r *InteriorEstimateRepository) Update(ctx context.Context, e *models.InteriorEstimate) error {
	items, err := json.Marshal(e.Items)
	if err != nil {
		return err
	}
	tag, err := r.DB.Exec(ctx,
		`UPDATE interior_estimates SET estimate_name=$1, items=$2, subtotal=$3,
                discount=$4, discount_type=$5, total_amount=$6, status=$7,
                updated_at=CURRENT_TIMESTAMP
         WHERE id=$8`,
		e.EstimateName, items, e.Subtotal, e.Discount, e.DiscountType,
		e.TotalAmount, e.Status, e.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *InteriorEstimateRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM interior_estimates WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *InteriorEstimateRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	var count int
	err := r.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM interior_estimates WHERE status=$1`, status).Scan(&count)
	return count, err
}

// WithApprovalTx runs the approval cascade inside a single transaction.
// The whole cascade commits or rolls back together, so a failure after the
// status flip cannot leave half the side effects behind.
func (r *InteriorEstimateRepository) WithApprovalTx(ctx context.Context, fn func(ApprovalTx) error) error {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(&approvalTx{tx: tx}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

type approvalTx struct {
	tx pgx.Tx
}

func (a *approvalTx) GetEstimate(ctx context.Context, id int) (*models.InteriorEstimate, error) {
	// FOR UPDATE so two concurrent approvals of the same estimate serialize
	return scanEstimate(a.tx.QueryRow(ctx,
		`SELECT `+estimateColumns+` FROM interior_estimates WHERE id=$1 FOR UPDATE`, id))
}

func (a *approvalTx) MarkApproved(ctx context.Context, id int, at time.Time) (int64, error) {
	tag, err := a.tx.Exec(ctx,
		`UPDATE interior_estimates SET status=$1, updated_at=$2 WHERE id=$3`,
		models.EstimateStatusApproved, at, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (a *approvalTx) DeleteSiblings(ctx context.Context, clientID, excludeID int) (int64, error) {
	// The approved estimate is excluded by id, not by re-checking status
	tag, err := a.tx.Exec(ctx,
		`DELETE FROM interior_estimates
         WHERE client_id=$1 AND id<>$2 AND status<>$3`,
		clientID, excludeID, models.EstimateStatusCompleted)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (a *approvalTx) InsertStage(ctx context.Context, s *models.Stage) error {
	return a.tx.QueryRow(ctx,
		`INSERT INTO stages(user_id, client_id, date, stage_desc)
         VALUES($1, $2, $3, $4)
         RETURNING id, created_at, updated_at`,
		s.UserID, s.ClientID, s.Date, s.StageDesc,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (a *approvalTx) InsertIncome(ctx context.Context, in *models.InteriorIncome) error {
	return a.tx.QueryRow(ctx,
		`INSERT INTO interior_income(user_id, client_id, amount, status, method, marked_by, date)
         VALUES($1, $2, $3, $4, $5, $6, $7)
         RETURNING id, created_at, updated_at`,
		in.UserID, in.ClientID, in.Amount, in.Status, in.Method, in.MarkedBy, in.Date,
	).Scan(&in.ID, &in.CreatedAt, &in.UpdatedAt)
}
