package repositories

import (
	"context"

	"studio-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type IncomeRepository struct {
	DB *pgxpool.Pool
}

func NewIncomeRepository(db *pgxpool.Pool) *IncomeRepository {
	return &IncomeRepository{DB: db}
}

const incomeColumns = `id, user_id, client_id, amount, status, method, marked_by, date, created_at, updated_at`

func scanIncome(row pgx.Row) (*models.InteriorIncome, error) {
	var in models.InteriorIncome
	err := row.Scan(&in.ID, &in.UserID, &in.ClientID, &in.Amount, &in.Status,
		&in.Method, &in.MarkedBy, &in.Date, &in.CreatedAt, &in.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &in, nil
}

func (r *IncomeRepository) Create(ctx context.Context, in *models.InteriorIncome) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO interior_income(user_id, client_id, amount, status, method, marked_by, date)
         VALUES($1, $2, $3, $4, $5, $6, $7)
         RETURNING id, created_at, updated_at`,
		in.UserID, in.ClientID, in.Amount, in.Status, in.Method, in.MarkedBy, in.Date,
	).Scan(&in.ID, &in.CreatedAt, &in.UpdatedAt)
}

func (r *IncomeRepository) Get(ctx context.Context, id int) (*models.InteriorIncome, error) {
	return scanIncome(r.DB.QueryRow(ctx,
		`SELECT `+incomeColumns+` FROM interior_income WHERE id=$1`, id))
}

func (r *IncomeRepository) List(ctx context.Context) ([]*models.InteriorIncome, error) {
	return r.listWhere(ctx, `ORDER BY date DESC, id DESC`)
}

func (r *IncomeRepository) ListByClient(ctx context.Context, clientID int) ([]*models.InteriorIncome, error) {
	return r.listWhere(ctx, `WHERE client_id=$1 ORDER BY date DESC, id DESC`, clientID)
}

// ListCollected returns income that actually entered the books
// (status paid or completed), for the cash-flow view.
func (r *IncomeRepository) ListCollected(ctx context.Context) ([]*models.InteriorIncome, error) {
	return r.listWhere(ctx, `WHERE status IN ($1, $2) ORDER BY date DESC, id DESC`,
		models.IncomeStatusPaid, models.IncomeStatusCompleted)
}

func (r *IncomeRepository) listWhere(ctx context.Context, clause string, args ...interface{}) ([]*models.InteriorIncome, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+incomeColumns+` FROM interior_income `+clause, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var incomes []*models.InteriorIncome
	for rows.Next() {
		in, err := scanIncome(rows)
		if err != nil {
			return nil, err
		}
		incomes = append(incomes, in)
	}
	return incomes, rows.Err()
}

func (r *IncomeRepository) Update(ctx context.Context, in *models.InteriorIncome) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE interior_income SET amount=$1, status=$2, method=$3, marked_by=$4,
                updated_at=CURRENT_TIMESTAMP
         WHERE id=$5`,
		in.Amount, in.Status, in.Method, in.MarkedBy, in.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *IncomeRepository) SumCollected(ctx context.Context) (float64, error) {
	var total float64
	err := r.DB.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM interior_income WHERE status IN ($1, $2)`,
		models.IncomeStatusPaid, models.IncomeStatusCompleted).Scan(&total)
	return total, err
}
