package repositories

import (
	"context"

	"studio-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ExpenseRepository struct {
	DB *pgxpool.Pool
}

func NewExpenseRepository(db *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{DB: db}
}

func (r *ExpenseRepository) Create(ctx context.Context, e *models.Expense) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO expenses(user_id, client_id, category, notes, amount, date, added_by)
         VALUES($1, $2, $3, $4, $5, $6, $7)
         RETURNING id, created_at, updated_at`,
		e.UserID, e.ClientID, e.Category, e.Notes, e.Amount, e.Date, e.AddedBy,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func (r *ExpenseRepository) List(ctx context.Context) ([]*models.Expense, error) {
	return r.listWhere(ctx, `ORDER BY date DESC, id DESC`)
}

func (r *ExpenseRepository) ListByClient(ctx context.Context, clientID int) ([]*models.Expense, error) {
	return r.listWhere(ctx, `WHERE client_id=$1 ORDER BY date DESC, id DESC`, clientID)
}

func (r *ExpenseRepository) listWhere(ctx context.Context, clause string, args ...interface{}) ([]*models.Expense, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, user_id, client_id, category, notes, amount, date, added_by, created_at, updated_at
         FROM expenses `+clause, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		var e models.Expense
		err := rows.Scan(&e.ID, &e.UserID, &e.ClientID, &e.Category, &e.Notes,
			&e.Amount, &e.Date, &e.AddedBy, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, &e)
	}
	return expenses, rows.Err()
}

func (r *ExpenseRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM expenses WHERE id=$1`, id)
	return err
}

func (r *ExpenseRepository) Sum(ctx context.Context) (float64, error) {
	var total float64
	err := r.DB.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM expenses`).Scan(&total)
	return total, err
}
