package repositories

import (
	"context"

	"studio-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CommonExpenseRepository struct {
	DB *pgxpool.Pool
}

func NewCommonExpenseRepository(db *pgxpool.Pool) *CommonExpenseRepository {
	return &CommonExpenseRepository{DB: db}
}

func (r *CommonExpenseRepository) Create(ctx context.Context, e *models.CommonExpense) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO common_expenses(user_id, category, notes, amount, date, added_by)
         VALUES($1, $2, $3, $4, $5, $6)
         RETURNING id, created_at, updated_at`,
		e.UserID, e.Category, e.Notes, e.Amount, e.Date, e.AddedBy,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func (r *CommonExpenseRepository) List(ctx context.Context) ([]*models.CommonExpense, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, user_id, category, notes, amount, date, added_by, created_at, updated_at
         FROM common_expenses ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []*models.CommonExpense
	for rows.Next() {
		var e models.CommonExpense
		err := rows.Scan(&e.ID, &e.UserID, &e.Category, &e.Notes,
			&e.Amount, &e.Date, &e.AddedBy, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, &e)
	}
	return expenses, rows.Err()
}

func (r *CommonExpenseRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM common_expenses WHERE id=$1`, id)
	return err
}

func (r *CommonExpenseRepository) Sum(ctx context.Context) (float64, error) {
	var total float64
	err := r.DB.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM common_expenses`).Scan(&total)
	return total, err
}
