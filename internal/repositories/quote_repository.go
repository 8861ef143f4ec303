package repositories

import (
	"context"

	"studio-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type QuoteRepository struct {
	DB *pgxpool.Pool
}

func NewQuoteRepository(db *pgxpool.Pool) *QuoteRepository {
	return &QuoteRepository{DB: db}
}

func (r *QuoteRepository) Create(ctx context.Context, q *models.Quote) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO quotes(name, phone, request_call, service_interest, sq_feet, package, additional_info)
         VALUES($1, $2, $3, $4, $5, $6, $7)
         RETURNING id, created_at`,
		q.Name, q.Phone, q.RequestCall, q.ServiceInterest, q.SqFeet, q.Package, q.AdditionalInfo,
	).Scan(&q.ID, &q.CreatedAt)
}

func (r *QuoteRepository) List(ctx context.Context) ([]*models.Quote, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, phone, request_call, service_interest, sq_feet, package, additional_info, created_at
         FROM quotes ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quotes []*models.Quote
	for rows.Next() {
		var quote models.Quote
		err := rows.Scan(&quote.ID, &quote.Name, &quote.Phone, &quote.RequestCall,
			&quote.ServiceInterest, &quote.SqFeet, &quote.Package, &quote.AdditionalInfo,
			&quote.CreatedAt)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, &quote)
	}
	return quotes, rows.Err()
}

func (r *QuoteRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM quotes WHERE id=$1`, id)
	return err
}

func (r *QuoteRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM quotes`).Scan(&count)
	return count, err
}
