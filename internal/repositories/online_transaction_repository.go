package repositories

import (
	"context"

	"studio-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type OnlineTransactionRepository struct {
	DB *pgxpool.Pool
}

func NewOnlineTransactionRepository(db *pgxpool.Pool) *OnlineTransactionRepository {
	return &OnlineTransactionRepository{DB: db}
}

func (r *OnlineTransactionRepository) Create(ctx context.Context, t *models.OnlineTransaction) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO online_transactions(income_id, client_id, razorpay_order_id, amount, status)
         VALUES($1, $2, $3, $4, $5)
         RETURNING id, created_at, updated_at`,
		t.IncomeID, t.ClientID, t.RazorpayOrderID, t.Amount, t.Status,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *OnlineTransactionRepository) GetByOrderID(ctx context.Context, orderID string) (*models.OnlineTransaction, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, income_id, client_id, razorpay_order_id, razorpay_payment_id,
                amount, status, created_at, updated_at
         FROM online_transactions WHERE razorpay_order_id=$1`, orderID)

	var t models.OnlineTransaction
	err := row.Scan(&t.ID, &t.IncomeID, &t.ClientID, &t.RazorpayOrderID,
		&t.RazorpayPaymentID, &t.Amount, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *OnlineTransactionRepository) MarkPaid(ctx context.Context, orderID, paymentID string) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE online_transactions SET razorpay_payment_id=$1, status=$2, updated_at=CURRENT_TIMESTAMP
         WHERE razorpay_order_id=$3`,
		paymentID, models.TxnStatusPaid, orderID)
	return err
}

func (r *OnlineTransactionRepository) MarkFailed(ctx context.Context, orderID string) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE online_transactions SET status=$1, updated_at=CURRENT_TIMESTAMP
         WHERE razorpay_order_id=$2`,
		models.TxnStatusFailed, orderID)
	return err
}

func (r *OnlineTransactionRepository) List(ctx context.Context) ([]*models.OnlineTransaction, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, income_id, client_id, razorpay_order_id, razorpay_payment_id,
                amount, status, created_at, updated_at
         FROM online_transactions ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txns []*models.OnlineTransaction
	for rows.Next() {
		var t models.OnlineTransaction
		err := rows.Scan(&t.ID, &t.IncomeID, &t.ClientID, &t.RazorpayOrderID,
			&t.RazorpayPaymentID, &t.Amount, &t.Status, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, err
		}
		txns = append(txns, &t)
	}
	return txns, rows.Err()
}
