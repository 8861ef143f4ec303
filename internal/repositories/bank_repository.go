package repositories

import (
	"context"

	"studio-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type BankRepository struct {
	DB *pgxpool.Pool
}

func NewBankRepository(db *pgxpool.Pool) *BankRepository {
	return &BankRepository{DB: db}
}

func (r *BankRepository) Create(ctx context.Context, b *models.Bank) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO banks(bank_name, account_name, account_number, ifsc, branch, upi_id)
         VALUES($1, $2, $3, $4, $5, $6)
         RETURNING id, created_at, updated_at`,
		b.BankName, b.AccountName, b.AccountNumber, b.IFSC, b.Branch, b.UPIID,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *BankRepository) Get(ctx context.Context, id int) (*models.Bank, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, bank_name, account_name, account_number, ifsc, branch, upi_id, created_at, updated_at
         FROM banks WHERE id=$1`, id)

	var bank models.Bank
	err := row.Scan(&bank.ID, &bank.BankName, &bank.AccountName, &bank.AccountNumber,
		&bank.IFSC, &bank.Branch, &bank.UPIID, &bank.CreatedAt, &bank.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &bank, nil
}

func (r *BankRepository) List(ctx context.Context) ([]*models.Bank, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, bank_name, account_name, account_number, ifsc, branch, upi_id, created_at, updated_at
         FROM banks ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var banks []*models.Bank
	for rows.Next() {
		var bank models.Bank
		err := rows.Scan(&bank.ID, &bank.BankName, &bank.AccountName, &bank.AccountNumber,
			&bank.IFSC, &bank.Branch, &bank.UPIID, &bank.CreatedAt, &bank.UpdatedAt)
		if err != nil {
			return nil, err
		}
		banks = append(banks, &bank)
	}
	return banks, rows.Err()
}

func (r *BankRepository) Update(ctx context.Context, b *models.Bank) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE banks SET bank_name=$1, account_name=$2, account_number=$3, ifsc=$4,
                branch=$5, upi_id=$6, updated_at=CURRENT_TIMESTAMP
         WHERE id=$7`,
		b.BankName, b.AccountName, b.AccountNumber, b.IFSC, b.Branch, b.UPIID, b.ID)
	return err
}

func (r *BankRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM banks WHERE id=$1`, id)
	return err
}
