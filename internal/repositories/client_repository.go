package repositories

import (
	"context"

	"studio-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ClientRepository struct {
	DB *pgxpool.Pool
}

func NewClientRepository(db *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{DB: db}
}

func (r *ClientRepository) Create(ctx context.Context, c *models.Client) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO clients(name, email, phone, location)
         VALUES($1, $2, $3, $4)
         RETURNING id, created_at`,
		c.Name, c.Email, c.Phone, c.Location,
	).Scan(&c.ID, &c.CreatedAt)
}

func (r *ClientRepository) Get(ctx context.Context, id int) (*models.Client, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, name, email, phone, location, created_at
         FROM clients WHERE id=$1`, id)

	var client models.Client
	err := row.Scan(&client.ID, &client.Name, &client.Email, &client.Phone,
		&client.Location, &client.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ClientRepository) List(ctx context.Context) ([]*models.Client, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, email, phone, location, created_at
         FROM clients ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []*models.Client
	for rows.Next() {
		var client models.Client
		err := rows.Scan(&client.ID, &client.Name, &client.Email, &client.Phone,
			&client.Location, &client.CreatedAt)
		if err != nil {
			return nil, err
		}
		clients = append(clients, &client)
	}
	return clients, rows.Err()
}

// EmailTaken reports whether another client already owns the email
// (case-insensitive). excludeID 0 checks against all clients.
func (r *ClientRepository) EmailTaken(ctx context.Context, email string, excludeID int) (bool, error) {
	var count int
	err := r.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM clients WHERE LOWER(email)=LOWER($1) AND id<>$2`,
		email, excludeID).Scan(&count)
	return count > 0, err
}

func (r *ClientRepository) Update(ctx context.Context, c *models.Client) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE clients SET name=$1, email=$2, phone=$3, location=$4
         WHERE id=$5`,
		c.Name, c.Email, c.Phone, c.Location, c.ID)
	return err
}

func (r *ClientRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM clients WHERE id=$1`, id)
	return err
}

func (r *ClientRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM clients`).Scan(&count)
	return count, err
}
