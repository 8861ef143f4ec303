package repositories

import (
	"context"
	"encoding/json"

	"studio-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PresetRepository struct {
	DB *pgxpool.Pool
}

func NewPresetRepository(db *pgxpool.Pool) *PresetRepository {
	return &PresetRepository{DB: db}
}

func scanPreset(row pgx.Row) (*models.InteriorPreset, error) {
	var p models.InteriorPreset
	var items []byte
	err := row.Scan(&p.ID, &p.Name, &items, &p.TotalAmount, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &p.Items); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PresetRepository) Create(ctx context.Context, p *models.InteriorPreset) error {
	items, err := json.Marshal(p.Items)
	if err != nil {
		return err
	}
	return r.DB.QueryRow(ctx,
		`INSERT INTO interior_presets(name, items, total_amount)
         VALUES($1, $2, $3)
         RETURNING id, created_at, updated_at`,
		p.Name, items, p.TotalAmount,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PresetRepository) Get(ctx context.Context, id int) (*models.InteriorPreset, error) {
	return scanPreset(r.DB.QueryRow(ctx,
		`SELECT id, name, items, total_amount, created_at, updated_at
         FROM interior_presets WHERE id=$1`, id))
}

func (r *PresetRepository) List(ctx context.Context) ([]*models.InteriorPreset, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, items, total_amount, created_at, updated_at
         FROM interior_presets ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var presets []*models.InteriorPreset
	for rows.Next() {
		p, err := scanPreset(rows)
		if err != nil {
			return nil, err
		}
		presets = append(presets, p)
	}
	return presets, rows.Err()
}

func (r *PresetRepository) Update(ctx context.Context, p *models.InteriorPreset) error {
	items, err := json.Marshal(p.Items)
	if err != nil {
		return err
	}
	tag, err := r.DB.Exec(ctx,
		`UPDATE interior_presets SET name=$1, items=$2, total_amount=$3, updated_at=CURRENT_TIMESTAMP
         WHERE id=$4`,
		p.Name, items, p.TotalAmount, p.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PresetRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM interior_presets WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
