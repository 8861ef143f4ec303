package repositories

import (
	"context"

	"studio-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StageRepository struct {
	DB *pgxpool.Pool
}

func NewStageRepository(db *pgxpool.Pool) *StageRepository {
	return &StageRepository{DB: db}
}

func (r *StageRepository) Create(ctx context.Context, s *models.Stage) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO stages(user_id, client_id, date, stage_desc)
         VALUES($1, $2, $3, $4)
         RETURNING id, created_at, updated_at`,
		s.UserID, s.ClientID, s.Date, s.StageDesc,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *StageRepository) List(ctx context.Context) ([]*models.Stage, error) {
	return r.listWhere(ctx, `ORDER BY date DESC, id DESC`)
}

func (r *StageRepository) ListByClient(ctx context.Context, clientID int) ([]*models.Stage, error) {
	return r.listWhere(ctx, `WHERE client_id=$1 ORDER BY date DESC, id DESC`, clientID)
}

func (r *StageRepository) listWhere(ctx context.Context, clause string, args ...interface{}) ([]*models.Stage, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, user_id, client_id, date, stage_desc, created_at, updated_at
         FROM stages `+clause, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stages []*models.Stage
	for rows.Next() {
		var stage models.Stage
		err := rows.Scan(&stage.ID, &stage.UserID, &stage.ClientID, &stage.Date,
			&stage.StageDesc, &stage.CreatedAt, &stage.UpdatedAt)
		if err != nil {
			return nil, err
		}
		stages = append(stages, &stage)
	}
	return stages, rows.Err()
}
