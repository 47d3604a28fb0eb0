package repository

import (
	"context"

	"github.com/devservices/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgServiceRepository は ServiceRepository の PostgreSQL 実装
type PgServiceRepository struct {
	pool *pgxpool.Pool
}

// NewPgServiceRepository は PgServiceRepository を生成する
func NewPgServiceRepository(pool *pgxpool.Pool) *PgServiceRepository {
	return &PgServiceRepository{pool: pool}
}

var _ ServiceRepository = (*PgServiceRepository)(nil)

// Create inserts a service row. ID and CreatedAt must already be set.
func (r *PgServiceRepository) Create(ctx context.Context, svc *model.Service) error {
	features := svc.Features
	if features == nil {
		features = []string{}
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO services (id, name, description, features, icon, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		svc.ID, svc.Name, svc.Description, features, svc.Icon, svc.CreatedAt,
	)
	return err
}

// List returns up to limit services in creation order.
func (r *PgServiceRepository) List(ctx context.Context, limit int) ([]*model.Service, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, description, features, icon, created_at
		 FROM services ORDER BY created_at, id LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []*model.Service
	for rows.Next() {
		var s model.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Features, &s.Icon, &s.CreatedAt); err != nil {
			return nil, err
		}
		services = append(services, &s)
	}
	return services, rows.Err()
}
