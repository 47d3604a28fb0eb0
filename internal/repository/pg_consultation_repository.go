package repository

import (
	"context"
	"errors"

	"github.com/devservices/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgConsultationRepository は ConsultationRepository の PostgreSQL 実装
type PgConsultationRepository struct {
	pool *pgxpool.Pool
}

// NewPgConsultationRepository は PgConsultationRepository を生成する
func NewPgConsultationRepository(pool *pgxpool.Pool) *PgConsultationRepository {
	return &PgConsultationRepository{pool: pool}
}

var _ ConsultationRepository = (*PgConsultationRepository)(nil)

const consultationColumns = `id, name, email, phone, preferred_date, preferred_time, topic, message, status, created_at`

func scanConsultation(row pgx.Row) (*model.ConsultationBooking, error) {
	var c model.ConsultationBooking
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.PreferredDate, &c.PreferredTime,
		&c.Topic, &c.Message, &c.Status, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgConsultationRepository) Create(ctx context.Context, c *model.ConsultationBooking) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO consultations (`+consultationColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		c.ID, c.Name, c.Email, c.Phone, c.PreferredDate, c.PreferredTime, c.Topic, c.Message,
		string(c.Status), c.CreatedAt,
	)
	return err
}

func (r *PgConsultationRepository) FindByID(ctx context.Context, id string) (*model.ConsultationBooking, error) {
	c, err := scanConsultation(r.pool.QueryRow(ctx,
		`SELECT `+consultationColumns+` FROM consultations WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return c, err
}

func (r *PgConsultationRepository) List(ctx context.Context, opts model.ListOptions) ([]*model.ConsultationBooking, error) {
	clause, args := pgListClause(opts)
	rows, err := r.pool.Query(ctx, `SELECT `+consultationColumns+` FROM consultations `+clause, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.ConsultationBooking
	for rows.Next() {
		c, err := scanConsultation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PgConsultationRepository) Count(ctx context.Context, status model.Status) (int64, error) {
	where, args := pgCountClause(status)
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM consultations`+where, args...).Scan(&n)
	return n, err
}

func (r *PgConsultationRepository) UpdateStatus(ctx context.Context, id string, status model.Status) error {
	tag, err := r.pool.Exec(ctx, `UPDATE consultations SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
