package repository

import (
	"context"
	"errors"

	"github.com/devservices/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgQuoteRepository は QuoteRepository の PostgreSQL 実装
type PgQuoteRepository struct {
	pool *pgxpool.Pool
}

// NewPgQuoteRepository は PgQuoteRepository を生成する
func NewPgQuoteRepository(pool *pgxpool.Pool) *PgQuoteRepository {
	return &PgQuoteRepository{pool: pool}
}

var _ QuoteRepository = (*PgQuoteRepository)(nil)

const quoteColumns = `id, name, email, company, service, budget, description, status, created_at`

func scanQuote(row pgx.Row) (*model.QuoteRequest, error) {
	var q model.QuoteRequest
	if err := row.Scan(&q.ID, &q.Name, &q.Email, &q.Company, &q.Service, &q.Budget,
		&q.Description, &q.Status, &q.CreatedAt); err != nil {
		return nil, err
	}
	return &q, nil
}

// Create inserts a quote row. ID, Status and CreatedAt must already be set.
func (r *PgQuoteRepository) Create(ctx context.Context, q *model.QuoteRequest) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO quotes (`+quoteColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		q.ID, q.Name, q.Email, q.Company, q.Service, q.Budget, q.Description, string(q.Status), q.CreatedAt,
	)
	return err
}

// FindByID は ID でクォートを取得する
func (r *PgQuoteRepository) FindByID(ctx context.Context, id string) (*model.QuoteRequest, error) {
	q, err := scanQuote(r.pool.QueryRow(ctx, `SELECT `+quoteColumns+` FROM quotes WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return q, err
}

// List returns quotes ordered by created_at (newest first by default).
func (r *PgQuoteRepository) List(ctx context.Context, opts model.ListOptions) ([]*model.QuoteRequest, error) {
	clause, args := pgListClause(opts)
	rows, err := r.pool.Query(ctx, `SELECT `+quoteColumns+` FROM quotes `+clause, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quotes []*model.QuoteRequest
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}

// Count returns the number of quotes, optionally filtered by status.
func (r *PgQuoteRepository) Count(ctx context.Context, status model.Status) (int64, error) {
	where, args := pgCountClause(status)
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM quotes`+where, args...).Scan(&n)
	return n, err
}

// UpdateStatus はクォートのステータスを更新する。対象が存在しない場合は ErrNotFound を返す。
func (r *PgQuoteRepository) UpdateStatus(ctx context.Context, id string, status model.Status) error {
	tag, err := r.pool.Exec(ctx, `UPDATE quotes SET status = $1 WHERE id = $2`, string(status), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
