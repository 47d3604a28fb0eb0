package service

import (
	"context"
	"time"

	"github.com/devservices/backend/internal/model"
	"github.com/devservices/backend/internal/repository"
	"github.com/google/uuid"
)

// quoteServiceImpl is the production implementation of QuoteService.
type quoteServiceImpl struct {
	repo repository.QuoteRepository
}

// NewQuoteService creates a QuoteService backed by the given repository.
func NewQuoteService(repo repository.QuoteRepository) QuoteService {
	return &quoteServiceImpl{repo: repo}
}

// Submit generates the ID, sets status to pending and stamps CreatedAt
// before persisting.
func (s *quoteServiceImpl) Submit(ctx context.Context, q *model.QuoteRequest) error {
	q.ID = uuid.NewString()
	q.Status = model.StatusPending
	q.CreatedAt = time.Now().UTC()
	return s.repo.Create(ctx, q)
}

func (s *quoteServiceImpl) Get(ctx context.Context, id string) (*model.QuoteRequest, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns quote requests according to the given filter/pagination options.
func (s *quoteServiceImpl) List(ctx context.Context, opts model.ListOptions) ([]*model.QuoteRequest, error) {
	return s.repo.List(ctx, normalizeListOptions(opts))
}

func (s *quoteServiceImpl) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx, "")
}

// normalizeListOptions applies the default page size and clamps out-of-range values.
func normalizeListOptions(opts model.ListOptions) model.ListOptions {
	if opts.Limit <= 0 {
		opts.Limit = model.DefaultListLimit
	}
	if opts.Limit > model.MaxListLimit {
		opts.Limit = model.MaxListLimit
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}
	return opts
}
