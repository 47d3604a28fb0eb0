package service

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/devservices/backend/internal/model"
	"github.com/devservices/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// memRepo is an in-memory stand-in for the status-bearing repositories
// ---------------------------------------------------------------------------

type memRepo[T any] struct {
	mu      sync.Mutex
	items   []*T
	creates int
	err     error

	id      func(*T) string
	created func(*T) time.Time
	status  func(*T) *model.Status
}

func (r *memRepo[T]) Create(ctx context.Context, item *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.creates++
	cp := *item
	r.items = append(r.items, &cp)
	return nil
}

func (r *memRepo[T]) FindByID(ctx context.Context, id string) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if r.id(it) == id {
			cp := *it
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memRepo[T]) List(ctx context.Context, opts model.ListOptions) ([]*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var matched []*T
	for _, it := range r.items {
		if opts.Status == "" || *r.status(it) == opts.Status {
			matched = append(matched, it)
		}
	}
	slices.SortFunc(matched, func(a, b *T) int {
		c := r.created(a).Compare(r.created(b))
		if opts.Ascending {
			return c
		}
		return -c
	})
	if opts.Offset >= len(matched) {
		return nil, nil
	}
	matched = matched[opts.Offset:]
	if len(matched) > opts.Limit {
		matched = matched[:opts.Limit]
	}
	return matched, nil
}

func (r *memRepo[T]) Count(ctx context.Context, status model.Status) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	var n int64
	for _, it := range r.items {
		if status == "" || *r.status(it) == status {
			n++
		}
	}
	return n, nil
}

func (r *memRepo[T]) UpdateStatus(ctx context.Context, id string, status model.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if r.id(it) == id {
			*r.status(it) = status
			return nil
		}
	}
	return repository.ErrNotFound
}

func newMemQuoteRepo() *memRepo[model.QuoteRequest] {
	return &memRepo[model.QuoteRequest]{
		id:      func(q *model.QuoteRequest) string { return q.ID },
		created: func(q *model.QuoteRequest) time.Time { return q.CreatedAt },
		status:  func(q *model.QuoteRequest) *model.Status { return &q.Status },
	}
}

func newMemConsultationRepo() *memRepo[model.ConsultationBooking] {
	return &memRepo[model.ConsultationBooking]{
		id:      func(c *model.ConsultationBooking) string { return c.ID },
		created: func(c *model.ConsultationBooking) time.Time { return c.CreatedAt },
		status:  func(c *model.ConsultationBooking) *model.Status { return &c.Status },
	}
}

var (
	_ repository.QuoteRepository        = (*memRepo[model.QuoteRequest])(nil)
	_ repository.ConsultationRepository = (*memRepo[model.ConsultationBooking])(nil)
)
