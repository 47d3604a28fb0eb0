package service

import (
	"context"

	"github.com/devservices/backend/internal/model"
)

// QuoteService defines the business logic for quote requests.
type QuoteService interface {
	// Submit stores a new quote request. ID, Status ("pending") and CreatedAt
	// are assigned by the implementation.
	Submit(ctx context.Context, q *model.QuoteRequest) error

	// Get returns a single quote request or repository.ErrNotFound.
	Get(ctx context.Context, id string) (*model.QuoteRequest, error)

	// List returns quote requests according to the given options.
	List(ctx context.Context, opts model.ListOptions) ([]*model.QuoteRequest, error)

	// Count returns the total number of quote requests.
	Count(ctx context.Context) (int64, error)
}
