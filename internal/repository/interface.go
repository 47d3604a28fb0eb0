package repository

import (
	"context"

	"github.com/devservices/backend/internal/model"
)

// DB は DB 接続の生存確認を行うインターフェース
type DB interface {
	Ping(ctx context.Context) error
}

// ServiceRepository persists the service catalogue. Services are insert-only.
type ServiceRepository interface {
	Create(ctx context.Context, svc *model.Service) error
	List(ctx context.Context, limit int) ([]*model.Service, error)
}

// QuoteRepository はクォートリクエスト永続化のインターフェース
type QuoteRepository interface {
	Create(ctx context.Context, q *model.QuoteRequest) error
	FindByID(ctx context.Context, id string) (*model.QuoteRequest, error)
	List(ctx context.Context, opts model.ListOptions) ([]*model.QuoteRequest, error)
	StatusStore
}

// ConsultationRepository はコンサルテーション予約永続化のインターフェース
type ConsultationRepository interface {
	Create(ctx context.Context, c *model.ConsultationBooking) error
	FindByID(ctx context.Context, id string) (*model.ConsultationBooking, error)
	List(ctx context.Context, opts model.ListOptions) ([]*model.ConsultationBooking, error)
	StatusStore
}

// StatusStore is the part of a collection the status workflow and the
// counters need.
type StatusStore interface {
	// Count returns the number of records; an empty status counts all of them.
	Count(ctx context.Context, status model.Status) (int64, error)
	// UpdateStatus overwrites the status of the record with the given id.
	// It returns ErrNotFound when no record matches. Writing the status a
	// record already has is not an error.
	UpdateStatus(ctx context.Context, id string, status model.Status) error
}
