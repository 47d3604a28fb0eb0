package repository

import (
	"context"

	"github.com/devservices/backend/internal/model"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// MongoServiceRepository は ServiceRepository の MongoDB 実装
type MongoServiceRepository struct {
	c mongoCollection[model.Service]
}

func NewMongoServiceRepository(m *MongoStore) *MongoServiceRepository {
	return &MongoServiceRepository{c: newMongoCollection[model.Service](m, model.CollectionServices)}
}

var _ ServiceRepository = (*MongoServiceRepository)(nil)

func (r *MongoServiceRepository) Create(ctx context.Context, svc *model.Service) error {
	if svc.Features == nil {
		svc.Features = []string{}
	}
	return r.c.insert(ctx, svc)
}

func (r *MongoServiceRepository) List(ctx context.Context, limit int) ([]*model.Service, error) {
	return r.c.list(ctx, bson.D{}, 1, 0, limit)
}

// MongoQuoteRepository は QuoteRepository の MongoDB 実装
type MongoQuoteRepository struct {
	c mongoCollection[model.QuoteRequest]
}

func NewMongoQuoteRepository(m *MongoStore) *MongoQuoteRepository {
	return &MongoQuoteRepository{c: newMongoCollection[model.QuoteRequest](m, model.CollectionQuotes)}
}

var _ QuoteRepository = (*MongoQuoteRepository)(nil)

func (r *MongoQuoteRepository) Create(ctx context.Context, q *model.QuoteRequest) error {
	return r.c.insert(ctx, q)
}

func (r *MongoQuoteRepository) FindByID(ctx context.Context, id string) (*model.QuoteRequest, error) {
	return r.c.findByID(ctx, id)
}

func (r *MongoQuoteRepository) List(ctx context.Context, opts model.ListOptions) ([]*model.QuoteRequest, error) {
	return r.c.list(ctx, statusFilter(opts.Status), sortDirection(opts), opts.Offset, opts.Limit)
}

func (r *MongoQuoteRepository) Count(ctx context.Context, status model.Status) (int64, error) {
	return r.c.count(ctx, status)
}

func (r *MongoQuoteRepository) UpdateStatus(ctx context.Context, id string, status model.Status) error {
	return r.c.updateStatus(ctx, id, status)
}

// MongoConsultationRepository は ConsultationRepository の MongoDB 実装
type MongoConsultationRepository struct {
	c mongoCollection[model.ConsultationBooking]
}

func NewMongoConsultationRepository(m *MongoStore) *MongoConsultationRepository {
	return &MongoConsultationRepository{c: newMongoCollection[model.ConsultationBooking](m, model.CollectionConsultations)}
}

var _ ConsultationRepository = (*MongoConsultationRepository)(nil)

func (r *MongoConsultationRepository) Create(ctx context.Context, c *model.ConsultationBooking) error {
	return r.c.insert(ctx, c)
}

func (r *MongoConsultationRepository) FindByID(ctx context.Context, id string) (*model.ConsultationBooking, error) {
	return r.c.findByID(ctx, id)
}

func (r *MongoConsultationRepository) List(ctx context.Context, opts model.ListOptions) ([]*model.ConsultationBooking, error) {
	return r.c.list(ctx, statusFilter(opts.Status), sortDirection(opts), opts.Offset, opts.Limit)
}

func (r *MongoConsultationRepository) Count(ctx context.Context, status model.Status) (int64, error) {
	return r.c.count(ctx, status)
}

func (r *MongoConsultationRepository) UpdateStatus(ctx context.Context, id string, status model.Status) error {
	return r.c.updateStatus(ctx, id, status)
}
