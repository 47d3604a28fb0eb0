package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/devservices/backend/internal/model"
	"github.com/devservices/backend/internal/repository"
)

// StatusService moves quote requests and consultation bookings between
// triage states. It does not check who is calling; routes that reach it are
// expected to be admin-gated.
type StatusService interface {
	// UpdateStatus overwrites the status of record id in collection.
	// Returns repository.ErrNotFound when the record does not exist,
	// model.ErrInvalidStatus for an unknown status and ErrUnknownCollection
	// for collections without a status. Repeating a call is a no-op.
	UpdateStatus(ctx context.Context, collection model.Collection, id string, status model.Status) error
}

type statusServiceImpl struct {
	stores map[model.Collection]repository.StatusStore
}

func NewStatusService(quotes repository.QuoteRepository, consultations repository.ConsultationRepository) StatusService {
	return &statusServiceImpl{stores: map[model.Collection]repository.StatusStore{
		model.CollectionQuotes:        quotes,
		model.CollectionConsultations: consultations,
	}}
}

func (s *statusServiceImpl) UpdateStatus(ctx context.Context, collection model.Collection, id string, status model.Status) error {
	store, ok := s.stores[collection]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}
	if !status.Valid() {
		return model.ErrInvalidStatus
	}
	if err := store.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	slog.InfoContext(ctx, "status updated", "collection", collection, "id", id, "status", status)
	return nil
}
