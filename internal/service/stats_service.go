package service

import (
	"context"

	"github.com/devservices/backend/internal/model"
	"github.com/devservices/backend/internal/repository"
	"golang.org/x/sync/errgroup"
)

// StatsService computes the admin dashboard counters.
type StatsService interface {
	Stats(ctx context.Context) (*model.Stats, error)
}

type statsServiceImpl struct {
	quotes        repository.StatusStore
	consultations repository.StatusStore
}

func NewStatsService(quotes, consultations repository.StatusStore) StatsService {
	return &statsServiceImpl{quotes: quotes, consultations: consultations}
}

// Stats runs the four counts concurrently. The counts are not taken in one
// snapshot, so totals may be off by in-flight submissions.
func (s *statsServiceImpl) Stats(ctx context.Context) (*model.Stats, error) {
	var st model.Stats
	g, ctx := errgroup.WithContext(ctx)
	count := func(dst *int64, store repository.StatusStore, status model.Status) {
		g.Go(func() error {
			n, err := store.Count(ctx, status)
			*dst = n
			return err
		})
	}
	count(&st.TotalQuotes, s.quotes, "")
	count(&st.PendingQuotes, s.quotes, model.StatusPending)
	count(&st.TotalConsultations, s.consultations, "")
	count(&st.PendingConsultations, s.consultations, model.StatusPending)
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &st, nil
}
