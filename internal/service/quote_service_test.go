package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/devservices/backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteService_Submit_SetsPendingIDAndTimestamp(t *testing.T) {
	repo := newMemQuoteRepo()
	svc := NewQuoteService(repo)

	before := time.Now().UTC()
	q := &model.QuoteRequest{
		Name:        "John Doe",
		Email:       "john@example.com",
		Service:     "development",
		Description: "A new marketing site",
	}
	require.NoError(t, svc.Submit(context.Background(), q))

	assert.Equal(t, model.StatusPending, q.Status)
	assert.NotEmpty(t, q.ID)
	assert.WithinDuration(t, before, q.CreatedAt, 5*time.Second)
	assert.Equal(t, 1, repo.creates)

	other := &model.QuoteRequest{Name: "Jane", Email: "jane@example.com", Service: "design", Description: "logo"}
	require.NoError(t, svc.Submit(context.Background(), other))
	assert.NotEqual(t, q.ID, other.ID)
}

func TestQuoteService_Submit_IgnoresClientStatus(t *testing.T) {
	svc := NewQuoteService(newMemQuoteRepo())

	q := &model.QuoteRequest{ID: "client-chosen", Status: model.StatusApproved}
	require.NoError(t, svc.Submit(context.Background(), q))
	assert.Equal(t, model.StatusPending, q.Status)
	assert.NotEqual(t, "client-chosen", q.ID)
}

func TestQuoteService_Submit_RepositoryError(t *testing.T) {
	repo := newMemQuoteRepo()
	repo.err = errors.New("db write failed")
	svc := NewQuoteService(repo)

	err := svc.Submit(context.Background(), &model.QuoteRequest{Email: "e@e.com"})
	assert.Error(t, err)
}

func TestQuoteService_List_NewestFirst(t *testing.T) {
	repo := newMemQuoteRepo()
	svc := NewQuoteService(repo)
	t1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"q1", "q2", "q3"} {
		require.NoError(t, repo.Create(context.Background(), &model.QuoteRequest{
			ID: id, Status: model.StatusPending, CreatedAt: t1.Add(time.Duration(i) * time.Hour),
		}))
	}

	got, err := svc.List(context.Background(), model.ListOptions{Limit: 2, Offset: 0})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "q3", got[0].ID)
	assert.Equal(t, "q2", got[1].ID)
}

func TestQuoteService_List_DefaultsAndClamps(t *testing.T) {
	var captured model.ListOptions
	repo := &capturingQuoteRepo{memRepo: newMemQuoteRepo(), captured: &captured}
	svc := NewQuoteService(repo)

	_, err := svc.List(context.Background(), model.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, model.DefaultListLimit, captured.Limit)

	_, err = svc.List(context.Background(), model.ListOptions{Limit: 10_000, Offset: -3})
	require.NoError(t, err)
	assert.Equal(t, model.MaxListLimit, captured.Limit)
	assert.Equal(t, 0, captured.Offset)
}

func TestQuoteService_GetAndCount(t *testing.T) {
	repo := newMemQuoteRepo()
	svc := NewQuoteService(repo)
	q := &model.QuoteRequest{Name: "A", Email: "a@example.com"}
	require.NoError(t, svc.Submit(context.Background(), q))

	got, err := svc.Get(context.Background(), q.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)

	n, err := svc.Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

type capturingQuoteRepo struct {
	*memRepo[model.QuoteRequest]
	captured *model.ListOptions
}

func (r *capturingQuoteRepo) List(ctx context.Context, opts model.ListOptions) ([]*model.QuoteRequest, error) {
	*r.captured = opts
	return r.memRepo.List(ctx, opts)
}
