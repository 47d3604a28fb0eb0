package service

import (
	"context"
	"time"

	"github.com/devservices/backend/internal/model"
	"github.com/devservices/backend/internal/repository"
	"github.com/google/uuid"
)

// ConsultationService はコンサルテーション予約のビジネスロジック
type ConsultationService interface {
	Submit(ctx context.Context, c *model.ConsultationBooking) error
	Get(ctx context.Context, id string) (*model.ConsultationBooking, error)
	List(ctx context.Context, opts model.ListOptions) ([]*model.ConsultationBooking, error)
	Count(ctx context.Context) (int64, error)
}

type consultationServiceImpl struct {
	repo repository.ConsultationRepository
}

func NewConsultationService(repo repository.ConsultationRepository) ConsultationService {
	return &consultationServiceImpl{repo: repo}
}

// Submit は ID・ステータス(pending)・作成日時をセットして保存する
func (s *consultationServiceImpl) Submit(ctx context.Context, c *model.ConsultationBooking) error {
	c.ID = uuid.NewString()
	c.Status = model.StatusPending
	c.CreatedAt = time.Now().UTC()
	return s.repo.Create(ctx, c)
}

func (s *consultationServiceImpl) Get(ctx context.Context, id string) (*model.ConsultationBooking, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *consultationServiceImpl) List(ctx context.Context, opts model.ListOptions) ([]*model.ConsultationBooking, error) {
	return s.repo.List(ctx, normalizeListOptions(opts))
}

func (s *consultationServiceImpl) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx, "")
}
