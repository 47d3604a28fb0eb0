package service

import (
	"context"
	"time"

	"github.com/devservices/backend/internal/model"
	"github.com/devservices/backend/internal/repository"
	"github.com/google/uuid"
)

// maxCatalogSize caps GET /api/services.
const maxCatalogSize = 100

// CatalogService manages the list of offered services.
type CatalogService interface {
	// Create assigns ID and CreatedAt and stores the service.
	Create(ctx context.Context, svc *model.Service) error
	List(ctx context.Context) ([]*model.Service, error)
}

type catalogServiceImpl struct {
	repo repository.ServiceRepository
}

func NewCatalogService(repo repository.ServiceRepository) CatalogService {
	return &catalogServiceImpl{repo: repo}
}

func (s *catalogServiceImpl) Create(ctx context.Context, svc *model.Service) error {
	svc.ID = uuid.NewString()
	svc.CreatedAt = time.Now().UTC()
	if svc.Features == nil {
		svc.Features = []string{}
	}
	return s.repo.Create(ctx, svc)
}

func (s *catalogServiceImpl) List(ctx context.Context) ([]*model.Service, error) {
	return s.repo.List(ctx, maxCatalogSize)
}
