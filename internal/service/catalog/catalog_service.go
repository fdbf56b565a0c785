package catalog

import (
	"context"
	"log"

	"github.com/Domenick1991/oneservice/internal/domain"
	"github.com/Domenick1991/oneservice/internal/repository"
)

type ServiceUseCase interface {
	List(ctx context.Context, filter domain.ServiceFilter) ([]domain.Document, error)
	GetByID(ctx context.Context, id string) (domain.Document, error)
	Create(ctx context.Context, doc domain.Document) (*domain.InsertAck, error)
	Update(ctx context.Context, id string, update domain.ServiceUpdate) (*domain.UpdateAck, error)
	Delete(ctx context.Context, id string) (*domain.DeleteAck, error)
}

type Cache interface {
	GetServices(ctx context.Context, ownerEmail string) ([]domain.Document, error)
	ServicesGeneration(ctx context.Context) (int64, error)
	SetServices(ctx context.Context, ownerEmail string, generation int64, services []domain.Document) error
	InvalidateServices(ctx context.Context) error
}

// CatalogService serves the services collection. The cache is optional; when
// set, listings are read through it and every successful write clears it.
type CatalogService struct {
	repo  repository.ServiceRepository
	cache Cache
}

func NewCatalogService(repo repository.ServiceRepository, cache Cache) *CatalogService {
	return &CatalogService{repo: repo, cache: cache}
}

// List reads through the cache. The generation is taken before the store
// read, so a listing that raced with a write is never cached.
func (s *CatalogService) List(ctx context.Context, filter domain.ServiceFilter) ([]domain.Document, error) {
	if s.cache == nil {
		return s.repo.List(ctx, filter)
	}

	if cached, err := s.cache.GetServices(ctx, filter.OwnerEmail); err == nil && cached != nil {
		return cached, nil
	}
	generation, genErr := s.cache.ServicesGeneration(ctx)

	services, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if genErr != nil {
		log.Printf("read services cache generation: %v", genErr)
		return services, nil
	}
	if err := s.cache.SetServices(ctx, filter.OwnerEmail, generation, services); err != nil {
		log.Printf("cache services: %v", err)
	}
	return services, nil
}

func (s *CatalogService) GetByID(ctx context.Context, id string) (domain.Document, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CatalogService) Create(ctx context.Context, doc domain.Document) (*domain.InsertAck, error) {
	ack, err := s.repo.Insert(ctx, doc)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return ack, nil
}

func (s *CatalogService) Update(ctx context.Context, id string, update domain.ServiceUpdate) (*domain.UpdateAck, error) {
	ack, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return ack, nil
}

func (s *CatalogService) Delete(ctx context.Context, id string) (*domain.DeleteAck, error) {
	ack, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if ack.DeletedCount > 0 {
		s.invalidate(ctx)
	}
	return ack, nil
}

func (s *CatalogService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateServices(ctx); err != nil {
		log.Printf("invalidate services cache: %v", err)
	}
}

var _ ServiceUseCase = (*CatalogService)(nil)
