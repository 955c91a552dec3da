package service

import (
	"context"
	"log/slog"

	"github.com/klowran/cats-api/internal/mapping"
	"github.com/klowran/cats-api/internal/store"
)

// BreedService provides breed-related operations.
type BreedService interface {
	// Create persists a new breed and returns its projection with an
	// empty cats list.
	Create(ctx context.Context, dto mapping.BreedCreateDTO) (*mapping.BreedDTO, error)

	// CreateBatch persists many breeds in one unit of work. The batch is
	// atomic - either all breeds are created or none.
	CreateBatch(ctx context.Context, dtos []mapping.BreedCreateDTO) error

	// List returns all breeds matching the filter with their cats. An
	// empty filter returns all breeds.
	List(ctx context.Context, filter store.BreedFilter) ([]mapping.BreedDTO, error)

	// Get returns the breed with its cats.
	// Returns store.ErrBreedNotFound if the breed does not exist.
	Get(ctx context.Context, id int64) (*mapping.BreedDTO, error)

	// Update overwrites the breed's name. Repeated identical input
	// succeeds idempotently.
	// Returns store.ErrBreedNotFound if the breed does not exist.
	Update(ctx context.Context, id int64, dto mapping.BreedCreateDTO) error

	// Delete removes the breed and, by cascade, all its cats.
	// Returns store.ErrBreedNotFound if the breed does not exist.
	Delete(ctx context.Context, id int64) error
}

// breedServiceImpl implements BreedService against a BreedStore.
type breedServiceImpl struct {
	breeds store.BreedStore
	logger *slog.Logger
}

// NewBreedService creates a new BreedService backed by the given store.
// If logger is nil, a default logger will be used.
func NewBreedService(breeds store.BreedStore, logger *slog.Logger) BreedService {
	if breeds == nil {
		panic("breeds store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &breedServiceImpl{
		breeds: breeds,
		logger: logger.With(slog.String("component", "breed_service")),
	}
}

func (s *breedServiceImpl) Create(ctx context.Context, dto mapping.BreedCreateDTO) (*mapping.BreedDTO, error) {
	breed := mapping.NewBreedFromDTO(dto)

	if err := s.breeds.Create(ctx, breed); err != nil {
		return nil, err
	}

	s.logger.Debug("breed created",
		slog.Int64("breed_id", breed.ID),
		slog.String("name", breed.Name))

	result := mapping.BreedToDTO(breed)
	return &result, nil
}

func (s *breedServiceImpl) CreateBatch(ctx context.Context, dtos []mapping.BreedCreateDTO) error {
	breeds := mapping.NewBreedsFromDTO(dtos)

	if err := s.breeds.CreateMultiple(ctx, breeds); err != nil {
		return err
	}

	s.logger.Info("breed batch created", slog.Int("count", len(breeds)))
	return nil
}

func (s *breedServiceImpl) List(ctx context.Context, filter store.BreedFilter) ([]mapping.BreedDTO, error) {
	breeds, err := s.breeds.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapping.BreedsToDTO(breeds), nil
}

func (s *breedServiceImpl) Get(ctx context.Context, id int64) (*mapping.BreedDTO, error) {
	breed, err := s.breeds.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := mapping.BreedToDTO(breed)
	return &result, nil
}

func (s *breedServiceImpl) Update(ctx context.Context, id int64, dto mapping.BreedCreateDTO) error {
	return s.breeds.Update(ctx, id, dto.Name)
}

func (s *breedServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.breeds.Delete(ctx, id)
}
