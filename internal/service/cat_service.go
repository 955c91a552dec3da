package service

import (
	"context"
	"log/slog"

	"github.com/klowran/cats-api/internal/domain"
	"github.com/klowran/cats-api/internal/mapping"
	"github.com/klowran/cats-api/internal/store"
)

// CatService provides cat-related operations.
type CatService interface {
	// Create persists a new cat referencing dto.BreedID. After the write
	// the cat is re-read joined with its breed so the projection carries
	// the breed name.
	// Returns store.ErrInvalidReference if the breed does not exist.
	Create(ctx context.Context, dto mapping.CatCreateDTO) (*mapping.CatDTO, error)

	// CreateBatch persists many cats in one unit of work. The batch is
	// atomic - either all cats are created or none. Breed names are not
	// re-fetched on this path.
	CreateBatch(ctx context.Context, dtos []mapping.CatCreateDTO) error

	// List returns all cats matching the filter, joined with their breed
	// names. An empty filter returns all cats.
	List(ctx context.Context, filter store.CatFilter) ([]mapping.CatDTO, error)

	// Get returns the cat joined with its breed name.
	// Returns store.ErrCatNotFound if the cat does not exist.
	Get(ctx context.Context, id int64) (*mapping.CatDTO, error)

	// Update overwrites the cat's name, likes, dislikes and age. The
	// breed reference is never reassigned by an update.
	// Returns store.ErrCatNotFound if the cat does not exist.
	Update(ctx context.Context, id int64, dto mapping.CatCreateDTO) error

	// Delete removes the cat.
	// Returns store.ErrCatNotFound if the cat does not exist.
	Delete(ctx context.Context, id int64) error
}

// catServiceImpl implements CatService against a CatStore.
type catServiceImpl struct {
	cats   store.CatStore
	logger *slog.Logger
}

// NewCatService creates a new CatService backed by the given store.
// If logger is nil, a default logger will be used.
func NewCatService(cats store.CatStore, logger *slog.Logger) CatService {
	if cats == nil {
		panic("cats store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &catServiceImpl{
		cats:   cats,
		logger: logger.With(slog.String("component", "cat_service")),
	}
}

func (s *catServiceImpl) Create(ctx context.Context, dto mapping.CatCreateDTO) (*mapping.CatDTO, error) {
	cat := mapping.NewCatFromDTO(dto)

	if err := s.cats.Create(ctx, cat); err != nil {
		return nil, err
	}

	// The create payload only carries the breed id; re-read the cat
	// joined with its breed so the response includes the breed name.
	created, err := s.cats.GetByID(ctx, cat.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("cat created",
		slog.Int64("cat_id", created.ID),
		slog.String("name", created.Name),
		slog.Int64("breed_id", created.BreedID))

	result := mapping.CatToDTO(created)
	return &result, nil
}

func (s *catServiceImpl) CreateBatch(ctx context.Context, dtos []mapping.CatCreateDTO) error {
	cats := mapping.NewCatsFromDTO(dtos)

	if err := s.cats.CreateMultiple(ctx, cats); err != nil {
		return err
	}

	s.logger.Info("cat batch created", slog.Int("count", len(cats)))
	return nil
}

func (s *catServiceImpl) List(ctx context.Context, filter store.CatFilter) ([]mapping.CatDTO, error) {
	cats, err := s.cats.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapping.CatsToDTO(cats), nil
}

func (s *catServiceImpl) Get(ctx context.Context, id int64) (*mapping.CatDTO, error) {
	cat, err := s.cats.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	result := mapping.CatToDTO(cat)
	return &result, nil
}

func (s *catServiceImpl) Update(ctx context.Context, id int64, dto mapping.CatCreateDTO) error {
	cat := &domain.Cat{ID: id}
	mapping.ApplyCatDTO(dto, cat)

	return s.cats.Update(ctx, cat)
}

func (s *catServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.cats.Delete(ctx, id)
}
