package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/klowran/cats-api/internal/domain"
	"github.com/klowran/cats-api/internal/platform/logger"
	"github.com/klowran/cats-api/internal/store"
)

// PostgresBreedStore implements the store.BreedStore interface
// using a PostgreSQL database as the storage backend.
type PostgresBreedStore struct {
	// db is the connection pool; nil when the store is bound to a
	// transaction via WithTx.
	db     *sql.DB
	q      store.DBTX
	logger *slog.Logger
}

// NewPostgresBreedStore creates a new PostgreSQL implementation of the
// BreedStore interface. It accepts a database connection that should be
// initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresBreedStore(db *sql.DB, logger *slog.Logger) *PostgresBreedStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresBreedStore{
		db:     db,
		q:      db,
		logger: logger.With(slog.String("component", "breed_store")),
	}
}

// Ensure PostgresBreedStore implements store.BreedStore interface
var _ store.BreedStore = (*PostgresBreedStore)(nil)

// WithTx implements store.BreedStore.WithTx
func (s *PostgresBreedStore) WithTx(tx *sql.Tx) store.BreedStore {
	return &PostgresBreedStore{
		q:      tx,
		logger: s.logger,
	}
}

// Create implements store.BreedStore.Create
// It saves a new breed to the database and assigns its store-generated ID.
// Returns validation errors from the domain Breed if data is invalid.
func (s *PostgresBreedStore) Create(ctx context.Context, breed *domain.Breed) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := breed.Validate(); err != nil {
		log.Warn("breed validation failed during create",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO cat_breeds (name)
		VALUES ($1)
		RETURNING id
	`
	if err := s.q.QueryRowContext(ctx, query, breed.Name).Scan(&breed.ID); err != nil {
		log.Error("failed to create breed",
			slog.String("error", err.Error()),
			slog.String("name", breed.Name))
		return err
	}

	log.Debug("breed created",
		slog.Int64("breed_id", breed.ID),
		slog.String("name", breed.Name))
	return nil
}

// CreateMultiple implements store.BreedStore.CreateMultiple
// It saves multiple breeds to the database in a single transaction.
// The operation is atomic - either all breeds are created or none.
func (s *PostgresBreedStore) CreateMultiple(ctx context.Context, breeds []*domain.Breed) error {
	// Already inside a caller-managed transaction
	if s.db == nil {
		return s.createAll(ctx, breeds)
	}

	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := &PostgresBreedStore{q: tx, logger: s.logger}
		return txStore.createAll(ctx, breeds)
	})
}

func (s *PostgresBreedStore) createAll(ctx context.Context, breeds []*domain.Breed) error {
	for _, breed := range breeds {
		if err := s.Create(ctx, breed); err != nil {
			return err
		}
	}
	return nil
}

// GetByID implements store.BreedStore.GetByID
// It retrieves a breed by its unique ID with its cats eagerly loaded.
// Returns store.ErrBreedNotFound if the breed does not exist.
func (s *PostgresBreedStore) GetByID(ctx context.Context, id int64) (*domain.Breed, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name
		FROM cat_breeds
		WHERE id = $1
	`

	var breed domain.Breed
	err := s.q.QueryRowContext(ctx, query, id).Scan(&breed.ID, &breed.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("breed not found", slog.Int64("breed_id", id))
			return nil, store.ErrBreedNotFound
		}
		log.Error("failed to get breed by ID",
			slog.String("error", err.Error()),
			slog.Int64("breed_id", id))
		return nil, err
	}

	catsByBreed, err := s.loadCats(ctx, []int64{breed.ID})
	if err != nil {
		return nil, err
	}
	breed.Cats = catsByBreed[breed.ID]

	return &breed, nil
}

// List implements store.BreedStore.List
// It retrieves all breeds matching the filter, each with its cats eagerly
// loaded. An empty filter returns all breeds.
func (s *PostgresBreedStore) List(ctx context.Context, filter store.BreedFilter) ([]domain.Breed, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Each present filter field contributes one independent predicate;
	// all predicates are ANDed together.
	var conditions []string
	var args []any
	if filter.ID != nil {
		args = append(args, *filter.ID)
		conditions = append(conditions, fmt.Sprintf("id = $%d", len(args)))
	}
	if filter.Name != nil {
		args = append(args, *filter.Name)
		conditions = append(conditions, fmt.Sprintf("name = $%d", len(args)))
	}

	query := `SELECT id, name FROM cat_breeds`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"

	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list breeds", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	breeds := []domain.Breed{}
	var ids []int64
	for rows.Next() {
		var breed domain.Breed
		if err := rows.Scan(&breed.ID, &breed.Name); err != nil {
			return nil, err
		}
		breeds = append(breeds, breed)
		ids = append(ids, breed.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	catsByBreed, err := s.loadCats(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range breeds {
		breeds[i].Cats = catsByBreed[breeds[i].ID]
	}

	return breeds, nil
}

// Update implements store.BreedStore.Update
// It overwrites the name of an existing breed.
// Returns store.ErrBreedNotFound if the breed does not exist.
func (s *PostgresBreedStore) Update(ctx context.Context, id int64, name string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE cat_breeds
		SET name = $1
		WHERE id = $2
	`
	result, err := s.q.ExecContext(ctx, query, name, id)
	if err != nil {
		log.Error("failed to update breed",
			slog.String("error", err.Error()),
			slog.Int64("breed_id", id))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		log.Debug("breed not found for update", slog.Int64("breed_id", id))
		return store.ErrBreedNotFound
	}

	return nil
}

// Delete implements store.BreedStore.Delete
// It removes a breed by its ID. The ON DELETE CASCADE constraint on the
// cats table removes all cats referencing the breed.
// Returns store.ErrBreedNotFound if the breed does not exist.
func (s *PostgresBreedStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM cat_breeds
		WHERE id = $1
	`
	result, err := s.q.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete breed",
			slog.String("error", err.Error()),
			slog.Int64("breed_id", id))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		log.Debug("breed not found for delete", slog.Int64("breed_id", id))
		return store.ErrBreedNotFound
	}

	log.Info("breed deleted", slog.Int64("breed_id", id))
	return nil
}

// loadCats fetches the cats for the given breed IDs in one query and
// groups them by breed. Breeds without cats get an empty (non-nil) slice
// so the relation always serializes as a list.
func (s *PostgresBreedStore) loadCats(ctx context.Context, breedIDs []int64) (map[int64][]domain.Cat, error) {
	catsByBreed := make(map[int64][]domain.Cat, len(breedIDs))
	for _, id := range breedIDs {
		catsByBreed[id] = []domain.Cat{}
	}
	if len(breedIDs) == 0 {
		return catsByBreed, nil
	}

	placeholders := make([]string, len(breedIDs))
	args := make([]any, len(breedIDs))
	for i, id := range breedIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := fmt.Sprintf(`
		SELECT id, name, likes, dislikes, age, breed_id
		FROM cats
		WHERE breed_id IN (%s)
		ORDER BY id
	`, strings.Join(placeholders, ", "))

	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		s.logger.Error("failed to load cats for breeds", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var cat domain.Cat
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Likes, &cat.Dislikes, &cat.Age, &cat.BreedID); err != nil {
			return nil, err
		}
		catsByBreed[cat.BreedID] = append(catsByBreed[cat.BreedID], cat)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return catsByBreed, nil
}
