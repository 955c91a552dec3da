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

// PostgresCatStore implements the store.CatStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCatStore struct {
	// db is the connection pool; nil when the store is bound to a
	// transaction via WithTx.
	db     *sql.DB
	q      store.DBTX
	logger *slog.Logger
}

// NewPostgresCatStore creates a new PostgreSQL implementation of the
// CatStore interface. It accepts a database connection that should be
// initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCatStore(db *sql.DB, logger *slog.Logger) *PostgresCatStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCatStore{
		db:     db,
		q:      db,
		logger: logger.With(slog.String("component", "cat_store")),
	}
}

// Ensure PostgresCatStore implements store.CatStore interface
var _ store.CatStore = (*PostgresCatStore)(nil)

// WithTx implements store.CatStore.WithTx
func (s *PostgresCatStore) WithTx(tx *sql.Tx) store.CatStore {
	return &PostgresCatStore{
		q:      tx,
		logger: s.logger,
	}
}

// Create implements store.CatStore.Create
// It saves a new cat to the database and assigns its store-generated ID.
// Returns store.ErrInvalidReference if the cat's breed does not exist.
// Returns validation errors from the domain Cat if data is invalid.
func (s *PostgresCatStore) Create(ctx context.Context, cat *domain.Cat) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := cat.Validate(); err != nil {
		log.Warn("cat validation failed during create",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO cats (name, likes, dislikes, age, breed_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := s.q.QueryRowContext(
		ctx,
		query,
		cat.Name,
		cat.Likes,
		cat.Dislikes,
		cat.Age,
		cat.BreedID,
	).Scan(&cat.ID)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during cat creation",
				slog.String("error", err.Error()),
				slog.Int64("breed_id", cat.BreedID))
			return fmt.Errorf("%w: breed with ID %d", store.ErrInvalidReference, cat.BreedID)
		}

		log.Error("failed to create cat",
			slog.String("error", err.Error()),
			slog.String("name", cat.Name),
			slog.Int64("breed_id", cat.BreedID))
		return err
	}

	log.Debug("cat created",
		slog.Int64("cat_id", cat.ID),
		slog.String("name", cat.Name),
		slog.Int64("breed_id", cat.BreedID))
	return nil
}

// CreateMultiple implements store.CatStore.CreateMultiple
// It saves multiple cats to the database in a single transaction.
// The operation is atomic - either all cats are created or none.
// Returns store.ErrInvalidReference if any cat's breed does not exist.
func (s *PostgresCatStore) CreateMultiple(ctx context.Context, cats []*domain.Cat) error {
	// Already inside a caller-managed transaction
	if s.db == nil {
		return s.createAll(ctx, cats)
	}

	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := &PostgresCatStore{q: tx, logger: s.logger}
		return txStore.createAll(ctx, cats)
	})
}

func (s *PostgresCatStore) createAll(ctx context.Context, cats []*domain.Cat) error {
	for _, cat := range cats {
		if err := s.Create(ctx, cat); err != nil {
			return err
		}
	}
	return nil
}

// catColumns is the select list shared by GetByID and List. Every read
// joins the breed so the cat carries its breed name.
const catColumns = `
	c.id, c.name, c.likes, c.dislikes, c.age, c.breed_id, b.name
`

// GetByID implements store.CatStore.GetByID
// It retrieves a cat by its unique ID joined with its breed.
// Returns store.ErrCatNotFound if the cat does not exist.
func (s *PostgresCatStore) GetByID(ctx context.Context, id int64) (*domain.Cat, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + catColumns + `
		FROM cats c
		JOIN cat_breeds b ON b.id = c.breed_id
		WHERE c.id = $1
	`

	var cat domain.Cat
	err := s.q.QueryRowContext(ctx, query, id).Scan(
		&cat.ID,
		&cat.Name,
		&cat.Likes,
		&cat.Dislikes,
		&cat.Age,
		&cat.BreedID,
		&cat.BreedName,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("cat not found", slog.Int64("cat_id", id))
			return nil, store.ErrCatNotFound
		}
		log.Error("failed to get cat by ID",
			slog.String("error", err.Error()),
			slog.Int64("cat_id", id))
		return nil, err
	}

	return &cat, nil
}

// List implements store.CatStore.List
// It retrieves all cats matching the filter, each joined with its breed
// name. An empty filter returns all cats.
func (s *PostgresCatStore) List(ctx context.Context, filter store.CatFilter) ([]domain.Cat, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Each present filter field contributes one independent predicate;
	// all predicates are ANDed together. Substring matches use strpos so
	// user input never reaches LIKE pattern syntax.
	var conditions []string
	var args []any
	if filter.ID != nil {
		args = append(args, *filter.ID)
		conditions = append(conditions, fmt.Sprintf("c.id = $%d", len(args)))
	}
	if filter.Name != nil {
		args = append(args, *filter.Name)
		conditions = append(conditions, fmt.Sprintf("strpos(c.name, $%d) > 0", len(args)))
	}
	if filter.Likes != nil {
		args = append(args, *filter.Likes)
		conditions = append(conditions, fmt.Sprintf("strpos(c.likes, $%d) > 0", len(args)))
	}
	if filter.Dislikes != nil {
		args = append(args, *filter.Dislikes)
		conditions = append(conditions, fmt.Sprintf("strpos(c.dislikes, $%d) > 0", len(args)))
	}
	if filter.Age != nil {
		args = append(args, *filter.Age)
		conditions = append(conditions, fmt.Sprintf("c.age = $%d", len(args)))
	}
	if filter.BreedID != nil {
		args = append(args, *filter.BreedID)
		conditions = append(conditions, fmt.Sprintf("c.breed_id = $%d", len(args)))
	}

	query := `
		SELECT ` + catColumns + `
		FROM cats c
		JOIN cat_breeds b ON b.id = c.breed_id
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY c.id"

	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list cats", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	cats := []domain.Cat{}
	for rows.Next() {
		var cat domain.Cat
		err := rows.Scan(
			&cat.ID,
			&cat.Name,
			&cat.Likes,
			&cat.Dislikes,
			&cat.Age,
			&cat.BreedID,
			&cat.BreedName,
		)
		if err != nil {
			return nil, err
		}
		cats = append(cats, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return cats, nil
}

// Update implements store.CatStore.Update
// It overwrites the name, likes, dislikes and age of an existing cat.
// The breed reference is never changed by an update.
// Returns store.ErrCatNotFound if the cat does not exist.
func (s *PostgresCatStore) Update(ctx context.Context, cat *domain.Cat) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE cats
		SET name = $1, likes = $2, dislikes = $3, age = $4
		WHERE id = $5
	`
	result, err := s.q.ExecContext(
		ctx,
		query,
		cat.Name,
		cat.Likes,
		cat.Dislikes,
		cat.Age,
		cat.ID,
	)
	if err != nil {
		log.Error("failed to update cat",
			slog.String("error", err.Error()),
			slog.Int64("cat_id", cat.ID))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		log.Debug("cat not found for update", slog.Int64("cat_id", cat.ID))
		return store.ErrCatNotFound
	}

	return nil
}

// Delete implements store.CatStore.Delete
// It removes a cat from the store by its ID.
// Returns store.ErrCatNotFound if the cat does not exist.
func (s *PostgresCatStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM cats
		WHERE id = $1
	`
	result, err := s.q.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete cat",
			slog.String("error", err.Error()),
			slog.Int64("cat_id", id))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		log.Debug("cat not found for delete", slog.Int64("cat_id", id))
		return store.ErrCatNotFound
	}

	log.Info("cat deleted", slog.Int64("cat_id", id))
	return nil
}
