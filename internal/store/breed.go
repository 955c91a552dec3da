package store

import (
	"context"
	"database/sql"

	"github.com/klowran/cats-api/internal/domain"
)

// BreedFilter narrows the result set of BreedStore.List. A nil field
// means the predicate is absent; all present predicates are ANDed.
type BreedFilter struct {
	// ID matches breeds with exactly this identifier.
	ID *int64

	// Name matches breeds whose name equals this string exactly.
	Name *string
}

// Matches reports whether the breed satisfies every present predicate.
// SQL-backed stores translate the filter into WHERE clauses instead,
// but share these semantics.
func (f BreedFilter) Matches(b *domain.Breed) bool {
	if f.ID != nil && b.ID != *f.ID {
		return false
	}
	if f.Name != nil && b.Name != *f.Name {
		return false
	}
	return true
}

// BreedStore defines the interface for breed data persistence.
type BreedStore interface {
	// Create saves a new breed to the store and assigns its ID.
	// Returns validation errors from the domain Breed if data is invalid.
	Create(ctx context.Context, breed *domain.Breed) error

	// GetByID retrieves a breed by its unique ID with its cats eagerly loaded.
	// Returns ErrBreedNotFound if the breed does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Breed, error)

	// List retrieves all breeds matching the filter, each with its cats
	// eagerly loaded. An empty filter returns all breeds.
	List(ctx context.Context, filter BreedFilter) ([]domain.Breed, error)

	// Update overwrites the name of an existing breed.
	// Returns ErrBreedNotFound if the breed does not exist.
	Update(ctx context.Context, id int64, name string) error

	// Delete removes a breed from the store by its ID. The store's cascade
	// constraint removes all cats referencing the breed.
	// Returns ErrBreedNotFound if the breed does not exist.
	Delete(ctx context.Context, id int64) error

	// CreateMultiple saves many breeds in a single transaction.
	// The operation is atomic - either all breeds are created or none.
	CreateMultiple(ctx context.Context, breeds []*domain.Breed) error

	// WithTx returns a new BreedStore instance that uses the provided transaction.
	// The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) BreedStore
}
