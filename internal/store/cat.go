package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/klowran/cats-api/internal/domain"
)

// CatFilter narrows the result set of CatStore.List. A nil field means
// the predicate is absent; all present predicates are ANDed. String
// predicates are case-sensitive substring matches, mirroring the store's
// default collation.
type CatFilter struct {
	// ID matches cats with exactly this identifier.
	ID *int64

	// Name matches cats whose name contains this substring.
	Name *string

	// Likes matches cats whose likes contain this substring.
	Likes *string

	// Dislikes matches cats whose dislikes contain this substring.
	Dislikes *string

	// Age matches cats with exactly this age.
	Age *int

	// BreedID matches cats referencing exactly this breed.
	BreedID *int64
}

// Matches reports whether the cat satisfies every present predicate.
// SQL-backed stores translate the filter into WHERE clauses instead,
// but share these semantics.
func (f CatFilter) Matches(c *domain.Cat) bool {
	if f.ID != nil && c.ID != *f.ID {
		return false
	}
	if f.Name != nil && !strings.Contains(c.Name, *f.Name) {
		return false
	}
	if f.Likes != nil && !strings.Contains(c.Likes, *f.Likes) {
		return false
	}
	if f.Dislikes != nil && !strings.Contains(c.Dislikes, *f.Dislikes) {
		return false
	}
	if f.Age != nil && c.Age != *f.Age {
		return false
	}
	if f.BreedID != nil && c.BreedID != *f.BreedID {
		return false
	}
	return true
}

// CatStore defines the interface for cat data persistence.
type CatStore interface {
	// Create saves a new cat to the store and assigns its ID.
	// Returns ErrInvalidReference if the cat's breed does not exist.
	// Returns validation errors from the domain Cat if data is invalid.
	Create(ctx context.Context, cat *domain.Cat) error

	// GetByID retrieves a cat by its unique ID, joined with its breed so
	// the returned cat carries the breed name.
	// Returns ErrCatNotFound if the cat does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Cat, error)

	// List retrieves all cats matching the filter, each joined with its
	// breed name. An empty filter returns all cats.
	List(ctx context.Context, filter CatFilter) ([]domain.Cat, error)

	// Update overwrites the name, likes, dislikes and age of an existing
	// cat. The breed reference is never changed by an update.
	// Returns ErrCatNotFound if the cat does not exist.
	Update(ctx context.Context, cat *domain.Cat) error

	// Delete removes a cat from the store by its ID.
	// Returns ErrCatNotFound if the cat does not exist.
	Delete(ctx context.Context, id int64) error

	// CreateMultiple saves many cats in a single transaction.
	// The operation is atomic - either all cats are created or none.
	// Returns ErrInvalidReference if any cat's breed does not exist.
	CreateMultiple(ctx context.Context, cats []*domain.Cat) error

	// WithTx returns a new CatStore instance that uses the provided transaction.
	// The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) CatStore
}
