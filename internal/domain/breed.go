package domain

import "errors"

// Breed-specific validation errors
var (
	// ErrBreedNameEmpty is returned when a breed's name is empty.
	ErrBreedNameEmpty = errors.New("breed name cannot be empty")
)

// Breed represents a cat breed. A breed owns a collection of cats;
// deleting a breed deletes all of its cats (enforced by the store's
// cascade constraint).
type Breed struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`

	// Cats holds the breed's cats when they were eagerly loaded by the
	// store. A nil slice means the relation was not loaded.
	Cats []Cat `json:"cats,omitempty"`
}

// NewBreed creates a new Breed with the given name. The ID is left unset
// for store assignment. Returns an error if validation fails.
func NewBreed(name string) (*Breed, error) {
	breed := &Breed{
		Name: name,
	}

	if err := breed.Validate(); err != nil {
		return nil, err
	}

	return breed, nil
}

// Validate checks if the Breed has valid data.
func (b *Breed) Validate() error {
	if b.Name == "" {
		return ErrBreedNameEmpty
	}
	return nil
}
