package domain

import "errors"

// Cat-specific validation errors
var (
	// ErrCatNameEmpty is returned when a cat's name is empty.
	ErrCatNameEmpty = errors.New("cat name cannot be empty")

	// ErrCatAgeNegative is returned when a cat's age is negative.
	ErrCatAgeNegative = errors.New("cat age cannot be negative")

	// ErrCatBreedIDEmpty is returned when a cat's breed reference is unset.
	ErrCatBreedIDEmpty = errors.New("cat breed ID cannot be empty")
)

// Cat represents a single cat. Every cat references exactly one breed;
// the reference must resolve to an existing breed at write time.
type Cat struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Likes    string `json:"likes"`
	Dislikes string `json:"dislikes"`
	Age      int    `json:"age"`
	BreedID  int64  `json:"breed_id"`

	// BreedName is populated when the store joined the cat with its
	// breed. It is a projection only and never written back.
	BreedName string `json:"breed_name,omitempty"`
}

// NewCat creates a new Cat referencing the given breed. The ID is left
// unset for store assignment. Returns an error if validation fails.
func NewCat(name, likes, dislikes string, age int, breedID int64) (*Cat, error) {
	cat := &Cat{
		Name:     name,
		Likes:    likes,
		Dislikes: dislikes,
		Age:      age,
		BreedID:  breedID,
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}

	return cat, nil
}

// Validate checks if the Cat has valid data.
func (c *Cat) Validate() error {
	if c.Name == "" {
		return ErrCatNameEmpty
	}

	if c.Age < 0 {
		return ErrCatAgeNegative
	}

	if c.BreedID == 0 {
		return ErrCatBreedIDEmpty
	}

	return nil
}
