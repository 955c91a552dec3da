package mapping

// CatDTO is the transport projection of a cat. The related breed is
// flattened into the single Breed name field.
type CatDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Likes    string `json:"likes"`
	Dislikes string `json:"dislikes"`
	Age      int    `json:"age"`

	// Breed is the name of the cat's breed. Omitted for cats nested
	// inside a breed DTO, where it would duplicate the parent's name.
	Breed string `json:"breed,omitempty"`
}

// BreedDTO is the transport projection of a breed, expanded with its cats.
type BreedDTO struct {
	ID   int64    `json:"id"`
	Name string   `json:"name"`
	Cats []CatDTO `json:"cats"`
}

// CatCreateDTO is the input payload for creating or updating a cat.
// BreedID is only honored on the create path; updates never reassign
// the breed.
type CatCreateDTO struct {
	Name     string `json:"name"     validate:"required"`
	Likes    string `json:"likes"`
	Dislikes string `json:"dislikes"`
	Age      int    `json:"age"      validate:"gte=0"`
	BreedID  int64  `json:"breedId"  validate:"required,gt=0"`
}

// BreedCreateDTO is the input payload for creating or updating a breed.
type BreedCreateDTO struct {
	Name string `json:"name" validate:"required"`
}
