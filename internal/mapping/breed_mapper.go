package mapping

import "github.com/klowran/cats-api/internal/domain"

// BreedToDTO projects a breed entity onto its transport shape, expanding
// its cats into nested DTOs. Nested cats do not repeat the breed name.
func BreedToDTO(breed *domain.Breed) BreedDTO {
	dto := BreedDTO{
		ID:   breed.ID,
		Name: breed.Name,
		Cats: make([]CatDTO, 0, len(breed.Cats)),
	}

	for i := range breed.Cats {
		cat := CatToDTO(&breed.Cats[i])
		// The parent breed already carries the name.
		cat.Breed = ""
		dto.Cats = append(dto.Cats, cat)
	}

	return dto
}

// BreedsToDTO projects a slice of breed entities. The result is never nil.
func BreedsToDTO(breeds []domain.Breed) []BreedDTO {
	dtos := make([]BreedDTO, 0, len(breeds))
	for i := range breeds {
		dtos = append(dtos, BreedToDTO(&breeds[i]))
	}
	return dtos
}

// NewBreedFromDTO allocates a new breed entity from a create payload.
// The ID is left unset for store assignment.
func NewBreedFromDTO(dto BreedCreateDTO) *domain.Breed {
	return &domain.Breed{
		Name: dto.Name,
	}
}

// ApplyBreedDTO overwrites a breed's name from an update payload.
func ApplyBreedDTO(dto BreedCreateDTO, breed *domain.Breed) {
	breed.Name = dto.Name
}

// NewBreedsFromDTO allocates breed entities for each create payload.
func NewBreedsFromDTO(dtos []BreedCreateDTO) []*domain.Breed {
	breeds := make([]*domain.Breed, 0, len(dtos))
	for _, dto := range dtos {
		breeds = append(breeds, NewBreedFromDTO(dto))
	}
	return breeds
}
