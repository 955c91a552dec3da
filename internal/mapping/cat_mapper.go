package mapping

import "github.com/klowran/cats-api/internal/domain"

// CatToDTO projects a cat entity onto its transport shape, flattening
// the joined breed into the Breed name field.
func CatToDTO(cat *domain.Cat) CatDTO {
	return CatDTO{
		ID:       cat.ID,
		Name:     cat.Name,
		Likes:    cat.Likes,
		Dislikes: cat.Dislikes,
		Age:      cat.Age,
		Breed:    cat.BreedName,
	}
}

// CatsToDTO projects a slice of cat entities. The result is never nil.
func CatsToDTO(cats []domain.Cat) []CatDTO {
	dtos := make([]CatDTO, 0, len(cats))
	for i := range cats {
		dtos = append(dtos, CatToDTO(&cats[i]))
	}
	return dtos
}

// NewCatFromDTO allocates a new cat entity from a create payload. The ID
// is left unset for store assignment.
func NewCatFromDTO(dto CatCreateDTO) *domain.Cat {
	return &domain.Cat{
		Name:     dto.Name,
		Likes:    dto.Likes,
		Dislikes: dto.Dislikes,
		Age:      dto.Age,
		BreedID:  dto.BreedID,
	}
}

// ApplyCatDTO overwrites a cat's mutable fields from an update payload.
// Identity and the breed reference are left untouched.
func ApplyCatDTO(dto CatCreateDTO, cat *domain.Cat) {
	cat.Name = dto.Name
	cat.Likes = dto.Likes
	cat.Dislikes = dto.Dislikes
	cat.Age = dto.Age
}

// NewCatsFromDTO allocates cat entities for each create payload.
func NewCatsFromDTO(dtos []CatCreateDTO) []*domain.Cat {
	cats := make([]*domain.Cat, 0, len(dtos))
	for _, dto := range dtos {
		cats = append(cats, NewCatFromDTO(dto))
	}
	return cats
}
