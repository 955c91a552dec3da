package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klowran/cats-api/internal/domain"
)

func TestCatToDTO(t *testing.T) {
	t.Parallel()

	cat := &domain.Cat{
		ID:        42,
		Name:      "Whiskers",
		Likes:     "tuna",
		Dislikes:  "water",
		Age:       3,
		BreedID:   7,
		BreedName: "Siamese",
	}

	dto := CatToDTO(cat)

	assert.Equal(t, int64(42), dto.ID)
	assert.Equal(t, "Whiskers", dto.Name)
	assert.Equal(t, "tuna", dto.Likes)
	assert.Equal(t, "water", dto.Dislikes)
	assert.Equal(t, 3, dto.Age)
	assert.Equal(t, "Siamese", dto.Breed, "joined breed name should be flattened")
}

func TestCatsToDTO_NeverNil(t *testing.T) {
	t.Parallel()

	dtos := CatsToDTO(nil)
	require.NotNil(t, dtos, "an empty result must serialize as [] not null")
	assert.Empty(t, dtos)
}

func TestNewCatFromDTO(t *testing.T) {
	t.Parallel()

	cat := NewCatFromDTO(CatCreateDTO{
		Name:     "Whiskers",
		Likes:    "tuna",
		Dislikes: "water",
		Age:      3,
		BreedID:  7,
	})

	assert.Zero(t, cat.ID, "identifier assignment belongs to the store")
	assert.Equal(t, "Whiskers", cat.Name)
	assert.Equal(t, int64(7), cat.BreedID)
	assert.Empty(t, cat.BreedName)
}

func TestApplyCatDTO_KeepsBreedReference(t *testing.T) {
	t.Parallel()

	cat := &domain.Cat{
		ID:      42,
		Name:    "Whiskers",
		Age:     3,
		BreedID: 7,
	}

	ApplyCatDTO(CatCreateDTO{
		Name:     "Mittens",
		Likes:    "naps",
		Dislikes: "vacuum",
		Age:      4,
		BreedID:  99, // must be ignored
	}, cat)

	assert.Equal(t, int64(42), cat.ID)
	assert.Equal(t, "Mittens", cat.Name)
	assert.Equal(t, "naps", cat.Likes)
	assert.Equal(t, "vacuum", cat.Dislikes)
	assert.Equal(t, 4, cat.Age)
	assert.Equal(t, int64(7), cat.BreedID, "updates must never reassign the breed")
}

func TestNewCatsFromDTO(t *testing.T) {
	t.Parallel()

	cats := NewCatsFromDTO([]CatCreateDTO{
		{Name: "Whiskers", Age: 3, BreedID: 7},
		{Name: "Mittens", Age: 1, BreedID: 7},
	})

	require.Len(t, cats, 2)
	assert.Equal(t, "Whiskers", cats[0].Name)
	assert.Equal(t, "Mittens", cats[1].Name)
}
