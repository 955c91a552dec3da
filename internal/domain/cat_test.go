package domain

import (
	"testing"
)

func TestNewCat(t *testing.T) {
	cat, err := NewCat("Whiskers", "tuna", "water", 3, 7)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cat.ID != 0 {
		t.Errorf("Expected unset ID, got %d", cat.ID)
	}

	if cat.Name != "Whiskers" {
		t.Errorf("Expected name Whiskers, got %s", cat.Name)
	}

	if cat.Age != 3 {
		t.Errorf("Expected age 3, got %d", cat.Age)
	}

	if cat.BreedID != 7 {
		t.Errorf("Expected breed ID 7, got %d", cat.BreedID)
	}

	// Empty name
	_, err = NewCat("", "tuna", "water", 3, 7)
	if err != ErrCatNameEmpty {
		t.Errorf("Expected error %v, got %v", ErrCatNameEmpty, err)
	}

	// Negative age
	_, err = NewCat("Whiskers", "tuna", "water", -1, 7)
	if err != ErrCatAgeNegative {
		t.Errorf("Expected error %v, got %v", ErrCatAgeNegative, err)
	}

	// Missing breed reference
	_, err = NewCat("Whiskers", "tuna", "water", 3, 0)
	if err != ErrCatBreedIDEmpty {
		t.Errorf("Expected error %v, got %v", ErrCatBreedIDEmpty, err)
	}
}

func TestCatValidate(t *testing.T) {
	validCat := Cat{
		ID:      1,
		Name:    "Whiskers",
		Age:     3,
		BreedID: 7,
	}

	if err := validCat.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	// Zero age is valid, likes and dislikes may be empty
	kitten := Cat{Name: "Mittens", Age: 0, BreedID: 1}
	if err := kitten.Validate(); err != nil {
		t.Errorf("Expected no error for zero age, got %v", err)
	}

	invalidCat := validCat
	invalidCat.Name = ""
	if err := invalidCat.Validate(); err != ErrCatNameEmpty {
		t.Errorf("Expected error %v, got %v", ErrCatNameEmpty, err)
	}

	invalidCat = validCat
	invalidCat.Age = -5
	if err := invalidCat.Validate(); err != ErrCatAgeNegative {
		t.Errorf("Expected error %v, got %v", ErrCatAgeNegative, err)
	}

	invalidCat = validCat
	invalidCat.BreedID = 0
	if err := invalidCat.Validate(); err != ErrCatBreedIDEmpty {
		t.Errorf("Expected error %v, got %v", ErrCatBreedIDEmpty, err)
	}
}
