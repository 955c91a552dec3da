package api

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/klowran/cats-api/internal/mapping"
)

// ErrMalformedCSV indicates the uploaded file could not be parsed into
// create inputs. It always surfaces as a client error; the batch service
// call is never reached.
var ErrMalformedCSV = errors.New("malformed csv file")

// csvHeaderIndex maps lower-cased header names to their column position.
// Header names match the create-input JSON field names case-insensitively.
func csvHeaderIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return index
}

func requireColumns(index map[string]int, names ...string) error {
	for _, name := range names {
		if _, ok := index[name]; !ok {
			return fmt.Errorf("%w: missing column %q", ErrMalformedCSV, name)
		}
	}
	return nil
}

// DecodeCatCSV parses an uploaded CSV file into cat create inputs.
// The first row must be a header naming the create-input fields
// (name, likes, dislikes, age, breedId); numeric fields use invariant
// decimal parsing. Any malformed row fails the whole file.
func DecodeCatCSV(r io.Reader) ([]mapping.CatCreateDTO, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: missing header row", ErrMalformedCSV)
	}
	index := csvHeaderIndex(header)
	if err := requireColumns(index, "name", "likes", "dislikes", "age", "breedid"); err != nil {
		return nil, err
	}

	var dtos []mapping.CatCreateDTO
	for row := 2; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedCSV, row, err)
		}

		age, err := strconv.Atoi(strings.TrimSpace(record[index["age"]]))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: age must be an integer", ErrMalformedCSV, row)
		}

		breedID, err := strconv.ParseInt(strings.TrimSpace(record[index["breedid"]]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: breedId must be an integer", ErrMalformedCSV, row)
		}

		dtos = append(dtos, mapping.CatCreateDTO{
			Name:     record[index["name"]],
			Likes:    record[index["likes"]],
			Dislikes: record[index["dislikes"]],
			Age:      age,
			BreedID:  breedID,
		})
	}

	return dtos, nil
}

// DecodeBreedCSV parses an uploaded CSV file into breed create inputs.
// The first row must be a header naming the create-input fields (name).
func DecodeBreedCSV(r io.Reader) ([]mapping.BreedCreateDTO, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: missing header row", ErrMalformedCSV)
	}
	index := csvHeaderIndex(header)
	if err := requireColumns(index, "name"); err != nil {
		return nil, err
	}

	var dtos []mapping.BreedCreateDTO
	for row := 2; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedCSV, row, err)
		}

		dtos = append(dtos, mapping.BreedCreateDTO{
			Name: record[index["name"]],
		})
	}

	return dtos, nil
}
