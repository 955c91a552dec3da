package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/klowran/cats-api/internal/store"
)

// DecodeJSON decodes the request body into v, rejecting unknown fields.
func DecodeJSON(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

// getPathID extracts an integer identifier from the URL path parameters.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, fmt.Errorf("%s is required", paramName)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s has invalid format", paramName)
	}

	return id, nil
}

// queryInt64 reads an optional int64 query parameter. A missing or empty
// parameter yields nil; a malformed one an error.
func queryInt64(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", name)
	}
	return &v, nil
}

// queryInt reads an optional int query parameter.
func queryInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", name)
	}
	return &v, nil
}

// queryString reads an optional string query parameter. An empty value
// counts as absent, so  ?name=  does not filter on the empty string.
func queryString(r *http.Request, name string) *string {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	return &raw
}

// parseCatFilter builds a CatFilter from the request's query parameters.
// Absent parameters leave their predicates unset.
func parseCatFilter(r *http.Request) (store.CatFilter, error) {
	var filter store.CatFilter
	var err error

	if filter.ID, err = queryInt64(r, "id"); err != nil {
		return filter, err
	}
	filter.Name = queryString(r, "name")
	filter.Likes = queryString(r, "likes")
	filter.Dislikes = queryString(r, "dislikes")
	if filter.Age, err = queryInt(r, "age"); err != nil {
		return filter, err
	}
	if filter.BreedID, err = queryInt64(r, "breedId"); err != nil {
		return filter, err
	}

	return filter, nil
}

// parseBreedFilter builds a BreedFilter from the request's query parameters.
func parseBreedFilter(r *http.Request) (store.BreedFilter, error) {
	var filter store.BreedFilter
	var err error

	if filter.ID, err = queryInt64(r, "id"); err != nil {
		return filter, err
	}
	filter.Name = queryString(r, "name")

	return filter, nil
}
