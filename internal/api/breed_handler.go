package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/klowran/cats-api/internal/api/shared"
	"github.com/klowran/cats-api/internal/mapping"
	"github.com/klowran/cats-api/internal/service"
)

// BreedHandler handles breed-related API requests.
type BreedHandler struct {
	breedService service.BreedService
	validator    *validator.Validate
}

// NewBreedHandler creates a new BreedHandler with the given dependencies.
func NewBreedHandler(breedService service.BreedService) *BreedHandler {
	return &BreedHandler{
		breedService: breedService,
		validator:    validator.New(),
	}
}

// Create handles POST /api/breeds.
func (h *BreedHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req mapping.BreedCreateDTO

	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	created, err := h.breedService.Create(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/breeds/%d", created.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, created)
}

// List handles GET /api/breeds. Each breed carries its cats.
func (h *BreedHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseBreedFilter(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	breeds, err := h.breedService.List(r.Context(), filter)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, breeds)
}

// Get handles GET /api/breeds/{id}.
func (h *BreedHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	breed, err := h.breedService.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, breed)
}

// Update handles PUT /api/breeds/{id}.
func (h *BreedHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var req mapping.BreedCreateDTO
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if err := h.breedService.Update(r.Context(), id, req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /api/breeds/{id}. Deleting a breed removes its
// cats as well.
func (h *BreedHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.breedService.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UploadCSV handles POST /api/breeds/upload-csv. The multipart form
// must carry the file under the "csv" field.
func (h *BreedHandler) UploadCSV(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("csv")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "csv file is required")
		return
	}
	defer func() { _ = file.Close() }()

	dtos, err := DecodeBreedCSV(file)
	if err != nil {
		if errors.Is(err, ErrMalformedCSV) {
			shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		HandleAPIError(w, r, err)
		return
	}

	for i, dto := range dtos {
		if err := h.validator.Struct(dto); err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest,
				fmt.Sprintf("row %d: validation error: %s", i+2, err.Error()))
			return
		}
	}

	if err := h.breedService.CreateBatch(r.Context(), dtos); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
