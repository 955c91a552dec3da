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

// CatHandler handles cat-related API requests.
type CatHandler struct {
	catService service.CatService
	validator  *validator.Validate
}

// NewCatHandler creates a new CatHandler with the given dependencies.
func NewCatHandler(catService service.CatService) *CatHandler {
	return &CatHandler{
		catService: catService,
		validator:  validator.New(),
	}
}

// Create handles POST /api/cats.
func (h *CatHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req mapping.CatCreateDTO

	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	created, err := h.catService.Create(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/cats/%d", created.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, created)
}

// List handles GET /api/cats. Query parameters narrow the result set;
// all supplied predicates must match.
func (h *CatHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseCatFilter(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	cats, err := h.catService.List(r.Context(), filter)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cats)
}

// Get handles GET /api/cats/{id}.
func (h *CatHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	cat, err := h.catService.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cat)
}

// Update handles PUT /api/cats/{id}. The breed reference is never
// changed by an update, even when the payload names another breed.
func (h *CatHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var req mapping.CatCreateDTO
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if err := h.catService.Update(r.Context(), id, req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /api/cats/{id}.
func (h *CatHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.catService.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UploadCSV handles POST /api/cats/upload-csv. The multipart form must
// carry the file under the "csv" field. The whole file is imported in
// one unit of work or not at all.
func (h *CatHandler) UploadCSV(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("csv")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "csv file is required")
		return
	}
	defer func() { _ = file.Close() }()

	dtos, err := DecodeCatCSV(file)
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

	if err := h.catService.CreateBatch(r.Context(), dtos); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
