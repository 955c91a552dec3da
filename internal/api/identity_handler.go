package api

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/klowran/cats-api/internal/api/shared"
	"github.com/klowran/cats-api/internal/service/auth"
)

// IdentityHandler handles registration and login requests.
type IdentityHandler struct {
	identityService auth.IdentityService
	validator       *validator.Validate
}

// NewIdentityHandler creates a new IdentityHandler with the given
// dependencies.
func NewIdentityHandler(identityService auth.IdentityService) *IdentityHandler {
	return &IdentityHandler{
		identityService: identityService,
		validator:       validator.New(),
	}
}

// Register handles POST /api/identity/register. A rejected registration
// answers 400 with the list of reasons; success answers 200 with an
// empty body.
func (h *IdentityHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.identityService.Register(r.Context(), req.Username, req.Password); err != nil {
		if regErr, ok := auth.IsRegistrationError(err); ok {
			shared.RespondWithErrorDetails(w, r, http.StatusBadRequest,
				"Registration failed", regErr.Reasons)
			return
		}
		HandleAPIError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Login handles POST /api/identity/login. Unknown usernames and wrong
// passwords both answer 401 with the same message.
func (h *IdentityHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	result, err := h.identityService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		UserID:    result.UserID,
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt.UTC().Format(time.RFC3339),
	})
}
