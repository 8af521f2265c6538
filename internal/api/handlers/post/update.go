package post

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"Nobzo/internal/api/handlers/common"
	"Nobzo/internal/api/middleware"
	"Nobzo/internal/core/posts"
)

// UpdateHandler handles post update requests
type UpdateHandler struct {
	service  posts.Service
	validate *validator.Validate
}

// NewUpdateHandler creates a new update handler
func NewUpdateHandler(service posts.Service) *UpdateHandler {
	return &UpdateHandler{
		service:  service,
		validate: validator.New(),
	}
}

// HandleUpdate handles PUT /api/posts/{id}. Only the author may update,
// and only the patch's non-empty fields are applied.
func (h *UpdateHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var req posts.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		common.HandleServiceError(w, err)
		return
	}

	updated, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), req, middleware.GetUserID(r))
	if err != nil {
		common.HandleServiceError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, updated)
}
