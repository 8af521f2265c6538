package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Nobzo/internal/api/handlers/common"
	"Nobzo/internal/core/posts"
)

// GetHandler handles single-post reads by slug
type GetHandler struct {
	service posts.Service
}

// NewGetHandler creates a new get handler
func NewGetHandler(service posts.Service) *GetHandler {
	return &GetHandler{service: service}
}

// HandleGet handles GET /api/posts/{slug}. Only published, not-deleted
// posts are reachable here.
func (h *GetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, err := h.service.GetBySlug(r.Context(), slug)
	if err != nil {
		common.HandleServiceError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, post)
}
