package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Nobzo/internal/api/handlers/common"
	"Nobzo/internal/api/middleware"
	"Nobzo/internal/core/posts"
)

// DeleteHandler handles post soft-deletion requests
type DeleteHandler struct {
	service posts.Service
}

// NewDeleteHandler creates a new delete handler
func NewDeleteHandler(service posts.Service) *DeleteHandler {
	return &DeleteHandler{service: service}
}

// HandleDelete handles DELETE /api/posts/{id}. The post is marked deleted
// with a timestamp; the record itself is never removed.
func (h *DeleteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	err := h.service.Delete(r.Context(), chi.URLParam(r, "id"), middleware.GetUserID(r))
	if err != nil {
		common.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
