package post

import (
	"net/http"
	"strconv"

	"Nobzo/internal/api/handlers/common"
	"Nobzo/internal/api/middleware"
	"Nobzo/internal/core/posts"
)

// ListHandler handles post listing requests
type ListHandler struct {
	service posts.Service
}

// NewListHandler creates a new list handler
func NewListHandler(service posts.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleList handles GET /api/posts. Anonymous callers see published posts
// only; an authenticated caller may additionally request their own drafts
// with status=draft.
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	opts := posts.ListOptions{
		Page:   atoiOrZero(query.Get("page")),
		Limit:  atoiOrZero(query.Get("limit")),
		Search: query.Get("search"),
		Tag:    query.Get("tag"),
		Author: query.Get("author"),
		Status: query.Get("status"),
	}

	result, err := h.service.List(r.Context(), opts, middleware.GetUserID(r))
	if err != nil {
		common.HandleServiceError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, result)
}

// atoiOrZero parses a numeric query param; absent or unparseable values
// become zero and pick up the service defaults.
func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
