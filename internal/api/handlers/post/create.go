package post

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"Nobzo/internal/api/handlers/common"
	"Nobzo/internal/api/middleware"
	"Nobzo/internal/core/posts"
)

// maxBodySize limits request bodies to 1MB, enough for long-form content
// while preventing abuse.
const maxBodySize = 1 * 1024 * 1024

// CreateHandler handles post creation requests
type CreateHandler struct {
	service  posts.Service
	validate *validator.Validate
}

// NewCreateHandler creates a new create handler
func NewCreateHandler(service posts.Service) *CreateHandler {
	return &CreateHandler{
		service:  service,
		validate: validator.New(),
	}
}

// HandleCreate handles POST /api/posts
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var req posts.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			common.WriteError(w, http.StatusRequestEntityTooLarge, "RequestTooLarge",
				"Request body too large (max 1MB)")
			return
		}
		common.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		common.HandleServiceError(w, err)
		return
	}

	// The author is always the authenticated user; it cannot be supplied
	// by the client.
	authorID := middleware.GetUserID(r)

	created, err := h.service.Create(r.Context(), req, authorID)
	if err != nil {
		common.HandleServiceError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusCreated, created)
}
