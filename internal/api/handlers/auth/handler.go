package auth

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"Nobzo/internal/api/handlers/common"
	"Nobzo/internal/core/users"
)

// maxBodySize limits request bodies to prevent oversized payloads.
const maxBodySize = 1 * 1024 * 1024

// Handler handles registration and login requests
type Handler struct {
	service  users.Service
	validate *validator.Validate
}

// NewHandler creates a new auth handler
func NewHandler(service users.Service) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
	}
}

// HandleRegister handles POST /api/auth/register
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var req users.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		common.HandleServiceError(w, err)
		return
	}

	resp, err := h.service.Register(r.Context(), req)
	if err != nil {
		common.HandleServiceError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusCreated, resp)
}

// HandleLogin handles POST /api/auth/login
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var req users.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		common.HandleServiceError(w, err)
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		common.HandleServiceError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, resp)
}
