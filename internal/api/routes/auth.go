package routes

import (
	"github.com/go-chi/chi/v5"

	authHandler "Nobzo/internal/api/handlers/auth"
	"Nobzo/internal/core/users"
)

// RegisterAuthRoutes registers registration and login endpoints on the router
func RegisterAuthRoutes(r chi.Router, service users.Service) {
	h := authHandler.NewHandler(service)

	r.Post("/api/auth/register", h.HandleRegister)
	r.Post("/api/auth/login", h.HandleLogin)
}
