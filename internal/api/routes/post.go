package routes

import (
	"github.com/go-chi/chi/v5"

	"Nobzo/internal/api/handlers/post"
	"Nobzo/internal/api/middleware"
	"Nobzo/internal/core/posts"
)

// RegisterPostRoutes registers post endpoints on the router.
// Mutations require authentication; listing takes an optional token so the
// draft filter can scope to the requester; reads by slug are public.
func RegisterPostRoutes(r chi.Router, service posts.Service, authMiddleware *middleware.AuthMiddleware) {
	createHandler := post.NewCreateHandler(service)
	listHandler := post.NewListHandler(service)
	getHandler := post.NewGetHandler(service)
	updateHandler := post.NewUpdateHandler(service)
	deleteHandler := post.NewDeleteHandler(service)

	r.With(authMiddleware.RequireAuth).Post("/api/posts", createHandler.HandleCreate)
	r.With(authMiddleware.OptionalAuth).Get("/api/posts", listHandler.HandleList)
	r.Get("/api/posts/{slug}", getHandler.HandleGet)
	r.With(authMiddleware.RequireAuth).Put("/api/posts/{id}", updateHandler.HandleUpdate)
	r.With(authMiddleware.RequireAuth).Delete("/api/posts/{id}", deleteHandler.HandleDelete)
}
