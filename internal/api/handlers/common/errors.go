package common

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"Nobzo/internal/core/posts"
	"Nobzo/internal/core/users"
)

// HandleServiceError is the single translator from domain errors to HTTP
// responses. Every handler funnels its service errors through here so the
// taxonomy maps to status codes in exactly one place.
func HandleServiceError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &validationErrs):
		WriteJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "ValidationError",
			Message: "Invalid input",
			Fields:  fieldMessages(validationErrs),
		})

	case errors.Is(err, posts.ErrInvalidID):
		WriteError(w, http.StatusBadRequest, "InvalidId", "Invalid id")

	case errors.Is(err, posts.ErrAuthRequired):
		WriteError(w, http.StatusUnauthorized, "Unauthenticated",
			"Authentication required for draft filter")

	case errors.Is(err, users.ErrInvalidCredentials):
		WriteError(w, http.StatusUnauthorized, "InvalidCredentials", "Invalid credentials")

	case errors.Is(err, posts.ErrNotOwner):
		WriteError(w, http.StatusForbidden, "Forbidden", "Forbidden")

	case errors.Is(err, posts.ErrNotFound), errors.Is(err, users.ErrUserNotFound):
		WriteError(w, http.StatusNotFound, "NotFound", "Not found")

	case errors.Is(err, users.ErrEmailTaken):
		WriteError(w, http.StatusConflict, "Conflict", "Email already in use")

	case errors.Is(err, posts.ErrSlugTaken):
		// A concurrent creation won the slug race; the client may retry
		WriteError(w, http.StatusConflict, "Conflict", "Slug already in use")

	default:
		// Don't leak internal error details to clients
		slog.Error("unexpected error", slog.String("error", err.Error()))
		WriteError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}

// fieldMessages flattens validator errors into per-field messages.
func fieldMessages(errs validator.ValidationErrors) map[string]string {
	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		name := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			fields[name] = "is required"
		case "email":
			fields[name] = "must be a valid email address"
		case "min":
			fields[name] = "must be at least " + fe.Param() + " characters"
		case "oneof":
			fields[name] = "must be one of: " + fe.Param()
		default:
			fields[name] = "is invalid"
		}
	}
	return fields
}
