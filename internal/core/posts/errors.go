package posts

import "errors"

// Sentinel errors for common post operations
var (
	// ErrNotFound is returned when a post is missing or soft-deleted
	ErrNotFound = errors.New("post not found")

	// ErrNotOwner is returned when a mutation is attempted by someone
	// other than the post's author
	ErrNotOwner = errors.New("only the author may modify this post")

	// ErrInvalidID is returned when an identifier is not a well-formed UUID
	ErrInvalidID = errors.New("invalid id")

	// ErrAuthRequired is returned when the draft filter is requested
	// without an authenticated requester
	ErrAuthRequired = errors.New("authentication required for draft filter")

	// ErrSlugTaken is returned when the unique slug constraint is violated
	// at write time. Two concurrent creations with the same title can both
	// pass the existence check; the caller may retry with a fresh request.
	ErrSlugTaken = errors.New("slug already in use")
)
