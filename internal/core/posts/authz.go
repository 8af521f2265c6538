package posts

import (
	"github.com/google/uuid"
)

// AuthorizeMutation decides whether requesterID may update or soft-delete
// the post. A missing or soft-deleted post is ErrNotFound (a deleted post
// is indistinguishable from one that never existed); a live post owned by
// someone else is ErrNotOwner. Only the author may mutate - there is no
// administrative override.
func AuthorizeMutation(post *Post, requesterID uuid.UUID) error {
	if post == nil || post.DeletedAt != nil {
		return ErrNotFound
	}
	if post.AuthorID != requesterID {
		return ErrNotOwner
	}
	return nil
}
