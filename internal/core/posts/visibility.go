package posts

import (
	"github.com/google/uuid"
)

// ListQuery is the storage-level filter produced by the visibility policy.
// Soft-deleted posts are always excluded; zero values mean "no narrowing"
// for the optional fields.
type ListQuery struct {
	Status   string    // always set: draft or published
	AuthorID uuid.UUID // uuid.Nil = any author
	Search   string    // case-insensitive substring on title OR content
	Tag      string    // exact match against one tag in the set
	Page     int
	Limit    int
}

// BuildListQuery applies the visibility rules to caller-supplied list
// options and a requester identity (uuid.Nil = anonymous):
//
//   - no status param, or status=published: published posts only
//   - status=draft: requires a requester, and narrows to that requester's
//     own drafts - drafts are never visible to other users
//
// search, tag, and author narrowing compose with the status rule by AND.
// An author param that is not a well-formed UUID is ignored rather than
// rejected. Page and limit default to 1/10 and are coerced to at least 1.
func BuildListQuery(requesterID uuid.UUID, opts ListOptions) (ListQuery, error) {
	q := ListQuery{
		Search: opts.Search,
		Tag:    opts.Tag,
		Page:   opts.Page,
		Limit:  opts.Limit,
	}

	switch opts.Status {
	case StatusDraft:
		if requesterID == uuid.Nil {
			return ListQuery{}, ErrAuthRequired
		}
		q.Status = StatusDraft
		q.AuthorID = requesterID
	default:
		// Public default: absent or explicit "published" both resolve to
		// published-only, regardless of requester.
		q.Status = StatusPublished
	}

	if opts.Author != "" && q.AuthorID == uuid.Nil {
		if authorID, err := uuid.Parse(opts.Author); err == nil {
			q.AuthorID = authorID
		}
	}

	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit == 0 {
		q.Limit = defaultPageLimit
	}
	if q.Limit < 1 {
		q.Limit = 1
	}

	return q, nil
}

const defaultPageLimit = 10
