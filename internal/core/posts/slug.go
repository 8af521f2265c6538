package posts

import (
	"context"
	"fmt"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// slugFallbackAlphabet keeps generated fallback tokens inside the slug
// character set [a-z0-9].
const slugFallbackAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// ExistsFunc reports whether a slug candidate is already taken. The check
// must include soft-deleted posts: a slug is never reused.
type ExistsFunc func(ctx context.Context, candidate string) (bool, error)

// GenerateSlug derives a unique URL-safe slug from a title. The base token
// is the lowercased title with punctuation and whitespace runs collapsed to
// single hyphens; on collision a numeric suffix -1, -2, ... is appended
// until exists reports false.
//
// Deterministic given a deterministic exists. Two concurrent calls with the
// same title can still both observe non-existence; the storage layer's
// unique constraint is the final arbiter and its violation surfaces as
// ErrSlugTaken at write time.
func GenerateSlug(ctx context.Context, title string, exists ExistsFunc) (string, error) {
	base := slugBase(title)
	if base == "" {
		// A title made entirely of punctuation has no usable token.
		// Fall back to a random identifier so the slug stays non-empty.
		id, err := gonanoid.Generate(slugFallbackAlphabet, 10)
		if err != nil {
			return "", fmt.Errorf("failed to generate fallback slug: %w", err)
		}
		base = "post-" + id
	}

	candidate := base
	for n := 1; ; n++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check slug %q: %w", candidate, err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
}

// slugBase normalizes a title into [a-z0-9-]: lowercase, every run of
// other characters becomes a single hyphen, leading/trailing hyphens
// trimmed.
func slugBase(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	lastHyphen := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}
