// Package slug derives unique, URL-safe identifiers from display names.
package slug

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// ExistsFunc reports whether a candidate slug is already taken in the
// target collection. Update flows scope it to exclude the row being
// updated.
type ExistsFunc func(ctx context.Context, slug string) (bool, error)

// Make normalizes a display name into a slug: lowercase, every run of
// non-alphanumeric characters collapsed to a single hyphen, leading and
// trailing hyphens trimmed. Returns "" only when the input contains no
// alphanumeric characters.
func Make(name string) string {
	s := strings.ToLower(name)
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Unique returns the first free slug derived from name: the base slug
// if unused, otherwise base-1, base-2, ... probing sequentially for the
// smallest unused suffix.
func Unique(ctx context.Context, name string, exists ExistsFunc) (string, error) {
	base := Make(name)
	if base == "" {
		return "", fmt.Errorf("name %q contains no usable characters", name)
	}

	taken, err := exists(ctx, base)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}

	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
}
