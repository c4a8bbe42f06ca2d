// Package slug provides URL-safe slug generation and validation.
//
// A single canonical transform is used everywhere a title becomes a
// slug, so that title suggestions, derived slugs and custom-slug
// validation can never drift apart.
package slug

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// stripped matches everything that cannot appear in a slug and is
	// not a separator we fold into a hyphen.
	stripped = regexp.MustCompile(`[^a-z0-9\s_-]`)
	// separators collapses runs of whitespace, underscores and hyphens
	// into a single hyphen.
	separators = regexp.MustCompile(`[\s_-]+`)
	// valid is the slug grammar: lowercase alphanumeric segments joined
	// by single hyphens, no leading or trailing hyphen.
	valid = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

// Make creates a URL-safe slug from an arbitrary string.
// Example: "Hello   World & More" -> "hello-world-more"
func Make(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = stripped.ReplaceAllString(result, "")
	result = separators.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}

// IsValid reports whether s already satisfies the slug grammar.
func IsValid(s string) bool {
	return valid.MatchString(s)
}

// WithSuffix appends a numeric suffix to a base slug.
// Example: WithSuffix("my-post", 3) -> "my-post-3"
func WithSuffix(base string, n int) string {
	return fmt.Sprintf("%s-%d", base, n)
}
