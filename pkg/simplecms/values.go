package simplecms

import (
	"strings"

	"github.com/simplecms/simple-cms/pkg/simplecms/markdown"
	"github.com/simplecms/simple-cms/pkg/simplecms/slug"
)

// Content value object limits.
const (
	MaxTitleLength = 200
	MaxSlugLength  = 100
	MaxBodyLength  = 50000
)

// ContentTitle is the validated, trimmed title of a content item.
type ContentTitle struct {
	value string
}

// NewContentTitle validates and constructs a ContentTitle.
// The title is trimmed; the trimmed form must be 1-200 characters.
func NewContentTitle(s string) (ContentTitle, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ContentTitle{}, newValidationError("title", "must not be empty")
	}
	if len(trimmed) > MaxTitleLength {
		return ContentTitle{}, newValidationError("title", "must be at most %d characters, got %d", MaxTitleLength, len(trimmed))
	}
	return ContentTitle{value: trimmed}, nil
}

func (t ContentTitle) String() string { return t.value }

// Equals reports value equality with another title.
func (t ContentTitle) Equals(other ContentTitle) bool { return t.value == other.value }

// SlugSuggestion derives a slug candidate from the title using the
// canonical slugify transform.
func (t ContentTitle) SlugSuggestion() string {
	return slug.Make(t.value)
}

// ContentSlug is the validated URL-safe address of a content item.
type ContentSlug struct {
	value string
}

// NewContentSlug validates and constructs a ContentSlug. The value must
// be 1-100 characters of lowercase alphanumeric segments joined by
// single hyphens.
func NewContentSlug(s string) (ContentSlug, error) {
	if s == "" {
		return ContentSlug{}, newValidationError("slug", "must not be empty")
	}
	if len(s) > MaxSlugLength {
		return ContentSlug{}, newValidationError("slug", "must be at most %d characters, got %d", MaxSlugLength, len(s))
	}
	if !slug.IsValid(s) {
		return ContentSlug{}, newValidationError("slug", "must contain only lowercase letters, digits and single hyphens, got %q", s)
	}
	return ContentSlug{value: s}, nil
}

// SlugFromTitle derives a ContentSlug from a title via the canonical
// slugify transform. Fails when the title yields no slug material
// (e.g. symbols only).
func SlugFromTitle(title ContentTitle) (ContentSlug, error) {
	return NewContentSlug(title.SlugSuggestion())
}

func (s ContentSlug) String() string { return s.value }

// Equals reports value equality with another slug.
func (s ContentSlug) Equals(other ContentSlug) bool { return s.value == other.value }

// WithSuffix returns a new slug with "-<n>" appended, re-validated
// against the slug rules (including the length limit).
func (s ContentSlug) WithSuffix(n int) (ContentSlug, error) {
	return NewContentSlug(slug.WithSuffix(s.value, n))
}

// ContentBody is the validated body text of a content item.
type ContentBody struct {
	value string
}

// NewContentBody validates and constructs a ContentBody (1-50,000 characters).
func NewContentBody(s string) (ContentBody, error) {
	if s == "" {
		return ContentBody{}, newValidationError("body", "must not be empty")
	}
	if len(s) > MaxBodyLength {
		return ContentBody{}, newValidationError("body", "must be at most %d characters, got %d", MaxBodyLength, len(s))
	}
	return ContentBody{value: s}, nil
}

func (b ContentBody) String() string { return b.value }

// Equals reports value equality with another body.
func (b ContentBody) Equals(other ContentBody) bool { return b.value == other.value }

// IsBlank reports whether the body contains only whitespace.
func (b ContentBody) IsBlank() bool { return strings.TrimSpace(b.value) == "" }

// Length returns the body length in bytes.
func (b ContentBody) Length() int { return len(b.value) }

// HasMarkdown reports whether the body uses Markdown features.
func (b ContentBody) HasMarkdown() bool {
	return markdown.HasSyntax(b.value)
}

// Excerpt strips Markdown from the body and truncates the result to at
// most maxLen characters, cutting at a word boundary and appending an
// ellipsis when truncated.
func (b ContentBody) Excerpt(maxLen int) string {
	text := markdown.PlainText(b.value)
	if maxLen <= 0 || len(text) <= maxLen {
		return text
	}

	cut := text[:maxLen]
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ") + "..."
}
