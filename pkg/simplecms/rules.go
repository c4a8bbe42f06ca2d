package simplecms

import (
	"context"
	"fmt"
	"strings"

	"github.com/simplecms/simple-cms/pkg/simplecms/slug"
)

// Domain rules are pure functions over primitive inputs so they can be
// exercised without assembling a full entity graph. The Service methods
// delegate here.

// MaxSlugAttempts bounds the unique-slug search. Hitting the bound
// almost always means the uniqueness checker is answering "taken" for
// everything, not that the namespace is full.
const MaxSlugAttempts = 1000

// SEO slug bounds.
const (
	MinSEOSlugLength = 3
	MaxSEOSlugLength = 60
)

// dangerousExtensions is the fixed denylist of executable filename
// extensions rejected for media uploads, matched case-insensitively.
var dangerousExtensions = map[string]struct{}{
	".exe": {},
	".bat": {},
	".com": {},
	".scr": {},
	".pif": {},
	".cmd": {},
}

// SlugChecker answers whether a candidate slug is already in use.
// excludeID, when non-zero, names a content item whose own slug does
// not count as a collision (the item being updated).
//
// Repository implementations back this with a lookup; tests supply
// closures via SlugCheckerFunc.
type SlugChecker interface {
	SlugExists(ctx context.Context, candidate string, excludeID ContentID) (bool, error)
}

// SlugCheckerFunc adapts a function to the SlugChecker interface.
type SlugCheckerFunc func(ctx context.Context, candidate string, excludeID ContentID) (bool, error)

func (f SlugCheckerFunc) SlugExists(ctx context.Context, candidate string, excludeID ContentID) (bool, error) {
	return f(ctx, candidate, excludeID)
}

// GenerateUniqueSlug derives a slug from the title and resolves
// collisions by appending -1, -2, ... to the base. Probes are strictly
// sequential; each depends on the previous answer and this path is not
// throughput sensitive. Fails with ErrSlugExhausted after
// MaxSlugAttempts probes.
func GenerateUniqueSlug(ctx context.Context, title string, checker SlugChecker, excludeID ContentID) (ContentSlug, error) {
	titleVO, err := NewContentTitle(title)
	if err != nil {
		return ContentSlug{}, err
	}
	base, err := SlugFromTitle(titleVO)
	if err != nil {
		return ContentSlug{}, err
	}

	candidate := base
	for attempt := 1; attempt <= MaxSlugAttempts; attempt++ {
		taken, err := checker.SlugExists(ctx, candidate.String(), excludeID)
		if err != nil {
			return ContentSlug{}, fmt.Errorf("slug uniqueness check failed: %w", err)
		}
		if !taken {
			return candidate, nil
		}
		candidate, err = base.WithSuffix(attempt)
		if err != nil {
			return ContentSlug{}, err
		}
	}

	return ContentSlug{}, fmt.Errorf("%w: no free slug for %q within %d attempts", ErrSlugExhausted, base, MaxSlugAttempts)
}

// ValidateSlugUniqueness fails with ErrSlugTaken when the slug is
// already in use by a content item other than excludeID.
func ValidateSlugUniqueness(ctx context.Context, candidate string, checker SlugChecker, excludeID ContentID) error {
	taken, err := checker.SlugExists(ctx, candidate, excludeID)
	if err != nil {
		return fmt.Errorf("slug uniqueness check failed: %w", err)
	}
	if taken {
		return fmt.Errorf("%w: %q", ErrSlugTaken, candidate)
	}
	return nil
}

// ValidateTitleAndSlugConsistency checks that a slug plausibly belongs
// to a title. Custom slugs are permitted: when the slug differs from
// the title-derived one, only softer checks apply (minimum length and
// the slug grammar).
func ValidateTitleAndSlugConsistency(title, candidate string) error {
	if slug.Make(title) == candidate {
		return nil
	}
	if len(candidate) < MinSEOSlugLength {
		return newValidationError("slug", "custom slug must be at least %d characters, got %d", MinSEOSlugLength, len(candidate))
	}
	if !slug.IsValid(candidate) {
		return newValidationError("slug", "custom slug %q does not match the slug format", candidate)
	}
	return nil
}

// ValidateContentFields checks the primitive field constraints for a
// content item. body may be empty to mean "not provided".
func ValidateContentFields(title, candidate, body string) error {
	trimmedTitle := strings.TrimSpace(title)
	if trimmedTitle == "" {
		return newValidationError("title", "must not be empty")
	}
	if len(trimmedTitle) > MaxTitleLength {
		return newValidationError("title", "must be at most %d characters, got %d", MaxTitleLength, len(trimmedTitle))
	}
	if candidate == "" {
		return newValidationError("slug", "must not be empty")
	}
	if len(candidate) > MaxSlugLength {
		return newValidationError("slug", "must be at most %d characters, got %d", MaxSlugLength, len(candidate))
	}
	if body != "" && len(body) > MaxBodyLength {
		return newValidationError("body", "must be at most %d characters, got %d", MaxBodyLength, len(body))
	}
	return ValidateTitleAndSlugConsistency(title, candidate)
}

// ValidateContentForPublication checks the publication preconditions:
// a title, a non-blank body, and at least 10 characters of body text.
func ValidateContentForPublication(title, body string) error {
	if strings.TrimSpace(title) == "" {
		return newValidationError("title", "must not be empty")
	}
	if strings.TrimSpace(body) == "" {
		return newValidationError("body", "must not be empty")
	}
	if len(body) < 10 {
		return newValidationError("body", "must be at least 10 characters to publish, got %d", len(body))
	}
	return nil
}

// ValidateMediaForContent checks that a filename is acceptable for
// attachment: non-blank, within the length limit, and not carrying an
// executable extension.
func ValidateMediaForContent(filename string) error {
	if strings.TrimSpace(filename) == "" {
		return newValidationError("filename", "must not be empty")
	}
	if len(filename) > MaxFilenameLength {
		return newValidationError("filename", "must be at most %d characters, got %d", MaxFilenameLength, len(filename))
	}
	if i := strings.LastIndexByte(filename, '.'); i >= 0 {
		ext := strings.ToLower(filename[i:])
		if _, dangerous := dangerousExtensions[ext]; dangerous {
			return newValidationError("filename", "extension %s is not allowed", ext)
		}
	}
	return nil
}

// ValidateSlugForSEO applies the stricter slug rules recommended for
// search indexing: length within [3,60], no double hyphens, no leading
// or trailing hyphen.
func ValidateSlugForSEO(candidate string) error {
	if len(candidate) < MinSEOSlugLength {
		return newValidationError("slug", "must be at least %d characters for SEO, got %d", MinSEOSlugLength, len(candidate))
	}
	if len(candidate) > MaxSEOSlugLength {
		return newValidationError("slug", "must be at most %d characters for SEO, got %d", MaxSEOSlugLength, len(candidate))
	}
	if strings.Contains(candidate, "--") {
		return newValidationError("slug", "must not contain consecutive hyphens")
	}
	if strings.HasPrefix(candidate, "-") || strings.HasSuffix(candidate, "-") {
		return newValidationError("slug", "must not start or end with a hyphen")
	}
	return nil
}
