package simplecms

import "fmt"

// ContentStatus is the domain type for content lifecycle states.
type ContentStatus string

// Content status constants (typed).
const (
	StatusDraft     ContentStatus = "draft"
	StatusPublished ContentStatus = "published"
	StatusArchived  ContentStatus = "archived"
)

// ParseContentStatus validates a textual status value.
func ParseContentStatus(s string) (ContentStatus, error) {
	switch ContentStatus(s) {
	case StatusDraft, StatusPublished, StatusArchived:
		return ContentStatus(s), nil
	default:
		return "", newValidationError("status", "unknown status %q", s)
	}
}

// IsValid reports whether the status is one of the known lifecycle states.
func (s ContentStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	default:
		return false
	}
}

// canTransitionStatus checks whether a content item may move from one
// lifecycle state to another. Every state may reach every other state,
// but no state may transition to itself.
// Returns true if the transition is allowed, false with an error otherwise.
func canTransitionStatus(from, to ContentStatus) (bool, error) {
	if !from.IsValid() {
		return false, newValidationError("status", "unknown status %q", from)
	}
	if !to.IsValid() {
		return false, newValidationError("status", "unknown status %q", to)
	}
	if from == to {
		return false, fmt.Errorf("%w: content is already %s", ErrInvalidTransition, to)
	}
	return true, nil
}
