package simplecms

import (
	"errors"
	"fmt"
)

// Error kinds
var (
	// ErrValidation is the root of all input validation failures.
	// Concrete failures carry field context via ValidationError and
	// unwrap to this sentinel.
	ErrValidation = errors.New("validation failed")

	// ErrConflict indicates a uniqueness constraint violation.
	ErrConflict = errors.New("conflict")

	// ErrSlugTaken indicates the requested slug is already in use.
	ErrSlugTaken = fmt.Errorf("%w: slug already in use", ErrConflict)

	// ErrContentTypeNameTaken indicates the content type name is already in use.
	ErrContentTypeNameTaken = fmt.Errorf("%w: content type name already in use", ErrConflict)

	// ErrSlugExhausted indicates unique slug generation gave up after its
	// bounded number of probes. This usually means the uniqueness checker
	// is broken rather than that the namespace is genuinely full.
	ErrSlugExhausted = errors.New("unique slug generation exhausted attempts")

	// ErrInvalidTransition indicates an entity method was invoked from a
	// status that does not permit the transition.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrContentNotFound indicates a content was not found
	ErrContentNotFound = errors.New("content not found")

	// ErrContentTypeNotFound indicates a content type was not found
	ErrContentTypeNotFound = errors.New("content type not found")

	// ErrMediaNotFound indicates a media record was not found
	ErrMediaNotFound = errors.New("media not found")
)

// ValidationError reports which field failed validation and why.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// newValidationError is a shorthand used by value object constructors.
func newValidationError(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// ContentError represents an error related to content operations
type ContentError struct {
	ContentID ContentID
	Op        string
	Err       error
}

func (e *ContentError) Error() string {
	return fmt.Sprintf("content operation %s failed for content %s: %v", e.Op, e.ContentID, e.Err)
}

func (e *ContentError) Unwrap() error {
	return e.Err
}

// ContentTypeError represents an error related to content type operations
type ContentTypeError struct {
	ContentTypeID ContentTypeID
	Op            string
	Err           error
}

func (e *ContentTypeError) Error() string {
	return fmt.Sprintf("content type operation %s failed for %s: %v", e.Op, e.ContentTypeID, e.Err)
}

func (e *ContentTypeError) Unwrap() error {
	return e.Err
}

// MediaError represents an error related to media operations
type MediaError struct {
	MediaID MediaID
	Op      string
	Err     error
}

func (e *MediaError) Error() string {
	return fmt.Sprintf("media operation %s failed for media %s: %v", e.Op, e.MediaID, e.Err)
}

func (e *MediaError) Unwrap() error {
	return e.Err
}
