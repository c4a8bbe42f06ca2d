package simplecms

import (
	"github.com/google/uuid"
)

// Opaque entity identifiers. Each wraps a UUID so that a content ID can
// never be passed where a media ID is expected.

// ContentID identifies a Content aggregate.
type ContentID struct {
	value uuid.UUID
}

// NewContentID generates a fresh random ContentID.
func NewContentID() ContentID {
	return ContentID{value: uuid.New()}
}

// ParseContentID parses the textual UUID form of a ContentID.
func ParseContentID(s string) (ContentID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ContentID{}, newValidationError("content_id", "invalid id %q: %v", s, err)
	}
	return ContentID{value: id}, nil
}

func (id ContentID) String() string  { return id.value.String() }
func (id ContentID) UUID() uuid.UUID { return id.value }
func (id ContentID) IsZero() bool    { return id.value == uuid.Nil }

// ContentTypeID identifies a ContentType aggregate.
type ContentTypeID struct {
	value uuid.UUID
}

// NewContentTypeID generates a fresh random ContentTypeID.
func NewContentTypeID() ContentTypeID {
	return ContentTypeID{value: uuid.New()}
}

// ParseContentTypeID parses the textual UUID form of a ContentTypeID.
func ParseContentTypeID(s string) (ContentTypeID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ContentTypeID{}, newValidationError("content_type_id", "invalid id %q: %v", s, err)
	}
	return ContentTypeID{value: id}, nil
}

func (id ContentTypeID) String() string  { return id.value.String() }
func (id ContentTypeID) UUID() uuid.UUID { return id.value }
func (id ContentTypeID) IsZero() bool    { return id.value == uuid.Nil }

// MediaID identifies a Media aggregate.
type MediaID struct {
	value uuid.UUID
}

// NewMediaID generates a fresh random MediaID.
func NewMediaID() MediaID {
	return MediaID{value: uuid.New()}
}

// ParseMediaID parses the textual UUID form of a MediaID.
func ParseMediaID(s string) (MediaID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return MediaID{}, newValidationError("media_id", "invalid id %q: %v", s, err)
	}
	return MediaID{value: id}, nil
}

func (id MediaID) String() string  { return id.value.String() }
func (id MediaID) UUID() uuid.UUID { return id.value }
func (id MediaID) IsZero() bool    { return id.value == uuid.Nil }
