package simplecms

import (
	"time"
)

// ContentType describes a kind of content (e.g. blog post, landing
// page): its unique machine name, display metadata and field schema.
type ContentType struct {
	ID          ContentTypeID          `json:"id"`
	Name        ContentTypeName        `json:"name"`
	DisplayName ContentTypeDisplayName `json:"display_name"`
	Description *string                `json:"description,omitempty"`
	Schema      ContentTypeSchema      `json:"schema"`
	IsActive    bool                   `json:"is_active"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// NewContentType creates an active content type. Name uniqueness is a
// repository concern; the factory only enforces shape.
func NewContentType(name ContentTypeName, displayName ContentTypeDisplayName, schema ContentTypeSchema, description *string) *ContentType {
	now := time.Now().UTC()
	return &ContentType{
		ID:          NewContentTypeID(),
		Name:        name,
		DisplayName: displayName,
		Description: description,
		Schema:      schema.clone(),
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Activate marks the type as available for new content.
func (t *ContentType) Activate() {
	t.IsActive = true
	t.touch()
}

// Deactivate retires the type without deleting existing content.
func (t *ContentType) Deactivate() {
	t.IsActive = false
	t.touch()
}

// UpdateDisplayName replaces the human-readable name.
func (t *ContentType) UpdateDisplayName(displayName ContentTypeDisplayName) {
	t.DisplayName = displayName
	t.touch()
}

// UpdateDescription replaces the description; nil clears it.
func (t *ContentType) UpdateDescription(description *string) {
	t.Description = description
	t.touch()
}

// UpdateSchema replaces the field schema.
func (t *ContentType) UpdateSchema(schema ContentTypeSchema) {
	t.Schema = schema.clone()
	t.touch()
}

func (t *ContentType) touch() {
	t.UpdatedAt = time.Now().UTC()
}
