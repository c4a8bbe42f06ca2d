package simplecms

import (
	"regexp"
	"strings"
)

// Content type value object limits.
const (
	MinTypeNameLength    = 2
	MaxTypeNameLength    = 50
	MaxDisplayNameLength = 100
)

// typeNamePattern is the machine-name grammar for content type names.
var typeNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// ContentTypeName is the unique machine name of a content type
// (e.g. "blog_post").
type ContentTypeName struct {
	value string
}

// NewContentTypeName validates and constructs a ContentTypeName.
func NewContentTypeName(s string) (ContentTypeName, error) {
	if len(s) < MinTypeNameLength || len(s) > MaxTypeNameLength {
		return ContentTypeName{}, newValidationError("name", "must be %d-%d characters, got %d", MinTypeNameLength, MaxTypeNameLength, len(s))
	}
	if !typeNamePattern.MatchString(s) {
		return ContentTypeName{}, newValidationError("name", "must start with a lowercase letter and contain only lowercase letters, digits and underscores, got %q", s)
	}
	return ContentTypeName{value: s}, nil
}

func (n ContentTypeName) String() string { return n.value }

// Equals reports value equality with another name.
func (n ContentTypeName) Equals(other ContentTypeName) bool { return n.value == other.value }

// ContentTypeDisplayName is the human-readable name of a content type.
type ContentTypeDisplayName struct {
	value string
}

// NewContentTypeDisplayName validates and constructs a display name.
// The value is trimmed; the trimmed form must be 1-100 characters.
func NewContentTypeDisplayName(s string) (ContentTypeDisplayName, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ContentTypeDisplayName{}, newValidationError("display_name", "must not be empty")
	}
	if len(trimmed) > MaxDisplayNameLength {
		return ContentTypeDisplayName{}, newValidationError("display_name", "must be at most %d characters, got %d", MaxDisplayNameLength, len(trimmed))
	}
	return ContentTypeDisplayName{value: trimmed}, nil
}

func (n ContentTypeDisplayName) String() string { return n.value }

// Equals reports value equality with another display name.
func (n ContentTypeDisplayName) Equals(other ContentTypeDisplayName) bool {
	return n.value == other.value
}

// SchemaFieldType enumerates the field kinds a content type schema may declare.
type SchemaFieldType string

// Schema field type constants (typed).
const (
	FieldTypeText     SchemaFieldType = "text"
	FieldTypeRichText SchemaFieldType = "richtext"
	FieldTypeNumber   SchemaFieldType = "number"
	FieldTypeBoolean  SchemaFieldType = "boolean"
	FieldTypeDate     SchemaFieldType = "date"
	FieldTypeMedia    SchemaFieldType = "media"
)

// IsValid reports whether the field type is one of the known kinds.
func (t SchemaFieldType) IsValid() bool {
	switch t {
	case FieldTypeText, FieldTypeRichText, FieldTypeNumber, FieldTypeBoolean, FieldTypeDate, FieldTypeMedia:
		return true
	default:
		return false
	}
}

// isText reports whether the field type carries free text, which is the
// only kind a MaxLength constraint applies to.
func (t SchemaFieldType) isText() bool {
	return t == FieldTypeText || t == FieldTypeRichText
}

// SchemaField describes one field a content type allows.
type SchemaField struct {
	Type      SchemaFieldType `json:"type"`
	Required  bool            `json:"required"`
	MaxLength int             `json:"max_length,omitempty"`
}

// ContentTypeSchema maps field names to their descriptors. It is
// schema-level metadata describing the fields a content type allows;
// the domain layer does not structurally enforce it on content bodies.
type ContentTypeSchema map[string]SchemaField

// NewContentTypeSchema validates a schema definition: field names must
// be non-empty, field types known, and MaxLength non-negative and only
// set on text kinds.
func NewContentTypeSchema(fields map[string]SchemaField) (ContentTypeSchema, error) {
	if len(fields) == 0 {
		return nil, newValidationError("schema", "must declare at least one field")
	}

	schema := make(ContentTypeSchema, len(fields))
	for name, field := range fields {
		if strings.TrimSpace(name) == "" {
			return nil, newValidationError("schema", "field names must not be empty")
		}
		if !field.Type.IsValid() {
			return nil, newValidationError("schema", "field %q has unknown type %q", name, field.Type)
		}
		if field.MaxLength < 0 {
			return nil, newValidationError("schema", "field %q has negative max length", name)
		}
		if field.MaxLength > 0 && !field.Type.isText() {
			return nil, newValidationError("schema", "field %q: max length applies only to text fields", name)
		}
		schema[name] = field
	}
	return schema, nil
}

// Field returns the descriptor for a field name.
func (s ContentTypeSchema) Field(name string) (SchemaField, bool) {
	f, ok := s[name]
	return f, ok
}

// RequiredFields returns the names of all required fields.
func (s ContentTypeSchema) RequiredFields() []string {
	var required []string
	for name, field := range s {
		if field.Required {
			required = append(required, name)
		}
	}
	return required
}

// clone returns a copy so callers cannot mutate a stored schema.
func (s ContentTypeSchema) clone() ContentTypeSchema {
	if s == nil {
		return nil
	}
	out := make(ContentTypeSchema, len(s))
	for name, field := range s {
		out[name] = field
	}
	return out
}
