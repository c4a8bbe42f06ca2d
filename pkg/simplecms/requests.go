package simplecms

// Request DTOs

// CreateContentRequest contains parameters for creating new content.
// Slug, when empty, is generated from the title with uniqueness
// suffixing; when set, it is validated and must be free.
type CreateContentRequest struct {
	Title         string
	Body          string
	Slug          string
	ContentTypeID ContentTypeID
}

// UpdateContentRequest contains parameters for updating content fields.
// Nil pointers leave the corresponding field unchanged. Setting Title
// re-derives the slug unless Slug is also set in the same request.
type UpdateContentRequest struct {
	ID    ContentID
	Title *string
	Slug  *string
	Body  *string
}

// ListContentFilter narrows ListContent results. Zero values match
// everything.
type ListContentFilter struct {
	ContentTypeID ContentTypeID
	Status        ContentStatus
}

// CreateContentTypeRequest contains parameters for creating a content type.
type CreateContentTypeRequest struct {
	Name        string
	DisplayName string
	Description *string
	Schema      map[string]SchemaField
}

// UpdateContentTypeRequest contains parameters for updating a content
// type. Nil leaves the field unchanged; DescriptionSet distinguishes
// clearing the description from leaving it alone.
type UpdateContentTypeRequest struct {
	ID             ContentTypeID
	DisplayName    *string
	Description    *string
	DescriptionSet bool
	Schema         map[string]SchemaField
}

// CreateMediaRequest contains parameters for registering an uploaded
// media object.
type CreateMediaRequest struct {
	Filename  string
	ObjectKey string
	URL       string
	SizeBytes int64
	MimeType  string
}
