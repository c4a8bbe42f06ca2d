package simplecms

import (
	"context"
)

// Service defines the main interface for the simple-cms library.
type Service interface {
	// Content operations
	CreateContent(ctx context.Context, req CreateContentRequest) (*Content, error)
	GetContent(ctx context.Context, id ContentID) (*Content, error)
	GetContentBySlug(ctx context.Context, slug string) (*Content, error)
	UpdateContent(ctx context.Context, req UpdateContentRequest) (*Content, error)
	PublishContent(ctx context.Context, id ContentID) (*Content, error)
	UnpublishContent(ctx context.Context, id ContentID) (*Content, error)
	ArchiveContent(ctx context.Context, id ContentID) (*Content, error)
	DeleteContent(ctx context.Context, id ContentID) error
	ListContent(ctx context.Context, filter ListContentFilter) ([]*Content, error)

	// Content type operations
	CreateContentType(ctx context.Context, req CreateContentTypeRequest) (*ContentType, error)
	GetContentType(ctx context.Context, id ContentTypeID) (*ContentType, error)
	GetContentTypeByName(ctx context.Context, name string) (*ContentType, error)
	UpdateContentType(ctx context.Context, req UpdateContentTypeRequest) (*ContentType, error)
	ActivateContentType(ctx context.Context, id ContentTypeID) (*ContentType, error)
	DeactivateContentType(ctx context.Context, id ContentTypeID) (*ContentType, error)
	ListContentTypes(ctx context.Context, activeOnly bool) ([]*ContentType, error)

	// Media operations
	CreateMedia(ctx context.Context, req CreateMediaRequest) (*Media, error)
	GetMedia(ctx context.Context, id MediaID) (*Media, error)
	ListContentMedia(ctx context.Context, contentID ContentID) ([]*Media, error)
	AttachMedia(ctx context.Context, mediaID MediaID, contentID ContentID) (*Media, error)
	DetachMedia(ctx context.Context, mediaID MediaID) (*Media, error)
	UpdateMediaAltText(ctx context.Context, mediaID MediaID, alt *string) (*Media, error)
	UpdateMediaURL(ctx context.Context, mediaID MediaID, rawURL string) (*Media, error)
	DeleteMedia(ctx context.Context, id MediaID) error

	// Slug operations
	GenerateUniqueSlug(ctx context.Context, title string, excludeID ContentID) (ContentSlug, error)
	ValidateSlugUniqueness(ctx context.Context, slug string, excludeID ContentID) error
}
