package simplecms

import (
	"context"
)

// Repository defines the persistence contract the domain layer is
// written against. Implementations (memory, Postgres) live under
// repo/. Every Repository is also a SlugChecker.
type Repository interface {
	SlugChecker

	// Content operations
	CreateContent(ctx context.Context, content *Content) error
	GetContent(ctx context.Context, id ContentID) (*Content, error)
	GetContentBySlug(ctx context.Context, contentSlug ContentSlug) (*Content, error)
	UpdateContent(ctx context.Context, content *Content) error
	DeleteContent(ctx context.Context, id ContentID) error
	ListContent(ctx context.Context, filter ListContentFilter) ([]*Content, error)

	// Content type operations
	CreateContentType(ctx context.Context, contentType *ContentType) error
	GetContentType(ctx context.Context, id ContentTypeID) (*ContentType, error)
	GetContentTypeByName(ctx context.Context, name ContentTypeName) (*ContentType, error)
	UpdateContentType(ctx context.Context, contentType *ContentType) error
	ListContentTypes(ctx context.Context, activeOnly bool) ([]*ContentType, error)

	// Media operations
	CreateMedia(ctx context.Context, media *Media) error
	GetMedia(ctx context.Context, id MediaID) (*Media, error)
	ListMediaByContent(ctx context.Context, contentID ContentID) ([]*Media, error)
	UpdateMedia(ctx context.Context, media *Media) error
	DeleteMedia(ctx context.Context, id MediaID) error
}

// EventSink receives domain lifecycle notifications. Sink failures are
// reported to the sink's owner (e.g. logged) but never fail the
// triggering operation.
type EventSink interface {
	ContentCreated(ctx context.Context, content *Content) error
	ContentUpdated(ctx context.Context, content *Content) error
	ContentPublished(ctx context.Context, content *Content) error
	ContentUnpublished(ctx context.Context, content *Content) error
	ContentArchived(ctx context.Context, content *Content) error
	ContentDeleted(ctx context.Context, id ContentID) error
	MediaCreated(ctx context.Context, media *Media) error
	MediaDeleted(ctx context.Context, id MediaID) error
}
