package simplecms

import (
	"context"
	"errors"
	"fmt"
)

// service implements the Service interface
type service struct {
	repository  Repository
	slugChecker SlugChecker
	eventSink   EventSink
}

// Option represents a functional option for configuring the service
type Option func(*service)

// WithRepository sets the repository for the service
func WithRepository(repo Repository) Option {
	return func(s *service) {
		s.repository = repo
	}
}

// WithSlugChecker overrides the slug uniqueness checker. By default the
// repository answers uniqueness probes.
func WithSlugChecker(checker SlugChecker) Option {
	return func(s *service) {
		s.slugChecker = checker
	}
}

// WithEventSink sets the event sink for the service
func WithEventSink(sink EventSink) Option {
	return func(s *service) {
		s.eventSink = sink
	}
}

// New creates a new service instance with the given options
func New(options ...Option) (Service, error) {
	s := &service{}

	for _, option := range options {
		option(s)
	}

	if s.repository == nil {
		return nil, fmt.Errorf("repository is required")
	}
	if s.slugChecker == nil {
		s.slugChecker = s.repository
	}
	if s.eventSink == nil {
		s.eventSink = NewNoopEventSink()
	}

	return s, nil
}

// Content operations

func (s *service) CreateContent(ctx context.Context, req CreateContentRequest) (*Content, error) {
	title, err := NewContentTitle(req.Title)
	if err != nil {
		return nil, err
	}
	body, err := NewContentBody(req.Body)
	if err != nil {
		return nil, err
	}

	contentType, err := s.repository.GetContentType(ctx, req.ContentTypeID)
	if err != nil {
		return nil, err
	}
	if !contentType.IsActive {
		return nil, newValidationError("content_type_id", "content type %s is not active", contentType.Name)
	}

	content, err := NewContent(title, body, req.ContentTypeID)
	if err != nil {
		return nil, err
	}

	if req.Slug != "" {
		custom, err := NewContentSlug(req.Slug)
		if err != nil {
			return nil, err
		}
		if err := ValidateTitleAndSlugConsistency(req.Title, req.Slug); err != nil {
			return nil, err
		}
		if err := ValidateSlugUniqueness(ctx, req.Slug, s.slugChecker, ContentID{}); err != nil {
			return nil, err
		}
		content.Slug = custom
	} else {
		unique, err := GenerateUniqueSlug(ctx, req.Title, s.slugChecker, ContentID{})
		if err != nil {
			return nil, err
		}
		content.Slug = unique
	}

	if err := s.repository.CreateContent(ctx, content); err != nil {
		return nil, &ContentError{ContentID: content.ID, Op: "create", Err: err}
	}

	// Sink failures never fail the operation.
	_ = s.eventSink.ContentCreated(ctx, content)

	return content, nil
}

func (s *service) GetContent(ctx context.Context, id ContentID) (*Content, error) {
	return s.repository.GetContent(ctx, id)
}

func (s *service) GetContentBySlug(ctx context.Context, rawSlug string) (*Content, error) {
	contentSlug, err := NewContentSlug(rawSlug)
	if err != nil {
		return nil, err
	}
	return s.repository.GetContentBySlug(ctx, contentSlug)
}

func (s *service) UpdateContent(ctx context.Context, req UpdateContentRequest) (*Content, error) {
	content, err := s.repository.GetContent(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title, err := NewContentTitle(*req.Title)
		if err != nil {
			return nil, err
		}
		if err := content.UpdateTitle(title); err != nil {
			return nil, err
		}
	}

	if req.Slug != nil {
		custom, err := NewContentSlug(*req.Slug)
		if err != nil {
			return nil, err
		}
		if err := ValidateTitleAndSlugConsistency(content.Title.String(), *req.Slug); err != nil {
			return nil, err
		}
		if err := ValidateSlugUniqueness(ctx, *req.Slug, s.slugChecker, req.ID); err != nil {
			return nil, err
		}
		content.UpdateSlug(custom)
	} else if req.Title != nil {
		// A re-derived slug may collide with other content; resolve with
		// the usual suffix probing, excluding this item.
		unique, err := GenerateUniqueSlug(ctx, content.Title.String(), s.slugChecker, req.ID)
		if err != nil {
			return nil, err
		}
		content.UpdateSlug(unique)
	}

	if req.Body != nil {
		body, err := NewContentBody(*req.Body)
		if err != nil {
			return nil, err
		}
		content.UpdateBody(body)
	}

	if err := s.repository.UpdateContent(ctx, content); err != nil {
		return nil, &ContentError{ContentID: content.ID, Op: "update", Err: err}
	}

	_ = s.eventSink.ContentUpdated(ctx, content)

	return content, nil
}

func (s *service) PublishContent(ctx context.Context, id ContentID) (*Content, error) {
	content, err := s.repository.GetContent(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := ValidateContentForPublication(content.Title.String(), content.Body.String()); err != nil {
		return nil, err
	}
	if err := content.Publish(); err != nil {
		return nil, err
	}

	if err := s.repository.UpdateContent(ctx, content); err != nil {
		return nil, &ContentError{ContentID: content.ID, Op: "publish", Err: err}
	}

	_ = s.eventSink.ContentPublished(ctx, content)

	return content, nil
}

func (s *service) UnpublishContent(ctx context.Context, id ContentID) (*Content, error) {
	content, err := s.repository.GetContent(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := content.Unpublish(); err != nil {
		return nil, err
	}

	if err := s.repository.UpdateContent(ctx, content); err != nil {
		return nil, &ContentError{ContentID: content.ID, Op: "unpublish", Err: err}
	}

	_ = s.eventSink.ContentUnpublished(ctx, content)

	return content, nil
}

func (s *service) ArchiveContent(ctx context.Context, id ContentID) (*Content, error) {
	content, err := s.repository.GetContent(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := content.Archive(); err != nil {
		return nil, err
	}

	if err := s.repository.UpdateContent(ctx, content); err != nil {
		return nil, &ContentError{ContentID: content.ID, Op: "archive", Err: err}
	}

	_ = s.eventSink.ContentArchived(ctx, content)

	return content, nil
}

func (s *service) DeleteContent(ctx context.Context, id ContentID) error {
	if err := s.repository.DeleteContent(ctx, id); err != nil {
		return &ContentError{ContentID: id, Op: "delete", Err: err}
	}

	_ = s.eventSink.ContentDeleted(ctx, id)

	return nil
}

func (s *service) ListContent(ctx context.Context, filter ListContentFilter) ([]*Content, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, newValidationError("status", "unknown status %q", filter.Status)
	}
	return s.repository.ListContent(ctx, filter)
}

// Content type operations

func (s *service) CreateContentType(ctx context.Context, req CreateContentTypeRequest) (*ContentType, error) {
	name, err := NewContentTypeName(req.Name)
	if err != nil {
		return nil, err
	}
	displayName, err := NewContentTypeDisplayName(req.DisplayName)
	if err != nil {
		return nil, err
	}
	schema, err := NewContentTypeSchema(req.Schema)
	if err != nil {
		return nil, err
	}

	// Name is the business key; reject duplicates before insert so the
	// caller sees a conflict rather than a driver error.
	if _, err := s.repository.GetContentTypeByName(ctx, name); err == nil {
		return nil, fmt.Errorf("%w: %q", ErrContentTypeNameTaken, name)
	} else if !errors.Is(err, ErrContentTypeNotFound) {
		return nil, err
	}

	contentType := NewContentType(name, displayName, schema, req.Description)

	if err := s.repository.CreateContentType(ctx, contentType); err != nil {
		return nil, &ContentTypeError{ContentTypeID: contentType.ID, Op: "create", Err: err}
	}

	return contentType, nil
}

func (s *service) GetContentType(ctx context.Context, id ContentTypeID) (*ContentType, error) {
	return s.repository.GetContentType(ctx, id)
}

func (s *service) GetContentTypeByName(ctx context.Context, rawName string) (*ContentType, error) {
	name, err := NewContentTypeName(rawName)
	if err != nil {
		return nil, err
	}
	return s.repository.GetContentTypeByName(ctx, name)
}

func (s *service) UpdateContentType(ctx context.Context, req UpdateContentTypeRequest) (*ContentType, error) {
	contentType, err := s.repository.GetContentType(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		displayName, err := NewContentTypeDisplayName(*req.DisplayName)
		if err != nil {
			return nil, err
		}
		contentType.UpdateDisplayName(displayName)
	}
	if req.DescriptionSet {
		contentType.UpdateDescription(req.Description)
	}
	if req.Schema != nil {
		schema, err := NewContentTypeSchema(req.Schema)
		if err != nil {
			return nil, err
		}
		contentType.UpdateSchema(schema)
	}

	if err := s.repository.UpdateContentType(ctx, contentType); err != nil {
		return nil, &ContentTypeError{ContentTypeID: contentType.ID, Op: "update", Err: err}
	}

	return contentType, nil
}

func (s *service) ActivateContentType(ctx context.Context, id ContentTypeID) (*ContentType, error) {
	return s.setContentTypeActive(ctx, id, true)
}

func (s *service) DeactivateContentType(ctx context.Context, id ContentTypeID) (*ContentType, error) {
	return s.setContentTypeActive(ctx, id, false)
}

func (s *service) setContentTypeActive(ctx context.Context, id ContentTypeID, active bool) (*ContentType, error) {
	contentType, err := s.repository.GetContentType(ctx, id)
	if err != nil {
		return nil, err
	}

	if active {
		contentType.Activate()
	} else {
		contentType.Deactivate()
	}

	op := "deactivate"
	if active {
		op = "activate"
	}
	if err := s.repository.UpdateContentType(ctx, contentType); err != nil {
		return nil, &ContentTypeError{ContentTypeID: contentType.ID, Op: op, Err: err}
	}

	return contentType, nil
}

func (s *service) ListContentTypes(ctx context.Context, activeOnly bool) ([]*ContentType, error) {
	return s.repository.ListContentTypes(ctx, activeOnly)
}

// Media operations

func (s *service) CreateMedia(ctx context.Context, req CreateMediaRequest) (*Media, error) {
	if err := ValidateMediaForContent(req.Filename); err != nil {
		return nil, err
	}

	filename, err := NewMediaFilename(req.Filename)
	if err != nil {
		return nil, err
	}
	objectKey, err := NewMediaObjectKey(req.ObjectKey)
	if err != nil {
		return nil, err
	}
	mediaURL, err := NewMediaURL(req.URL)
	if err != nil {
		return nil, err
	}
	size, err := NewMediaSize(req.SizeBytes)
	if err != nil {
		return nil, err
	}

	media, err := NewMedia(filename, objectKey, mediaURL, size, req.MimeType)
	if err != nil {
		return nil, err
	}

	if err := s.repository.CreateMedia(ctx, media); err != nil {
		return nil, &MediaError{MediaID: media.ID, Op: "create", Err: err}
	}

	_ = s.eventSink.MediaCreated(ctx, media)

	return media, nil
}

func (s *service) GetMedia(ctx context.Context, id MediaID) (*Media, error) {
	return s.repository.GetMedia(ctx, id)
}

func (s *service) ListContentMedia(ctx context.Context, contentID ContentID) ([]*Media, error) {
	return s.repository.ListMediaByContent(ctx, contentID)
}

func (s *service) AttachMedia(ctx context.Context, mediaID MediaID, contentID ContentID) (*Media, error) {
	media, err := s.repository.GetMedia(ctx, mediaID)
	if err != nil {
		return nil, err
	}

	// The entity does not verify the target exists; that check belongs
	// to the persistence layer, which is what we consult here.
	if _, err := s.repository.GetContent(ctx, contentID); err != nil {
		return nil, err
	}

	media.AttachToContent(contentID)

	if err := s.repository.UpdateMedia(ctx, media); err != nil {
		return nil, &MediaError{MediaID: media.ID, Op: "attach", Err: err}
	}

	return media, nil
}

func (s *service) DetachMedia(ctx context.Context, mediaID MediaID) (*Media, error) {
	media, err := s.repository.GetMedia(ctx, mediaID)
	if err != nil {
		return nil, err
	}

	media.DetachFromContent()

	if err := s.repository.UpdateMedia(ctx, media); err != nil {
		return nil, &MediaError{MediaID: media.ID, Op: "detach", Err: err}
	}

	return media, nil
}

func (s *service) UpdateMediaAltText(ctx context.Context, mediaID MediaID, alt *string) (*Media, error) {
	media, err := s.repository.GetMedia(ctx, mediaID)
	if err != nil {
		return nil, err
	}

	media.UpdateAlt(alt)

	if err := s.repository.UpdateMedia(ctx, media); err != nil {
		return nil, &MediaError{MediaID: media.ID, Op: "update_alt", Err: err}
	}

	return media, nil
}

func (s *service) UpdateMediaURL(ctx context.Context, mediaID MediaID, rawURL string) (*Media, error) {
	media, err := s.repository.GetMedia(ctx, mediaID)
	if err != nil {
		return nil, err
	}

	mediaURL, err := NewMediaURL(rawURL)
	if err != nil {
		return nil, err
	}
	media.UpdateURL(mediaURL)

	if err := s.repository.UpdateMedia(ctx, media); err != nil {
		return nil, &MediaError{MediaID: media.ID, Op: "update_url", Err: err}
	}

	return media, nil
}

func (s *service) DeleteMedia(ctx context.Context, id MediaID) error {
	if err := s.repository.DeleteMedia(ctx, id); err != nil {
		return &MediaError{MediaID: id, Op: "delete", Err: err}
	}

	_ = s.eventSink.MediaDeleted(ctx, id)

	return nil
}

// Slug operations

func (s *service) GenerateUniqueSlug(ctx context.Context, title string, excludeID ContentID) (ContentSlug, error) {
	return GenerateUniqueSlug(ctx, title, s.slugChecker, excludeID)
}

func (s *service) ValidateSlugUniqueness(ctx context.Context, rawSlug string, excludeID ContentID) error {
	if _, err := NewContentSlug(rawSlug); err != nil {
		return err
	}
	return ValidateSlugUniqueness(ctx, rawSlug, s.slugChecker, excludeID)
}
