package simplecms

import (
	"time"
)

// Content represents an addressable content item: the aggregate root
// for titles, slugs, bodies and the publishing lifecycle.
//
// Invariant: IsPublished() is true exactly when Status is published and
// PublishedAt is set. Every mutating method refreshes UpdatedAt.
type Content struct {
	ID            ContentID     `json:"id"`
	Title         ContentTitle  `json:"title"`
	Slug          ContentSlug   `json:"slug"`
	Body          ContentBody   `json:"body"`
	Status        ContentStatus `json:"status"`
	ContentTypeID ContentTypeID `json:"content_type_id"`
	PublishedAt   *time.Time    `json:"published_at,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// NewContent creates a draft content item. The slug is derived from the
// title; callers wanting a custom slug call UpdateSlug afterwards.
func NewContent(title ContentTitle, body ContentBody, contentTypeID ContentTypeID) (*Content, error) {
	if contentTypeID.IsZero() {
		return nil, newValidationError("content_type_id", "must be set")
	}

	contentSlug, err := SlugFromTitle(title)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Content{
		ID:            NewContentID(),
		Title:         title,
		Slug:          contentSlug,
		Body:          body,
		Status:        StatusDraft,
		ContentTypeID: contentTypeID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// IsPublished reports whether the content is live.
func (c *Content) IsPublished() bool {
	return c.Status == StatusPublished && c.PublishedAt != nil
}

// Publish moves the content to published and stamps PublishedAt.
// Fails when the content is already published or the body is blank.
func (c *Content) Publish() error {
	if _, err := canTransitionStatus(c.Status, StatusPublished); err != nil {
		return err
	}
	if c.Body.IsBlank() {
		return newValidationError("body", "cannot publish content with an empty body")
	}

	now := time.Now().UTC()
	c.Status = StatusPublished
	c.PublishedAt = &now
	c.UpdatedAt = now
	return nil
}

// Unpublish moves the content back to draft and clears PublishedAt.
// Fails when the content is already a draft.
func (c *Content) Unpublish() error {
	if _, err := canTransitionStatus(c.Status, StatusDraft); err != nil {
		return err
	}

	c.Status = StatusDraft
	c.PublishedAt = nil
	c.touch()
	return nil
}

// Archive moves the content to archived. There is no business
// precondition beyond the status table: both drafts and published
// content may be archived.
func (c *Content) Archive() error {
	if _, err := canTransitionStatus(c.Status, StatusArchived); err != nil {
		return err
	}

	c.Status = StatusArchived
	c.touch()
	return nil
}

// UpdateTitle sets a new title and re-derives the slug from it. Callers
// wanting to keep a custom slug call UpdateSlug afterwards.
func (c *Content) UpdateTitle(title ContentTitle) error {
	contentSlug, err := SlugFromTitle(title)
	if err != nil {
		return err
	}

	c.Title = title
	c.Slug = contentSlug
	c.touch()
	return nil
}

// UpdateSlug sets a custom slug.
func (c *Content) UpdateSlug(contentSlug ContentSlug) {
	c.Slug = contentSlug
	c.touch()
}

// UpdateBody replaces the body text.
func (c *Content) UpdateBody(body ContentBody) {
	c.Body = body
	c.touch()
}

// GenerateExcerpt returns a plain-text excerpt of the body, at most
// maxLen characters.
func (c *Content) GenerateExcerpt(maxLen int) string {
	return c.Body.Excerpt(maxLen)
}

func (c *Content) touch() {
	c.UpdatedAt = time.Now().UTC()
}
