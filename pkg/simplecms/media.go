package simplecms

import (
	"time"
)

// Media represents an uploaded file: its stored filename, storage
// object key, public URL and size. A media item may carry a weak
// back-reference to the content it illustrates; attaching does not
// imply ownership and detaching never cascades.
type Media struct {
	ID        MediaID        `json:"id"`
	Filename  MediaFilename  `json:"filename"`
	ObjectKey MediaObjectKey `json:"object_key"`
	URL       MediaURL       `json:"url"`
	Size      MediaSize      `json:"size"`
	MimeType  string         `json:"mime_type"`
	Alt       *string        `json:"alt,omitempty"`
	ContentID *ContentID     `json:"content_id,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// NewMedia creates an unattached media record.
func NewMedia(filename MediaFilename, objectKey MediaObjectKey, mediaURL MediaURL, size MediaSize, mimeType string) (*Media, error) {
	if mimeType == "" {
		return nil, newValidationError("mime_type", "must not be empty")
	}

	return &Media{
		ID:        NewMediaID(),
		Filename:  filename,
		ObjectKey: objectKey,
		URL:       mediaURL,
		Size:      size,
		MimeType:  mimeType,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// AttachToContent records which content this media belongs to. Whether
// the content exists is a repository concern.
func (m *Media) AttachToContent(contentID ContentID) {
	m.ContentID = &contentID
}

// DetachFromContent clears the content back-reference.
func (m *Media) DetachFromContent() {
	m.ContentID = nil
}

// IsAttached reports whether the media references a content item.
func (m *Media) IsAttached() bool {
	return m.ContentID != nil
}

// UpdateAlt replaces the alt text; nil clears it.
func (m *Media) UpdateAlt(alt *string) {
	m.Alt = alt
}

// UpdateURL replaces the public URL, e.g. after a CDN migration.
func (m *Media) UpdateURL(mediaURL MediaURL) {
	m.URL = mediaURL
}

// IsImage reports whether the media is an image, by filename extension.
func (m *Media) IsImage() bool {
	return m.Filename.IsImage()
}
