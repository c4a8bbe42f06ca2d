package simplecms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simplecms/simple-cms/pkg/simplecms"
)

func newTestMedia(t *testing.T, name string) *simplecms.Media {
	t.Helper()
	filename, err := simplecms.NewMediaFilename(name)
	require.NoError(t, err)
	objectKey, err := simplecms.NewMediaObjectKey("uploads/" + name)
	require.NoError(t, err)
	mediaURL, err := simplecms.NewMediaURL("https://cdn.example.com/uploads/" + name)
	require.NoError(t, err)
	size, err := simplecms.NewMediaSize(248000)
	require.NoError(t, err)

	media, err := simplecms.NewMedia(filename, objectKey, mediaURL, size, "image/jpeg")
	require.NoError(t, err)
	return media
}

func TestNewMedia(t *testing.T) {
	media := newTestMedia(t, "photo.jpg")

	assert.False(t, media.ID.IsZero())
	assert.Equal(t, "photo.jpg", media.Filename.String())
	assert.Equal(t, "uploads/photo.jpg", media.ObjectKey.String())
	assert.Equal(t, int64(248000), media.Size.Bytes())
	assert.Equal(t, "image/jpeg", media.MimeType)
	assert.Nil(t, media.ContentID)
	assert.False(t, media.IsAttached())
	assert.False(t, media.CreatedAt.IsZero())
}

func TestNewMediaRequiresMimeType(t *testing.T) {
	filename, err := simplecms.NewMediaFilename("photo.jpg")
	require.NoError(t, err)
	objectKey, err := simplecms.NewMediaObjectKey("uploads/photo.jpg")
	require.NoError(t, err)
	mediaURL, err := simplecms.NewMediaURL("https://cdn.example.com/photo.jpg")
	require.NoError(t, err)
	size, err := simplecms.NewMediaSize(1024)
	require.NoError(t, err)

	_, err = simplecms.NewMedia(filename, objectKey, mediaURL, size, "")
	assert.ErrorIs(t, err, simplecms.ErrValidation)
}

func TestMediaAttachDetach(t *testing.T) {
	media := newTestMedia(t, "photo.jpg")
	contentID := simplecms.NewContentID()

	media.AttachToContent(contentID)
	assert.True(t, media.IsAttached())
	require.NotNil(t, media.ContentID)
	assert.Equal(t, contentID, *media.ContentID)

	media.DetachFromContent()
	assert.False(t, media.IsAttached())
	assert.Nil(t, media.ContentID)
}

func TestMediaUpdateAlt(t *testing.T) {
	media := newTestMedia(t, "photo.jpg")

	alt := "A sunset over the harbor"
	media.UpdateAlt(&alt)
	require.NotNil(t, media.Alt)
	assert.Equal(t, "A sunset over the harbor", *media.Alt)

	media.UpdateAlt(nil)
	assert.Nil(t, media.Alt)
}

func TestMediaUpdateURL(t *testing.T) {
	media := newTestMedia(t, "photo.jpg")

	migrated, err := simplecms.NewMediaURL("https://media.example.r2.dev/uploads/photo.jpg")
	require.NoError(t, err)
	media.UpdateURL(migrated)
	assert.Equal(t, "https://media.example.r2.dev/uploads/photo.jpg", media.URL.String())
	assert.True(t, media.URL.IsR2())
}

func TestMediaIsImage(t *testing.T) {
	assert.True(t, newTestMedia(t, "photo.jpg").IsImage())
	assert.True(t, newTestMedia(t, "diagram.svg").IsImage())
	assert.False(t, newTestMedia(t, "report.pdf").IsImage())
}
