package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simplecms/simple-cms/pkg/simplecms"
	"github.com/simplecms/simple-cms/pkg/simplecms/repo/memory"
)

func newContent(t *testing.T, title string) *simplecms.Content {
	t.Helper()
	titleVO, err := simplecms.NewContentTitle(title)
	require.NoError(t, err)
	body, err := simplecms.NewContentBody("A body long enough to publish.")
	require.NoError(t, err)
	content, err := simplecms.NewContent(titleVO, body, simplecms.NewContentTypeID())
	require.NoError(t, err)
	return content
}

func newContentType(t *testing.T, name string) *simplecms.ContentType {
	t.Helper()
	nameVO, err := simplecms.NewContentTypeName(name)
	require.NoError(t, err)
	displayName, err := simplecms.NewContentTypeDisplayName("Display " + name)
	require.NoError(t, err)
	schema, err := simplecms.NewContentTypeSchema(map[string]simplecms.SchemaField{
		"body": {Type: simplecms.FieldTypeRichText},
	})
	require.NoError(t, err)
	return simplecms.NewContentType(nameVO, displayName, schema, nil)
}

func newMedia(t *testing.T, name string) *simplecms.Media {
	t.Helper()
	filename, err := simplecms.NewMediaFilename(name)
	require.NoError(t, err)
	objectKey, err := simplecms.NewMediaObjectKey("uploads/" + name)
	require.NoError(t, err)
	mediaURL, err := simplecms.NewMediaURL("https://cdn.example.com/uploads/" + name)
	require.NoError(t, err)
	size, err := simplecms.NewMediaSize(1024)
	require.NoError(t, err)
	media, err := simplecms.NewMedia(filename, objectKey, mediaURL, size, "image/jpeg")
	require.NoError(t, err)
	return media
}

func TestContentCRUD(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()
	content := newContent(t, "My Blog Post!")

	require.NoError(t, repo.CreateContent(ctx, content))

	got, err := repo.GetContent(ctx, content.ID)
	require.NoError(t, err)
	assert.Equal(t, content.ID, got.ID)
	assert.Equal(t, "my-blog-post", got.Slug.String())

	bySlug, err := repo.GetContentBySlug(ctx, content.Slug)
	require.NoError(t, err)
	assert.Equal(t, content.ID, bySlug.ID)

	require.NoError(t, got.UpdateTitle(mustNewTitle(t, "Renamed Post")))
	require.NoError(t, repo.UpdateContent(ctx, got))

	_, err = repo.GetContentBySlug(ctx, content.Slug)
	assert.ErrorIs(t, err, simplecms.ErrContentNotFound)

	renamedSlug, err := simplecms.NewContentSlug("renamed-post")
	require.NoError(t, err)
	renamed, err := repo.GetContentBySlug(ctx, renamedSlug)
	require.NoError(t, err)
	assert.Equal(t, content.ID, renamed.ID)

	require.NoError(t, repo.DeleteContent(ctx, content.ID))
	_, err = repo.GetContent(ctx, content.ID)
	assert.ErrorIs(t, err, simplecms.ErrContentNotFound)
}

func mustNewTitle(t *testing.T, s string) simplecms.ContentTitle {
	t.Helper()
	title, err := simplecms.NewContentTitle(s)
	require.NoError(t, err)
	return title
}

func TestContentSlugUniqueness(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	first := newContent(t, "Same Title")
	second := newContent(t, "Same Title")

	require.NoError(t, repo.CreateContent(ctx, first))
	err := repo.CreateContent(ctx, second)
	assert.ErrorIs(t, err, simplecms.ErrSlugTaken)
}

func TestSlugExists(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()
	content := newContent(t, "My Blog Post!")
	require.NoError(t, repo.CreateContent(ctx, content))

	taken, err := repo.SlugExists(ctx, "my-blog-post", simplecms.ContentID{})
	require.NoError(t, err)
	assert.True(t, taken)

	free, err := repo.SlugExists(ctx, "other-slug", simplecms.ContentID{})
	require.NoError(t, err)
	assert.False(t, free)

	// The excluded item's own slug is not a collision.
	own, err := repo.SlugExists(ctx, "my-blog-post", content.ID)
	require.NoError(t, err)
	assert.False(t, own)

	other, err := repo.SlugExists(ctx, "my-blog-post", simplecms.NewContentID())
	require.NoError(t, err)
	assert.True(t, other)
}

func TestGetContentReturnsCopy(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()
	content := newContent(t, "My Blog Post!")
	require.NoError(t, repo.CreateContent(ctx, content))

	got, err := repo.GetContent(ctx, content.ID)
	require.NoError(t, err)
	got.Status = simplecms.StatusArchived

	fresh, err := repo.GetContent(ctx, content.ID)
	require.NoError(t, err)
	assert.Equal(t, simplecms.StatusDraft, fresh.Status)
}

func TestListContent(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	typeID := simplecms.NewContentTypeID()
	for i := 0; i < 3; i++ {
		content := newContent(t, fmt.Sprintf("Post Number %d", i))
		content.ContentTypeID = typeID
		if i == 0 {
			require.NoError(t, content.Publish())
		}
		require.NoError(t, repo.CreateContent(ctx, content))
	}
	other := newContent(t, "Unrelated Post")
	require.NoError(t, repo.CreateContent(ctx, other))

	all, err := repo.ListContent(ctx, simplecms.ListContentFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	byType, err := repo.ListContent(ctx, simplecms.ListContentFilter{ContentTypeID: typeID})
	require.NoError(t, err)
	assert.Len(t, byType, 3)

	published, err := repo.ListContent(ctx, simplecms.ListContentFilter{Status: simplecms.StatusPublished})
	require.NoError(t, err)
	assert.Len(t, published, 1)

	both, err := repo.ListContent(ctx, simplecms.ListContentFilter{
		ContentTypeID: typeID,
		Status:        simplecms.StatusDraft,
	})
	require.NoError(t, err)
	assert.Len(t, both, 2)
}

func TestContentTypeCRUD(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()
	contentType := newContentType(t, "blog_post")

	require.NoError(t, repo.CreateContentType(ctx, contentType))

	got, err := repo.GetContentType(ctx, contentType.ID)
	require.NoError(t, err)
	assert.Equal(t, contentType.ID, got.ID)

	byName, err := repo.GetContentTypeByName(ctx, contentType.Name)
	require.NoError(t, err)
	assert.Equal(t, contentType.ID, byName.ID)

	got.Deactivate()
	require.NoError(t, repo.UpdateContentType(ctx, got))

	updated, err := repo.GetContentType(ctx, contentType.ID)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
}

func TestContentTypeNameUniqueness(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	require.NoError(t, repo.CreateContentType(ctx, newContentType(t, "blog_post")))
	err := repo.CreateContentType(ctx, newContentType(t, "blog_post"))
	assert.ErrorIs(t, err, simplecms.ErrContentTypeNameTaken)
}

func TestListContentTypes(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	active := newContentType(t, "blog_post")
	retired := newContentType(t, "landing_page")
	retired.Deactivate()

	require.NoError(t, repo.CreateContentType(ctx, active))
	require.NoError(t, repo.CreateContentType(ctx, retired))

	all, err := repo.ListContentTypes(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 2)
	// Sorted by name.
	assert.Equal(t, "blog_post", all[0].Name.String())
	assert.Equal(t, "landing_page", all[1].Name.String())

	activeOnly, err := repo.ListContentTypes(ctx, true)
	require.NoError(t, err)
	require.Len(t, activeOnly, 1)
	assert.Equal(t, "blog_post", activeOnly[0].Name.String())
}

func TestMediaCRUD(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()
	media := newMedia(t, "photo.jpg")

	require.NoError(t, repo.CreateMedia(ctx, media))

	got, err := repo.GetMedia(ctx, media.ID)
	require.NoError(t, err)
	assert.Equal(t, media.ID, got.ID)

	contentID := simplecms.NewContentID()
	got.AttachToContent(contentID)
	require.NoError(t, repo.UpdateMedia(ctx, got))

	attached, err := repo.ListMediaByContent(ctx, contentID)
	require.NoError(t, err)
	require.Len(t, attached, 1)
	assert.Equal(t, media.ID, attached[0].ID)

	none, err := repo.ListMediaByContent(ctx, simplecms.NewContentID())
	require.NoError(t, err)
	assert.Empty(t, none)

	require.NoError(t, repo.DeleteMedia(ctx, media.ID))
	_, err = repo.GetMedia(ctx, media.ID)
	assert.ErrorIs(t, err, simplecms.ErrMediaNotFound)
}

func TestConcurrentAccess(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			content := newContent(t, fmt.Sprintf("Concurrent Post %d", n))
			if err := repo.CreateContent(ctx, content); err != nil {
				t.Errorf("create %d: %v", n, err)
				return
			}
			if _, err := repo.GetContent(ctx, content.ID); err != nil {
				t.Errorf("get %d: %v", n, err)
			}
		}(i)
	}
	wg.Wait()

	all, err := repo.ListContent(ctx, simplecms.ListContentFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 10)
}
