// Package memory provides an in-memory simplecms.Repository, used as
// the test fixture and as the zero-dependency default backend.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/simplecms/simple-cms/pkg/simplecms"
)

// Repository implements simplecms.Repository using in-memory storage
type Repository struct {
	mu           sync.RWMutex
	contents     map[simplecms.ContentID]*simplecms.Content
	contentTypes map[simplecms.ContentTypeID]*simplecms.ContentType
	media        map[simplecms.MediaID]*simplecms.Media
	slugIndex    map[string]simplecms.ContentID
	nameIndex    map[string]simplecms.ContentTypeID
}

// New creates a new in-memory repository
func New() *Repository {
	return &Repository{
		contents:     make(map[simplecms.ContentID]*simplecms.Content),
		contentTypes: make(map[simplecms.ContentTypeID]*simplecms.ContentType),
		media:        make(map[simplecms.MediaID]*simplecms.Media),
		slugIndex:    make(map[string]simplecms.ContentID),
		nameIndex:    make(map[string]simplecms.ContentTypeID),
	}
}

// SlugExists implements simplecms.SlugChecker.
func (r *Repository) SlugExists(ctx context.Context, candidate string, excludeID simplecms.ContentID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.slugIndex[candidate]
	if !exists {
		return false, nil
	}
	if !excludeID.IsZero() && id == excludeID {
		return false, nil
	}
	return true, nil
}

// Content operations

func (r *Repository) CreateContent(ctx context.Context, content *simplecms.Content) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if owner, taken := r.slugIndex[content.Slug.String()]; taken && owner != content.ID {
		return simplecms.ErrSlugTaken
	}

	// Store a copy to avoid external modifications.
	contentCopy := *content
	r.contents[content.ID] = &contentCopy
	r.slugIndex[content.Slug.String()] = content.ID

	return nil
}

func (r *Repository) GetContent(ctx context.Context, id simplecms.ContentID) (*simplecms.Content, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	content, exists := r.contents[id]
	if !exists {
		return nil, simplecms.ErrContentNotFound
	}

	contentCopy := *content
	return &contentCopy, nil
}

func (r *Repository) GetContentBySlug(ctx context.Context, contentSlug simplecms.ContentSlug) (*simplecms.Content, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.slugIndex[contentSlug.String()]
	if !exists {
		return nil, simplecms.ErrContentNotFound
	}

	contentCopy := *r.contents[id]
	return &contentCopy, nil
}

func (r *Repository) UpdateContent(ctx context.Context, content *simplecms.Content) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.contents[content.ID]
	if !exists {
		return simplecms.ErrContentNotFound
	}

	if owner, taken := r.slugIndex[content.Slug.String()]; taken && owner != content.ID {
		return simplecms.ErrSlugTaken
	}

	delete(r.slugIndex, existing.Slug.String())
	contentCopy := *content
	r.contents[content.ID] = &contentCopy
	r.slugIndex[content.Slug.String()] = content.ID

	return nil
}

func (r *Repository) DeleteContent(ctx context.Context, id simplecms.ContentID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	content, exists := r.contents[id]
	if !exists {
		return simplecms.ErrContentNotFound
	}

	delete(r.slugIndex, content.Slug.String())
	delete(r.contents, id)

	return nil
}

func (r *Repository) ListContent(ctx context.Context, filter simplecms.ListContentFilter) ([]*simplecms.Content, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*simplecms.Content
	for _, content := range r.contents {
		if !filter.ContentTypeID.IsZero() && content.ContentTypeID != filter.ContentTypeID {
			continue
		}
		if filter.Status != "" && content.Status != filter.Status {
			continue
		}
		contentCopy := *content
		result = append(result, &contentCopy)
	}

	// Sort by created_at descending
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

// Content type operations

func (r *Repository) CreateContentType(ctx context.Context, contentType *simplecms.ContentType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if owner, taken := r.nameIndex[contentType.Name.String()]; taken && owner != contentType.ID {
		return simplecms.ErrContentTypeNameTaken
	}

	typeCopy := *contentType
	r.contentTypes[contentType.ID] = &typeCopy
	r.nameIndex[contentType.Name.String()] = contentType.ID

	return nil
}

func (r *Repository) GetContentType(ctx context.Context, id simplecms.ContentTypeID) (*simplecms.ContentType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	contentType, exists := r.contentTypes[id]
	if !exists {
		return nil, simplecms.ErrContentTypeNotFound
	}

	typeCopy := *contentType
	return &typeCopy, nil
}

func (r *Repository) GetContentTypeByName(ctx context.Context, name simplecms.ContentTypeName) (*simplecms.ContentType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.nameIndex[name.String()]
	if !exists {
		return nil, simplecms.ErrContentTypeNotFound
	}

	typeCopy := *r.contentTypes[id]
	return &typeCopy, nil
}

func (r *Repository) UpdateContentType(ctx context.Context, contentType *simplecms.ContentType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.contentTypes[contentType.ID]; !exists {
		return simplecms.ErrContentTypeNotFound
	}

	typeCopy := *contentType
	r.contentTypes[contentType.ID] = &typeCopy
	r.nameIndex[contentType.Name.String()] = contentType.ID

	return nil
}

func (r *Repository) ListContentTypes(ctx context.Context, activeOnly bool) ([]*simplecms.ContentType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*simplecms.ContentType
	for _, contentType := range r.contentTypes {
		if activeOnly && !contentType.IsActive {
			continue
		}
		typeCopy := *contentType
		result = append(result, &typeCopy)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name.String() < result[j].Name.String()
	})

	return result, nil
}

// Media operations

func (r *Repository) CreateMedia(ctx context.Context, media *simplecms.Media) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	mediaCopy := *media
	r.media[media.ID] = &mediaCopy

	return nil
}

func (r *Repository) GetMedia(ctx context.Context, id simplecms.MediaID) (*simplecms.Media, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	media, exists := r.media[id]
	if !exists {
		return nil, simplecms.ErrMediaNotFound
	}

	mediaCopy := *media
	return &mediaCopy, nil
}

func (r *Repository) ListMediaByContent(ctx context.Context, contentID simplecms.ContentID) ([]*simplecms.Media, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*simplecms.Media
	for _, media := range r.media {
		if media.ContentID == nil || *media.ContentID != contentID {
			continue
		}
		mediaCopy := *media
		result = append(result, &mediaCopy)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

func (r *Repository) UpdateMedia(ctx context.Context, media *simplecms.Media) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.media[media.ID]; !exists {
		return simplecms.ErrMediaNotFound
	}

	mediaCopy := *media
	r.media[media.ID] = &mediaCopy

	return nil
}

func (r *Repository) DeleteMedia(ctx context.Context, id simplecms.MediaID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.media[id]; !exists {
		return simplecms.ErrMediaNotFound
	}

	delete(r.media, id)

	return nil
}
