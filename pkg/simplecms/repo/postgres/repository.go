// Package postgres provides a pgx-backed simplecms.Repository.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/simplecms/simple-cms/pkg/simplecms"
)

// DBTX is an interface that allows us to use either a database connection or a transaction
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Repository implements simplecms.Repository using PostgreSQL
type Repository struct {
	db DBTX
}

// New creates a new PostgreSQL repository
func New(db DBTX) *Repository {
	return &Repository{db: db}
}

// NewWithPool creates a new PostgreSQL repository with connection pool
func NewWithPool(pool *pgxpool.Pool) *Repository {
	return &Repository{db: pool}
}

// handlePostgresError maps driver errors onto domain sentinels where a
// constraint carries domain meaning, and annotates the rest.
func (r *Repository) handlePostgresError(operation string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			if strings.Contains(pgErr.ConstraintName, "slug") {
				return simplecms.ErrSlugTaken
			}
			if strings.Contains(pgErr.ConstraintName, "name") {
				return simplecms.ErrContentTypeNameTaken
			}
			return fmt.Errorf("%w: duplicate entry", simplecms.ErrConflict)
		case "23503": // foreign_key_violation
			return fmt.Errorf("referenced record not found: %s", pgErr.ConstraintName)
		case "23502": // not_null_violation
			return fmt.Errorf("required field %s is missing", pgErr.ColumnName)
		case "42P01": // undefined_table
			return fmt.Errorf("table does not exist - database migration required")
		default:
			return fmt.Errorf("database error in %s: %s (code: %s)", operation, pgErr.Message, pgErr.Code)
		}
	}

	return fmt.Errorf("database error in %s: %w", operation, err)
}

// SlugExists implements simplecms.SlugChecker.
func (r *Repository) SlugExists(ctx context.Context, candidate string, excludeID simplecms.ContentID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM content WHERE slug = $1 AND ($2 = '' OR id::text <> $2))`

	exclude := ""
	if !excludeID.IsZero() {
		exclude = excludeID.String()
	}

	var exists bool
	if err := r.db.QueryRow(ctx, query, candidate, exclude).Scan(&exists); err != nil {
		return false, r.handlePostgresError("slug exists", err)
	}
	return exists, nil
}

// Content operations

// contentRow is the scan target for content queries; entities are
// rebuilt through the value object constructors so that rows which fail
// domain validation surface an error instead of a corrupt aggregate.
type contentRow struct {
	ID            string
	Title         string
	Slug          string
	Body          string
	Status        string
	ContentTypeID string
	PublishedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (row contentRow) toContent() (*simplecms.Content, error) {
	id, err := simplecms.ParseContentID(row.ID)
	if err != nil {
		return nil, err
	}
	typeID, err := simplecms.ParseContentTypeID(row.ContentTypeID)
	if err != nil {
		return nil, err
	}
	title, err := simplecms.NewContentTitle(row.Title)
	if err != nil {
		return nil, err
	}
	contentSlug, err := simplecms.NewContentSlug(row.Slug)
	if err != nil {
		return nil, err
	}
	body, err := simplecms.NewContentBody(row.Body)
	if err != nil {
		return nil, err
	}
	status, err := simplecms.ParseContentStatus(row.Status)
	if err != nil {
		return nil, err
	}

	return &simplecms.Content{
		ID:            id,
		Title:         title,
		Slug:          contentSlug,
		Body:          body,
		Status:        status,
		ContentTypeID: typeID,
		PublishedAt:   row.PublishedAt,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}, nil
}

const contentColumns = `id::text, title, slug, body, status, content_type_id::text, published_at, created_at, updated_at`

func scanContent(row pgx.Row) (*simplecms.Content, error) {
	var cr contentRow
	if err := row.Scan(&cr.ID, &cr.Title, &cr.Slug, &cr.Body, &cr.Status,
		&cr.ContentTypeID, &cr.PublishedAt, &cr.CreatedAt, &cr.UpdatedAt); err != nil {
		return nil, err
	}
	return cr.toContent()
}

func (r *Repository) CreateContent(ctx context.Context, content *simplecms.Content) error {
	query := `
		INSERT INTO content (
			id, title, slug, body, status, content_type_id,
			published_at, created_at, updated_at
		) VALUES ($1::uuid, $2, $3, $4, $5, $6::uuid, $7, $8, $9)`

	_, err := r.db.Exec(ctx, query,
		content.ID.String(), content.Title.String(), content.Slug.String(),
		content.Body.String(), string(content.Status), content.ContentTypeID.String(),
		content.PublishedAt, content.CreatedAt, content.UpdatedAt)

	if err != nil {
		return r.handlePostgresError("create content", err)
	}

	return nil
}

func (r *Repository) GetContent(ctx context.Context, id simplecms.ContentID) (*simplecms.Content, error) {
	query := `SELECT ` + contentColumns + ` FROM content WHERE id = $1::uuid`

	content, err := scanContent(r.db.QueryRow(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, simplecms.ErrContentNotFound
		}
		return nil, err
	}

	return content, nil
}

func (r *Repository) GetContentBySlug(ctx context.Context, contentSlug simplecms.ContentSlug) (*simplecms.Content, error) {
	query := `SELECT ` + contentColumns + ` FROM content WHERE slug = $1`

	content, err := scanContent(r.db.QueryRow(ctx, query, contentSlug.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, simplecms.ErrContentNotFound
		}
		return nil, err
	}

	return content, nil
}

func (r *Repository) UpdateContent(ctx context.Context, content *simplecms.Content) error {
	query := `
		UPDATE content SET
			title = $2, slug = $3, body = $4, status = $5,
			content_type_id = $6::uuid, published_at = $7, updated_at = $8
		WHERE id = $1::uuid`

	tag, err := r.db.Exec(ctx, query,
		content.ID.String(), content.Title.String(), content.Slug.String(),
		content.Body.String(), string(content.Status), content.ContentTypeID.String(),
		content.PublishedAt, content.UpdatedAt)

	if err != nil {
		return r.handlePostgresError("update content", err)
	}
	if tag.RowsAffected() == 0 {
		return simplecms.ErrContentNotFound
	}

	return nil
}

func (r *Repository) DeleteContent(ctx context.Context, id simplecms.ContentID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM content WHERE id = $1::uuid`, id.String())
	if err != nil {
		return r.handlePostgresError("delete content", err)
	}
	if tag.RowsAffected() == 0 {
		return simplecms.ErrContentNotFound
	}

	return nil
}

func (r *Repository) ListContent(ctx context.Context, filter simplecms.ListContentFilter) ([]*simplecms.Content, error) {
	query := `SELECT ` + contentColumns + ` FROM content
		WHERE ($1 = '' OR content_type_id::text = $1)
		  AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC`

	typeFilter := ""
	if !filter.ContentTypeID.IsZero() {
		typeFilter = filter.ContentTypeID.String()
	}

	rows, err := r.db.Query(ctx, query, typeFilter, string(filter.Status))
	if err != nil {
		return nil, r.handlePostgresError("list content", err)
	}
	defer rows.Close()

	var result []*simplecms.Content
	for rows.Next() {
		content, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, content)
	}

	return result, rows.Err()
}

// Content type operations

type contentTypeRow struct {
	ID          string
	Name        string
	DisplayName string
	Description *string
	Schema      []byte
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (row contentTypeRow) toContentType() (*simplecms.ContentType, error) {
	id, err := simplecms.ParseContentTypeID(row.ID)
	if err != nil {
		return nil, err
	}
	name, err := simplecms.NewContentTypeName(row.Name)
	if err != nil {
		return nil, err
	}
	displayName, err := simplecms.NewContentTypeDisplayName(row.DisplayName)
	if err != nil {
		return nil, err
	}

	var fields map[string]simplecms.SchemaField
	if err := json.Unmarshal(row.Schema, &fields); err != nil {
		return nil, fmt.Errorf("decode content type schema: %w", err)
	}
	schema, err := simplecms.NewContentTypeSchema(fields)
	if err != nil {
		return nil, err
	}

	return &simplecms.ContentType{
		ID:          id,
		Name:        name,
		DisplayName: displayName,
		Description: row.Description,
		Schema:      schema,
		IsActive:    row.IsActive,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}

const contentTypeColumns = `id::text, name, display_name, description, schema, is_active, created_at, updated_at`

func scanContentType(row pgx.Row) (*simplecms.ContentType, error) {
	var tr contentTypeRow
	if err := row.Scan(&tr.ID, &tr.Name, &tr.DisplayName, &tr.Description,
		&tr.Schema, &tr.IsActive, &tr.CreatedAt, &tr.UpdatedAt); err != nil {
		return nil, err
	}
	return tr.toContentType()
}

func (r *Repository) CreateContentType(ctx context.Context, contentType *simplecms.ContentType) error {
	schemaJSON, err := json.Marshal(contentType.Schema)
	if err != nil {
		return fmt.Errorf("encode content type schema: %w", err)
	}

	query := `
		INSERT INTO content_type (
			id, name, display_name, description, schema, is_active,
			created_at, updated_at
		) VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8)`

	_, err = r.db.Exec(ctx, query,
		contentType.ID.String(), contentType.Name.String(), contentType.DisplayName.String(),
		contentType.Description, schemaJSON, contentType.IsActive,
		contentType.CreatedAt, contentType.UpdatedAt)

	if err != nil {
		return r.handlePostgresError("create content type", err)
	}

	return nil
}

func (r *Repository) GetContentType(ctx context.Context, id simplecms.ContentTypeID) (*simplecms.ContentType, error) {
	query := `SELECT ` + contentTypeColumns + ` FROM content_type WHERE id = $1::uuid`

	contentType, err := scanContentType(r.db.QueryRow(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, simplecms.ErrContentTypeNotFound
		}
		return nil, err
	}

	return contentType, nil
}

func (r *Repository) GetContentTypeByName(ctx context.Context, name simplecms.ContentTypeName) (*simplecms.ContentType, error) {
	query := `SELECT ` + contentTypeColumns + ` FROM content_type WHERE name = $1`

	contentType, err := scanContentType(r.db.QueryRow(ctx, query, name.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, simplecms.ErrContentTypeNotFound
		}
		return nil, err
	}

	return contentType, nil
}

func (r *Repository) UpdateContentType(ctx context.Context, contentType *simplecms.ContentType) error {
	schemaJSON, err := json.Marshal(contentType.Schema)
	if err != nil {
		return fmt.Errorf("encode content type schema: %w", err)
	}

	query := `
		UPDATE content_type SET
			display_name = $2, description = $3, schema = $4,
			is_active = $5, updated_at = $6
		WHERE id = $1::uuid`

	tag, err := r.db.Exec(ctx, query,
		contentType.ID.String(), contentType.DisplayName.String(), contentType.Description,
		schemaJSON, contentType.IsActive, contentType.UpdatedAt)

	if err != nil {
		return r.handlePostgresError("update content type", err)
	}
	if tag.RowsAffected() == 0 {
		return simplecms.ErrContentTypeNotFound
	}

	return nil
}

func (r *Repository) ListContentTypes(ctx context.Context, activeOnly bool) ([]*simplecms.ContentType, error) {
	query := `SELECT ` + contentTypeColumns + ` FROM content_type
		WHERE ($1 = false OR is_active)
		ORDER BY name`

	rows, err := r.db.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, r.handlePostgresError("list content types", err)
	}
	defer rows.Close()

	var result []*simplecms.ContentType
	for rows.Next() {
		contentType, err := scanContentType(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, contentType)
	}

	return result, rows.Err()
}

// Media operations

type mediaRow struct {
	ID        string
	Filename  string
	ObjectKey string
	URL       string
	SizeBytes int64
	MimeType  string
	Alt       *string
	ContentID *string
	CreatedAt time.Time
}

func (row mediaRow) toMedia() (*simplecms.Media, error) {
	id, err := simplecms.ParseMediaID(row.ID)
	if err != nil {
		return nil, err
	}
	filename, err := simplecms.NewMediaFilename(row.Filename)
	if err != nil {
		return nil, err
	}
	objectKey, err := simplecms.NewMediaObjectKey(row.ObjectKey)
	if err != nil {
		return nil, err
	}
	mediaURL, err := simplecms.NewMediaURL(row.URL)
	if err != nil {
		return nil, err
	}
	size, err := simplecms.NewMediaSize(row.SizeBytes)
	if err != nil {
		return nil, err
	}

	media := &simplecms.Media{
		ID:        id,
		Filename:  filename,
		ObjectKey: objectKey,
		URL:       mediaURL,
		Size:      size,
		MimeType:  row.MimeType,
		Alt:       row.Alt,
		CreatedAt: row.CreatedAt,
	}

	if row.ContentID != nil {
		contentID, err := simplecms.ParseContentID(*row.ContentID)
		if err != nil {
			return nil, err
		}
		media.ContentID = &contentID
	}

	return media, nil
}

const mediaColumns = `id::text, filename, object_key, url, size_bytes, mime_type, alt, content_id::text, created_at`

func scanMedia(row pgx.Row) (*simplecms.Media, error) {
	var mr mediaRow
	if err := row.Scan(&mr.ID, &mr.Filename, &mr.ObjectKey, &mr.URL,
		&mr.SizeBytes, &mr.MimeType, &mr.Alt, &mr.ContentID, &mr.CreatedAt); err != nil {
		return nil, err
	}
	return mr.toMedia()
}

func (r *Repository) CreateMedia(ctx context.Context, media *simplecms.Media) error {
	query := `
		INSERT INTO media (
			id, filename, object_key, url, size_bytes, mime_type,
			alt, content_id, created_at
		) VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8::uuid, $9)`

	var contentID *string
	if media.ContentID != nil {
		s := media.ContentID.String()
		contentID = &s
	}

	_, err := r.db.Exec(ctx, query,
		media.ID.String(), media.Filename.String(), media.ObjectKey.String(),
		media.URL.String(), media.Size.Bytes(), media.MimeType,
		media.Alt, contentID, media.CreatedAt)

	if err != nil {
		return r.handlePostgresError("create media", err)
	}

	return nil
}

func (r *Repository) GetMedia(ctx context.Context, id simplecms.MediaID) (*simplecms.Media, error) {
	query := `SELECT ` + mediaColumns + ` FROM media WHERE id = $1::uuid`

	media, err := scanMedia(r.db.QueryRow(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, simplecms.ErrMediaNotFound
		}
		return nil, err
	}

	return media, nil
}

func (r *Repository) ListMediaByContent(ctx context.Context, contentID simplecms.ContentID) ([]*simplecms.Media, error) {
	query := `SELECT ` + mediaColumns + ` FROM media WHERE content_id = $1::uuid ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, contentID.String())
	if err != nil {
		return nil, r.handlePostgresError("list media", err)
	}
	defer rows.Close()

	var result []*simplecms.Media
	for rows.Next() {
		media, err := scanMedia(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, media)
	}

	return result, rows.Err()
}

func (r *Repository) UpdateMedia(ctx context.Context, media *simplecms.Media) error {
	query := `
		UPDATE media SET
			filename = $2, object_key = $3, url = $4, size_bytes = $5,
			mime_type = $6, alt = $7, content_id = $8::uuid
		WHERE id = $1::uuid`

	var contentID *string
	if media.ContentID != nil {
		s := media.ContentID.String()
		contentID = &s
	}

	tag, err := r.db.Exec(ctx, query,
		media.ID.String(), media.Filename.String(), media.ObjectKey.String(),
		media.URL.String(), media.Size.Bytes(), media.MimeType,
		media.Alt, contentID)

	if err != nil {
		return r.handlePostgresError("update media", err)
	}
	if tag.RowsAffected() == 0 {
		return simplecms.ErrMediaNotFound
	}

	return nil
}

func (r *Repository) DeleteMedia(ctx context.Context, id simplecms.MediaID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM media WHERE id = $1::uuid`, id.String())
	if err != nil {
		return r.handlePostgresError("delete media", err)
	}
	if tag.RowsAffected() == 0 {
		return simplecms.ErrMediaNotFound
	}

	return nil
}
