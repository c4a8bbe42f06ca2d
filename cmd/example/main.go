// Command example demonstrates library usage: building a service from
// environment configuration, defining a content type, and walking a
// content item through its publishing lifecycle with attached media.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/simplecms/simple-cms/pkg/simplecms"
	"github.com/simplecms/simple-cms/pkg/simplecms/config"
)

func main() {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}

	svc, cleanup, err := cfg.BuildService(ctx)
	if err != nil {
		logger.Error("failed to build service", "err", err)
		os.Exit(1)
	}
	defer cleanup()

	// Define a content type for blog posts.
	blogType, err := svc.CreateContentType(ctx, simplecms.CreateContentTypeRequest{
		Name:        "blog_post",
		DisplayName: "Blog Post",
		Schema: map[string]simplecms.SchemaField{
			"body":     {Type: simplecms.FieldTypeRichText, Required: true, MaxLength: 50000},
			"hero":     {Type: simplecms.FieldTypeMedia},
			"featured": {Type: simplecms.FieldTypeBoolean},
		},
	})
	if err != nil {
		logger.Error("failed to create content type", "err", err)
		os.Exit(1)
	}
	logger.Info("content type created", "id", blogType.ID, "name", blogType.Name)

	// Create a draft; the slug is derived from the title.
	content, err := svc.CreateContent(ctx, simplecms.CreateContentRequest{
		Title:         "Hello, World! An Introduction",
		Body:          "# Welcome\n\nThis is the **first** post on our new site.",
		ContentTypeID: blogType.ID,
	})
	if err != nil {
		logger.Error("failed to create content", "err", err)
		os.Exit(1)
	}
	logger.Info("content created",
		"id", content.ID,
		"slug", content.Slug,
		"status", content.Status,
		"excerpt", content.GenerateExcerpt(80),
	)

	// A second item with the same title gets a suffixed slug.
	duplicate, err := svc.CreateContent(ctx, simplecms.CreateContentRequest{
		Title:         "Hello, World! An Introduction",
		Body:          "A different body for a post with a colliding title.",
		ContentTypeID: blogType.ID,
	})
	if err != nil {
		logger.Error("failed to create duplicate-title content", "err", err)
		os.Exit(1)
	}
	logger.Info("colliding title resolved", "slug", duplicate.Slug)

	// Publish the first item.
	published, err := svc.PublishContent(ctx, content.ID)
	if err != nil {
		logger.Error("failed to publish content", "err", err)
		os.Exit(1)
	}
	logger.Info("content published", "slug", published.Slug, "published_at", published.PublishedAt)

	// Register a media object and attach it.
	media, err := svc.CreateMedia(ctx, simplecms.CreateMediaRequest{
		Filename:  "hero-image.jpg",
		ObjectKey: "uploads/2026/hero-image.jpg",
		URL:       "https://media.example.r2.dev/uploads/2026/hero-image.jpg",
		SizeBytes: 248_000,
		MimeType:  "image/jpeg",
	})
	if err != nil {
		logger.Error("failed to create media", "err", err)
		os.Exit(1)
	}

	attached, err := svc.AttachMedia(ctx, media.ID, published.ID)
	if err != nil {
		logger.Error("failed to attach media", "err", err)
		os.Exit(1)
	}
	logger.Info("media attached",
		"media", attached.ID,
		"content", published.ID,
		"image", attached.IsImage(),
		"size", attached.Size.HumanReadable(),
	)
}
