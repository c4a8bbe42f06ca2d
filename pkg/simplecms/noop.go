package simplecms

import (
	"context"
)

// NoopEventSink is a no-operation implementation of EventSink.
// Useful when no event handling is needed, and for testing.
type NoopEventSink struct{}

// NewNoopEventSink creates a new no-operation event sink
func NewNoopEventSink() EventSink {
	return &NoopEventSink{}
}

func (n *NoopEventSink) ContentCreated(ctx context.Context, content *Content) error     { return nil }
func (n *NoopEventSink) ContentUpdated(ctx context.Context, content *Content) error     { return nil }
func (n *NoopEventSink) ContentPublished(ctx context.Context, content *Content) error   { return nil }
func (n *NoopEventSink) ContentUnpublished(ctx context.Context, content *Content) error { return nil }
func (n *NoopEventSink) ContentArchived(ctx context.Context, content *Content) error    { return nil }
func (n *NoopEventSink) ContentDeleted(ctx context.Context, id ContentID) error         { return nil }
func (n *NoopEventSink) MediaCreated(ctx context.Context, media *Media) error           { return nil }
func (n *NoopEventSink) MediaDeleted(ctx context.Context, id MediaID) error             { return nil }
