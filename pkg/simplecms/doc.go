// Package simplecms provides the domain layer of a content-management
// system: validated value objects (titles, slugs, bodies, media
// attributes), the Content, ContentType and Media aggregates, and the
// business rules spanning them (unique slug generation, publication
// validation, media and SEO checks).
//
// Construction goes through a single Service interface assembled with
// functional options; persistence is injected through the Repository
// interface, with reference implementations (memory, Postgres) under
// subpackages. Slug uniqueness probes are delegated to a SlugChecker
// capability so the bounded collision-resolution loop stays free of
// persistence concerns.
//
// # Value objects
//
// Value objects validate on construction and are immutable afterwards.
// Failed constructions return a *ValidationError unwrapping to
// ErrValidation; callers distinguish error kinds with errors.Is
// (ErrValidation, ErrConflict, ErrSlugExhausted, ErrInvalidTransition).
package simplecms
