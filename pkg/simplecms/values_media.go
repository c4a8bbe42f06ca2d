package simplecms

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/simplecms/simple-cms/pkg/utils"
)

// Media value object limits.
const (
	MaxFilenameLength  = 255
	MaxObjectKeyLength = 1024
	MaxURLLength       = 2048
	MaxMediaSizeBytes  = 100 * 1024 * 1024
)

// imageExtensions is the fixed set of filename extensions treated as images.
var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
	".svg":  {},
}

// MediaFilename is the validated stored filename of a media item.
type MediaFilename struct {
	value string
}

// NewMediaFilename validates and constructs a MediaFilename. The value
// must be 1-255 characters and free of path separators and other
// path-unsafe characters.
func NewMediaFilename(s string) (MediaFilename, error) {
	if s == "" {
		return MediaFilename{}, newValidationError("filename", "must not be empty")
	}
	if len(s) > MaxFilenameLength {
		return MediaFilename{}, newValidationError("filename", "must be at most %d characters, got %d", MaxFilenameLength, len(s))
	}
	if strings.ContainsAny(s, `/\:*?"<>|`) || strings.ContainsFunc(s, func(r rune) bool { return r < 0x20 }) {
		return MediaFilename{}, newValidationError("filename", "contains path-unsafe characters: %q", s)
	}
	return MediaFilename{value: s}, nil
}

// NewMediaFilenameForUpload synthesizes a stored filename from an
// arbitrary original name: the name is sanitized and prefixed with the
// upload timestamp and a short content id fragment so that repeated
// uploads of the same file never collide.
func NewMediaFilenameForUpload(originalName string, contentID ContentID, now time.Time) (MediaFilename, error) {
	sanitized := utils.SanitizeFilename(originalName)
	if sanitized == "" {
		return MediaFilename{}, newValidationError("filename", "original name %q yields no usable characters", originalName)
	}

	idFragment := strings.SplitN(contentID.String(), "-", 2)[0]
	name := fmt.Sprintf("%d-%s-%s", now.Unix(), idFragment, sanitized)
	if len(name) > MaxFilenameLength {
		keep := MaxFilenameLength - (len(name) - len(sanitized))
		ext := path.Ext(sanitized)
		base := sanitized[:len(sanitized)-len(ext)]
		if keep <= len(ext) {
			return MediaFilename{}, newValidationError("filename", "original name %q is too long to store", originalName)
		}
		name = fmt.Sprintf("%d-%s-%s%s", now.Unix(), idFragment, base[:keep-len(ext)], ext)
	}
	return NewMediaFilename(name)
}

func (f MediaFilename) String() string { return f.value }

// Equals reports value equality with another filename.
func (f MediaFilename) Equals(other MediaFilename) bool { return f.value == other.value }

// Extension returns the lowercase filename extension including the dot,
// or "" when there is none.
func (f MediaFilename) Extension() string {
	return strings.ToLower(path.Ext(f.value))
}

// BaseName returns the filename without its extension.
func (f MediaFilename) BaseName() string {
	return strings.TrimSuffix(f.value, path.Ext(f.value))
}

// IsImage reports whether the filename extension belongs to the fixed
// image extension set.
func (f MediaFilename) IsImage() bool {
	_, ok := imageExtensions[f.Extension()]
	return ok
}

// objectKeyPattern is the storage key charset shared by R2 and S3 keys.
var objectKeyPattern = regexp.MustCompile(`^[a-zA-Z0-9._/-]+$`)

// MediaObjectKey is the validated key of a media object in the storage
// backend (Cloudflare R2 or any S3-compatible store).
type MediaObjectKey struct {
	value string
}

// NewMediaObjectKey validates and constructs a MediaObjectKey
// (1-1024 characters from [a-zA-Z0-9._/-]).
func NewMediaObjectKey(s string) (MediaObjectKey, error) {
	if s == "" {
		return MediaObjectKey{}, newValidationError("object_key", "must not be empty")
	}
	if len(s) > MaxObjectKeyLength {
		return MediaObjectKey{}, newValidationError("object_key", "must be at most %d characters, got %d", MaxObjectKeyLength, len(s))
	}
	if !objectKeyPattern.MatchString(s) {
		return MediaObjectKey{}, newValidationError("object_key", "contains characters outside [a-zA-Z0-9._/-]: %q", s)
	}
	return MediaObjectKey{value: s}, nil
}

func (k MediaObjectKey) String() string { return k.value }

// Equals reports value equality with another key.
func (k MediaObjectKey) Equals(other MediaObjectKey) bool { return k.value == other.value }

// Dir returns the directory portion of the key, or "" for a bare filename.
func (k MediaObjectKey) Dir() string {
	dir := path.Dir(k.value)
	if dir == "." {
		return ""
	}
	return dir
}

// Base returns the filename portion of the key.
func (k MediaObjectKey) Base() string {
	return path.Base(k.value)
}

// WithPrefix returns a new key with a directory prefix prepended.
func (k MediaObjectKey) WithPrefix(prefix string) (MediaObjectKey, error) {
	return NewMediaObjectKey(strings.TrimSuffix(prefix, "/") + "/" + k.value)
}

// WithSuffix returns a new key with "-<token>" inserted before the
// filename extension.
func (k MediaObjectKey) WithSuffix(token string) (MediaObjectKey, error) {
	ext := path.Ext(k.value)
	base := strings.TrimSuffix(k.value, ext)
	return NewMediaObjectKey(fmt.Sprintf("%s-%s%s", base, token, ext))
}

// MediaSize is the validated byte size of a media object
// (1 byte to 100 MiB inclusive).
type MediaSize struct {
	bytes int64
}

// NewMediaSize validates and constructs a MediaSize.
func NewMediaSize(bytes int64) (MediaSize, error) {
	if bytes < 1 {
		return MediaSize{}, newValidationError("size", "must be at least 1 byte, got %d", bytes)
	}
	if bytes > MaxMediaSizeBytes {
		return MediaSize{}, newValidationError("size", "must be at most %d bytes, got %d", MaxMediaSizeBytes, bytes)
	}
	return MediaSize{bytes: bytes}, nil
}

// Bytes returns the size in bytes.
func (s MediaSize) Bytes() int64 { return s.bytes }

// Kilobytes returns the size in binary kilobytes.
func (s MediaSize) Kilobytes() float64 { return float64(s.bytes) / 1024 }

// Megabytes returns the size in binary megabytes.
func (s MediaSize) Megabytes() float64 { return float64(s.bytes) / (1024 * 1024) }

// Equals reports value equality with another size.
func (s MediaSize) Equals(other MediaSize) bool { return s.bytes == other.bytes }

// HumanReadable formats the size for display, e.g. "1.5 MB" or "340 KB".
func (s MediaSize) HumanReadable() string {
	switch {
	case s.bytes >= 1024*1024:
		return fmt.Sprintf("%.1f MB", s.Megabytes())
	case s.bytes >= 1024:
		return fmt.Sprintf("%.1f KB", s.Kilobytes())
	default:
		return fmt.Sprintf("%d B", s.bytes)
	}
}

// MediaURL is the validated absolute http(s) URL a media object is
// served from.
type MediaURL struct {
	value  string
	parsed *url.URL
}

// NewMediaURL validates and constructs a MediaURL (absolute http or
// https, at most 2048 characters).
func NewMediaURL(s string) (MediaURL, error) {
	if s == "" {
		return MediaURL{}, newValidationError("url", "must not be empty")
	}
	if len(s) > MaxURLLength {
		return MediaURL{}, newValidationError("url", "must be at most %d characters, got %d", MaxURLLength, len(s))
	}
	parsed, err := url.Parse(s)
	if err != nil {
		return MediaURL{}, newValidationError("url", "invalid URL %q: %v", s, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return MediaURL{}, newValidationError("url", "scheme must be http or https, got %q", parsed.Scheme)
	}
	if parsed.Host == "" {
		return MediaURL{}, newValidationError("url", "must be absolute, got %q", s)
	}
	return MediaURL{value: s, parsed: parsed}, nil
}

func (u MediaURL) String() string { return u.value }

// Equals reports value equality with another URL.
func (u MediaURL) Equals(other MediaURL) bool { return u.value == other.value }

// Host returns the URL host, without port.
func (u MediaURL) Host() string { return u.parsed.Hostname() }

// Path returns the URL path component.
func (u MediaURL) Path() string { return u.parsed.Path }

// Filename returns the last path segment, or "" when the path is empty.
func (u MediaURL) Filename() string {
	if u.parsed.Path == "" || u.parsed.Path == "/" {
		return ""
	}
	return path.Base(u.parsed.Path)
}

// IsR2 reports whether the URL points at Cloudflare R2
// (either the storage endpoint or a public r2.dev bucket).
func (u MediaURL) IsR2() bool {
	host := u.Host()
	return strings.HasSuffix(host, ".r2.cloudflarestorage.com") || strings.HasSuffix(host, ".r2.dev")
}

// IsS3 reports whether the URL points at an AWS S3 endpoint.
func (u MediaURL) IsS3() bool {
	return strings.HasSuffix(u.Host(), ".amazonaws.com")
}
