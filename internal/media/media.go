// Package media wraps the external media storage behind a small interface.
// An upload hands over a byte payload and gets back a permanent URL;
// ownership of "is this URL still referenced" transfers entirely to
// whichever document field stores it. Nothing garbage-collects orphaned
// uploads except the explicit best-effort deletes on the profile-image
// paths.
package media

import (
	"context"
	"errors"
	"path"
	"strings"
)

var (
	ErrUploadFailed    = errors.New("media upload failed")
	ErrEmptyFile       = errors.New("file is empty")
	ErrFileTooLarge    = errors.New("file exceeds maximum allowed size")
	ErrInvalidMimeType = errors.New("file type is not allowed")
)

// MaxFileSize caps a single upload payload.
const MaxFileSize = 50 * 1024 * 1024 // 50 MB

// AllowedMimeTypes defines which payloads the store accepts.
var AllowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
	"video/mp4":  true,
	"video/webm": true,
}

// Store is the media provider boundary. Upload failures propagate to the
// caller; Delete is best-effort and callers log-and-continue on error so a
// failed cleanup never blocks the primary mutation.
type Store interface {
	Upload(ctx context.Context, data []byte, mimeType, folder string) (string, error)
	Delete(ctx context.Context, derivedID string) error
}

// DerivedID reverse-maps a previously returned URL to the identifier the
// provider deletes by: the trailing path segment without its extension,
// prefixed by its folder segment when one is present. This is a lossy
// naming convention, not a stored field; it only works for URLs this
// store produced.
func DerivedID(url string) string {
	trimmed := strings.SplitN(url, "?", 2)[0]
	name := path.Base(trimmed)
	name = strings.TrimSuffix(name, path.Ext(name))
	if name == "" || name == "." || name == "/" {
		return ""
	}
	dir := path.Base(path.Dir(trimmed))
	if dir == "" || dir == "." || dir == "/" {
		return name
	}
	return dir + "/" + name
}
