package media

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	DefaultBaseDir    = "./uploads"
	DefaultStaticBase = "/static/uploads"
)

// DiskStore keeps media on the local filesystem and serves it under a
// public URL base. Object names are <uuid><ext> inside a per-folder
// directory, so DerivedID round-trips to "<folder>/<uuid>".
type DiskStore struct {
	baseDir    string
	staticBase string
}

func NewDiskStore(baseDir, staticBase string) *DiskStore {
	if baseDir == "" {
		baseDir = DefaultBaseDir
	}
	if staticBase == "" {
		staticBase = DefaultStaticBase
	}
	return &DiskStore{baseDir: baseDir, staticBase: staticBase}
}

// BaseDir is the directory to mount as a static file route.
func (s *DiskStore) BaseDir() string { return s.baseDir }

// StaticBase is the URL prefix uploads are served under.
func (s *DiskStore) StaticBase() string { return s.staticBase }

func (s *DiskStore) Upload(ctx context.Context, data []byte, mimeType, folder string) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyFile
	}
	if len(data) > MaxFileSize {
		return "", ErrFileTooLarge
	}

	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	mimeType = strings.Split(mimeType, ";")[0]
	if !AllowedMimeTypes[mimeType] {
		return "", ErrInvalidMimeType
	}

	folder = sanitizeFolder(folder)
	dir := filepath.Join(s.baseDir, folder)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	name := uuid.New().String() + mimeToExt(mimeType)
	if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	return s.staticBase + "/" + folder + "/" + name, nil
}

// Delete removes the object behind a derived id. A missing file is not an
// error; the caller only needs "gone" semantics.
func (s *DiskStore) Delete(ctx context.Context, derivedID string) error {
	if derivedID == "" || strings.Contains(derivedID, "..") {
		return fmt.Errorf("invalid derived id %q", derivedID)
	}

	matches, err := filepath.Glob(filepath.Join(s.baseDir, derivedID+".*"))
	if err != nil {
		return err
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

func sanitizeFolder(folder string) string {
	folder = strings.Trim(folder, "/")
	folder = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}
		return '-'
	}, strings.ToLower(folder))
	if folder == "" {
		return "misc"
	}
	return folder
}

func mimeToExt(mime string) string {
	switch mime {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "video/mp4":
		return ".mp4"
	case "video/webm":
		return ".webm"
	default:
		return ".bin"
	}
}
