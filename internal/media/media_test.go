package media

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngHeader is enough for http.DetectContentType to say image/png.
var pngHeader = append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)

func TestDerivedID(t *testing.T) {
	assert.Equal(t, "hero/abc-123", DerivedID("/static/uploads/hero/abc-123.jpg"))
	assert.Equal(t, "works/xyz", DerivedID("https://cdn.example.com/works/xyz.mp4?v=2"))
	assert.Equal(t, "plain", DerivedID("plain.png"))
	assert.Equal(t, "", DerivedID(""))
}

func TestDiskStoreUploadAndDelete(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskStore(dir, "/static/uploads")

	url, err := store.Upload(context.Background(), pngHeader, "image/png", "hero")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/static/uploads/hero/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	// the file exists on disk under the folder
	matches, err := filepath.Glob(filepath.Join(dir, "hero", "*.png"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	require.NoError(t, store.Delete(context.Background(), DerivedID(url)))
	_, err = os.Stat(matches[0])
	assert.True(t, os.IsNotExist(err))

	// deleting again is fine, best-effort semantics
	assert.NoError(t, store.Delete(context.Background(), DerivedID(url)))
}

func TestDiskStoreRejectsBadPayloads(t *testing.T) {
	store := NewDiskStore(t.TempDir(), "")

	_, err := store.Upload(context.Background(), nil, "image/png", "hero")
	assert.ErrorIs(t, err, ErrEmptyFile)

	_, err = store.Upload(context.Background(), []byte("plain text payload"), "text/plain", "hero")
	assert.ErrorIs(t, err, ErrInvalidMimeType)
}

func TestDiskStoreDeleteRejectsTraversal(t *testing.T) {
	store := NewDiskStore(t.TempDir(), "")
	assert.Error(t, store.Delete(context.Background(), "../etc/passwd"))
	assert.Error(t, store.Delete(context.Background(), ""))
}

func TestSanitizeFolder(t *testing.T) {
	assert.Equal(t, "hero", sanitizeFolder("Hero"))
	assert.Equal(t, "sample-works", sanitizeFolder("sample works"))
	assert.Equal(t, "misc", sanitizeFolder(""))
}
