package media

import (
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// File is an upload payload decoupled from the HTTP layer so services can
// be tested without multipart plumbing.
type File struct {
	Data     []byte
	MimeType string
}

// FromMultipart reads a multipart file into memory and sniffs its MIME
// type from the content (the client-supplied header is not trusted).
func FromMultipart(fh *multipart.FileHeader) (File, error) {
	if fh.Size == 0 {
		return File{}, ErrEmptyFile
	}
	if fh.Size > MaxFileSize {
		return File{}, ErrFileTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return File{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return File{}, err
	}

	mimeType := strings.Split(http.DetectContentType(data), ";")[0]
	return File{Data: data, MimeType: mimeType}, nil
}

// FromMultipartAll converts every file header, failing fast on the first
// bad one so nothing is uploaded for a partially invalid request.
func FromMultipartAll(fhs []*multipart.FileHeader) ([]File, error) {
	files := make([]File, 0, len(fhs))
	for _, fh := range fhs {
		f, err := FromMultipart(fh)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}
