package common

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"time"
)

// MediaFile describes a stored blob.
type MediaFile struct {
	ID         string        `json:"id"`
	URL        string        `json:"url"`
	Filename   string        `json:"filename"`
	Size       int64         `json:"size"`
	FileType   MediaFileType `json:"file_type"`
	UploadedBy string        `json:"uploaded_by"`
	UploadedAt time.Time     `json:"uploaded_at"`
}

// FileUpload is a file taken from a multipart request.
type FileUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
	closer      io.Closer
}

func (f *FileUpload) Close() error {
	if f == nil || f.closer == nil {
		return nil
	}
	return f.closer.Close()
}

// FormFile returns the named file part, or nil when the field is absent.
func FormFile(r *http.Request, field string) (*FileUpload, error) {
	file, header, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, InvalidArgument("invalid " + field + " upload")
	}
	return newFileUpload(file, header), nil
}

func newFileUpload(file multipart.File, header *multipart.FileHeader) *FileUpload {
	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = ContentTypeFor(header.Filename)
	}
	return &FileUpload{
		Filename:    filepath.Base(header.Filename),
		ContentType: contentType,
		Size:        header.Size,
		Content:     file,
		closer:      file,
	}
}
