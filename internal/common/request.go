package common

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
)

// DecodeJSON reads a JSON request body into dst. An empty body leaves dst
// untouched.
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return InvalidArgument("invalid request body")
	}
	return nil
}

// ParseMultipart parses a multipart form bounded by maxBytes.
func ParseMultipart(w http.ResponseWriter, r *http.Request, maxBytes int64) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return InvalidArgument("expected multipart/form-data")
	}
	if maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	}
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return InvalidArgument("upload exceeds the size limit")
		}
		return InvalidArgument("invalid multipart form")
	}
	return nil
}

// FormValue returns a trimmed form value from either a multipart or a
// urlencoded body.
func FormValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.FormValue(key))
}
