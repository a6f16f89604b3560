package dbmongo

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/web3ngineer/UTube/internal/common"
)

// MediaStorage keeps uploads in the GridFS bucket and addresses them by
// baseURL + "/" + file id.
type MediaStorage struct {
	gridFS  *gridfs.Bucket
	baseURL string
}

func NewMediaStorage(mongoClient *MongoClient, baseURL string) *MediaStorage {
	return &MediaStorage{
		gridFS:  mongoClient.GridFS,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (ms *MediaStorage) Backend() string { return "gridfs" }

func (ms *MediaStorage) Upload(ctx context.Context, filename, mimeType, uploaderID string, content io.Reader) (*common.MediaFile, error) {
	fileType := common.DetectFileType(mimeType)
	uploadedAt := time.Now().UTC()

	metadata := bson.M{
		"file_type":   fileType.String(),
		"mime_type":   mimeType,
		"uploaded_by": uploaderID,
		"uploaded_at": uploadedAt,
	}

	opts := options.GridFSUpload().SetMetadata(metadata)
	stream, err := ms.gridFS.OpenUploadStream(filename, opts)
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = stream.SetWriteDeadline(deadline)
	}

	size, err := io.Copy(stream, content)
	if err != nil {
		_ = stream.Abort()
		return nil, fmt.Errorf("file copy failed: %w", err)
	}
	if err := stream.Close(); err != nil {
		return nil, fmt.Errorf("upload finalize failed: %w", err)
	}

	id := stream.FileID.(primitive.ObjectID).Hex()
	return &common.MediaFile{
		ID:         id,
		URL:        ms.baseURL + "/" + id,
		Filename:   filename,
		Size:       size,
		FileType:   fileType,
		UploadedBy: uploaderID,
		UploadedAt: uploadedAt,
	}, nil
}

// Download opens a stored file; the caller closes the returned reader.
func (ms *MediaStorage) Download(ctx context.Context, fileID string) (io.ReadCloser, *common.MediaFile, string, error) {
	objectID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return nil, nil, "", fmt.Errorf("invalid file ID: %w", err)
	}

	stream, err := ms.gridFS.OpenDownloadStream(objectID)
	if err != nil {
		return nil, nil, "", fmt.Errorf("download failed: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = stream.SetReadDeadline(deadline)
	}

	fileInfo := stream.GetFile()
	var metadata bson.M
	if fileInfo.Metadata != nil {
		_ = bson.Unmarshal(fileInfo.Metadata, &metadata)
	}

	mediaFile := &common.MediaFile{
		ID:         fileID,
		URL:        ms.baseURL + "/" + fileID,
		Filename:   fileInfo.Name,
		Size:       fileInfo.Length,
		FileType:   common.MediaFileType(getStringFromMap(metadata, "file_type")),
		UploadedBy: getStringFromMap(metadata, "uploaded_by"),
		UploadedAt: fileInfo.UploadDate,
	}

	return stream, mediaFile, getStringFromMap(metadata, "mime_type"), nil
}

// Delete removes the file a URL produced by Upload points at.
func (ms *MediaStorage) Delete(ctx context.Context, fileURL string) error {
	fileID := FileIDFromURL(fileURL)
	objectID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return fmt.Errorf("invalid file ID %q: %w", fileID, err)
	}
	return ms.gridFS.DeleteContext(ctx, objectID)
}

// FileIDFromURL returns the last path segment of a media URL.
func FileIDFromURL(fileURL string) string {
	trimmed := strings.TrimRight(fileURL, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		trimmed = trimmed[i+1:]
	}
	if i := strings.IndexAny(trimmed, "?#"); i >= 0 {
		trimmed = trimmed[:i]
	}
	return trimmed
}

func getStringFromMap(m bson.M, key string) string {
	if m == nil {
		return ""
	}
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}
