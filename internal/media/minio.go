package media

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/web3ngineer/UTube/internal/common"
	"github.com/web3ngineer/UTube/internal/config"
)

// MinioStore keeps uploads in an S3-compatible bucket.
type MinioStore struct {
	client     *minio.Client
	bucketName string
	publicURL  string
}

func NewMinioStore(cfg *config.Config) (*MinioStore, error) {
	client, err := minio.New(cfg.Media.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Media.MinioAccessKey, cfg.Media.MinioSecretKey, ""),
		Secure: cfg.Media.MinioUseSSL,
		Region: cfg.Media.MinioRegion,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Media.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		err = client.MakeBucket(ctx, cfg.Media.MinioBucket, minio.MakeBucketOptions{
			Region: cfg.Media.MinioRegion,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	publicURL := cfg.Media.MinioPublicURL
	if publicURL == "" {
		scheme := "http"
		if cfg.Media.MinioUseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s/%s", scheme, cfg.Media.MinioEndpoint, cfg.Media.MinioBucket)
	}

	return &MinioStore{
		client:     client,
		bucketName: cfg.Media.MinioBucket,
		publicURL:  strings.TrimRight(publicURL, "/"),
	}, nil
}

func (s *MinioStore) Backend() string { return "minio" }

func (s *MinioStore) Upload(ctx context.Context, filename, mimeType, uploaderID string, content io.Reader) (*common.MediaFile, error) {
	objectName := ObjectName(uploaderID, filename, primitive.NewObjectID().Hex())

	info, err := s.client.PutObject(ctx, s.bucketName, objectName, content, -1, minio.PutObjectOptions{
		ContentType:  mimeType,
		UserMetadata: map[string]string{"uploaded-by": uploaderID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload object: %w", err)
	}

	return &common.MediaFile{
		ID:         objectName,
		URL:        s.publicURL + "/" + objectName,
		Filename:   filename,
		Size:       info.Size,
		FileType:   common.DetectFileType(mimeType),
		UploadedBy: uploaderID,
		UploadedAt: time.Now().UTC(),
	}, nil
}

func (s *MinioStore) Delete(ctx context.Context, fileURL string) error {
	objectName, ok := s.objectFromURL(fileURL)
	if !ok {
		return fmt.Errorf("url %q is not in bucket %s", fileURL, s.bucketName)
	}
	if err := s.client.RemoveObject(ctx, s.bucketName, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

func (s *MinioStore) objectFromURL(fileURL string) (string, bool) {
	prefix := s.publicURL + "/"
	if !strings.HasPrefix(fileURL, prefix) {
		return "", false
	}
	name := strings.TrimPrefix(fileURL, prefix)
	return name, name != ""
}

// ObjectName lays uploads out as <uploader>/<unique>.<ext>.
func ObjectName(uploaderID, filename, unique string) string {
	ext := strings.ToLower(path.Ext(filename))
	if uploaderID == "" {
		uploaderID = "anonymous"
	}
	return uploaderID + "/" + unique + ext
}
