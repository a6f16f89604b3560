package media

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/web3ngineer/UTube/internal/common"
	"github.com/web3ngineer/UTube/internal/config"
	"github.com/web3ngineer/UTube/internal/dbmongo"
	"github.com/web3ngineer/UTube/internal/logging"
)

// Store uploads blobs and deletes them by the URL Upload returned.
type Store interface {
	Upload(ctx context.Context, filename, mimeType, uploaderID string, content io.Reader) (*common.MediaFile, error)
	Delete(ctx context.Context, fileURL string) error
}

type backend interface {
	Store
	Backend() string
}

// NewStore picks the configured backend.
func NewStore(cfg *config.Config, mongoClient *dbmongo.MongoClient, logger *logging.Logger) (Store, error) {
	var b backend
	switch cfg.Media.Backend {
	case config.MediaBackendMinio:
		s, err := NewMinioStore(cfg)
		if err != nil {
			return nil, err
		}
		b = s
	case config.MediaBackendGridFS, "":
		b = dbmongo.NewMediaStorage(mongoClient, cfg.Server.MediaBaseURL)
	default:
		return nil, fmt.Errorf("unknown media backend %q", cfg.Media.Backend)
	}
	return &loggedStore{next: b, logger: logger}, nil
}

type loggedStore struct {
	next   backend
	logger *logging.Logger
}

func (s *loggedStore) Upload(ctx context.Context, filename, mimeType, uploaderID string, content io.Reader) (*common.MediaFile, error) {
	start := time.Now()
	file, err := s.next.Upload(ctx, filename, mimeType, uploaderID, content)
	var size int64
	key := filename
	if file != nil {
		size, key = file.Size, file.ID
	}
	s.logger.LogStorageOperation("upload", s.next.Backend(), key, size, time.Since(start), err)
	return file, err
}

func (s *loggedStore) Delete(ctx context.Context, fileURL string) error {
	start := time.Now()
	err := s.next.Delete(ctx, fileURL)
	s.logger.LogStorageOperation("delete", s.next.Backend(), fileURL, 0, time.Since(start), err)
	return err
}
