package media

//go:generate mockgen -source=store.go -destination=mock_store.go -package=media
//go:generate mockgen -source=upload.go -destination=mock_discarder.go -package=media

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/web3ngineer/UTube/internal/common"
	"github.com/web3ngineer/UTube/internal/metrics"
)

// Discarder queues stored media for background deletion.
type Discarder interface {
	Discard(urls ...string)
}

// Save uploads f on behalf of uploader and returns its public URL. A nil
// upload saves nothing and returns "".
func Save(ctx context.Context, store Store, f *common.FileUpload, uploader primitive.ObjectID, kind string) (string, error) {
	if f == nil {
		return "", nil
	}
	defer f.Close()

	file, err := store.Upload(ctx, f.Filename, f.ContentType, uploader.Hex(), f.Content)
	if err != nil {
		return "", common.Internal("failed to upload "+kind, err)
	}
	metrics.MediaUploadsTotal.WithLabelValues(kind).Inc()
	return file.URL, nil
}
