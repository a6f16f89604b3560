// Package dbmongo owns the MongoDB connection, document models, indexes and
// GridFS media storage.
package dbmongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/web3ngineer/UTube/internal/config"
)

const (
	UsersCollection         = "users"
	VideosCollection        = "videos"
	CommentsCollection      = "comments"
	TweetsCollection        = "tweets"
	LikesCollection         = "likes"
	SubscriptionsCollection = "subscriptions"
	PlaylistsCollection     = "playlists"

	MediaBucket = "media_files"
)

var (
	// ErrNotFound is returned by repositories when no document matches.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicate is returned when an insert or update hits a unique index.
	ErrDuplicate = errors.New("duplicate key")
)

type MongoClient struct {
	Client   *mongo.Client
	Database *mongo.Database
	GridFS   *gridfs.Bucket
	// Timeout bounds every store call made through WithTimeout.
	Timeout time.Duration
}

func NewMongoConnection(c *config.Config) (*MongoClient, error) {
	uri := c.GetMongoURI()
	clientOptions := options.Client().ApplyURI(uri)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	database := client.Database(c.MongoDB.Database)
	bucket, err := gridfs.NewBucket(database, options.GridFSBucket().SetName(MediaBucket))
	if err != nil {
		return nil, fmt.Errorf("failed to create GridFSBucket: %w", err)
	}

	timeout := c.MongoDB.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &MongoClient{
		Client:   client,
		Database: database,
		GridFS:   bucket,
		Timeout:  timeout,
	}, nil
}

func (mc *MongoClient) Collection(name string) *mongo.Collection {
	return mc.Database.Collection(name)
}

// WithTimeout derives the per-call context used by repositories.
func (mc *MongoClient) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, mc.Timeout)
}

func (mc *MongoClient) Ping(ctx context.Context) error {
	ctx, cancel := mc.WithTimeout(ctx)
	defer cancel()
	return mc.Client.Ping(ctx, nil)
}

func (mc *MongoClient) Close(ctx context.Context) error {
	return mc.Client.Disconnect(ctx)
}

// NotFoundOr maps mongo.ErrNoDocuments to ErrNotFound.
func NotFoundOr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

// DuplicateOr maps duplicate-key write errors to ErrDuplicate.
func DuplicateOr(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}
