//go:build integration

package dbmongo_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/web3ngineer/UTube/internal/common"
	"github.com/web3ngineer/UTube/internal/dbmongo"
	"github.com/web3ngineer/UTube/internal/dbmongo/mongotest"
)

func TestMongoConnection_Integration(t *testing.T) {
	client, _ := mongotest.Start(t)

	require.NoError(t, client.Ping(context.Background()))
	assert.NotNil(t, client.GridFS)
	assert.NotNil(t, client.Database)
}

func TestUniqueIndexes_Integration(t *testing.T) {
	client, _ := mongotest.Start(t)
	ctx := context.Background()

	likes := client.Collection(dbmongo.LikesCollection)
	like := dbmongo.Like{
		LikedBy:   primitive.NewObjectID(),
		Target:    dbmongo.LikeTarget{Kind: dbmongo.LikeVideo, ID: primitive.NewObjectID()},
		CreatedAt: time.Now(),
	}
	_, err := likes.InsertOne(ctx, like)
	require.NoError(t, err)
	_, err = likes.InsertOne(ctx, like)
	require.Error(t, err)
	assert.True(t, mongo.IsDuplicateKeyError(err))

	// same target id under another kind is a different like
	like.Target.Kind = dbmongo.LikeComment
	_, err = likes.InsertOne(ctx, like)
	require.NoError(t, err)

	subs := client.Collection(dbmongo.SubscriptionsCollection)
	edge := dbmongo.Subscription{Subscriber: primitive.NewObjectID(), Channel: primitive.NewObjectID()}
	_, err = subs.InsertOne(ctx, edge)
	require.NoError(t, err)
	_, err = subs.InsertOne(ctx, edge)
	assert.True(t, mongo.IsDuplicateKeyError(err))
}

func TestMediaStorage_Integration(t *testing.T) {
	client, cfg := mongotest.Start(t)
	ctx := context.Background()
	storage := dbmongo.NewMediaStorage(client, cfg.Server.MediaBaseURL)

	content := "fake video bytes"
	uploaded, err := storage.Upload(ctx, "clip.mp4", "video/mp4", "user123", strings.NewReader(content))
	require.NoError(t, err)
	assert.NotEmpty(t, uploaded.ID)
	assert.Equal(t, "http://localhost:8000/media/"+uploaded.ID, uploaded.URL)
	assert.Equal(t, int64(len(content)), uploaded.Size)
	assert.Equal(t, common.MediaFileTypeVideo, uploaded.FileType)

	reader, file, mimeType, err := storage.Download(ctx, uploaded.ID)
	require.NoError(t, err)
	body, err := io.ReadAll(reader)
	require.NoError(t, err)
	require.NoError(t, reader.Close())
	assert.Equal(t, content, string(body))
	assert.Equal(t, "clip.mp4", file.Filename)
	assert.Equal(t, "video/mp4", mimeType)
	assert.Equal(t, "user123", file.UploadedBy)

	require.NoError(t, storage.Delete(ctx, uploaded.URL))
	_, _, _, err = storage.Download(ctx, uploaded.ID)
	assert.Error(t, err)

	assert.Error(t, storage.Delete(ctx, "http://localhost:8000/media/not-an-id"))
}
