package dbmongo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestNotFoundOr(t *testing.T) {
	assert.ErrorIs(t, NotFoundOr(mongo.ErrNoDocuments), ErrNotFound)
	assert.ErrorIs(t, NotFoundOr(fmt.Errorf("find: %w", mongo.ErrNoDocuments)), ErrNotFound)

	other := errors.New("server selection timeout")
	assert.Equal(t, other, NotFoundOr(other))
	assert.NoError(t, NotFoundOr(nil))
}

func TestFileIDFromURL(t *testing.T) {
	tests := map[string]string{
		"http://localhost:8000/media/6650c0ffee0000000000abcd":      "6650c0ffee0000000000abcd",
		"http://localhost:8000/media/6650c0ffee0000000000abcd/":     "6650c0ffee0000000000abcd",
		"https://cdn.example.com/utube-media/avatars/a.png?X-Amz=1": "a.png",
		"6650c0ffee0000000000abcd":                                  "6650c0ffee0000000000abcd",
	}
	for in, want := range tests {
		assert.Equal(t, want, FileIDFromURL(in), in)
	}
}

func TestLikeKind(t *testing.T) {
	assert.True(t, LikeVideo.IsValid())
	assert.True(t, LikeComment.IsValid())
	assert.True(t, LikeTweet.IsValid())
	assert.False(t, LikeKind("playlist").IsValid())

	assert.Equal(t, VideosCollection, LikeVideo.Collection())
	assert.Equal(t, CommentsCollection, LikeComment.Collection())
	assert.Equal(t, TweetsCollection, LikeTweet.Collection())
	assert.Panics(t, func() { LikeKind("x").Collection() })
}

func TestIndexModels(t *testing.T) {
	models := IndexModels()

	for _, coll := range []string{
		UsersCollection, VideosCollection, CommentsCollection, TweetsCollection,
		LikesCollection, SubscriptionsCollection, PlaylistsCollection,
	} {
		assert.NotEmpty(t, models[coll], coll)
	}

	unique := func(coll string, keys bson.D) bool {
		for _, m := range models[coll] {
			if fmt.Sprint(m.Keys) == fmt.Sprint(keys) && m.Options != nil && m.Options.Unique != nil {
				return *m.Options.Unique
			}
		}
		return false
	}

	assert.True(t, unique(UsersCollection, bson.D{{Key: "username", Value: 1}}))
	assert.True(t, unique(UsersCollection, bson.D{{Key: "email", Value: 1}}))
	assert.True(t, unique(LikesCollection, bson.D{{Key: "likedBy", Value: 1}, {Key: "target.kind", Value: 1}, {Key: "target.id", Value: 1}}))
	assert.True(t, unique(SubscriptionsCollection, bson.D{{Key: "subscriber", Value: 1}, {Key: "channel", Value: 1}}))

	var search bool
	for _, m := range models[VideosCollection] {
		if m.Options != nil && m.Options.Name != nil && *m.Options.Name == VideoSearchIndex {
			search = true
		}
	}
	assert.True(t, search, "videos need the text search index")
}
