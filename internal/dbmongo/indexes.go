package dbmongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// VideoSearchIndex is the text index behind the listing's query parameter.
const VideoSearchIndex = "search-videos"

// IndexModels lists the indexes each collection needs. The unique likes and
// subscriptions indexes turn concurrent double toggles into duplicate-key
// errors instead of duplicate edges.
func IndexModels() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		UsersCollection: {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true).SetName("username_unique")},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("email_unique")},
		},
		VideosCollection: {
			{
				Keys:    bson.D{{Key: "title", Value: "text"}, {Key: "description", Value: "text"}},
				Options: options.Index().SetName(VideoSearchIndex).SetWeights(bson.D{{Key: "title", Value: 3}, {Key: "description", Value: 1}}),
			},
			{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("owner_createdAt")},
			{Keys: bson.D{{Key: "isPublished", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("published_createdAt")},
		},
		CommentsCollection: {
			{Keys: bson.D{{Key: "video", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("video_createdAt")},
		},
		TweetsCollection: {
			{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("owner_createdAt")},
		},
		LikesCollection: {
			{
				Keys:    bson.D{{Key: "likedBy", Value: 1}, {Key: "target.kind", Value: 1}, {Key: "target.id", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("likedBy_target_unique"),
			},
			{Keys: bson.D{{Key: "target.id", Value: 1}, {Key: "target.kind", Value: 1}}, Options: options.Index().SetName("target")},
		},
		SubscriptionsCollection: {
			{
				Keys:    bson.D{{Key: "subscriber", Value: 1}, {Key: "channel", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("subscriber_channel_unique"),
			},
			{Keys: bson.D{{Key: "channel", Value: 1}}, Options: options.Index().SetName("channel")},
		},
		PlaylistsCollection: {
			{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "updatedAt", Value: -1}}, Options: options.Index().SetName("owner_updatedAt")},
		},
	}
}

// EnsureIndexes creates every index; existing identical indexes are a no-op.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for coll, models := range IndexModels() {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", coll, err)
		}
	}
	return nil
}
