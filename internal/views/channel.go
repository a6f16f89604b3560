package views

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/web3ngineer/UTube/internal/dbmongo"
)

// ChannelProfilePipeline builds the public profile of the user with the
// given (normalized) username.
func ChannelProfilePipeline(username string, viewer primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		match(bson.D{{Key: "username", Value: username}}),
		subscribersLookup(),
		lookup(dbmongo.SubscriptionsCollection, "_id", "subscriber", "subscribedTo",
			project(bson.D{{Key: "channel", Value: 1}}),
		),
		addFields(bson.D{
			{Key: "subscribersCount", Value: countOf("subscribers")},
			{Key: "channelsSubscribedToCount", Value: countOf("subscribedTo")},
			{Key: "isSubscribed", Value: memberFlag(viewer, "$subscribers.subscriber")},
		}),
		project(bson.D{
			{Key: "username", Value: 1},
			{Key: "fullName", Value: 1},
			{Key: "email", Value: 1},
			{Key: "avatar", Value: 1},
			{Key: "coverImage", Value: 1},
			{Key: "subscribersCount", Value: 1},
			{Key: "channelsSubscribedToCount", Value: 1},
			{Key: "isSubscribed", Value: 1},
			{Key: "createdAt", Value: 1},
		}),
	}
}

// WatchHistoryPipeline resolves userID's watch history, most recent first.
func WatchHistoryPipeline(userID primitive.ObjectID) mongo.Pipeline {
	videoStages := append([]bson.D{match(visibleVideos(userID))}, videoCardStages()...)
	return mongo.Pipeline{
		match(bson.D{{Key: "_id", Value: userID}}),
		lookup(dbmongo.VideosCollection, "watchHistory", "_id", "historyDocs", videoStages...),
		project(bson.D{
			{Key: "history", Value: orderedJoin("$watchHistory", "historyDocs")},
		}),
	}
}
