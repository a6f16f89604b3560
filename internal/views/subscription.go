package views

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/web3ngineer/UTube/internal/dbmongo"
)

// SubscriberListing lists the users subscribed to channelID, most recent
// subscription first.
func SubscriberListing(channelID, viewer primitive.ObjectID) Listing {
	return subscriptionListing("channel", channelID, "subscriber", viewer)
}

// SubscribedChannelListing lists the channels subscriberID follows.
func SubscribedChannelListing(subscriberID, viewer primitive.ObjectID) Listing {
	return subscriptionListing("subscriber", subscriberID, "channel", viewer)
}

// subscriptionListing walks the edges where side == id and turns the user
// on the other side into a ChannelCard.
func subscriptionListing(side string, id primitive.ObjectID, other string, viewer primitive.ObjectID) Listing {
	return Listing{
		Collection: dbmongo.SubscriptionsCollection,
		Filter: mongo.Pipeline{
			match(bson.D{{Key: side, Value: id}}),
			newestFirst("createdAt"),
		},
		Shape: []bson.D{
			lookup(dbmongo.UsersCollection, other, "_id", "user", channelOwnerStages(viewer)...),
			unwind("user"),
			{{Key: "$replaceRoot", Value: bson.D{{Key: "newRoot", Value: bson.D{
				{Key: "$mergeObjects", Value: bson.A{
					"$user",
					bson.D{{Key: "subscribedAt", Value: "$createdAt"}},
				}},
			}}}}},
		},
	}
}
