package views

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/web3ngineer/UTube/internal/dbmongo"
)

// CommentListing lists a video's comments newest first.
func CommentListing(videoID, viewer primitive.ObjectID) Listing {
	return Listing{
		Collection: dbmongo.CommentsCollection,
		Filter: mongo.Pipeline{
			match(bson.D{{Key: "video", Value: videoID}}),
			newestFirst("createdAt"),
		},
		Shape: likeableStages(dbmongo.LikeComment, viewer, bson.D{
			{Key: "content", Value: 1},
			{Key: "video", Value: 1},
		}),
	}
}

// TweetListing lists a user's tweets newest first.
func TweetListing(ownerID, viewer primitive.ObjectID) Listing {
	return Listing{
		Collection: dbmongo.TweetsCollection,
		Filter: mongo.Pipeline{
			match(bson.D{{Key: "owner", Value: ownerID}}),
			newestFirst("createdAt"),
		},
		Shape: likeableStages(dbmongo.LikeTweet, viewer, bson.D{
			{Key: "content", Value: 1},
		}),
	}
}

// likeableStages joins owner and likes onto a comment or tweet and keeps
// fields plus the derived and timestamp fields.
func likeableStages(kind dbmongo.LikeKind, viewer primitive.ObjectID, fields bson.D) []bson.D {
	kept := append(bson.D{}, fields...)
	kept = append(kept,
		bson.E{Key: "createdAt", Value: 1},
		bson.E{Key: "updatedAt", Value: 1},
		bson.E{Key: "owner", Value: 1},
		bson.E{Key: "likesCount", Value: 1},
		bson.E{Key: "isLiked", Value: 1},
	)
	return []bson.D{
		ownerLookup("owner"),
		likesLookup(kind),
		addFields(bson.D{
			firstOf("owner"),
			{Key: "likesCount", Value: countOf("likes")},
			{Key: "isLiked", Value: memberFlag(viewer, "$likes.likedBy")},
		}),
		project(kept),
	}
}
