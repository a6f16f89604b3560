package views

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/web3ngineer/UTube/internal/dbmongo"
)

// LikedVideoListing lists the videos viewer liked, most recent like first.
// Videos the viewer can no longer see drop out before counting.
func LikedVideoListing(viewer primitive.ObjectID) Listing {
	videoStages := append([]bson.D{match(visibleVideos(viewer))}, videoCardStages()...)
	return Listing{
		Collection: dbmongo.LikesCollection,
		Filter: mongo.Pipeline{
			match(bson.D{
				{Key: "likedBy", Value: viewer},
				{Key: "target.kind", Value: dbmongo.LikeVideo},
			}),
			lookup(dbmongo.VideosCollection, "target.id", "_id", "video", videoStages...),
			unwind("video"),
			newestFirst("createdAt"),
		},
		Shape: []bson.D{
			project(bson.D{
				{Key: "_id", Value: 0},
				{Key: "likedAt", Value: "$createdAt"},
				{Key: "video", Value: 1},
			}),
		},
	}
}
