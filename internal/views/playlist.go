package views

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/web3ngineer/UTube/internal/dbmongo"
)

// PlaylistListing lists a user's playlists, most recently changed first.
func PlaylistListing(ownerID, viewer primitive.ObjectID) Listing {
	return Listing{
		Collection: dbmongo.PlaylistsCollection,
		Filter: mongo.Pipeline{
			match(bson.D{{Key: "owner", Value: ownerID}}),
			newestFirst("updatedAt"),
		},
		Shape: []bson.D{
			lookup(dbmongo.VideosCollection, "videos", "_id", "videoDocs",
				match(visibleVideos(viewer)),
				project(bson.D{{Key: "views", Value: 1}}),
			),
			addFields(bson.D{{Key: "videos", Value: orderedJoin("$videos", "videoDocs")}}),
			addFields(playlistTotals()),
			project(bson.D{
				{Key: "name", Value: 1},
				{Key: "description", Value: 1},
				{Key: "totalVideos", Value: 1},
				{Key: "totalViews", Value: 1},
				{Key: "createdAt", Value: 1},
				{Key: "updatedAt", Value: 1},
			}),
		},
	}
}

// PlaylistDetailPipeline resolves a playlist's videos in playlist order.
// Duplicate entries count once per occurrence.
func PlaylistDetailPipeline(playlistID, viewer primitive.ObjectID) mongo.Pipeline {
	videoStages := append([]bson.D{match(visibleVideos(viewer))}, videoCardStages()...)
	return mongo.Pipeline{
		match(bson.D{{Key: "_id", Value: playlistID}}),
		lookup(dbmongo.VideosCollection, "videos", "_id", "videoDocs", videoStages...),
		addFields(bson.D{{Key: "videos", Value: orderedJoin("$videos", "videoDocs")}}),
		addFields(playlistTotals()),
		ownerLookup("owner"),
		addFields(bson.D{firstOf("owner")}),
		project(bson.D{
			{Key: "name", Value: 1},
			{Key: "description", Value: 1},
			{Key: "totalVideos", Value: 1},
			{Key: "totalViews", Value: 1},
			{Key: "createdAt", Value: 1},
			{Key: "updatedAt", Value: 1},
			{Key: "owner", Value: 1},
			{Key: "videos", Value: 1},
		}),
	}
}

func playlistTotals() bson.D {
	return bson.D{
		{Key: "totalVideos", Value: countOf("videos")},
		{Key: "totalViews", Value: bson.D{{Key: "$sum", Value: "$videos.views"}}},
	}
}
