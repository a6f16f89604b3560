package views

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/web3ngineer/UTube/internal/dbmongo"
)

func match(filter bson.D) bson.D {
	return bson.D{{Key: "$match", Value: filter}}
}

func sortBy(keys bson.D) bson.D {
	return bson.D{{Key: "$sort", Value: keys}}
}

// newestFirst orders by field descending with _id as tie-break.
func newestFirst(field string) bson.D {
	return sortBy(bson.D{{Key: field, Value: -1}, {Key: "_id", Value: -1}})
}

func addFields(fields bson.D) bson.D {
	return bson.D{{Key: "$addFields", Value: fields}}
}

func project(fields bson.D) bson.D {
	return bson.D{{Key: "$project", Value: fields}}
}

func unwind(path string) bson.D {
	return bson.D{{Key: "$unwind", Value: "$" + path}}
}

// lookup is a left outer join; unmatched documents get an empty array.
func lookup(from, localField, foreignField, as string, pipeline ...bson.D) bson.D {
	stage := bson.D{
		{Key: "from", Value: from},
		{Key: "localField", Value: localField},
		{Key: "foreignField", Value: foreignField},
	}
	if len(pipeline) > 0 {
		stage = append(stage, bson.E{Key: "pipeline", Value: mongo.Pipeline(pipeline)})
	}
	stage = append(stage, bson.E{Key: "as", Value: as})
	return bson.D{{Key: "$lookup", Value: stage}}
}

var ownerFields = bson.D{
	{Key: "username", Value: 1},
	{Key: "fullName", Value: 1},
	{Key: "avatar", Value: 1},
}

// ownerLookup joins the user referenced by localField into "owner" as a
// one-element array; pair it with firstOf("owner").
func ownerLookup(localField string) bson.D {
	return lookup(dbmongo.UsersCollection, localField, "_id", "owner", project(ownerFields))
}

// firstOf replaces a joined array with its first element, or null when
// the array is empty.
func firstOf(field string) bson.E {
	return bson.E{Key: field, Value: bson.D{{Key: "$ifNull", Value: bson.A{
		bson.D{{Key: "$arrayElemAt", Value: bson.A{"$" + field, 0}}},
		nil,
	}}}}
}

// likesLookup joins the likes on the current document's _id into "likes".
func likesLookup(kind dbmongo.LikeKind) bson.D {
	return lookup(dbmongo.LikesCollection, "_id", "target.id", "likes",
		match(bson.D{{Key: "target.kind", Value: kind}}),
		project(bson.D{{Key: "likedBy", Value: 1}}),
	)
}

// subscribersLookup joins the subscriptions whose channel is the current
// user document into "subscribers".
func subscribersLookup() bson.D {
	return lookup(dbmongo.SubscriptionsCollection, "_id", "channel", "subscribers",
		project(bson.D{{Key: "subscriber", Value: 1}}),
	)
}

func countOf(field string) bson.D {
	return bson.D{{Key: "$size", Value: "$" + field}}
}

// memberFlag tests whether viewer appears in the array at path. Anonymous
// viewers always get false.
func memberFlag(viewer primitive.ObjectID, path string) bson.D {
	if viewer.IsZero() {
		return bson.D{{Key: "$literal", Value: false}}
	}
	return bson.D{{Key: "$in", Value: bson.A{viewer, path}}}
}

// visibleVideos hides other users' unpublished videos from joined lists.
func visibleVideos(viewer primitive.ObjectID) bson.D {
	if viewer.IsZero() {
		return bson.D{{Key: "isPublished", Value: true}}
	}
	return bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "isPublished", Value: true}},
		bson.D{{Key: "owner", Value: viewer}},
	}}}
}

var videoCardFields = bson.D{
	{Key: "videoFile", Value: 1},
	{Key: "thumbnail", Value: 1},
	{Key: "title", Value: 1},
	{Key: "description", Value: 1},
	{Key: "duration", Value: 1},
	{Key: "views", Value: 1},
	{Key: "isPublished", Value: 1},
	{Key: "createdAt", Value: 1},
	{Key: "owner", Value: 1},
}

// videoCardStages shapes video documents into VideoCard.
func videoCardStages() []bson.D {
	return []bson.D{
		ownerLookup("owner"),
		addFields(bson.D{firstOf("owner")}),
		project(videoCardFields),
	}
}

// orderedJoin resolves the id array idsExpr against the joined documents
// in docsField, keeping the order and duplicates of the id array and
// dropping ids that did not resolve.
func orderedJoin(idsExpr, docsField string) bson.D {
	resolveOne := bson.D{{Key: "$arrayElemAt", Value: bson.A{
		bson.D{{Key: "$filter", Value: bson.D{
			{Key: "input", Value: "$" + docsField},
			{Key: "as", Value: "doc"},
			{Key: "cond", Value: bson.D{{Key: "$eq", Value: bson.A{"$$doc._id", "$$vid"}}}},
		}}},
		0,
	}}}

	return bson.D{{Key: "$filter", Value: bson.D{
		{Key: "input", Value: bson.D{{Key: "$map", Value: bson.D{
			{Key: "input", Value: bson.D{{Key: "$ifNull", Value: bson.A{idsExpr, bson.A{}}}}},
			{Key: "as", Value: "vid"},
			{Key: "in", Value: resolveOne},
		}}}},
		{Key: "as", Value: "item"},
		{Key: "cond", Value: bson.D{{Key: "$eq", Value: bson.A{bson.D{{Key: "$type", Value: "$$item"}}, "object"}}}},
	}}}
}
