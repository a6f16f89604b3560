package views

import (
	"net/url"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/web3ngineer/UTube/internal/common"
	"github.com/web3ngineer/UTube/internal/dbmongo"
)

// VideoQuery parameterises the public video listing.
type VideoQuery struct {
	PageRequest
	Search  string
	OwnerID primitive.ObjectID
	SortBy  string
	// SortDir is 1 for ascending, -1 for descending.
	SortDir int
}

// ParseVideoQuery reads page, limit, query, sortBy, sortType and userId.
func ParseVideoQuery(values url.Values) (VideoQuery, error) {
	page, err := ParsePageRequest(values)
	if err != nil {
		return VideoQuery{}, err
	}

	q := VideoQuery{
		PageRequest: page,
		Search:      strings.TrimSpace(values.Get("query")),
		SortBy:      "createdAt",
		SortDir:     -1,
	}

	if sortBy := strings.TrimSpace(values.Get("sortBy")); sortBy != "" {
		if !dbmongo.VideoSortFields[sortBy] {
			return VideoQuery{}, common.InvalidArgument("sortBy must be one of createdAt, views, duration")
		}
		q.SortBy = sortBy
	}

	switch strings.ToLower(strings.TrimSpace(values.Get("sortType"))) {
	case "", "desc":
	case "asc":
		q.SortDir = 1
	default:
		return VideoQuery{}, common.InvalidArgument("sortType must be asc or desc")
	}

	if raw := values.Get("userId"); raw != "" {
		ownerID, err := common.ParseID(raw, "userId")
		if err != nil {
			return VideoQuery{}, err
		}
		q.OwnerID = ownerID
	}

	return q, nil
}

// VideoListing lists published videos, newest first unless sorted
// otherwise. The text match has to be the first stage.
func VideoListing(q VideoQuery) Listing {
	filter := bson.D{}
	if q.Search != "" {
		filter = append(filter, bson.E{Key: "$text", Value: bson.D{{Key: "$search", Value: q.Search}}})
	}
	filter = append(filter, bson.E{Key: "isPublished", Value: true})
	if !q.OwnerID.IsZero() {
		filter = append(filter, bson.E{Key: "owner", Value: q.OwnerID})
	}

	field := q.SortBy
	if field == "" {
		field = "createdAt"
	}
	dir := q.SortDir
	if dir != 1 {
		dir = -1
	}

	return Listing{
		Collection: dbmongo.VideosCollection,
		Filter: mongo.Pipeline{
			match(filter),
			sortBy(bson.D{{Key: field, Value: dir}, {Key: "_id", Value: dir}}),
		},
		Shape: videoCardStages(),
	}
}

// VideoDetailPipeline assembles one video with like and owner subscription data.
func VideoDetailPipeline(videoID, viewer primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		match(bson.D{{Key: "_id", Value: videoID}}),
		likesLookup(dbmongo.LikeVideo),
		lookup(dbmongo.UsersCollection, "owner", "_id", "owner", channelOwnerStages(viewer)...),
		addFields(bson.D{
			{Key: "likesCount", Value: countOf("likes")},
			{Key: "isLiked", Value: memberFlag(viewer, "$likes.likedBy")},
			firstOf("owner"),
		}),
		project(bson.D{
			{Key: "videoFile", Value: 1},
			{Key: "thumbnail", Value: 1},
			{Key: "title", Value: 1},
			{Key: "description", Value: 1},
			{Key: "duration", Value: 1},
			{Key: "views", Value: 1},
			{Key: "isPublished", Value: 1},
			{Key: "createdAt", Value: 1},
			{Key: "updatedAt", Value: 1},
			{Key: "owner", Value: 1},
			{Key: "likesCount", Value: 1},
			{Key: "isLiked", Value: 1},
		}),
	}
}

// channelOwnerStages run inside a users lookup and produce ChannelOwner /
// ChannelCard shaped documents.
func channelOwnerStages(viewer primitive.ObjectID) []bson.D {
	return []bson.D{
		subscribersLookup(),
		addFields(bson.D{
			{Key: "subscribersCount", Value: countOf("subscribers")},
			{Key: "isSubscribed", Value: memberFlag(viewer, "$subscribers.subscriber")},
		}),
		project(bson.D{
			{Key: "username", Value: 1},
			{Key: "fullName", Value: 1},
			{Key: "avatar", Value: 1},
			{Key: "subscribersCount", Value: 1},
			{Key: "isSubscribed", Value: 1},
		}),
	}
}
