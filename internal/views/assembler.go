package views

//go:generate mockgen -source=assembler.go -destination=mock_assembler.go -package=views

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/web3ngineer/UTube/internal/common"
	"github.com/web3ngineer/UTube/internal/dbmongo"
	"github.com/web3ngineer/UTube/internal/metrics"
)

// Assembler runs the read-side pipelines. viewer is NilObjectID for
// anonymous requests; viewer-relative flags are then false.
type Assembler interface {
	VideoPage(ctx context.Context, q VideoQuery) (*Page[VideoCard], error)
	VideoDetail(ctx context.Context, videoID, viewer primitive.ObjectID) (*VideoDetail, error)
	CommentPage(ctx context.Context, videoID, viewer primitive.ObjectID, req PageRequest) (*Page[CommentView], error)
	TweetPage(ctx context.Context, ownerID, viewer primitive.ObjectID, req PageRequest) (*Page[TweetView], error)
	SubscriberPage(ctx context.Context, channelID, viewer primitive.ObjectID, req PageRequest) (*Page[ChannelCard], error)
	SubscribedChannelPage(ctx context.Context, subscriberID, viewer primitive.ObjectID, req PageRequest) (*Page[ChannelCard], error)
	LikedVideoPage(ctx context.Context, viewer primitive.ObjectID, req PageRequest) (*Page[LikedVideo], error)
	PlaylistPage(ctx context.Context, ownerID, viewer primitive.ObjectID, req PageRequest) (*Page[PlaylistSummary], error)
	PlaylistDetail(ctx context.Context, playlistID, viewer primitive.ObjectID) (*PlaylistDetail, error)
	ChannelProfile(ctx context.Context, username string, viewer primitive.ObjectID) (*ChannelProfile, error)
	WatchHistory(ctx context.Context, userID primitive.ObjectID) ([]VideoCard, error)
}

type assembler struct {
	mc *dbmongo.MongoClient
}

func NewAssembler(mc *dbmongo.MongoClient) Assembler {
	return &assembler{mc: mc}
}

func (a *assembler) VideoPage(ctx context.Context, q VideoQuery) (*Page[VideoCard], error) {
	if !q.OwnerID.IsZero() {
		if err := a.requireUser(ctx, q.OwnerID); err != nil {
			return nil, err
		}
	}
	return paginate[VideoCard](ctx, a.mc, "videos", VideoListing(q), q.PageRequest)
}

func (a *assembler) VideoDetail(ctx context.Context, videoID, viewer primitive.ObjectID) (*VideoDetail, error) {
	return first[VideoDetail](ctx, a.mc, "video_detail", dbmongo.VideosCollection,
		VideoDetailPipeline(videoID, viewer), "video not found")
}

func (a *assembler) CommentPage(ctx context.Context, videoID, viewer primitive.ObjectID, req PageRequest) (*Page[CommentView], error) {
	if err := a.require(ctx, dbmongo.VideosCollection, bson.D{{Key: "_id", Value: videoID}}, "video not found"); err != nil {
		return nil, err
	}
	return paginate[CommentView](ctx, a.mc, "comments", CommentListing(videoID, viewer), req)
}

func (a *assembler) TweetPage(ctx context.Context, ownerID, viewer primitive.ObjectID, req PageRequest) (*Page[TweetView], error) {
	if err := a.requireUser(ctx, ownerID); err != nil {
		return nil, err
	}
	return paginate[TweetView](ctx, a.mc, "tweets", TweetListing(ownerID, viewer), req)
}

func (a *assembler) SubscriberPage(ctx context.Context, channelID, viewer primitive.ObjectID, req PageRequest) (*Page[ChannelCard], error) {
	if err := a.requireUser(ctx, channelID); err != nil {
		return nil, err
	}
	return paginate[ChannelCard](ctx, a.mc, "subscribers", SubscriberListing(channelID, viewer), req)
}

func (a *assembler) SubscribedChannelPage(ctx context.Context, subscriberID, viewer primitive.ObjectID, req PageRequest) (*Page[ChannelCard], error) {
	if err := a.requireUser(ctx, subscriberID); err != nil {
		return nil, err
	}
	return paginate[ChannelCard](ctx, a.mc, "subscribed_channels", SubscribedChannelListing(subscriberID, viewer), req)
}

func (a *assembler) LikedVideoPage(ctx context.Context, viewer primitive.ObjectID, req PageRequest) (*Page[LikedVideo], error) {
	return paginate[LikedVideo](ctx, a.mc, "liked_videos", LikedVideoListing(viewer), req)
}

func (a *assembler) PlaylistPage(ctx context.Context, ownerID, viewer primitive.ObjectID, req PageRequest) (*Page[PlaylistSummary], error) {
	if err := a.requireUser(ctx, ownerID); err != nil {
		return nil, err
	}
	return paginate[PlaylistSummary](ctx, a.mc, "playlists", PlaylistListing(ownerID, viewer), req)
}

func (a *assembler) PlaylistDetail(ctx context.Context, playlistID, viewer primitive.ObjectID) (*PlaylistDetail, error) {
	return first[PlaylistDetail](ctx, a.mc, "playlist_detail", dbmongo.PlaylistsCollection,
		PlaylistDetailPipeline(playlistID, viewer), "playlist not found")
}

func (a *assembler) ChannelProfile(ctx context.Context, username string, viewer primitive.ObjectID) (*ChannelProfile, error) {
	return first[ChannelProfile](ctx, a.mc, "channel_profile", dbmongo.UsersCollection,
		ChannelProfilePipeline(common.NormalizeUsername(username), viewer), "channel does not exist")
}

func (a *assembler) WatchHistory(ctx context.Context, userID primitive.ObjectID) ([]VideoCard, error) {
	type history struct {
		History []VideoCard `bson:"history"`
	}
	h, err := first[history](ctx, a.mc, "watch_history", dbmongo.UsersCollection,
		WatchHistoryPipeline(userID), "user not found")
	if err != nil {
		return nil, err
	}
	if h.History == nil {
		return []VideoCard{}, nil
	}
	return h.History, nil
}

func (a *assembler) requireUser(ctx context.Context, id primitive.ObjectID) error {
	return a.require(ctx, dbmongo.UsersCollection, bson.D{{Key: "_id", Value: id}}, "user not found")
}

// require fails with NotFound when no document in coll matches filter.
func (a *assembler) require(ctx context.Context, coll string, filter bson.D, notFound string) error {
	ctx, cancel := a.mc.WithTimeout(ctx)
	defer cancel()

	err := a.mc.Collection(coll).FindOne(ctx, filter, options.FindOne().SetProjection(bson.D{{Key: "_id", Value: 1}})).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return common.NotFound(notFound)
	}
	if err != nil {
		return common.Internal("failed to resolve "+coll, err)
	}
	return nil
}

func paginate[T any](ctx context.Context, mc *dbmongo.MongoClient, view string, l Listing, req PageRequest) (*Page[T], error) {
	ctx, cancel := mc.WithTimeout(ctx)
	defer cancel()
	defer observe(view, time.Now())

	cursor, err := mc.Collection(l.Collection).Aggregate(ctx, l.Pipeline(req))
	if err != nil {
		return nil, common.Internal("failed to assemble "+view, err)
	}
	defer cursor.Close(ctx)

	var out []facetResult[T]
	if err := cursor.All(ctx, &out); err != nil {
		return nil, common.Internal("failed to decode "+view, err)
	}
	if len(out) == 0 {
		return NewPage[T](nil, req, 0), nil
	}
	return NewPage(out[0].Items, req, out[0].total()), nil
}

func first[T any](ctx context.Context, mc *dbmongo.MongoClient, view, coll string, pipeline mongo.Pipeline, notFound string) (*T, error) {
	ctx, cancel := mc.WithTimeout(ctx)
	defer cancel()
	defer observe(view, time.Now())

	cursor, err := mc.Collection(coll).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.Internal("failed to assemble "+view, err)
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		if err := cursor.Err(); err != nil {
			return nil, common.Internal("failed to assemble "+view, err)
		}
		return nil, common.NotFound(notFound)
	}
	var out T
	if err := cursor.Decode(&out); err != nil {
		return nil, common.Internal("failed to decode "+view, err)
	}
	return &out, nil
}

func observe(view string, start time.Time) {
	metrics.AggregationDuration.WithLabelValues(view).Observe(time.Since(start).Seconds())
}
