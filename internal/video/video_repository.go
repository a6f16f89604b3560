package video

//go:generate mockgen -source=video_repository.go -destination=mock_video_repository.go -package=video

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/web3ngineer/UTube/internal/dbmongo"
)

type VideoRepository interface {
	CreateVideo(ctx context.Context, video *dbmongo.Video) error
	GetVideoByID(ctx context.Context, videoID primitive.ObjectID) (*dbmongo.Video, error)
	// UpdateDetails sets title and description, and the thumbnail when
	// thumbnail is not empty. It returns the updated video.
	UpdateDetails(ctx context.Context, videoID primitive.ObjectID, title, description, thumbnail string) (*dbmongo.Video, error)
	TogglePublish(ctx context.Context, videoID primitive.ObjectID) (*dbmongo.Video, error)
	IncrementViews(ctx context.Context, videoID primitive.ObjectID) error
	DeleteVideo(ctx context.Context, videoID primitive.ObjectID) error
	// DeleteDependents removes comments, likes and playlist and history
	// references left behind by a deleted video.
	DeleteDependents(ctx context.Context, videoID primitive.ObjectID) error
}

type videoRepository struct {
	mc *dbmongo.MongoClient
}

func NewVideoRepository(mc *dbmongo.MongoClient) VideoRepository {
	return &videoRepository{mc: mc}
}

func (r *videoRepository) videos() *mongo.Collection {
	return r.mc.Collection(dbmongo.VideosCollection)
}

func (r *videoRepository) CreateVideo(ctx context.Context, video *dbmongo.Video) error {
	ctx, cancel := r.mc.WithTimeout(ctx)
	defer cancel()

	now := time.Now().UTC()
	video.CreatedAt, video.UpdatedAt = now, now

	res, err := r.videos().InsertOne(ctx, video)
	if err != nil {
		return err
	}
	video.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *videoRepository) GetVideoByID(ctx context.Context, videoID primitive.ObjectID) (*dbmongo.Video, error) {
	ctx, cancel := r.mc.WithTimeout(ctx)
	defer cancel()

	var video dbmongo.Video
	if err := r.videos().FindOne(ctx, bson.D{{Key: "_id", Value: videoID}}).Decode(&video); err != nil {
		return nil, dbmongo.NotFoundOr(err)
	}
	return &video, nil
}

func (r *videoRepository) UpdateDetails(ctx context.Context, videoID primitive.ObjectID, title, description, thumbnail string) (*dbmongo.Video, error) {
	set := bson.D{
		{Key: "title", Value: title},
		{Key: "description", Value: description},
		{Key: "updatedAt", Value: time.Now().UTC()},
	}
	if thumbnail != "" {
		set = append(set, bson.E{Key: "thumbnail", Value: thumbnail})
	}
	return r.findAndUpdate(ctx, videoID, bson.D{{Key: "$set", Value: set}})
}

// TogglePublish flips isPublished server-side so concurrent toggles never
// read a stale value.
func (r *videoRepository) TogglePublish(ctx context.Context, videoID primitive.ObjectID) (*dbmongo.Video, error) {
	return r.findAndUpdate(ctx, videoID, mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "isPublished", Value: bson.D{{Key: "$not", Value: bson.A{"$isPublished"}}}},
			{Key: "updatedAt", Value: "$$NOW"},
		}}},
	})
}

func (r *videoRepository) IncrementViews(ctx context.Context, videoID primitive.ObjectID) error {
	ctx, cancel := r.mc.WithTimeout(ctx)
	defer cancel()

	res, err := r.videos().UpdateOne(ctx, bson.D{{Key: "_id", Value: videoID}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "views", Value: 1}}}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return dbmongo.ErrNotFound
	}
	return nil
}

func (r *videoRepository) DeleteVideo(ctx context.Context, videoID primitive.ObjectID) error {
	ctx, cancel := r.mc.WithTimeout(ctx)
	defer cancel()

	res, err := r.videos().DeleteOne(ctx, bson.D{{Key: "_id", Value: videoID}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return dbmongo.ErrNotFound
	}
	return nil
}

func (r *videoRepository) DeleteDependents(ctx context.Context, videoID primitive.ObjectID) error {
	ctx, cancel := r.mc.WithTimeout(ctx)
	defer cancel()

	var errs []error

	commentIDs, err := r.mc.Collection(dbmongo.CommentsCollection).Distinct(ctx, "_id", bson.D{{Key: "video", Value: videoID}})
	if err != nil {
		errs = append(errs, err)
	}

	likeTargets := bson.A{bson.D{
		{Key: "target.kind", Value: dbmongo.LikeVideo},
		{Key: "target.id", Value: videoID},
	}}
	if len(commentIDs) > 0 {
		likeTargets = append(likeTargets, bson.D{
			{Key: "target.kind", Value: dbmongo.LikeComment},
			{Key: "target.id", Value: bson.D{{Key: "$in", Value: commentIDs}}},
		})
	}
	if _, err := r.mc.Collection(dbmongo.LikesCollection).DeleteMany(ctx, bson.D{{Key: "$or", Value: likeTargets}}); err != nil {
		errs = append(errs, err)
	}

	if _, err := r.mc.Collection(dbmongo.CommentsCollection).DeleteMany(ctx, bson.D{{Key: "video", Value: videoID}}); err != nil {
		errs = append(errs, err)
	}

	pull := func(coll, field string) {
		_, err := r.mc.Collection(coll).UpdateMany(ctx,
			bson.D{{Key: field, Value: videoID}},
			bson.D{{Key: "$pull", Value: bson.D{{Key: field, Value: videoID}}}})
		if err != nil {
			errs = append(errs, err)
		}
	}
	pull(dbmongo.PlaylistsCollection, "videos")
	pull(dbmongo.UsersCollection, "watchHistory")

	return errors.Join(errs...)
}

func (r *videoRepository) findAndUpdate(ctx context.Context, videoID primitive.ObjectID, update interface{}) (*dbmongo.Video, error) {
	ctx, cancel := r.mc.WithTimeout(ctx)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var video dbmongo.Video
	if err := r.videos().FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: videoID}}, update, opts).Decode(&video); err != nil {
		return nil, dbmongo.NotFoundOr(err)
	}
	return &video, nil
}
