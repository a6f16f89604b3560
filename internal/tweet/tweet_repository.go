package tweet

//go:generate mockgen -source=tweet_repository.go -destination=mock_tweet_repository.go -package=tweet

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/web3ngineer/UTube/internal/dbmongo"
)

type TweetRepository interface {
	CreateTweet(ctx context.Context, tweet *dbmongo.Tweet) error
	GetTweetByID(ctx context.Context, tweetID primitive.ObjectID) (*dbmongo.Tweet, error)
	UpdateContent(ctx context.Context, tweetID primitive.ObjectID, content string) (*dbmongo.Tweet, error)
	DeleteTweet(ctx context.Context, tweetID primitive.ObjectID) error
	DeleteTweetLikes(ctx context.Context, tweetID primitive.ObjectID) error
}

type tweetRepository struct {
	mc *dbmongo.MongoClient
}

func NewTweetRepository(mc *dbmongo.MongoClient) TweetRepository {
	return &tweetRepository{mc: mc}
}

func (r *tweetRepository) tweets() *mongo.Collection {
	return r.mc.Collection(dbmongo.TweetsCollection)
}

func (r *tweetRepository) CreateTweet(ctx context.Context, tweet *dbmongo.Tweet) error {
	ctx, cancel := r.mc.WithTimeout(ctx)
	defer cancel()

	now := time.Now().UTC()
	tweet.CreatedAt, tweet.UpdatedAt = now, now

	res, err := r.tweets().InsertOne(ctx, tweet)
	if err != nil {
		return err
	}
	tweet.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *tweetRepository) GetTweetByID(ctx context.Context, tweetID primitive.ObjectID) (*dbmongo.Tweet, error) {
	ctx, cancel := r.mc.WithTimeout(ctx)
	defer cancel()

	var tweet dbmongo.Tweet
	if err := r.tweets().FindOne(ctx, bson.D{{Key: "_id", Value: tweetID}}).Decode(&tweet); err != nil {
		return nil, dbmongo.NotFoundOr(err)
	}
	return &tweet, nil
}

func (r *tweetRepository) UpdateContent(ctx context.Context, tweetID primitive.ObjectID, content string) (*dbmongo.Tweet, error) {
	ctx, cancel := r.mc.WithTimeout(ctx)
	defer cancel()

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "content", Value: content},
		{Key: "updatedAt", Value: time.Now().UTC()},
	}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var tweet dbmongo.Tweet
	if err := r.tweets().FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: tweetID}}, update, opts).Decode(&tweet); err != nil {
		return nil, dbmongo.NotFoundOr(err)
	}
	return &tweet, nil
}

func (r *tweetRepository) DeleteTweet(ctx context.Context, tweetID primitive.ObjectID) error {
	ctx, cancel := r.mc.WithTimeout(ctx)
	defer cancel()

	res, err := r.tweets().DeleteOne(ctx, bson.D{{Key: "_id", Value: tweetID}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return dbmongo.ErrNotFound
	}
	return nil
}

func (r *tweetRepository) DeleteTweetLikes(ctx context.Context, tweetID primitive.ObjectID) error {
	ctx, cancel := r.mc.WithTimeout(ctx)
	defer cancel()

	_, err := r.mc.Collection(dbmongo.LikesCollection).DeleteMany(ctx, bson.D{
		{Key: "target.kind", Value: dbmongo.LikeTweet},
		{Key: "target.id", Value: tweetID},
	})
	return err
}
