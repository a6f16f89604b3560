package tweet

//go:generate mockgen -source=tweet_service.go -destination=mock_tweet_service.go -package=tweet

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/web3ngineer/UTube/internal/common"
	"github.com/web3ngineer/UTube/internal/dbmongo"
	"github.com/web3ngineer/UTube/internal/logging"
	"github.com/web3ngineer/UTube/internal/views"
)

type TweetInput struct {
	Content string `json:"content" validate:"required,max=280"`
}

type TweetService interface {
	CreateTweet(ctx context.Context, ownerID primitive.ObjectID, in TweetInput) (*dbmongo.Tweet, error)
	ListUserTweets(ctx context.Context, ownerID, viewer primitive.ObjectID, req views.PageRequest) (*views.Page[views.TweetView], error)
	UpdateTweet(ctx context.Context, tweetID, actor primitive.ObjectID, in TweetInput) (*dbmongo.Tweet, error)
	DeleteTweet(ctx context.Context, tweetID, actor primitive.ObjectID) error
}

type tweetService struct {
	tweetRepo TweetRepository
	views     views.Assembler
	logger    *logging.Logger
}

func NewTweetService(tweetRepo TweetRepository, assembler views.Assembler, logger *logging.Logger) TweetService {
	return &tweetService{tweetRepo: tweetRepo, views: assembler, logger: logger}
}

func (s *tweetService) CreateTweet(ctx context.Context, ownerID primitive.ObjectID, in TweetInput) (*dbmongo.Tweet, error) {
	if err := common.ValidateStruct(in); err != nil {
		return nil, err
	}

	tweet := &dbmongo.Tweet{Owner: ownerID, Content: in.Content}
	if err := s.tweetRepo.CreateTweet(ctx, tweet); err != nil {
		return nil, common.Internal("failed to create tweet", err)
	}
	return tweet, nil
}

func (s *tweetService) ListUserTweets(ctx context.Context, ownerID, viewer primitive.ObjectID, req views.PageRequest) (*views.Page[views.TweetView], error) {
	return s.views.TweetPage(ctx, ownerID, viewer, req)
}

func (s *tweetService) UpdateTweet(ctx context.Context, tweetID, actor primitive.ObjectID, in TweetInput) (*dbmongo.Tweet, error) {
	if err := common.ValidateStruct(in); err != nil {
		return nil, err
	}
	if err := s.checkOwner(ctx, tweetID, actor, "update this tweet"); err != nil {
		return nil, err
	}

	tweet, err := s.tweetRepo.UpdateContent(ctx, tweetID, in.Content)
	if errors.Is(err, dbmongo.ErrNotFound) {
		return nil, common.NotFound("tweet not found")
	}
	if err != nil {
		return nil, common.Internal("failed to update tweet", err)
	}
	return tweet, nil
}

func (s *tweetService) DeleteTweet(ctx context.Context, tweetID, actor primitive.ObjectID) error {
	if err := s.checkOwner(ctx, tweetID, actor, "delete this tweet"); err != nil {
		return err
	}

	err := s.tweetRepo.DeleteTweet(ctx, tweetID)
	if errors.Is(err, dbmongo.ErrNotFound) {
		return common.NotFound("tweet not found")
	}
	if err != nil {
		return common.Internal("failed to delete tweet", err)
	}

	if err := s.tweetRepo.DeleteTweetLikes(ctx, tweetID); err != nil {
		s.logger.WithField("tweet_id", tweetID.Hex()).WarnWithErr("failed to delete tweet likes", err)
	}
	return nil
}

func (s *tweetService) checkOwner(ctx context.Context, tweetID, actor primitive.ObjectID, action string) error {
	tweet, err := s.tweetRepo.GetTweetByID(ctx, tweetID)
	if errors.Is(err, dbmongo.ErrNotFound) {
		return common.NotFound("tweet not found")
	}
	if err != nil {
		return common.Internal("failed to load tweet", err)
	}
	return common.RequireOwner(tweet.Owner, actor, action)
}
