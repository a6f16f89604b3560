package subscription

//go:generate mockgen -source=subscription_service.go -destination=mock_subscription_service.go -package=subscription

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/web3ngineer/UTube/internal/common"
	"github.com/web3ngineer/UTube/internal/logging"
	"github.com/web3ngineer/UTube/internal/metrics"
	"github.com/web3ngineer/UTube/internal/views"
)

type SubscriptionService interface {
	ToggleSubscription(ctx context.Context, subscriberID, channelID primitive.ObjectID) (common.ToggleResult, error)
	Subscribers(ctx context.Context, channelID, viewer primitive.ObjectID, req views.PageRequest) (*views.Page[views.ChannelCard], error)
	SubscribedChannels(ctx context.Context, subscriberID, viewer primitive.ObjectID, req views.PageRequest) (*views.Page[views.ChannelCard], error)
}

type subscriptionService struct {
	subscriptionRepo SubscriptionRepository
	views            views.Assembler
	logger           *logging.Logger
}

func NewSubscriptionService(subscriptionRepo SubscriptionRepository, assembler views.Assembler, logger *logging.Logger) SubscriptionService {
	return &subscriptionService{subscriptionRepo: subscriptionRepo, views: assembler, logger: logger}
}

func (s *subscriptionService) ToggleSubscription(ctx context.Context, subscriberID, channelID primitive.ObjectID) (common.ToggleResult, error) {
	if subscriberID == channelID {
		return common.ToggleResult{}, common.InvalidArgument("you cannot subscribe to your own channel")
	}

	exists, err := s.subscriptionRepo.ChannelExists(ctx, channelID)
	if err != nil {
		return common.ToggleResult{}, common.Internal("failed to resolve channel", err)
	}
	if !exists {
		return common.ToggleResult{}, common.NotFound("channel not found")
	}

	subscribed, err := s.subscriptionRepo.Toggle(ctx, subscriberID, channelID)
	if err != nil {
		return common.ToggleResult{}, common.Internal("failed to toggle subscription", err)
	}

	result := common.NewToggleResult(subscribed)
	metrics.TogglesTotal.WithLabelValues("subscription", string(result.State)).Inc()
	return result, nil
}

func (s *subscriptionService) Subscribers(ctx context.Context, channelID, viewer primitive.ObjectID, req views.PageRequest) (*views.Page[views.ChannelCard], error) {
	return s.views.SubscriberPage(ctx, channelID, viewer, req)
}

func (s *subscriptionService) SubscribedChannels(ctx context.Context, subscriberID, viewer primitive.ObjectID, req views.PageRequest) (*views.Page[views.ChannelCard], error) {
	return s.views.SubscribedChannelPage(ctx, subscriberID, viewer, req)
}
