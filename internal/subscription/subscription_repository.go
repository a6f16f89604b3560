package subscription

//go:generate mockgen -source=subscription_repository.go -destination=mock_subscription_repository.go -package=subscription

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

type SubscriptionRepository interface {
	// Toggle removes the subscriber -> channel edge if present and creates
	// it otherwise. It reports whether the edge exists afterwards.
	Toggle(ctx context.Context, subscriberID, channelID primitive.ObjectID) (bool, error)
	ChannelExists(ctx context.Context, channelID primitive.ObjectID) (bool, error)
}

type subscriptionRepository struct {
	mc *dbmongo.MongoClient
}

func NewSubscriptionRepository(mc *dbmongo.MongoClient) SubscriptionRepository {
	return &subscriptionRepository{mc: mc}
}

func (r *subscriptionRepository) subscriptions() *mongo.Collection {
	return r.mc.Collection(dbmongo.SubscriptionsCollection)
}

func edge(subscriberID, channelID primitive.ObjectID) bson.D {
	return bson.D{
		{Key: "subscriber", Value: subscriberID},
		{Key: "channel", Value: channelID},
	}
}

func (r *subscriptionRepository) Toggle(ctx context.Context, subscriberID, channelID primitive.ObjectID) (bool, error) {
	ctx, cancel := r.mc.WithTimeout(ctx)
	defer cancel()

	res, err := r.subscriptions().DeleteOne(ctx, edge(subscriberID, channelID))
	if err != nil {
		return false, err
	}
	if res.DeletedCount > 0 {
		return false, nil
	}

	now := time.Now().UTC()
	_, err = r.subscriptions().InsertOne(ctx, &dbmongo.Subscription{
		Subscriber: subscriberID,
		Channel:    channelID,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if errors.Is(dbmongo.DuplicateOr(err), dbmongo.ErrDuplicate) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *subscriptionRepository) ChannelExists(ctx context.Context, channelID primitive.ObjectID) (bool, error) {
	ctx, cancel := r.mc.WithTimeout(ctx)
	defer cancel()

	n, err := r.mc.Collection(dbmongo.UsersCollection).CountDocuments(ctx,
		bson.D{{Key: "_id", Value: channelID}}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
