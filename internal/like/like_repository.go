package like

//go:generate mockgen -source=like_repository.go -destination=mock_like_repository.go -package=like

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

type LikeRepository interface {
	// Toggle removes the user's like on target if present and creates it
	// otherwise. It reports whether the like exists afterwards.
	Toggle(ctx context.Context, userID primitive.ObjectID, target dbmongo.LikeTarget) (bool, error)
	// TargetExists reports whether the liked document exists. Unpublished
	// videos count.
	TargetExists(ctx context.Context, target dbmongo.LikeTarget) (bool, error)
}

type likeRepository struct {
	mc *dbmongo.MongoClient
}

func NewLikeRepository(mc *dbmongo.MongoClient) LikeRepository {
	return &likeRepository{mc: mc}
}

func (r *likeRepository) Toggle(ctx context.Context, userID primitive.ObjectID, target dbmongo.LikeTarget) (bool, error) {
	ctx, cancel := r.mc.WithTimeout(ctx)
	defer cancel()

	likes := r.mc.Collection(dbmongo.LikesCollection)
	key := bson.D{
		{Key: "likedBy", Value: userID},
		{Key: "target.kind", Value: target.Kind},
		{Key: "target.id", Value: target.ID},
	}

	res, err := likes.DeleteOne(ctx, key)
	if err != nil {
		return false, err
	}
	if res.DeletedCount > 0 {
		return false, nil
	}

	now := time.Now().UTC()
	_, err = likes.InsertOne(ctx, &dbmongo.Like{LikedBy: userID, Target: target, CreatedAt: now, UpdatedAt: now})
	// a concurrent toggle inserted first; the like exists either way
	if errors.Is(dbmongo.DuplicateOr(err), dbmongo.ErrDuplicate) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *likeRepository) TargetExists(ctx context.Context, target dbmongo.LikeTarget) (bool, error) {
	ctx, cancel := r.mc.WithTimeout(ctx)
	defer cancel()

	opts := options.FindOne().SetProjection(bson.D{{Key: "_id", Value: 1}})
	err := r.mc.Collection(target.Kind.Collection()).FindOne(ctx, bson.D{{Key: "_id", Value: target.ID}}, opts).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
