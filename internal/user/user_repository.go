package user

//go:generate mockgen -source=user_repository.go -destination=mock_user_repository.go -package=user

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/web3ngineer/UTube/internal/dbmongo"
)

// UserRepository is the identity store.
type UserRepository interface {
	CreateUser(ctx context.Context, user *dbmongo.User) error
	GetUserByID(ctx context.Context, userID primitive.ObjectID) (*dbmongo.User, error)
	// GetUserByLogin matches either the username or the email.
	GetUserByLogin(ctx context.Context, username, email string) (*dbmongo.User, error)
	CheckUserExists(ctx context.Context, username, email string) (bool, error)
	Exists(ctx context.Context, userID primitive.ObjectID) (bool, error)

	SetRefreshToken(ctx context.Context, userID primitive.ObjectID, token string) error
	SetPassword(ctx context.Context, userID primitive.ObjectID, hash string) error
	UpdateAccount(ctx context.Context, userID primitive.ObjectID, fullName, email string) (*dbmongo.User, error)
	// SetImage sets field ("avatar" or "coverImage") and returns the user as
	// it was before the update.
	SetImage(ctx context.Context, userID primitive.ObjectID, field, url string) (*dbmongo.User, error)
	PushWatchHistory(ctx context.Context, userID, videoID primitive.ObjectID) error
}

type userRepository struct {
	mc *dbmongo.MongoClient
}

func NewUserRepository(mc *dbmongo.MongoClient) UserRepository {
	return &userRepository{mc: mc}
}

func (r *userRepository) users() *mongo.Collection {
	return r.mc.Collection(dbmongo.UsersCollection)
}

func (r *userRepository) CreateUser(ctx context.Context, user *dbmongo.User) error {
	ctx, cancel := r.mc.WithTimeout(ctx)
	defer cancel()

	now := time.Now().UTC()
	user.CreatedAt, user.UpdatedAt = now, now
	if user.WatchHistory == nil {
		user.WatchHistory = []primitive.ObjectID{}
	}

	res, err := r.users().InsertOne(ctx, user)
	if err != nil {
		return dbmongo.DuplicateOr(err)
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID primitive.ObjectID) (*dbmongo.User, error) {
	return r.findOne(ctx, bson.D{{Key: "_id", Value: userID}})
}

func (r *userRepository) GetUserByLogin(ctx context.Context, username, email string) (*dbmongo.User, error) {
	return r.findOne(ctx, loginFilter(username, email))
}

func (r *userRepository) CheckUserExists(ctx context.Context, username, email string) (bool, error) {
	ctx, cancel := r.mc.WithTimeout(ctx)
	defer cancel()

	count, err := r.users().CountDocuments(ctx, loginFilter(username, email), options.Count().SetLimit(1))
	return count > 0, err
}

func (r *userRepository) Exists(ctx context.Context, userID primitive.ObjectID) (bool, error) {
	ctx, cancel := r.mc.WithTimeout(ctx)
	defer cancel()

	count, err := r.users().CountDocuments(ctx, bson.D{{Key: "_id", Value: userID}}, options.Count().SetLimit(1))
	return count > 0, err
}

func (r *userRepository) SetRefreshToken(ctx context.Context, userID primitive.ObjectID, token string) error {
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "refreshToken", Value: token}}}}
	if token == "" {
		update = bson.D{{Key: "$unset", Value: bson.D{{Key: "refreshToken", Value: 1}}}}
	}
	return r.updateOne(ctx, userID, update)
}

func (r *userRepository) SetPassword(ctx context.Context, userID primitive.ObjectID, hash string) error {
	return r.updateOne(ctx, userID, bson.D{{Key: "$set", Value: bson.D{
		{Key: "password", Value: hash},
		{Key: "updatedAt", Value: time.Now().UTC()},
	}}})
}

func (r *userRepository) UpdateAccount(ctx context.Context, userID primitive.ObjectID, fullName, email string) (*dbmongo.User, error) {
	ctx, cancel := r.mc.WithTimeout(ctx)
	defer cancel()

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "fullName", Value: fullName},
		{Key: "email", Value: email},
		{Key: "updatedAt", Value: time.Now().UTC()},
	}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user dbmongo.User
	err := r.users().FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: userID}}, update, opts).Decode(&user)
	if err != nil {
		return nil, dbmongo.DuplicateOr(dbmongo.NotFoundOr(err))
	}
	return &user, nil
}

func (r *userRepository) SetImage(ctx context.Context, userID primitive.ObjectID, field, url string) (*dbmongo.User, error) {
	ctx, cancel := r.mc.WithTimeout(ctx)
	defer cancel()

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: field, Value: url},
		{Key: "updatedAt", Value: time.Now().UTC()},
	}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.Before)

	var user dbmongo.User
	if err := r.users().FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: userID}}, update, opts).Decode(&user); err != nil {
		return nil, dbmongo.NotFoundOr(err)
	}
	return &user, nil
}

// PushWatchHistory moves videoID to the front of the history, dropping any
// earlier occurrence and trimming to WatchHistoryLimit, in one update.
func (r *userRepository) PushWatchHistory(ctx context.Context, userID, videoID primitive.ObjectID) error {
	withoutVideo := bson.D{{Key: "$filter", Value: bson.D{
		{Key: "input", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$watchHistory", bson.A{}}}}},
		{Key: "cond", Value: bson.D{{Key: "$ne", Value: bson.A{"$$this", videoID}}}},
	}}}
	history := bson.D{{Key: "$slice", Value: bson.A{
		bson.D{{Key: "$concatArrays", Value: bson.A{bson.A{videoID}, withoutVideo}}},
		dbmongo.WatchHistoryLimit,
	}}}

	return r.updateOne(ctx, userID, mongo.Pipeline{
		{{Key: "$set", Value: bson.D{{Key: "watchHistory", Value: history}}}},
	})
}

func (r *userRepository) findOne(ctx context.Context, filter bson.D) (*dbmongo.User, error) {
	ctx, cancel := r.mc.WithTimeout(ctx)
	defer cancel()

	var user dbmongo.User
	if err := r.users().FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, dbmongo.NotFoundOr(err)
	}
	return &user, nil
}

func (r *userRepository) updateOne(ctx context.Context, userID primitive.ObjectID, update interface{}) error {
	ctx, cancel := r.mc.WithTimeout(ctx)
	defer cancel()

	res, err := r.users().UpdateOne(ctx, bson.D{{Key: "_id", Value: userID}}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return dbmongo.ErrNotFound
	}
	return nil
}

func loginFilter(username, email string) bson.D {
	or := bson.A{}
	if username != "" {
		or = append(or, bson.D{{Key: "username", Value: username}})
	}
	if email != "" {
		or = append(or, bson.D{{Key: "email", Value: email}})
	}
	if len(or) == 0 {
		// matches nothing
		return bson.D{{Key: "_id", Value: primitive.NilObjectID}}
	}
	return bson.D{{Key: "$or", Value: or}}
}
