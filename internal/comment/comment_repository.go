package comment

//go:generate mockgen -source=comment_repository.go -destination=mock_comment_repository.go -package=comment

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/web3ngineer/UTube/internal/dbmongo"
)

type CommentRepository interface {
	CreateComment(ctx context.Context, comment *dbmongo.Comment) error
	GetCommentByID(ctx context.Context, commentID primitive.ObjectID) (*dbmongo.Comment, error)
	UpdateContent(ctx context.Context, commentID primitive.ObjectID, content string) (*dbmongo.Comment, error)
	DeleteComment(ctx context.Context, commentID primitive.ObjectID) error
	DeleteCommentLikes(ctx context.Context, commentID primitive.ObjectID) error
	VideoExists(ctx context.Context, videoID primitive.ObjectID) (bool, error)
}

type commentRepository struct {
	mc *dbmongo.MongoClient
}

func NewCommentRepository(mc *dbmongo.MongoClient) CommentRepository {
	return &commentRepository{mc: mc}
}

func (r *commentRepository) comments() *mongo.Collection {
	return r.mc.Collection(dbmongo.CommentsCollection)
}

func (r *commentRepository) CreateComment(ctx context.Context, comment *dbmongo.Comment) error {
	ctx, cancel := r.mc.WithTimeout(ctx)
	defer cancel()

	now := time.Now().UTC()
	comment.CreatedAt, comment.UpdatedAt = now, now

	res, err := r.comments().InsertOne(ctx, comment)
	if err != nil {
		return err
	}
	comment.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *commentRepository) GetCommentByID(ctx context.Context, commentID primitive.ObjectID) (*dbmongo.Comment, error) {
	ctx, cancel := r.mc.WithTimeout(ctx)
	defer cancel()

	var comment dbmongo.Comment
	if err := r.comments().FindOne(ctx, bson.D{{Key: "_id", Value: commentID}}).Decode(&comment); err != nil {
		return nil, dbmongo.NotFoundOr(err)
	}
	return &comment, nil
}

func (r *commentRepository) UpdateContent(ctx context.Context, commentID primitive.ObjectID, content string) (*dbmongo.Comment, error) {
	ctx, cancel := r.mc.WithTimeout(ctx)
	defer cancel()

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "content", Value: content},
		{Key: "updatedAt", Value: time.Now().UTC()},
	}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var comment dbmongo.Comment
	if err := r.comments().FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: commentID}}, update, opts).Decode(&comment); err != nil {
		return nil, dbmongo.NotFoundOr(err)
	}
	return &comment, nil
}

func (r *commentRepository) DeleteComment(ctx context.Context, commentID primitive.ObjectID) error {
	ctx, cancel := r.mc.WithTimeout(ctx)
	defer cancel()

	res, err := r.comments().DeleteOne(ctx, bson.D{{Key: "_id", Value: commentID}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return dbmongo.ErrNotFound
	}
	return nil
}

func (r *commentRepository) DeleteCommentLikes(ctx context.Context, commentID primitive.ObjectID) error {
	ctx, cancel := r.mc.WithTimeout(ctx)
	defer cancel()

	_, err := r.mc.Collection(dbmongo.LikesCollection).DeleteMany(ctx, bson.D{
		{Key: "target.kind", Value: dbmongo.LikeComment},
		{Key: "target.id", Value: commentID},
	})
	return err
}

func (r *commentRepository) VideoExists(ctx context.Context, videoID primitive.ObjectID) (bool, error) {
	ctx, cancel := r.mc.WithTimeout(ctx)
	defer cancel()

	n, err := r.mc.Collection(dbmongo.VideosCollection).CountDocuments(ctx,
		bson.D{{Key: "_id", Value: videoID}}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
