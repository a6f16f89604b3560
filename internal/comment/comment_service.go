package comment

//go:generate mockgen -source=comment_service.go -destination=mock_comment_service.go -package=comment

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/web3ngineer/UTube/internal/common"
	"github.com/web3ngineer/UTube/internal/dbmongo"
	"github.com/web3ngineer/UTube/internal/logging"
	"github.com/web3ngineer/UTube/internal/views"
)

type CommentInput struct {
	Content string `json:"content" validate:"required,max=1000"`
}

type CommentService interface {
	ListComments(ctx context.Context, videoID, viewer primitive.ObjectID, req views.PageRequest) (*views.Page[views.CommentView], error)
	AddComment(ctx context.Context, videoID, actor primitive.ObjectID, in CommentInput) (*dbmongo.Comment, error)
	UpdateComment(ctx context.Context, commentID, actor primitive.ObjectID, in CommentInput) (*dbmongo.Comment, error)
	DeleteComment(ctx context.Context, commentID, actor primitive.ObjectID) error
}

type commentService struct {
	commentRepo CommentRepository
	views       views.Assembler
	logger      *logging.Logger
}

func NewCommentService(commentRepo CommentRepository, assembler views.Assembler, logger *logging.Logger) CommentService {
	return &commentService{commentRepo: commentRepo, views: assembler, logger: logger}
}

func (s *commentService) ListComments(ctx context.Context, videoID, viewer primitive.ObjectID, req views.PageRequest) (*views.Page[views.CommentView], error) {
	return s.views.CommentPage(ctx, videoID, viewer, req)
}

func (s *commentService) AddComment(ctx context.Context, videoID, actor primitive.ObjectID, in CommentInput) (*dbmongo.Comment, error) {
	if err := common.ValidateStruct(in); err != nil {
		return nil, err
	}

	exists, err := s.commentRepo.VideoExists(ctx, videoID)
	if err != nil {
		return nil, common.Internal("failed to load video", err)
	}
	if !exists {
		return nil, common.NotFound("video not found")
	}

	comment := &dbmongo.Comment{Content: in.Content, Video: videoID, Owner: actor}
	if err := s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, common.Internal("failed to add comment", err)
	}
	return comment, nil
}

func (s *commentService) UpdateComment(ctx context.Context, commentID, actor primitive.ObjectID, in CommentInput) (*dbmongo.Comment, error) {
	if err := common.ValidateStruct(in); err != nil {
		return nil, err
	}
	if _, err := s.owned(ctx, commentID, actor, "update this comment"); err != nil {
		return nil, err
	}

	updated, err := s.commentRepo.UpdateContent(ctx, commentID, in.Content)
	if errors.Is(err, dbmongo.ErrNotFound) {
		return nil, common.NotFound("comment not found")
	}
	if err != nil {
		return nil, common.Internal("failed to update comment", err)
	}
	return updated, nil
}

func (s *commentService) DeleteComment(ctx context.Context, commentID, actor primitive.ObjectID) error {
	if _, err := s.owned(ctx, commentID, actor, "delete this comment"); err != nil {
		return err
	}

	err := s.commentRepo.DeleteComment(ctx, commentID)
	if errors.Is(err, dbmongo.ErrNotFound) {
		return common.NotFound("comment not found")
	}
	if err != nil {
		return common.Internal("failed to delete comment", err)
	}

	if err := s.commentRepo.DeleteCommentLikes(ctx, commentID); err != nil {
		s.logger.WithField("comment_id", commentID.Hex()).WarnWithErr("failed to delete comment likes", err)
	}
	return nil
}

// owned loads the comment and checks that actor wrote it.
func (s *commentService) owned(ctx context.Context, commentID, actor primitive.ObjectID, action string) (*dbmongo.Comment, error) {
	comment, err := s.commentRepo.GetCommentByID(ctx, commentID)
	if errors.Is(err, dbmongo.ErrNotFound) {
		return nil, common.NotFound("comment not found")
	}
	if err != nil {
		return nil, common.Internal("failed to load comment", err)
	}
	if err := common.RequireOwner(comment.Owner, actor, action); err != nil {
		return nil, err
	}
	return comment, nil
}
