package like

//go:generate mockgen -source=like_service.go -destination=mock_like_service.go -package=like

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/web3ngineer/UTube/internal/common"
	"github.com/web3ngineer/UTube/internal/dbmongo"
	"github.com/web3ngineer/UTube/internal/logging"
	"github.com/web3ngineer/UTube/internal/metrics"
	"github.com/web3ngineer/UTube/internal/views"
)

type LikeService interface {
	ToggleLike(ctx context.Context, actor primitive.ObjectID, target dbmongo.LikeTarget) (common.ToggleResult, error)
	LikedVideos(ctx context.Context, viewer primitive.ObjectID, req views.PageRequest) (*views.Page[views.LikedVideo], error)
}

type likeService struct {
	likeRepo LikeRepository
	views    views.Assembler
	logger   *logging.Logger
}

func NewLikeService(likeRepo LikeRepository, assembler views.Assembler, logger *logging.Logger) LikeService {
	return &likeService{likeRepo: likeRepo, views: assembler, logger: logger}
}

func (s *likeService) ToggleLike(ctx context.Context, actor primitive.ObjectID, target dbmongo.LikeTarget) (common.ToggleResult, error) {
	if !target.Kind.IsValid() {
		return common.ToggleResult{}, common.InvalidArgument("unknown like target")
	}

	exists, err := s.likeRepo.TargetExists(ctx, target)
	if err != nil {
		return common.ToggleResult{}, common.Internal("failed to resolve "+string(target.Kind), err)
	}
	if !exists {
		return common.ToggleResult{}, common.NotFound(string(target.Kind) + " not found")
	}

	liked, err := s.likeRepo.Toggle(ctx, actor, target)
	if err != nil {
		return common.ToggleResult{}, common.Internal("failed to toggle like", err)
	}

	result := common.NewToggleResult(liked)
	metrics.TogglesTotal.WithLabelValues("like", string(result.State)).Inc()
	s.logger.WithField("target", target.ID.Hex()).Debugf("%s like %s", target.Kind, result.State)
	return result, nil
}

func (s *likeService) LikedVideos(ctx context.Context, viewer primitive.ObjectID, req views.PageRequest) (*views.Page[views.LikedVideo], error) {
	return s.views.LikedVideoPage(ctx, viewer, req)
}
