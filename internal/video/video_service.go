package video

//go:generate mockgen -source=video_service.go -destination=mock_video_service.go -package=video

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/web3ngineer/UTube/internal/common"
	"github.com/web3ngineer/UTube/internal/dbmongo"
	"github.com/web3ngineer/UTube/internal/logging"
	"github.com/web3ngineer/UTube/internal/media"
	"github.com/web3ngineer/UTube/internal/views"
)

// WatchHistory records a view in the viewer's history.
type WatchHistory interface {
	PushWatchHistory(ctx context.Context, userID, videoID primitive.ObjectID) error
}

type PublishInput struct {
	Title       string             `json:"title" validate:"required,max=200"`
	Description string             `json:"description" validate:"required,max=5000"`
	Duration    float64            `json:"duration" validate:"gte=0"`
	VideoFile   *common.FileUpload `json:"-" validate:"-"`
	Thumbnail   *common.FileUpload `json:"-" validate:"-"`
}

type UpdateInput struct {
	Title       string             `json:"title" validate:"required,max=200"`
	Description string             `json:"description" validate:"required,max=5000"`
	Thumbnail   *common.FileUpload `json:"-" validate:"-"`
}

type VideoService interface {
	ListVideos(ctx context.Context, q views.VideoQuery) (*views.Page[views.VideoCard], error)
	PublishVideo(ctx context.Context, ownerID primitive.ObjectID, in PublishInput) (*dbmongo.Video, error)
	// GetVideo records a view and returns the assembled detail.
	GetVideo(ctx context.Context, videoID, viewer primitive.ObjectID) (*views.VideoDetail, error)
	UpdateVideo(ctx context.Context, videoID, actor primitive.ObjectID, in UpdateInput) (*dbmongo.Video, error)
	DeleteVideo(ctx context.Context, videoID, actor primitive.ObjectID) error
	TogglePublish(ctx context.Context, videoID, actor primitive.ObjectID) (*dbmongo.Video, error)
}

type videoService struct {
	videoRepo VideoRepository
	history   WatchHistory
	store     media.Store
	discarder media.Discarder
	views     views.Assembler
	logger    *logging.Logger
}

func NewVideoService(videoRepo VideoRepository, history WatchHistory, store media.Store, discarder media.Discarder, assembler views.Assembler, logger *logging.Logger) VideoService {
	return &videoService{
		videoRepo: videoRepo,
		history:   history,
		store:     store,
		discarder: discarder,
		views:     assembler,
		logger:    logger,
	}
}

func (s *videoService) ListVideos(ctx context.Context, q views.VideoQuery) (*views.Page[views.VideoCard], error) {
	return s.views.VideoPage(ctx, q)
}

func (s *videoService) PublishVideo(ctx context.Context, ownerID primitive.ObjectID, in PublishInput) (*dbmongo.Video, error) {
	defer in.VideoFile.Close()
	defer in.Thumbnail.Close()

	if err := common.ValidateStruct(in); err != nil {
		return nil, err
	}
	if in.VideoFile == nil || in.Thumbnail == nil {
		return nil, common.InvalidArgument("videoFile and thumbnail are required")
	}
	if common.DetectFileType(in.VideoFile.ContentType) != common.MediaFileTypeVideo {
		return nil, common.InvalidArgument("videoFile must be a video")
	}
	if !common.IsImage(in.Thumbnail.ContentType) {
		return nil, common.InvalidArgument("thumbnail must be an image")
	}

	videoURL, err := media.Save(ctx, s.store, in.VideoFile, ownerID, "video")
	if err != nil {
		return nil, err
	}
	thumbnailURL, err := media.Save(ctx, s.store, in.Thumbnail, ownerID, "thumbnail")
	if err != nil {
		s.discarder.Discard(videoURL)
		return nil, err
	}

	video := &dbmongo.Video{
		Owner:       ownerID,
		VideoFile:   videoURL,
		Thumbnail:   thumbnailURL,
		Title:       in.Title,
		Description: in.Description,
		Duration:    in.Duration,
		IsPublished: true,
	}
	if err := s.videoRepo.CreateVideo(ctx, video); err != nil {
		s.discarder.Discard(videoURL, thumbnailURL)
		return nil, common.Internal("failed to save video", err)
	}
	return video, nil
}

func (s *videoService) GetVideo(ctx context.Context, videoID, viewer primitive.ObjectID) (*views.VideoDetail, error) {
	// publish state only gates listings; a direct link resolves for anyone
	if _, err := s.load(ctx, videoID); err != nil {
		return nil, err
	}
	if err := s.videoRepo.IncrementViews(ctx, videoID); err != nil {
		s.logger.WarnWithErr("failed to record view", err)
	}
	if !viewer.IsZero() {
		if err := s.history.PushWatchHistory(ctx, viewer, videoID); err != nil {
			s.logger.WarnWithErr("failed to update watch history", err)
		}
	}

	return s.views.VideoDetail(ctx, videoID, viewer)
}

func (s *videoService) UpdateVideo(ctx context.Context, videoID, actor primitive.ObjectID, in UpdateInput) (*dbmongo.Video, error) {
	defer in.Thumbnail.Close()

	if err := common.ValidateStruct(in); err != nil {
		return nil, err
	}
	if in.Thumbnail != nil && !common.IsImage(in.Thumbnail.ContentType) {
		return nil, common.InvalidArgument("thumbnail must be an image")
	}

	video, err := s.load(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if err := common.RequireOwner(video.Owner, actor, "update this video"); err != nil {
		return nil, err
	}

	thumbnailURL, err := media.Save(ctx, s.store, in.Thumbnail, actor, "thumbnail")
	if err != nil {
		return nil, err
	}

	updated, err := s.videoRepo.UpdateDetails(ctx, videoID, in.Title, in.Description, thumbnailURL)
	if err != nil {
		s.discarder.Discard(thumbnailURL)
		if errors.Is(err, dbmongo.ErrNotFound) {
			return nil, common.NotFound("video not found")
		}
		return nil, common.Internal("failed to update video", err)
	}
	if thumbnailURL != "" {
		s.discarder.Discard(video.Thumbnail)
	}
	return updated, nil
}

// DeleteVideo removes the record first; dependents and media are cleaned
// up afterwards and their failures are only logged.
func (s *videoService) DeleteVideo(ctx context.Context, videoID, actor primitive.ObjectID) error {
	video, err := s.load(ctx, videoID)
	if err != nil {
		return err
	}
	if err := common.RequireOwner(video.Owner, actor, "delete this video"); err != nil {
		return err
	}

	err = s.videoRepo.DeleteVideo(ctx, videoID)
	if errors.Is(err, dbmongo.ErrNotFound) {
		return common.NotFound("video not found")
	}
	if err != nil {
		return common.Internal("failed to delete video", err)
	}

	if err := s.videoRepo.DeleteDependents(ctx, videoID); err != nil {
		s.logger.WithField("video_id", videoID.Hex()).WarnWithErr("failed to clean up video dependents", err)
	}
	s.discarder.Discard(video.VideoFile, video.Thumbnail)
	return nil
}

func (s *videoService) TogglePublish(ctx context.Context, videoID, actor primitive.ObjectID) (*dbmongo.Video, error) {
	video, err := s.load(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if err := common.RequireOwner(video.Owner, actor, "change this video"); err != nil {
		return nil, err
	}

	toggled, err := s.videoRepo.TogglePublish(ctx, videoID)
	if errors.Is(err, dbmongo.ErrNotFound) {
		return nil, common.NotFound("video not found")
	}
	if err != nil {
		return nil, common.Internal("failed to toggle publish status", err)
	}
	return toggled, nil
}

func (s *videoService) load(ctx context.Context, videoID primitive.ObjectID) (*dbmongo.Video, error) {
	video, err := s.videoRepo.GetVideoByID(ctx, videoID)
	if errors.Is(err, dbmongo.ErrNotFound) {
		return nil, common.NotFound("video not found")
	}
	if err != nil {
		return nil, common.Internal("failed to load video", err)
	}
	return video, nil
}
