package playlist

//go:generate mockgen -source=playlist_service.go -destination=mock_playlist_service.go -package=playlist

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/web3ngineer/UTube/internal/common"
	"github.com/web3ngineer/UTube/internal/dbmongo"
	"github.com/web3ngineer/UTube/internal/logging"
	"github.com/web3ngineer/UTube/internal/views"
)

type CreateInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// UpdateInput changes only the fields that are set.
type UpdateInput struct {
	Name        string `json:"name" validate:"max=100"`
	Description string `json:"description" validate:"max=500"`
}

type PlaylistService interface {
	CreatePlaylist(ctx context.Context, ownerID primitive.ObjectID, in CreateInput) (*dbmongo.Playlist, error)
	ListUserPlaylists(ctx context.Context, ownerID, viewer primitive.ObjectID, req views.PageRequest) (*views.Page[views.PlaylistSummary], error)
	GetPlaylist(ctx context.Context, playlistID, viewer primitive.ObjectID) (*views.PlaylistDetail, error)
	UpdatePlaylist(ctx context.Context, playlistID, actor primitive.ObjectID, in UpdateInput) (*dbmongo.Playlist, error)
	DeletePlaylist(ctx context.Context, playlistID, actor primitive.ObjectID) error
	AddVideo(ctx context.Context, playlistID, videoID, actor primitive.ObjectID) (*dbmongo.Playlist, error)
	RemoveVideo(ctx context.Context, playlistID, videoID, actor primitive.ObjectID) (*dbmongo.Playlist, error)
}

type playlistService struct {
	playlistRepo PlaylistRepository
	views        views.Assembler
	logger       *logging.Logger
}

func NewPlaylistService(playlistRepo PlaylistRepository, assembler views.Assembler, logger *logging.Logger) PlaylistService {
	return &playlistService{playlistRepo: playlistRepo, views: assembler, logger: logger}
}

func (s *playlistService) CreatePlaylist(ctx context.Context, ownerID primitive.ObjectID, in CreateInput) (*dbmongo.Playlist, error) {
	if err := common.ValidateStruct(in); err != nil {
		return nil, err
	}

	playlist := &dbmongo.Playlist{Name: in.Name, Description: in.Description, Owner: ownerID}
	if err := s.playlistRepo.CreatePlaylist(ctx, playlist); err != nil {
		return nil, common.Internal("failed to create playlist", err)
	}
	return playlist, nil
}

func (s *playlistService) ListUserPlaylists(ctx context.Context, ownerID, viewer primitive.ObjectID, req views.PageRequest) (*views.Page[views.PlaylistSummary], error) {
	return s.views.PlaylistPage(ctx, ownerID, viewer, req)
}

func (s *playlistService) GetPlaylist(ctx context.Context, playlistID, viewer primitive.ObjectID) (*views.PlaylistDetail, error) {
	return s.views.PlaylistDetail(ctx, playlistID, viewer)
}

func (s *playlistService) UpdatePlaylist(ctx context.Context, playlistID, actor primitive.ObjectID, in UpdateInput) (*dbmongo.Playlist, error) {
	if err := common.ValidateStruct(in); err != nil {
		return nil, err
	}
	if in.Name == "" && in.Description == "" {
		return nil, common.InvalidArgument("name or description is required")
	}
	if err := s.checkOwner(ctx, playlistID, actor, "update this playlist"); err != nil {
		return nil, err
	}

	playlist, err := s.playlistRepo.UpdateDetails(ctx, playlistID, in.Name, in.Description)
	return s.result(playlist, err, "failed to update playlist")
}

func (s *playlistService) DeletePlaylist(ctx context.Context, playlistID, actor primitive.ObjectID) error {
	if err := s.checkOwner(ctx, playlistID, actor, "delete this playlist"); err != nil {
		return err
	}

	err := s.playlistRepo.DeletePlaylist(ctx, playlistID)
	if errors.Is(err, dbmongo.ErrNotFound) {
		return common.NotFound("playlist not found")
	}
	if err != nil {
		return common.Internal("failed to delete playlist", err)
	}
	return nil
}

func (s *playlistService) AddVideo(ctx context.Context, playlistID, videoID, actor primitive.ObjectID) (*dbmongo.Playlist, error) {
	if err := s.checkOwner(ctx, playlistID, actor, "change this playlist"); err != nil {
		return nil, err
	}

	exists, err := s.playlistRepo.VideoExists(ctx, videoID)
	if err != nil {
		return nil, common.Internal("failed to resolve video", err)
	}
	if !exists {
		return nil, common.NotFound("video not found")
	}

	playlist, err := s.playlistRepo.AddVideo(ctx, playlistID, videoID)
	return s.result(playlist, err, "failed to add video to playlist")
}

func (s *playlistService) RemoveVideo(ctx context.Context, playlistID, videoID, actor primitive.ObjectID) (*dbmongo.Playlist, error) {
	if err := s.checkOwner(ctx, playlistID, actor, "change this playlist"); err != nil {
		return nil, err
	}

	playlist, err := s.playlistRepo.RemoveVideo(ctx, playlistID, videoID)
	return s.result(playlist, err, "failed to remove video from playlist")
}

func (s *playlistService) checkOwner(ctx context.Context, playlistID, actor primitive.ObjectID, action string) error {
	playlist, err := s.playlistRepo.GetPlaylistByID(ctx, playlistID)
	if errors.Is(err, dbmongo.ErrNotFound) {
		return common.NotFound("playlist not found")
	}
	if err != nil {
		return common.Internal("failed to load playlist", err)
	}
	return common.RequireOwner(playlist.Owner, actor, action)
}

func (s *playlistService) result(playlist *dbmongo.Playlist, err error, msg string) (*dbmongo.Playlist, error) {
	if errors.Is(err, dbmongo.ErrNotFound) {
		return nil, common.NotFound("playlist not found")
	}
	if err != nil {
		return nil, common.Internal(msg, err)
	}
	return playlist, nil
}
