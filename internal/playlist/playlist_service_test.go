package playlist

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"google.golang.org/grpc/codes"

	"github.com/web3ngineer/UTube/internal/common"
	"github.com/web3ngineer/UTube/internal/dbmongo"
	"github.com/web3ngineer/UTube/internal/logging"
	"github.com/web3ngineer/UTube/internal/views"
)

func newTestService(t *testing.T) (PlaylistService, *MockPlaylistRepository, *views.MockAssembler) {
	ctrl := gomock.NewController(t)
	repo := NewMockPlaylistRepository(ctrl)
	assembler := views.NewMockAssembler(ctrl)
	return NewPlaylistService(repo, assembler, logging.NewNopLogger()), repo, assembler
}

func TestPlaylistService_CreatePlaylist(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()
	owner := primitive.NewObjectID()

	repo.EXPECT().CreatePlaylist(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *dbmongo.Playlist) error {
		assert.Equal(t, owner, p.Owner)
		assert.Empty(t, p.Videos)
		p.ID = primitive.NewObjectID()
		return nil
	})
	playlist, err := svc.CreatePlaylist(ctx, owner, CreateInput{Name: "Go talks"})
	require.NoError(t, err)
	assert.Equal(t, "Go talks", playlist.Name)

	_, err = svc.CreatePlaylist(ctx, owner, CreateInput{})
	assert.Equal(t, codes.InvalidArgument, common.Code(err))
}

func TestPlaylistService_AddVideo(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	owner := primitive.NewObjectID()
	playlist := &dbmongo.Playlist{ID: primitive.NewObjectID(), Owner: owner}
	videoID := primitive.NewObjectID()

	tests := []struct {
		name     string
		actor    primitive.ObjectID
		setup    func()
		wantCode codes.Code
	}{
		{
			name:  "appends",
			actor: owner,
			setup: func() {
				repo.EXPECT().GetPlaylistByID(ctx, playlist.ID).Return(playlist, nil)
				repo.EXPECT().VideoExists(ctx, videoID).Return(true, nil)
				repo.EXPECT().AddVideo(ctx, playlist.ID, videoID).
					Return(&dbmongo.Playlist{ID: playlist.ID, Owner: owner, Videos: []primitive.ObjectID{videoID}}, nil)
			},
			wantCode: codes.OK,
		},
		{
			name:  "missing video",
			actor: owner,
			setup: func() {
				repo.EXPECT().GetPlaylistByID(ctx, playlist.ID).Return(playlist, nil)
				repo.EXPECT().VideoExists(ctx, videoID).Return(false, nil)
			},
			wantCode: codes.NotFound,
		},
		{
			name:  "not the owner",
			actor: primitive.NewObjectID(),
			setup: func() {
				repo.EXPECT().GetPlaylistByID(ctx, playlist.ID).Return(playlist, nil)
			},
			wantCode: codes.PermissionDenied,
		},
		{
			name:  "missing playlist",
			actor: owner,
			setup: func() {
				repo.EXPECT().GetPlaylistByID(ctx, playlist.ID).Return(nil, dbmongo.ErrNotFound)
			},
			wantCode: codes.NotFound,
		},
		{
			name:  "playlist deleted concurrently",
			actor: owner,
			setup: func() {
				repo.EXPECT().GetPlaylistByID(ctx, playlist.ID).Return(playlist, nil)
				repo.EXPECT().VideoExists(ctx, videoID).Return(true, nil)
				repo.EXPECT().AddVideo(ctx, playlist.ID, videoID).Return(nil, dbmongo.ErrNotFound)
			},
			wantCode: codes.NotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()
			got, err := svc.AddVideo(ctx, playlist.ID, videoID, tc.actor)
			if tc.wantCode != codes.OK {
				assert.Equal(t, tc.wantCode, common.Code(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []primitive.ObjectID{videoID}, got.Videos)
		})
	}
}

func TestPlaylistService_UpdateAndDelete(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	owner := primitive.NewObjectID()
	playlist := &dbmongo.Playlist{ID: primitive.NewObjectID(), Owner: owner, Name: "old"}

	_, err := svc.UpdatePlaylist(ctx, playlist.ID, owner, UpdateInput{})
	assert.Equal(t, codes.InvalidArgument, common.Code(err))

	repo.EXPECT().GetPlaylistByID(ctx, playlist.ID).Return(playlist, nil)
	repo.EXPECT().UpdateDetails(ctx, playlist.ID, "new", "").Return(&dbmongo.Playlist{ID: playlist.ID, Name: "new"}, nil)
	got, err := svc.UpdatePlaylist(ctx, playlist.ID, owner, UpdateInput{Name: "new"})
	require.NoError(t, err)
	assert.Equal(t, "new", got.Name)

	repo.EXPECT().GetPlaylistByID(ctx, playlist.ID).Return(playlist, nil)
	err = svc.DeletePlaylist(ctx, playlist.ID, primitive.NewObjectID())
	assert.Equal(t, codes.PermissionDenied, common.Code(err))

	repo.EXPECT().GetPlaylistByID(ctx, playlist.ID).Return(playlist, nil)
	repo.EXPECT().DeletePlaylist(ctx, playlist.ID).Return(errors.New("timeout"))
	err = svc.DeletePlaylist(ctx, playlist.ID, owner)
	assert.Equal(t, codes.Internal, common.Code(err))
}

func TestPlaylistService_RemoveVideo(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	owner := primitive.NewObjectID()
	playlist := &dbmongo.Playlist{ID: primitive.NewObjectID(), Owner: owner}
	videoID := primitive.NewObjectID()

	repo.EXPECT().GetPlaylistByID(ctx, playlist.ID).Return(playlist, nil)
	repo.EXPECT().RemoveVideo(ctx, playlist.ID, videoID).Return(&dbmongo.Playlist{ID: playlist.ID, Videos: []primitive.ObjectID{}}, nil)

	got, err := svc.RemoveVideo(ctx, playlist.ID, videoID, owner)
	require.NoError(t, err)
	assert.Empty(t, got.Videos)
}

func TestPlaylistService_GetPlaylist(t *testing.T) {
	svc, _, assembler := newTestService(t)
	ctx := context.Background()
	id := primitive.NewObjectID()

	assembler.EXPECT().PlaylistDetail(ctx, id, primitive.NilObjectID).Return(&views.PlaylistDetail{ID: id, TotalVideos: 1, TotalViews: 42}, nil)

	got, err := svc.GetPlaylist(ctx, id, primitive.NilObjectID)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.TotalViews)
}
