package video

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"google.golang.org/grpc/codes"

	"github.com/web3ngineer/UTube/internal/common"
	"github.com/web3ngineer/UTube/internal/dbmongo"
	"github.com/web3ngineer/UTube/internal/logging"
	"github.com/web3ngineer/UTube/internal/media"
	"github.com/web3ngineer/UTube/internal/views"
)

type serviceMocks struct {
	repo      *MockVideoRepository
	history   *MockWatchHistory
	store     *media.MockStore
	discarder *media.MockDiscarder
	views     *views.MockAssembler
}

func newTestService(t *testing.T) (VideoService, serviceMocks) {
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		repo:      NewMockVideoRepository(ctrl),
		history:   NewMockWatchHistory(ctrl),
		store:     media.NewMockStore(ctrl),
		discarder: media.NewMockDiscarder(ctrl),
		views:     views.NewMockAssembler(ctrl),
	}
	return NewVideoService(m.repo, m.history, m.store, m.discarder, m.views, logging.NewNopLogger()), m
}

func upload(name, contentType string) *common.FileUpload {
	return &common.FileUpload{Filename: name, ContentType: contentType, Content: strings.NewReader("data")}
}

func TestVideoService_PublishVideo(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()
	owner := primitive.NewObjectID()

	input := func() PublishInput {
		return PublishInput{
			Title:       "Intro to Go",
			Description: "channels and goroutines",
			Duration:    61.5,
			VideoFile:   upload("intro.mp4", "video/mp4"),
			Thumbnail:   upload("intro.png", "image/png"),
		}
	}

	tests := []struct {
		name     string
		input    func() PublishInput
		setup    func()
		wantErr  bool
		wantCode codes.Code
	}{
		{
			name:  "success",
			input: input,
			setup: func() {
				m.store.EXPECT().Upload(ctx, "intro.mp4", "video/mp4", owner.Hex(), gomock.Any()).Return(&common.MediaFile{URL: "u/video"}, nil)
				m.store.EXPECT().Upload(ctx, "intro.png", "image/png", owner.Hex(), gomock.Any()).Return(&common.MediaFile{URL: "u/thumb"}, nil)
				m.repo.EXPECT().CreateVideo(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, v *dbmongo.Video) error {
					assert.Equal(t, owner, v.Owner)
					assert.Equal(t, "u/video", v.VideoFile)
					assert.Equal(t, "u/thumb", v.Thumbnail)
					assert.True(t, v.IsPublished)
					v.ID = primitive.NewObjectID()
					return nil
				})
			},
		},
		{
			name: "missing title",
			input: func() PublishInput {
				in := input()
				in.Title = ""
				return in
			},
			setup:    func() {},
			wantErr:  true,
			wantCode: codes.InvalidArgument,
		},
		{
			name: "missing thumbnail",
			input: func() PublishInput {
				in := input()
				in.Thumbnail = nil
				return in
			},
			setup:    func() {},
			wantErr:  true,
			wantCode: codes.InvalidArgument,
		},
		{
			name: "video file is an image",
			input: func() PublishInput {
				in := input()
				in.VideoFile = upload("still.png", "image/png")
				return in
			},
			setup:    func() {},
			wantErr:  true,
			wantCode: codes.InvalidArgument,
		},
		{
			name:  "thumbnail upload fails",
			input: input,
			setup: func() {
				m.store.EXPECT().Upload(ctx, "intro.mp4", "video/mp4", owner.Hex(), gomock.Any()).Return(&common.MediaFile{URL: "u/video"}, nil)
				m.store.EXPECT().Upload(ctx, "intro.png", "image/png", owner.Hex(), gomock.Any()).Return(nil, errors.New("bucket offline"))
				m.discarder.EXPECT().Discard("u/video")
			},
			wantErr:  true,
			wantCode: codes.Internal,
		},
		{
			name:  "record insert fails",
			input: input,
			setup: func() {
				m.store.EXPECT().Upload(ctx, "intro.mp4", "video/mp4", owner.Hex(), gomock.Any()).Return(&common.MediaFile{URL: "u/video"}, nil)
				m.store.EXPECT().Upload(ctx, "intro.png", "image/png", owner.Hex(), gomock.Any()).Return(&common.MediaFile{URL: "u/thumb"}, nil)
				m.repo.EXPECT().CreateVideo(ctx, gomock.Any()).Return(errors.New("write failed"))
				m.discarder.EXPECT().Discard("u/video", "u/thumb")
			},
			wantErr:  true,
			wantCode: codes.Internal,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()
			video, err := svc.PublishVideo(ctx, owner, tc.input())
			if tc.wantErr {
				require.Error(t, err)
				assert.Equal(t, tc.wantCode, common.Code(err))
				return
			}
			require.NoError(t, err)
			assert.False(t, video.ID.IsZero())
		})
	}
}

func TestVideoService_GetVideo(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()

	owner, viewer := primitive.NewObjectID(), primitive.NewObjectID()
	published := &dbmongo.Video{ID: primitive.NewObjectID(), Owner: owner, IsPublished: true}
	draft := &dbmongo.Video{ID: primitive.NewObjectID(), Owner: owner, IsPublished: false}

	t.Run("viewer records view and history", func(t *testing.T) {
		detail := &views.VideoDetail{ID: published.ID, LikesCount: 2, IsLiked: true}
		m.repo.EXPECT().GetVideoByID(ctx, published.ID).Return(published, nil)
		m.repo.EXPECT().IncrementViews(ctx, published.ID).Return(nil)
		m.history.EXPECT().PushWatchHistory(ctx, viewer, published.ID).Return(nil)
		m.views.EXPECT().VideoDetail(ctx, published.ID, viewer).Return(detail, nil)

		got, err := svc.GetVideo(ctx, published.ID, viewer)
		require.NoError(t, err)
		assert.Equal(t, detail, got)
	})

	t.Run("anonymous viewer has no history", func(t *testing.T) {
		m.repo.EXPECT().GetVideoByID(ctx, published.ID).Return(published, nil)
		m.repo.EXPECT().IncrementViews(ctx, published.ID).Return(nil)
		m.views.EXPECT().VideoDetail(ctx, published.ID, primitive.NilObjectID).Return(&views.VideoDetail{}, nil)

		_, err := svc.GetVideo(ctx, published.ID, primitive.NilObjectID)
		require.NoError(t, err)
	})

	t.Run("view bookkeeping failures are not fatal", func(t *testing.T) {
		m.repo.EXPECT().GetVideoByID(ctx, published.ID).Return(published, nil)
		m.repo.EXPECT().IncrementViews(ctx, published.ID).Return(errors.New("timeout"))
		m.history.EXPECT().PushWatchHistory(ctx, viewer, published.ID).Return(errors.New("timeout"))
		m.views.EXPECT().VideoDetail(ctx, published.ID, viewer).Return(&views.VideoDetail{}, nil)

		_, err := svc.GetVideo(ctx, published.ID, viewer)
		require.NoError(t, err)
	})

	t.Run("draft resolves by id for other viewers", func(t *testing.T) {
		m.repo.EXPECT().GetVideoByID(ctx, draft.ID).Return(draft, nil)
		m.repo.EXPECT().IncrementViews(ctx, draft.ID).Return(nil)
		m.history.EXPECT().PushWatchHistory(ctx, viewer, draft.ID).Return(nil)
		m.views.EXPECT().VideoDetail(ctx, draft.ID, viewer).Return(&views.VideoDetail{ID: draft.ID, IsPublished: false}, nil)

		got, err := svc.GetVideo(ctx, draft.ID, viewer)
		require.NoError(t, err)
		assert.Equal(t, draft.ID, got.ID)
	})

	t.Run("draft visible to owner", func(t *testing.T) {
		m.repo.EXPECT().GetVideoByID(ctx, draft.ID).Return(draft, nil)
		m.repo.EXPECT().IncrementViews(ctx, draft.ID).Return(nil)
		m.history.EXPECT().PushWatchHistory(ctx, owner, draft.ID).Return(nil)
		m.views.EXPECT().VideoDetail(ctx, draft.ID, owner).Return(&views.VideoDetail{ID: draft.ID}, nil)

		got, err := svc.GetVideo(ctx, draft.ID, owner)
		require.NoError(t, err)
		assert.Equal(t, draft.ID, got.ID)
	})

	t.Run("missing", func(t *testing.T) {
		id := primitive.NewObjectID()
		m.repo.EXPECT().GetVideoByID(ctx, id).Return(nil, dbmongo.ErrNotFound)

		_, err := svc.GetVideo(ctx, id, viewer)
		assert.Equal(t, codes.NotFound, common.Code(err))
	})
}

func TestVideoService_UpdateVideo(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()

	owner, other := primitive.NewObjectID(), primitive.NewObjectID()
	// unpublished: existence is confirmed before ownership
	video := &dbmongo.Video{ID: primitive.NewObjectID(), Owner: owner, Thumbnail: "u/old", IsPublished: false}

	t.Run("non owner is denied", func(t *testing.T) {
		m.repo.EXPECT().GetVideoByID(ctx, video.ID).Return(video, nil)

		_, err := svc.UpdateVideo(ctx, video.ID, other, UpdateInput{Title: "t", Description: "d"})
		assert.Equal(t, codes.PermissionDenied, common.Code(err))
	})

	t.Run("new thumbnail replaces the old one", func(t *testing.T) {
		m.repo.EXPECT().GetVideoByID(ctx, video.ID).Return(video, nil)
		m.store.EXPECT().Upload(ctx, "new.png", "image/png", owner.Hex(), gomock.Any()).Return(&common.MediaFile{URL: "u/new"}, nil)
		m.repo.EXPECT().UpdateDetails(ctx, video.ID, "t", "d", "u/new").Return(&dbmongo.Video{ID: video.ID, Thumbnail: "u/new"}, nil)
		m.discarder.EXPECT().Discard("u/old")

		got, err := svc.UpdateVideo(ctx, video.ID, owner, UpdateInput{Title: "t", Description: "d", Thumbnail: upload("new.png", "image/png")})
		require.NoError(t, err)
		assert.Equal(t, "u/new", got.Thumbnail)
	})

	t.Run("text only keeps thumbnail", func(t *testing.T) {
		m.repo.EXPECT().GetVideoByID(ctx, video.ID).Return(video, nil)
		m.repo.EXPECT().UpdateDetails(ctx, video.ID, "t", "d", "").Return(video, nil)

		_, err := svc.UpdateVideo(ctx, video.ID, owner, UpdateInput{Title: "t", Description: "d"})
		require.NoError(t, err)
	})
}

func TestVideoService_DeleteVideo(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()

	owner := primitive.NewObjectID()
	video := &dbmongo.Video{ID: primitive.NewObjectID(), Owner: owner, VideoFile: "u/video", Thumbnail: "u/thumb"}

	t.Run("non owner is denied and nothing is deleted", func(t *testing.T) {
		m.repo.EXPECT().GetVideoByID(ctx, video.ID).Return(video, nil)

		err := svc.DeleteVideo(ctx, video.ID, primitive.NewObjectID())
		assert.Equal(t, codes.PermissionDenied, common.Code(err))
	})

	t.Run("cascade failure does not fail the delete", func(t *testing.T) {
		gomock.InOrder(
			m.repo.EXPECT().GetVideoByID(ctx, video.ID).Return(video, nil),
			m.repo.EXPECT().DeleteVideo(ctx, video.ID).Return(nil),
			m.repo.EXPECT().DeleteDependents(ctx, video.ID).Return(errors.New("partial")),
			m.discarder.EXPECT().Discard("u/video", "u/thumb"),
		)

		require.NoError(t, svc.DeleteVideo(ctx, video.ID, owner))
	})

	t.Run("record delete failure keeps the media", func(t *testing.T) {
		m.repo.EXPECT().GetVideoByID(ctx, video.ID).Return(video, nil)
		m.repo.EXPECT().DeleteVideo(ctx, video.ID).Return(errors.New("write failed"))

		err := svc.DeleteVideo(ctx, video.ID, owner)
		assert.Equal(t, codes.Internal, common.Code(err))
	})
}

func TestVideoService_TogglePublish(t *testing.T) {
	svc, m := newTestService(t)
	ctx := context.Background()

	owner := primitive.NewObjectID()
	video := &dbmongo.Video{ID: primitive.NewObjectID(), Owner: owner, IsPublished: true}

	m.repo.EXPECT().GetVideoByID(ctx, video.ID).Return(video, nil)
	m.repo.EXPECT().TogglePublish(ctx, video.ID).Return(&dbmongo.Video{ID: video.ID, Owner: owner, IsPublished: false}, nil)

	got, err := svc.TogglePublish(ctx, video.ID, owner)
	require.NoError(t, err)
	assert.False(t, got.IsPublished)

	m.repo.EXPECT().GetVideoByID(ctx, video.ID).Return(video, nil)
	_, err = svc.TogglePublish(ctx, video.ID, primitive.NewObjectID())
	assert.Equal(t, codes.PermissionDenied, common.Code(err))
}
