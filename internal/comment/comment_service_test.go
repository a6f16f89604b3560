package comment

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
	"github.com/web3ngineer/UTube/internal/views"
)

func newTestService(t *testing.T) (CommentService, *MockCommentRepository, *views.MockAssembler) {
	ctrl := gomock.NewController(t)
	repo := NewMockCommentRepository(ctrl)
	assembler := views.NewMockAssembler(ctrl)
	return NewCommentService(repo, assembler, logging.NewNopLogger()), repo, assembler
}

func TestCommentService_AddComment(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	videoOwner, actor := primitive.NewObjectID(), primitive.NewObjectID()
	videoID := primitive.NewObjectID()

	tests := []struct {
		name     string
		actor    primitive.ObjectID
		content  string
		setup    func()
		wantCode codes.Code
	}{
		{
			name:    "video of another user",
			actor:   actor,
			content: "great talk",
			setup: func() {
				repo.EXPECT().VideoExists(ctx, videoID).Return(true, nil)
				repo.EXPECT().CreateComment(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, c *dbmongo.Comment) error {
					assert.Equal(t, actor, c.Owner)
					assert.Equal(t, videoID, c.Video)
					c.ID = primitive.NewObjectID()
					return nil
				})
			},
			wantCode: codes.OK,
		},
		{
			name:    "owner comments on own video",
			actor:   videoOwner,
			content: "note to self",
			setup: func() {
				repo.EXPECT().VideoExists(ctx, videoID).Return(true, nil)
				repo.EXPECT().CreateComment(ctx, gomock.Any()).Return(nil)
			},
			wantCode: codes.OK,
		},
		{
			name:    "missing video",
			actor:   actor,
			content: "hello",
			setup: func() {
				repo.EXPECT().VideoExists(ctx, videoID).Return(false, nil)
			},
			wantCode: codes.NotFound,
		},
		{name: "empty content", actor: actor, content: "", setup: func() {}, wantCode: codes.InvalidArgument},
		{name: "too long", actor: actor, content: strings.Repeat("x", 1001), setup: func() {}, wantCode: codes.InvalidArgument},
		{
			name:    "store failure",
			actor:   actor,
			content: "hello",
			setup: func() {
				repo.EXPECT().VideoExists(ctx, videoID).Return(false, errors.New("timeout"))
			},
			wantCode: codes.Internal,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup()
			comment, err := svc.AddComment(ctx, videoID, tc.actor, CommentInput{Content: tc.content})
			if tc.wantCode != codes.OK {
				require.Error(t, err)
				assert.Equal(t, tc.wantCode, common.Code(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.content, comment.Content)
		})
	}
}

func TestCommentService_DeleteComment(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	authorA, userB := primitive.NewObjectID(), primitive.NewObjectID()
	comment := &dbmongo.Comment{ID: primitive.NewObjectID(), Owner: authorA, Content: "first"}

	t.Run("other user is denied and nothing is deleted", func(t *testing.T) {
		repo.EXPECT().GetCommentByID(ctx, comment.ID).Return(comment, nil)

		err := svc.DeleteComment(ctx, comment.ID, userB)
		assert.Equal(t, codes.PermissionDenied, common.Code(err))
	})

	t.Run("author deletes comment and its likes", func(t *testing.T) {
		gomock.InOrder(
			repo.EXPECT().GetCommentByID(ctx, comment.ID).Return(comment, nil),
			repo.EXPECT().DeleteComment(ctx, comment.ID).Return(nil),
			repo.EXPECT().DeleteCommentLikes(ctx, comment.ID).Return(errors.New("timeout")),
		)

		require.NoError(t, svc.DeleteComment(ctx, comment.ID, authorA))
	})

	t.Run("missing", func(t *testing.T) {
		id := primitive.NewObjectID()
		repo.EXPECT().GetCommentByID(ctx, id).Return(nil, dbmongo.ErrNotFound)

		err := svc.DeleteComment(ctx, id, authorA)
		assert.Equal(t, codes.NotFound, common.Code(err))
	})
}

func TestCommentService_UpdateComment(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	author := primitive.NewObjectID()
	comment := &dbmongo.Comment{ID: primitive.NewObjectID(), Owner: author, Content: "first"}

	repo.EXPECT().GetCommentByID(ctx, comment.ID).Return(comment, nil)
	repo.EXPECT().UpdateContent(ctx, comment.ID, "edited").Return(&dbmongo.Comment{ID: comment.ID, Owner: author, Content: "edited"}, nil)

	got, err := svc.UpdateComment(ctx, comment.ID, author, CommentInput{Content: "edited"})
	require.NoError(t, err)
	assert.Equal(t, "edited", got.Content)

	repo.EXPECT().GetCommentByID(ctx, comment.ID).Return(comment, nil)
	_, err = svc.UpdateComment(ctx, comment.ID, primitive.NewObjectID(), CommentInput{Content: "hijack"})
	assert.Equal(t, codes.PermissionDenied, common.Code(err))
}

func TestCommentService_ListComments(t *testing.T) {
	svc, _, assembler := newTestService(t)
	ctx := context.Background()

	videoID, viewer := primitive.NewObjectID(), primitive.NewObjectID()
	req := views.PageRequest{Page: 1, Limit: 10}
	assembler.EXPECT().CommentPage(ctx, videoID, viewer, req).Return(nil, common.NotFound("video not found"))

	_, err := svc.ListComments(ctx, videoID, viewer, req)
	assert.Equal(t, codes.NotFound, common.Code(err))
}
