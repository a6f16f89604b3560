//go:build integration

package views_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"google.golang.org/grpc/codes"

	"github.com/web3ngineer/UTube/internal/comment"
	"github.com/web3ngineer/UTube/internal/common"
	"github.com/web3ngineer/UTube/internal/dbmongo"
	"github.com/web3ngineer/UTube/internal/dbmongo/mongotest"
	"github.com/web3ngineer/UTube/internal/like"
	"github.com/web3ngineer/UTube/internal/logging"
	"github.com/web3ngineer/UTube/internal/playlist"
	"github.com/web3ngineer/UTube/internal/subscription"
	"github.com/web3ngineer/UTube/internal/user"
	"github.com/web3ngineer/UTube/internal/video"
	"github.com/web3ngineer/UTube/internal/views"
)

type fixture struct {
	mc        *dbmongo.MongoClient
	assembler views.Assembler
	users     user.UserRepository
	videos    video.VideoRepository
	logger    *logging.Logger
}

func newFixture(t *testing.T) *fixture {
	mc, _ := mongotest.Start(t)
	return &fixture{
		mc:        mc,
		assembler: views.NewAssembler(mc),
		users:     user.NewUserRepository(mc),
		videos:    video.NewVideoRepository(mc),
		logger:    logging.NewNopLogger(),
	}
}

func (f *fixture) user(t *testing.T, username string) *dbmongo.User {
	t.Helper()
	u := &dbmongo.User{
		Username: username,
		Email:    username + "@example.com",
		FullName: username,
		Avatar:   "http://localhost/media/" + username,
		Password: "hash",
	}
	require.NoError(t, f.users.CreateUser(context.Background(), u))
	return u
}

func (f *fixture) video(t *testing.T, owner primitive.ObjectID, title string, published bool, viewCount int64) *dbmongo.Video {
	t.Helper()
	v := &dbmongo.Video{
		Owner:       owner,
		Title:       title,
		Description: "about " + title,
		VideoFile:   "http://localhost/media/v",
		Thumbnail:   "http://localhost/media/t",
		Duration:    30,
		Views:       viewCount,
		IsPublished: published,
	}
	require.NoError(t, f.videos.CreateVideo(context.Background(), v))
	return v
}

func TestLikeToggle_Integration(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	likes := like.NewLikeService(like.NewLikeRepository(f.mc), f.assembler, f.logger)

	a, b := f.user(t, "alice"), f.user(t, "bob")
	v := f.video(t, a.ID, "gophers", true, 0)
	target := dbmongo.LikeTarget{Kind: dbmongo.LikeVideo, ID: v.ID}

	result, err := likes.ToggleLike(ctx, b.ID, target)
	require.NoError(t, err)
	assert.Equal(t, common.ToggleCreated, result.State)

	detail, err := f.assembler.VideoDetail(ctx, v.ID, b.ID)
	require.NoError(t, err)
	assert.True(t, detail.IsLiked)
	assert.Equal(t, int64(1), detail.LikesCount)
	assert.Equal(t, "alice", detail.Owner.Username)

	// another viewer sees the count but not the flag
	anon, err := f.assembler.VideoDetail(ctx, v.ID, primitive.NilObjectID)
	require.NoError(t, err)
	assert.False(t, anon.IsLiked)
	assert.Equal(t, int64(1), anon.LikesCount)

	liked, err := f.assembler.LikedVideoPage(ctx, b.ID, views.DefaultPageRequest())
	require.NoError(t, err)
	require.Len(t, liked.Items, 1)
	assert.Equal(t, v.ID, liked.Items[0].Video.ID)

	result, err = likes.ToggleLike(ctx, b.ID, target)
	require.NoError(t, err)
	assert.Equal(t, common.ToggleRemoved, result.State)

	detail, err = f.assembler.VideoDetail(ctx, v.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, detail.IsLiked)
	assert.Equal(t, int64(0), detail.LikesCount)
}

func TestUnpublishedVideo_Integration(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	videos := video.NewVideoService(f.videos, f.users, nil, nil, f.assembler, f.logger)

	a, b := f.user(t, "alice"), f.user(t, "bob")
	public := f.video(t, a.ID, "public cut", true, 0)
	draft := f.video(t, a.ID, "director cut", false, 0)

	page, err := f.assembler.VideoPage(ctx, views.VideoQuery{PageRequest: views.DefaultPageRequest(), SortBy: "createdAt", SortDir: -1})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, public.ID, page.Items[0].ID)
	assert.Equal(t, int64(1), page.TotalItems)

	got, err := videos.GetVideo(ctx, draft.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, draft.ID, got.ID)
	assert.Equal(t, int64(1), got.Views)

	// a direct link resolves for everyone; only listings filter drafts
	seen, err := videos.GetVideo(ctx, draft.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, seen.IsPublished)
	assert.Equal(t, int64(2), seen.Views)

	comments := comment.NewCommentService(comment.NewCommentRepository(f.mc), f.assembler, f.logger)
	_, err = comments.AddComment(ctx, draft.ID, b.ID, comment.CommentInput{Content: "early look"})
	require.NoError(t, err)
	thread, err := f.assembler.CommentPage(ctx, draft.ID, b.ID, views.DefaultPageRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), thread.TotalItems)

	likes := like.NewLikeService(like.NewLikeRepository(f.mc), f.assembler, f.logger)
	result, err := likes.ToggleLike(ctx, b.ID, dbmongo.LikeTarget{Kind: dbmongo.LikeVideo, ID: draft.ID})
	require.NoError(t, err)
	assert.Equal(t, common.ToggleCreated, result.State)

	liked, err := f.assembler.LikedVideoPage(ctx, b.ID, views.DefaultPageRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(0), liked.TotalItems)

	// existence is confirmed before ownership
	_, err = videos.UpdateVideo(ctx, draft.ID, b.ID, video.UpdateInput{Title: "mine now", Description: "x"})
	assert.Equal(t, codes.PermissionDenied, common.Code(err))

	history, err := f.assembler.WatchHistory(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, draft.ID, history[0].ID)
}

func TestVideoSearch_Integration(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.user(t, "alice")
	f.video(t, a.ID, "channels in depth", true, 0)
	f.video(t, a.ID, "cooking pasta", true, 0)

	page, err := f.assembler.VideoPage(ctx, views.VideoQuery{PageRequest: views.DefaultPageRequest(), Search: "channels", SortBy: "createdAt", SortDir: -1})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "channels in depth", page.Items[0].Title)
}

func TestPlaylistTotals_Integration(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	playlists := playlist.NewPlaylistService(playlist.NewPlaylistRepository(f.mc), f.assembler, f.logger)

	a := f.user(t, "alice")
	v := f.video(t, a.ID, "gophers", true, 42)

	p, err := playlists.CreatePlaylist(ctx, a.ID, playlist.CreateInput{Name: "favourites"})
	require.NoError(t, err)

	detail, err := playlists.GetPlaylist(ctx, p.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), detail.TotalVideos)
	assert.Empty(t, detail.Videos)

	_, err = playlists.AddVideo(ctx, p.ID, v.ID, a.ID)
	require.NoError(t, err)

	detail, err = playlists.GetPlaylist(ctx, p.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), detail.TotalVideos)
	assert.Equal(t, v.Views, detail.TotalViews)
	require.Len(t, detail.Videos, 1)
	assert.Equal(t, "alice", detail.Owner.Username)

	summaries, err := f.assembler.PlaylistPage(ctx, a.ID, a.ID, views.DefaultPageRequest())
	require.NoError(t, err)
	require.Len(t, summaries.Items, 1)
	assert.Equal(t, int64(42), summaries.Items[0].TotalViews)
}

func TestPagination_Integration(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.user(t, "alice")
	for i := 0; i < 23; i++ {
		f.video(t, a.ID, fmt.Sprintf("episode %d", i), true, int64(i))
	}

	for _, tc := range []struct {
		page, limit int64
		wantItems   int
		wantNext    bool
	}{
		{page: 1, limit: 10, wantItems: 10, wantNext: true},
		{page: 3, limit: 10, wantItems: 3, wantNext: false},
		{page: 4, limit: 10, wantItems: 0, wantNext: false},
		{page: 1, limit: 100, wantItems: 23, wantNext: false},
	} {
		q := views.VideoQuery{PageRequest: views.PageRequest{Page: tc.page, Limit: tc.limit}, SortBy: "views", SortDir: 1}
		page, err := f.assembler.VideoPage(ctx, q)
		require.NoError(t, err)
		assert.Len(t, page.Items, tc.wantItems)
		assert.LessOrEqual(t, int64(len(page.Items)), tc.limit)
		assert.Equal(t, int64(23), page.TotalItems)
		assert.Equal(t, views.TotalPages(23, tc.limit), page.TotalPages)
		assert.Equal(t, tc.wantNext, page.HasNextPage)
	}

	page, err := f.assembler.VideoPage(ctx, views.VideoQuery{PageRequest: views.PageRequest{Page: 2, Limit: 5}, SortBy: "views", SortDir: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.Items[0].Views)
}

func TestCommentOwnership_Integration(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	comments := comment.NewCommentService(comment.NewCommentRepository(f.mc), f.assembler, f.logger)

	a, b := f.user(t, "alice"), f.user(t, "bob")
	v := f.video(t, a.ID, "gophers", true, 0)

	c, err := comments.AddComment(ctx, v.ID, a.ID, comment.CommentInput{Content: "first"})
	require.NoError(t, err)

	err = comments.DeleteComment(ctx, c.ID, b.ID)
	assert.Equal(t, codes.PermissionDenied, common.Code(err))

	page, err := comments.ListComments(ctx, v.ID, b.ID, views.DefaultPageRequest())
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "first", page.Items[0].Content)
	assert.Equal(t, "alice", page.Items[0].Owner.Username)

	_, err = comments.ListComments(ctx, primitive.NewObjectID(), b.ID, views.DefaultPageRequest())
	assert.Equal(t, codes.NotFound, common.Code(err))
}

func TestSubscriptions_Integration(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	subs := subscription.NewSubscriptionService(subscription.NewSubscriptionRepository(f.mc), f.assembler, f.logger)

	a, b := f.user(t, "alice"), f.user(t, "bob")

	_, err := subs.ToggleSubscription(ctx, b.ID, a.ID)
	require.NoError(t, err)

	profile, err := f.assembler.ChannelProfile(ctx, "Alice", b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), profile.SubscribersCount)
	assert.True(t, profile.IsSubscribed)

	subscribers, err := subs.Subscribers(ctx, a.ID, primitive.NilObjectID, views.DefaultPageRequest())
	require.NoError(t, err)
	require.Len(t, subscribers.Items, 1)
	assert.Equal(t, "bob", subscribers.Items[0].Username)

	channels, err := subs.SubscribedChannels(ctx, b.ID, b.ID, views.DefaultPageRequest())
	require.NoError(t, err)
	require.Len(t, channels.Items, 1)
	assert.Equal(t, int64(1), channels.Items[0].SubscribersCount)
	assert.True(t, channels.Items[0].IsSubscribed)

	_, err = subs.ToggleSubscription(ctx, b.ID, a.ID)
	require.NoError(t, err)
	profile, err = f.assembler.ChannelProfile(ctx, "alice", b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), profile.SubscribersCount)
	assert.False(t, profile.IsSubscribed)
}
