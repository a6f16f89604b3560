//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/google/wire"

	"github.com/web3ngineer/UTube/internal/cleanup"
	"github.com/web3ngineer/UTube/internal/comment"
	"github.com/web3ngineer/UTube/internal/common"
	"github.com/web3ngineer/UTube/internal/config"
	"github.com/web3ngineer/UTube/internal/dbmongo"
	"github.com/web3ngineer/UTube/internal/like"
	"github.com/web3ngineer/UTube/internal/logging"
	"github.com/web3ngineer/UTube/internal/media"
	"github.com/web3ngineer/UTube/internal/playlist"
	"github.com/web3ngineer/UTube/internal/server"
	"github.com/web3ngineer/UTube/internal/subscription"
	"github.com/web3ngineer/UTube/internal/tweet"
	"github.com/web3ngineer/UTube/internal/user"
	"github.com/web3ngineer/UTube/internal/video"
	"github.com/web3ngineer/UTube/internal/views"
)

var storeSet = wire.NewSet(
	dbmongo.NewMongoConnection,
	media.NewStore,
	ProvideDeleter,
	cleanup.NewManager,
	wire.Bind(new(media.Discarder), new(*cleanup.Manager)),
	wire.Bind(new(server.Pinger), new(*dbmongo.MongoClient)),
	ProvideMediaFiles,
)

var repositorySet = wire.NewSet(
	user.NewUserRepository,
	video.NewVideoRepository,
	comment.NewCommentRepository,
	tweet.NewTweetRepository,
	like.NewLikeRepository,
	subscription.NewSubscriptionRepository,
	playlist.NewPlaylistRepository,
	views.NewAssembler,
	ProvideIdentityResolver,
	ProvideWatchHistory,
)

var serviceSet = wire.NewSet(
	user.NewUserService,
	video.NewVideoService,
	comment.NewCommentService,
	tweet.NewTweetService,
	like.NewLikeService,
	subscription.NewSubscriptionService,
	playlist.NewPlaylistService,
)

var handlerSet = wire.NewSet(
	user.NewHandler,
	video.NewHandler,
	comment.NewHandler,
	tweet.NewHandler,
	like.NewHandler,
	subscription.NewHandler,
	playlist.NewHandler,
	wire.Struct(new(server.Handlers), "*"),
)

func InitializeApplication() (*Application, error) {
	wire.Build(
		config.LoadConfig,
		logging.FromConfig,
		storeSet,
		repositorySet,
		serviceSet,
		handlerSet,
		common.NewTokenManager,
		common.NewAuthenticator,
		ProvideRateLimiter,
		server.NewRouter,
		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}
