// Package wire builds the application graph. InitializeApplication is
// generated from wire.go; run `go generate ./internal/wire` after changing a
// constructor signature.
package wire

import (
	"context"

	"github.com/gorilla/mux"

	"github.com/web3ngineer/UTube/internal/cleanup"
	"github.com/web3ngineer/UTube/internal/common"
	"github.com/web3ngineer/UTube/internal/config"
	"github.com/web3ngineer/UTube/internal/dbmongo"
	"github.com/web3ngineer/UTube/internal/logging"
	"github.com/web3ngineer/UTube/internal/media"
	"github.com/web3ngineer/UTube/internal/server"
	"github.com/web3ngineer/UTube/internal/user"
	"github.com/web3ngineer/UTube/internal/video"
)

type Application struct {
	Config  *config.Config
	Logger  *logging.Logger
	Mongo   *dbmongo.MongoClient
	Cleanup *cleanup.Manager
	Router  *mux.Router
}

// Close drains the cleanup queue and then disconnects from MongoDB.
func (a *Application) Close(ctx context.Context) error {
	a.Cleanup.Shutdown()
	return a.Mongo.Close(ctx)
}

// ProvideMediaFiles serves GridFS uploads from this process. The MinIO
// backend hands out bucket URLs instead, so no file route is mounted.
func ProvideMediaFiles(cfg *config.Config, mc *dbmongo.MongoClient, logger *logging.Logger) *media.HTTPServer {
	switch cfg.Media.Backend {
	case config.MediaBackendGridFS, "":
		return media.NewHTTPServer(dbmongo.NewMediaStorage(mc, cfg.Server.MediaBaseURL), logger)
	default:
		return nil
	}
}

func ProvideDeleter(store media.Store) cleanup.Deleter {
	return store
}

func ProvideIdentityResolver(users user.UserRepository) common.IdentityResolver {
	return users
}

func ProvideWatchHistory(users user.UserRepository) video.WatchHistory {
	return users
}

func ProvideRateLimiter(cfg *config.Config) server.RateLimiter {
	return server.NewIPRateLimiter(cfg.RateLimit)
}
