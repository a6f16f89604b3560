// Package server assembles the HTTP API: middleware, the /api/v1 routes of
// every resource, health and metrics.
package server

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/web3ngineer/UTube/internal/comment"
	"github.com/web3ngineer/UTube/internal/common"
	"github.com/web3ngineer/UTube/internal/config"
	"github.com/web3ngineer/UTube/internal/like"
	"github.com/web3ngineer/UTube/internal/logging"
	"github.com/web3ngineer/UTube/internal/media"
	"github.com/web3ngineer/UTube/internal/metrics"
	"github.com/web3ngineer/UTube/internal/playlist"
	"github.com/web3ngineer/UTube/internal/subscription"
	"github.com/web3ngineer/UTube/internal/tweet"
	"github.com/web3ngineer/UTube/internal/user"
	"github.com/web3ngineer/UTube/internal/video"
)

// Pinger reports store health.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handlers struct {
	Users         *user.Handler
	Videos        *video.Handler
	Comments      *comment.Handler
	Tweets        *tweet.Handler
	Likes         *like.Handler
	Subscriptions *subscription.Handler
	Playlists     *playlist.Handler
	// Files is nil unless media is served from GridFS.
	Files *media.HTTPServer
}

func NewRouter(cfg *config.Config, logger *logging.Logger, auth *common.Authenticator, limiter RateLimiter, store Pinger, h Handlers) *mux.Router {
	router := mux.NewRouter()
	router.Use(recoverer(logger), requestLogger(logger), cors(cfg.Server.CORSOrigin))
	if cfg.Metrics.Enabled {
		router.Use(metrics.Middleware)
		path := cfg.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		router.Handle(path, metrics.Handler()).Methods(http.MethodGet)
	}

	router.HandleFunc("/health", health(store, logger)).Methods(http.MethodGet)
	if h.Files != nil {
		h.Files.RegisterRoutes(router)
	}

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/health", health(store, logger)).Methods(http.MethodGet)

	h.Users.RegisterRoutes(api.PathPrefix("/users").Subrouter(), auth, RateLimit(limiter, logger))
	h.Videos.RegisterRoutes(api.PathPrefix("/videos").Subrouter(), auth)
	h.Comments.RegisterRoutes(api.PathPrefix("/comments").Subrouter(), auth)
	h.Tweets.RegisterRoutes(api.PathPrefix("/tweets").Subrouter(), auth)
	h.Likes.RegisterRoutes(api.PathPrefix("/likes").Subrouter(), auth)
	h.Subscriptions.RegisterRoutes(api.PathPrefix("/subscriptions").Subrouter(), auth)
	h.Playlists.RegisterRoutes(api.PathPrefix("/playlists").Subrouter(), auth)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		common.WriteError(w, logger, common.NotFound("route not found"))
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		common.WriteError(w, logger, common.MethodNotAllowed("method not allowed"))
	})
	return router
}

func health(store Pinger, logger *logging.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Ping(r.Context()); err != nil {
			logger.WarnWithErr("health check failed", err)
			common.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy"}, "MongoDB is unreachable")
			return
		}
		common.WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "utube"}, "OK")
	}
}
