// media-server streams GridFS uploads on their own port, for deployments
// that keep file traffic off the API process.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/web3ngineer/UTube/internal/config"
	"github.com/web3ngineer/UTube/internal/dbmongo"
	"github.com/web3ngineer/UTube/internal/logging"
	"github.com/web3ngineer/UTube/internal/media"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.FromConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}

	mongoClient, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		logger.ErrorWithErr("failed to connect to mongodb", err)
		os.Exit(1)
	}
	defer mongoClient.Close(context.Background())

	files := media.NewHTTPServer(dbmongo.NewMediaStorage(mongoClient, cfg.Server.MediaBaseURL), logger)
	port := os.Getenv("MEDIA_SERVER_PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:        net.JoinHostPort(cfg.Server.Host, port),
		Handler:     files.Handler(),
		ReadTimeout: cfg.Server.ReadTimeout,
	}

	go func() {
		logger.Infof("media server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorWithErr("media server failed", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.ErrorWithErr("media server forced to shutdown", err)
	}
}
