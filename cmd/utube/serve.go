package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/web3ngineer/UTube/internal/dbmongo"
	"github.com/web3ngineer/UTube/internal/wire"
)

var skipIndexes bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func init() {
	serveCmd.Flags().BoolVar(&skipIndexes, "skip-indexes", false, "do not create collection indexes on startup")
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	app, err := wire.InitializeApplication()
	if err != nil {
		return err
	}
	cfg, logger := app.Config, app.Logger

	if !skipIndexes {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		err := dbmongo.EnsureIndexes(ctx, app.Mongo.Database)
		cancel()
		if err != nil {
			_ = app.Close(context.Background())
			return err
		}
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      app.Router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("server listening on %s (%s)", srv.Addr, cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	var serveErr error
	select {
	case <-quit:
	case serveErr = <-errCh:
		logger.ErrorWithErr("server failed", serveErr)
	}

	logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.ErrorWithErr("server forced to shutdown", err)
	}
	if err := app.Close(ctx); err != nil {
		logger.ErrorWithErr("failed to disconnect from mongodb", err)
	}
	logger.Info("server stopped")
	return serveErr
}
