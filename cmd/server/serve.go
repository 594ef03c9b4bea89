package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Ko-stant/hunter-arena/internal/catalog"
	"github.com/Ko-stant/hunter-arena/internal/config"
	"github.com/Ko-stant/hunter-arena/internal/game"
	"github.com/Ko-stant/hunter-arena/internal/logging"
	"github.com/Ko-stant/hunter-arena/internal/random"
	"github.com/Ko-stant/hunter-arena/internal/session"
	"github.com/Ko-stant/hunter-arena/internal/web"
	"github.com/Ko-stant/hunter-arena/internal/ws"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the battle server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	zl, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = zl.Sync() }()
	logger := zl.Sugar()

	rng, seed, err := random.NewSource(cfg.RandomSeed)
	if err != nil {
		return err
	}

	g := game.New(catalog.Default(), cfg.Rules(), rng, logger.Named("game"))
	srv := session.NewServer(g, ws.NewHub(cfg.WriteTimeout), logger.Named("session"))

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes(srv),
		ReadHeaderTimeout: 5 * time.Second,
	}

	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		return srv.Run(ctx)
	})
	grp.Go(func() error {
		logger.Infow("listening", "addr", httpServer.Addr, "seed", seed)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	grp.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	err = grp.Wait()
	logger.Infow("server stopped", "error", err)
	return err
}

func routes(srv *session.Server) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/stream", srv)
	mux.Handle("/healthz", web.HealthHandler())
	mux.Handle("/", web.StatusHandler(srv))
	return mux
}
