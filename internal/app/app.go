package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"

	"github.com/hedibld92/Grimovies/internal/config"
	"github.com/hedibld92/Grimovies/internal/handlers"
	"github.com/hedibld92/Grimovies/internal/httpserver"
	"github.com/hedibld92/Grimovies/internal/logging"
)

// Run bootstraps the Grimovies core.
func Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("expected command: serve, migrate, seed, or setup")
	}

	switch args[0] {
	case "serve":
		return serve(ctx)
	case "migrate":
		return runMigrations(ctx, afero.NewOsFs(), os.Stdout, args[1:])
	case "seed":
		return runSeed(ctx, afero.NewOsFs(), os.Stdout, args[1:])
	case "setup":
		return runSetup(afero.NewOsFs(), os.Stdin, os.Stdout, args[1:])
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func serve(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}
	defer closer.Close()
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(logging.WithLogger(ctx, logger), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, cleanup, err := buildDependencies(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), httpserver.ShutdownTimeout)
		defer cancel()
		if err := cleanup(shutdownCtx); err != nil {
			logger.Error("release dependencies", "error", err)
		}
	}()

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Addr(), err)
	}

	srv := httpserver.New(cfg.Addr(), handlers.NewRouter(deps), cfg.HTTPTimeout)
	logger.Info("starting http server", "addr", ln.Addr().String(), "store", cfg.Store)

	if err := srv.Run(ctx, ln); err != nil {
		return err
	}
	logger.Info("http server stopped")
	return nil
}
