package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/hedibld92/Grimovies/internal/auth"
	"github.com/hedibld92/Grimovies/internal/catalog"
	"github.com/hedibld92/Grimovies/internal/config"
	"github.com/hedibld92/Grimovies/internal/db"
	"github.com/hedibld92/Grimovies/internal/discovery"
	"github.com/hedibld92/Grimovies/internal/handlers"
	"github.com/hedibld92/Grimovies/internal/library"
	"github.com/hedibld92/Grimovies/internal/localstore"
	"github.com/hedibld92/Grimovies/internal/middleware"
	"github.com/hedibld92/Grimovies/internal/posters"
	"github.com/hedibld92/Grimovies/internal/preferences"
	"github.com/hedibld92/Grimovies/internal/repositories"
	"github.com/hedibld92/Grimovies/internal/storage"
	"github.com/hedibld92/Grimovies/internal/supabase"
)

// buildDependencies wires together concrete implementations used by the HTTP handlers,
// restores the persisted session and loads the theme. The cleanup function releases
// everything that was opened.
func buildDependencies(ctx context.Context, cfg config.Config, logger *slog.Logger) (handlers.Dependencies, func(context.Context) error, error) {
	var closers []func(context.Context) error
	cleanup := func(ctx context.Context) error {
		var errs []error
		for i := len(closers) - 1; i >= 0; i-- {
			errs = append(errs, closers[i](ctx))
		}
		return errors.Join(errs...)
	}
	fail := func(err error) (handlers.Dependencies, func(context.Context) error, error) {
		_ = cleanup(context.Background())
		return handlers.Dependencies{}, nil, err
	}

	store, err := localstore.Open(cfg.LocalDBPath)
	if err != nil {
		return fail(err)
	}
	closers = append(closers, func(context.Context) error { return store.Close() })

	httpc := &http.Client{Timeout: cfg.HTTPTimeout}
	health := map[string]handlers.Pinger{"local_store": store}

	var backend *supabase.Client
	if cfg.SupabaseURL != "" && cfg.SupabaseAnonKey != "" {
		backend = supabase.New(supabase.Config{
			URL:        cfg.SupabaseURL,
			AnonKey:    cfg.SupabaseAnonKey,
			HTTPClient: httpc,
		})
	}

	var repos repositories.Set
	switch cfg.Store {
	case config.StorePostgres:
		pool, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fail(err)
		}
		closers = append(closers, func(context.Context) error { pool.Close(); return nil })
		repos = repositories.NewPostgresSet(pool)
		health["database"] = pool
	default:
		if backend == nil {
			return fail(fmt.Errorf("store %q needs SUPABASE_URL and SUPABASE_ANON_KEY", cfg.Store))
		}
		repos = repositories.NewRestSet(backend.Rest())
	}

	var provider auth.Provider = auth.NewLocalProvider(store)
	if backend != nil {
		provider = auth.NewFallbackProvider(auth.NewRemoteProvider(backend.Auth()), provider)
	} else {
		logger.Warn("backend auth not configured, using device-local accounts only")
	}
	authService := auth.NewService(provider, auth.NewLocalSessionStore(store))

	var libraryOpts []library.Option
	if cfg.Posters.Enabled() {
		assets, err := storage.NewS3Storage(ctx, cfg.Posters)
		if err != nil {
			return fail(err)
		}
		mirror := posters.NewMirror(assets, posters.Config{
			QueueSize:    cfg.Posters.QueueSize,
			Workers:      cfg.Posters.Workers,
			DedupTTL:     cfg.Posters.DedupTTL,
			ImageBaseURL: cfg.TMDBImageBaseURL,
			HTTPClient:   httpc,
		}, logger)
		closers = append(closers, mirror.Shutdown)
		libraryOpts = append(libraryOpts, library.WithPosterMirror(mirror))
	}

	catalogClient := catalog.NewClient(catalog.Config{
		APIKey:            cfg.TMDBAPIKey,
		Language:          cfg.TMDBLanguage,
		BaseURL:           cfg.TMDBBaseURL,
		ImageBaseURL:      cfg.TMDBImageBaseURL,
		RequestsPerSecond: cfg.TMDBRequestsPerSecond,
		HTTPClient:        httpc,
	})

	theme := preferences.NewThemeState(store)

	authService.Start(ctx)
	theme.Load(ctx)

	return handlers.Dependencies{
		Auth:        authService,
		Discovery:   discovery.NewService(catalogClient),
		Library:     library.NewService(repos, libraryOpts...),
		Theme:       theme,
		AuthLimiter: middleware.NewIPRateLimiter(cfg.AuthRateLimit),
		Health:      health,
		Logger:      logger,
	}, cleanup, nil
}
