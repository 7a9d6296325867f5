package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/hedibld92/Grimovies/internal/middleware"
)

// Dependencies aggregates collaborators required by HTTP handlers.
type Dependencies struct {
	Auth        AuthService
	Discovery   Discovery
	Library     Library
	Theme       ThemeState
	AuthLimiter middleware.RateLimiter
	Health      map[string]Pinger
	Logger      *slog.Logger
}

// NewRouter wires every endpoint of the local API.
func NewRouter(deps Dependencies) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	health := HealthHandler{Checks: deps.Health}
	authH := AuthHandler{Auth: deps.Auth}
	catalogH := CatalogHandler{Discovery: deps.Discovery}
	libraryH := LibraryHandler{Library: deps.Library}
	themeH := ThemeHandler{Theme: deps.Theme}

	r := chi.NewRouter()
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimiddleware.CleanPath)

	r.Get("/healthz", health.Handle)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(middleware.RateLimit(deps.AuthLimiter, "auth"))
				r.Use(chimiddleware.AllowContentType("application/json"))
				r.Post("/signup", authH.SignUp)
				r.Post("/signin", authH.SignIn)
			})
			r.Post("/signout", authH.SignOut)
			r.Get("/session", authH.Session)
		})

		r.Get("/home", catalogH.Home)
		r.Get("/genres", catalogH.Genres)
		r.Get("/search", catalogH.Search)
		r.Get("/media/{type}/{id}", catalogH.Media)
		r.Get("/catalog/{feed}", catalogH.Feed)

		r.Get("/theme", themeH.Get)
		r.Put("/theme", themeH.Put)
		r.Post("/theme/toggle", themeH.Toggle)

		r.Group(func(r chi.Router) {
			r.Use(RequireUser(deps.Auth))

			r.Get("/profile", libraryH.Profile)
			r.Get("/movies/{movieID}/status", libraryH.MovieStatus)

			r.Get("/lists", libraryH.Lists)
			r.Post("/lists", libraryH.CreateList)
			r.Route("/lists/{id}", func(r chi.Router) {
				r.Use(libraryH.RequireListOwner)
				r.Get("/", libraryH.List)
				r.Post("/movies", libraryH.AddListMovie)
				r.Get("/movies/{movieID}", libraryH.ListMovieStatus)
				r.Delete("/movies/{movieID}", libraryH.RemoveListMovie)
			})

			r.Get("/favorites", libraryH.Favorites)
			r.Post("/favorites", libraryH.AddFavorite)
			r.Post("/favorites/toggle", libraryH.ToggleFavorite)
			r.Get("/favorites/{movieID}", libraryH.FavoriteStatus)
			r.Delete("/favorites/{movieID}", libraryH.RemoveFavorite)

			r.Get("/watched", libraryH.Watched)
			r.Post("/watched", libraryH.MarkWatched)
			r.Get("/watched/{movieID}", libraryH.WatchedStatus)
			r.Delete("/watched/{movieID}", libraryH.RemoveWatched)

			r.Get("/reviews", libraryH.Reviews)
			r.Put("/reviews", libraryH.PutReview)
			r.Get("/reviews/{movieID}", libraryH.Review)

			r.Post("/watchlist/toggle", libraryH.ToggleWatchlist)
		})
	})

	return r
}
