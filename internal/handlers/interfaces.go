package handlers

import (
	"context"

	"github.com/hedibld92/Grimovies/internal/auth"
	"github.com/hedibld92/Grimovies/internal/catalog"
	"github.com/hedibld92/Grimovies/internal/discovery"
	"github.com/hedibld92/Grimovies/internal/library"
	"github.com/hedibld92/Grimovies/internal/models"
	"github.com/hedibld92/Grimovies/internal/preferences"
)

// AuthService is the process-wide authentication state.
type AuthService interface {
	State() auth.State
	Session() (models.Session, bool)
	SignUp(ctx context.Context, email, password, confirm string) auth.Result
	SignIn(ctx context.Context, email, password string) auth.Result
	SignOut(ctx context.Context) auth.Result
}

// Discovery loads catalog screens.
type Discovery interface {
	Home(ctx context.Context) (discovery.Home, error)
	Genres(ctx context.Context) ([]catalog.Genre, error)
	Search(ctx context.Context, q discovery.Query) ([]catalog.Media, error)
	Detail(ctx context.Context, mediaType string, id int64) (discovery.Detail, error)
	Feed(ctx context.Context, name string, page int) (catalog.Page, error)
}

// Library manages the signed-in user's lists, favorites, watched titles and reviews.
type Library interface {
	SearchLists(ctx context.Context, userID, query string) ([]models.List, error)
	GetListWithMovies(ctx context.Context, listID string) (models.ListWithMovies, error)
	OwnedList(ctx context.Context, userID, listID string) (models.List, error)
	CreateList(ctx context.Context, userID, name, description string) (models.List, error)
	AddMovieToList(ctx context.Context, listID string, movie models.MovieSnapshot) (models.ListMovie, error)
	RemoveMovieFromList(ctx context.Context, listID string, movieID int64) error
	IsMovieInList(ctx context.Context, listID string, movieID int64) bool

	GetUserFavorites(ctx context.Context, userID string) ([]models.UserMovie, error)
	AddToFavorites(ctx context.Context, userID string, movie models.MovieSnapshot) (models.UserMovie, error)
	RemoveFromFavorites(ctx context.Context, userID string, movieID int64) error
	IsMovieInFavorites(ctx context.Context, userID string, movieID int64) bool

	GetUserWatched(ctx context.Context, userID string) ([]models.UserMovie, error)
	MarkAsWatched(ctx context.Context, userID string, movie models.MovieSnapshot) (models.UserMovie, error)
	RemoveFromWatched(ctx context.Context, userID string, movieID int64) error
	IsWatched(ctx context.Context, userID string, movieID int64) bool

	GetUserReviews(ctx context.Context, userID string) ([]models.Review, error)
	AddOrUpdateReview(ctx context.Context, userID string, movie models.MovieSnapshot, rating int, text string) (models.Review, error)
	GetReview(ctx context.Context, userID string, movieID int64) (models.Review, error)

	Profile(ctx context.Context, userID string) (library.Profile, error)
	Status(ctx context.Context, userID string, movieID int64) library.MovieStatus
	ToggleWatchlist(ctx context.Context, userID string, movie models.MovieSnapshot) (bool, error)
	ToggleFavorite(ctx context.Context, userID string, movie models.MovieSnapshot) (bool, error)
}

// ThemeState is the process-wide theme preference.
type ThemeState interface {
	Snapshot() preferences.Snapshot
	Toggle(ctx context.Context) models.Theme
	Set(ctx context.Context, theme models.Theme) error
}

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
