package repositories

import (
	"context"
	"strings"

	"github.com/hedibld92/Grimovies/internal/models"
)

// Backend table names.
const (
	TableLists      = "user_lists"
	TableListMovies = "list_movies"
	TableFavorites  = "user_favorites"
	TableWatched    = "user_watched"
	TableReviews    = "user_reviews"
)

// ListRepository persists user lists.
type ListRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.List, error)
	SearchByName(ctx context.Context, userID, substr string) ([]models.List, error)
	Get(ctx context.Context, listID string) (models.List, error)
	Create(ctx context.Context, list models.List) (models.List, error)
}

// ListMovieRepository persists list memberships.
type ListMovieRepository interface {
	ListByList(ctx context.Context, listID string) ([]models.ListMovie, error)
	Add(ctx context.Context, movie models.ListMovie) (models.ListMovie, error)
	Remove(ctx context.Context, listID string, movieID int64) error
	Exists(ctx context.Context, listID string, movieID int64) (bool, error)
	Count(ctx context.Context, listID string) (int, error)
}

// SnapshotRepository persists per-user title rows; favorites and watched share it.
type SnapshotRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.UserMovie, error)
	Add(ctx context.Context, movie models.UserMovie) (models.UserMovie, error)
	Remove(ctx context.Context, userID string, movieID int64) error
	Exists(ctx context.Context, userID string, movieID int64) (bool, error)
}

// ReviewRepository persists reviews, one per user and title.
type ReviewRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.Review, error)
	Get(ctx context.Context, userID string, movieID int64) (models.Review, error)
	Upsert(ctx context.Context, review models.Review) (models.Review, error)
}

// Set bundles the repositories the library service needs.
type Set struct {
	Lists      ListRepository
	ListMovies ListMovieRepository
	Favorites  SnapshotRepository
	Watched    SnapshotRepository
	Reviews    ReviewRepository
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes substr match literally inside a LIKE pattern.
func escapeLike(substr string) string {
	return likeEscaper.Replace(substr)
}
