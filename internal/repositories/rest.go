package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hedibld92/Grimovies/internal/models"
	"github.com/hedibld92/Grimovies/internal/supabase"
)

// NewRestSet wires every repository to the hosted REST interface.
func NewRestSet(rest *supabase.RestClient) Set {
	return Set{
		Lists:      &RestListRepository{rest: rest},
		ListMovies: &RestListMovieRepository{rest: rest},
		Favorites:  &RestSnapshotRepository{rest: rest, table: TableFavorites},
		Watched:    &RestSnapshotRepository{rest: rest, table: TableWatched},
		Reviews:    &RestReviewRepository{rest: rest},
	}
}

type snapshotRow struct {
	MovieID     int64   `json:"movie_id"`
	Title       string  `json:"title"`
	PosterPath  *string `json:"poster_path"`
	Overview    *string `json:"overview"`
	ReleaseDate *string `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
}

func newSnapshotRow(s models.MovieSnapshot) snapshotRow {
	return snapshotRow{
		MovieID:     s.MovieID,
		Title:       s.Title,
		PosterPath:  nullable(s.PosterPath),
		Overview:    nullable(s.Overview),
		ReleaseDate: nullable(s.ReleaseDate),
		VoteAverage: s.VoteAverage,
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func firstRow[T any](rows []T) (T, error) {
	var zero T
	if len(rows) == 0 {
		return zero, ErrNotFound
	}
	return rows[0], nil
}

// RestListRepository stores lists through the REST interface.
type RestListRepository struct {
	rest *supabase.RestClient
}

// ListByUser returns the user's lists, newest first.
func (r *RestListRepository) ListByUser(ctx context.Context, userID string) ([]models.List, error) {
	lists := []models.List{}
	err := r.rest.From(TableLists).Select("*").Eq("user_id", userID).Order("created_at", false).Get(ctx, &lists)
	if err != nil {
		return nil, fmt.Errorf("select lists: %w", translate(err))
	}
	return lists, nil
}

// SearchByName returns the user's lists whose name contains substr, ignoring case,
// newest first.
func (r *RestListRepository) SearchByName(ctx context.Context, userID, substr string) ([]models.List, error) {
	pattern := strings.ReplaceAll(escapeLike(substr), "*", "")
	lists := []models.List{}
	err := r.rest.From(TableLists).Select("*").Eq("user_id", userID).ILike("name", pattern).Order("created_at", false).Get(ctx, &lists)
	if err != nil {
		return nil, fmt.Errorf("search lists: %w", translate(err))
	}
	return lists, nil
}

// Get returns one list.
func (r *RestListRepository) Get(ctx context.Context, listID string) (models.List, error) {
	var list models.List
	if err := r.rest.From(TableLists).Select("*").Eq("id", listID).Single().Get(ctx, &list); err != nil {
		return models.List{}, fmt.Errorf("select list: %w", translate(err))
	}
	return list, nil
}

// Create inserts a list and returns the stored row.
func (r *RestListRepository) Create(ctx context.Context, list models.List) (models.List, error) {
	row := struct {
		UserID      string `json:"user_id"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}{list.UserID, list.Name, list.Description}

	var created []models.List
	if err := r.rest.From(TableLists).Select("*").Insert(ctx, []any{row}, &created); err != nil {
		return models.List{}, fmt.Errorf("insert list: %w", translate(err))
	}
	return firstRow(created)
}

// RestListMovieRepository stores list memberships through the REST interface.
type RestListMovieRepository struct {
	rest *supabase.RestClient
}

// ListByList returns a list's titles, most recently added first.
func (r *RestListMovieRepository) ListByList(ctx context.Context, listID string) ([]models.ListMovie, error) {
	movies := []models.ListMovie{}
	err := r.rest.From(TableListMovies).Select("*").Eq("list_id", listID).Order("added_at", false).Get(ctx, &movies)
	if err != nil {
		return nil, fmt.Errorf("select list movies: %w", translate(err))
	}
	return movies, nil
}

// Add inserts a membership row.
func (r *RestListMovieRepository) Add(ctx context.Context, movie models.ListMovie) (models.ListMovie, error) {
	row := struct {
		ListID string `json:"list_id"`
		snapshotRow
	}{movie.ListID, newSnapshotRow(movie.MovieSnapshot)}

	var created []models.ListMovie
	if err := r.rest.From(TableListMovies).Select("*").Insert(ctx, []any{row}, &created); err != nil {
		return models.ListMovie{}, fmt.Errorf("insert list movie: %w", translate(err))
	}
	return firstRow(created)
}

// Remove deletes every membership of movieID in the list.
func (r *RestListMovieRepository) Remove(ctx context.Context, listID string, movieID int64) error {
	if err := r.rest.From(TableListMovies).Eq("list_id", listID).EqInt("movie_id", movieID).Delete(ctx); err != nil {
		return fmt.Errorf("delete list movie: %w", translate(err))
	}
	return nil
}

// Exists reports whether movieID is in the list.
func (r *RestListMovieRepository) Exists(ctx context.Context, listID string, movieID int64) (bool, error) {
	var rows []struct {
		ID string `json:"id"`
	}
	err := r.rest.From(TableListMovies).Select("id").Eq("list_id", listID).EqInt("movie_id", movieID).Limit(1).Get(ctx, &rows)
	if err != nil {
		return false, fmt.Errorf("select list movie: %w", translate(err))
	}
	return len(rows) > 0, nil
}

// Count returns the number of memberships in the list.
func (r *RestListMovieRepository) Count(ctx context.Context, listID string) (int, error) {
	var rows []struct {
		ID string `json:"id"`
	}
	if err := r.rest.From(TableListMovies).Select("id").Eq("list_id", listID).Get(ctx, &rows); err != nil {
		return 0, fmt.Errorf("count list movies: %w", translate(err))
	}
	return len(rows), nil
}

// RestSnapshotRepository stores favorites or watched rows through the REST interface.
type RestSnapshotRepository struct {
	rest  *supabase.RestClient
	table string
}

// ListByUser returns the user's rows, newest first.
func (r *RestSnapshotRepository) ListByUser(ctx context.Context, userID string) ([]models.UserMovie, error) {
	movies := []models.UserMovie{}
	err := r.rest.From(r.table).Select("*").Eq("user_id", userID).Order("created_at", false).Get(ctx, &movies)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", r.table, translate(err))
	}
	return movies, nil
}

// Add inserts a row.
func (r *RestSnapshotRepository) Add(ctx context.Context, movie models.UserMovie) (models.UserMovie, error) {
	row := struct {
		UserID string `json:"user_id"`
		snapshotRow
	}{movie.UserID, newSnapshotRow(movie.MovieSnapshot)}

	var created []models.UserMovie
	if err := r.rest.From(r.table).Select("*").Insert(ctx, []any{row}, &created); err != nil {
		return models.UserMovie{}, fmt.Errorf("insert %s: %w", r.table, translate(err))
	}
	return firstRow(created)
}

// Remove deletes the user's rows for movieID.
func (r *RestSnapshotRepository) Remove(ctx context.Context, userID string, movieID int64) error {
	if err := r.rest.From(r.table).Eq("user_id", userID).EqInt("movie_id", movieID).Delete(ctx); err != nil {
		return fmt.Errorf("delete %s: %w", r.table, translate(err))
	}
	return nil
}

// Exists reports whether the user has a row for movieID.
func (r *RestSnapshotRepository) Exists(ctx context.Context, userID string, movieID int64) (bool, error) {
	var rows []struct {
		ID string `json:"id"`
	}
	err := r.rest.From(r.table).Select("id").Eq("user_id", userID).EqInt("movie_id", movieID).Limit(1).Get(ctx, &rows)
	if err != nil {
		return false, fmt.Errorf("select %s: %w", r.table, translate(err))
	}
	return len(rows) > 0, nil
}

// RestReviewRepository stores reviews through the REST interface.
type RestReviewRepository struct {
	rest *supabase.RestClient
}

// ListByUser returns the user's reviews, newest first.
func (r *RestReviewRepository) ListByUser(ctx context.Context, userID string) ([]models.Review, error) {
	reviews := []models.Review{}
	err := r.rest.From(TableReviews).Select("*").Eq("user_id", userID).Order("created_at", false).Get(ctx, &reviews)
	if err != nil {
		return nil, fmt.Errorf("select reviews: %w", translate(err))
	}
	return reviews, nil
}

// Get returns the user's review of movieID.
func (r *RestReviewRepository) Get(ctx context.Context, userID string, movieID int64) (models.Review, error) {
	var reviews []models.Review
	err := r.rest.From(TableReviews).Select("*").Eq("user_id", userID).EqInt("movie_id", movieID).Limit(1).Get(ctx, &reviews)
	if err != nil {
		return models.Review{}, fmt.Errorf("select review: %w", translate(err))
	}
	return firstRow(reviews)
}

// Upsert creates or replaces the user's review of the title.
func (r *RestReviewRepository) Upsert(ctx context.Context, review models.Review) (models.Review, error) {
	updatedAt := review.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}
	row := struct {
		UserID     string    `json:"user_id"`
		MovieID    int64     `json:"movie_id"`
		Title      string    `json:"title"`
		PosterPath *string   `json:"poster_path"`
		Rating     int       `json:"rating"`
		ReviewText string    `json:"review_text"`
		UpdatedAt  time.Time `json:"updated_at"`
	}{review.UserID, review.MovieID, review.Title, nullable(review.PosterPath), review.Rating, review.ReviewText, updatedAt}

	var stored []models.Review
	if err := r.rest.From(TableReviews).Select("*").Upsert(ctx, []any{row}, "user_id,movie_id", &stored); err != nil {
		return models.Review{}, fmt.Errorf("upsert review: %w", translate(err))
	}
	return firstRow(stored)
}

var (
	_ ListRepository      = (*RestListRepository)(nil)
	_ ListMovieRepository = (*RestListMovieRepository)(nil)
	_ SnapshotRepository  = (*RestSnapshotRepository)(nil)
	_ ReviewRepository    = (*RestReviewRepository)(nil)
)
