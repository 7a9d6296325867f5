// Package library manages a user's lists, favorites, watched titles and reviews.
package library

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hedibld92/Grimovies/internal/logging"
	"github.com/hedibld92/Grimovies/internal/models"
	"github.com/hedibld92/Grimovies/internal/repositories"
)

var (
	// ErrInvalidRating is returned for a rating outside models.MinRating..models.MaxRating.
	ErrInvalidRating = errors.New("la note doit être comprise entre 0 et 10")
	// ErrInvalidInput is returned when a required field is empty.
	ErrInvalidInput = errors.New("invalid input")
	// ErrWatchlistMissing is returned when the user has no list named WatchlistName.
	ErrWatchlistMissing = errors.New("Liste de visionnage introuvable. Allez dans votre profil pour créer vos listes par défaut.")
)

// PosterMirror receives poster paths of titles the user just stored and reports where
// mirrored posters live.
type PosterMirror interface {
	Enqueue(posterPath string) bool
	Location(posterPath string) (string, bool)
}

// Service exposes the library operations. Each operation performs one backend call
// unless documented otherwise.
type Service struct {
	lists      repositories.ListRepository
	listMovies repositories.ListMovieRepository
	favorites  repositories.SnapshotRepository
	watched    repositories.SnapshotRepository
	reviews    repositories.ReviewRepository
	posters    PosterMirror
}

// Option customises a Service.
type Option func(*Service)

// WithPosterMirror mirrors posters of stored titles.
func WithPosterMirror(m PosterMirror) Option {
	return func(s *Service) { s.posters = m }
}

// NewService builds a Service over repos.
func NewService(repos repositories.Set, opts ...Option) *Service {
	s := &Service{
		lists:      repos.Lists,
		listMovies: repos.ListMovies,
		favorites:  repos.Favorites,
		watched:    repos.Watched,
		reviews:    repos.Reviews,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func fail(ctx context.Context, op string, err error) error {
	logging.FromContext(ctx).Error("library operation failed", "op", op, "error", err)
	return fmt.Errorf("%s: %w", op, err)
}

func (s *Service) mirror(posterPath string) {
	if s.posters == nil || posterPath == "" {
		return
	}
	s.posters.Enqueue(posterPath)
}

func (s *Service) annotate(snapshot *models.MovieSnapshot) {
	snapshot.MirroredPoster = ""
	if s.posters == nil || snapshot.PosterPath == "" {
		return
	}
	if location, ok := s.posters.Location(snapshot.PosterPath); ok {
		snapshot.MirroredPoster = location
	}
}

// GetUserLists returns the user's lists, newest first.
func (s *Service) GetUserLists(ctx context.Context, userID string) ([]models.List, error) {
	lists, err := s.lists.ListByUser(ctx, userID)
	if err != nil {
		return nil, fail(ctx, "getUserLists", err)
	}
	return lists, nil
}

// SearchLists returns the user's lists whose name contains query, ignoring case,
// newest first. A blank query returns every list.
func (s *Service) SearchLists(ctx context.Context, userID, query string) ([]models.List, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.GetUserLists(ctx, userID)
	}
	lists, err := s.lists.SearchByName(ctx, userID, query)
	if err != nil {
		return nil, fail(ctx, "searchLists", err)
	}
	return lists, nil
}

// GetListWithMovies returns a list and its titles, most recently added first.
func (s *Service) GetListWithMovies(ctx context.Context, listID string) (models.ListWithMovies, error) {
	list, err := s.lists.Get(ctx, listID)
	if err != nil {
		return models.ListWithMovies{}, fail(ctx, "getListWithMovies", err)
	}
	movies, err := s.listMovies.ListByList(ctx, listID)
	if err != nil {
		return models.ListWithMovies{}, fail(ctx, "getListWithMovies", err)
	}
	for i := range movies {
		s.annotate(&movies[i].MovieSnapshot)
	}
	return models.ListWithMovies{List: list, Movies: movies}, nil
}

// OwnedList returns the list when userID owns it. Lists of other users are reported as
// repositories.ErrNotFound.
func (s *Service) OwnedList(ctx context.Context, userID, listID string) (models.List, error) {
	list, err := s.lists.Get(ctx, listID)
	if err != nil {
		return models.List{}, fail(ctx, "ownedList", err)
	}
	if list.UserID != userID {
		return models.List{}, fmt.Errorf("ownedList: %w", repositories.ErrNotFound)
	}
	return list, nil
}

// CreateList creates a list owned by userID.
func (s *Service) CreateList(ctx context.Context, userID, name, description string) (models.List, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.List{}, fmt.Errorf("createList: %w: name is required", ErrInvalidInput)
	}
	list, err := s.lists.Create(ctx, models.List{UserID: userID, Name: name, Description: description})
	if err != nil {
		return models.List{}, fail(ctx, "createList", err)
	}
	return list, nil
}

// AddMovieToList adds a title to a list. Adding a title twice stores two rows.
func (s *Service) AddMovieToList(ctx context.Context, listID string, movie models.MovieSnapshot) (models.ListMovie, error) {
	if err := validateSnapshot(movie); err != nil {
		return models.ListMovie{}, fmt.Errorf("addMovieToList: %w", err)
	}
	stored, err := s.listMovies.Add(ctx, models.ListMovie{ListID: listID, MovieSnapshot: movie})
	if err != nil {
		return models.ListMovie{}, fail(ctx, "addMovieToList", err)
	}
	s.mirror(movie.PosterPath)
	s.annotate(&stored.MovieSnapshot)
	return stored, nil
}

// RemoveMovieFromList removes every membership of movieID from a list.
func (s *Service) RemoveMovieFromList(ctx context.Context, listID string, movieID int64) error {
	if err := s.listMovies.Remove(ctx, listID, movieID); err != nil {
		return fail(ctx, "removeMovieFromList", err)
	}
	return nil
}

// IsMovieInList reports membership. Lookup failures are logged and read as false.
func (s *Service) IsMovieInList(ctx context.Context, listID string, movieID int64) bool {
	ok, err := s.listMovies.Exists(ctx, listID, movieID)
	if err != nil {
		_ = fail(ctx, "isMovieInList", err)
		return false
	}
	return ok
}

// GetUserFavorites returns the user's favorites, newest first.
func (s *Service) GetUserFavorites(ctx context.Context, userID string) ([]models.UserMovie, error) {
	movies, err := s.favorites.ListByUser(ctx, userID)
	if err != nil {
		return nil, fail(ctx, "getUserFavorites", err)
	}
	for i := range movies {
		s.annotate(&movies[i].MovieSnapshot)
	}
	return movies, nil
}

// AddToFavorites stores a title as a favorite.
func (s *Service) AddToFavorites(ctx context.Context, userID string, movie models.MovieSnapshot) (models.UserMovie, error) {
	if err := validateSnapshot(movie); err != nil {
		return models.UserMovie{}, fmt.Errorf("addToFavorites: %w", err)
	}
	stored, err := s.favorites.Add(ctx, models.UserMovie{UserID: userID, MovieSnapshot: movie})
	if err != nil {
		return models.UserMovie{}, fail(ctx, "addToFavorites", err)
	}
	s.mirror(movie.PosterPath)
	s.annotate(&stored.MovieSnapshot)
	return stored, nil
}

// RemoveFromFavorites removes a favorite.
func (s *Service) RemoveFromFavorites(ctx context.Context, userID string, movieID int64) error {
	if err := s.favorites.Remove(ctx, userID, movieID); err != nil {
		return fail(ctx, "removeFromFavorites", err)
	}
	return nil
}

// IsMovieInFavorites reports whether the title is a favorite. Failures read as false.
func (s *Service) IsMovieInFavorites(ctx context.Context, userID string, movieID int64) bool {
	ok, err := s.favorites.Exists(ctx, userID, movieID)
	if err != nil {
		_ = fail(ctx, "isMovieInFavorites", err)
		return false
	}
	return ok
}

// GetUserWatched returns the user's watched titles, newest first.
func (s *Service) GetUserWatched(ctx context.Context, userID string) ([]models.UserMovie, error) {
	movies, err := s.watched.ListByUser(ctx, userID)
	if err != nil {
		return nil, fail(ctx, "getUserWatched", err)
	}
	for i := range movies {
		s.annotate(&movies[i].MovieSnapshot)
	}
	return movies, nil
}

// MarkAsWatched records a watched title.
func (s *Service) MarkAsWatched(ctx context.Context, userID string, movie models.MovieSnapshot) (models.UserMovie, error) {
	if err := validateSnapshot(movie); err != nil {
		return models.UserMovie{}, fmt.Errorf("markAsWatched: %w", err)
	}
	stored, err := s.watched.Add(ctx, models.UserMovie{UserID: userID, MovieSnapshot: movie})
	if err != nil {
		return models.UserMovie{}, fail(ctx, "markAsWatched", err)
	}
	s.mirror(movie.PosterPath)
	s.annotate(&stored.MovieSnapshot)
	return stored, nil
}

// RemoveFromWatched forgets a watched title.
func (s *Service) RemoveFromWatched(ctx context.Context, userID string, movieID int64) error {
	if err := s.watched.Remove(ctx, userID, movieID); err != nil {
		return fail(ctx, "removeFromWatched", err)
	}
	return nil
}

// IsWatched reports whether the title was watched. Failures read as false.
func (s *Service) IsWatched(ctx context.Context, userID string, movieID int64) bool {
	ok, err := s.watched.Exists(ctx, userID, movieID)
	if err != nil {
		_ = fail(ctx, "isWatched", err)
		return false
	}
	return ok
}

// GetUserReviews returns the user's reviews, newest first.
func (s *Service) GetUserReviews(ctx context.Context, userID string) ([]models.Review, error) {
	reviews, err := s.reviews.ListByUser(ctx, userID)
	if err != nil {
		return nil, fail(ctx, "getUserReviews", err)
	}
	return reviews, nil
}

// AddOrUpdateReview stores the user's single review of a title.
func (s *Service) AddOrUpdateReview(ctx context.Context, userID string, movie models.MovieSnapshot, rating int, text string) (models.Review, error) {
	if rating < models.MinRating || rating > models.MaxRating {
		return models.Review{}, fmt.Errorf("addOrUpdateReview: %w", ErrInvalidRating)
	}
	if err := validateSnapshot(movie); err != nil {
		return models.Review{}, fmt.Errorf("addOrUpdateReview: %w", err)
	}

	review, err := s.reviews.Upsert(ctx, models.Review{
		UserID:     userID,
		MovieID:    movie.MovieID,
		Title:      movie.Title,
		PosterPath: movie.PosterPath,
		Rating:     rating,
		ReviewText: text,
	})
	if err != nil {
		return models.Review{}, fail(ctx, "addOrUpdateReview", err)
	}
	s.mirror(movie.PosterPath)
	return review, nil
}

// GetReview returns the user's review of movieID, or repositories.ErrNotFound.
func (s *Service) GetReview(ctx context.Context, userID string, movieID int64) (models.Review, error) {
	review, err := s.reviews.Get(ctx, userID, movieID)
	if errors.Is(err, repositories.ErrNotFound) {
		return models.Review{}, err
	}
	if err != nil {
		return models.Review{}, fail(ctx, "getReview", err)
	}
	return review, nil
}

func validateSnapshot(movie models.MovieSnapshot) error {
	if movie.MovieID <= 0 {
		return fmt.Errorf("%w: movie id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(movie.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	return nil
}
