package library

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/hedibld92/Grimovies/internal/models"
)

// Stats counts what the profile screen shows.
type Stats struct {
	WatchlistCount int `json:"watchlist_count"`
	FavoritesCount int `json:"favorites_count"`
	WatchedCount   int `json:"watched_count"`
	ReviewsCount   int `json:"reviews_count"`
}

// Profile is the profile screen payload.
type Profile struct {
	Lists []models.List `json:"lists"`
	Stats Stats         `json:"stats"`
}

// Profile provisions the default lists if needed, then loads the counters concurrently.
// Any counter failure fails the whole profile.
func (s *Service) Profile(ctx context.Context, userID string) (Profile, error) {
	lists, err := s.EnsureDefaultLists(ctx, userID)
	if err != nil {
		return Profile{}, err
	}

	var stats Stats
	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		favorites, err := s.GetUserFavorites(ctx, userID)
		stats.FavoritesCount = len(favorites)
		return err
	})
	p.Go(func(ctx context.Context) error {
		watched, err := s.GetUserWatched(ctx, userID)
		stats.WatchedCount = len(watched)
		return err
	})
	p.Go(func(ctx context.Context) error {
		reviews, err := s.GetUserReviews(ctx, userID)
		stats.ReviewsCount = len(reviews)
		return err
	})
	if watchlist, ok := FindByName(lists, WatchlistName); ok {
		p.Go(func(ctx context.Context) error {
			count, err := s.listMovies.Count(ctx, watchlist.ID)
			if err != nil {
				return fail(ctx, "watchlistCount", err)
			}
			stats.WatchlistCount = count
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return Profile{}, fmt.Errorf("profile: %w", err)
	}

	return Profile{Lists: lists, Stats: stats}, nil
}

// MovieStatus is the per-title state shown on the detail screen.
type MovieStatus struct {
	InWatchlist bool           `json:"in_watchlist"`
	InFavorites bool           `json:"in_favorites"`
	Watched     bool           `json:"watched"`
	Review      *models.Review `json:"review,omitempty"`
}

// Status reports where movieID appears in the user's library. Lookup failures read as absent.
func (s *Service) Status(ctx context.Context, userID string, movieID int64) MovieStatus {
	status := MovieStatus{
		InFavorites: s.IsMovieInFavorites(ctx, userID, movieID),
		Watched:     s.IsWatched(ctx, userID, movieID),
	}
	if watchlist, err := s.Watchlist(ctx, userID); err == nil {
		status.InWatchlist = s.IsMovieInList(ctx, watchlist.ID, movieID)
	}
	if review, err := s.GetReview(ctx, userID, movieID); err == nil {
		status.Review = &review
	}
	return status
}

// ToggleWatchlist adds the title to the watchlist, or removes it when present.
// It reports whether the title is in the watchlist afterwards.
func (s *Service) ToggleWatchlist(ctx context.Context, userID string, movie models.MovieSnapshot) (bool, error) {
	watchlist, err := s.Watchlist(ctx, userID)
	if err != nil {
		return false, err
	}

	if s.IsMovieInList(ctx, watchlist.ID, movie.MovieID) {
		if err := s.RemoveMovieFromList(ctx, watchlist.ID, movie.MovieID); err != nil {
			return true, err
		}
		return false, nil
	}
	if _, err := s.AddMovieToList(ctx, watchlist.ID, movie); err != nil {
		return false, err
	}
	return true, nil
}

// ToggleFavorite adds the title to the favorites, or removes it when present.
// It reports whether the title is a favorite afterwards.
func (s *Service) ToggleFavorite(ctx context.Context, userID string, movie models.MovieSnapshot) (bool, error) {
	if s.IsMovieInFavorites(ctx, userID, movie.MovieID) {
		if err := s.RemoveFromFavorites(ctx, userID, movie.MovieID); err != nil {
			return true, err
		}
		return false, nil
	}
	if _, err := s.AddToFavorites(ctx, userID, movie); err != nil {
		return false, err
	}
	return true, nil
}
