package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hedibld92/Grimovies/internal/library"
	"github.com/hedibld92/Grimovies/internal/models"
	"github.com/hedibld92/Grimovies/internal/repositories"
)

// Messages shown when a library call fails without a more specific reason.
const (
	MsgLoadFailed   = "Impossible de charger vos données"
	MsgUpdateFailed = "Impossible de modifier votre liste"
)

// LibraryHandler serves the signed-in user's lists, favorites, watched titles and reviews.
// Every route sits behind RequireUser.
type LibraryHandler struct {
	Library Library
}

type createListRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type reviewRequest struct {
	models.MovieSnapshot
	Rating     *int   `json:"rating"`
	ReviewText string `json:"review_text"`
}

func (h LibraryHandler) fail(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	ctx := r.Context()
	switch {
	case errors.Is(err, library.ErrInvalidRating):
		respondError(ctx, w, http.StatusBadRequest, library.ErrInvalidRating.Error())
	case errors.Is(err, library.ErrInvalidInput):
		respondError(ctx, w, http.StatusBadRequest, err.Error())
	case errors.Is(err, library.ErrWatchlistMissing):
		respondError(ctx, w, http.StatusConflict, library.ErrWatchlistMissing.Error())
	case errors.Is(err, repositories.ErrNotFound):
		respondError(ctx, w, http.StatusNotFound, "introuvable")
	case errors.Is(err, repositories.ErrConflict):
		respondError(ctx, w, http.StatusConflict, fallback)
	default:
		respondError(ctx, w, http.StatusBadGateway, fallback)
	}
}

func (h LibraryHandler) decodeMovie(w http.ResponseWriter, r *http.Request) (models.MovieSnapshot, bool) {
	var movie models.MovieSnapshot
	if err := decodeJSON(w, r, &movie); err != nil {
		respondError(r.Context(), w, http.StatusBadRequest, "invalid request body")
		return models.MovieSnapshot{}, false
	}
	return movie, true
}

func (h LibraryHandler) movieID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := idParam(r, "movieID")
	if err != nil {
		respondError(r.Context(), w, http.StatusBadRequest, err.Error())
		return 0, false
	}
	return id, true
}

// Lists handles GET /api/v1/lists. The optional q parameter keeps lists whose name
// contains it.
func (h LibraryHandler) Lists(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lists, err := h.Library.SearchLists(ctx, userFrom(ctx).ID, r.URL.Query().Get("q"))
	if err != nil {
		h.fail(w, r, err, MsgLoadFailed)
		return
	}
	respondJSON(ctx, w, http.StatusOK, map[string]any{"lists": lists})
}

// CreateList handles POST /api/v1/lists.
func (h LibraryHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createListRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(ctx, w, http.StatusBadRequest, "invalid request body")
		return
	}

	list, err := h.Library.CreateList(ctx, userFrom(ctx).ID, req.Name, req.Description)
	if err != nil {
		h.fail(w, r, err, "Impossible de créer la liste")
		return
	}
	respondJSON(ctx, w, http.StatusCreated, list)
}

// RequireListOwner guards the /lists/{id} routes: lists of other users are reported
// as missing before any membership is read or changed.
func (h LibraryHandler) RequireListOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if _, err := h.Library.OwnedList(ctx, userFrom(ctx).ID, chi.URLParam(r, "id")); err != nil {
			h.fail(w, r, err, MsgLoadFailed)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// List handles GET /api/v1/lists/{id}.
func (h LibraryHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	list, err := h.Library.GetListWithMovies(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err, MsgLoadFailed)
		return
	}
	respondJSON(ctx, w, http.StatusOK, list)
}

// AddListMovie handles POST /api/v1/lists/{id}/movies.
func (h LibraryHandler) AddListMovie(w http.ResponseWriter, r *http.Request) {
	movie, ok := h.decodeMovie(w, r)
	if !ok {
		return
	}
	ctx := r.Context()

	stored, err := h.Library.AddMovieToList(ctx, chi.URLParam(r, "id"), movie)
	if err != nil {
		h.fail(w, r, err, MsgUpdateFailed)
		return
	}
	respondJSON(ctx, w, http.StatusCreated, stored)
}

// RemoveListMovie handles DELETE /api/v1/lists/{id}/movies/{movieID}.
func (h LibraryHandler) RemoveListMovie(w http.ResponseWriter, r *http.Request) {
	movieID, ok := h.movieID(w, r)
	if !ok {
		return
	}
	if err := h.Library.RemoveMovieFromList(r.Context(), chi.URLParam(r, "id"), movieID); err != nil {
		h.fail(w, r, err, MsgUpdateFailed)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListMovieStatus handles GET /api/v1/lists/{id}/movies/{movieID}.
func (h LibraryHandler) ListMovieStatus(w http.ResponseWriter, r *http.Request) {
	movieID, ok := h.movieID(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	present := h.Library.IsMovieInList(ctx, chi.URLParam(r, "id"), movieID)
	respondJSON(ctx, w, http.StatusOK, map[string]bool{"present": present})
}

// Favorites handles GET /api/v1/favorites.
func (h LibraryHandler) Favorites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	movies, err := h.Library.GetUserFavorites(ctx, userFrom(ctx).ID)
	if err != nil {
		h.fail(w, r, err, MsgLoadFailed)
		return
	}
	respondJSON(ctx, w, http.StatusOK, map[string]any{"movies": movies})
}

// AddFavorite handles POST /api/v1/favorites.
func (h LibraryHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	movie, ok := h.decodeMovie(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	stored, err := h.Library.AddToFavorites(ctx, userFrom(ctx).ID, movie)
	if err != nil {
		h.fail(w, r, err, "Impossible de modifier vos favoris")
		return
	}
	respondJSON(ctx, w, http.StatusCreated, stored)
}

// RemoveFavorite handles DELETE /api/v1/favorites/{movieID}.
func (h LibraryHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	movieID, ok := h.movieID(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	if err := h.Library.RemoveFromFavorites(ctx, userFrom(ctx).ID, movieID); err != nil {
		h.fail(w, r, err, "Impossible de modifier vos favoris")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// FavoriteStatus handles GET /api/v1/favorites/{movieID}.
func (h LibraryHandler) FavoriteStatus(w http.ResponseWriter, r *http.Request) {
	movieID, ok := h.movieID(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	present := h.Library.IsMovieInFavorites(ctx, userFrom(ctx).ID, movieID)
	respondJSON(ctx, w, http.StatusOK, map[string]bool{"present": present})
}

// ToggleFavorite handles POST /api/v1/favorites/toggle.
func (h LibraryHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	movie, ok := h.decodeMovie(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	present, err := h.Library.ToggleFavorite(ctx, userFrom(ctx).ID, movie)
	if err != nil {
		h.fail(w, r, err, "Impossible de modifier vos favoris")
		return
	}
	respondJSON(ctx, w, http.StatusOK, map[string]bool{"present": present})
}

// Watched handles GET /api/v1/watched.
func (h LibraryHandler) Watched(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	movies, err := h.Library.GetUserWatched(ctx, userFrom(ctx).ID)
	if err != nil {
		h.fail(w, r, err, MsgLoadFailed)
		return
	}
	respondJSON(ctx, w, http.StatusOK, map[string]any{"movies": movies})
}

// MarkWatched handles POST /api/v1/watched.
func (h LibraryHandler) MarkWatched(w http.ResponseWriter, r *http.Request) {
	movie, ok := h.decodeMovie(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	stored, err := h.Library.MarkAsWatched(ctx, userFrom(ctx).ID, movie)
	if err != nil {
		h.fail(w, r, err, MsgUpdateFailed)
		return
	}
	respondJSON(ctx, w, http.StatusCreated, stored)
}

// RemoveWatched handles DELETE /api/v1/watched/{movieID}.
func (h LibraryHandler) RemoveWatched(w http.ResponseWriter, r *http.Request) {
	movieID, ok := h.movieID(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	if err := h.Library.RemoveFromWatched(ctx, userFrom(ctx).ID, movieID); err != nil {
		h.fail(w, r, err, MsgUpdateFailed)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// WatchedStatus handles GET /api/v1/watched/{movieID}.
func (h LibraryHandler) WatchedStatus(w http.ResponseWriter, r *http.Request) {
	movieID, ok := h.movieID(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	present := h.Library.IsWatched(ctx, userFrom(ctx).ID, movieID)
	respondJSON(ctx, w, http.StatusOK, map[string]bool{"present": present})
}

// Reviews handles GET /api/v1/reviews.
func (h LibraryHandler) Reviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reviews, err := h.Library.GetUserReviews(ctx, userFrom(ctx).ID)
	if err != nil {
		h.fail(w, r, err, MsgLoadFailed)
		return
	}
	respondJSON(ctx, w, http.StatusOK, map[string]any{"reviews": reviews})
}

// PutReview handles PUT /api/v1/reviews.
func (h LibraryHandler) PutReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req reviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(ctx, w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Rating == nil {
		respondError(ctx, w, http.StatusBadRequest, library.ErrInvalidRating.Error())
		return
	}

	review, err := h.Library.AddOrUpdateReview(ctx, userFrom(ctx).ID, req.MovieSnapshot, *req.Rating, req.ReviewText)
	if err != nil {
		h.fail(w, r, err, "Impossible d'enregistrer votre avis")
		return
	}
	respondJSON(ctx, w, http.StatusOK, review)
}

// Review handles GET /api/v1/reviews/{movieID}.
func (h LibraryHandler) Review(w http.ResponseWriter, r *http.Request) {
	movieID, ok := h.movieID(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	review, err := h.Library.GetReview(ctx, userFrom(ctx).ID, movieID)
	if err != nil {
		h.fail(w, r, err, MsgLoadFailed)
		return
	}
	respondJSON(ctx, w, http.StatusOK, review)
}

// ToggleWatchlist handles POST /api/v1/watchlist/toggle.
func (h LibraryHandler) ToggleWatchlist(w http.ResponseWriter, r *http.Request) {
	movie, ok := h.decodeMovie(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	present, err := h.Library.ToggleWatchlist(ctx, userFrom(ctx).ID, movie)
	if err != nil {
		h.fail(w, r, err, MsgUpdateFailed)
		return
	}
	respondJSON(ctx, w, http.StatusOK, map[string]bool{"present": present})
}

// Profile handles GET /api/v1/profile.
func (h LibraryHandler) Profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := userFrom(ctx)

	profile, err := h.Library.Profile(ctx, user.ID)
	if err != nil {
		h.fail(w, r, err, MsgLoadFailed)
		return
	}
	respondJSON(ctx, w, http.StatusOK, map[string]any{
		"user":  user,
		"lists": profile.Lists,
		"stats": profile.Stats,
	})
}

// MovieStatus handles GET /api/v1/movies/{movieID}/status.
func (h LibraryHandler) MovieStatus(w http.ResponseWriter, r *http.Request) {
	movieID, ok := h.movieID(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	respondJSON(ctx, w, http.StatusOK, h.Library.Status(ctx, userFrom(ctx).ID, movieID))
}
