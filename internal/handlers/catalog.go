package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/hedibld92/Grimovies/internal/catalog"
	"github.com/hedibld92/Grimovies/internal/discovery"
)

// CatalogHandler serves the browse, search and detail screens.
type CatalogHandler struct {
	Discovery Discovery
}

// Home handles GET /api/v1/home.
func (h CatalogHandler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	home, err := h.Discovery.Home(ctx)
	if err != nil {
		respondError(ctx, w, catalogStatus(err), discovery.ErrHomeUnavailable.Error())
		return
	}
	respondJSON(ctx, w, http.StatusOK, home)
}

// Genres handles GET /api/v1/genres.
func (h CatalogHandler) Genres(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	genres, err := h.Discovery.Genres(ctx)
	if err != nil {
		respondError(ctx, w, catalogStatus(err), "Impossible de charger les genres")
		return
	}
	respondJSON(ctx, w, http.StatusOK, map[string]any{"genres": genres})
}

// Search handles GET /api/v1/search?q=&tab=&genre=&sort=.
func (h CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	params := r.URL.Query()

	q := discovery.Query{
		Text:   params.Get("q"),
		Tab:    strings.ToLower(params.Get("tab")),
		SortBy: params.Get("sort"),
	}
	if raw := params.Get("genre"); raw != "" {
		genreID, err := strconv.Atoi(raw)
		if err != nil || genreID <= 0 {
			respondError(ctx, w, http.StatusBadRequest, "invalid genre")
			return
		}
		q.GenreID = genreID
	}
	if q.Tab != "" && q.Tab != discovery.TabAll && q.Tab != discovery.TabMovies && q.Tab != discovery.TabTV {
		respondError(ctx, w, http.StatusBadRequest, "invalid tab")
		return
	}
	if q.SortBy != "" && !catalog.ValidSort(q.SortBy) {
		respondError(ctx, w, http.StatusBadRequest, "invalid sort")
		return
	}

	results, err := h.Discovery.Search(ctx, q)
	if err != nil {
		respondError(ctx, w, catalogStatus(err), discovery.ErrSearchFailed.Error())
		return
	}
	respondJSON(ctx, w, http.StatusOK, map[string]any{"results": results})
}

// Media handles GET /api/v1/media/{type}/{id}.
func (h CatalogHandler) Media(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	mediaType := chi.URLParam(r, "type")
	if mediaType != catalog.MediaTypeMovie && mediaType != catalog.MediaTypeTV {
		respondError(ctx, w, http.StatusBadRequest, "invalid media type")
		return
	}
	id, err := idParam(r, "id")
	if err != nil {
		respondError(ctx, w, http.StatusBadRequest, err.Error())
		return
	}

	detail, err := h.Discovery.Detail(ctx, mediaType, id)
	if err != nil {
		respondError(ctx, w, catalogStatus(err), "Impossible de charger les détails")
		return
	}
	respondJSON(ctx, w, http.StatusOK, detailResponse{Detail: detail, TrailerURL: detail.TrailerURL()})
}

type detailResponse struct {
	discovery.Detail
	TrailerURL string `json:"trailer_url,omitempty"`
}

// Feed handles GET /api/v1/catalog/{feed}?page=.
func (h CatalogHandler) Feed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondError(ctx, w, http.StatusBadRequest, "invalid page")
			return
		}
		page = n
	}

	result, err := h.Discovery.Feed(ctx, chi.URLParam(r, "feed"), page)
	if errors.Is(err, discovery.ErrUnknownFeed) {
		respondError(ctx, w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		respondError(ctx, w, catalogStatus(err), "Impossible de charger la liste")
		return
	}
	respondJSON(ctx, w, http.StatusOK, result)
}

func catalogStatus(err error) int {
	if errors.Is(err, catalog.ErrNotConfigured) {
		return http.StatusServiceUnavailable
	}
	if errors.Is(err, catalog.ErrInvalidMediaType) {
		return http.StatusBadRequest
	}
	var statusErr *catalog.StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}
