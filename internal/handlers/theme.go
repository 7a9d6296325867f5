package handlers

import (
	"errors"
	"net/http"

	"github.com/hedibld92/Grimovies/internal/models"
	"github.com/hedibld92/Grimovies/internal/preferences"
)

// ThemeHandler exposes the theme preference.
type ThemeHandler struct {
	Theme ThemeState
}

type themeRequest struct {
	Theme models.Theme `json:"theme"`
}

// Get handles GET /api/v1/theme.
func (h ThemeHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondJSON(r.Context(), w, http.StatusOK, h.Theme.Snapshot())
}

// Put handles PUT /api/v1/theme.
func (h ThemeHandler) Put(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req themeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(ctx, w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.Theme.Set(ctx, req.Theme); err != nil {
		if errors.Is(err, preferences.ErrInvalidTheme) {
			respondError(ctx, w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(ctx, w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(ctx, w, http.StatusOK, h.Theme.Snapshot())
}

// Toggle handles POST /api/v1/theme/toggle.
func (h ThemeHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.Theme.Toggle(ctx)
	respondJSON(ctx, w, http.StatusOK, h.Theme.Snapshot())
}
