// Package preferences holds device-wide user preferences.
package preferences

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hedibld92/Grimovies/internal/localstore"
	"github.com/hedibld92/Grimovies/internal/logging"
	"github.com/hedibld92/Grimovies/internal/models"
)

// ThemeKey is the local store key of the theme preference.
const ThemeKey = "theme"

// ErrInvalidTheme is returned by Set for anything but dark or light.
var ErrInvalidTheme = errors.New("invalid theme")

// Store is the device-local persistence of preferences. Get returns
// localstore.ErrNotFound for a missing key.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Palette is the colour set of a theme.
type Palette struct {
	Primary       string `json:"primary"`
	Secondary     string `json:"secondary"`
	Background    string `json:"background"`
	CardBG        string `json:"card_bg"`
	Surface       string `json:"surface"`
	TextPrimary   string `json:"text_primary"`
	TextSecondary string `json:"text_secondary"`
	Border        string `json:"border"`
	Accent        string `json:"accent"`
	Success       string `json:"success"`
	Warning       string `json:"warning"`
	Error         string `json:"error"`
	Shadow        string `json:"shadow"`
	Overlay       string `json:"overlay"`
}

// Palettes maps each theme to its colours.
var Palettes = map[models.Theme]Palette{
	models.ThemeDark: {
		Primary:       "#E50914",
		Secondary:     "#221F1F",
		Background:    "#141414",
		CardBG:        "#2F2F2F",
		Surface:       "#1F1F1F",
		TextPrimary:   "#FFFFFF",
		TextSecondary: "#B3B3B3",
		Border:        "#333333",
		Accent:        "#FFD700",
		Success:       "#46D369",
		Warning:       "#FF9500",
		Error:         "#FF375F",
		Shadow:        "rgba(0, 0, 0, 0.3)",
		Overlay:       "rgba(0, 0, 0, 0.7)",
	},
	models.ThemeLight: {
		Primary:       "#E50914",
		Secondary:     "#F5F5F5",
		Background:    "#FFFFFF",
		CardBG:        "#F8F9FA",
		Surface:       "#FFFFFF",
		TextPrimary:   "#212529",
		TextSecondary: "#6C757D",
		Border:        "#DEE2E6",
		Accent:        "#FFC107",
		Success:       "#28A745",
		Warning:       "#FD7E14",
		Error:         "#DC3545",
		Shadow:        "rgba(0, 0, 0, 0.1)",
		Overlay:       "rgba(0, 0, 0, 0.5)",
	},
}

// Snapshot is a consistent read of the theme state.
type Snapshot struct {
	Theme   models.Theme `json:"theme"`
	IsDark  bool         `json:"is_dark"`
	Loading bool         `json:"loading"`
	Palette Palette      `json:"palette"`
}

// ThemeState is the process-wide theme preference. It starts dark and loading
// until Load has read the stored value.
type ThemeState struct {
	store Store

	mu      sync.RWMutex
	dark    bool
	loading bool
}

// NewThemeState builds a ThemeState persisted in store.
func NewThemeState(store Store) *ThemeState {
	return &ThemeState{store: store, dark: true, loading: true}
}

// Load reads the stored preference. A missing or unreadable value keeps the
// default; the state is ready afterwards either way.
func (t *ThemeState) Load(ctx context.Context) {
	value, err := t.store.Get(ctx, ThemeKey)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.loading = false
	if err != nil {
		if !errors.Is(err, localstore.ErrNotFound) {
			logging.FromContext(ctx).Error("theme load failed", "error", err)
		}
		return
	}
	t.dark = value == string(models.ThemeDark)
}

// IsDark reports whether the dark theme is active.
func (t *ThemeState) IsDark() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.dark
}

// Loading reports whether Load has not completed yet.
func (t *ThemeState) Loading() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.loading
}

// Theme returns the active theme.
func (t *ThemeState) Theme() models.Theme {
	if t.IsDark() {
		return models.ThemeDark
	}
	return models.ThemeLight
}

// Snapshot returns the active theme with its palette.
func (t *ThemeState) Snapshot() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	theme := models.ThemeLight
	if t.dark {
		theme = models.ThemeDark
	}
	return Snapshot{Theme: theme, IsDark: t.dark, Loading: t.loading, Palette: Palettes[theme]}
}

// Toggle flips the theme and persists it. Persistence failures are logged; the
// in-memory theme changes regardless.
func (t *ThemeState) Toggle(ctx context.Context) models.Theme {
	t.mu.Lock()
	t.dark = !t.dark
	theme := models.ThemeLight
	if t.dark {
		theme = models.ThemeDark
	}
	t.mu.Unlock()

	t.persist(ctx, theme)
	return theme
}

// Set selects theme and persists it.
func (t *ThemeState) Set(ctx context.Context, theme models.Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, theme)
	}

	t.mu.Lock()
	t.dark = theme == models.ThemeDark
	t.mu.Unlock()

	t.persist(ctx, theme)
	return nil
}

func (t *ThemeState) persist(ctx context.Context, theme models.Theme) {
	if err := t.store.Set(ctx, ThemeKey, string(theme)); err != nil {
		logging.FromContext(ctx).Error("theme save failed", "theme", theme, "error", err)
		return
	}
	logging.FromContext(ctx).Debug("theme changed", "theme", theme)
}
