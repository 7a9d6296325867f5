package models

import "time"

// User is the account identity shared by the backend and the device-local fallback.
type User struct {
	ID               string     `json:"id"`
	Email            string     `json:"email"`
	CreatedAt        time.Time  `json:"created_at"`
	EmailConfirmedAt *time.Time `json:"email_confirmed_at,omitempty"`
}

// Session sources.
const (
	SessionSourceRemote = "remote"
	SessionSourceLocal  = "local"
)

// Session is the bearer credential for the signed-in user. Local sessions carry an opaque
// token that only the device-local provider understands.
type Session struct {
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	User         User       `json:"user"`
	Source       string     `json:"source"`
}

// MovieSnapshot is the denormalized copy of catalog fields stored next to every user row.
type MovieSnapshot struct {
	MovieID     int64   `json:"movie_id"`
	Title       string  `json:"title"`
	PosterPath  string  `json:"poster_path,omitempty"`
	Overview    string  `json:"overview,omitempty"`
	ReleaseDate string  `json:"release_date,omitempty"`
	VoteAverage float64 `json:"vote_average"`

	// MirroredPoster is the location of the mirrored poster copy, filled on reads. Never stored.
	MirroredPoster string `json:"mirrored_poster,omitempty"`
}

// List is a named collection of titles owned by a user.
type List struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListMovie is a membership row of list_movies.
type ListMovie struct {
	ID     string `json:"id"`
	ListID string `json:"list_id"`
	MovieSnapshot
	AddedAt time.Time `json:"added_at"`
}

// ListWithMovies is a list together with its memberships, most recent first.
type ListWithMovies struct {
	List
	Movies []ListMovie `json:"movies"`
}

// UserMovie is a row of user_favorites or user_watched.
type UserMovie struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	MovieSnapshot
	CreatedAt time.Time `json:"created_at"`
}

// Review is the single star rating and text a user keeps for a title.
type Review struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	MovieID    int64     `json:"movie_id"`
	Title      string    `json:"title"`
	PosterPath string    `json:"poster_path,omitempty"`
	Rating     int       `json:"rating"`
	ReviewText string    `json:"review_text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Review rating bounds.
const (
	MinRating = 0
	MaxRating = 10
)

// Theme is the persisted colour scheme preference.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeDark || t == ThemeLight
}
