package handlers

import (
	"context"
	"strings"
	"sync"

	"github.com/hedibld92/Grimovies/internal/auth"
	"github.com/hedibld92/Grimovies/internal/catalog"
	"github.com/hedibld92/Grimovies/internal/discovery"
	"github.com/hedibld92/Grimovies/internal/library"
	"github.com/hedibld92/Grimovies/internal/localstore"
	"github.com/hedibld92/Grimovies/internal/models"
	"github.com/hedibld92/Grimovies/internal/repositories"
	"github.com/hedibld92/Grimovies/internal/supabase"
)

type fakeAuth struct {
	mu      sync.Mutex
	state   auth.State
	session *models.Session
	result  auth.Result
	signIns int
}

func signedOutAuth() *fakeAuth {
	return &fakeAuth{state: auth.State{Status: auth.StatusAnonymous}}
}

func signedInAuth(source string) *fakeAuth {
	user := models.User{ID: "user-1", Email: "ana@example.com"}
	return &fakeAuth{
		state:   auth.State{Status: auth.StatusAuthenticated, User: &user, Source: source},
		session: &models.Session{AccessToken: "token-1", User: user, Source: source},
	}
}

func (f *fakeAuth) State() auth.State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *fakeAuth) Session() (models.Session, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.session == nil {
		return models.Session{}, false
	}
	return *f.session, true
}

func (f *fakeAuth) SignUp(context.Context, string, string, string) auth.Result {
	return f.result
}

func (f *fakeAuth) SignIn(context.Context, string, string) auth.Result {
	f.mu.Lock()
	f.signIns++
	f.mu.Unlock()
	return f.result
}

func (f *fakeAuth) SignOut(context.Context) auth.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = auth.State{Status: auth.StatusAnonymous}
	f.session = nil
	return auth.Result{Success: true}
}

type fakeDiscovery struct {
	home      discovery.Home
	homeErr   error
	lastQuery discovery.Query
	results   []catalog.Media
	detail    discovery.Detail
	detailErr error
	feedErr   error
}

func (f *fakeDiscovery) Home(context.Context) (discovery.Home, error) { return f.home, f.homeErr }

func (f *fakeDiscovery) Genres(context.Context) ([]catalog.Genre, error) {
	return []catalog.Genre{{ID: 28, Name: "Action"}}, nil
}

func (f *fakeDiscovery) Search(_ context.Context, q discovery.Query) ([]catalog.Media, error) {
	f.lastQuery = q
	return f.results, nil
}

func (f *fakeDiscovery) Detail(context.Context, string, int64) (discovery.Detail, error) {
	return f.detail, f.detailErr
}

func (f *fakeDiscovery) Feed(_ context.Context, name string, page int) (catalog.Page, error) {
	if f.feedErr != nil {
		return catalog.Page{}, f.feedErr
	}
	return catalog.Page{Page: page}, nil
}

// fakeLibrary overrides the methods a test needs; the rest panic through the nil interface.
type fakeLibrary struct {
	Library

	lists       []models.List
	list        models.ListWithMovies
	listErr     error
	created     []models.List
	toggleErr   error
	tokens      []string
	reviewSaved *models.Review
	added       []string
	removed     []string
}

func (f *fakeLibrary) OwnedList(_ context.Context, userID, listID string) (models.List, error) {
	for _, l := range f.lists {
		if l.ID == listID && l.UserID == userID {
			return l, nil
		}
	}
	return models.List{}, repositories.ErrNotFound
}

func (f *fakeLibrary) AddMovieToList(_ context.Context, listID string, movie models.MovieSnapshot) (models.ListMovie, error) {
	f.added = append(f.added, listID)
	return models.ListMovie{ID: "lm-1", ListID: listID, MovieSnapshot: movie}, nil
}

func (f *fakeLibrary) RemoveMovieFromList(_ context.Context, listID string, _ int64) error {
	f.removed = append(f.removed, listID)
	return nil
}

func (f *fakeLibrary) IsMovieInList(_ context.Context, listID string, _ int64) bool {
	for _, id := range f.added {
		if id == listID {
			return true
		}
	}
	return false
}

func (f *fakeLibrary) SearchLists(ctx context.Context, userID, query string) ([]models.List, error) {
	f.tokens = append(f.tokens, supabase.AccessTokenFrom(ctx))
	var out []models.List
	for _, l := range f.lists {
		if l.UserID == userID && strings.Contains(strings.ToLower(l.Name), strings.ToLower(strings.TrimSpace(query))) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLibrary) GetListWithMovies(context.Context, string) (models.ListWithMovies, error) {
	return f.list, f.listErr
}

func (f *fakeLibrary) CreateList(_ context.Context, userID, name, description string) (models.List, error) {
	if name == "" {
		return models.List{}, library.ErrInvalidInput
	}
	list := models.List{ID: "list-new", UserID: userID, Name: name, Description: description}
	f.created = append(f.created, list)
	return list, nil
}

func (f *fakeLibrary) ToggleWatchlist(context.Context, string, models.MovieSnapshot) (bool, error) {
	return f.toggleErr == nil, f.toggleErr
}

func (f *fakeLibrary) AddOrUpdateReview(_ context.Context, userID string, movie models.MovieSnapshot, rating int, text string) (models.Review, error) {
	if rating < models.MinRating || rating > models.MaxRating {
		return models.Review{}, library.ErrInvalidRating
	}
	review := models.Review{ID: "rev-1", UserID: userID, MovieID: movie.MovieID, Title: movie.Title, Rating: rating, ReviewText: text}
	f.reviewSaved = &review
	return review, nil
}

type memoryPrefs struct {
	mu     sync.Mutex
	values map[string]string
}

func (m *memoryPrefs) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return "", localstore.ErrNotFound
	}
	return v, nil
}

func (m *memoryPrefs) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = map[string]string{}
	}
	m.values[key] = value
	return nil
}
