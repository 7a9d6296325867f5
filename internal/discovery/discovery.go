// Package discovery assembles the catalog data each screen needs.
package discovery

//go:generate mockgen -source=discovery.go -destination=mock_catalog_test.go -package=discovery

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/hedibld92/Grimovies/internal/catalog"
	"github.com/hedibld92/Grimovies/internal/logging"
)

// Home section sizes.
const (
	TrendingLimit = 15
	SectionLimit  = 10
)

var (
	// ErrHomeUnavailable is returned when any home query fails.
	ErrHomeUnavailable = errors.New("Impossible de charger les films. Vérifiez votre connexion.")
	// ErrSearchFailed is returned when a search query fails.
	ErrSearchFailed = errors.New("Impossible d'effectuer la recherche")
	// ErrUnknownFeed is returned for a feed name Feed does not serve.
	ErrUnknownFeed = errors.New("unknown feed")
)

// Catalog is the subset of the catalog client the screens read from.
type Catalog interface {
	TrendingAll(ctx context.Context, window string) (catalog.Page, error)
	TrendingMovies(ctx context.Context, window string) (catalog.Page, error)
	TrendingTV(ctx context.Context, window string) (catalog.Page, error)
	PopularMovies(ctx context.Context, page int) (catalog.Page, error)
	TopRatedMovies(ctx context.Context, page int) (catalog.Page, error)
	UpcomingMovies(ctx context.Context, page int) (catalog.Page, error)
	PopularTV(ctx context.Context, page int) (catalog.Page, error)
	TopRatedTV(ctx context.Context, page int) (catalog.Page, error)
	AiringTodayTV(ctx context.Context, page int) (catalog.Page, error)
	OnTheAirTV(ctx context.Context, page int) (catalog.Page, error)
	MovieGenres(ctx context.Context) ([]catalog.Genre, error)
	TVGenres(ctx context.Context) ([]catalog.Genre, error)
	SearchMulti(ctx context.Context, query string, page int) (catalog.Page, error)
	SearchMovies(ctx context.Context, query string, page int) (catalog.Page, error)
	SearchTV(ctx context.Context, query string, page int) (catalog.Page, error)
	DiscoverMovies(ctx context.Context, f catalog.Filters) (catalog.Page, error)
	DiscoverTV(ctx context.Context, f catalog.Filters) (catalog.Page, error)
	Details(ctx context.Context, mediaType string, id int64) (catalog.Details, error)
}

// Service loads screen data from a Catalog.
type Service struct {
	catalog Catalog
	intn    func(n int) int
}

// Option customises a Service.
type Option func(*Service)

// WithRandom replaces the source used for the suggestion of the day.
func WithRandom(intn func(n int) int) Option {
	return func(s *Service) { s.intn = intn }
}

// NewService builds a Service over c.
func NewService(c Catalog, opts ...Option) *Service {
	s := &Service{catalog: c, intn: rand.IntN}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Home is the home screen payload.
type Home struct {
	Trending       []catalog.Media `json:"trending"`
	PopularMovies  []catalog.Media `json:"popular_movies"`
	TopRatedMovies []catalog.Media `json:"top_rated_movies"`
	PopularTV      []catalog.Media `json:"popular_tv"`
	TopRatedTV     []catalog.Media `json:"top_rated_tv"`
	// Pick is the suggestion of the day, nil when every feed came back empty.
	Pick *catalog.Media `json:"pick,omitempty"`
}

// Home runs the five home queries concurrently. Partial results are never returned.
func (s *Service) Home(ctx context.Context) (Home, error) {
	var trending, popularMovies, topRatedMovies, popularTV, topRatedTV catalog.Page

	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) (err error) {
		trending, err = s.catalog.TrendingAll(ctx, catalog.WindowWeek)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		popularMovies, err = s.catalog.PopularMovies(ctx, 1)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		topRatedMovies, err = s.catalog.TopRatedMovies(ctx, 1)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		popularTV, err = s.catalog.PopularTV(ctx, 1)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		topRatedTV, err = s.catalog.TopRatedTV(ctx, 1)
		return err
	})
	if err := p.Wait(); err != nil {
		logging.FromContext(ctx).Error("home load failed", "error", err)
		return Home{}, fmt.Errorf("%w: %w", ErrHomeUnavailable, err)
	}

	home := Home{
		Trending:       head(trending.Results, TrendingLimit),
		PopularMovies:  head(popularMovies.Results, SectionLimit),
		TopRatedMovies: head(topRatedMovies.Results, SectionLimit),
		PopularTV:      head(popularTV.Results, SectionLimit),
		TopRatedTV:     head(topRatedTV.Results, SectionLimit),
	}

	candidates := make([]catalog.Media, 0, len(trending.Results)+len(popularMovies.Results)+len(popularTV.Results))
	candidates = append(candidates, trending.Results...)
	candidates = append(candidates, popularMovies.Results...)
	candidates = append(candidates, popularTV.Results...)
	if len(candidates) > 0 {
		pick := candidates[s.intn(len(candidates))]
		home.Pick = &pick
	}
	return home, nil
}

func head(items []catalog.Media, n int) []catalog.Media {
	if items == nil {
		return []catalog.Media{}
	}
	if len(items) > n {
		return items[:n]
	}
	return items
}

// Genres returns movie and TV genres merged, first occurrence of an id wins.
func (s *Service) Genres(ctx context.Context) ([]catalog.Genre, error) {
	var movieGenres, tvGenres []catalog.Genre

	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) (err error) {
		movieGenres, err = s.catalog.MovieGenres(ctx)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		tvGenres, err = s.catalog.TVGenres(ctx)
		return err
	})
	if err := p.Wait(); err != nil {
		logging.FromContext(ctx).Error("genre load failed", "error", err)
		return nil, fmt.Errorf("genres: %w", err)
	}

	return mergeGenres(movieGenres, tvGenres), nil
}

func mergeGenres(lists ...[]catalog.Genre) []catalog.Genre {
	seen := make(map[int]struct{})
	merged := []catalog.Genre{}
	for _, list := range lists {
		for _, g := range list {
			if _, ok := seen[g.ID]; ok {
				continue
			}
			seen[g.ID] = struct{}{}
			merged = append(merged, g)
		}
	}
	return merged
}

// Search tabs.
const (
	TabAll    = "all"
	TabMovies = "movies"
	TabTV     = "tv"
)

// Query describes a search screen request.
type Query struct {
	Text    string
	Tab     string
	GenreID int
	SortBy  string
}

// Search runs a text search on the tab's media types. Without text it discovers titles
// of the selected genre instead; with neither it returns no results and no error.
func (s *Service) Search(ctx context.Context, q Query) ([]catalog.Media, error) {
	text := strings.TrimSpace(q.Text)
	tab := q.Tab
	if tab == "" {
		tab = TabAll
	}
	if tab != TabAll && tab != TabMovies && tab != TabTV {
		return nil, fmt.Errorf("search: unknown tab %q", q.Tab)
	}
	if q.SortBy != "" && !catalog.ValidSort(q.SortBy) {
		return nil, fmt.Errorf("search: unknown sort %q", q.SortBy)
	}

	var (
		results []catalog.Media
		err     error
	)
	switch {
	case text != "":
		results, err = s.searchText(ctx, tab, text)
	case q.GenreID > 0:
		results, err = s.discoverGenre(ctx, tab, q.GenreID, q.SortBy)
	default:
		return []catalog.Media{}, nil
	}
	if err != nil {
		logging.FromContext(ctx).Error("search failed", "tab", tab, "genre_id", q.GenreID, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrSearchFailed, err)
	}
	if results == nil {
		results = []catalog.Media{}
	}
	return results, nil
}

func (s *Service) searchText(ctx context.Context, tab, text string) ([]catalog.Media, error) {
	var (
		page catalog.Page
		err  error
	)
	switch tab {
	case TabMovies:
		page, err = s.catalog.SearchMovies(ctx, text, 1)
	case TabTV:
		page, err = s.catalog.SearchTV(ctx, text, 1)
	default:
		page, err = s.catalog.SearchMulti(ctx, text, 1)
	}
	return page.Results, err
}

func (s *Service) discoverGenre(ctx context.Context, tab string, genreID int, sortBy string) ([]catalog.Media, error) {
	if sortBy == "" {
		sortBy = catalog.SortPopularityDesc
	}
	filters := catalog.Filters{GenreIDs: []int{genreID}, SortBy: sortBy, Page: 1}

	switch tab {
	case TabMovies:
		page, err := s.catalog.DiscoverMovies(ctx, filters)
		return page.Results, err
	case TabTV:
		page, err := s.catalog.DiscoverTV(ctx, filters)
		return page.Results, err
	}

	movies, err := s.catalog.DiscoverMovies(ctx, filters)
	if err != nil {
		return nil, err
	}
	shows, err := s.catalog.DiscoverTV(ctx, filters)
	if err != nil {
		return nil, err
	}
	return append(movies.Results, shows.Results...), nil
}

// Detail is the detail screen payload.
type Detail struct {
	catalog.Details
	Trailer *catalog.Video `json:"trailer,omitempty"`
}

// TrailerURL is the watch URL of the trailer, empty without one.
func (d Detail) TrailerURL() string {
	if d.Trailer == nil {
		return ""
	}
	return "https://www.youtube.com/watch?v=" + d.Trailer.Key
}

// Detail loads a title with its cast, similar titles and trailer.
func (s *Service) Detail(ctx context.Context, mediaType string, id int64) (Detail, error) {
	details, err := s.catalog.Details(ctx, mediaType, id)
	if err != nil {
		logging.FromContext(ctx).Error("detail load failed", "media_type", mediaType, "id", id, "error", err)
		return Detail{}, fmt.Errorf("detail: %w", err)
	}

	detail := Detail{Details: details}
	if trailer, ok := details.Trailer(); ok {
		detail.Trailer = &trailer
	}
	return detail, nil
}

// Feed names served by Feed.
const (
	FeedTrending       = "trending"
	FeedTrendingMovies = "trending_movies"
	FeedTrendingTV     = "trending_tv"
	FeedPopular        = "popular"
	FeedTopRated       = "top_rated"
	FeedUpcoming       = "upcoming"
	FeedPopularTV      = "popular_tv"
	FeedTopRatedTV     = "top_rated_tv"
	FeedAiringTodayTV  = "airing_today_tv"
	FeedOnTheAirTV     = "on_the_air_tv"
)

// Feed returns one page of a named catalog list, as the "see all" screen shows it.
// Trending feeds ignore page and use the weekly window.
func (s *Service) Feed(ctx context.Context, name string, page int) (catalog.Page, error) {
	var fetch func(context.Context) (catalog.Page, error)
	switch name {
	case FeedTrending:
		fetch = func(ctx context.Context) (catalog.Page, error) { return s.catalog.TrendingAll(ctx, catalog.WindowWeek) }
	case FeedTrendingMovies:
		fetch = func(ctx context.Context) (catalog.Page, error) { return s.catalog.TrendingMovies(ctx, catalog.WindowWeek) }
	case FeedTrendingTV:
		fetch = func(ctx context.Context) (catalog.Page, error) { return s.catalog.TrendingTV(ctx, catalog.WindowWeek) }
	case FeedPopular:
		fetch = func(ctx context.Context) (catalog.Page, error) { return s.catalog.PopularMovies(ctx, page) }
	case FeedTopRated:
		fetch = func(ctx context.Context) (catalog.Page, error) { return s.catalog.TopRatedMovies(ctx, page) }
	case FeedUpcoming:
		fetch = func(ctx context.Context) (catalog.Page, error) { return s.catalog.UpcomingMovies(ctx, page) }
	case FeedPopularTV:
		fetch = func(ctx context.Context) (catalog.Page, error) { return s.catalog.PopularTV(ctx, page) }
	case FeedTopRatedTV:
		fetch = func(ctx context.Context) (catalog.Page, error) { return s.catalog.TopRatedTV(ctx, page) }
	case FeedAiringTodayTV:
		fetch = func(ctx context.Context) (catalog.Page, error) { return s.catalog.AiringTodayTV(ctx, page) }
	case FeedOnTheAirTV:
		fetch = func(ctx context.Context) (catalog.Page, error) { return s.catalog.OnTheAirTV(ctx, page) }
	default:
		return catalog.Page{}, fmt.Errorf("%w: %q", ErrUnknownFeed, name)
	}

	result, err := fetch(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("feed load failed", "feed", name, "error", err)
		return catalog.Page{}, fmt.Errorf("feed %s: %w", name, err)
	}
	return result, nil
}
