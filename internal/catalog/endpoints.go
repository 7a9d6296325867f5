package catalog

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Trending windows.
const (
	WindowDay  = "day"
	WindowWeek = "week"
)

// Sort orders accepted by discovery.
const (
	SortPopularityDesc  = "popularity.desc"
	SortPopularityAsc   = "popularity.asc"
	SortVoteAverageDesc = "vote_average.desc"
	SortVoteAverageAsc  = "vote_average.asc"
	SortReleaseDateDesc = "release_date.desc"
	SortReleaseDateAsc  = "release_date.asc"
	SortTitleAsc        = "title.asc"
	SortTitleDesc       = "title.desc"
)

// ValidSort reports whether s is one of the supported sort orders.
func ValidSort(s string) bool {
	switch s {
	case SortPopularityDesc, SortPopularityAsc, SortVoteAverageDesc, SortVoteAverageAsc,
		SortReleaseDateDesc, SortReleaseDateAsc, SortTitleAsc, SortTitleDesc:
		return true
	}
	return false
}

// Filters narrows a discovery query. Zero values are omitted.
type Filters struct {
	GenreIDs []int
	Year     int
	SortBy   string
	Page     int
}

func (f Filters) values(yearKey string) url.Values {
	params := pageParams(f.Page)
	if len(f.GenreIDs) > 0 {
		ids := make([]string, 0, len(f.GenreIDs))
		for _, id := range f.GenreIDs {
			ids = append(ids, strconv.Itoa(id))
		}
		params.Set("with_genres", strings.Join(ids, ","))
	}
	if f.Year > 0 {
		params.Set(yearKey, strconv.Itoa(f.Year))
	}
	if f.SortBy != "" {
		params.Set("sort_by", f.SortBy)
	}
	return params
}

func window(w string) string {
	if w == WindowDay {
		return WindowDay
	}
	return WindowWeek
}

// PopularMovies lists popular movies.
func (c *Client) PopularMovies(ctx context.Context, page int) (Page, error) {
	return c.getPage(ctx, "/movie/popular", pageParams(page), MediaTypeMovie)
}

// TopRatedMovies lists the best rated movies.
func (c *Client) TopRatedMovies(ctx context.Context, page int) (Page, error) {
	return c.getPage(ctx, "/movie/top_rated", pageParams(page), MediaTypeMovie)
}

// UpcomingMovies lists movies about to be released.
func (c *Client) UpcomingMovies(ctx context.Context, page int) (Page, error) {
	return c.getPage(ctx, "/movie/upcoming", pageParams(page), MediaTypeMovie)
}

// TrendingMovies lists trending movies for the day or week window.
func (c *Client) TrendingMovies(ctx context.Context, w string) (Page, error) {
	return c.getPage(ctx, "/trending/movie/"+window(w), nil, MediaTypeMovie)
}

// PopularTV lists popular shows.
func (c *Client) PopularTV(ctx context.Context, page int) (Page, error) {
	return c.getPage(ctx, "/tv/popular", pageParams(page), MediaTypeTV)
}

// TopRatedTV lists the best rated shows.
func (c *Client) TopRatedTV(ctx context.Context, page int) (Page, error) {
	return c.getPage(ctx, "/tv/top_rated", pageParams(page), MediaTypeTV)
}

// TrendingTV lists trending shows.
func (c *Client) TrendingTV(ctx context.Context, w string) (Page, error) {
	return c.getPage(ctx, "/trending/tv/"+window(w), nil, MediaTypeTV)
}

// AiringTodayTV lists shows with an episode airing today.
func (c *Client) AiringTodayTV(ctx context.Context, page int) (Page, error) {
	return c.getPage(ctx, "/tv/airing_today", pageParams(page), MediaTypeTV)
}

// OnTheAirTV lists shows currently on the air.
func (c *Client) OnTheAirTV(ctx context.Context, page int) (Page, error) {
	return c.getPage(ctx, "/tv/on_the_air", pageParams(page), MediaTypeTV)
}

// TrendingAll lists trending movies and shows together.
func (c *Client) TrendingAll(ctx context.Context, w string) (Page, error) {
	return c.getPage(ctx, "/trending/all/"+window(w), nil, "")
}

// MovieDetails returns a movie with credits, videos and similar titles.
func (c *Client) MovieDetails(ctx context.Context, id int64) (Details, error) {
	return c.details(ctx, MediaTypeMovie, id)
}

// TVDetails returns a show with credits, videos and similar titles.
func (c *Client) TVDetails(ctx context.Context, id int64) (Details, error) {
	return c.details(ctx, MediaTypeTV, id)
}

// Details dispatches on mediaType.
func (c *Client) Details(ctx context.Context, mediaType string, id int64) (Details, error) {
	switch mediaType {
	case MediaTypeMovie, MediaTypeTV:
		return c.details(ctx, mediaType, id)
	default:
		return Details{}, fmt.Errorf("%w: %q", ErrInvalidMediaType, mediaType)
	}
}

func (c *Client) details(ctx context.Context, mediaType string, id int64) (Details, error) {
	params := url.Values{"append_to_response": []string{"credits,videos,similar"}}
	var raw rawDetails
	if err := c.get(ctx, fmt.Sprintf("/%s/%d", mediaType, id), params, &raw); err != nil {
		return Details{}, err
	}
	return raw.normalize(mediaType), nil
}

func searchParams(query string, page int) url.Values {
	params := pageParams(page)
	params.Set("query", query)
	return params
}

// SearchMulti searches movies, shows and people.
func (c *Client) SearchMulti(ctx context.Context, query string, page int) (Page, error) {
	return c.getPage(ctx, "/search/multi", searchParams(query, page), "")
}

// SearchMovies searches movies by title.
func (c *Client) SearchMovies(ctx context.Context, query string, page int) (Page, error) {
	return c.getPage(ctx, "/search/movie", searchParams(query, page), MediaTypeMovie)
}

// SearchTV searches shows by name.
func (c *Client) SearchTV(ctx context.Context, query string, page int) (Page, error) {
	return c.getPage(ctx, "/search/tv", searchParams(query, page), MediaTypeTV)
}

type genreList struct {
	Genres []Genre `json:"genres"`
}

// MovieGenres returns the movie genre list.
func (c *Client) MovieGenres(ctx context.Context) ([]Genre, error) {
	var out genreList
	if err := c.get(ctx, "/genre/movie/list", nil, &out); err != nil {
		return nil, err
	}
	return out.Genres, nil
}

// TVGenres returns the show genre list.
func (c *Client) TVGenres(ctx context.Context) ([]Genre, error) {
	var out genreList
	if err := c.get(ctx, "/genre/tv/list", nil, &out); err != nil {
		return nil, err
	}
	return out.Genres, nil
}

// DiscoverMovies lists movies matching filters.
func (c *Client) DiscoverMovies(ctx context.Context, f Filters) (Page, error) {
	return c.getPage(ctx, "/discover/movie", f.values("year"), MediaTypeMovie)
}

// DiscoverTV lists shows matching filters.
func (c *Client) DiscoverTV(ctx context.Context, f Filters) (Page, error) {
	return c.getPage(ctx, "/discover/tv", f.values("first_air_date_year"), MediaTypeTV)
}
