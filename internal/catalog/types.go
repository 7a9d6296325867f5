package catalog

import "strings"

// Media types as reported by the catalog.
const (
	MediaTypeMovie  = "movie"
	MediaTypeTV     = "tv"
	MediaTypePerson = "person"
)

// Media is the uniform shape of a movie or show in any catalog listing.
type Media struct {
	ID           int64   `json:"id"`
	MediaType    string  `json:"media_type,omitempty"`
	Title        string  `json:"title"`
	PosterPath   string  `json:"poster_path,omitempty"`
	BackdropPath string  `json:"backdrop_path,omitempty"`
	Overview     string  `json:"overview"`
	ReleaseDate  string  `json:"release_date,omitempty"`
	VoteAverage  float64 `json:"vote_average"`
	GenreIDs     []int   `json:"genre_ids,omitempty"`
}

// rawMedia mirrors the catalog payload where movies and shows name the same fields differently.
type rawMedia struct {
	ID           int64   `json:"id"`
	MediaType    string  `json:"media_type"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	PosterPath   string  `json:"poster_path"`
	BackdropPath string  `json:"backdrop_path"`
	Overview     string  `json:"overview"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	VoteAverage  float64 `json:"vote_average"`
	GenreIDs     []int   `json:"genre_ids"`
}

func (r rawMedia) normalize(fallbackType string) Media {
	m := Media{
		ID:           r.ID,
		MediaType:    r.MediaType,
		Title:        strings.TrimSpace(r.Title),
		PosterPath:   r.PosterPath,
		BackdropPath: r.BackdropPath,
		Overview:     r.Overview,
		ReleaseDate:  r.ReleaseDate,
		VoteAverage:  r.VoteAverage,
		GenreIDs:     r.GenreIDs,
	}
	if m.Title == "" {
		m.Title = strings.TrimSpace(r.Name)
	}
	if m.ReleaseDate == "" {
		m.ReleaseDate = r.FirstAirDate
	}
	if m.MediaType == "" {
		m.MediaType = fallbackType
	}
	return m
}

// Page is one page of a catalog listing.
type Page struct {
	Page         int     `json:"page"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
	Results      []Media `json:"results"`
}

type rawPage struct {
	Page         int        `json:"page"`
	TotalPages   int        `json:"total_pages"`
	TotalResults int        `json:"total_results"`
	Results      []rawMedia `json:"results"`
}

func (r rawPage) normalize(fallbackType string) Page {
	p := Page{
		Page:         r.Page,
		TotalPages:   r.TotalPages,
		TotalResults: r.TotalResults,
		Results:      make([]Media, 0, len(r.Results)),
	}
	for _, item := range r.Results {
		p.Results = append(p.Results, item.normalize(fallbackType))
	}
	return p
}

// Genre is a catalog genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CastMember is one credited performer.
type CastMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path,omitempty"`
	Order       int    `json:"order"`
}

// CrewMember is one credited crew member.
type CrewMember struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Job        string `json:"job"`
	Department string `json:"department"`
}

// Video is a trailer, teaser or clip attached to a title.
type Video struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official"`
}

// Details is a title with credits, videos and similar titles appended.
type Details struct {
	Media
	Genres          []Genre      `json:"genres"`
	Runtime         int          `json:"runtime,omitempty"`
	Tagline         string       `json:"tagline,omitempty"`
	Status          string       `json:"status,omitempty"`
	NumberOfSeasons int          `json:"number_of_seasons,omitempty"`
	Cast            []CastMember `json:"cast"`
	Crew            []CrewMember `json:"crew"`
	Videos          []Video      `json:"videos"`
	Similar         []Media      `json:"similar"`
}

type rawDetails struct {
	rawMedia
	Genres          []Genre `json:"genres"`
	Runtime         int     `json:"runtime"`
	EpisodeRunTime  []int   `json:"episode_run_time"`
	Tagline         string  `json:"tagline"`
	Status          string  `json:"status"`
	NumberOfSeasons int     `json:"number_of_seasons"`
	Credits         struct {
		Cast []CastMember `json:"cast"`
		Crew []CrewMember `json:"crew"`
	} `json:"credits"`
	Videos struct {
		Results []Video `json:"results"`
	} `json:"videos"`
	Similar rawPage `json:"similar"`
}

func (r rawDetails) normalize(mediaType string) Details {
	d := Details{
		Media:           r.rawMedia.normalize(mediaType),
		Genres:          r.Genres,
		Runtime:         r.Runtime,
		Tagline:         r.Tagline,
		Status:          r.Status,
		NumberOfSeasons: r.NumberOfSeasons,
		Cast:            r.Credits.Cast,
		Crew:            r.Credits.Crew,
		Videos:          r.Videos.Results,
		Similar:         r.Similar.normalize(mediaType).Results,
	}
	if d.Runtime == 0 && len(r.EpisodeRunTime) > 0 {
		d.Runtime = r.EpisodeRunTime[0]
	}
	return d
}

// Trailer returns the first YouTube trailer, falling back to any YouTube video.
func (d Details) Trailer() (Video, bool) {
	var fallback *Video
	for i := range d.Videos {
		v := d.Videos[i]
		if !strings.EqualFold(v.Site, "YouTube") {
			continue
		}
		if strings.EqualFold(v.Type, "Trailer") {
			return v, true
		}
		if fallback == nil {
			fallback = &d.Videos[i]
		}
	}
	if fallback != nil {
		return *fallback, true
	}
	return Video{}, false
}
