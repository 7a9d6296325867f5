package catalog

import "strings"

// Image sizes used by the screens.
const (
	PosterSize   = "w500"
	ProfileSize  = "w185"
	BackdropSize = "w1280"
	OriginalSize = "original"
)

// DefaultImageBaseURL is the public image CDN root.
const DefaultImageBaseURL = "https://image.tmdb.org/t/p"

// ImageURL joins base, size and path. An empty path yields "".
func ImageURL(base, path, size string) string {
	if strings.TrimSpace(path) == "" {
		return ""
	}
	if size == "" {
		size = PosterSize
	}
	if base == "" {
		base = DefaultImageBaseURL
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimRight(base, "/") + "/" + size + path
}

// ImageURL resolves path against the client's image base.
func (c *Client) ImageURL(path, size string) string {
	return ImageURL(c.imageBaseURL, path, size)
}

// PosterURL returns the w500 poster URL for path.
func (c *Client) PosterURL(path string) string { return c.ImageURL(path, PosterSize) }

// ProfileURL returns the w185 profile picture URL for path.
func (c *Client) ProfileURL(path string) string { return c.ImageURL(path, ProfileSize) }

// BackdropURL returns the w1280 backdrop URL for path.
func (c *Client) BackdropURL(path string) string { return c.ImageURL(path, BackdropSize) }
