package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/hedibld92/Grimovies/internal/logging"
)

// DefaultBaseURL is the public catalog API root.
const DefaultBaseURL = "https://api.themoviedb.org/3"

// Config configures a Client.
type Config struct {
	APIKey            string
	Language          string
	BaseURL           string
	ImageBaseURL      string
	RequestsPerSecond float64
	HTTPClient        *http.Client
}

// Client is a read-only client for the movie/TV catalog API.
type Client struct {
	apiKey       string
	language     string
	baseURL      string
	imageBaseURL string
	httpc        *http.Client
	limiter      *rate.Limiter
}

// NewClient builds a Client, filling defaults for anything unset.
func NewClient(cfg Config) *Client {
	httpc := cfg.HTTPClient
	if httpc == nil {
		httpc = &http.Client{Timeout: 15 * time.Second}
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	imageBase := strings.TrimRight(strings.TrimSpace(cfg.ImageBaseURL), "/")
	if imageBase == "" {
		imageBase = DefaultImageBaseURL
	}
	language := strings.TrimSpace(cfg.Language)
	if language == "" {
		language = "fr-FR"
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := int(cfg.RequestsPerSecond)
	if burst < 1 {
		burst = 1
	}

	return &Client{
		apiKey:       strings.TrimSpace(cfg.APIKey),
		language:     language,
		baseURL:      baseURL,
		imageBaseURL: imageBase,
		httpc:        httpc,
		limiter:      rate.NewLimiter(limit, burst),
	}
}

// Configured reports whether the client has an API key.
func (c *Client) Configured() bool {
	return c != nil && c.apiKey != ""
}

// get performs one throttled GET and decodes the JSON body into v.
func (c *Client) get(ctx context.Context, path string, params url.Values, v any) error {
	if !c.Configured() {
		return ErrNotConfigured
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("catalog throttle: %w", err)
	}

	query := url.Values{}
	for key, values := range params {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	query.Set("api_key", c.apiKey)
	query.Set("language", c.language)

	endpoint := c.baseURL + path + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		logging.FromContext(ctx).Warn("catalog request failed", "path", path, "error", err)
		return fmt.Errorf("catalog %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		statusErr := newStatusError(resp.StatusCode, resp.Status)
		logging.FromContext(ctx).Warn("catalog request rejected", "path", path, "status", resp.StatusCode)
		return statusErr
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode catalog %s: %w", path, err)
	}
	return nil
}

func pageParams(page int) url.Values {
	if page < 1 {
		page = 1
	}
	return url.Values{"page": []string{fmt.Sprint(page)}}
}

func (c *Client) getPage(ctx context.Context, path string, params url.Values, fallbackType string) (Page, error) {
	var raw rawPage
	if err := c.get(ctx, path, params, &raw); err != nil {
		return Page{}, err
	}
	return raw.normalize(fallbackType), nil
}
