// Package posters mirrors catalog poster images into the configured object store.
package posters

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/hedibld92/Grimovies/internal/catalog"
)

// Config controls the concurrency of the mirror.
type Config struct {
	QueueSize    int
	Workers      int
	DedupTTL     time.Duration
	FetchTimeout time.Duration
	ImageBaseURL string
	HTTPClient   *http.Client
	Now          func() time.Time
}

// Mirror copies posters in the background with a fixed pool of workers.
type Mirror struct {
	storage   AssetStorage
	httpc     *http.Client
	imageBase string
	timeout   time.Duration
	recent    *recentCache
	logger    *slog.Logger

	jobs   chan string
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewMirror starts the workers. A nil storage yields a mirror that rejects every path.
func NewMirror(storage AssetStorage, cfg Config, logger *slog.Logger) *Mirror {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 16
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 30 * time.Second
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}
	if cfg.ImageBaseURL == "" {
		cfg.ImageBaseURL = catalog.DefaultImageBaseURL
	}
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())

	m := &Mirror{
		storage:   storage,
		httpc:     cfg.HTTPClient,
		imageBase: strings.TrimRight(cfg.ImageBaseURL, "/"),
		timeout:   cfg.FetchTimeout,
		recent:    newRecentCache(cfg.DedupTTL, cfg.Now),
		logger:    logger,
		jobs:      make(chan string, cfg.QueueSize),
		ctx:       ctx,
		cancel:    cancel,
	}

	m.wg.Add(cfg.Workers)
	for i := 0; i < cfg.Workers; i++ {
		go m.worker()
	}

	return m
}

// Enqueue schedules posterPath for mirroring without blocking. It reports false when
// the path was mirrored recently, is already queued, the queue is full or the mirror
// is closed.
func (m *Mirror) Enqueue(posterPath string) bool {
	posterPath = strings.TrimSpace(posterPath)
	if posterPath == "" || m.storage == nil {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return false
	}
	if !m.recent.reserve(posterPath) {
		return false
	}

	select {
	case m.jobs <- posterPath:
		return true
	default:
		m.recent.forget(posterPath)
		m.logger.Warn("poster mirror queue full", "posterPath", posterPath)
		return false
	}
}

// Location returns where posterPath was mirrored, while that entry is fresh.
func (m *Mirror) Location(posterPath string) (string, bool) {
	return m.recent.get(posterPath)
}

// Shutdown stops accepting paths and waits for queued ones. When ctx expires first,
// in-flight transfers are cancelled.
func (m *Mirror) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	if !m.closed {
		m.closed = true
		close(m.jobs)
	}
	m.mu.Unlock()

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		m.cancel()
		return ctx.Err()
	case <-done:
		m.cancel()
		return nil
	}
}

func (m *Mirror) worker() {
	defer m.wg.Done()

	for posterPath := range m.jobs {
		if m.ctx.Err() != nil {
			m.recent.forget(posterPath)
			continue
		}
		m.handle(posterPath)
	}
}

func (m *Mirror) handle(posterPath string) {
	ctx, cancel := context.WithTimeout(m.ctx, m.timeout)
	defer cancel()

	location, err := m.copy(ctx, posterPath)
	if err != nil {
		m.recent.forget(posterPath)
		m.logger.Error("poster mirror failed", "posterPath", posterPath, "error", err)
		return
	}

	m.recent.put(posterPath, location)
	m.logger.Debug("poster mirrored", "posterPath", posterPath, "location", location)
}

func (m *Mirror) copy(ctx context.Context, posterPath string) (string, error) {
	src := catalog.ImageURL(m.imageBase, posterPath, catalog.PosterSize)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	resp, err := m.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", src, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download %s: unexpected status %d", src, resp.StatusCode)
	}

	return m.storage.Save(ctx, ObjectKey(posterPath), resp.Body)
}

// ObjectKey is the object name a poster is stored under.
func ObjectKey(posterPath string) string {
	return path.Join("posters", catalog.PosterSize, path.Clean("/"+posterPath))
}
