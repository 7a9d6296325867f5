package library

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/hedibld92/Grimovies/internal/models"
	"github.com/hedibld92/Grimovies/internal/repositories"
)

// memoryBackend implements every repository over maps, ordering rows like the backend.
type memoryBackend struct {
	mu      sync.Mutex
	seq     int
	clock   time.Time
	lists   []models.List
	members []models.ListMovie
	rows    map[string][]models.UserMovie
	reviews []models.Review

	failLists   error
	failExists  error
	failCreates int
}

func newMemoryBackend() *memoryBackend {
	return &memoryBackend{
		clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		rows:  map[string][]models.UserMovie{},
	}
}

func (b *memoryBackend) next() (string, time.Time) {
	b.seq++
	b.clock = b.clock.Add(time.Second)
	return fmt.Sprintf("id-%d", b.seq), b.clock
}

func (b *memoryBackend) set() repositories.Set {
	return repositories.Set{
		Lists:      memoryLists{b},
		ListMovies: memoryMembers{b},
		Favorites:  memorySnapshots{b, repositories.TableFavorites},
		Watched:    memorySnapshots{b, repositories.TableWatched},
		Reviews:    memoryReviews{b},
	}
}

type memoryLists struct{ b *memoryBackend }

func (m memoryLists) ListByUser(_ context.Context, userID string) ([]models.List, error) {
	m.b.mu.Lock()
	defer m.b.mu.Unlock()
	if m.b.failLists != nil {
		return nil, m.b.failLists
	}
	out := []models.List{}
	for _, l := range m.b.lists {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m memoryLists) SearchByName(ctx context.Context, userID, substr string) ([]models.List, error) {
	lists, err := m.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := []models.List{}
	for _, l := range lists {
		if strings.Contains(strings.ToLower(l.Name), strings.ToLower(substr)) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m memoryLists) Get(_ context.Context, listID string) (models.List, error) {
	m.b.mu.Lock()
	defer m.b.mu.Unlock()
	for _, l := range m.b.lists {
		if l.ID == listID {
			return l, nil
		}
	}
	return models.List{}, repositories.ErrNotFound
}

func (m memoryLists) Create(_ context.Context, list models.List) (models.List, error) {
	m.b.mu.Lock()
	defer m.b.mu.Unlock()
	if m.b.failCreates > 0 {
		m.b.failCreates--
		return models.List{}, errors.New("insert failed")
	}
	list.ID, list.CreatedAt = m.b.next()
	m.b.lists = append(m.b.lists, list)
	return list, nil
}

type memoryMembers struct{ b *memoryBackend }

func (m memoryMembers) ListByList(_ context.Context, listID string) ([]models.ListMovie, error) {
	m.b.mu.Lock()
	defer m.b.mu.Unlock()
	out := []models.ListMovie{}
	for _, lm := range m.b.members {
		if lm.ListID == listID {
			out = append(out, lm)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AddedAt.After(out[j].AddedAt) })
	return out, nil
}

func (m memoryMembers) Add(_ context.Context, movie models.ListMovie) (models.ListMovie, error) {
	m.b.mu.Lock()
	defer m.b.mu.Unlock()
	movie.ID, movie.AddedAt = m.b.next()
	m.b.members = append(m.b.members, movie)
	return movie, nil
}

func (m memoryMembers) Remove(_ context.Context, listID string, movieID int64) error {
	m.b.mu.Lock()
	defer m.b.mu.Unlock()
	kept := m.b.members[:0]
	for _, lm := range m.b.members {
		if lm.ListID == listID && lm.MovieID == movieID {
			continue
		}
		kept = append(kept, lm)
	}
	m.b.members = kept
	return nil
}

func (m memoryMembers) Exists(_ context.Context, listID string, movieID int64) (bool, error) {
	m.b.mu.Lock()
	defer m.b.mu.Unlock()
	if m.b.failExists != nil {
		return false, m.b.failExists
	}
	for _, lm := range m.b.members {
		if lm.ListID == listID && lm.MovieID == movieID {
			return true, nil
		}
	}
	return false, nil
}

func (m memoryMembers) Count(ctx context.Context, listID string) (int, error) {
	movies, err := m.ListByList(ctx, listID)
	return len(movies), err
}

type memorySnapshots struct {
	b     *memoryBackend
	table string
}

func (m memorySnapshots) ListByUser(_ context.Context, userID string) ([]models.UserMovie, error) {
	m.b.mu.Lock()
	defer m.b.mu.Unlock()
	out := []models.UserMovie{}
	for _, r := range m.b.rows[m.table] {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m memorySnapshots) Add(_ context.Context, movie models.UserMovie) (models.UserMovie, error) {
	m.b.mu.Lock()
	defer m.b.mu.Unlock()
	movie.ID, movie.CreatedAt = m.b.next()
	m.b.rows[m.table] = append(m.b.rows[m.table], movie)
	return movie, nil
}

func (m memorySnapshots) Remove(_ context.Context, userID string, movieID int64) error {
	m.b.mu.Lock()
	defer m.b.mu.Unlock()
	var kept []models.UserMovie
	for _, r := range m.b.rows[m.table] {
		if r.UserID == userID && r.MovieID == movieID {
			continue
		}
		kept = append(kept, r)
	}
	m.b.rows[m.table] = kept
	return nil
}

func (m memorySnapshots) Exists(_ context.Context, userID string, movieID int64) (bool, error) {
	m.b.mu.Lock()
	defer m.b.mu.Unlock()
	for _, r := range m.b.rows[m.table] {
		if r.UserID == userID && r.MovieID == movieID {
			return true, nil
		}
	}
	return false, nil
}

type memoryReviews struct{ b *memoryBackend }

func (m memoryReviews) ListByUser(_ context.Context, userID string) ([]models.Review, error) {
	m.b.mu.Lock()
	defer m.b.mu.Unlock()
	out := []models.Review{}
	for _, r := range m.b.reviews {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m memoryReviews) Get(_ context.Context, userID string, movieID int64) (models.Review, error) {
	m.b.mu.Lock()
	defer m.b.mu.Unlock()
	for _, r := range m.b.reviews {
		if r.UserID == userID && r.MovieID == movieID {
			return r, nil
		}
	}
	return models.Review{}, repositories.ErrNotFound
}

func (m memoryReviews) Upsert(_ context.Context, review models.Review) (models.Review, error) {
	m.b.mu.Lock()
	defer m.b.mu.Unlock()
	for i, r := range m.b.reviews {
		if r.UserID == review.UserID && r.MovieID == review.MovieID {
			_, review.UpdatedAt = m.b.next()
			review.ID, review.CreatedAt = r.ID, r.CreatedAt
			m.b.reviews[i] = review
			return review, nil
		}
	}
	review.ID, review.CreatedAt = m.b.next()
	review.UpdatedAt = review.CreatedAt
	m.b.reviews = append(m.b.reviews, review)
	return review, nil
}

type recordingMirror struct {
	mu        sync.Mutex
	paths     []string
	locations map[string]string
}

func (r *recordingMirror) Location(path string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	location, ok := r.locations[path]
	return location, ok
}

func (r *recordingMirror) Enqueue(path string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
	return true
}
