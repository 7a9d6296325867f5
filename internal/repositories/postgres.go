package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hedibld92/Grimovies/internal/db"
	"github.com/hedibld92/Grimovies/internal/models"
)

// NewPostgresSet wires every repository to a direct database connection.
func NewPostgresSet(pool db.Pool) Set {
	return Set{
		Lists:      NewPostgresListRepository(pool),
		ListMovies: NewPostgresListMovieRepository(pool),
		Favorites:  NewPostgresSnapshotRepository(pool, TableFavorites),
		Watched:    NewPostgresSnapshotRepository(pool, TableWatched),
		Reviews:    NewPostgresReviewRepository(pool),
	}
}

const snapshotColumns = `movie_id, title, COALESCE(poster_path, ''), COALESCE(overview, ''), COALESCE(release_date, ''), COALESCE(vote_average, 0)`

func snapshotTargets(s *models.MovieSnapshot) []any {
	return []any{&s.MovieID, &s.Title, &s.PosterPath, &s.Overview, &s.ReleaseDate, &s.VoteAverage}
}

func newID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}

func stamp(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t.UTC()
}

// PostgresListRepository provides PostgreSQL-backed persistence for lists.
type PostgresListRepository struct {
	pool db.Pool
}

// NewPostgresListRepository constructs a list repository backed by PostgreSQL.
func NewPostgresListRepository(pool db.Pool) *PostgresListRepository {
	return &PostgresListRepository{pool: pool}
}

// ListByUser returns the user's lists, newest first.
func (r *PostgresListRepository) ListByUser(ctx context.Context, userID string) ([]models.List, error) {
	return r.queryLists(ctx, `
        SELECT id, user_id, name, COALESCE(description, ''), created_at
        FROM user_lists
        WHERE user_id = $1
        ORDER BY created_at DESC
    `, userID)
}

// SearchByName returns the user's lists whose name contains substr, ignoring case,
// newest first.
func (r *PostgresListRepository) SearchByName(ctx context.Context, userID, substr string) ([]models.List, error) {
	return r.queryLists(ctx, `
        SELECT id, user_id, name, COALESCE(description, ''), created_at
        FROM user_lists
        WHERE user_id = $1 AND name ILIKE '%' || $2 || '%'
        ORDER BY created_at DESC
    `, userID, escapeLike(substr))
}

func (r *PostgresListRepository) queryLists(ctx context.Context, sql string, args ...any) ([]models.List, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query lists: %w", err)
	}
	defer rows.Close()

	lists := []models.List{}
	for rows.Next() {
		var list models.List
		if err := rows.Scan(&list.ID, &list.UserID, &list.Name, &list.Description, &list.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan list: %w", err)
		}
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lists: %w", err)
	}

	return lists, nil
}

// Get returns one list.
func (r *PostgresListRepository) Get(ctx context.Context, listID string) (models.List, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return models.List{}, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	var list models.List
	err = conn.QueryRow(ctx, `
        SELECT id, user_id, name, COALESCE(description, ''), created_at
        FROM user_lists
        WHERE id = $1
    `, listID).Scan(&list.ID, &list.UserID, &list.Name, &list.Description, &list.CreatedAt)
	if err != nil {
		return models.List{}, fmt.Errorf("select list: %w", translate(err))
	}

	return list, nil
}

// Create inserts a list.
func (r *PostgresListRepository) Create(ctx context.Context, list models.List) (models.List, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return models.List{}, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	list.ID = newID(list.ID)
	list.CreatedAt = stamp(list.CreatedAt)

	_, err = conn.Exec(ctx, `
        INSERT INTO user_lists (id, user_id, name, description, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `, list.ID, list.UserID, list.Name, list.Description, list.CreatedAt)
	if err != nil {
		return models.List{}, fmt.Errorf("insert list: %w", translate(err))
	}

	return list, nil
}

// PostgresListMovieRepository provides PostgreSQL-backed persistence for list memberships.
type PostgresListMovieRepository struct {
	pool db.Pool
}

// NewPostgresListMovieRepository constructs a membership repository backed by PostgreSQL.
func NewPostgresListMovieRepository(pool db.Pool) *PostgresListMovieRepository {
	return &PostgresListMovieRepository{pool: pool}
}

// ListByList returns a list's titles, most recently added first.
func (r *PostgresListMovieRepository) ListByList(ctx context.Context, listID string) ([]models.ListMovie, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, `
        SELECT id, list_id, `+snapshotColumns+`, added_at
        FROM list_movies
        WHERE list_id = $1
        ORDER BY added_at DESC
    `, listID)
	if err != nil {
		return nil, fmt.Errorf("query list movies: %w", err)
	}
	defer rows.Close()

	movies := []models.ListMovie{}
	for rows.Next() {
		var movie models.ListMovie
		targets := append([]any{&movie.ID, &movie.ListID}, snapshotTargets(&movie.MovieSnapshot)...)
		targets = append(targets, &movie.AddedAt)
		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("scan list movie: %w", err)
		}
		movies = append(movies, movie)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate list movies: %w", err)
	}

	return movies, nil
}

// Add inserts a membership row. The same title may be added more than once.
func (r *PostgresListMovieRepository) Add(ctx context.Context, movie models.ListMovie) (models.ListMovie, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return models.ListMovie{}, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	movie.ID = newID(movie.ID)
	movie.AddedAt = stamp(movie.AddedAt)

	_, err = conn.Exec(ctx, `
        INSERT INTO list_movies (id, list_id, movie_id, title, poster_path, overview, release_date, vote_average, added_at)
        VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''), $8, $9)
    `, movie.ID, movie.ListID, movie.MovieID, movie.Title, movie.PosterPath, movie.Overview, movie.ReleaseDate, movie.VoteAverage, movie.AddedAt)
	if err != nil {
		return models.ListMovie{}, fmt.Errorf("insert list movie: %w", translate(err))
	}

	return movie, nil
}

// Remove deletes every membership of movieID in the list.
func (r *PostgresListMovieRepository) Remove(ctx context.Context, listID string, movieID int64) error {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, `DELETE FROM list_movies WHERE list_id = $1 AND movie_id = $2`, listID, movieID); err != nil {
		return fmt.Errorf("delete list movie: %w", err)
	}

	return nil
}

// Exists reports whether movieID is in the list.
func (r *PostgresListMovieRepository) Exists(ctx context.Context, listID string, movieID int64) (bool, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return false, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	var exists bool
	err = conn.QueryRow(ctx, `
        SELECT EXISTS (SELECT 1 FROM list_movies WHERE list_id = $1 AND movie_id = $2)
    `, listID, movieID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("select list movie: %w", err)
	}

	return exists, nil
}

// Count returns the number of memberships in the list.
func (r *PostgresListMovieRepository) Count(ctx context.Context, listID string) (int, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return 0, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	var count int
	if err := conn.QueryRow(ctx, `SELECT COUNT(*) FROM list_movies WHERE list_id = $1`, listID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count list movies: %w", err)
	}

	return count, nil
}

// PostgresSnapshotRepository provides PostgreSQL-backed persistence for favorites or watched rows.
type PostgresSnapshotRepository struct {
	pool  db.Pool
	table string
}

// NewPostgresSnapshotRepository constructs a repository over TableFavorites or TableWatched.
func NewPostgresSnapshotRepository(pool db.Pool, table string) *PostgresSnapshotRepository {
	if table != TableFavorites && table != TableWatched {
		panic(fmt.Sprintf("repositories: unsupported snapshot table %q", table))
	}
	return &PostgresSnapshotRepository{pool: pool, table: table}
}

// ListByUser returns the user's rows, newest first.
func (r *PostgresSnapshotRepository) ListByUser(ctx context.Context, userID string) ([]models.UserMovie, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, `
        SELECT id, user_id, `+snapshotColumns+`, created_at
        FROM `+r.table+`
        WHERE user_id = $1
        ORDER BY created_at DESC
    `, userID)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", r.table, err)
	}
	defer rows.Close()

	movies := []models.UserMovie{}
	for rows.Next() {
		var movie models.UserMovie
		targets := append([]any{&movie.ID, &movie.UserID}, snapshotTargets(&movie.MovieSnapshot)...)
		targets = append(targets, &movie.CreatedAt)
		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.table, err)
		}
		movies = append(movies, movie)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", r.table, err)
	}

	return movies, nil
}

// Add inserts a row.
func (r *PostgresSnapshotRepository) Add(ctx context.Context, movie models.UserMovie) (models.UserMovie, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return models.UserMovie{}, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	movie.ID = newID(movie.ID)
	movie.CreatedAt = stamp(movie.CreatedAt)

	_, err = conn.Exec(ctx, `
        INSERT INTO `+r.table+` (id, user_id, movie_id, title, poster_path, overview, release_date, vote_average, created_at)
        VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''), $8, $9)
    `, movie.ID, movie.UserID, movie.MovieID, movie.Title, movie.PosterPath, movie.Overview, movie.ReleaseDate, movie.VoteAverage, movie.CreatedAt)
	if err != nil {
		return models.UserMovie{}, fmt.Errorf("insert %s: %w", r.table, translate(err))
	}

	return movie, nil
}

// Remove deletes the user's rows for movieID.
func (r *PostgresSnapshotRepository) Remove(ctx context.Context, userID string, movieID int64) error {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, `DELETE FROM `+r.table+` WHERE user_id = $1 AND movie_id = $2`, userID, movieID); err != nil {
		return fmt.Errorf("delete %s: %w", r.table, err)
	}

	return nil
}

// Exists reports whether the user has a row for movieID.
func (r *PostgresSnapshotRepository) Exists(ctx context.Context, userID string, movieID int64) (bool, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return false, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	var exists bool
	err = conn.QueryRow(ctx, `
        SELECT EXISTS (SELECT 1 FROM `+r.table+` WHERE user_id = $1 AND movie_id = $2)
    `, userID, movieID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("select %s: %w", r.table, err)
	}

	return exists, nil
}

// PostgresReviewRepository provides PostgreSQL-backed persistence for reviews.
type PostgresReviewRepository struct {
	pool db.Pool
}

// NewPostgresReviewRepository constructs a review repository backed by PostgreSQL.
func NewPostgresReviewRepository(pool db.Pool) *PostgresReviewRepository {
	return &PostgresReviewRepository{pool: pool}
}

const reviewColumns = `id, user_id, movie_id, title, COALESCE(poster_path, ''), rating, COALESCE(review_text, ''), created_at, updated_at`

func scanReview(row pgx.Row) (models.Review, error) {
	var rv models.Review
	err := row.Scan(&rv.ID, &rv.UserID, &rv.MovieID, &rv.Title, &rv.PosterPath, &rv.Rating, &rv.ReviewText, &rv.CreatedAt, &rv.UpdatedAt)
	return rv, err
}

// ListByUser returns the user's reviews, newest first.
func (r *PostgresReviewRepository) ListByUser(ctx context.Context, userID string) ([]models.Review, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, `
        SELECT `+reviewColumns+`
        FROM user_reviews
        WHERE user_id = $1
        ORDER BY created_at DESC
    `, userID)
	if err != nil {
		return nil, fmt.Errorf("query reviews: %w", err)
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviews: %w", err)
	}

	return reviews, nil
}

// Get returns the user's review of movieID.
func (r *PostgresReviewRepository) Get(ctx context.Context, userID string, movieID int64) (models.Review, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return models.Review{}, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	review, err := scanReview(conn.QueryRow(ctx, `
        SELECT `+reviewColumns+`
        FROM user_reviews
        WHERE user_id = $1 AND movie_id = $2
    `, userID, movieID))
	if err != nil {
		return models.Review{}, fmt.Errorf("select review: %w", translate(err))
	}

	return review, nil
}

// Upsert creates or replaces the user's review of the title, keyed on (user_id, movie_id).
func (r *PostgresReviewRepository) Upsert(ctx context.Context, review models.Review) (models.Review, error) {
	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return models.Review{}, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()

	now := time.Now().UTC()
	if review.CreatedAt.IsZero() {
		review.CreatedAt = now
	}
	if review.UpdatedAt.IsZero() {
		review.UpdatedAt = now
	}

	stored, err := scanReview(conn.QueryRow(ctx, `
        INSERT INTO user_reviews (id, user_id, movie_id, title, poster_path, rating, review_text, created_at, updated_at)
        VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9)
        ON CONFLICT (user_id, movie_id)
        DO UPDATE SET title = EXCLUDED.title,
                      poster_path = EXCLUDED.poster_path,
                      rating = EXCLUDED.rating,
                      review_text = EXCLUDED.review_text,
                      updated_at = EXCLUDED.updated_at
        RETURNING `+reviewColumns,
		newID(review.ID), review.UserID, review.MovieID, review.Title, review.PosterPath, review.Rating, review.ReviewText, review.CreatedAt.UTC(), review.UpdatedAt.UTC()))
	if err != nil {
		return models.Review{}, fmt.Errorf("upsert review: %w", translate(err))
	}

	return stored, nil
}

var (
	_ ListRepository      = (*PostgresListRepository)(nil)
	_ ListMovieRepository = (*PostgresListMovieRepository)(nil)
	_ SnapshotRepository  = (*PostgresSnapshotRepository)(nil)
	_ ReviewRepository    = (*PostgresReviewRepository)(nil)
)
