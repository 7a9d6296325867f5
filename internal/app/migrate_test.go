package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/spf13/afero"
)

func TestListMigrations(t *testing.T) {
	fs := afero.NewMemMapFs()
	for _, name := range []string{"0002_user_movies.sql", "0001_user_lists.sql", "README.md"} {
		if err := afero.WriteFile(fs, "/migrations/"+name, []byte("SELECT 1;"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := fs.MkdirAll("/migrations/archive.sql", 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	migrations, err := listMigrations(fs, "/migrations")
	if err != nil {
		t.Fatalf("list migrations: %v", err)
	}
	if got := strings.Join(migrations, ","); got != "0001_user_lists.sql,0002_user_movies.sql" {
		t.Fatalf("unexpected migrations %q", got)
	}

	if _, err := listMigrations(fs, "/missing"); err == nil {
		t.Fatal("expected error for a missing directory")
	}
}

func TestPendingMigrationsAndStatus(t *testing.T) {
	migrations := []string{"0001_a.sql", "0002_b.sql", "0003_c.sql"}
	applied := map[string]struct{}{"0001_a.sql": {}, "0003_c.sql": {}}

	pending := pendingMigrations(migrations, applied)
	if len(pending) != 1 || pending[0] != "0002_b.sql" {
		t.Fatalf("unexpected pending migrations %v", pending)
	}

	var out bytes.Buffer
	printMigrationStatus(&out, migrations, applied)
	want := "[x] 0001_a.sql\n[ ] 0002_b.sql\n[x] 0003_c.sql\n"
	if out.String() != want {
		t.Fatalf("unexpected status output %q", out.String())
	}
}

func TestSeedFileName(t *testing.T) {
	if got := seedFileName("dev"); got != "dev_seed.sql" {
		t.Fatalf("unexpected seed file %q", got)
	}
	if got := seedFileName("custom.sql"); got != "custom.sql" {
		t.Fatalf("unexpected seed file %q", got)
	}
}

type fakeTx struct {
	pgx.Tx
	conn *fakeConn
}

func (tx *fakeTx) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	c := tx.conn
	if len(c.execErrs) > 0 {
		err := c.execErrs[0]
		c.execErrs = c.execErrs[1:]
		if err != nil {
			return pgconn.CommandTag{}, err
		}
	}
	c.statements = append(c.statements, sql)
	return pgconn.CommandTag{}, nil
}

func (tx *fakeTx) Commit(context.Context) error {
	tx.conn.commits++
	return nil
}

func (tx *fakeTx) Rollback(context.Context) error {
	tx.conn.rollbacks++
	return nil
}

type fakeConn struct {
	begins     int
	commits    int
	rollbacks  int
	execErrs   []error
	statements []string
}

func (c *fakeConn) BeginTx(_ context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
	if opts.IsoLevel != pgx.Serializable {
		return nil, fmt.Errorf("unexpected isolation level %q", opts.IsoLevel)
	}
	c.begins++
	return &fakeTx{conn: c}, nil
}

func TestApplyMigrationRetriesTransientErrors(t *testing.T) {
	conn := &fakeConn{execErrs: []error{&pgconn.PgError{Code: "40001"}}}
	var out bytes.Buffer

	if err := applyMigrationWithRetry(context.Background(), conn, &out, "0001_a.sql", "CREATE TABLE a ();"); err != nil {
		t.Fatalf("apply migration: %v", err)
	}
	if conn.begins != 2 || conn.commits != 1 || conn.rollbacks != 1 {
		t.Fatalf("unexpected transaction counts begins=%d commits=%d rollbacks=%d", conn.begins, conn.commits, conn.rollbacks)
	}
	if len(conn.statements) != 2 || !strings.Contains(conn.statements[1], "schema_migrations") {
		t.Fatalf("expected migration and bookkeeping statements got %v", conn.statements)
	}
	if !strings.Contains(out.String(), "transient error applying migration 0001_a.sql (attempt 1/3)") {
		t.Fatalf("expected retry notice got %q", out.String())
	}
}

func TestApplyMigrationStopsOnPermanentErrors(t *testing.T) {
	syntax := &pgconn.PgError{Code: "42601", Message: "syntax error"}
	conn := &fakeConn{execErrs: []error{syntax}}

	err := applyMigrationWithRetry(context.Background(), conn, &bytes.Buffer{}, "0001_a.sql", "CREATE TABLE")
	if err == nil {
		t.Fatal("expected error")
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "42601" {
		t.Fatalf("expected syntax error to surface got %v", err)
	}
	if conn.begins != 1 || conn.commits != 0 {
		t.Fatalf("expected a single attempt got begins=%d commits=%d", conn.begins, conn.commits)
	}
}

func TestApplyMigrationGivesUpAfterMaxRetries(t *testing.T) {
	deadlock := &pgconn.PgError{Code: "40P01"}
	conn := &fakeConn{execErrs: []error{deadlock, deadlock, deadlock}}

	err := applyMigrationWithRetry(context.Background(), conn, &bytes.Buffer{}, "0001_a.sql", "SELECT 1")
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if conn.begins != migrationMaxRetries {
		t.Fatalf("expected %d attempts got %d", migrationMaxRetries, conn.begins)
	}
}

func TestShouldRetryMigration(t *testing.T) {
	cases := map[string]struct {
		err  error
		want bool
	}{
		"nil":           {nil, false},
		"deadline":      {fmt.Errorf("exec: %w", context.DeadlineExceeded), true},
		"serialization": {&pgconn.PgError{Code: "40001"}, true},
		"lock":          {fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: "55P03"}), true},
		"tx closed":     {pgx.ErrTxClosed, true},
		"syntax":        {&pgconn.PgError{Code: "42601"}, false},
		"other":         {errors.New("boom"), false},
	}
	for name, tc := range cases {
		if got := shouldRetryMigration(tc.err); got != tc.want {
			t.Fatalf("%s: expected %v got %v", name, tc.want, got)
		}
	}
}
