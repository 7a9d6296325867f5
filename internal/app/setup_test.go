package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
)

func clearSetupEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_ANON_KEY", "")
	t.Setenv("TMDB_API_KEY", "")
}

func readEnvFile(t *testing.T, fs afero.Fs, path string) map[string]string {
	t.Helper()
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	values, err := godotenv.Unmarshal(string(raw))
	if err != nil {
		t.Fatalf("parse %s: %v", path, err)
	}
	return values
}

func TestSetupWritesEnvFromFlags(t *testing.T) {
	clearSetupEnv(t)
	fs := afero.NewMemMapFs()
	var out bytes.Buffer

	err := runSetup(fs, strings.NewReader(""), &out, []string{
		"-file", "/work/.env",
		"-supabase-url", "https://demo.supabase.co/",
		"-supabase-key", "anon-key",
		"-tmdb-key", "tmdb-key",
	})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	values := readEnvFile(t, fs, "/work/.env")
	if values["SUPABASE_URL"] != "https://demo.supabase.co" {
		t.Fatalf("unexpected SUPABASE_URL %q", values["SUPABASE_URL"])
	}
	if values["SUPABASE_ANON_KEY"] != "anon-key" || values["TMDB_API_KEY"] != "tmdb-key" {
		t.Fatalf("unexpected keys %+v", values)
	}
	if strings.Contains(out.String(), "Supabase:") {
		t.Fatalf("did not expect prompts when flags are set, got %q", out.String())
	}
}

func TestSetupPromptsForMissingValues(t *testing.T) {
	clearSetupEnv(t)
	fs := afero.NewMemMapFs()
	var out bytes.Buffer

	in := strings.NewReader("https://demo.supabase.co\nanon-key\ntmdb-key\n")
	if err := runSetup(fs, in, &out, []string{"-file", "/work/.env"}); err != nil {
		t.Fatalf("setup: %v", err)
	}

	values := readEnvFile(t, fs, "/work/.env")
	if values["TMDB_API_KEY"] != "tmdb-key" {
		t.Fatalf("expected prompted tmdb key got %+v", values)
	}
	if !strings.Contains(out.String(), "Clé API TMDB: ") {
		t.Fatalf("expected tmdb prompt in output %q", out.String())
	}
}

func TestSetupKeepsExistingFileUnlessConfirmed(t *testing.T) {
	clearSetupEnv(t)
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/work/.env", []byte("TMDB_API_KEY=old\n"), 0o600); err != nil {
		t.Fatalf("seed env file: %v", err)
	}
	flags := []string{"-file", "/work/.env", "-supabase-url", "https://demo.supabase.co", "-supabase-key", "anon", "-tmdb-key", "new"}

	var out bytes.Buffer
	if err := runSetup(fs, strings.NewReader("n\n"), &out, flags); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if !strings.Contains(out.String(), "Configuration annulée.") {
		t.Fatalf("expected cancellation message got %q", out.String())
	}
	if values := readEnvFile(t, fs, "/work/.env"); values["TMDB_API_KEY"] != "old" {
		t.Fatalf("expected existing file untouched got %+v", values)
	}

	if err := runSetup(fs, strings.NewReader("y\n"), &out, flags); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if values := readEnvFile(t, fs, "/work/.env"); values["TMDB_API_KEY"] != "new" {
		t.Fatalf("expected confirmed overwrite got %+v", values)
	}

	flags[len(flags)-1] = "forced"
	if err := runSetup(fs, strings.NewReader(""), &out, append([]string{"-force"}, flags...)); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if values := readEnvFile(t, fs, "/work/.env"); values["TMDB_API_KEY"] != "forced" {
		t.Fatalf("expected forced overwrite got %+v", values)
	}
}

func TestSetupRejectsInvalidValues(t *testing.T) {
	clearSetupEnv(t)
	fs := afero.NewMemMapFs()
	var out bytes.Buffer

	err := runSetup(fs, strings.NewReader(""), &out, []string{
		"-file", "/work/.env",
		"-supabase-url", "not a url",
		"-supabase-key", "anon",
		"-tmdb-key", "tmdb",
	})
	if err == nil {
		t.Fatal("expected invalid url error")
	}
	if exists, _ := afero.Exists(fs, "/work/.env"); exists {
		t.Fatal("env file should not be written on error")
	}

	if err := runSetup(fs, strings.NewReader("https://demo.supabase.co\n\n\n"), &out, []string{"-file", "/work/.env"}); err == nil {
		t.Fatal("expected missing key error")
	}
}
