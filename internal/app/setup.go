package app

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
)

const envFile = ".env"

// setupOptions are the credentials written by the setup command. Empty values are
// prompted for on stdin.
type setupOptions struct {
	path        string
	force       bool
	supabaseURL string
	supabaseKey string
	tmdbKey     string
}

func parseSetupFlags(args []string, out io.Writer) (setupOptions, error) {
	var opts setupOptions
	fs := flag.NewFlagSet("setup", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&opts.path, "file", envFile, "path of the generated env file")
	fs.BoolVar(&opts.force, "force", false, "overwrite an existing env file without asking")
	fs.StringVar(&opts.supabaseURL, "supabase-url", os.Getenv("SUPABASE_URL"), "backend project URL")
	fs.StringVar(&opts.supabaseKey, "supabase-key", os.Getenv("SUPABASE_ANON_KEY"), "backend anonymous key")
	fs.StringVar(&opts.tmdbKey, "tmdb-key", os.Getenv("TMDB_API_KEY"), "catalog API key")
	if err := fs.Parse(args); err != nil {
		return setupOptions{}, err
	}
	return opts, nil
}

// runSetup writes the backend and catalog credentials to an env file, asking before
// replacing an existing one.
func runSetup(fsys afero.Fs, in io.Reader, out io.Writer, args []string) error {
	opts, err := parseSetupFlags(args, out)
	if err != nil {
		return err
	}

	prompt := bufio.NewScanner(in)
	ask := func(question string) string {
		fmt.Fprint(out, question)
		if !prompt.Scan() {
			return ""
		}
		return strings.TrimSpace(prompt.Text())
	}

	fmt.Fprintln(out, "Configuration de Grimovies")

	exists, err := afero.Exists(fsys, opts.path)
	if err != nil {
		return fmt.Errorf("check %s: %w", opts.path, err)
	}
	if exists && !opts.force {
		answer := ask("Un fichier .env existe déjà. Voulez-vous le remplacer ? (y/N): ")
		if !strings.EqualFold(answer, "y") {
			fmt.Fprintln(out, "Configuration annulée.")
			return nil
		}
	}

	if opts.supabaseURL == "" {
		opts.supabaseURL = ask("URL de votre projet Supabase: ")
	}
	if opts.supabaseKey == "" {
		opts.supabaseKey = ask("Clé anonyme Supabase: ")
	}
	if opts.tmdbKey == "" {
		opts.tmdbKey = ask("Clé API TMDB: ")
	}
	if err := prompt.Err(); err != nil {
		return fmt.Errorf("read answers: %w", err)
	}

	values, err := opts.env()
	if err != nil {
		return err
	}

	content, err := godotenv.Marshal(values)
	if err != nil {
		return fmt.Errorf("encode %s: %w", opts.path, err)
	}
	if err := afero.WriteFile(fsys, opts.path, []byte(content+"\n"), 0o600); err != nil {
		return fmt.Errorf("write %s: %w", opts.path, err)
	}

	fmt.Fprintln(out, "Configuration terminée !")
	fmt.Fprintln(out, "Lancez le serveur avec: grimovies serve")
	return nil
}

func (o setupOptions) env() (map[string]string, error) {
	u, err := url.Parse(strings.TrimSpace(o.supabaseURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid supabase url %q", o.supabaseURL)
	}
	if strings.TrimSpace(o.supabaseKey) == "" {
		return nil, errors.New("supabase anon key is required")
	}
	if strings.TrimSpace(o.tmdbKey) == "" {
		return nil, errors.New("tmdb api key is required")
	}

	return map[string]string{
		"SUPABASE_URL":      strings.TrimRight(u.String(), "/"),
		"SUPABASE_ANON_KEY": strings.TrimSpace(o.supabaseKey),
		"TMDB_API_KEY":      strings.TrimSpace(o.tmdbKey),
	}, nil
}
