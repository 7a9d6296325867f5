package library

import (
	"context"

	"github.com/sourcegraph/conc/pool"
	"golang.org/x/text/unicode/norm"

	"github.com/hedibld92/Grimovies/internal/logging"
	"github.com/hedibld92/Grimovies/internal/models"
)

// Built-in list names. Lists are located by name; nothing prevents duplicates.
const (
	WatchlistName = "À voir"
	FavoritesName = "Mes favoris"
	WatchedName   = "Films vus"
)

// DefaultList describes a list provisioned on the first profile visit.
type DefaultList struct {
	Name        string
	Description string
}

// DefaultLists are created when a user owns no list yet.
var DefaultLists = []DefaultList{
	{Name: WatchlistName, Description: "Films que je veux regarder"},
	{Name: FavoritesName, Description: "Mes films préférés"},
	{Name: WatchedName, Description: "Films que j'ai déjà regardés"},
}

func canonicalName(name string) string {
	return norm.NFC.String(name)
}

// FindByName returns the first list whose name matches exactly, up to Unicode
// composition.
func FindByName(lists []models.List, name string) (models.List, bool) {
	want := canonicalName(name)
	for _, list := range lists {
		if canonicalName(list.Name) == want {
			return list, true
		}
	}
	return models.List{}, false
}

// Watchlist returns the user's watchlist.
func (s *Service) Watchlist(ctx context.Context, userID string) (models.List, error) {
	lists, err := s.GetUserLists(ctx, userID)
	if err != nil {
		return models.List{}, err
	}
	list, ok := FindByName(lists, WatchlistName)
	if !ok {
		return models.List{}, ErrWatchlistMissing
	}
	return list, nil
}

// EnsureDefaultLists returns the user's lists, provisioning DefaultLists concurrently
// when the user has none. Provisioning failures are logged and the lists read after
// the attempt are returned.
func (s *Service) EnsureDefaultLists(ctx context.Context, userID string) ([]models.List, error) {
	lists, err := s.GetUserLists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(lists) > 0 {
		return lists, nil
	}

	p := pool.New().WithErrors().WithContext(ctx)
	for _, def := range DefaultLists {
		p.Go(func(ctx context.Context) error {
			_, err := s.CreateList(ctx, userID, def.Name, def.Description)
			return err
		})
	}
	if err := p.Wait(); err != nil {
		logging.FromContext(ctx).Warn("default list provisioning incomplete", "user_id", userID, "error", err)
	}

	return s.GetUserLists(ctx, userID)
}
