package views

import (
	"errors"
	"strings"
	"testing"

	"github.com/wgonzales/catalogd/internal/explore"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPutGetRoundTrip(t *testing.T) {
	store := openStore(t)

	sel := explore.Selection{
		Types:     []string{"Movie"},
		Countries: []string{"India"},
		YearFrom:  2010,
		YearTo:    2021,
	}
	if err := store.Put("indian-movies", sel); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := store.Get("indian-movies")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(got.Types) != 1 || got.Types[0] != "Movie" {
		t.Errorf("Types = %v, want [Movie]", got.Types)
	}
	if len(got.Countries) != 1 || got.Countries[0] != "India" {
		t.Errorf("Countries = %v, want [India]", got.Countries)
	}
	if got.YearFrom != 2010 || got.YearTo != 2021 {
		t.Errorf("year range = %d-%d, want 2010-2021", got.YearFrom, got.YearTo)
	}
}

func TestPutReplacesExisting(t *testing.T) {
	store := openStore(t)

	if err := store.Put("view", explore.Selection{YearFrom: 2000, YearTo: 2010}); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := store.Put("view", explore.Selection{YearFrom: 2015, YearTo: 2020}); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := store.Get("view")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.YearFrom != 2015 {
		t.Errorf("YearFrom = %d, want 2015", got.YearFrom)
	}
}

func TestGetMissing(t *testing.T) {
	store := openStore(t)

	_, err := store.Get("nope")
	if !errors.Is(err, ErrViewNotFound) {
		t.Errorf("Get() error = %v, want ErrViewNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	store := openStore(t)

	if err := store.Put("doomed", explore.Selection{}); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := store.Delete("doomed"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.Get("doomed"); !errors.Is(err, ErrViewNotFound) {
		t.Errorf("Get() after delete = %v, want ErrViewNotFound", err)
	}
	if err := store.Delete("doomed"); !errors.Is(err, ErrViewNotFound) {
		t.Errorf("Delete() twice = %v, want ErrViewNotFound", err)
	}
}

func TestListSorted(t *testing.T) {
	store := openStore(t)

	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := store.Put(name, explore.Selection{}); err != nil {
			t.Fatalf("Put(%q) error = %v", name, err)
		}
	}

	names, err := store.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	want := []string{"alpha", "mid", "zeta"}
	if len(names) != len(want) {
		t.Fatalf("List() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestInvalidNames(t *testing.T) {
	store := openStore(t)

	tests := []struct {
		name string
		key  string
	}{
		{"empty", ""},
		{"too long", strings.Repeat("x", maxNameLen+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := store.Put(tt.key, explore.Selection{}); !errors.Is(err, ErrInvalidViewName) {
				t.Errorf("Put(%q) error = %v, want ErrInvalidViewName", tt.key, err)
			}
		})
	}
}
