// Proximus - Neighborhood-Based Collaborative Filtering for MovieLens Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/proximus

package dataset

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestLoadCatalog(t *testing.T) {
	// u.item is ISO-8859-1: \xe9 below is a latin-1 e-acute, not UTF-8.
	content := "1|Toy Story (1995)|01-Jan-1995||http://us.imdb.com/M/title-exact?Toy%20Story%20(1995)|0|0|0|1|1|1|0|0|0|0|0|0|0|0|0|0|0|0|0\n" +
		"2|Cit\xe9 des enfants perdus, La (1995)|01-Jan-1995||http://us.imdb.com/M/title-exact?Cite|0|0|1|0|0|0|0|0|0|1|0|0|0|0|0|0|1|0|0\n"
	path := writeDataFile(t, "u.item", content)

	c, err := LoadCatalog(context.Background(), path, zerolog.Nop())
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}

	toy, ok := c.Item(1)
	if !ok {
		t.Fatal("Item(1) not found")
	}
	if toy.Title != "Toy Story" {
		t.Errorf("Title = %q, want %q", toy.Title, "Toy Story")
	}
	if toy.ReleaseYear != 1995 {
		t.Errorf("ReleaseYear = %d, want 1995", toy.ReleaseYear)
	}
	wantGenres := []string{"Animation", "Children's", "Comedy"}
	if len(toy.Genres) != len(wantGenres) {
		t.Fatalf("Genres = %v, want %v", toy.Genres, wantGenres)
	}
	for i := range wantGenres {
		if toy.Genres[i] != wantGenres[i] {
			t.Errorf("Genres[%d] = %q, want %q", i, toy.Genres[i], wantGenres[i])
		}
	}

	cite, ok := c.Item(2)
	if !ok {
		t.Fatal("Item(2) not found")
	}
	if cite.Title != "Cité des enfants perdus, La" {
		t.Errorf("Title = %q, want UTF-8 transcoded %q", cite.Title, "Cité des enfants perdus, La")
	}
}

func TestLoadCatalogEmptyReleaseDate(t *testing.T) {
	content := "267|unknown||||1|0|0|0|0|0|0|0|0|0|0|0|0|0|0|0|0|0|0\n"
	path := writeDataFile(t, "u.item", content)

	c, err := LoadCatalog(context.Background(), path, zerolog.Nop())
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	it, ok := c.Item(267)
	if !ok {
		t.Fatal("Item(267) not found")
	}
	if it.Title != "unknown" {
		t.Errorf("Title = %q, want %q", it.Title, "unknown")
	}
	if it.ReleaseYear != 0 {
		t.Errorf("ReleaseYear = %d, want 0 for empty date", it.ReleaseYear)
	}
	if len(it.Genres) != 1 || it.Genres[0] != "unknown" {
		t.Errorf("Genres = %v, want [unknown]", it.Genres)
	}
}

func TestLoadCatalogMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.item")

	_, err := LoadCatalog(context.Background(), path, zerolog.Nop())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v, want fs.ErrNotExist in chain", err)
	}
}

func TestLoadCatalogMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "too few fields", content: "1|Toy Story (1995)|01-Jan-1995\n"},
		{name: "bad item id", content: "x|Toy Story (1995)|01-Jan-1995|||0|0|0|0|0|0|0|0|0|0|0|0|0|0|0|0|0|0|0\n"},
		{name: "bad release date", content: "1|Toy Story (1995)|1995-01-01|||0|0|0|0|0|0|0|0|0|0|0|0|0|0|0|0|0|0|0\n"},
		{name: "bad genre flag", content: "1|Toy Story (1995)|01-Jan-1995|||0|0|2|0|0|0|0|0|0|0|0|0|0|0|0|0|0|0|0\n"},
		{
			name: "duplicate item id",
			content: "1|Toy Story (1995)|01-Jan-1995|||0|0|0|0|0|0|0|0|0|0|0|0|0|0|0|0|0|0|0\n" +
				"1|GoldenEye (1995)|01-Jan-1995|||0|1|1|0|0|0|0|0|0|0|0|0|0|0|0|0|1|0|0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDataFile(t, "u.item", tt.content)

			_, err := LoadCatalog(context.Background(), path, zerolog.Nop())
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrMalformedData) {
				t.Errorf("error = %v, want ErrMalformedData", err)
			}
		})
	}
}

func TestCatalogTitleFallback(t *testing.T) {
	c := &Catalog{items: map[int]Item{7: {ID: 7, Title: "Twelve Monkeys"}}}

	if got := c.Title(7); got != "Twelve Monkeys" {
		t.Errorf("Title(7) = %q, want %q", got, "Twelve Monkeys")
	}
	if got := c.Title(99); got != "item 99" {
		t.Errorf("Title(99) = %q, want %q", got, "item 99")
	}
}

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "Toy Story (1995)", want: "Toy Story"},
		{raw: "Shadows (Cienie) (1988)", want: "Shadows (Cienie)"},
		{raw: "unknown", want: "unknown"},
		{raw: "Brazil (1985)", want: "Brazil"},
		{raw: "  Heat (1995) ", want: "Heat"},
		{raw: "", want: ""},
	}

	for _, tt := range tests {
		if got := cleanTitle(tt.raw); got != tt.want {
			t.Errorf("cleanTitle(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
