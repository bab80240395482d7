// Proximus - Neighborhood-Based Collaborative Filtering for MovieLens Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/proximus

package dataset

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// genreNames lists the 19 MovieLens genre flag columns in file order.
var genreNames = [19]string{
	"unknown", "Action", "Adventure", "Animation", "Children's", "Comedy",
	"Crime", "Documentary", "Drama", "Fantasy", "Film-Noir", "Horror",
	"Musical", "Mystery", "Romance", "Sci-Fi", "Thriller", "War", "Western",
}

// itemFieldCount is the fixed u.item column count:
// id|title|release date|video release date|IMDb URL|19 genre flags.
const itemFieldCount = 24

// releaseDateLayout matches u.item release dates such as "01-Jan-1995".
const releaseDateLayout = "02-Jan-2006"

// Item is one catalog entry from u.item.
type Item struct {
	// ID is the 1-based MovieLens item id.
	ID int

	// Title is the display title with the trailing "(year)" marker removed.
	Title string

	// ReleaseYear is the year from the release date column, 0 when empty.
	ReleaseYear int

	// Genres names the set genre flags, in file column order.
	Genres []string
}

// Catalog maps item ids to their u.item entries.
type Catalog struct {
	items map[int]Item
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int { return len(c.items) }

// Item returns the catalog entry for id.
func (c *Catalog) Item(id int) (Item, bool) {
	it, ok := c.items[id]
	return it, ok
}

// Title returns the display title for id, falling back to "item <id>" when
// the catalog has no entry.
func (c *Catalog) Title(id int) string {
	if it, ok := c.items[id]; ok {
		return it.Title
	}
	return fmt.Sprintf("item %d", id)
}

// LoadCatalog parses the pipe-separated item catalog at path, typically
// <data dir>/u.item. The file is ISO-8859-1 encoded; titles come back
// transcoded to UTF-8.
func LoadCatalog(ctx context.Context, path string, logger zerolog.Logger) (*Catalog, error) {
	log := logger.With().Str("component", "dataset").Logger()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open items file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("Error closing items file")
		}
	}()

	items := make(map[int]Item)

	scanner := bufio.NewScanner(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("scan items: %w", err)
			}
		}

		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		item, err := parseItemLine(line)
		if err != nil {
			return nil, fmt.Errorf("%w: %s:%d: %v", ErrMalformedData, path, lineNo, err)
		}
		if _, exists := items[item.ID]; exists {
			return nil, fmt.Errorf("%w: %s:%d: duplicate item id %d", ErrMalformedData, path, lineNo, item.ID)
		}
		items[item.ID] = item
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read items file: %w", err)
	}

	log.Info().Str("path", path).Int("items", len(items)).Msg("Item catalog loaded")

	return &Catalog{items: items}, nil
}

// parseItemLine parses one pipe-separated u.item line.
func parseItemLine(line string) (Item, error) {
	fields := strings.Split(line, "|")
	if len(fields) != itemFieldCount {
		return Item{}, fmt.Errorf("%d fields, want %d", len(fields), itemFieldCount)
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil || id < 1 {
		return Item{}, fmt.Errorf("item id %q: not a positive integer", fields[0])
	}

	item := Item{
		ID:    id,
		Title: cleanTitle(fields[1]),
	}

	if fields[2] != "" {
		released, err := time.Parse(releaseDateLayout, fields[2])
		if err != nil {
			return Item{}, fmt.Errorf("release date %q: %v", fields[2], err)
		}
		item.ReleaseYear = released.Year()
	}

	for i, flag := range fields[5:] {
		switch flag {
		case "0":
		case "1":
			item.Genres = append(item.Genres, genreNames[i])
		default:
			return Item{}, fmt.Errorf("genre flag %q: must be 0 or 1", flag)
		}
	}

	return item, nil
}

// cleanTitle strips the trailing "(year)" marker MovieLens appends to
// titles, so "Toy Story (1995)" becomes "Toy Story". Earlier parentheses,
// such as alternate titles, are kept.
func cleanTitle(raw string) string {
	title := strings.TrimSpace(raw)
	if strings.HasSuffix(title, ")") {
		if open := strings.LastIndex(title, " ("); open > 0 {
			title = title[:open]
		}
	}
	return strings.TrimSpace(title)
}
