// Proximus - Neighborhood-Based Collaborative Filtering for MovieLens Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/proximus

package dataset

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/proximus/internal/metrics"
	"github.com/tomtom215/proximus/internal/recommend"
)

// ErrMalformedData reports unparseable or inconsistent dataset content.
// The wrapping message names the file and line that failed.
var ErrMalformedData = errors.New("malformed dataset")

// ctxCheckInterval is how many lines pass between context checks while
// scanning a file.
const ctxCheckInterval = 4096

// ratingRecord is one parsed u.data line.
type ratingRecord struct {
	user   int
	item   int
	rating float64
}

// Loader reads a MovieLens 100k ratings file into a rating matrix. It
// implements recommend.Loader.
type Loader struct {
	path   string
	logger zerolog.Logger
}

// NewLoader returns a loader for the ratings file at path, typically
// <data dir>/u.data.
func NewLoader(path string, logger zerolog.Logger) *Loader {
	return &Loader{
		path:   path,
		logger: logger.With().Str("component", "dataset").Logger(),
	}
}

// Load parses the ratings file into a dense user-item matrix.
//
// The matrix is sized from the highest user and item id seen, so public id
// N lands at row or column N-1 and id gaps become empty rows or columns.
// Duplicate (user, item) pairs and unparseable lines abort the load with
// ErrMalformedData.
func (l *Loader) Load(ctx context.Context) (*recommend.Matrix, error) {
	start := time.Now()

	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open ratings file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			l.logger.Warn().Err(closeErr).Msg("Error closing ratings file")
		}
	}()

	records, maxUser, maxItem, err := l.scan(ctx, f)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s: no ratings", ErrMalformedData, l.path)
	}

	m, err := recommend.NewMatrix(maxUser, maxItem)
	if err != nil {
		return nil, fmt.Errorf("size rating matrix: %w", err)
	}
	for _, rec := range records {
		if m.Observed(rec.user-1, rec.item-1) {
			return nil, fmt.Errorf("%w: %s: duplicate rating for user %d item %d",
				ErrMalformedData, l.path, rec.user, rec.item)
		}
		m.Set(rec.user-1, rec.item-1, rec.rating)
	}

	elapsed := time.Since(start)
	l.logger.Info().
		Str("path", l.path).
		Int("users", m.Rows()).
		Int("items", m.Cols()).
		Int("ratings", m.ObservedCount()).
		Dur("duration", elapsed).
		Msg("Ratings loaded")
	metrics.RecordDatasetLoad(m.Rows(), m.Cols(), m.ObservedCount(), elapsed)

	return m, nil
}

// scan parses every rating line and tracks the highest ids seen, which
// become the matrix dimensions.
func (l *Loader) scan(ctx context.Context, f *os.File) ([]ratingRecord, int, int, error) {
	var (
		records []ratingRecord
		maxUser int
		maxItem int
		lineNo  int
	)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		if lineNo%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, 0, 0, fmt.Errorf("scan ratings: %w", err)
			}
		}

		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		rec, err := parseRatingLine(line)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("%w: %s:%d: %v", ErrMalformedData, l.path, lineNo, err)
		}

		records = append(records, rec)
		if rec.user > maxUser {
			maxUser = rec.user
		}
		if rec.item > maxItem {
			maxItem = rec.item
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, 0, fmt.Errorf("read ratings file: %w", err)
	}

	return records, maxUser, maxItem, nil
}

// parseRatingLine parses one "user<TAB>item<TAB>rating[<TAB>timestamp]"
// line. The timestamp column is ignored when present.
func parseRatingLine(line string) (ratingRecord, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < 3 {
		return ratingRecord{}, fmt.Errorf("%d fields, want at least 3", len(fields))
	}

	user, err := strconv.Atoi(fields[0])
	if err != nil {
		return ratingRecord{}, fmt.Errorf("user id %q: not an integer", fields[0])
	}
	item, err := strconv.Atoi(fields[1])
	if err != nil {
		return ratingRecord{}, fmt.Errorf("item id %q: not an integer", fields[1])
	}
	rating, err := strconv.Atoi(fields[2])
	if err != nil {
		return ratingRecord{}, fmt.Errorf("rating %q: not an integer", fields[2])
	}

	if user < 1 {
		return ratingRecord{}, fmt.Errorf("user id %d: must be >= 1", user)
	}
	if item < 1 {
		return ratingRecord{}, fmt.Errorf("item id %d: must be >= 1", item)
	}
	if rating < 1 || rating > 5 {
		return ratingRecord{}, fmt.Errorf("rating %d: must be in [1, 5]", rating)
	}

	return ratingRecord{user: user, item: item, rating: float64(rating)}, nil
}
