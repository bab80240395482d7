// Proximus - Neighborhood-Based Collaborative Filtering for MovieLens Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/proximus

package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/tomtom215/proximus/internal/dataset"
	"github.com/tomtom215/proximus/internal/recommend"
)

// separatorWidth matches the classic report block width.
const separatorWidth = 75

// Renderer writes prediction results to a writer. The catalog is optional;
// without one, items render as "item <id>".
type Renderer struct {
	w       io.Writer
	catalog *dataset.Catalog
}

// NewRenderer returns a renderer writing to w. catalog may be nil.
func NewRenderer(w io.Writer, catalog *dataset.Catalog) *Renderer {
	return &Renderer{w: w, catalog: catalog}
}

// Result renders one prediction as a text block.
func (r *Renderer) Result(userID, itemID int, res *recommend.Result) error {
	var b strings.Builder
	r.writeResult(&b, userID, itemID, res)

	_, err := io.WriteString(r.w, b.String())
	return err
}

// Recommendation renders the user-based and item-based blocks of a combined
// prediction, user-based first.
func (r *Renderer) Recommendation(userID, itemID int, rec *recommend.Recommendation) error {
	var b strings.Builder
	r.writeResult(&b, userID, itemID, rec.UserBased)
	r.writeResult(&b, userID, itemID, rec.ItemBased)

	_, err := io.WriteString(r.w, b.String())
	return err
}

// JSON renders v as indented JSON. Degenerate rating fields come out as
// null via the result's own marshaller.
func (r *Renderer) JSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	data = append(data, '\n')

	_, err = r.w.Write(data)
	return err
}

func (r *Renderer) writeResult(b *strings.Builder, userID, itemID int, res *recommend.Result) {
	sep := strings.Repeat("-", separatorWidth)

	fmt.Fprintf(b, "%s-based rating prediction for user %d on %s (k=%d)\n",
		modeLabel(res.Metadata.Mode), userID, r.itemLabel(itemID), res.Metadata.RequestedK)
	fmt.Fprintln(b, sep)
	fmt.Fprintf(b, "Nearest neighbors:  %s\n", formatInts(res.NeighborIDs))
	fmt.Fprintf(b, "Neighbor ratings:   %s\n", formatRatings(res.NeighborRatings))
	fmt.Fprintf(b, "Average rating:     %s\n", formatRating(res.TargetAvg))
	if res.Degenerate {
		fmt.Fprintf(b, "Predicted rating:   %s (insufficient data)\n", formatRating(res.Predicted))
	} else {
		fmt.Fprintf(b, "Predicted rating:   %s\n", formatRating(res.Predicted))
	}
	fmt.Fprintf(b, "Actual rating:      %s\n", formatRating(res.Actual))
	fmt.Fprintln(b, sep)
}

// itemLabel resolves an item id to its catalog title when one is attached.
func (r *Renderer) itemLabel(itemID int) string {
	if r.catalog == nil {
		return fmt.Sprintf("item %d", itemID)
	}
	return r.catalog.Title(itemID)
}

// modeLabel capitalizes a mode name for the block header.
func modeLabel(mode string) string {
	switch mode {
	case "user":
		return "User"
	case "item":
		return "Item"
	default:
		return mode
	}
}

// formatRating renders a rating with two decimals, or "n/a" for NaN.
func formatRating(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// formatInts renders ids as "[4, 2]".
func formatInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// formatRatings renders ratings as "[3, 2]", trimming trailing zeros.
func formatRatings(ratings []float64) string {
	parts := make([]string, len(ratings))
	for i, v := range ratings {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
