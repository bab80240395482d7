// Proximus - Neighborhood-Based Collaborative Filtering for MovieLens Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/proximus

package report

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/proximus/internal/dataset"
	"github.com/tomtom215/proximus/internal/recommend"
)

func userResult() *recommend.Result {
	return &recommend.Result{
		Predicted:       3.4714764379020308,
		Actual:          0,
		TargetAvg:       4,
		NeighborIDs:     []int{4, 2},
		NeighborRatings: []float64{3, 2},
		Metadata: recommend.Metadata{
			RequestID:  "req-1",
			Mode:       "user",
			RequestedK: 2,
			K:          2,
		},
	}
}

func TestRendererResult(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, nil)

	if err := r.Result(1, 3, userResult()); err != nil {
		t.Fatalf("Result: %v", err)
	}

	sep := strings.Repeat("-", 75)
	want := "User-based rating prediction for user 1 on item 3 (k=2)\n" +
		sep + "\n" +
		"Nearest neighbors:  [4, 2]\n" +
		"Neighbor ratings:   [3, 2]\n" +
		"Average rating:     4.00\n" +
		"Predicted rating:   3.47\n" +
		"Actual rating:      0.00\n" +
		sep + "\n"

	if got := buf.String(); got != want {
		t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRendererResultDegenerate(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, nil)

	res := &recommend.Result{
		Predicted:       math.NaN(),
		Actual:          0,
		TargetAvg:       math.NaN(),
		NeighborIDs:     []int{2},
		NeighborRatings: []float64{0},
		Degenerate:      true,
		Metadata: recommend.Metadata{
			Mode:       "user",
			RequestedK: 1,
			K:          1,
		},
	}

	if err := r.Result(1, 1, res); err != nil {
		t.Fatalf("Result: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Average rating:     n/a\n") {
		t.Errorf("output lacks n/a average:\n%s", out)
	}
	if !strings.Contains(out, "Predicted rating:   n/a (insufficient data)\n") {
		t.Errorf("output lacks degenerate marker:\n%s", out)
	}
}

func TestRendererResultWithCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "u.item")
	line := "3|Four Rooms (1995)|01-Jan-1995|||0|0|0|0|0|0|0|0|0|0|0|0|0|0|0|0|1|0|0\n"
	if err := os.WriteFile(path, []byte(line), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	catalog, err := dataset.LoadCatalog(context.Background(), path, zerolog.Nop())
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	var buf bytes.Buffer
	r := NewRenderer(&buf, catalog)

	if err := r.Result(1, 3, userResult()); err != nil {
		t.Fatalf("Result: %v", err)
	}

	if !strings.Contains(buf.String(), "for user 1 on Four Rooms (k=2)") {
		t.Errorf("output does not resolve the item title:\n%s", buf.String())
	}

	// Ids outside the catalog fall back to the generic label.
	buf.Reset()
	if err := r.Result(1, 99, userResult()); err != nil {
		t.Fatalf("Result: %v", err)
	}
	if !strings.Contains(buf.String(), "on item 99 (k=2)") {
		t.Errorf("output lacks fallback label:\n%s", buf.String())
	}
}

func TestRendererRecommendation(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, nil)

	itemRes := userResult()
	itemRes.Metadata.Mode = "item"
	itemRes.Predicted = 3.5931467445734153
	itemRes.NeighborIDs = []int{2, 1}
	itemRes.NeighborRatings = []float64{3, 5}
	itemRes.TargetAvg = 3

	rec := &recommend.Recommendation{UserBased: userResult(), ItemBased: itemRes}
	if err := r.Recommendation(1, 3, rec); err != nil {
		t.Fatalf("Recommendation: %v", err)
	}

	out := buf.String()
	userIdx := strings.Index(out, "User-based rating prediction")
	itemIdx := strings.Index(out, "Item-based rating prediction")
	if userIdx < 0 || itemIdx < 0 {
		t.Fatalf("output lacks one of the mode blocks:\n%s", out)
	}
	if userIdx > itemIdx {
		t.Error("item block precedes user block")
	}
	if got := strings.Count(out, strings.Repeat("-", 75)); got != 4 {
		t.Errorf("separator count = %d, want 4", got)
	}
	if !strings.Contains(out, "Predicted rating:   3.59\n") {
		t.Errorf("output lacks item prediction:\n%s", out)
	}
}

func TestRendererJSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, nil)

	res := userResult()
	res.Predicted = math.NaN()
	res.Degenerate = true

	if err := r.JSON(res); err != nil {
		t.Fatalf("JSON: %v", err)
	}

	out := buf.Bytes()
	if len(out) == 0 || out[len(out)-1] != '\n' {
		t.Error("JSON output does not end with a newline")
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded["predicted"] != nil {
		t.Errorf("predicted = %v, want null for NaN", decoded["predicted"])
	}
	if got, ok := decoded["degenerate"].(bool); !ok || !got {
		t.Errorf("degenerate = %v, want true", decoded["degenerate"])
	}
	meta, ok := decoded["metadata"].(map[string]interface{})
	if !ok {
		t.Fatalf("metadata missing: %v", decoded)
	}
	if meta["mode"] != "user" {
		t.Errorf("metadata.mode = %v, want user", meta["mode"])
	}
}
