// Proximus - Neighborhood-Based Collaborative Filtering for MovieLens Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/proximus

package recommend

import (
	"testing"
)

func TestNewMatrix(t *testing.T) {
	tests := []struct {
		name    string
		rows    int
		cols    int
		wantErr bool
	}{
		{name: "valid", rows: 3, cols: 4, wantErr: false},
		{name: "single cell", rows: 1, cols: 1, wantErr: false},
		{name: "zero rows", rows: 0, cols: 4, wantErr: true},
		{name: "zero cols", rows: 3, cols: 0, wantErr: true},
		{name: "negative rows", rows: -1, cols: 4, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMatrix(tt.rows, tt.cols)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewMatrix(%d, %d) expected error, got nil", tt.rows, tt.cols)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewMatrix(%d, %d) unexpected error: %v", tt.rows, tt.cols, err)
			}
			if m.Rows() != tt.rows || m.Cols() != tt.cols {
				t.Errorf("dimensions = %dx%d, want %dx%d", m.Rows(), m.Cols(), tt.rows, tt.cols)
			}
			if m.ObservedCount() != 0 {
				t.Errorf("ObservedCount() = %d, want 0 for fresh matrix", m.ObservedCount())
			}
		})
	}
}

func TestMatrixSetAndRating(t *testing.T) {
	m, err := NewMatrix(2, 3)
	if err != nil {
		t.Fatalf("NewMatrix: %v", err)
	}

	m.Set(0, 1, 4)
	m.Set(1, 2, 2.5)

	if got := m.Rating(0, 1); got != 4 {
		t.Errorf("Rating(0, 1) = %v, want 4", got)
	}
	if got := m.Rating(1, 2); got != 2.5 {
		t.Errorf("Rating(1, 2) = %v, want 2.5", got)
	}
	if got := m.Rating(0, 0); got != 0 {
		t.Errorf("Rating(0, 0) = %v, want 0 for missing cell", got)
	}

	if !m.Observed(0, 1) {
		t.Error("Observed(0, 1) = false, want true")
	}
	if m.Observed(0, 0) {
		t.Error("Observed(0, 0) = true, want false")
	}
	if got := m.ObservedCount(); got != 2 {
		t.Errorf("ObservedCount() = %d, want 2", got)
	}
}

func TestMatrixSetZeroClears(t *testing.T) {
	m, err := NewMatrix(1, 2)
	if err != nil {
		t.Fatalf("NewMatrix: %v", err)
	}

	m.Set(0, 0, 5)
	if got := m.ObservedCount(); got != 1 {
		t.Fatalf("ObservedCount() = %d after Set, want 1", got)
	}

	m.Set(0, 0, 0)
	if m.Observed(0, 0) {
		t.Error("Observed(0, 0) = true after clearing, want false")
	}
	if got := m.ObservedCount(); got != 0 {
		t.Errorf("ObservedCount() = %d after clearing, want 0", got)
	}

	// Overwriting an observed cell must not double-count it.
	m.Set(0, 1, 3)
	m.Set(0, 1, 4)
	if got := m.ObservedCount(); got != 1 {
		t.Errorf("ObservedCount() = %d after overwrite, want 1", got)
	}
	if got := m.Rating(0, 1); got != 4 {
		t.Errorf("Rating(0, 1) = %v after overwrite, want 4", got)
	}
}

func TestNewMatrixFromRows(t *testing.T) {
	m, err := NewMatrixFromRows([][]float64{
		{5, 3, 0},
		{4, 0, 2},
	})
	if err != nil {
		t.Fatalf("NewMatrixFromRows: %v", err)
	}

	if m.Rows() != 2 || m.Cols() != 3 {
		t.Fatalf("dimensions = %dx%d, want 2x3", m.Rows(), m.Cols())
	}
	if got := m.ObservedCount(); got != 4 {
		t.Errorf("ObservedCount() = %d, want 4", got)
	}
	if m.Observed(0, 2) {
		t.Error("Observed(0, 2) = true, want false for 0 entry")
	}
	if got := m.Rating(1, 0); got != 4 {
		t.Errorf("Rating(1, 0) = %v, want 4", got)
	}
}

func TestNewMatrixFromRowsErrors(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
	}{
		{name: "empty", rows: nil},
		{name: "empty first row", rows: [][]float64{{}}},
		{name: "ragged rows", rows: [][]float64{{1, 2}, {3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewMatrixFromRows(tt.rows); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestMatrixRow(t *testing.T) {
	m, err := NewMatrixFromRows([][]float64{
		{5, 3, 0},
		{4, 0, 2},
	})
	if err != nil {
		t.Fatalf("NewMatrixFromRows: %v", err)
	}

	row := m.Row(1)
	want := []float64{4, 0, 2}
	if len(row) != len(want) {
		t.Fatalf("Row(1) length = %d, want %d", len(row), len(want))
	}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("Row(1)[%d] = %v, want %v", i, row[i], want[i])
		}
	}
}

func TestMatrixTranspose(t *testing.T) {
	m, err := NewMatrixFromRows([][]float64{
		{5, 3, 0},
		{4, 0, 2},
	})
	if err != nil {
		t.Fatalf("NewMatrixFromRows: %v", err)
	}

	tr := m.Transpose()
	if tr.Rows() != 3 || tr.Cols() != 2 {
		t.Fatalf("transpose dimensions = %dx%d, want 3x2", tr.Rows(), tr.Cols())
	}
	if got := tr.ObservedCount(); got != m.ObservedCount() {
		t.Errorf("transpose ObservedCount() = %d, want %d", got, m.ObservedCount())
	}

	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			if tr.Rating(c, r) != m.Rating(r, c) {
				t.Errorf("Transpose()(%d, %d) = %v, want %v", c, r, tr.Rating(c, r), m.Rating(r, c))
			}
			if tr.Observed(c, r) != m.Observed(r, c) {
				t.Errorf("Transpose() observed (%d, %d) = %v, want %v", c, r, tr.Observed(c, r), m.Observed(r, c))
			}
		}
	}

	// The transpose must not share state with the original.
	tr.Set(0, 0, 1)
	if m.Rating(0, 0) == 1 {
		t.Error("mutating the transpose changed the original matrix")
	}
}
