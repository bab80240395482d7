// Proximus - Neighborhood-Based Collaborative Filtering for MovieLens Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/proximus

package recommend

import "fmt"

// Matrix is a dense rating matrix with 0 as the missing-rating sentinel.
// Rows are users and columns are items until Transpose swaps the axes.
//
// It exposes two views over one backing store:
//
//   - the zero-filled view (Rating, Row): missing cells read as 0; used for
//     vector similarity and as the authoritative observed-rating lookup
//   - the gap-aware view (Observed, ObservedCount): missing cells are
//     excluded from aggregation; used only to compute means
//
// Both views always agree on non-missing cells because Set writes the cell
// value and the observation mask together.
//
// A Matrix is mutable only while a loader populates it. The engine treats it
// as immutable after construction; nothing in this package writes to it
// afterwards.
type Matrix struct {
	rows, cols int
	cells      []float64 // row-major, 0 where unobserved
	observed   []bool    // row-major observation mask
	count      int       // observed cells
}

// NewMatrix returns an empty rows-by-cols matrix. Both dimensions must be
// positive.
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("matrix dimensions must be positive, got %dx%d", rows, cols)
	}
	return &Matrix{
		rows:     rows,
		cols:     cols,
		cells:    make([]float64, rows*cols),
		observed: make([]bool, rows*cols),
	}, nil
}

// NewMatrixFromRows builds a matrix from dense rows where 0 marks a missing
// rating. All rows must have equal length.
func NewMatrixFromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("matrix dimensions must be positive, got %dx0", len(rows))
	}

	m, err := NewMatrix(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != m.cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d", r, len(row), m.cols)
		}
		for c, v := range row {
			if v != 0 {
				m.Set(r, c, v)
			}
		}
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// ObservedCount returns the number of observed cells.
func (m *Matrix) ObservedCount() int { return m.count }

// Set records v as the observed rating at (row, col). Setting 0 clears the
// cell back to missing, keeping both views consistent: an observed 0 is not
// representable because 0 is the missing sentinel.
func (m *Matrix) Set(row, col int, v float64) {
	i := row*m.cols + col
	if m.observed[i] {
		m.count--
	}
	m.cells[i] = v
	m.observed[i] = v != 0
	if m.observed[i] {
		m.count++
	}
}

// Rating returns the zero-filled value at (row, col): the observed rating,
// or 0 when the cell is missing.
func (m *Matrix) Rating(row, col int) float64 {
	return m.cells[row*m.cols+col]
}

// Observed reports whether (row, col) holds an observed rating.
func (m *Matrix) Observed(row, col int) bool {
	return m.observed[row*m.cols+col]
}

// Row returns the zero-filled row vector. The returned slice aliases the
// matrix; callers must not modify it.
func (m *Matrix) Row(row int) []float64 {
	return m.cells[row*m.cols : (row+1)*m.cols]
}

// Transpose returns a new matrix with the axes swapped. The copy shares no
// state with the receiver.
func (m *Matrix) Transpose() *Matrix {
	t := &Matrix{
		rows:     m.cols,
		cols:     m.rows,
		cells:    make([]float64, len(m.cells)),
		observed: make([]bool, len(m.observed)),
		count:    m.count,
	}
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			src := r*m.cols + c
			dst := c*m.rows + r
			t.cells[dst] = m.cells[src]
			t.observed[dst] = m.observed[src]
		}
	}
	return t
}
