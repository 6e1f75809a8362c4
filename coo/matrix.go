/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */


// Package coo provides in-place sorting of sparse matrices in coordinate
// format.
//
// A Matrix keeps three parallel arrays: row indices, column indices and a
// per-entry payload (usually the original edge id). Every reordering applies
// the same permutation to all three arrays, and the RowSorted and ColSorted
// flags always describe the current order.
package coo

import (
	"fmt"

	"github.com/cockroachdb/swiss"

	"github.com/apache/graphprep-go/common"
)

// Matrix is a sparse matrix in coordinate format.
//
// Data may be nil, meaning the matrix has no payload yet. Sort fills it with
// 0..nnz-1 before reordering so the original positions can be recovered.
type Matrix[T common.IDType] struct {
	NumRows int64
	NumCols int64
	Row     []T
	Col     []T
	Data    []T

	RowSorted bool
	ColSorted bool
}

// NewMatrix builds a matrix over the given arrays without copying them. The
// sortedness flags are computed from the data.
func NewMatrix[T common.IDType](numRows, numCols int64, row, col, data []T) (*Matrix[T], error) {
	m := &Matrix[T]{
		NumRows: numRows,
		NumCols: numCols,
		Row:     row,
		Col:     col,
		Data:    data,
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	m.RowSorted, m.ColSorted = IsSorted(m)
	return m, nil
}

func (m *Matrix[T]) validate() error {
	if m.NumRows < 0 || m.NumCols < 0 {
		return fmt.Errorf("%w: negative shape (%d, %d)", common.ErrInvalidArgument, m.NumRows, m.NumCols)
	}
	if len(m.Row) != len(m.Col) {
		return fmt.Errorf("%w: row and col lengths differ (%d != %d)",
			common.ErrInvalidArgument, len(m.Row), len(m.Col))
	}
	if m.Data != nil && len(m.Data) != len(m.Row) {
		return fmt.Errorf("%w: data length %d does not match nnz %d",
			common.ErrInvalidArgument, len(m.Data), len(m.Row))
	}
	return nil
}

// NNZ returns the number of stored entries.
func (m *Matrix[T]) NNZ() int {
	return len(m.Row)
}

// HasData returns true if the matrix carries a payload array.
func (m *Matrix[T]) HasData() bool {
	return m.Data != nil
}

// Clone returns a deep copy of the matrix.
func (m *Matrix[T]) Clone() *Matrix[T] {
	c := *m
	c.Row = append([]T(nil), m.Row...)
	c.Col = append([]T(nil), m.Col...)
	if m.Data != nil {
		c.Data = append(make([]T, 0, len(m.Data)), m.Data...)
	}
	return &c
}

// IsSorted reports whether the rows are non-decreasing and, if so, whether
// the columns are non-decreasing within every run of equal rows. It reads
// each entry once and never mutates m.
func IsSorted[T common.IDType](m *Matrix[T]) (rowSorted, colSorted bool) {
	row, col := m.Row, m.Col
	rowSorted = true
	colSorted = true
	for i := 1; rowSorted && i < len(row); i++ {
		rowSorted = row[i-1] <= row[i]
		colSorted = colSorted && (row[i-1] < row[i] || col[i-1] <= col[i])
	}
	if !rowSorted {
		colSorted = false
	}
	return rowSorted, colSorted
}

type coordinate[T common.IDType] struct {
	row, col T
}

// HasDuplicate returns true if some (row, col) pair is stored more than once.
func (m *Matrix[T]) HasDuplicate() bool {
	if m.RowSorted && m.ColSorted {
		for i := 1; i < len(m.Row); i++ {
			if m.Row[i-1] == m.Row[i] && m.Col[i-1] == m.Col[i] {
				return true
			}
		}
		return false
	}
	seen := swiss.New[coordinate[T], struct{}](len(m.Row))
	for i := range m.Row {
		c := coordinate[T]{row: m.Row[i], col: m.Col[i]}
		if _, ok := seen.Get(c); ok {
			return true
		}
		seen.Put(c, struct{}{})
	}
	return false
}
