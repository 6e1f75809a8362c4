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


package coo

import (
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/apache/graphprep-go/common"
)

// Strategy selects the algorithm used by Sort.
type Strategy int

const (
	// StrategyAuto picks an algorithm from the matrix size and key range.
	StrategyAuto Strategy = iota
	// StrategyComparison sorts with comparisons, split across workers for
	// large inputs.
	StrategyComparison
	// StrategyRadix sorts with least-significant-digit counting passes. It
	// requires non-negative keys.
	StrategyRadix
)

const (
	radixMinNNZ    = 1 << 16
	parallelMinNNZ = 1 << 14
)

func (s Strategy) String() string {
	switch s {
	case StrategyAuto:
		return "auto"
	case StrategyComparison:
		return "comparison"
	case StrategyRadix:
		return "radix"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

type sortConfig struct {
	strategy    Strategy
	parallelism int
}

// SortOption configures Sort.
type SortOption func(*sortConfig)

// WithStrategy forces a sort algorithm. The default is StrategyAuto.
func WithStrategy(s Strategy) SortOption {
	return func(c *sortConfig) {
		c.strategy = s
	}
}

// WithParallelism bounds the number of goroutines used by the comparison
// sort. The default is GOMAXPROCS.
func WithParallelism(n int) SortOption {
	return func(c *sortConfig) {
		c.parallelism = n
	}
}

func newSortConfig(opts []SortOption) (sortConfig, error) {
	cfg := sortConfig{
		strategy:    StrategyAuto,
		parallelism: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.parallelism < 1 {
		return cfg, fmt.Errorf("%w: parallelism must be at least 1, got %d",
			common.ErrInvalidArgument, cfg.parallelism)
	}
	switch cfg.strategy {
	case StrategyAuto, StrategyComparison, StrategyRadix:
	default:
		return cfg, fmt.Errorf("%w: unknown sort strategy %v", common.ErrInvalidArgument, cfg.strategy)
	}
	return cfg, nil
}

// SortStrategy reports the algorithm Sort would run with the same arguments.
// It fails exactly when Sort would fail, without touching the matrix.
func (m *Matrix[T]) SortStrategy(sortColumn bool, opts ...SortOption) (Strategy, error) {
	if err := m.validate(); err != nil {
		return StrategyAuto, err
	}
	cfg, err := newSortConfig(opts)
	if err != nil {
		return StrategyAuto, err
	}
	return m.resolveStrategy(cfg, sortColumn)
}

func (m *Matrix[T]) resolveStrategy(cfg sortConfig, sortColumn bool) (Strategy, error) {
	nonNegative := func() bool {
		if len(m.Row) == 0 {
			return true
		}
		if common.Min(m.Row) < 0 {
			return false
		}
		return !sortColumn || common.Min(m.Col) >= 0
	}
	switch cfg.strategy {
	case StrategyRadix:
		if !nonNegative() {
			return StrategyRadix, fmt.Errorf("%w: radix sort requires non-negative indices",
				common.ErrInvalidArgument)
		}
		return StrategyRadix, nil
	case StrategyComparison:
		return StrategyComparison, nil
	}
	if m.NNZ() >= radixMinNNZ && nonNegative() {
		return StrategyRadix, nil
	}
	return StrategyComparison, nil
}

// Sort reorders the matrix in place by row, or by (row, col) when
// sortColumn is true. The same permutation is applied to Row, Col and Data.
// A matrix without Data gets Data = 0..nnz-1 first, so afterwards Data[k]
// holds the original position of entry k.
//
// The ordering among entries with equal keys is unspecified.
func (m *Matrix[T]) Sort(sortColumn bool, opts ...SortOption) error {
	strategy, err := m.SortStrategy(sortColumn, opts...)
	if err != nil {
		return err
	}
	cfg, _ := newSortConfig(opts)

	if !m.HasData() {
		m.Data = make([]T, m.NNZ())
		common.Iota(m.Data, 0)
	}
	s := tuples[T]{row: m.Row, col: m.Col, data: m.Data}
	switch {
	case strategy == StrategyRadix:
		radixSort(s, sortColumn)
	case cfg.parallelism > 1 && s.Len() >= parallelMinNNZ:
		parallelSort(s, sortColumn, cfg.parallelism)
	default:
		sort.Sort(s.sorter(sortColumn))
	}

	m.RowSorted = true
	m.ColSorted = sortColumn
	return nil
}

// Sorted returns a sorted copy of the matrix and leaves m untouched.
func (m *Matrix[T]) Sorted(sortColumn bool, opts ...SortOption) (*Matrix[T], error) {
	if err := m.validate(); err != nil {
		return nil, err
	}
	c := m.Clone()
	if err := c.Sort(sortColumn, opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// parallelSort sorts contiguous runs concurrently and then merges them
// pairwise, ping-ponging between s and a scratch buffer of the same size.
func parallelSort[T common.IDType](s tuples[T], sortColumn bool, workers int) {
	n := s.Len()
	runLen := (n + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += runLen {
		hi := min(lo+runLen, n)
		g.Go(func() error {
			sort.Sort(s.slice(lo, hi).sorter(sortColumn))
			return nil
		})
	}
	_ = g.Wait()

	if runLen >= n {
		return
	}
	src, dst := s, newTuples[T](n)
	inScratch := false
	for width := runLen; width < n; width *= 2 {
		var mg errgroup.Group
		mg.SetLimit(workers)
		for lo := 0; lo < n; lo += 2 * width {
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mg.Go(func() error {
				mergeRuns(src, dst, lo, mid, hi, sortColumn)
				return nil
			})
		}
		_ = mg.Wait()
		src, dst = dst, src
		inScratch = !inScratch
	}
	if inScratch {
		s.copyFrom(src)
	}
}

// mergeRuns merges the sorted runs src[lo:mid] and src[mid:hi] into
// dst[lo:hi]. Ties are taken from the left run.
func mergeRuns[T common.IDType](src, dst tuples[T], lo, mid, hi int, sortColumn bool) {
	i, j := lo, mid
	for k := lo; k < hi; k++ {
		if j >= hi || (i < mid && !recordLess(src, j, src, i, sortColumn)) {
			dst.assign(k, src, i)
			i++
		} else {
			dst.assign(k, src, j)
			j++
		}
	}
}
