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


// Package subgraph builds node-induced, edge-induced and sampled subgraphs of
// a graph stored as a coordinate matrix, where row i col j is an edge from
// node i to node j.
//
// Edges are identified by their position in the input matrix unless the
// matrix carries Data, in which case Data holds the edge ids.
package subgraph

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/apache/graphprep-go/common"
	"github.com/apache/graphprep-go/coo"
)

// Subgraph is a graph extracted from a parent graph.
type Subgraph[T common.IDType] struct {
	// Graph holds the extracted edges. Graph.Data[k] indexes InducedEdges.
	Graph *coo.Matrix[T]
	// InducedNodes maps each node of Graph to its parent node id. It is nil
	// when the parent's node ids were kept.
	InducedNodes []T
	// InducedEdges maps each edge position of Graph to its parent edge id.
	InducedEdges []T
}

type config struct {
	log        *zap.Logger
	sorted     bool
	sortColumn bool
	sortOpts   []coo.SortOption
}

// Option configures subgraph extraction.
type Option func(*config)

// WithLogger sets the logger for debug output. The default discards
// everything.
func WithLogger(log *zap.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

// WithSortedOutput sorts the resulting graph by row, and by column within
// each row when sortColumn is set.
func WithSortedOutput(sortColumn bool, opts ...coo.SortOption) Option {
	return func(c *config) {
		c.sorted = true
		c.sortColumn = sortColumn
		c.sortOpts = opts
	}
}

func newConfig(opts []Option) *config {
	c := &config{log: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	return c
}

// build wraps the extracted edges in a matrix, sorting it if requested.
// A nil data becomes 0..nnz-1.
func build[T common.IDType](c *config, numRows, numCols int64, row, col, data []T) (*coo.Matrix[T], error) {
	if data == nil {
		data = make([]T, len(row))
		common.Iota(data, 0)
	}
	m, err := coo.NewMatrix(numRows, numCols, row, col, data)
	if err != nil {
		return nil, err
	}
	if !c.sorted {
		return m, nil
	}
	strategy, err := m.SortStrategy(c.sortColumn, c.sortOpts...)
	if err != nil {
		return nil, err
	}
	c.log.Debug("sorting subgraph",
		zap.Stringer("strategy", strategy),
		zap.Int("nnz", m.NNZ()),
		zap.Bool("sortColumn", c.sortColumn),
	)
	if err := m.Sort(c.sortColumn, c.sortOpts...); err != nil {
		return nil, err
	}
	return m, nil
}

func checkGraph[T common.IDType](g *coo.Matrix[T]) error {
	if g == nil {
		return fmt.Errorf("%w: nil graph", common.ErrInvalidArgument)
	}
	if len(g.Row) != len(g.Col) || (g.HasData() && len(g.Data) != len(g.Row)) {
		return fmt.Errorf("%w: graph arrays have mismatched lengths", common.ErrInvalidArgument)
	}
	return nil
}

// edgeID returns the id of the edge at position pos of g.
func edgeID[T common.IDType](g *coo.Matrix[T], pos int) T {
	if g.HasData() {
		return g.Data[pos]
	}
	return T(pos)
}
