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


package subgraph

import (
	"fmt"
	"slices"
	"sort"

	"go.uber.org/zap"

	"github.com/apache/graphprep-go/common"
	"github.com/apache/graphprep-go/coo"
	"github.com/apache/graphprep-go/random"
	"github.com/apache/graphprep-go/sampling"
)

// SampleEdges draws num edge positions from g, in proportion to prob when it
// is non-nil and uniformly otherwise, and returns the edge subgraph over g's
// node ids.
func SampleEdges[T common.IDType, F common.FloatType](rng random.Source, g *coo.Matrix[T], num T, prob []F, replace bool, opts ...Option) (*Subgraph[T], error) {
	if err := checkGraph(g); err != nil {
		return nil, err
	}
	if prob != nil && len(prob) != g.NNZ() {
		return nil, fmt.Errorf("%w: %d edge weights for %d edges", common.ErrInvalidArgument, len(prob), g.NNZ())
	}
	if num < 0 {
		return nil, fmt.Errorf("%w: negative sample count %d", common.ErrInvalidArgument, num)
	}
	cfg := newConfig(opts)

	edges := make([]T, num)
	if prob != nil {
		if err := sampling.Choice(rng, num, prob, edges, replace); err != nil {
			return nil, err
		}
	} else if err := sampling.UniformChoice(rng, num, T(g.NNZ()), edges, replace); err != nil {
		return nil, err
	}
	cfg.log.Debug("sampled edges",
		zap.Bool("weighted", prob != nil),
		zap.Bool("replace", replace),
		zap.Int("edges", len(edges)),
	)
	return EdgeSubgraph(g, edges, true, opts...)
}

// SampleNeighbors picks up to fanout outgoing edges of every node in rows,
// in proportion to prob when it is non-nil and uniformly otherwise. A
// negative fanout keeps every edge. Without replacement a node keeps all of
// its edges when it has at most fanout of them, and with weights only edges
// of positive weight are eligible.
//
// prob is indexed by edge position in g. The result has g's shape, holds the
// edges grouped by rows in the given order, and its Data holds the parent
// edge ids.
func SampleNeighbors[T common.IDType, F common.FloatType](rng random.Source, g *coo.Matrix[T], rows []T, fanout int, prob []F, replace bool, opts ...Option) (*coo.Matrix[T], error) {
	if err := checkGraph(g); err != nil {
		return nil, err
	}
	if prob != nil && len(prob) != g.NNZ() {
		return nil, fmt.Errorf("%w: %d edge weights for %d edges", common.ErrInvalidArgument, len(prob), g.NNZ())
	}
	for _, r := range rows {
		if r < 0 || int64(r) >= g.NumRows {
			return nil, fmt.Errorf("%w: node %d out of range [0, %d)", common.ErrInvalidArgument, r, g.NumRows)
		}
	}
	cfg := newConfig(opts)

	// view is g sorted by row with Data holding positions in g.
	view := &coo.Matrix[T]{NumRows: g.NumRows, NumCols: g.NumCols, Row: g.Row, Col: g.Col}
	if g.RowSorted {
		view.Data = make([]T, g.NNZ())
		common.Iota(view.Data, 0)
	} else {
		var err error
		if view, err = view.Sorted(false); err != nil {
			return nil, err
		}
		cfg.log.Debug("sorted graph for neighbor sampling", zap.Int("nnz", view.NNZ()))
	}

	var outRow, outCol, outData []T
	picks := make([]T, max(fanout, 0))
	var weights []F
	for _, r := range rows {
		lo, _ := slices.BinarySearch(view.Row, r)
		hi := lo + sort.Search(len(view.Row)-lo, func(i int) bool { return view.Row[lo+i] > r })
		positions := view.Data[lo:hi]

		var chosen []T
		switch {
		case len(positions) == 0:
			continue
		case prob != nil:
			weights = weights[:0]
			eligible := 0
			for _, pos := range positions {
				weights = append(weights, prob[pos])
				if prob[pos] > 0 {
					eligible++
				}
			}
			if eligible == 0 {
				continue
			}
			if fanout < 0 || (!replace && eligible <= fanout) {
				chosen = picks[:0]
				for i, w := range weights {
					if w > 0 {
						chosen = append(chosen, T(i))
					}
				}
				break
			}
			if err := sampling.Choice(rng, T(fanout), weights, picks, replace); err != nil {
				return nil, err
			}
			chosen = picks
		default:
			if fanout < 0 || (!replace && len(positions) <= fanout) {
				chosen = picks[:0]
				for i := range positions {
					chosen = append(chosen, T(i))
				}
				break
			}
			if err := sampling.UniformChoice(rng, T(fanout), T(len(positions)), picks, replace); err != nil {
				return nil, err
			}
			chosen = picks
		}

		for _, i := range chosen {
			pos := positions[i]
			outRow = append(outRow, r)
			outCol = append(outCol, g.Col[pos])
			outData = append(outData, edgeID(g, int(pos)))
		}
	}
	if outData == nil {
		outData = []T{}
	}

	cfg.log.Debug("sampled neighbors",
		zap.Int("rows", len(rows)),
		zap.Int("fanout", fanout),
		zap.Bool("weighted", prob != nil),
		zap.Bool("replace", replace),
		zap.Int("edges", len(outRow)),
	)
	return build(cfg, g.NumRows, g.NumCols, outRow, outCol, outData)
}
