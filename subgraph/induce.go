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

	"go.uber.org/zap"

	"github.com/apache/graphprep-go/common"
	"github.com/apache/graphprep-go/coo"
	"github.com/apache/graphprep-go/idmap"
)

// NodeSubgraph keeps the edges of g whose endpoints are both in nodes. Node
// nodes[i] becomes node i of the result, with repeated entries collapsed to
// their first appearance.
func NodeSubgraph[T common.IDType](g *coo.Matrix[T], nodes []T, opts ...Option) (*Subgraph[T], error) {
	if err := checkGraph(g); err != nil {
		return nil, err
	}
	cfg := newConfig(opts)

	nodeMap, err := idmap.NewFromIDs(nodes)
	if err != nil {
		return nil, err
	}
	var row, col, induced []T
	for i := range g.Row {
		newRow := nodeMap.Map(g.Row[i], -1)
		if newRow < 0 {
			continue
		}
		newCol := nodeMap.Map(g.Col[i], -1)
		if newCol < 0 {
			continue
		}
		row = append(row, newRow)
		col = append(col, newCol)
		induced = append(induced, edgeID(g, i))
	}

	numNodes := int64(nodeMap.Size())
	cfg.log.Debug("built node subgraph",
		zap.Int("nodes", nodeMap.Size()),
		zap.Int("parentEdges", g.NNZ()),
		zap.Int("edges", len(row)),
	)
	m, err := build(cfg, numNodes, numNodes, row, col, nil)
	if err != nil {
		return nil, err
	}
	return &Subgraph[T]{
		Graph:        m,
		InducedNodes: nodeMap.Values(),
		InducedEdges: induced,
	}, nil
}

// EdgeSubgraph keeps the edges of g at the given positions, in order. With
// preserveNodes the result has g's shape and node ids. Otherwise the
// endpoints are compacted, rows first and then columns, so the first row
// endpoint becomes node 0.
func EdgeSubgraph[T common.IDType](g *coo.Matrix[T], edges []T, preserveNodes bool, opts ...Option) (*Subgraph[T], error) {
	if err := checkGraph(g); err != nil {
		return nil, err
	}
	nnz := T(g.NNZ())
	for _, e := range edges {
		if e < 0 || e >= nnz {
			return nil, fmt.Errorf("%w: edge %d out of range [0, %d)", common.ErrInvalidArgument, e, nnz)
		}
	}
	cfg := newConfig(opts)

	row := make([]T, len(edges))
	col := make([]T, len(edges))
	induced := make([]T, len(edges))
	for i, e := range edges {
		row[i] = g.Row[e]
		col[i] = g.Col[e]
		induced[i] = edgeID(g, int(e))
	}

	sub := &Subgraph[T]{InducedEdges: induced}
	numRows, numCols := g.NumRows, g.NumCols
	if !preserveNodes {
		mapped, nodes := idmap.RelabelSlices(row, col)
		row, col = mapped[0], mapped[1]
		sub.InducedNodes = nodes
		numRows = int64(len(nodes))
		numCols = numRows
	}
	cfg.log.Debug("built edge subgraph",
		zap.Int("edges", len(edges)),
		zap.Bool("preserveNodes", preserveNodes),
		zap.Int64("nodes", numRows),
	)

	m, err := build(cfg, numRows, numCols, row, col, nil)
	if err != nil {
		return nil, err
	}
	sub.Graph = m
	return sub, nil
}
