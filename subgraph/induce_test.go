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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/apache/graphprep-go/common"
	"github.com/apache/graphprep-go/coo"
)

// testGraph has five nodes and the edges
//
//	0: 0->1  1: 0->2  2: 1->2  3: 2->0  4: 3->4  5: 0->3
func testGraph(t *testing.T, data []int64) *coo.Matrix[int64] {
	t.Helper()
	g, err := coo.NewMatrix[int64](5, 5,
		[]int64{0, 0, 1, 2, 3, 0},
		[]int64{1, 2, 2, 0, 4, 3},
		data,
	)
	require.NoError(t, err)
	return g
}

func TestNodeSubgraph(t *testing.T) {
	sub, err := NodeSubgraph(testGraph(t, nil), []int64{2, 0, 1})
	require.NoError(t, err)

	assert.Equal(t, []int64{2, 0, 1}, sub.InducedNodes)
	assert.Equal(t, []int64{0, 1, 2, 3}, sub.InducedEdges)
	assert.Equal(t, int64(3), sub.Graph.NumRows)
	assert.Equal(t, int64(3), sub.Graph.NumCols)
	assert.Equal(t, []int64{1, 1, 2, 0}, sub.Graph.Row)
	assert.Equal(t, []int64{2, 0, 0, 1}, sub.Graph.Col)
	assert.Equal(t, []int64{0, 1, 2, 3}, sub.Graph.Data)
	assert.False(t, sub.Graph.RowSorted)
}

func TestNodeSubgraphUsesEdgeData(t *testing.T) {
	g := testGraph(t, []int64{10, 11, 12, 13, 14, 15})
	sub, err := NodeSubgraph(g, []int64{2, 0, 1}, WithSortedOutput(true))
	require.NoError(t, err)

	assert.Equal(t, []int64{10, 11, 12, 13}, sub.InducedEdges)
	assert.Equal(t, []int64{0, 1, 1, 2}, sub.Graph.Row)
	assert.Equal(t, []int64{1, 0, 2, 0}, sub.Graph.Col)
	assert.Equal(t, []int64{3, 1, 0, 2}, sub.Graph.Data)
	assert.True(t, sub.Graph.RowSorted)
	assert.True(t, sub.Graph.ColSorted)
}

func TestNodeSubgraphNoEdges(t *testing.T) {
	sub, err := NodeSubgraph(testGraph(t, nil), []int64{4, 1})
	require.NoError(t, err)
	assert.Equal(t, 0, sub.Graph.NNZ())
	assert.Equal(t, []int64{4, 1}, sub.InducedNodes)
	assert.Empty(t, sub.InducedEdges)
}

func TestEdgeSubgraph(t *testing.T) {
	g := testGraph(t, nil)

	sub, err := EdgeSubgraph(g, []int64{4, 0, 3}, false)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 2}, sub.Graph.Row)
	assert.Equal(t, []int64{3, 4, 1}, sub.Graph.Col)
	assert.Equal(t, []int64{3, 0, 2, 4, 1}, sub.InducedNodes)
	assert.Equal(t, []int64{4, 0, 3}, sub.InducedEdges)
	assert.Equal(t, int64(5), sub.Graph.NumRows)

	sub, err = EdgeSubgraph(g, []int64{4, 0, 3}, true)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 0, 2}, sub.Graph.Row)
	assert.Equal(t, []int64{4, 1, 0}, sub.Graph.Col)
	assert.Nil(t, sub.InducedNodes)
	assert.Equal(t, g.NumRows, sub.Graph.NumRows)
}

func TestEdgeSubgraphRejectsBadEdges(t *testing.T) {
	g := testGraph(t, nil)
	_, err := EdgeSubgraph(g, []int64{6}, true)
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
	_, err = EdgeSubgraph(g, []int64{-1}, false)
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
	_, err = EdgeSubgraph[int64](nil, nil, false)
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
}

func TestSortedOutputIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	_, err := NodeSubgraph(testGraph(t, nil), []int64{0, 1, 2},
		WithLogger(zap.New(core)),
		WithSortedOutput(false, coo.WithStrategy(coo.StrategyRadix)),
	)
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("built node subgraph").Len())
	sorted := logs.FilterMessage("sorting subgraph").All()
	require.Len(t, sorted, 1)
	assert.Equal(t, "radix", sorted[0].ContextMap()["strategy"])
	assert.Equal(t, false, sorted[0].ContextMap()["sortColumn"])
}
