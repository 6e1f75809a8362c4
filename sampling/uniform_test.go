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


package sampling

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apache/graphprep-go/common"
	"github.com/apache/graphprep-go/random"
)

func requireDistinctInRange[I common.IDType](t *testing.T, out []I, population I) {
	t.Helper()
	seen := make(map[I]bool, len(out))
	for _, v := range out {
		require.GreaterOrEqual(t, v, I(0))
		require.Less(t, v, population)
		require.False(t, seen[v], "index %d drawn twice", v)
		seen[v] = true
	}
}

func TestUniformChoiceWithReplacement(t *testing.T) {
	out := make([]int64, 1000)
	require.NoError(t, UniformChoice(random.NewEngine(1), int64(1000), int64(3), out, true))
	counts := map[int64]int{}
	for _, v := range out {
		counts[v]++
	}
	assert.Len(t, counts, 3)
	for v := range counts {
		assert.True(t, v >= 0 && v < 3)
	}
}

func TestUniformChoiceWithoutReplacement(t *testing.T) {
	rng := random.NewEngine(2)
	cases := []struct {
		name            string
		num, population int32
	}{
		{"rejection", 5, 1000},
		{"rejection edge", 9, 100},
		{"reservoir edge", 10, 100},
		{"reservoir", 70, 100},
		{"everything", 100, 100},
		{"single", 1, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out := make([]int32, c.num)
			require.NoError(t, UniformChoice(rng, c.num, c.population, out, false))
			requireDistinctInRange(t, out, c.population)
		})
	}
}

func TestUniformChoiceIsUniform(t *testing.T) {
	const population = 50
	for name, num := range map[string]int64{"rejection": 2, "reservoir": 20} {
		t.Run(name, func(t *testing.T) {
			rng := random.NewEngine(3)
			counts := make([]float64, population)
			out := make([]int64, num)
			for trial := 0; trial < 20000; trial++ {
				require.NoError(t, UniformChoice(rng, num, population, out, false))
				for _, v := range out {
					counts[v]++
				}
			}
			weights := make([]float64, population)
			for i := range weights {
				weights[i] = 1
			}
			assert.Greater(t, chiSquarePValue(counts, weights), 0.001)
		})
	}
}

func TestUniformChoicePreconditions(t *testing.T) {
	rng := random.NewEngine(4)
	out := []int64{-1, -1, -1}

	err := UniformChoice(rng, int64(3), int64(2), out, false)
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
	assert.Equal(t, []int64{-1, -1, -1}, out)

	assert.ErrorIs(t, UniformChoice(rng, int64(4), int64(10), out, true), common.ErrInvalidArgument)
	assert.ErrorIs(t, UniformChoice(rng, int64(-1), int64(10), out, true), common.ErrInvalidArgument)
	assert.ErrorIs(t, UniformChoice(rng, int64(1), int64(-10), out, true), common.ErrInvalidArgument)
	assert.ErrorIs(t, UniformChoice(rng, int64(1), int64(0), out, true), common.ErrInvalidArgument)

	require.NoError(t, UniformChoice(rng, int64(0), int64(0), out, false))
	assert.Equal(t, []int64{-1, -1, -1}, out)
}

func TestReservoirKeepsFirstItemsUntilFull(t *testing.T) {
	buf := make([]int, 3)
	r := newReservoir(buf)
	rng := random.NewEngine(5)
	for i := 0; i < 3; i++ {
		r.update(rng, i+10)
	}
	assert.Equal(t, []int{10, 11, 12}, buf)
	for i := 3; i < 100; i++ {
		r.update(rng, i+10)
	}
	requireDistinctInRange(t, []int64{int64(buf[0]), int64(buf[1]), int64(buf[2])}, 110)
}

func TestUniformChoiceProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("without replacement draws distinct in-range indices", prop.ForAll(
		func(population int64, fraction float64, seed uint64) bool {
			num := int64(float64(population) * fraction)
			out := make([]int64, num)
			if err := UniformChoice(random.NewEngine(seed), num, population, out, false); err != nil {
				return false
			}
			seen := make(map[int64]bool, num)
			for _, v := range out {
				if v < 0 || v >= population || seen[v] {
					return false
				}
				seen[v] = true
			}
			return true
		},
		gen.Int64Range(1, 5000),
		gen.Float64Range(0, 1),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}
