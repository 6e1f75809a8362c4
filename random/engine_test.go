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


package random

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestEngineDeterministic(t *testing.T) {
	a := NewEngine(42)
	b := NewEngine(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}

	a.Seed(7)
	b.Seed(7)
	assert.Equal(t, uint64(7), a.InitialSeed())
	assert.Equal(t, a.RandInt(1000), b.RandInt(1000))
}

func TestEngineFork(t *testing.T) {
	parent := NewEngine(1)
	f1 := parent.Fork(0)
	f2 := parent.Fork(1)
	assert.NotEqual(t, f1.InitialSeed(), f2.InitialSeed())

	// Advancing the parent does not change what a fork produces
	for i := 0; i < 10; i++ {
		parent.Uint64()
	}
	again := parent.Fork(0)
	assert.Equal(t, f1.InitialSeed(), again.InitialSeed())
	assert.Equal(t, f1.Uint64(), again.Uint64())
}

func TestEngineRanges(t *testing.T) {
	e := NewEngine(3)
	for i := 0; i < 10000; i++ {
		v := e.RandInt(13)
		assert.GreaterOrEqual(t, v, int64(0))
		assert.Less(t, v, int64(13))

		u := e.Uniform()
		assert.GreaterOrEqual(t, u, 0.0)
		assert.Less(t, u, 1.0)
	}

	assert.Equal(t, uint64(0), e.Uint64Inclusive(0))
	assert.Equal(t, int64(0), e.RandInt(1))
	// Full range takes the masking path
	e.Uint64Inclusive(math.MaxUint64)
	v := e.Uint64Inclusive(math.MaxInt64 + 10)
	assert.LessOrEqual(t, v, uint64(math.MaxInt64+10))
}

func TestEngineRandIntPanicsOnEmptyRange(t *testing.T) {
	e := NewEngine(3)
	assert.Panics(t, func() { e.RandInt(0) })
	assert.Panics(t, func() { e.RandInt(-5) })
}

func TestEngineRandIntIsUniform(t *testing.T) {
	const (
		buckets = 10
		draws   = 100000
	)
	e := NewEngine(2024)
	observed := make([]float64, buckets)
	for i := 0; i < draws; i++ {
		observed[e.RandInt(buckets)]++
	}
	expected := make([]float64, buckets)
	for i := range expected {
		expected[i] = draws / buckets
	}

	chi2 := stat.ChiSquare(observed, expected)
	pValue := 1 - distuv.ChiSquared{K: buckets - 1}.CDF(chi2)
	assert.Greater(t, pValue, 0.001, "chi2=%f", chi2)
}

func TestLockedSharedAcrossGoroutines(t *testing.T) {
	l := NewLocked(NewEngine(5))

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				v := l.RandInt(100)
				if v < 0 || v >= 100 {
					t.Errorf("out of range: %d", v)
					return
				}
				_ = l.Uniform()
			}
		}()
	}
	wg.Wait()
}
