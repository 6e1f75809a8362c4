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


// Package random provides the pseudo-random engine consumed by the samplers.
//
// An Engine is a Mersenne Twister (MT19937-64) stream. It is not safe for
// concurrent use: give each goroutine its own engine with Fork, or wrap a
// shared one with NewLocked.
package random

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/twmb/murmur3"
	"gonum.org/v1/gonum/mathext/prng"
)

// Source is the capability the samplers draw from.
type Source interface {
	// RandInt returns a uniform integer in [0, n). n must be positive.
	RandInt(n int64) int64
	// Uniform returns a uniform float in [0, 1).
	Uniform() float64
}

var _ Source = (*Engine)(nil)

// Engine is a seeded 64-bit Mersenne Twister.
type Engine struct {
	seed uint64
	src  *prng.MT19937_64
}

// NewEngine returns an engine seeded with seed. Two engines built from the
// same seed produce the same stream.
func NewEngine(seed uint64) *Engine {
	src := prng.NewMT19937_64()
	src.Seed(seed)
	return &Engine{seed: seed, src: src}
}

// NewTimeSeededEngine returns an engine seeded from the wall clock. We don't
// need a cryptographically secure source of randomness for sampling.
func NewTimeSeededEngine() *Engine {
	return NewEngine(uint64(time.Now().UnixNano()))
}

// Seed resets the engine to the start of the stream for seed.
func (e *Engine) Seed(seed uint64) {
	e.seed = seed
	e.src.Seed(seed)
}

// InitialSeed returns the seed the current stream started from.
func (e *Engine) InitialSeed() uint64 {
	return e.seed
}

// Fork returns a new engine whose seed is derived from this engine's initial
// seed and stream. The result does not depend on how far this engine has
// advanced, so per-worker engines can be rebuilt deterministically.
func (e *Engine) Fork(stream uint64) *Engine {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], stream)
	return NewEngine(murmur3.SeedSum64(e.seed, buf[:]))
}

// Uint64 returns a random number in [0, MaxUint64].
func (e *Engine) Uint64() uint64 {
	return e.src.Uint64()
}

// Uint64Inclusive returns a pseudo-random number in [0,n].
func (e *Engine) Uint64Inclusive(n uint64) uint64 {
	switch {
	// n+1 is power of two, so we can just mask
	case n&(n+1) == 0:
		return e.Uint64() & n

	// n is greater than MaxUint64/2 so we need to just iterate until we get a
	// number in the requested range.
	case n > math.MaxInt64:
		v := e.Uint64()
		for v > n {
			v = e.Uint64()
		}
		return v

	// Otherwise reject the tail of [0, MaxInt64] that would bias the modulo.
	default:
		maximum := (1 << 63) - 1 - (1<<63)%(n+1)
		v := e.uint63()
		for v > maximum {
			v = e.uint63()
		}
		return v % (n + 1)
	}
}

// RandInt returns a uniform integer in [0, n). It panics if n <= 0.
func (e *Engine) RandInt(n int64) int64 {
	if n <= 0 {
		panic("random: RandInt called with non-positive n")
	}
	return int64(e.Uint64Inclusive(uint64(n - 1)))
}

// Uniform returns a uniform float in [0, 1) with 53 bits of precision.
func (e *Engine) Uniform() float64 {
	return float64(e.Uint64()>>11) * 0x1.0p-53
}

// uint63 returns a random number in [0, MaxInt64]
func (e *Engine) uint63() uint64 {
	return e.Uint64() & math.MaxInt64
}
