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


// Package filters provides approximate membership structures used to skip
// lookups in exact tables.
//
// A PresenceFilter is a fixed-size bit array indexed by the low bits of a key.
// It has no false negatives: once a key is marked, MayContain reports true for
// it forever. Distinct keys sharing their low bits collide, so a true answer
// only means "maybe"; the exact table behind the filter stays authoritative.
package filters

import (
	"fmt"

	"github.com/apache/graphprep-go/common"
	"github.com/apache/graphprep-go/internal"
)

// Bounds on the log2 of the filter size in bits.
const (
	MinLgBits = 6
	MaxLgBits = 30
)

// PresenceFilter is a bit array keyed by key & mask.
type PresenceFilter struct {
	lgBits     int
	mask       uint64
	numBitsSet uint64
	bits       bitArray
}

// NewPresenceFilter creates a filter holding 2^lgBits bits.
func NewPresenceFilter(lgBits int) (*PresenceFilter, error) {
	if lgBits < MinLgBits || lgBits > MaxLgBits {
		return nil, fmt.Errorf("%w: filter bits must be in [%d, %d], got %d",
			common.ErrInvalidArgument, MinLgBits, MaxLgBits, lgBits)
	}
	return &PresenceFilter{
		lgBits: lgBits,
		mask:   internal.MaskBits(lgBits),
		bits:   newBitArray(uint64(1) << lgBits),
	}, nil
}

// Mark records key in the filter. It returns true if the key's bit was
// already set, either by the same key or by a colliding one.
func (f *PresenceFilter) Mark(key uint64) bool {
	wasSet := f.bits.testAndSet(key & f.mask)
	if !wasSet {
		f.numBitsSet++
	}
	return wasSet
}

// MayContain returns false only if key was never marked.
func (f *PresenceFilter) MayContain(key uint64) bool {
	return f.bits.get(key & f.mask)
}

// Mask returns the mask applied to keys.
func (f *PresenceFilter) Mask() uint64 {
	return f.mask
}

// Capacity returns the total number of bits in the filter.
func (f *PresenceFilter) Capacity() uint64 {
	return uint64(1) << f.lgBits
}

// BitsUsed returns the number of bits currently set to 1.
func (f *PresenceFilter) BitsUsed() uint64 {
	return f.numBitsSet
}

// IsEmpty returns true if no bits are set in the filter.
func (f *PresenceFilter) IsEmpty() bool {
	return f.BitsUsed() == 0
}

// Reset clears all bits in the filter.
func (f *PresenceFilter) Reset() {
	f.bits.clear()
	f.numBitsSet = 0
}

// Clone returns an independent copy of the filter.
func (f *PresenceFilter) Clone() *PresenceFilter {
	c := *f
	c.bits = f.bits.clone()
	return &c
}
