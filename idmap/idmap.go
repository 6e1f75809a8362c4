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


// Package idmap relabels identifiers to a dense zero-based range.
//
// An IDHashMap assigns new ids 0, 1, 2, ... to identifiers in the order they
// are first seen. A fixed-size presence filter keyed by the low bits of the
// identifier sits in front of the hash table, so most lookups of absent ids
// never touch the table. The table stays the source of truth.
//
// IDHashMap is not safe for concurrent mutation. Contains, Map, MapSlice,
// Values and Size may run concurrently with each other but not with Update
// or Reserve.
package idmap

import (
	"fmt"

	"github.com/cockroachdb/swiss"

	"github.com/apache/graphprep-go/common"
	"github.com/apache/graphprep-go/filters"
)

// DefaultFilterBits is the default presence filter width: ids are keyed by
// their low 24 bits.
const DefaultFilterBits = 24

// Option configures an IDHashMap.
type Option func(*config)

type config struct {
	filterBits int
	capacity   int
}

// WithFilterBits sets the presence filter width in bits.
func WithFilterBits(bits int) Option {
	return func(c *config) {
		c.filterBits = bits
	}
}

// WithCapacity pre-sizes the table for n distinct ids.
func WithCapacity(n int) Option {
	return func(c *config) {
		c.capacity = n
	}
}

// IDHashMap maps each id to a new id starting from zero.
type IDHashMap[T common.IDType] struct {
	filter *filters.PresenceFilter
	// old id -> new id
	table *swiss.Map[T, T]
}

// New creates an empty map.
func New[T common.IDType](opts ...Option) (*IDHashMap[T], error) {
	cfg := &config{
		filterBits: DefaultFilterBits,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.capacity < 0 {
		return nil, fmt.Errorf("%w: negative capacity %d", common.ErrInvalidArgument, cfg.capacity)
	}

	filter, err := filters.NewPresenceFilter(cfg.filterBits)
	if err != nil {
		return nil, err
	}
	return &IDHashMap[T]{
		filter: filter,
		table:  swiss.New[T, T](cfg.capacity),
	}, nil
}

// NewFromIDs creates a map holding ids. The ids may contain duplicates; if
// they don't, they are relabeled to consecutive integers starting from 0.
func NewFromIDs[T common.IDType](ids []T, opts ...Option) (*IDHashMap[T], error) {
	m, err := New[T](append([]Option{WithCapacity(len(ids))}, opts...)...)
	if err != nil {
		return nil, err
	}
	m.Update(ids)
	return m, nil
}

// Reserve grows the table so that it holds n ids without rehashing.
func (m *IDHashMap[T]) Reserve(n int) {
	if n <= m.table.Len() {
		return
	}
	table := swiss.New[T, T](n)
	m.table.All(func(k, v T) bool {
		table.Put(k, v)
		return true
	})
	m.table = table
}

// Update inserts every id in ids. Ids already present keep their new id; each
// unseen id gets the next unused one.
func (m *IDHashMap[T]) Update(ids []T) {
	for _, id := range ids {
		// A clear bit proves the id is new, so the table probe is skipped.
		if m.filter.Mark(uint64(id)) {
			if _, ok := m.table.Get(id); ok {
				continue
			}
		}
		m.table.Put(id, T(m.table.Len()))
	}
}

// Contains returns true if id has been inserted.
func (m *IDHashMap[T]) Contains(id T) bool {
	if !m.filter.MayContain(uint64(id)) {
		return false
	}
	_, ok := m.table.Get(id)
	return ok
}

// Map returns the new id of id, or defaultVal if id is absent.
func (m *IDHashMap[T]) Map(id T, defaultVal T) T {
	if !m.filter.MayContain(uint64(id)) {
		return defaultVal
	}
	if v, ok := m.table.Get(id); ok {
		return v
	}
	return defaultVal
}

// MapSlice returns the new id of each element of ids in a new slice.
func (m *IDHashMap[T]) MapSlice(ids []T, defaultVal T) []T {
	values := make([]T, len(ids))
	for i, id := range ids {
		values[i] = m.Map(id, defaultVal)
	}
	return values
}

// Values returns the old ids ordered by new id.
func (m *IDHashMap[T]) Values() []T {
	values := make([]T, m.table.Len())
	m.table.All(func(oldID, newID T) bool {
		values[newID] = oldID
		return true
	})
	return values
}

// Size returns the number of distinct ids inserted so far.
func (m *IDHashMap[T]) Size() int {
	return m.table.Len()
}
