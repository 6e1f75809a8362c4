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


// Package common holds the element types and error values shared by the
// identifier, coordinate and sampling packages.
package common

import "golang.org/x/exp/constraints"

// IDType is the set of identifier element types. Identifiers are signed so
// that callers can use negative values as "absent" defaults.
type IDType interface {
	~int32 | ~int64
}

// FloatType is the set of probability element types.
type FloatType interface {
	~float32 | ~float64
}

// Element is the set of element types a tensor can expose as a typed view.
type Element interface {
	int32 | int64 | float32 | float64
}

// Number is any fixed-width integer or float.
type Number interface {
	constraints.Integer | constraints.Float
}

// Iota fills dst with start, start+1, ... .
func Iota[T constraints.Integer](dst []T, start T) {
	for i := range dst {
		dst[i] = start + T(i)
	}
}

// Max returns the largest value of s, or the zero value when s is empty.
func Max[T Number](s []T) T {
	var m T
	for i, v := range s {
		if i == 0 || v > m {
			m = v
		}
	}
	return m
}

// Min returns the smallest value of s, or the zero value when s is empty.
func Min[T Number](s []T) T {
	var m T
	for i, v := range s {
		if i == 0 || v < m {
			m = v
		}
	}
	return m
}
