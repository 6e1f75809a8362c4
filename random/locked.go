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

import "sync"

var _ Source = (*Locked)(nil)

// Locked serializes access to a Source shared between goroutines.
type Locked struct {
	lock sync.Mutex
	src  Source
}

// NewLocked wraps src.
func NewLocked(src Source) *Locked {
	return &Locked{src: src}
}

// RandInt returns a uniform integer in [0, n) from the wrapped source.
func (l *Locked) RandInt(n int64) int64 {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.src.RandInt(n)
}

// Uniform returns a uniform float in [0, 1) from the wrapped source.
func (l *Locked) Uniform() float64 {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.src.Uniform()
}
