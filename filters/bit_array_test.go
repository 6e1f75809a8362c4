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


package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitArray(t *testing.T) {
	bits := newBitArray(128)
	assert.Len(t, bits, 2)
	assert.Len(t, newBitArray(65), 2)

	for _, i := range []uint64{0, 63, 64, 127} {
		assert.False(t, bits.get(i))
	}

	assert.False(t, bits.testAndSet(20))
	assert.True(t, bits.get(20))
	assert.True(t, bits.testAndSet(20))

	// Bits in the second word do not leak into the first
	bits.testAndSet(65)
	assert.True(t, bits.get(65))
	assert.False(t, bits.get(1))
	assert.Equal(t, uint64(1<<20), bits[0])
	assert.Equal(t, uint64(1<<1), bits[1])

	c := bits.clone()
	bits.clear()
	assert.False(t, bits.get(20))
	assert.False(t, bits.get(65))
	assert.True(t, c.get(65))
}
