// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package numtheory

import (
	"testing"

	"github.com/consensys/go-modgroup/pkg/util/assert"
)

func Test_Totient_01(t *testing.T) {
	assert.Equal(t, uint64(8), EulerTotient(24))
	assert.Equal(t, uint64(8), ConstTotient(24))
	assert.Equal(t, uint64(8), Totient(24))
}

func Test_Totient_02(t *testing.T) {
	assert.Equal(t, uint64(0), EulerTotient(0))
	assert.Equal(t, uint64(1), EulerTotient(1))
	assert.Equal(t, uint64(1), EulerTotient(2))
	assert.Equal(t, uint64(2), EulerTotient(4))
	assert.Equal(t, uint64(4), EulerTotient(8))
	assert.Equal(t, uint64(12), EulerTotient(26))
	// Prime
	assert.Equal(t, uint64(1_000_002), EulerTotient(1_000_003))
	// Prime squares, including the square of the largest 16-bit prime
	assert.Equal(t, uint64(7*6), EulerTotient(49))
	assert.Equal(t, uint64(65521*65520), EulerTotient(65521*65521))
	// Power of two
	assert.Equal(t, uint64(1)<<62, EulerTotient(1<<63))
}

func Test_Totient_Agreement(t *testing.T) {
	for n := uint64(1); n <= 3000; n++ {
		runtime := EulerTotient(n)
		//
		assert.Equal(t, ConstTotient(n), runtime, "totient(%d)", n)
		assert.Equal(t, countCoprime(n), runtime, "totient(%d)", n)
	}
}

func Test_Totient_Table(t *testing.T) {
	for n := uint64(0); n <= TotientBound; n++ {
		tabulated, ok := TabulatedTotient(n)
		//
		assert.True(t, ok)
		assert.Equal(t, ConstTotient(n), tabulated, "totient(%d)", n)
		assert.Equal(t, EulerTotient(n), Totient(n), "totient(%d)", n)
	}
	//
	_, ok := TabulatedTotient(TotientBound + 1)
	assert.False(t, ok)
	assert.Equal(t, EulerTotient(TotientBound+1), Totient(TotientBound+1))
}

func Test_IsPrime(t *testing.T) {
	primes := []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}
	//
	for n := uint64(0); n < 50; n++ {
		isPrime := false
		//
		for _, p := range primes {
			isPrime = isPrime || p == n
		}
		//
		assert.Equal(t, isPrime, IsPrime(n), "isPrime(%d)", n)
		// φ(p) = p - 1 characterises primes
		assert.Equal(t, n >= 2 && EulerTotient(n) == n-1, IsPrime(n), "isPrime(%d)", n)
	}
}

// Count values in [1, n) coprime to n, taking φ(1) = 1 by convention.
func countCoprime(n uint64) uint64 {
	if n == 1 {
		return 1
	}
	//
	count := uint64(0)
	//
	for v := uint64(1); v < n; v++ {
		if Gcd(v, n) == 1 {
			count++
		}
	}
	//
	return count
}

// ===================================================================
// Benchmarks
// ===================================================================

func BenchmarkTotient(b *testing.B) {
	b.Run("runtime", func(b *testing.B) {
		for b.Loop() {
			for n := uint64(1); n <= 10_000; n++ {
				EulerTotient(n)
			}
		}
	})
	//
	b.Run("const", func(b *testing.B) {
		for b.Loop() {
			for n := uint64(1); n <= 10_000; n++ {
				ConstTotient(n)
			}
		}
	})
	//
	b.Run("table", func(b *testing.B) {
		for b.Loop() {
			for n := uint64(1); n <= TotientBound; n++ {
				TabulatedTotient(n)
			}
		}
	})
}
