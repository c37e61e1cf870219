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

// The functions in this file are the "constant" counterparts of Gcd and
// EulerTotient.  They follow the textbook definitions directly, so that their
// output can be folded into constant tables by the generator in
// internal/generator (see totient_table.go).

// ConstGcd computes gcd(a, b) over unsigned 64-bit integers.
func ConstGcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	//
	return a
}

// ConstTotient counts the integers i in [1, n] with gcd(i, n) = 1.  For n >= 2
// this is the same as counting over [1, n), whilst it gives ConstTotient(1) = 1
// in agreement with EulerTotient.  This is O(n log n).
func ConstTotient(n uint64) uint64 {
	count := uint64(0)
	//
	for i := uint64(1); i <= n; i++ {
		if ConstGcd(i, n) == 1 {
			count++
		}
	}
	//
	return count
}

// TabulatedTotient returns φ(n) from the generated constant table, or false
// if n exceeds TotientBound.
func TabulatedTotient(n uint64) (uint64, bool) {
	if n > TotientBound {
		return 0, false
	}
	//
	return totientTable[n], true
}

// Totient returns φ(n), preferring the constant table and falling back on
// EulerTotient for larger n.
func Totient(n uint64) uint64 {
	if t, ok := TabulatedTotient(n); ok {
		return t
	}
	//
	return EulerTotient(n)
}
