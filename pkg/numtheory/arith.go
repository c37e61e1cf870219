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

import "math/bits"

// AddMod returns (a + b) mod n, without overflow.
func AddMod(a, b, n uint64) uint64 {
	sum, carry := bits.Add64(a%n, b%n, 0)
	// On carry the true sum is sum + 2⁶⁴ >= n, and wrapping subtraction gives
	// the right answer.
	if carry != 0 || sum >= n {
		sum -= n
	}
	//
	return sum
}

// NegMod returns (n - a) mod n, i.e. the additive inverse of a modulo n.
func NegMod(a, n uint64) uint64 {
	return (n - a%n) % n
}

// MulMod returns (a * b) mod n, reducing the full 128-bit product so that no
// overflow occurs.
func MulMod(a, b, n uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, n)
}

// PowMod returns base raised to the power exp, modulo n.
func PowMod(base, exp, n uint64) uint64 {
	result := uint64(1) % n
	base %= n
	//
	for exp != 0 {
		if exp&1 == 1 {
			result = MulMod(result, base, n)
		}
		// div 2
		exp >>= 1
		//
		if exp == 0 {
			break
		}
		//
		base = MulMod(base, base, n)
	}

	return result
}
