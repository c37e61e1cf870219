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

// Package numtheory provides the number-theoretic primitives on which the
// modular groups are built: greatest common divisors, Bézout coefficients,
// modular inverses and Euler's totient function.  All arithmetic is over
// fixed-width machine integers.
package numtheory

import "math"

// Signed captures the fixed-width signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned captures the fixed-width unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer captures all fixed-width integer types.
type Integer interface {
	Signed | Unsigned
}

// MaxModulus is the largest modulus supported by ModInverse, and hence by the
// groups.  Beyond this, Bézout coefficients may not fit into an int64.
const MaxModulus = uint64(math.MaxInt64)

// Gcd computes the greatest common divisor of a and b using the Euclidean
// algorithm.  For signed arguments the sign of the result follows the
// remainder sequence (e.g. Gcd(4, -6) = -2), and callers should normalise it
// as necessary.
func Gcd[T Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	//
	return a
}

// ExtendedGcd computes Bézout coefficients x and y alongside g = gcd(a, b),
// such that a*x + b*y = g.  The coefficients are accumulated iteratively
// alongside the remainder sequence.  Since every intermediate coefficient is
// bounded by the arguments, no intermediate value overflows.
func ExtendedGcd[T Signed](a, b T) (x, y, g T) {
	if b == 0 {
		// a*1 + 0*0 = a
		return 1, 0, a
	}
	// Invariant: oldR = a*oldS + b*oldT and r = a*s + b*t
	var (
		oldR, r = a, b
		oldS, s = T(1), T(0)
		oldT, t = T(0), T(1)
	)
	//
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
		oldT, t = t, oldT-q*t
	}
	// Done
	return oldS, oldT, oldR
}
