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

import "github.com/consensys/go-modgroup/pkg/util"

// ModInverse returns the multiplicative inverse of a modulo n, reduced into
// [0, n).  An inverse exists iff gcd(a, n) = 1; otherwise, the result is
// empty.  The result is also empty for n = 0 and for n > MaxModulus.
func ModInverse(a, n uint64) util.Option[uint64] {
	if n == 0 || n > MaxModulus {
		return util.None[uint64]()
	}
	//
	x, _, g := ExtendedGcd(int64(a%n), int64(n))
	//
	if g != 1 {
		return util.None[uint64]()
	}
	// Normalise into [0, n)
	x %= int64(n)
	if x < 0 {
		x += int64(n)
	}
	//
	return util.Some(uint64(x))
}
