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

// EulerTotient returns the number of integers in [1, n] which are coprime to n,
// with EulerTotient(1) = 1 and EulerTotient(0) = 0.  This factorises n by trial
// division, multiplying the running result by (1 - 1/p) for each distinct
// prime factor p, and so runs in O(√n).
func EulerTotient(n uint64) uint64 {
	var (
		result = n
		rem    = n
	)
	// NOTE: p <= rem/p is used rather than p*p <= rem to avoid overflow.
	for p := uint64(2); p <= rem/p; p++ {
		if rem%p != 0 {
			continue
		}
		// Strip all occurrences of this prime
		for rem%p == 0 {
			rem /= p
		}
		//
		result -= result / p
	}
	// Whatever remains is a prime factor larger than √n
	if rem > 1 {
		result -= result / rem
	}
	//
	return result
}

// IsPrime determines whether n is prime by trial division.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	//
	for p := uint64(2); p <= n/p; p++ {
		if n%p == 0 {
			return false
		}
	}
	//
	return true
}
