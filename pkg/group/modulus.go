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
package group

import (
	"fmt"

	"github.com/consensys/go-modgroup/pkg/numtheory"
	"github.com/consensys/go-modgroup/pkg/util"
	"github.com/consensys/go-modgroup/pkg/util/collection/iter"
)

// Modulus fixes the modulus of a statically parameterised group.  An
// implementation is expected to be an empty struct whose method returns a
// constant, for example:
//
//	type Mod26 struct{}
//
//	func (Mod26) Modulus() uint64 { return 26 }
//
// such that StaticMultiplicative[Mod26] is the group (Z/26)*.
type Modulus interface {
	Modulus() uint64
}

// modulusOf returns the modulus fixed by a given type parameter.
func modulusOf[M Modulus]() uint64 {
	var m M
	//
	n := m.Modulus()
	checkModulus(n)
	//
	return n
}

// checkModulus panics if n is not a supported modulus.
func checkModulus(n uint64) {
	if n == 0 {
		panic("modulus must be positive")
	} else if n > numtheory.MaxModulus {
		panic(fmt.Sprintf("modulus %d too large", n))
	}
}

// ===================================================================
// Additive arithmetic
// ===================================================================

// residues returns an iterator over [0, n).
func residues[E any](n uint64, wrap func(uint64) E) iter.Iterator[E] {
	return iter.NewSieveIterator[E](0, n-1, uint(n), func(v uint64) util.Option[E] {
		return util.Some(wrap(v))
	})
}

// ===================================================================
// Multiplicative arithmetic
// ===================================================================

// unit returns v reduced modulo n, provided v is a unit modulo n.
func unit(v, n uint64) util.Option[uint64] {
	if numtheory.ModInverse(v, n).HasValue() {
		return util.Some(v % n)
	}
	//
	return util.None[uint64]()
}

// mustUnit is used to re-wrap the result of an operation on units, which is
// always a unit because (Z/N)* is closed under multiplication and inversion.
func mustUnit(v, n uint64, operation string) uint64 {
	if u, ok := unit(v, n).Get(); ok {
		return u
	}
	//
	panic(fmt.Sprintf("%s produced %d, which is not a unit modulo %d", operation, v, n))
}

// inverse returns the inverse of the unit v modulo n.
func inverse(v, n uint64) uint64 {
	if inv, ok := numtheory.ModInverse(v, n).Get(); ok {
		return mustUnit(inv, n, "inverse")
	}
	//
	panic(fmt.Sprintf("%d has no inverse modulo %d", v, n))
}

// units returns an iterator over the units modulo n, of which there are
// exactly count.  The candidates are [1, n] reduced modulo n which, for n > 1,
// are the units in [1, n) and, for n = 1, is the single element 0.
func units[E any](n, count uint64, wrap func(uint64) E) iter.Iterator[E] {
	return iter.NewSieveIterator[E](1, n, uint(count), func(v uint64) util.Option[E] {
		return util.MapOption[uint64, E](unit(v, n), wrap)
	})
}

// sameModulus panics if an element from one group is passed to another.
func sameModulus(expected, actual uint64) {
	if expected != actual {
		panic(fmt.Sprintf("element modulo %d used in group modulo %d", actual, expected))
	}
}
