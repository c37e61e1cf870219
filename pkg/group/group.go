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

// Package group models finite groups built from modular arithmetic: the
// additive group Z/N and the multiplicative group of units (Z/N)*.
//
// Each group comes in two forms which share the same algorithms:
//
//   - a runtime form ([Additive], [Multiplicative]), whose modulus is chosen
//     when the group is constructed;
//   - a static form ([StaticAdditive], [StaticMultiplicative]), whose modulus
//     is fixed by a type parameter implementing [Modulus].
//
// Groups and elements are immutable values.  An element carries its modulus
// (or, in the static form, its type parameter) rather than a reference to
// its group, hence it can be copied freely and compared with ==.
//
// Constructing an element is the only point at which its validity is
// checked.  For the additive group every residue is valid, whilst for the
// multiplicative group TryElement returns an empty option for values which
// are not coprime with the modulus.  Group operations on valid elements must
// always produce valid elements; a failure to do so is a broken invariant
// and panics.
//
// The group axioms (closure, associativity, identity and inverses) are not
// enforced structurally, but are checked by the tests of this package.
package group

import (
	"github.com/consensys/go-modgroup/pkg/util"
	"github.com/consensys/go-modgroup/pkg/util/collection/iter"
)

// Group is the capability contract of a group whose elements have type E.
type Group[E any] interface {
	// Identity returns the identity element.
	Identity() E
	// Op applies the group operation to a and b (in that order).
	Op(a, b E) E
	// Inv returns the inverse of a.
	Inv(a E) E
}

// Finite is implemented by groups whose total number of elements is
// efficiently known.
type Finite interface {
	// Order returns the number of elements in the group.
	Order() uint64
}

// FiniteGroup is a group whose order is known.
type FiniteGroup[E any] interface {
	Group[E]
	Finite
}

// Element is implemented by the elements of a modular group.
type Element[E any] interface {
	// Value returns the residue held by this element, which is always in [0, N).
	Value() uint64
	// Order returns the least k >= 1 such that this element raised to the
	// power k is the identity.
	Order() uint64
	// Subgroup returns the cyclic subgroup generated by this element, in
	// order of increasing powers.  This starts with the element itself and
	// finishes with the identity.
	Subgroup() []E
}

// Modular captures what all of the modular groups in this package provide,
// irrespective of their operation or form.
type Modular[E any] interface {
	FiniteGroup[E]
	// Modulus returns N.
	Modulus() uint64
	// TryElement constructs the element for a given value (reduced modulo
	// N), or returns an empty option if that value is not a valid element.
	TryElement(v uint64) util.Option[E]
	// Elements returns a fresh iterator over all elements of the group, in
	// ascending order of value.
	Elements() iter.Iterator[E]
}
