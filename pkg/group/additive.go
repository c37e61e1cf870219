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

// Additive is the group Z/N of residues modulo N under addition.
type Additive struct {
	modulus uint64
}

// AddElement is an element of Z/N.
type AddElement struct {
	value   uint64
	modulus uint64
}

// NewAdditive constructs Z/N for a given modulus N >= 1.  This panics if the
// modulus is zero, or exceeds numtheory.MaxModulus.
func NewAdditive(n uint64) Additive {
	checkModulus(n)
	return Additive{n}
}

// Modulus returns N.
func (g Additive) Modulus() uint64 {
	return g.modulus
}

// Element constructs the element of Z/N corresponding to v mod N.  Every
// residue is a valid element, so this cannot fail.
func (g Additive) Element(v uint64) AddElement {
	return AddElement{v % g.modulus, g.modulus}
}

// TryElement constructs the element of Z/N corresponding to v mod N.  The
// result is never empty.
func (g Additive) TryElement(v uint64) util.Option[AddElement] {
	return util.Some(g.Element(v))
}

// Identity returns 0.
func (g Additive) Identity() AddElement {
	return AddElement{0, g.modulus}
}

// Op returns a + b.
func (g Additive) Op(a, b AddElement) AddElement {
	sameModulus(g.modulus, a.modulus)
	sameModulus(g.modulus, b.modulus)
	//
	return AddElement{numtheory.AddMod(a.value, b.value, g.modulus), g.modulus}
}

// Inv returns -a.
func (g Additive) Inv(a AddElement) AddElement {
	sameModulus(g.modulus, a.modulus)
	//
	return AddElement{numtheory.NegMod(a.value, g.modulus), g.modulus}
}

// Order returns N.
func (g Additive) Order() uint64 {
	return g.modulus
}

// Elements returns an iterator over 0, 1, ..., N-1.
func (g Additive) Elements() iter.Iterator[AddElement] {
	return residues(g.modulus, g.Element)
}

// ===================================================================
// Elements
// ===================================================================

// Group returns the group containing this element.
func (e AddElement) Group() Additive {
	return Additive{e.modulus}
}

// Value returns the residue held by this element.
func (e AddElement) Value() uint64 {
	return e.value
}

// Modulus returns N.
func (e AddElement) Modulus() uint64 {
	return e.modulus
}

// Order returns the least k >= 1 with k*e = 0.
func (e AddElement) Order() uint64 {
	return ElementOrder[AddElement](e.Group(), e)
}

// Subgroup returns e, 2e, ..., 0.
func (e AddElement) Subgroup() []AddElement {
	return Subgroup[AddElement](e.Group(), e, e.Order())
}

// Pow returns k*e (i.e. e added to itself k times).
func (e AddElement) Pow(k uint64) AddElement {
	return Pow[AddElement](e.Group(), e, k)
}

// Add returns e + f.
func (e AddElement) Add(f AddElement) AddElement {
	return e.Group().Op(e, f)
}

// Neg returns -e.
func (e AddElement) Neg() AddElement {
	return e.Group().Inv(e)
}

func (e AddElement) String() string {
	return fmt.Sprintf("%d (mod %d)", e.value, e.modulus)
}
