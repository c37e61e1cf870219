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

// Multiplicative is the group (Z/N)* of units modulo N under multiplication.
// Its order is φ(N), which is computed once on construction.
type Multiplicative struct {
	modulus uint64
	order   uint64
}

// MulElement is an element of (Z/N)*.  Its value is always coprime with N.
type MulElement struct {
	value   uint64
	modulus uint64
}

// NewMultiplicative constructs (Z/N)* for a given modulus N >= 1.  This panics
// if the modulus is zero, or exceeds numtheory.MaxModulus.
func NewMultiplicative(n uint64) Multiplicative {
	checkModulus(n)
	return Multiplicative{n, numtheory.EulerTotient(n)}
}

// Modulus returns N.
func (g Multiplicative) Modulus() uint64 {
	return g.modulus
}

// TryElement constructs the element corresponding to v mod N, provided v is
// coprime with N.  Otherwise, the result is empty.
func (g Multiplicative) TryElement(v uint64) util.Option[MulElement] {
	return util.MapOption(unit(v, g.modulus), g.wrap)
}

// MustElement constructs the element corresponding to v mod N, and panics if v
// is not coprime with N.
func (g Multiplicative) MustElement(v uint64) MulElement {
	if e, ok := g.TryElement(v).Get(); ok {
		return e
	}
	//
	panic(fmt.Sprintf("%d is not a unit modulo %d", v, g.modulus))
}

// Identity returns 1.
func (g Multiplicative) Identity() MulElement {
	return g.wrap(mustUnit(1, g.modulus, "identity"))
}

// Op returns a * b.
func (g Multiplicative) Op(a, b MulElement) MulElement {
	sameModulus(g.modulus, a.modulus)
	sameModulus(g.modulus, b.modulus)
	//
	v := numtheory.MulMod(a.value, b.value, g.modulus)
	//
	return g.wrap(mustUnit(v, g.modulus, "multiplication"))
}

// Inv returns the multiplicative inverse of a.
func (g Multiplicative) Inv(a MulElement) MulElement {
	sameModulus(g.modulus, a.modulus)
	//
	return g.wrap(inverse(a.value, g.modulus))
}

// Order returns φ(N), the number of units modulo N.
func (g Multiplicative) Order() uint64 {
	return g.order
}

// Elements returns an iterator over the units modulo N in ascending order.
// Count() on the iterator is exact, being φ(N) less the number of elements
// already visited.
func (g Multiplicative) Elements() iter.Iterator[MulElement] {
	return units(g.modulus, g.order, g.wrap)
}

// wrap a value which is known to be a unit.
func (g Multiplicative) wrap(v uint64) MulElement {
	return MulElement{v, g.modulus}
}

// ===================================================================
// Elements
// ===================================================================

// Group returns the group containing this element.
func (e MulElement) Group() Multiplicative {
	return NewMultiplicative(e.modulus)
}

// arith returns the group without computing its order, which is sufficient
// for Identity, Op and Inv.
func (e MulElement) arith() Multiplicative {
	return Multiplicative{modulus: e.modulus}
}

// Value returns the residue held by this element.
func (e MulElement) Value() uint64 {
	return e.value
}

// Modulus returns N.
func (e MulElement) Modulus() uint64 {
	return e.modulus
}

// Order returns the least k >= 1 with eᵏ = 1.  This always divides φ(N).
func (e MulElement) Order() uint64 {
	return ElementOrder[MulElement](e.Group(), e)
}

// Subgroup returns e, e², ..., 1.
func (e MulElement) Subgroup() []MulElement {
	g := e.Group()
	//
	return Subgroup[MulElement](g, e, ElementOrder[MulElement](g, e))
}

// Pow returns eᵏ.
func (e MulElement) Pow(k uint64) MulElement {
	return Pow[MulElement](e.arith(), e, k)
}

// Mul returns e * f.
func (e MulElement) Mul(f MulElement) MulElement {
	return e.arith().Op(e, f)
}

// Inverse returns e⁻¹.
func (e MulElement) Inverse() MulElement {
	return e.arith().Inv(e)
}

func (e MulElement) String() string {
	return fmt.Sprintf("%d (mod %d)", e.value, e.modulus)
}
