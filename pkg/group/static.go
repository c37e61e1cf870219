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

// StaticAdditive is the group Z/N where N is fixed by the type parameter M.
// The zero value is ready to use.
type StaticAdditive[M Modulus] struct{}

// StaticAddElement is an element of StaticAdditive[M].
type StaticAddElement[M Modulus] struct {
	value uint64
}

// Modulus returns N.
func (g StaticAdditive[M]) Modulus() uint64 {
	return modulusOf[M]()
}

// Element constructs the element corresponding to v mod N.
func (g StaticAdditive[M]) Element(v uint64) StaticAddElement[M] {
	return StaticAddElement[M]{v % modulusOf[M]()}
}

// TryElement constructs the element corresponding to v mod N.  The result is
// never empty.
func (g StaticAdditive[M]) TryElement(v uint64) util.Option[StaticAddElement[M]] {
	return util.Some(g.Element(v))
}

// Identity returns 0.
func (g StaticAdditive[M]) Identity() StaticAddElement[M] {
	return StaticAddElement[M]{0}
}

// Op returns a + b.
func (g StaticAdditive[M]) Op(a, b StaticAddElement[M]) StaticAddElement[M] {
	return StaticAddElement[M]{numtheory.AddMod(a.value, b.value, modulusOf[M]())}
}

// Inv returns -a.
func (g StaticAdditive[M]) Inv(a StaticAddElement[M]) StaticAddElement[M] {
	return StaticAddElement[M]{numtheory.NegMod(a.value, modulusOf[M]())}
}

// Order returns N.
func (g StaticAdditive[M]) Order() uint64 {
	return modulusOf[M]()
}

// Elements returns an iterator over 0, 1, ..., N-1.
func (g StaticAdditive[M]) Elements() iter.Iterator[StaticAddElement[M]] {
	return residues(modulusOf[M](), g.Element)
}

// Value returns the residue held by this element.
func (e StaticAddElement[M]) Value() uint64 {
	return e.value
}

// Order returns the least k >= 1 with k*e = 0.
func (e StaticAddElement[M]) Order() uint64 {
	return ElementOrder[StaticAddElement[M]](StaticAdditive[M]{}, e)
}

// Subgroup returns e, 2e, ..., 0.
func (e StaticAddElement[M]) Subgroup() []StaticAddElement[M] {
	return Subgroup[StaticAddElement[M]](StaticAdditive[M]{}, e, e.Order())
}

// Pow returns k*e.
func (e StaticAddElement[M]) Pow(k uint64) StaticAddElement[M] {
	return Pow[StaticAddElement[M]](StaticAdditive[M]{}, e, k)
}

func (e StaticAddElement[M]) String() string {
	return fmt.Sprintf("%d (mod %d)", e.value, modulusOf[M]())
}

// ===================================================================
// Multiplicative
// ===================================================================

// StaticMultiplicative is the group (Z/N)* where N is fixed by the type
// parameter M.  The zero value is ready to use.  Its order is taken from the
// generated totient table where possible.
type StaticMultiplicative[M Modulus] struct{}

// StaticMulElement is an element of StaticMultiplicative[M].
type StaticMulElement[M Modulus] struct {
	value uint64
}

// Modulus returns N.
func (g StaticMultiplicative[M]) Modulus() uint64 {
	return modulusOf[M]()
}

// TryElement constructs the element corresponding to v mod N, provided v is
// coprime with N.  Otherwise, the result is empty.
func (g StaticMultiplicative[M]) TryElement(v uint64) util.Option[StaticMulElement[M]] {
	return util.MapOption(unit(v, modulusOf[M]()), g.wrap)
}

// MustElement constructs the element corresponding to v mod N, and panics if
// v is not coprime with N.
func (g StaticMultiplicative[M]) MustElement(v uint64) StaticMulElement[M] {
	if e, ok := g.TryElement(v).Get(); ok {
		return e
	}
	//
	panic(fmt.Sprintf("%d is not a unit modulo %d", v, modulusOf[M]()))
}

// Identity returns 1.
func (g StaticMultiplicative[M]) Identity() StaticMulElement[M] {
	return g.wrap(mustUnit(1, modulusOf[M](), "identity"))
}

// Op returns a * b.
func (g StaticMultiplicative[M]) Op(a, b StaticMulElement[M]) StaticMulElement[M] {
	n := modulusOf[M]()
	v := numtheory.MulMod(a.value, b.value, n)
	//
	return g.wrap(mustUnit(v, n, "multiplication"))
}

// Inv returns the multiplicative inverse of a.
func (g StaticMultiplicative[M]) Inv(a StaticMulElement[M]) StaticMulElement[M] {
	return g.wrap(inverse(a.value, modulusOf[M]()))
}

// Order returns φ(N).
func (g StaticMultiplicative[M]) Order() uint64 {
	return numtheory.Totient(modulusOf[M]())
}

// Elements returns an iterator over the units modulo N in ascending order.
func (g StaticMultiplicative[M]) Elements() iter.Iterator[StaticMulElement[M]] {
	return units(modulusOf[M](), g.Order(), g.wrap)
}

func (g StaticMultiplicative[M]) wrap(v uint64) StaticMulElement[M] {
	return StaticMulElement[M]{v}
}

// Value returns the residue held by this element.
func (e StaticMulElement[M]) Value() uint64 {
	return e.value
}

// Order returns the least k >= 1 with eᵏ = 1.
func (e StaticMulElement[M]) Order() uint64 {
	return ElementOrder[StaticMulElement[M]](StaticMultiplicative[M]{}, e)
}

// Subgroup returns e, e², ..., 1.
func (e StaticMulElement[M]) Subgroup() []StaticMulElement[M] {
	return Subgroup[StaticMulElement[M]](StaticMultiplicative[M]{}, e, e.Order())
}

// Pow returns eᵏ.
func (e StaticMulElement[M]) Pow(k uint64) StaticMulElement[M] {
	return Pow[StaticMulElement[M]](StaticMultiplicative[M]{}, e, k)
}

func (e StaticMulElement[M]) String() string {
	return fmt.Sprintf("%d (mod %d)", e.value, modulusOf[M]())
}
