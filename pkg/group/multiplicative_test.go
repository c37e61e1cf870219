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
	"testing"

	"github.com/consensys/go-modgroup/pkg/numtheory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A prime just above 2³², such that products of elements exceed 64 bits.
const largePrime = 4294967311

func TestMultiplicative(t *testing.T) {
	t.Run("Z4", func(t *testing.T) {
		g := NewMultiplicative(4)
		//
		assert.Equal(t, uint64(2), g.Order())
		assert.True(t, g.TryElement(2).IsEmpty())
		assert.True(t, g.TryElement(1).HasValue())
		assert.Equal(t, uint64(1), g.MustElement(1).Order())
		assert.Equal(t, uint64(2), g.MustElement(3).Order())
		assert.Equal(t, []uint64{1, 3}, unitValues(g))
	})

	t.Run("Z8", func(t *testing.T) {
		g := NewMultiplicative(8)
		//
		assert.Equal(t, uint64(4), g.Order())
		assert.Equal(t, []uint64{1, 3, 5, 7}, unitValues(g))
		// (Z/8)* is the Klein four-group
		assert.False(t, IsCyclic[MulElement](g))
		assert.Empty(t, Generators[MulElement](g))
	})

	t.Run("Z7", func(t *testing.T) {
		g := NewMultiplicative(7)
		//
		assert.True(t, IsCyclic[MulElement](g))
		assert.Equal(t, []MulElement{g.MustElement(3), g.MustElement(5)}, Generators[MulElement](g))
	})

	t.Run("Z26", func(t *testing.T) {
		g := NewMultiplicative(26)
		//
		assert.True(t, g.TryElement(8).IsEmpty())
		assert.Equal(t, uint64(15), g.MustElement(7).Inverse().Value())
		assert.Equal(t, uint64(12), g.Order())
		// Values are reduced
		assert.Equal(t, g.MustElement(7), g.MustElement(33))
	})

	t.Run("Z1", func(t *testing.T) {
		g := NewMultiplicative(1)
		e := g.MustElement(0)
		//
		assert.Equal(t, uint64(1), g.Order())
		assert.Equal(t, g.Identity(), e)
		assert.Equal(t, uint64(1), e.Order())
		assert.Equal(t, []MulElement{e}, e.Subgroup())
		assert.Equal(t, []MulElement{e}, g.Elements().Collect())
	})

	t.Run("Subgroup", func(t *testing.T) {
		g := NewMultiplicative(7)
		//
		assert.Equal(t, []MulElement{
			g.MustElement(3), g.MustElement(2), g.MustElement(6),
			g.MustElement(4), g.MustElement(5), g.MustElement(1),
		}, g.MustElement(3).Subgroup())
		assert.Equal(t, []MulElement{g.MustElement(6), g.MustElement(1)}, g.MustElement(6).Subgroup())
	})

	t.Run("Inverse", func(t *testing.T) {
		for n := uint64(1); n <= 100; n++ {
			g := NewMultiplicative(n)
			//
			for elems := g.Elements(); elems.HasNext(); {
				e := elems.Next()
				require.Equal(t, g.Identity(), e.Mul(e.Inverse()))
				require.Equal(t, e, e.Inverse().Inverse())
			}
		}
	})

	t.Run("Pow", func(t *testing.T) {
		g := NewMultiplicative(45)
		//
		for elems := g.Elements(); elems.HasNext(); {
			e := elems.Next()
			//
			for k := uint64(0); k < 50; k++ {
				require.Equal(t, numtheory.PowMod(e.Value(), k, 45), e.Pow(k).Value())
			}
			//
			require.Equal(t, g.Identity(), e.Pow(e.Order()))
			require.Equal(t, g.Identity(), e.Pow(g.Order()))
		}
	})

	t.Run("LargeModulus", func(t *testing.T) {
		g := NewMultiplicative(largePrime)
		a := g.MustElement(largePrime - 2)
		b := g.MustElement(1 << 32)
		//
		assert.Equal(t, uint64(largePrime-1), g.Order())
		// (-2) * (-15) = 30, since 2³² = -15 mod p
		assert.Equal(t, uint64(30), g.Op(a, b).Value())
		assert.Equal(t, g.Identity(), g.Op(a, g.Inv(a)))
		// Fermat's little theorem
		assert.Equal(t, g.Identity(), b.Pow(largePrime-1))
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "3 (mod 8)", NewMultiplicative(8).MustElement(3).String())
	})
}

func TestMultiplicativeElements(t *testing.T) {
	for n := uint64(1); n <= 120; n++ {
		g := NewMultiplicative(n)
		elems := g.Elements()
		// Compute expected values by brute force
		var expected []uint64
		//
		for v := uint64(1); v <= n; v++ {
			if numtheory.Gcd(v, n) == 1 {
				expected = append(expected, v%n)
			}
		}
		//
		require.Equal(t, uint(g.Order()), elems.Count())
		//
		for i, v := range expected {
			// Count is exact at every point
			require.Equal(t, uint(len(expected)-i), elems.Count())
			require.Equal(t, v, elems.Next().Value())
		}
		//
		require.False(t, elems.HasNext())
		require.Equal(t, uint(0), elems.Count())
		// Restartable
		require.Len(t, g.Elements().Collect(), len(expected))
	}
}

func TestMultiplicativeElementsClone(t *testing.T) {
	g := NewMultiplicative(15)
	elems := g.Elements()
	//
	elems.Next()
	elems.Next()
	clone := elems.Clone()
	//
	assert.Equal(t, []uint64{4, 7, 8, 11, 13, 14}, values(elems.Collect()))
	assert.Equal(t, uint(6), clone.Count())
	assert.Equal(t, g.MustElement(11), clone.Nth(3))
	//
	var visited []uint64
	for e := range All[MulElement](g) {
		visited = append(visited, e.Value())
	}
	//
	assert.Equal(t, []uint64{1, 2, 4, 7, 8, 11, 13, 14}, visited)
}

func TestMultiplicativeLagrange(t *testing.T) {
	for n := uint64(1); n <= 200; n++ {
		g := NewMultiplicative(n)
		//
		for elems := g.Elements(); elems.HasNext(); {
			e := elems.Next()
			k := e.Order()
			sub := e.Subgroup()
			//
			require.Zero(t, g.Order()%k, "order %d of %s does not divide %d", k, e, g.Order())
			require.Len(t, sub, int(k))
			require.Equal(t, e, sub[0])
			require.Equal(t, g.Identity(), sub[len(sub)-1])
		}
	}
}

func TestMultiplicativeInvalid(t *testing.T) {
	assert.Panics(t, func() { NewMultiplicative(0) })
	assert.Panics(t, func() { NewMultiplicative(numtheory.MaxModulus + 1) })
	assert.Panics(t, func() { NewMultiplicative(4).MustElement(2) })
	// Elements of different groups cannot be mixed
	assert.Panics(t, func() {
		NewMultiplicative(8).Op(NewMultiplicative(8).MustElement(3), NewMultiplicative(10).MustElement(3))
	})
	// Elements can only be forged within this package, but a forged non-unit
	// must be caught by Op and Inv rather than silently accepted.
	g := NewMultiplicative(4)
	forged := MulElement{2, 4}
	//
	assert.Panics(t, func() { g.Op(forged, g.Identity()) })
	assert.Panics(t, func() { g.Inv(forged) })
	assert.Panics(t, func() { forged.Order() })
}

func unitValues(g Multiplicative) []uint64 {
	return values(g.Elements().Collect())
}

func values[E Element[E]](elems []E) []uint64 {
	vs := make([]uint64, len(elems))
	//
	for i, e := range elems {
		vs[i] = e.Value()
	}
	//
	return vs
}
