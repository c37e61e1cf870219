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

func TestAdditive(t *testing.T) {
	t.Run("EveryResidueIsValid", func(t *testing.T) {
		for n := uint64(1); n <= 50; n++ {
			g := NewAdditive(n)
			//
			for v := uint64(0); v < 2*n; v++ {
				e, ok := g.TryElement(v).Get()
				require.True(t, ok)
				require.Equal(t, v%n, e.Value())
				require.Equal(t, e, g.Op(g.Identity(), e))
				require.Equal(t, e, g.Op(e, g.Identity()))
			}
		}
	})

	t.Run("IdentityIsZero", func(t *testing.T) {
		g := NewAdditive(9)
		assert.Equal(t, uint64(0), g.Identity().Value())
		assert.Equal(t, g.Identity(), g.Inv(g.Identity()))
	})

	t.Run("AddNeg", func(t *testing.T) {
		g := NewAdditive(12)
		//
		for v := uint64(0); v < 12; v++ {
			e := g.Element(v)
			assert.Equal(t, (12-v)%12, e.Neg().Value())
			assert.Equal(t, g.Identity(), e.Add(e.Neg()))
		}
		//
		assert.Equal(t, uint64(3), g.Element(7).Add(g.Element(8)).Value())
	})

	t.Run("Order", func(t *testing.T) {
		for n := uint64(1); n <= 40; n++ {
			g := NewAdditive(n)
			require.Equal(t, n, g.Order())
			//
			for v := uint64(0); v < n; v++ {
				// The order of v in Z/N is N / gcd(v, N)
				require.Equal(t, n/numtheory.Gcd(v, n), g.Element(v).Order(), "order of %d mod %d", v, n)
			}
		}
	})

	t.Run("Subgroup", func(t *testing.T) {
		g := NewAdditive(8)
		//
		assert.Equal(t, []uint64{2, 4, 6, 0}, values(g.Element(2).Subgroup()))
		assert.Equal(t, []uint64{0}, values(g.Identity().Subgroup()))
		assert.Equal(t, []uint64{3, 6, 1, 4, 7, 2, 5, 0}, values(g.Element(3).Subgroup()))
	})

	t.Run("Pow", func(t *testing.T) {
		g := NewAdditive(10)
		e := g.Element(7)
		//
		for k := uint64(0); k < 30; k++ {
			assert.Equal(t, (7*k)%10, e.Pow(k).Value())
		}
	})

	t.Run("Elements", func(t *testing.T) {
		g := NewAdditive(5)
		elems := g.Elements()
		//
		for v := uint64(0); v < 5; v++ {
			require.Equal(t, uint(5-v), elems.Count())
			require.Equal(t, g.Element(v), elems.Next())
		}
		//
		assert.False(t, elems.HasNext())
		assert.Len(t, NewAdditive(1).Elements().Collect(), 1)
	})

	t.Run("LargeModulus", func(t *testing.T) {
		n := numtheory.MaxModulus
		g := NewAdditive(n)
		a := g.Element(n - 1)
		b := g.Element(n - 2)
		//
		assert.Equal(t, n-3, g.Op(a, b).Value())
		assert.Equal(t, uint64(1), g.Inv(a).Value())
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "3 (mod 8)", NewAdditive(8).Element(11).String())
	})
}

func TestAdditiveInvalid(t *testing.T) {
	assert.Panics(t, func() { NewAdditive(0) })
	assert.Panics(t, func() { NewAdditive(numtheory.MaxModulus + 1) })
	// Elements of different groups cannot be mixed
	assert.Panics(t, func() {
		NewAdditive(8).Op(NewAdditive(8).Element(1), NewAdditive(9).Element(1))
	})
	assert.Panics(t, func() { NewAdditive(8).Inv(NewAdditive(9).Element(1)) })
}
