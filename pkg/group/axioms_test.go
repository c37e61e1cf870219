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
	"testing"

	"github.com/stretchr/testify/require"
)

type mod1 struct{}
type mod4 struct{}
type mod8 struct{}
type mod17 struct{}
type mod24 struct{}
type mod26 struct{}
type mod300 struct{}

func (mod1) Modulus() uint64   { return 1 }
func (mod4) Modulus() uint64   { return 4 }
func (mod8) Modulus() uint64   { return 8 }
func (mod17) Modulus() uint64  { return 17 }
func (mod24) Modulus() uint64  { return 24 }
func (mod26) Modulus() uint64  { return 26 }
func (mod300) Modulus() uint64 { return 300 }

func TestAxioms(t *testing.T) {
	for n := uint64(1); n <= 24; n++ {
		t.Run(fmt.Sprintf("Additive_%d", n), func(t *testing.T) {
			checkAxioms[AddElement](t, NewAdditive(n))
		})
		t.Run(fmt.Sprintf("Multiplicative_%d", n), func(t *testing.T) {
			checkAxioms[MulElement](t, NewMultiplicative(n))
		})
	}
}

func TestAxiomsStatic(t *testing.T) {
	checkAxioms[StaticAddElement[mod1]](t, StaticAdditive[mod1]{})
	checkAxioms[StaticAddElement[mod17]](t, StaticAdditive[mod17]{})
	checkAxioms[StaticAddElement[mod24]](t, StaticAdditive[mod24]{})
	checkAxioms[StaticMulElement[mod1]](t, StaticMultiplicative[mod1]{})
	checkAxioms[StaticMulElement[mod17]](t, StaticMultiplicative[mod17]{})
	checkAxioms[StaticMulElement[mod24]](t, StaticMultiplicative[mod24]{})
	checkAxioms[StaticMulElement[mod300]](t, StaticMultiplicative[mod300]{})
}

// checkAxioms verifies closure, associativity, identity and inverses over every
// combination of elements, along with Lagrange's theorem and the structure of
// generated subgroups.
func checkAxioms[E interface {
	comparable
	Element[E]
}](t *testing.T, g Modular[E]) {
	var (
		elems    = g.Elements().Collect()
		identity = g.Identity()
		members  = make(map[E]bool)
	)
	//
	require.Len(t, elems, int(g.Order()))
	//
	for _, e := range elems {
		members[e] = true
	}
	//
	require.True(t, members[identity], "identity missing")
	//
	for _, a := range elems {
		// Identity
		require.Equal(t, a, g.Op(identity, a))
		require.Equal(t, a, g.Op(a, identity))
		// Inverses
		require.True(t, members[g.Inv(a)], "inverse of %v not a member", a)
		require.Equal(t, identity, g.Op(a, g.Inv(a)))
		require.Equal(t, identity, g.Op(g.Inv(a), a))
		// Lagrange
		k := a.Order()
		sub := a.Subgroup()
		//
		require.Zero(t, g.Order()%k, "order %d of %v does not divide %d", k, a, g.Order())
		require.Len(t, sub, int(k))
		require.Equal(t, identity, sub[len(sub)-1])
		require.Equal(t, identity, Pow[E](g, a, k))
		//
		for _, b := range elems {
			ab := g.Op(a, b)
			// Closure
			require.True(t, members[ab], "%v * %v not a member", a, b)
			// Both groups are abelian
			require.Equal(t, ab, g.Op(b, a))
			// Associativity
			for _, c := range elems {
				require.Equal(t, g.Op(ab, c), g.Op(a, g.Op(b, c)))
			}
		}
	}
	// TryElement accepts exactly the values of members
	valid := make(map[uint64]bool)
	//
	for _, e := range elems {
		valid[e.Value()] = true
	}
	//
	for v := uint64(0); v < g.Modulus(); v++ {
		e, ok := g.TryElement(v).Get()
		//
		require.Equal(t, valid[v], ok, "TryElement(%d)", v)
		require.True(t, !ok || members[e], "TryElement(%d)", v)
	}
}
