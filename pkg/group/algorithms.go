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
	goiter "iter"

	"github.com/consensys/go-modgroup/pkg/util/collection/iter"
)

// ElementOrder computes the order of an element e in a finite group g, by
// repeatedly applying the group operation until the identity is reached.  By
// Lagrange's theorem the order of e divides the order of g, so the loop is
// bounded by g.Order().  Exceeding the bound means that g (or e) is broken,
// and this panics.
func ElementOrder[E comparable](g FiniteGroup[E], e E) uint64 {
	var (
		pow      = e
		identity = g.Identity()
		bound    = g.Order()
	)
	//
	for k := uint64(1); k <= bound; k++ {
		if pow == identity {
			return k
		}
		//
		pow = g.Op(pow, e)
	}
	// Unreachable for a correct group
	panic(fmt.Sprintf("element %v did not reach identity within group order %d", e, bound))
}

// Subgroup returns the first n powers of e, namely e, e², ..., eⁿ.  When n is
// the order of e, this is exactly the cyclic subgroup generated by e and it
// ends with the identity.
func Subgroup[E any](g Group[E], e E, n uint64) []E {
	var (
		powers = make([]E, 0, n)
		pow    = e
	)
	//
	for i := uint64(0); i < n; i++ {
		powers = append(powers, pow)
		pow = g.Op(pow, e)
	}
	//
	return powers
}

// Pow raises e to the power k in g using square-and-multiply, such that only
// O(log k) group operations are required.  Pow(g, e, 0) is the identity.
func Pow[E any](g Group[E], e E, k uint64) E {
	result := g.Identity()
	//
	for k != 0 {
		if k&1 == 1 {
			result = g.Op(result, e)
		}
		// div 2
		k >>= 1
		//
		if k == 0 {
			break
		}
		//
		e = g.Op(e, e)
	}
	//
	return result
}

// Generators returns those elements whose order equals the order of the group
// (i.e. which generate the entire group), in ascending order of value.
func Generators[E interface {
	comparable
	Element[E]
}](g Modular[E]) []E {
	var (
		order      = g.Order()
		generators []E
	)
	//
	for elems := g.Elements(); elems.HasNext(); {
		if e := elems.Next(); e.Order() == order {
			generators = append(generators, e)
		}
	}
	//
	return generators
}

// IsCyclic determines whether a group is generated by a single element.  This
// stops at the first generator found.
func IsCyclic[E interface {
	comparable
	Element[E]
}](g Modular[E]) bool {
	order := g.Order()
	_, found := g.Elements().Find(func(e E) bool { return e.Order() == order })
	//
	return found
}

// All returns a sequence over every element of a group, in ascending order of
// value, for use with a range statement.
func All[E any](g Modular[E]) goiter.Seq[E] {
	return iter.Seq[E](g.Elements())
}
