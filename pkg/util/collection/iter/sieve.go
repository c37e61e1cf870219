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
package iter

import (
	"fmt"

	"github.com/consensys/go-modgroup/pkg/util"
)

// SieveFn maps a candidate from a numeric range into an item, or rejects it.
type SieveFn[T any] func(uint64) util.Option[T]

// sieveIterator visits the candidates of a numeric range in ascending order,
// yielding only those accepted by its sieve.  The number of accepted
// candidates is known up front, such that Count() is exact without scanning.
type sieveIterator[T any] struct {
	// Next candidate to consider
	next uint64
	// Last candidate to consider (inclusive)
	last uint64
	// Number of accepted candidates not yet yielded
	left uint
	// Accepts or rejects candidates
	sieve SieveFn[T]
}

// NewSieveIterator constructs an iterator over candidates in [first, last]
// which are accepted by the given sieve.  The caller must supply the exact
// number of candidates which will be accepted, since this determines both
// termination and the value returned by Count().
func NewSieveIterator[T any](first, last uint64, count uint, sieve SieveFn[T]) Iterator[T] {
	return &sieveIterator[T]{first, last, count, sieve}
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *sieveIterator[T]) HasNext() bool {
	return p.left > 0
}

// Next returns the next item, and advance the iterator.
//
//nolint:revive
func (p *sieveIterator[T]) Next() T {
	for p.left > 0 && p.next <= p.last {
		candidate := p.next
		p.next++
		//
		if item, ok := p.sieve(candidate).Get(); ok {
			p.left--
			return item
		}
	}
	// Either the iterator was drained, or the supplied count was wrong.
	panic(fmt.Sprintf("sieve iterator exhausted with %d item(s) outstanding", p.left))
}

// Clone creates a copy of this iterator at the given cursor position.
// Modifying the clone (i.e. by calling Next) iterator will not modify the
// original.
//
//nolint:revive
func (p *sieveIterator[T]) Clone() Iterator[T] {
	return &sieveIterator[T]{p.next, p.last, p.left, p.sieve}
}

// Collect allocates a new array containing all items of this iterator.
// This drains the iterator.
//
//nolint:revive
func (p *sieveIterator[T]) Collect() []T {
	items := make([]T, 0, p.left)
	//
	for p.HasNext() {
		items = append(items, p.Next())
	}
	//
	return items
}

// Count returns the number of items left in the iterator
//
//nolint:revive
func (p *sieveIterator[T]) Count() uint {
	return p.left
}

// Find returns the index of the first match for a given predicate, or
// return false if no match is found.
//
//nolint:revive
func (p *sieveIterator[T]) Find(predicate Predicate[T]) (uint, bool) {
	return Find(p, predicate)
}

// Nth returns the nth item in this iterator
//
//nolint:revive
func (p *sieveIterator[T]) Nth(n uint) T {
	return Nth(p, n)
}
