/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package selection

import (
	"cmp"
	"fmt"
	"math/rand"
	"time"

	"github.com/apache/orderstats-go/common"
)

// RandomizedSelector finds order statistics by quickselect with uniformly
// random pivots. Expected O(n) time; O(n^2) in the worst case (adversarial
// pivot sequence or duplicate-heavy input, see partition).
//
// Pivot choice draws from the selector's own seeded source, never from the
// global one, so runs are reproducible for a fixed seed.
type RandomizedSelector[T cmp.Ordered] struct {
	rng *rand.Rand
}

// NewRandomizedSelector returns a selector whose pivot choices are driven by
// the given seed.
func NewRandomizedSelector[T cmp.Ordered](seed int64) *RandomizedSelector[T] {
	return &RandomizedSelector[T]{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Select returns the element of rank k (zero-based) in the sorted order of
// items. The input slice is not modified.
func (s *RandomizedSelector[T]) Select(items []T, k int) (T, error) {
	if err := checkRank(items, k); err != nil {
		return *new(T), err
	}
	return quickselect(workingCopy(items), 0, len(items)-1, k, s.rng), nil
}

// RandomizedSelectorFunc is RandomizedSelector for item types without a
// natural order, using a caller-provided comparator.
type RandomizedSelectorFunc[T any] struct {
	rng     *rand.Rand
	compare common.CompareFn[T]
}

// NewRandomizedSelectorFunc returns a seeded selector using compare for all
// element ordering.
func NewRandomizedSelectorFunc[T any](seed int64, compare common.CompareFn[T]) (*RandomizedSelectorFunc[T], error) {
	if compare == nil {
		return nil, fmt.Errorf("no compare function provided")
	}
	return &RandomizedSelectorFunc[T]{
		rng:     rand.New(rand.NewSource(seed)),
		compare: compare,
	}, nil
}

// Select returns the element of rank k (zero-based) under the selector's
// comparator. The input slice is not modified.
func (s *RandomizedSelectorFunc[T]) Select(items []T, k int) (T, error) {
	if err := checkRank(items, k); err != nil {
		return *new(T), err
	}
	return quickselectFunc(workingCopy(items), 0, len(items)-1, k, s.rng, s.compare), nil
}

// RandomizedSelect is a convenience wrapper that seeds a fresh selector from
// the wall clock. Use NewRandomizedSelector for reproducible pivot sequences.
func RandomizedSelect[T cmp.Ordered](items []T, k int) (T, error) {
	return NewRandomizedSelector[T](time.Now().UnixNano()).Select(items, k)
}

// RandomizedSelectFunc is the comparator-based counterpart of
// RandomizedSelect.
func RandomizedSelectFunc[T any](items []T, k int, compare common.CompareFn[T]) (T, error) {
	s, err := NewRandomizedSelectorFunc(time.Now().UnixNano(), compare)
	if err != nil {
		return *new(T), err
	}
	return s.Select(items, k)
}

// quickselect narrows [lo, hi] around random pivots until the rank k lands on
// a pivot or the range collapses. Iterative on purpose: the recursion in the
// textbook formulation is tail-position only, and a loop keeps stack depth
// constant even when partitions are maximally unbalanced.
func quickselect[T cmp.Ordered](items []T, lo, hi, k int, rng *rand.Rand) T {
	for hi > lo {
		p := partition(items, lo, hi, lo+rng.Intn(hi-lo+1))
		if p == k {
			return items[k]
		}
		if k < p {
			hi = p - 1
		} else {
			lo = p + 1
		}
	}
	return items[k]
}

func quickselectFunc[T any](items []T, lo, hi, k int, rng *rand.Rand, compare common.CompareFn[T]) T {
	for hi > lo {
		p := partitionFunc(items, lo, hi, lo+rng.Intn(hi-lo+1), compare)
		if p == k {
			return items[k]
		}
		if k < p {
			hi = p - 1
		} else {
			lo = p + 1
		}
	}
	return items[k]
}
