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

	"github.com/apache/orderstats-go/common"
	"github.com/apache/orderstats-go/internal"
)

// DeterministicSelect returns the element of rank k (zero-based) in the
// sorted order of items using the median-of-medians pivot rule. The inner
// "median of the group medians" step recurses into this same selector, which
// is what makes the classical worst-case O(n) bound hold: every partition
// discards at least 3n/10 elements. The input slice is not modified.
func DeterministicSelect[T cmp.Ordered](items []T, k int) (T, error) {
	if err := checkRank(items, k); err != nil {
		return *new(T), err
	}
	work := workingCopy(items)
	momSelect(work, 0, len(work)-1, k)
	return work[k], nil
}

// DeterministicSelectFunc is DeterministicSelect for item types without a
// natural order, using a caller-provided comparator.
func DeterministicSelectFunc[T any](items []T, k int, compare common.CompareFn[T]) (T, error) {
	if compare == nil {
		return *new(T), fmt.Errorf("no compare function provided")
	}
	if err := checkRank(items, k); err != nil {
		return *new(T), err
	}
	work := workingCopy(items)
	momSelectFunc(work, 0, len(work)-1, k, compare)
	return work[k], nil
}

// momSelect narrows [lo, hi] around median-of-medians pivots until the rank k
// lands on a pivot or the range collapses. On return items[k] holds the
// element of rank k. Iterative for the same reason as quickselect.
func momSelect[T cmp.Ordered](items []T, lo, hi, k int) {
	for hi > lo {
		p := partition(items, lo, hi, medianOfMedians(items, lo, hi))
		if p == k {
			return
		}
		if k < p {
			hi = p - 1
		} else {
			lo = p + 1
		}
	}
}

// medianOfMedians returns an index in [lo, hi] whose value ranks between the
// 30th and 70th percentile of the range.
//
// Each group of up to five elements is sorted and its median swapped into the
// next free slot of the range's prefix; the destination slot never passes the
// start of the current group, so every group median survives the shuffle. The
// pivot index is then carried structurally: after selecting rank mid within
// the median prefix, the median of medians sits at index mid itself. Looking
// the value up again by equality would be ambiguous under duplicates.
func medianOfMedians[T cmp.Ordered](items []T, lo, hi int) int {
	if hi-lo < 5 {
		return groupMedian(items, lo, hi)
	}
	n := 0
	for i := lo; i <= hi; i += 5 {
		m := groupMedian(items, i, internal.Min(i+4, hi))
		items[lo+n], items[m] = items[m], items[lo+n]
		n++
	}
	mid := lo + n/2
	momSelect(items, lo, lo+n-1, mid)
	return mid
}

func momSelectFunc[T any](items []T, lo, hi, k int, compare common.CompareFn[T]) {
	for hi > lo {
		p := partitionFunc(items, lo, hi, medianOfMediansFunc(items, lo, hi, compare), compare)
		if p == k {
			return
		}
		if k < p {
			hi = p - 1
		} else {
			lo = p + 1
		}
	}
}

func medianOfMediansFunc[T any](items []T, lo, hi int, compare common.CompareFn[T]) int {
	if hi-lo < 5 {
		return groupMedianFunc(items, lo, hi, compare)
	}
	n := 0
	for i := lo; i <= hi; i += 5 {
		m := groupMedianFunc(items, i, internal.Min(i+4, hi), compare)
		items[lo+n], items[m] = items[m], items[lo+n]
		n++
	}
	mid := lo + n/2
	momSelectFunc(items, lo, lo+n-1, mid, compare)
	return mid
}
