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

	"github.com/apache/orderstats-go/common"
)

// partition rearranges items[lo..hi] around the value at pivotIdx and returns
// the pivot's final index. Afterwards every element left of that index is
// strictly less than the pivot value and every element right of it is greater
// than or equal to the pivot value (Lomuto scheme, not a three-way partition).
//
// Because the comparison is strict less-than, elements equal to the pivot all
// end up on the right side. On duplicate-heavy input the returned index stays
// near lo and quickselect degrades toward quadratic time. Correctness is
// unaffected; the skew is intentional and covered by tests.
func partition[T cmp.Ordered](items []T, lo, hi, pivotIdx int) int {
	pivot := items[pivotIdx]
	items[pivotIdx], items[hi] = items[hi], items[pivotIdx]
	store := lo
	for i := lo; i < hi; i++ {
		if items[i] < pivot {
			items[i], items[store] = items[store], items[i]
			store++
		}
	}
	items[store], items[hi] = items[hi], items[store]
	return store
}

func partitionFunc[T any](items []T, lo, hi, pivotIdx int, compare common.CompareFn[T]) int {
	pivot := items[pivotIdx]
	items[pivotIdx], items[hi] = items[hi], items[pivotIdx]
	store := lo
	for i := lo; i < hi; i++ {
		if compare(items[i], pivot) < 0 {
			items[i], items[store] = items[store], items[i]
			store++
		}
	}
	items[store], items[hi] = items[hi], items[store]
	return store
}
