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

// groupMedian sorts items[lo..hi] in place and returns the index of its lower
// median. The caller guarantees hi-lo <= 4, so the insertion sort is O(1) per
// group.
func groupMedian[T cmp.Ordered](items []T, lo, hi int) int {
	for i := lo + 1; i <= hi; i++ {
		for j := i; j > lo && items[j] < items[j-1]; j-- {
			items[j], items[j-1] = items[j-1], items[j]
		}
	}
	return lo + (hi-lo)/2
}

func groupMedianFunc[T any](items []T, lo, hi int, compare common.CompareFn[T]) int {
	for i := lo + 1; i <= hi; i++ {
		for j := i; j > lo && compare(items[j], items[j-1]) < 0; j-- {
			items[j], items[j-1] = items[j-1], items[j]
		}
	}
	return lo + (hi-lo)/2
}
