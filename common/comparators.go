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

package common

import "cmp"

var Int64Comparator = func(reverseOrder bool) CompareFn[int64] {
	return func(a int64, b int64) int {
		if reverseOrder {
			return cmp.Compare(b, a)
		}
		return cmp.Compare(a, b)
	}
}

var Float64Comparator = func(reverseOrder bool) CompareFn[float64] {
	return func(a float64, b float64) int {
		if reverseOrder {
			return cmp.Compare(b, a)
		}
		return cmp.Compare(a, b)
	}
}

var StringComparator = func(reverseOrder bool) CompareFn[string] {
	return func(a string, b string) int {
		if reverseOrder {
			return cmp.Compare(b, a)
		}
		return cmp.Compare(a, b)
	}
}

// NaturalComparator adapts any ordered type's natural order to a CompareFn.
func NaturalComparator[T cmp.Ordered]() CompareFn[T] {
	return cmp.Compare[T]
}
