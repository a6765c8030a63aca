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

// Package selection provides exact order-statistic selection: given an
// unordered slice and a zero-based rank k, it returns the element that would
// occupy position k in the fully sorted slice, without sorting it.
//
// Two algorithms are provided. The randomized selector partitions around a
// uniformly random pivot and runs in expected linear time. The deterministic
// selector uses the median-of-medians pivot rule and runs in worst-case
// linear time. Both operate on a private copy of the input; the caller's
// slice is never modified.
package selection

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when selecting from a slice of length zero.
	ErrEmptyInput = errors.New("selection is undefined for an empty input")
	// ErrRankOutOfRange is returned when the requested rank is negative or
	// not less than the input length.
	ErrRankOutOfRange = errors.New("rank out of range")
)

// checkRank validates the top-level preconditions once. The recursive rank is
// invariant-preserving by construction and is never re-validated.
func checkRank[T any](items []T, k int) error {
	if len(items) == 0 {
		return ErrEmptyInput
	}
	if k < 0 || k >= len(items) {
		return fmt.Errorf("rank must be >= 0 and < %d: %d: %w", len(items), k, ErrRankOutOfRange)
	}
	return nil
}

// workingCopy returns the private slice a top-level selection call owns and
// mutates. Returned values are copied out of it, never aliased into it.
func workingCopy[T any](items []T) []T {
	work := make([]T, len(items))
	copy(work, items)
	return work
}
