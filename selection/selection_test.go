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
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeInput(shape string, size int, rng *rand.Rand) []int {
	arr := make([]int, size)
	switch shape {
	case "random":
		for i := range arr {
			arr[i] = rng.Intn(size * 10)
		}
	case "sorted":
		for i := range arr {
			arr[i] = i + 1
		}
	case "reverse_sorted":
		for i := range arr {
			arr[i] = size - i
		}
	case "all_equal":
		for i := range arr {
			arr[i] = 42
		}
	case "few_unique":
		for i := range arr {
			arr[i] = 1 + rng.Intn(5)
		}
	}
	return arr
}

// Both algorithms agree with each other and with a full sort across the
// shapes the selectors are compared on.
func TestSelectorsAgreeWithSort(t *testing.T) {
	shapes := []string{"random", "sorted", "reverse_sorted", "all_equal", "few_unique"}
	sizes := []int{1, 2, 5, 30, 100, 500}
	rng := rand.New(rand.NewSource(42))

	for _, shape := range shapes {
		for _, size := range sizes {
			t.Run(fmt.Sprintf("%s/%d", shape, size), func(t *testing.T) {
				arr := makeInput(shape, size, rng)
				sorted := slices.Clone(arr)
				slices.Sort(sorted)
				s := NewRandomizedSelector[int](int64(size))

				for _, k := range []int{0, size / 2, size - 1} {
					randGot, err := s.Select(arr, k)
					require.NoError(t, err)
					detGot, err := DeterministicSelect(arr, k)
					require.NoError(t, err)

					assert.Equal(t, sorted[k], randGot, "randomized, rank %d", k)
					assert.Equal(t, sorted[k], detGot, "deterministic, rank %d", k)
				}
			})
		}
	}
}

func TestSelectorsAgreeOnRandomTrials(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := NewRandomizedSelector[int](43)

	for trial := 0; trial < 200; trial++ {
		size := 1 + rng.Intn(64)
		arr := make([]int, size)
		for i := range arr {
			arr[i] = rng.Intn(16) // dense duplicates
		}
		k := rng.Intn(size)

		randGot, err := s.Select(arr, k)
		require.NoError(t, err)
		detGot, err := DeterministicSelect(arr, k)
		require.NoError(t, err)

		assert.Equal(t, detGot, randGot, "trial %d, size %d, rank %d, input %v", trial, size, k, arr)
	}
}

func benchmarkSelect(b *testing.B, shape string, size int, deterministic bool) {
	rng := rand.New(rand.NewSource(42))
	arr := makeInput(shape, size, rng)
	s := NewRandomizedSelector[int](42)
	k := size / 2

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var err error
		if deterministic {
			_, err = DeterministicSelect(arr, k)
		} else {
			_, err = s.Select(arr, k)
		}
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRandomizedSelect(b *testing.B) {
	for _, shape := range []string{"random", "sorted", "reverse_sorted", "all_equal", "few_unique"} {
		for _, size := range []int{100, 500, 1000, 5000} {
			b.Run(fmt.Sprintf("%s/%d", shape, size), func(b *testing.B) {
				benchmarkSelect(b, shape, size, false)
			})
		}
	}
}

func BenchmarkDeterministicSelect(b *testing.B) {
	for _, shape := range []string{"random", "sorted", "reverse_sorted", "all_equal", "few_unique"} {
		for _, size := range []int{100, 500, 1000, 5000} {
			b.Run(fmt.Sprintf("%s/%d", shape, size), func(b *testing.B) {
				benchmarkSelect(b, shape, size, true)
			})
		}
	}
}
