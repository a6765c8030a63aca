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

package benchmark

import (
	"encoding/binary"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/apache/orderstats-go/selection"
)

// Result records one (size, distribution) case of a sweep. Err is set when a
// selector failed, returned a wrong value or mutated its input; the sweep
// continues with the remaining cases either way.
type Result struct {
	Size          int
	Distribution  Distribution
	Rank          int
	Expected      int64
	Randomized    time.Duration
	Deterministic time.Duration
	Ratio         float64
	Err           error
}

// Runner sweeps both selectors over the configured sizes and distributions.
type Runner struct {
	seed          int64
	sizes         []int
	distributions []Distribution
}

// NewRunner returns a Runner for the given sizes and distributions; nil picks
// the defaults. All randomness in the sweep derives from seed.
func NewRunner(seed int64, sizes []int, distributions []Distribution) *Runner {
	if sizes == nil {
		sizes = DefaultSizes
	}
	if distributions == nil {
		distributions = AllDistributions
	}
	return &Runner{
		seed:          seed,
		sizes:         sizes,
		distributions: distributions,
	}
}

// Run executes the full sweep. Each case queries the median rank size/2,
// matching how the selectors are typically compared.
func (r *Runner) Run() []Result {
	results := make([]Result, 0, len(r.sizes)*len(r.distributions))
	for _, size := range r.sizes {
		for _, dist := range r.distributions {
			results = append(results, r.runCase(dist, size))
		}
	}
	return results
}

func (r *Runner) runCase(dist Distribution, size int) Result {
	res := Result{Size: size, Distribution: dist, Rank: size / 2}

	input, err := GenerateInput(dist, size, r.seed)
	if err != nil {
		res.Err = err
		return res
	}
	reference := slices.Clone(input)
	slices.Sort(reference)
	res.Expected = reference[res.Rank]

	// The input slice is shared between the timed calls, so any
	// caller-visible mutation by one selector would corrupt the other's
	// measurement. Fingerprinting catches that between calls.
	before := fingerprint(input)

	sel := selection.NewRandomizedSelector[int64](caseSeed(r.seed, dist, size))
	start := time.Now()
	got, err := sel.Select(input, res.Rank)
	res.Randomized = time.Since(start)
	if res.Err = check("randomized", got, res.Expected, err); res.Err != nil {
		return res
	}
	if fingerprint(input) != before {
		res.Err = fmt.Errorf("randomized select mutated its input")
		return res
	}

	start = time.Now()
	got, err = selection.DeterministicSelect(input, res.Rank)
	res.Deterministic = time.Since(start)
	if res.Err = check("deterministic", got, res.Expected, err); res.Err != nil {
		return res
	}
	if fingerprint(input) != before {
		res.Err = fmt.Errorf("deterministic select mutated its input")
		return res
	}

	if res.Randomized > 0 {
		res.Ratio = float64(res.Deterministic) / float64(res.Randomized)
	} else {
		res.Ratio = math.Inf(1)
	}
	return res
}

func check(algorithm string, got, want int64, err error) error {
	if err != nil {
		return fmt.Errorf("%s select: %w", algorithm, err)
	}
	if got != want {
		return fmt.Errorf("%s select returned %d, want %d", algorithm, got, want)
	}
	return nil
}

func fingerprint(items []int64) uint64 {
	digest := xxhash.New()
	var buf [8]byte
	for _, v := range items {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = digest.Write(buf[:])
	}
	return digest.Sum64()
}
