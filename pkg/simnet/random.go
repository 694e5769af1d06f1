/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package simnet

import (
	"fmt"
	"math/rand/v2"
)

// pcgStream is the fixed PCG stream selector; only the seed varies between runs.
const pcgStream = 0x9e3779b97f4a7c15

// UniformRandom draws from a single PCG generator seeded once at construction.
// It is not safe for concurrent use.
type UniformRandom struct {
	seed uint64
	rng  *rand.Rand
}

var _ Random = (*UniformRandom)(nil)

// NewRandom returns a generator seeded with seed. A zero seed is replaced by
// one drawn from the runtime's entropy source.
func NewRandom(seed uint64) *UniformRandom {
	if seed == 0 {
		seed = rand.Uint64()
	}

	return &UniformRandom{
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, pcgStream)), // #nosec G404 - simulation only
	}
}

// Seed returns the seed in use, so a run can be replayed.
func (r *UniformRandom) Seed() uint64 {
	return r.seed
}

func (r *UniformRandom) IntInRange(low, high int) int {
	if low > high {
		panic(fmt.Sprintf("simnet: invalid range [%d, %d]", low, high))
	}

	return low + r.rng.IntN(high-low+1)
}

func (r *UniformRandom) Success() bool {
	return r.rng.IntN(2) == 1
}
