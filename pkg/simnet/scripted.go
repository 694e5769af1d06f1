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

// ScriptedRandom replays a fixed sequence of outcomes and ports.
//
// Success returns the next scripted outcome, or false once the script is
// exhausted. IntInRange returns the next scripted value clamped to the
// requested range, or the lower bound once the values run out.
type ScriptedRandom struct {
	outcomes []bool
	values   []int
	draws    int
}

var _ Random = (*ScriptedRandom)(nil)

func NewScriptedRandom(outcomes ...bool) *ScriptedRandom {
	return &ScriptedRandom{outcomes: outcomes}
}

// WithValues queues values for IntInRange and returns s.
func (s *ScriptedRandom) WithValues(values ...int) *ScriptedRandom {
	s.values = append(s.values, values...)

	return s
}

// Append queues more outcomes for Success.
func (s *ScriptedRandom) Append(outcomes ...bool) {
	s.outcomes = append(s.outcomes, outcomes...)
}

func (s *ScriptedRandom) Success() bool {
	s.draws++

	if len(s.outcomes) == 0 {
		return false
	}

	next := s.outcomes[0]
	s.outcomes = s.outcomes[1:]

	return next
}

func (s *ScriptedRandom) IntInRange(low, high int) int {
	if len(s.values) == 0 {
		return low
	}

	next := s.values[0]
	s.values = s.values[1:]

	return min(max(next, low), high)
}

// Remaining reports how many scripted outcomes have not been consumed.
func (s *ScriptedRandom) Remaining() int {
	return len(s.outcomes)
}

// Draws reports how many times Success has been called.
func (s *ScriptedRandom) Draws() int {
	return s.draws
}
