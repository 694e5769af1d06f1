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

package models

import "slices"

const (
	MinPort = 1
	MaxPort = 65535
)

// DefaultServerPorts is the candidate set scanned when no ports are configured.
var DefaultServerPorts = []int{21, 22, 23, 80, 143, 161, 443}

// PortSet is an unordered set of unique port numbers.
type PortSet map[int]struct{}

func NewPortSet(ports ...int) PortSet {
	set := make(PortSet, len(ports))
	for _, p := range ports {
		set.Add(p)
	}

	return set
}

func (s PortSet) Add(port int) {
	s[port] = struct{}{}
}

func (s PortSet) Contains(port int) bool {
	_, ok := s[port]

	return ok
}

func (s PortSet) Len() int {
	return len(s)
}

// SortedPorts returns the members in ascending order.
func (s PortSet) SortedPorts() []int {
	out := make([]int, 0, len(s))
	for p := range s {
		out = append(out, p)
	}

	slices.Sort(out)

	return out
}

// SubsetOf reports whether every member of s is also in other.
func (s PortSet) SubsetOf(other PortSet) bool {
	for p := range s {
		if !other.Contains(p) {
			return false
		}
	}

	return true
}

// NormalizePorts returns ports sorted ascending with duplicates removed.
// The input slice is not modified.
func NormalizePorts(ports []int) []int {
	out := slices.Clone(ports)
	slices.Sort(out)

	return slices.Compact(out)
}
