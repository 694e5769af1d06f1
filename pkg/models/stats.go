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

import (
	"errors"
	"fmt"
	"sync/atomic"
)

var (
	ErrPortsLeaked    = errors.New("ports left open")
	ErrMessagesLeaked = errors.New("messages not released")
)

// Stats counts simulated transport activity for one or more scans.
// It is created before a scan, handed to the transport as an observer and
// read once the scan completes.
type Stats struct {
	bound        atomic.Uint64
	connected    atomic.Uint64
	closed       atomic.Uint64
	liveMessages atomic.Int64
}

// StatsSnapshot is a point-in-time copy of Stats.
type StatsSnapshot struct {
	Bound        uint64 `json:"bound"`
	Connected    uint64 `json:"connected"`
	Closed       uint64 `json:"closed"`
	LiveMessages int64  `json:"live_messages"`
}

func NewStats() *Stats {
	return &Stats{}
}

func (s *Stats) PortBound(_ int) {
	s.bound.Add(1)
}

func (s *Stats) PortConnected(_ int) {
	s.connected.Add(1)
}

func (s *Stats) PortClosed(_ int) {
	s.closed.Add(1)
}

func (s *Stats) MessageCreated() {
	s.liveMessages.Add(1)
}

func (s *Stats) MessageReleased() {
	s.liveMessages.Add(-1)
}

func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Bound:        s.bound.Load(),
		Connected:    s.connected.Load(),
		Closed:       s.closed.Load(),
		LiveMessages: s.liveMessages.Load(),
	}
}

// Verify checks the post-scan invariants: every message has been released
// and no bound or connected port is left without a matching close.
func (s *Stats) Verify() error {
	return s.Snapshot().Verify()
}

func (s StatsSnapshot) Verify() error {
	var errs []error

	if s.LiveMessages != 0 {
		errs = append(errs, fmt.Errorf("%w: %d live", ErrMessagesLeaked, s.LiveMessages))
	}

	if s.Bound+s.Connected > s.Closed {
		errs = append(errs, fmt.Errorf("%w: bound=%d connected=%d closed=%d",
			ErrPortsLeaked, s.Bound, s.Connected, s.Closed))
	}

	return errors.Join(errs...)
}
