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

//go:generate mockgen -destination=mock_simnet.go -package=simnet github.com/carverauto/portsim/pkg/simnet Observer,Random,Transport

// Package simnet provides a simulated network transport whose operations
// succeed or fail at random instead of touching a real network stack.
package simnet

// Random supplies the draws behind every simulated outcome.
type Random interface {
	// IntInRange returns a uniformly distributed integer in [low, high].
	IntInRange(low, high int) int
	// Success reports a 50/50 outcome.
	Success() bool
}

// Observer is notified of transport activity. Stats counters and metric
// recorders are observers.
type Observer interface {
	PortBound(port int)
	PortConnected(port int)
	PortClosed(port int)
	MessageCreated()
	MessageReleased()
}

// Transport is the simulated network layer used by the scan engine.
type Transport interface {
	// ClientPort picks an ephemeral client port. It always succeeds.
	ClientPort() int
	Bind(port int) bool
	Connect(port int) bool
	Send(msg *Message) bool
	// Receive accepts a nil message and still draws an outcome.
	Receive(msg *Message) bool
	Close(port int)
	// NewMessage allocates a tracked message. A non-nil error means the
	// message could not be allocated and nothing was tracked.
	NewMessage() (*Message, error)
}
