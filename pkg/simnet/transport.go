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

const (
	// EphemeralPortMin and EphemeralPortMax bound the client ports handed
	// out by ClientPort (the Linux default ip_local_port_range).
	EphemeralPortMin = 32768
	EphemeralPortMax = 61000
)

// SimTransport decides every operation with a draw from its Random and
// reports side effects to its observers. It performs no I/O.
type SimTransport struct {
	rng       Random
	observers Observers
}

var _ Transport = (*SimTransport)(nil)

func NewTransport(rng Random, observers ...Observer) *SimTransport {
	return &SimTransport{
		rng:       rng,
		observers: observers,
	}
}

func (t *SimTransport) ClientPort() int {
	return t.rng.IntInRange(EphemeralPortMin, EphemeralPortMax)
}

func (t *SimTransport) Bind(port int) bool {
	if !t.rng.Success() {
		return false
	}

	t.observers.PortBound(port)

	return true
}

func (t *SimTransport) Connect(port int) bool {
	if !t.rng.Success() {
		return false
	}

	t.observers.PortConnected(port)

	return true
}

func (t *SimTransport) Send(_ *Message) bool {
	return t.rng.Success()
}

func (t *SimTransport) Receive(_ *Message) bool {
	return t.rng.Success()
}

func (t *SimTransport) Close(port int) {
	t.observers.PortClosed(port)
}

// NewMessage never fails for the simulated transport.
func (t *SimTransport) NewMessage() (*Message, error) {
	return NewMessage(t.observers), nil
}
