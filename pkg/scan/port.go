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

package scan

import "github.com/carverauto/portsim/pkg/simnet"

type portState int

const (
	portIdle portState = iota
	portActive
	portReleased
)

// Port owns one simulated port for the duration of a probe. A port that
// became active is closed exactly once by Release; an idle port is never
// closed. Callers pair NewPort with a deferred Release.
type Port struct {
	number    int
	state     portState
	transport simnet.Transport
}

func NewPort(number int, transport simnet.Transport) *Port {
	return &Port{
		number:    number,
		transport: transport,
	}
}

func (p *Port) Number() int {
	return p.number
}

// Active reports whether the port is bound or connected and not yet released.
func (p *Port) Active() bool {
	return p.state == portActive
}

// Bind binds the port as a client port.
func (p *Port) Bind() bool {
	return p.activate(p.transport.Bind)
}

// Connect connects to the port as a server port.
func (p *Port) Connect() bool {
	return p.activate(p.transport.Connect)
}

// activate never moves an active port back to idle, so a failed second
// attempt cannot drop the pending close.
func (p *Port) activate(op func(port int) bool) bool {
	if p.state == portReleased {
		return false
	}

	if !op(p.number) {
		return false
	}

	p.state = portActive

	return true
}

// Release closes the port if it became active. Further calls are no-ops.
func (p *Port) Release() {
	if p.state == portActive {
		p.transport.Close(p.number)
	}

	p.state = portReleased
}
