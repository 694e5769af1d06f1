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

// Message is a simulated network message. It carries no payload; only its
// lifetime is observed. Every message must be released exactly once.
type Message struct {
	observer Observer
	released bool
}

// NewMessage creates a message and reports it to observer, which may be nil.
func NewMessage(observer Observer) *Message {
	if observer != nil {
		observer.MessageCreated()
	}

	return &Message{observer: observer}
}

// Release ends the message's lifetime. It is safe to call on a nil message
// and more than once; only the first call is reported.
func (m *Message) Release() {
	if m == nil || m.released {
		return
	}

	m.released = true

	if m.observer != nil {
		m.observer.MessageReleased()
	}
}

func (m *Message) Released() bool {
	return m != nil && m.released
}
