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

// Outcome records where a probe of a single server port stopped.
type Outcome int

const (
	OutcomeActive Outcome = iota
	OutcomeBindFailed
	OutcomeConnectFailed
	OutcomeAllocationFailed
	OutcomeSendFailed
	OutcomeReceiveFailed
	OutcomeRetrySendFailed
	OutcomeRetryReceiveFailed
)

var outcomeNames = [...]string{
	OutcomeActive:             "active",
	OutcomeBindFailed:         "bind_failed",
	OutcomeConnectFailed:      "connect_failed",
	OutcomeAllocationFailed:   "allocation_failed",
	OutcomeSendFailed:         "send_failed",
	OutcomeReceiveFailed:      "receive_failed",
	OutcomeRetrySendFailed:    "retry_send_failed",
	OutcomeRetryReceiveFailed: "retry_receive_failed",
}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "unknown"
	}

	return outcomeNames[o]
}
