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

// Observers fans every notification out to each member in order.
type Observers []Observer

var _ Observer = Observers(nil)

func (o Observers) PortBound(port int) {
	for _, obs := range o {
		obs.PortBound(port)
	}
}

func (o Observers) PortConnected(port int) {
	for _, obs := range o {
		obs.PortConnected(port)
	}
}

func (o Observers) PortClosed(port int) {
	for _, obs := range o {
		obs.PortClosed(port)
	}
}

func (o Observers) MessageCreated() {
	for _, obs := range o {
		obs.MessageCreated()
	}
}

func (o Observers) MessageReleased() {
	for _, obs := range o {
		obs.MessageReleased()
	}
}
