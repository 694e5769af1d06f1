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

// Package metrics exports simulated transport activity as OpenTelemetry
// instruments.
package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/metric"

	"github.com/carverauto/portsim/pkg/simnet"
)

const (
	MeterName = "portsim.simnet"

	metricPortsBound     = "portsim_ports_bound_total"
	metricPortsConnected = "portsim_ports_connected_total"
	metricPortsClosed    = "portsim_ports_closed_total"
	metricLiveMessages   = "portsim_messages_live"
)

// Recorder is a simnet.Observer that mirrors the transport counters into
// OTel instruments obtained from a single meter.
type Recorder struct {
	bound        metric.Int64Counter
	connected    metric.Int64Counter
	closed       metric.Int64Counter
	liveMessages metric.Int64UpDownCounter
}

var _ simnet.Observer = (*Recorder)(nil)

func NewRecorder(meter metric.Meter) (*Recorder, error) {
	bound, err := meter.Int64Counter(
		metricPortsBound,
		metric.WithDescription("Client ports successfully bound"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", metricPortsBound, err)
	}

	connected, err := meter.Int64Counter(
		metricPortsConnected,
		metric.WithDescription("Server ports successfully connected"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", metricPortsConnected, err)
	}

	closed, err := meter.Int64Counter(
		metricPortsClosed,
		metric.WithDescription("Ports closed"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", metricPortsClosed, err)
	}

	live, err := meter.Int64UpDownCounter(
		metricLiveMessages,
		metric.WithDescription("Messages created and not yet released"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", metricLiveMessages, err)
	}

	return &Recorder{
		bound:        bound,
		connected:    connected,
		closed:       closed,
		liveMessages: live,
	}, nil
}

func (r *Recorder) PortBound(_ int) {
	r.bound.Add(context.Background(), 1)
}

func (r *Recorder) PortConnected(_ int) {
	r.connected.Add(context.Background(), 1)
}

func (r *Recorder) PortClosed(_ int) {
	r.closed.Add(context.Background(), 1)
}

func (r *Recorder) MessageCreated() {
	r.liveMessages.Add(context.Background(), 1)
}

func (r *Recorder) MessageReleased() {
	r.liveMessages.Add(context.Background(), -1)
}
