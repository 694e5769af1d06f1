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

// Package scan probes candidate server ports over a simnet.Transport and
// reports which of them completed a request/response exchange.
package scan

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/carverauto/portsim/pkg/logger"
	"github.com/carverauto/portsim/pkg/models"
	"github.com/carverauto/portsim/pkg/simnet"
)

const TracerName = "portsim.scan"

type Engine struct {
	transport simnet.Transport
	logger    logger.Logger
	tracer    trace.Tracer
}

// NewEngine builds an engine that traces through the global TracerProvider.
func NewEngine(transport simnet.Transport, log logger.Logger) *Engine {
	return &Engine{
		transport: transport,
		logger:    log,
		tracer:    otel.Tracer(TracerName),
	}
}

// Scan probes each distinct port in serverPorts in ascending order and
// returns the ports that completed a full exchange. Every handle and message
// acquired for a port is released before the next port is probed.
func (e *Engine) Scan(serverPorts []int) models.PortSet {
	scanID := uuid.New().String()
	candidates := models.NormalizePorts(serverPorts)
	active := models.NewPortSet()

	ctx, span := e.tracer.Start(context.Background(), "Scan", trace.WithAttributes(
		attribute.String("scan.id", scanID),
		attribute.Int("scan.candidates", len(candidates)),
	))
	defer span.End()

	outcomes := make(map[string]int)

	for _, sport := range candidates {
		outcome := e.probe(ctx, sport)
		outcomes[outcome.String()]++

		e.logger.Debug().
			Str("scan_id", scanID).
			Int("port", sport).
			Str("outcome", outcome.String()).
			Msg("Probed port")

		if outcome == OutcomeActive {
			active.Add(sport)
		}
	}

	span.SetAttributes(attribute.Int("scan.active", active.Len()))

	e.logger.Info().
		Str("scan_id", scanID).
		Int("candidates", len(candidates)).
		Ints("active_ports", active.SortedPorts()).
		Interface("outcomes", outcomes).
		Msg("Scan completed")

	return active
}

// Probe runs the exchange against a single server port. The server and client
// handles are released, client first, before Probe returns.
func (e *Engine) Probe(sport int) Outcome {
	return e.probe(context.Background(), sport)
}

func (e *Engine) probe(ctx context.Context, sport int) Outcome {
	_, span := e.tracer.Start(ctx, "Probe", trace.WithAttributes(attribute.Int("scan.port", sport)))
	defer span.End()

	outcome := e.exchange(sport)
	span.SetAttributes(attribute.String("scan.outcome", outcome.String()))

	return outcome
}

func (e *Engine) exchange(sport int) Outcome {
	cport := e.transport.ClientPort()

	server := NewPort(sport, e.transport)
	defer server.Release()

	client := NewPort(cport, e.transport)
	defer client.Release()

	if !client.Bind() {
		return OutcomeBindFailed
	}

	if !server.Connect() {
		return OutcomeConnectFailed
	}

	req, err := e.transport.NewMessage()
	if err != nil {
		e.logger.Debug().Err(err).Int("port", sport).Msg("Failed to allocate request")

		return OutcomeAllocationFailed
	}
	defer req.Release()

	if !e.transport.Send(req) {
		return OutcomeSendFailed
	}

	resp, err := e.transport.NewMessage()
	if err != nil {
		e.logger.Debug().Err(err).Int("port", sport).Msg("Failed to allocate response, receiving without one")

		resp = nil
	}
	defer resp.Release()

	if !e.transport.Receive(resp) {
		return OutcomeReceiveFailed
	}

	// A first response is confirmed with a second exchange.
	if !e.transport.Send(req) {
		return OutcomeRetrySendFailed
	}

	if !e.transport.Receive(resp) {
		return OutcomeRetryReceiveFailed
	}

	return OutcomeActive
}
