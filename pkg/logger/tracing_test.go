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

package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestInitializeTracingWithoutExporter(t *testing.T) {
	previous := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	tp, err := InitializeTracing(context.Background(), TracingConfig{
		OTel: &OTelConfig{Enabled: false, Endpoint: "collector:4317"},
	})
	require.NoError(t, err)

	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := otel.Tracer("portsim.test").Start(context.Background(), "check")
	defer span.End()

	assert.True(t, span.SpanContext().IsValid(), "global provider should create real spans")
}

func TestDefaultTracesOTelConfigFromEnv(t *testing.T) {
	t.Setenv("OTEL_TRACES_ENABLED", "true")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "tempo:4317")

	cfg := DefaultTracesOTelConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, "tempo:4317", cfg.Endpoint)
	assert.Equal(t, defaultServiceName, cfg.ServiceName)
}
