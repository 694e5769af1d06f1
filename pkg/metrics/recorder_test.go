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

package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/carverauto/portsim/pkg/simnet"
)

func collectSums(t *testing.T, reader *sdkmetric.ManualReader) map[string]int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	sums := make(map[string]int64)

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "unexpected aggregation for %s", m.Name)

			for _, dp := range sum.DataPoints {
				sums[m.Name] += dp.Value
			}
		}
	}

	return sums
}

func TestRecorderCountsTransportActivity(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	rec, err := NewRecorder(provider.Meter(MeterName))
	require.NoError(t, err)

	// bind, connect, then a message that is never released
	tr := simnet.NewTransport(simnet.NewScriptedRandom(true, true), rec)
	require.True(t, tr.Bind(40000))
	require.True(t, tr.Connect(80))
	tr.Close(40000)
	tr.Close(80)

	msg, err := tr.NewMessage()
	require.NoError(t, err)

	kept, err := tr.NewMessage()
	require.NoError(t, err)

	msg.Release()

	sums := collectSums(t, reader)

	assert.Equal(t, int64(1), sums[metricPortsBound])
	assert.Equal(t, int64(1), sums[metricPortsConnected])
	assert.Equal(t, int64(2), sums[metricPortsClosed])
	assert.Equal(t, int64(1), sums[metricLiveMessages])

	kept.Release()

	assert.Equal(t, int64(0), collectSums(t, reader)[metricLiveMessages])
}

func TestRecorderFailedOperationsAreNotCounted(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	rec, err := NewRecorder(provider.Meter(MeterName))
	require.NoError(t, err)

	tr := simnet.NewTransport(simnet.NewScriptedRandom(false, false), rec)
	require.False(t, tr.Bind(40000))
	require.False(t, tr.Connect(80))

	sums := collectSums(t, reader)

	assert.Zero(t, sums[metricPortsBound])
	assert.Zero(t, sums[metricPortsConnected])
}
