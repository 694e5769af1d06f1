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
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Duration
		wantErr  bool
	}{
		{name: "string duration", input: `"5s"`, expected: Duration(5 * time.Second)},
		{name: "numeric nanoseconds", input: `5000000000`, expected: Duration(5 * time.Second)},
		{name: "compound string", input: `"1h30m45s"`, expected: Duration(time.Hour + 30*time.Minute + 45*time.Second)},
		{name: "invalid string", input: `"invalid"`, wantErr: true},
		{name: "invalid type", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration

			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.ErrorIs(t, err, errInvalidDuration)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, d)
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(Duration(1500 * time.Millisecond))
	require.NoError(t, err)
	assert.JSONEq(t, `"1.5s"`, string(out))
}

func TestLoggingConfig_JSONUnmarshaling(t *testing.T) {
	configJSON := `{
		"level": "debug",
		"output": "stderr",
		"otel": {
			"enabled": true,
			"endpoint": "localhost:4317",
			"service_name": "portscan",
			"batch_timeout": "10s",
			"insecure": true,
			"headers": {"x-api-key": "test-key"}
		}
	}`

	var config Config

	require.NoError(t, json.Unmarshal([]byte(configJSON), &config))

	assert.Equal(t, "debug", config.Level)
	assert.Equal(t, "stderr", config.Output)
	assert.True(t, config.OTel.Enabled)
	assert.Equal(t, "localhost:4317", config.OTel.Endpoint)
	assert.Equal(t, "portscan", config.OTel.ServiceName)
	assert.Equal(t, Duration(10*time.Second), config.OTel.BatchTimeout)
	assert.True(t, config.OTel.Insecure)
	assert.Equal(t, "test-key", config.OTel.Headers["x-api-key"])
}
