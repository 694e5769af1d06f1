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

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/portsim/pkg/logger"
	"github.com/carverauto/portsim/pkg/models"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "portscan.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadAndValidateFromFile(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "")

	path := writeConfig(t, `{
		"ports": [443, 80],
		"seed": 42,
		"logging": {"level": "debug", "output": "stdout"},
		"metrics": {"enabled": true, "endpoint": "otel:4317", "batch_timeout": "2s"}
	}`)

	var cfg models.ScanConfig

	require.NoError(t, NewConfig(logger.NewTestLogger()).LoadAndValidate(context.Background(), path, &cfg))

	assert.Equal(t, []int{443, 80}, cfg.Ports)
	assert.Equal(t, uint64(42), cfg.Seed)
	require.NotNil(t, cfg.Logging)
	assert.Equal(t, "debug", cfg.Logging.Level)
	require.NotNil(t, cfg.Metrics)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, logger.Duration(2*time.Second), cfg.Metrics.BatchTimeout)
}

func TestLoadAndValidateWithoutPathUsesDefaults(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "file")

	var cfg models.ScanConfig

	require.NoError(t, NewConfig(nil).LoadAndValidate(context.Background(), "", &cfg))

	assert.Equal(t, models.DefaultServerPorts, cfg.Ports)
	assert.NotNil(t, cfg.Logging)
	assert.Nil(t, cfg.Metrics)
}

func TestLoadAndValidateFileErrors(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "")

	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr error
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.json") },
			wantErr: os.ErrNotExist,
		},
		{
			name: "malformed json",
			path: func(t *testing.T) string { return writeConfig(t, `{"ports": [80,`) },
		},
		{
			name: "unknown field",
			path: func(t *testing.T) string { return writeConfig(t, `{"port": [80]}`) },
		},
		{
			name:    "port out of range",
			path:    func(t *testing.T) string { return writeConfig(t, `{"ports": [0, 80]}`) },
			wantErr: models.ErrInvalidPort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg models.ScanConfig

			err := NewConfig(logger.NewTestLogger()).LoadAndValidate(context.Background(), tt.path(t), &cfg)
			require.Error(t, err)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoadAndValidateInvalidSource(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "kv")

	var cfg models.ScanConfig

	err := NewConfig(logger.NewTestLogger()).LoadAndValidate(context.Background(), "", &cfg)
	assert.ErrorIs(t, err, errInvalidConfigSource)
}

func TestLoadAndValidateFromEnv(t *testing.T) {
	t.Setenv("CONFIG_SOURCE", "env")
	t.Setenv("CONFIG_ENV_PREFIX", "")
	t.Setenv("PORTSIM_PORTS", "22, 80")
	t.Setenv("PORTSIM_SEED", "7")
	t.Setenv("PORTSIM_METRICS_ENABLED", "true")
	t.Setenv("PORTSIM_METRICS_BATCH_TIMEOUT", "500ms")
	t.Setenv("PORTSIM_METRICS_HEADERS", `{"x-tenant":"lab"}`)

	var cfg models.ScanConfig

	require.NoError(t, NewConfig(logger.NewTestLogger()).LoadAndValidate(context.Background(), "ignored.json", &cfg))

	assert.Equal(t, []int{22, 80}, cfg.Ports)
	assert.Equal(t, uint64(7), cfg.Seed)
	require.NotNil(t, cfg.Metrics)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, logger.Duration(500*time.Millisecond), cfg.Metrics.BatchTimeout)
	assert.Equal(t, map[string]string{"x-tenant": "lab"}, cfg.Metrics.Headers)
	assert.Nil(t, cfg.Metrics.TLS, "untouched nested sections stay nil")
	assert.NotNil(t, cfg.Logging, "defaults fill sections with no variables")
}

func TestEnvLoaderCustomPrefixAndJSON(t *testing.T) {
	t.Setenv("SCAN_CONFIG_JSON", `{"ports":[161],"seed":3}`)
	t.Setenv("SCAN_PORTS", "21")

	var cfg models.ScanConfig

	require.NoError(t, NewEnvConfigLoader(logger.NewTestLogger(), "SCAN_").Load(context.Background(), "", &cfg))

	assert.Equal(t, []int{161}, cfg.Ports, "CONFIG_JSON takes precedence")
	assert.Equal(t, uint64(3), cfg.Seed)
}

func TestEnvLoaderRejectsInvalidValues(t *testing.T) {
	t.Setenv("TEST_PORTS", "80,http")

	var cfg models.ScanConfig

	err := NewEnvConfigLoader(logger.NewTestLogger(), "TEST_").Load(context.Background(), "", &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TEST_PORTS")
}

func TestEnvLoaderDestinationChecks(t *testing.T) {
	loader := NewEnvConfigLoader(logger.NewTestLogger(), "NONE_")

	var cfg models.ScanConfig

	assert.ErrorIs(t, loader.Load(context.Background(), "", cfg), ErrDstMustBeNonNilPointer)

	var n int

	assert.ErrorIs(t, loader.Load(context.Background(), "", &n), ErrDstMustBePointerToStruct)
}
