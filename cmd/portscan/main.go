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

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"

	"go.opentelemetry.io/otel"

	"github.com/carverauto/portsim/pkg/config"
	"github.com/carverauto/portsim/pkg/lifecycle"
	"github.com/carverauto/portsim/pkg/logger"
	"github.com/carverauto/portsim/pkg/metrics"
	"github.com/carverauto/portsim/pkg/models"
	"github.com/carverauto/portsim/pkg/scan"
	"github.com/carverauto/portsim/pkg/simnet"
	"github.com/carverauto/portsim/pkg/version"
)

const serviceName = "portsim"

var (
	errFailedToLoadConfig = errors.New("failed to load config")
	errResourceLeak       = errors.New("scan leaked resources")
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	configPath := flag.String("config", "", "Path to portscan config file (defaults apply when empty)")
	seed := flag.Uint64("seed", 0, "Random seed, overrides the config seed when non-zero")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetFullVersion())

		return nil
	}

	ctx := context.Background()

	var cfg models.ScanConfig

	if err := config.NewConfig(nil).LoadAndValidate(ctx, *configPath, &cfg); err != nil {
		return fmt.Errorf("%w: %w", errFailedToLoadConfig, err)
	}

	if *seed != 0 {
		cfg.Seed = *seed
	}

	scanLogger, err := lifecycle.CreateComponentLogger(ctx, "portscan", cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	defer func() {
		if shutdownErr := lifecycle.ShutdownLogger(); shutdownErr != nil {
			scanLogger.Error().Err(shutdownErr).Msg("Error shutting down logger")
		}
	}()

	metricsOTel := cfg.Metrics
	if metricsOTel == nil {
		defaults := logger.DefaultMetricsOTelConfig()
		metricsOTel = &defaults
	}

	if _, metricsErr := logger.InitializeMetrics(ctx, logger.MetricsConfig{
		ServiceName: serviceName,
		OTel:        metricsOTel,
	}); metricsErr != nil && !errors.Is(metricsErr, logger.ErrOTelMetricsDisabled) {
		return metricsErr
	}

	tracingOTel := cfg.Tracing
	if tracingOTel == nil {
		defaults := logger.DefaultTracesOTelConfig()
		tracingOTel = &defaults
	}

	tp, err := logger.InitializeTracing(ctx, logger.TracingConfig{
		ServiceName: serviceName,
		OTel:        tracingOTel,
	})
	if err != nil {
		return err
	}

	defer func() {
		if shutdownErr := tp.Shutdown(context.Background()); shutdownErr != nil {
			scanLogger.Error().Err(shutdownErr).Msg("Error shutting down tracer provider")
		}
	}()

	recorder, err := metrics.NewRecorder(otel.Meter(metrics.MeterName))
	if err != nil {
		return err
	}

	stats := models.NewStats()
	rng := simnet.NewRandom(cfg.Seed)
	engine := scan.NewEngine(simnet.NewTransport(rng, stats, recorder), scanLogger)

	active := engine.Scan(cfg.Ports)
	snapshot := stats.Snapshot()

	scanLogger.Info().
		Uint64("seed", rng.Seed()).
		Ints("active_ports", active.SortedPorts()).
		Interface("stats", snapshot).
		Msg("Port scan finished")

	if err := snapshot.Verify(); err != nil {
		return fmt.Errorf("%w: %w", errResourceLeak, err)
	}

	return nil
}
