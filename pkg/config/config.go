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

// Package config loads JSON-shaped configuration from a file or from
// environment variables, then applies defaults and validates it.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/carverauto/portsim/pkg/logger"
)

var (
	errInvalidConfigSource = errors.New("invalid CONFIG_SOURCE value")
)

const (
	configSourceFile = "file"
	configSourceEnv  = "env"

	// DefaultEnvPrefix is used when CONFIG_SOURCE=env and CONFIG_ENV_PREFIX is unset.
	DefaultEnvPrefix = "PORTSIM_"
)

// Config holds the configuration loading dependencies.
type Config struct {
	defaultLoader ConfigLoader
	logger        logger.Logger
}

// NewConfig initializes a new Config with a file loader. A nil logger is
// replaced by a warn-level stderr logger, since the component logger is only
// built after configuration is loaded.
func NewConfig(log logger.Logger) *Config {
	if log == nil {
		log = logger.Wrap(zerolog.New(os.Stderr).
			Level(zerolog.WarnLevel).
			With().
			Timestamp().
			Logger())
	}

	return &Config{
		defaultLoader: NewFileConfigLoader(log),
		logger:        log,
	}
}

// ValidateConfig validates a configuration if it implements Validator.
func ValidateConfig(cfg interface{}) error {
	v, ok := cfg.(Validator)
	if !ok {
		return nil
	}

	return v.Validate()
}

// LoadAndValidate loads cfg from the source named by CONFIG_SOURCE, fills
// defaults and validates the result. With the file source and an empty path
// nothing is loaded and cfg keeps its defaults.
func (c *Config) LoadAndValidate(ctx context.Context, path string, cfg interface{}) error {
	source, loader, err := c.loaderFromEnv()
	if err != nil {
		return err
	}

	if source == configSourceFile && path == "" {
		c.logger.Debug().Msg("No config path given, using defaults")
	} else if err := loader.Load(ctx, path, cfg); err != nil {
		return err
	}

	ApplyDefaults(cfg)

	return ValidateConfig(cfg)
}

// ApplyDefaults fills defaults if cfg implements Defaulter.
func ApplyDefaults(cfg interface{}) {
	if d, ok := cfg.(Defaulter); ok {
		d.ApplyDefaults()
	}
}

func (c *Config) loaderFromEnv() (string, ConfigLoader, error) {
	source := strings.ToLower(os.Getenv("CONFIG_SOURCE"))

	switch source {
	case configSourceEnv:
		prefix := os.Getenv("CONFIG_ENV_PREFIX")
		if prefix == "" {
			prefix = DefaultEnvPrefix
		}

		return source, NewEnvConfigLoader(c.logger, prefix), nil
	case configSourceFile, "":
		return configSourceFile, c.defaultLoader, nil
	default:
		return "", nil, fmt.Errorf("%w: %s (expected '%s' or '%s')",
			errInvalidConfigSource, source, configSourceFile, configSourceEnv)
	}
}
