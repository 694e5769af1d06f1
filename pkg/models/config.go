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

package models

import (
	"errors"
	"fmt"

	"github.com/carverauto/portsim/pkg/logger"
)

var (
	ErrInvalidPort = errors.New("port out of range")
)

// ScanConfig configures the portscan binary.
type ScanConfig struct {
	Ports   []int              `json:"ports,omitempty"`
	Seed    uint64             `json:"seed,omitempty"`
	Logging *logger.Config     `json:"logging,omitempty"`
	Metrics *logger.OTelConfig `json:"metrics,omitempty"`
	Tracing *logger.OTelConfig `json:"tracing,omitempty"`
}

// ApplyDefaults fills unset fields.
func (c *ScanConfig) ApplyDefaults() {
	if len(c.Ports) == 0 {
		c.Ports = append([]int(nil), DefaultServerPorts...)
	}

	if c.Logging == nil {
		c.Logging = logger.DefaultConfig()
	}
}

func (c *ScanConfig) Validate() error {
	for _, p := range c.Ports {
		if p < MinPort || p > MaxPort {
			return fmt.Errorf("%w: %d", ErrInvalidPort, p)
		}
	}

	return nil
}
