// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment (caarlos0/env). Unset
// variables leave fields at their zero value so that lower-priority layers
// survive the merge; a value that cannot be converted (for example
// SERVER_REQUEST_TIMEOUT=abc) is reported as a wrapped error.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
