// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. The mapping is driven
// entirely by the `env` and `envPrefix` tags on [StructuredConfig], so the
// variable names live next to the fields they feed.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse environment configs: %w", err)
	}

	return nil
}
