// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces variables that take precedence over their bare
// counterparts, so LABRAT_ADAPTER_BASE_URL beats ADAPTER_BASE_URL.
const EnvPrefix = "LABRAT_"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Bare names are read first and then any [EnvPrefix]ed names;
// unset variables leave the field untouched, so the prefixed pass only
// overrides what it actually sets.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("error getting %s env configs: %w", EnvPrefix, err)
	}

	return nil
}
