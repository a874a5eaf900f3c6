// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package config

import (
	"os"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"grimm.is/wiretop/internal/errors"
)

// Load reads an HCL configuration file, applies defaults, and validates.
// A missing path returns the validated defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		cfg := DefaultConfig()
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.KindNotFound, "config file %s", path)
		}
		return nil, errors.Wrapf(err, errors.KindInternal, "read config %s", path)
	}

	var cfg Config
	if err := hclsimple.Decode(path, data, nil, &cfg); err != nil {
		return nil, errors.Wrapf(err, errors.KindValidation, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
