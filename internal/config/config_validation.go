// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var structValidator = validator.New()

// validate checks the struct tags of every config group and wraps the first
// failure with the sentinel of its group.
func (cfg *ClientConfig) validate() error {
	if err := structValidator.Struct(cfg.Adapter); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAdapterConfigs, err)
	}

	if err := structValidator.Struct(cfg.Session); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSessionConfigs, err)
	}

	if err := structValidator.Struct(cfg.Log); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}
