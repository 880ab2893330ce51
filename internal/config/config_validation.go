// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] can be used at
// startup.
//
// A missing Sanity project id is deliberately accepted: content requests
// then degrade to the static fallback instead of failing the whole process.
func (cfg *StructuredConfig) validate() error {
	if cfg.Sanity.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout %s", ErrInvalidSanityConfigs, cfg.Sanity.RequestTimeout)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout %s", ErrInvalidServerConfigs, cfg.Server.RequestTimeout)
	}

	return nil
}
