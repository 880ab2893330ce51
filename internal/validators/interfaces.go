// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks configuration values before they are used to
// build outbound clients.
//
// A Validator accepts a value and an optional list of field names; when
// fields are given only those fields are checked, otherwise every known
// field of the value is.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
