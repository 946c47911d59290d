// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads against the field rules of the
// site's entities before they reach the store.
//
// A Validator accepts any supported model and an optional list of field
// names. When fields are given only those fields are checked, which is how
// partial updates and single-field changes (e.g. message status) are
// validated without re-checking the whole record.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
