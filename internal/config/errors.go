// SPDX-License-Identifier: Apache-2.0

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing server address or non-positive request
	// timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)