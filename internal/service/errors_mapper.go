// SPDX-License-Identifier: Apache-2.0

package service

import (
	"errors"
	"fmt"

	"github.com/bitsofme/bitsofme-client/internal/adapter"
)

// mapGatewayError folds transport-level sentinels into the service error
// taxonomy. The original error text is preserved for logs; callers branch
// with errors.Is on the taxonomy only.
func mapGatewayError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %v", ErrAuthorization, err)
	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrNotFound),
		errors.Is(err, adapter.ErrConflict):
		return fmt.Errorf("%w: %v", ErrValidation, err)
	default:
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
}