// SPDX-License-Identifier: Apache-2.0

package service

import "errors"

// Error taxonomy of the service layer. Validation errors are produced
// locally and never touch the network; authorization errors come from the
// server rejecting the session or the master key; unavailability covers
// transport and server-side failures. Integrity failures surface as
// integrity.ErrIntegrityCheckFailed and are never folded into any of
// these.
var (
	// ErrValidation marks input rejected before any request was sent.
	ErrValidation = errors.New("validation failed")

	// ErrAuthorization marks a request the server refused for lack of a
	// valid session or master key.
	ErrAuthorization = errors.New("not authorized")

	// ErrUnavailable marks a network failure or a server-side error; the
	// operation may succeed on retry.
	ErrUnavailable = errors.New("server unavailable")

	// ErrNoChallenge is returned by verify calls when no login challenge
	// is active.
	ErrNoChallenge = errors.New("no active login challenge")

	// ErrNoPendingOperation is returned by Confirm when nothing was
	// scheduled, or when the scheduled operation already ran.
	ErrNoPendingOperation = errors.New("no pending operation")
)