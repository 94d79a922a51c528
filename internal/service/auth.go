// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/mail"
	"regexp"
	"sync"

	"github.com/bitsofme/bitsofme-client/internal/adapter"
	"github.com/bitsofme/bitsofme-client/internal/logger"
	"github.com/bitsofme/bitsofme-client/internal/session"
	"github.com/bitsofme/bitsofme-client/models"
)

// AuthState is the phase of the login state machine.
type AuthState int

const (
	// StateIdle: no login in progress.
	StateIdle AuthState = iota
	// StateChallengeRequested: a start call is in flight.
	StateChallengeRequested
	// StateChallengeIssued: the server issued a challenge; waiting for the
	// user's code or signature.
	StateChallengeIssued
	// StateVerificationSubmitted: a verify call is in flight.
	StateVerificationSubmitted
	// StateAuthenticated: the session is established.
	StateAuthenticated
	// StateFailed: the last attempt failed; a new start call may retry.
	StateFailed
)

var otpCodePattern = regexp.MustCompile(`^\d{6}$`)

// Authenticator drives both login flows against the server: the emailed
// one-time code and the out-of-band signature challenge. It owns the
// challenge state between the start and verify calls and installs the
// session credential on success.
//
// All methods are safe for concurrent use; at most one login attempt is
// tracked at a time, and a new start call replaces any previous challenge.
type Authenticator struct {
	gateway adapter.ServerGateway
	creds   *session.Credentials
	store   *session.FileStore
	logger  *logger.Logger

	mu        sync.Mutex
	state     AuthState
	challenge *models.AuthChallenge
}

// NewAuthenticator wires an authenticator to the gateway and credential
// store. store may be nil to disable credential persistence.
func NewAuthenticator(gateway adapter.ServerGateway, creds *session.Credentials, store *session.FileStore, log *logger.Logger) *Authenticator {
	return &Authenticator{
		gateway: gateway,
		creds:   creds,
		store:   store,
		logger:  log,
	}
}

// State reports the current phase of the login state machine.
func (a *Authenticator) State() AuthState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// StartOTP begins the one-time-code flow for email. The server mails a
// 6-digit code; the challenge is held in memory until VerifyOTP consumes
// it. Failures produce a generic error that does not reveal whether the
// address is registered.
func (a *Authenticator) StartOTP(ctx context.Context, email string) error {
	return a.start(ctx, email, func(ctx context.Context, req models.StartLoginRequest) (models.ChallengeResponse, error) {
		return a.gateway.StartOTP(ctx, req)
	})
}

// StartSignature begins the signature flow for email and returns the nonce
// the user must sign out-of-band with their private key.
func (a *Authenticator) StartSignature(ctx context.Context, email string) (string, error) {
	err := a.start(ctx, email, func(ctx context.Context, req models.StartLoginRequest) (models.ChallengeResponse, error) {
		return a.gateway.StartSignature(ctx, req)
	})
	if err != nil {
		return "", err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	return a.challenge.Nonce, nil
}

func (a *Authenticator) start(ctx context.Context, email string, call func(context.Context, models.StartLoginRequest) (models.ChallengeResponse, error)) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: invalid email address", ErrValidation)
	}

	a.mu.Lock()
	a.state = StateChallengeRequested
	a.challenge = nil
	a.mu.Unlock()

	resp, err := call(ctx, models.StartLoginRequest{Email: email})

	a.mu.Lock()
	defer a.mu.Unlock()

	if err != nil {
		a.state = StateFailed
		a.logger.Warn().Err(err).Msg("login start failed")
		// One flat error for every cause: neither the sentinel nor the
		// message may reveal whether the address is registered. The real
		// cause goes to the log only.
		return fmt.Errorf("%w: could not start login, try again", ErrUnavailable)
	}

	a.challenge = &models.AuthChallenge{
		ChallengeID: resp.ChallengeID,
		Nonce:       resp.Nonce,
		Email:       email,
	}
	a.state = StateChallengeIssued
	return nil
}

// VerifyOTP completes the OTP flow with the emailed code. A code that is
// not exactly six digits fails locally without a request, leaving the
// challenge intact for another try.
func (a *Authenticator) VerifyOTP(ctx context.Context, code string) error {
	if !otpCodePattern.MatchString(code) {
		return fmt.Errorf("%w: code must be 6 digits", ErrValidation)
	}

	challenge, err := a.takeChallenge()
	if err != nil {
		return err
	}

	resp, err := a.gateway.VerifyOTP(ctx, models.VerifyCodeRequest{
		Email:       challenge.Email,
		ChallengeID: challenge.ChallengeID,
		Code:        code,
	})
	return a.finish(challenge, resp, err)
}

// VerifySignature completes the signature flow with the raw signature file
// bytes. The bytes are base64-encoded for transport; they are binary and
// must never be text-decoded.
func (a *Authenticator) VerifySignature(ctx context.Context, signature []byte) error {
	if len(signature) == 0 {
		return fmt.Errorf("%w: empty signature", ErrValidation)
	}

	challenge, err := a.takeChallenge()
	if err != nil {
		return err
	}

	resp, err := a.gateway.VerifySignature(ctx, models.VerifySignatureRequest{
		Email:       challenge.Email,
		ChallengeID: challenge.ChallengeID,
		Signature:   base64.StdEncoding.EncodeToString(signature),
	})
	return a.finish(challenge, resp, err)
}

// takeChallenge moves the machine into VerificationSubmitted, keeping the
// challenge so a transport failure can be retried from StartOTP again.
func (a *Authenticator) takeChallenge() (models.AuthChallenge, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.challenge == nil {
		return models.AuthChallenge{}, ErrNoChallenge
	}
	a.state = StateVerificationSubmitted
	return *a.challenge, nil
}

func (a *Authenticator) finish(challenge models.AuthChallenge, resp models.SessionResponse, err error) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err != nil {
		a.state = StateFailed
		a.challenge = nil
		a.logger.Warn().Err(err).Msg("login verification failed")
		return fmt.Errorf("%w: verification failed, try again", mapGatewayError(err))
	}

	a.creds.Set(challenge.Email, resp.SessionNonce)
	a.persistCredential()

	a.challenge = nil
	a.state = StateAuthenticated
	a.logger.Info().Msg("session established")
	return nil
}

func (a *Authenticator) persistCredential() {
	if a.store == nil {
		return
	}
	secret, ok := a.creds.Secret()
	if !ok {
		return
	}
	if err := a.store.Save(secret); err != nil {
		a.logger.Warn().Err(err).Msg("could not persist session credential")
	}
}

// Probe checks whether the server still honours the current session
// cookies. It reports the result and has no other effect: a failed probe
// clears nothing, so a stale credential can still be retried or logged
// out explicitly.
func (a *Authenticator) Probe(ctx context.Context) bool {
	if err := a.gateway.Me(ctx); err != nil {
		a.logger.Debug().Err(err).Msg("session probe failed")
		return false
	}

	a.mu.Lock()
	a.state = StateAuthenticated
	a.mu.Unlock()
	return true
}

// Logout tears the session down on the server and clears the credential
// locally. This is the only path that clears the credential store.
func (a *Authenticator) Logout(ctx context.Context) error {
	err := a.gateway.Logout(ctx)

	a.creds.Clear()
	if a.store != nil {
		if serr := a.store.Clear(); serr != nil {
			a.logger.Warn().Err(serr).Msg("could not clear persisted credential")
		}
	}

	a.mu.Lock()
	a.state = StateIdle
	a.challenge = nil
	a.mu.Unlock()

	if err != nil {
		return mapGatewayError(err)
	}
	return nil
}
