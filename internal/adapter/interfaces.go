// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the transport layer for talking to the
// BitsOfMe server.
//
// The primary abstraction is [ServerGateway], which decouples the service
// layer from the HTTP protocol. The resty implementation
// ([NewHTTPServerGateway]) carries session cookies on every call, attaches
// a request ID for log correlation, and transparently refreshes an expired
// session once before retrying the failed request.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/bitsofme/bitsofme-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_gateway_mock.go -package=mock

// ServerGateway defines transport-agnostic communication with the
// BitsOfMe server. Envelope-typed parameters and results travel opaque
// through the gateway: sealing and verification belong to the service
// layer, which owns the session credential.
type ServerGateway interface {
	// StartOTP begins the one-time-code login flow for an email address.
	// The server mails a 6-digit code and returns the challenge ID that a
	// later VerifyOTP call must reference.
	StartOTP(ctx context.Context, req models.StartLoginRequest) (models.ChallengeResponse, error)

	// VerifyOTP completes the OTP flow. On success the server sets the
	// session cookies and returns the session nonce used to derive the
	// integrity secret.
	VerifyOTP(ctx context.Context, req models.VerifyCodeRequest) (models.SessionResponse, error)

	// StartSignature begins the signature login flow. The response carries
	// both the challenge ID and the nonce the caller must sign out-of-band
	// with their private key.
	StartSignature(ctx context.Context, req models.StartLoginRequest) (models.ChallengeResponse, error)

	// VerifySignature completes the signature flow with the base64-encoded
	// raw signature bytes.
	VerifySignature(ctx context.Context, req models.VerifySignatureRequest) (models.SessionResponse, error)

	// Me probes the current session. A nil return means the session
	// cookies are valid; the probe has no other effect.
	Me(ctx context.Context) error

	// Logout tears the server-side session down.
	Logout(ctx context.Context) error

	// WalletRead posts the sealed read request and returns the wallet
	// envelope for the caller to verify.
	WalletRead(ctx context.Context, env models.Envelope) (models.Envelope, error)

	// WalletUpdate puts the sealed update request and returns the server's
	// sealed acknowledgement.
	WalletUpdate(ctx context.Context, env models.Envelope) (models.Envelope, error)

	// PublicProfile fetches another user's public profile envelope.
	PublicProfile(ctx context.Context, username string) (models.Envelope, error)

	// PublicWallet fetches the public (field names only) view of another
	// user's wallet.
	PublicWallet(ctx context.Context, username string) (models.Envelope, error)

	// RequestVerification posts a sealed disclosure request.
	RequestVerification(ctx context.Context, env models.Envelope) (models.Envelope, error)

	// GetVerification unlocks one verification's disclosed value with the
	// requester's master key.
	GetVerification(ctx context.Context, verificationID string, req models.VerificationDetailRequest) (models.VerificationDetailResponse, error)

	// GetAllVerifications lists every verification involving the caller.
	GetAllVerifications(ctx context.Context) (models.VerificationListResponse, error)

	// PendingNotifications fetches the sealed list of pending
	// notifications.
	PendingNotifications(ctx context.Context) (models.Envelope, error)

	// RespondNotification posts a sealed accept/reject answer.
	RespondNotification(ctx context.Context, env models.Envelope) (models.Envelope, error)

	// RequestCertificate posts a sealed certificate-addition offer to a
	// wallet owner.
	RequestCertificate(ctx context.Context, env models.Envelope) (models.Envelope, error)

	// RegisterUser creates a regular account.
	RegisterUser(ctx context.Context, reg models.UserRegistration) error

	// RegisterEC creates an accrediting-entity account.
	RegisterEC(ctx context.Context, reg models.ECRegistration) error

	// SearchUsers looks usernames up by substring.
	SearchUsers(ctx context.Context, query string) ([]models.SearchResult, error)
}
