package models

// AuthChallenge is the client-side record of an authentication challenge
// issued by the server. It lives only in memory for the duration of a
// login attempt: created on a successful start call, consumed by exactly
// one verify call, then discarded.
type AuthChallenge struct {
	// ChallengeID ties the verify call to the challenge that produced it.
	ChallengeID string

	// Nonce is the value the user signs out-of-band. Empty for the OTP
	// flow, where the secret travels by email instead.
	Nonce string

	// Email is the address the challenge was issued for.
	Email string
}

// StartLoginRequest begins either login flow.
type StartLoginRequest struct {
	Email string `json:"email"`
}

// ChallengeResponse is the server's answer to a start call.
type ChallengeResponse struct {
	ChallengeID string `json:"challenge_id"`

	// Nonce is present only in the signature flow.
	Nonce string `json:"nonce,omitempty"`
}

// VerifyCodeRequest completes the OTP flow with the emailed 6-digit code.
type VerifyCodeRequest struct {
	Email       string `json:"email"`
	ChallengeID string `json:"challenge_id"`
	Code        string `json:"code"`
}

// VerifySignatureRequest completes the signature flow. Signature is the
// base64 encoding of the raw signature file bytes; the file is binary and
// must never be text-decoded.
type VerifySignatureRequest struct {
	Email       string `json:"email"`
	ChallengeID string `json:"challenge_id"`
	Signature   string `json:"signature"`
}

// SessionResponse is returned by a successful verify call. SessionNonce is
// combined with the login email into the session credential
// "<email>.<nonce>" that keys all subsequent integrity checks.
type SessionResponse struct {
	SessionNonce string `json:"session_nonce"`
}
