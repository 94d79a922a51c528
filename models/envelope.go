package models

import "encoding/json"

// Envelope is the integrity wrapper used on every sensitive API exchange.
// Data carries the payload exactly as it appeared on the wire; HMAC is the
// lowercase-hex HMAC-SHA256 of the canonical JSON serialisation of Data,
// keyed with the hashed session secret.
//
// Data is kept as raw bytes on purpose: verification must run over the
// bytes the server actually signed, before any typed unmarshalling can
// drop unknown fields and silently change the digest.
type Envelope struct {
	// Data is the wrapped payload, untouched.
	Data json.RawMessage `json:"data"`

	// HMAC is the hex-encoded signature over the canonical form of Data.
	HMAC string `json:"hmac"`
}
