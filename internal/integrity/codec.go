// SPDX-License-Identifier: Apache-2.0

// Package integrity implements the message-integrity layer applied to
// every sensitive API exchange: deterministic JSON serialisation plus
// HMAC-SHA256 signing and verification keyed by the session secret.
//
// The scheme mirrors the server contract exactly:
//
//	canonical = json with all object keys sorted, recursively
//	key       = hex(SHA256(session secret))
//	hmac      = lowercase hex of HMAC-SHA256(canonical, key)
//
// A missing session secret degrades to the empty-string secret rather
// than an error, so unauthenticated flows keep working and simply fail
// verification the normal way.
package integrity

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bitsofme/bitsofme-client/internal/session"
	"github.com/bitsofme/bitsofme-client/models"
)

// ErrIntegrityCheckFailed marks a response whose HMAC does not match its
// payload. It is distinct from authorization errors: a 2xx response with a
// bad HMAC is still a failure and must never be reported as success.
var ErrIntegrityCheckFailed = errors.New("integrity check failed")

// Codec signs and verifies payloads against the session credential store
// it was constructed with. It is stateless apart from that reference and
// safe for concurrent use.
type Codec struct {
	creds *session.Credentials
}

// NewCodec binds a codec to creds.
func NewCodec(creds *session.Credentials) *Codec {
	return &Codec{creds: creds}
}

// Canonicalize renders v as deterministic JSON: the value is marshalled,
// re-read into generic form, and marshalled again, which sorts every
// object's keys. Number literals survive verbatim through json.Number.
func Canonicalize(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return canonicalizeRaw(raw)
}

func canonicalizeRaw(raw []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var generic any
	if err := dec.Decode(&generic); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}

	canonical, err := json.Marshal(generic)
	if err != nil {
		return nil, fmt.Errorf("canonicalize payload: %w", err)
	}
	return canonical, nil
}

// Sign returns the lowercase-hex HMAC of v's canonical serialisation.
func (c *Codec) Sign(v any) (string, error) {
	canonical, err := Canonicalize(v)
	if err != nil {
		return "", err
	}
	return c.mac(canonical), nil
}

// Verify recomputes the HMAC over the given canonical payload bytes and
// compares it with mac in constant time. An undecodable mac is a plain
// mismatch, not an error.
func (c *Codec) Verify(canonical []byte, mac string) bool {
	want, err := hex.DecodeString(mac)
	if err != nil {
		return false
	}

	got, err := hex.DecodeString(c.mac(canonical))
	if err != nil {
		return false
	}

	return hmac.Equal(got, want)
}

func (c *Codec) mac(payload []byte) string {
	secret, _ := c.creds.Secret()

	secretHash := sha256.Sum256([]byte(secret))
	key := []byte(hex.EncodeToString(secretHash[:]))

	h := hmac.New(sha256.New, key)
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}

// Seal wraps v in a signed envelope. Data carries the canonical bytes so
// the server verifies exactly what was signed.
func Seal(c *Codec, v any) (models.Envelope, error) {
	canonical, err := Canonicalize(v)
	if err != nil {
		return models.Envelope{}, err
	}
	return models.Envelope{Data: canonical, HMAC: c.mac(canonical)}, nil
}

// Open verifies env and unmarshals its payload into T. The received data
// bytes are canonicalized before verification so that key order on the
// wire cannot affect the digest. A mismatch yields
// [ErrIntegrityCheckFailed] wrapped with context.
func Open[T any](c *Codec, env models.Envelope) (T, error) {
	var out T

	canonical, err := canonicalizeRaw(env.Data)
	if err != nil {
		return out, fmt.Errorf("%w: malformed payload: %v", ErrIntegrityCheckFailed, err)
	}

	if !c.Verify(canonical, env.HMAC) {
		return out, ErrIntegrityCheckFailed
	}

	if err := json.Unmarshal(env.Data, &out); err != nil {
		return out, fmt.Errorf("decode envelope payload: %w", err)
	}
	return out, nil
}
