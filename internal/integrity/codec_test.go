// SPDX-License-Identifier: Apache-2.0

package integrity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitsofme/bitsofme-client/internal/session"
	"github.com/bitsofme/bitsofme-client/models"
)

func newTestCodec(t *testing.T) (*Codec, *session.Credentials) {
	t.Helper()
	creds := session.NewCredentials()
	creds.Set("a@b.com", "n1")
	return NewCodec(creds), creds
}

// TestSignVerify_RoundTrip: a signed payload verifies under the same secret.
func TestSignVerify_RoundTrip(t *testing.T) {
	codec, _ := newTestCodec(t)

	payload := map[string]any{"masterKey": "mk", "count": 3}
	canonical, err := Canonicalize(payload)
	require.NoError(t, err)

	mac, err := codec.Sign(payload)
	require.NoError(t, err)
	assert.True(t, codec.Verify(canonical, mac))
}

// TestVerify_BitFlipFails: flipping one payload byte breaks verification.
func TestVerify_BitFlipFails(t *testing.T) {
	codec, _ := newTestCodec(t)

	canonical, err := Canonicalize(map[string]string{"name": "cartao"})
	require.NoError(t, err)
	sig, err := codec.Sign(map[string]string{"name": "cartao"})
	require.NoError(t, err)

	tampered := append([]byte{}, canonical...)
	tampered[len(tampered)-2] ^= 0x01

	assert.True(t, codec.Verify(canonical, sig))
	assert.False(t, codec.Verify(tampered, sig))
}

// TestSign_KeyOrderIndependent: two JSON spellings of the same object sign
// identically.
func TestSign_KeyOrderIndependent(t *testing.T) {
	codec, _ := newTestCodec(t)

	a := json.RawMessage(`{"b":1,"a":{"y":2,"x":"v"}}`)
	b := json.RawMessage(`{"a":{"x":"v","y":2},"b":1}`)

	sigA, err := codec.Sign(a)
	require.NoError(t, err)
	sigB, err := codec.Sign(b)
	require.NoError(t, err)

	assert.Equal(t, sigA, sigB)
}

// TestSign_NumberLiteralsSurvive: canonicalization must not rewrite number
// literals through float64.
func TestSign_NumberLiteralsSurvive(t *testing.T) {
	canonical, err := Canonicalize(json.RawMessage(`{"id":9007199254740993}`))
	require.NoError(t, err)
	assert.Contains(t, string(canonical), "9007199254740993")
}

// TestSign_SecretChangesDigest: a different session secret yields a
// different signature for the same payload.
func TestSign_SecretChangesDigest(t *testing.T) {
	codec, creds := newTestCodec(t)

	payload := map[string]string{"k": "v"}
	sig1, err := codec.Sign(payload)
	require.NoError(t, err)

	creds.Set("a@b.com", "n2")
	sig2, err := codec.Sign(payload)
	require.NoError(t, err)

	assert.NotEqual(t, sig1, sig2)
}

// TestSign_MissingSecretDegradesToEmpty: signing without a session secret
// is not an error, it just signs under the empty secret.
func TestSign_MissingSecretDegradesToEmpty(t *testing.T) {
	codec := NewCodec(session.NewCredentials())

	sig, err := codec.Sign(map[string]string{"k": "v"})
	require.NoError(t, err)
	assert.Len(t, sig, 64) // lowercase hex sha256
}

// TestSealOpen_RoundTrip: Seal then Open returns the original payload.
func TestSealOpen_RoundTrip(t *testing.T) {
	codec, _ := newTestCodec(t)

	env, err := Seal(codec, models.WalletReadRequest{MasterKey: "mk"})
	require.NoError(t, err)
	require.NotEmpty(t, env.HMAC)

	got, err := Open[models.WalletReadRequest](codec, env)
	require.NoError(t, err)
	assert.Equal(t, "mk", got.MasterKey)
}

// TestOpen_TamperedDataFails: altering the data after sealing yields
// ErrIntegrityCheckFailed even though the envelope parses fine.
func TestOpen_TamperedDataFails(t *testing.T) {
	codec, _ := newTestCodec(t)

	env, err := Seal(codec, models.WalletReadRequest{MasterKey: "mk"})
	require.NoError(t, err)
	env.Data = json.RawMessage(`{"masterKey":"other"}`)

	_, err = Open[models.WalletReadRequest](codec, env)
	assert.ErrorIs(t, err, ErrIntegrityCheckFailed)
}

// TestOpen_WireKeyOrderIrrelevant: the server may serialise the payload in
// any key order; verification runs over the canonical form.
func TestOpen_WireKeyOrderIrrelevant(t *testing.T) {
	codec, _ := newTestCodec(t)

	sig, err := codec.Sign(json.RawMessage(`{"a":1,"b":"x"}`))
	require.NoError(t, err)

	env := models.Envelope{
		Data: json.RawMessage(`{"b":"x","a":1}`),
		HMAC: sig,
	}

	got, err := Open[map[string]any](codec, env)
	require.NoError(t, err)
	assert.Equal(t, "x", got["b"])
}

// TestOpen_BadMacEncoding: a non-hex mac is a mismatch, not a crash.
func TestOpen_BadMacEncoding(t *testing.T) {
	codec, _ := newTestCodec(t)

	env := models.Envelope{
		Data: json.RawMessage(`{"a":1}`),
		HMAC: "zz-not-hex",
	}

	_, err := Open[map[string]any](codec, env)
	assert.ErrorIs(t, err, ErrIntegrityCheckFailed)
}

// TestOpen_MalformedPayload: undecodable data is an integrity failure.
func TestOpen_MalformedPayload(t *testing.T) {
	codec, _ := newTestCodec(t)

	env := models.Envelope{
		Data: json.RawMessage(`{broken`),
		HMAC: "00",
	}

	_, err := Open[map[string]any](codec, env)
	assert.ErrorIs(t, err, ErrIntegrityCheckFailed)
}