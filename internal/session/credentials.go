// SPDX-License-Identifier: Apache-2.0

// Package session holds the session credential that keys every
// integrity-checked API exchange.
//
// The credential is the string "<identifier>.<nonce>" assembled after a
// successful login. It is used exclusively as HMAC key material by the
// integrity codec and is never sent to the server after issuance. The one
// durable piece of client state is this single string, optionally
// persisted through [FileStore].
package session

import "sync"

// Credentials is the in-memory store of the active session secret.
//
// Reads happen on every signed request and every verified response, from
// any number of in-flight goroutines; writes happen only at login and
// logout. The RWMutex keeps torn reads impossible in multi-goroutine use.
type Credentials struct {
	mu     sync.RWMutex
	secret string
	set    bool
}

// NewCredentials returns an empty credential store.
func NewCredentials() *Credentials {
	return &Credentials{}
}

// Set stores "<identifier>.<nonce>" as the active secret, replacing any
// previous value.
func (c *Credentials) Set(identifier, nonce string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.secret = identifier + "." + nonce
	c.set = true
}

// Restore installs a previously persisted secret verbatim. An empty value
// leaves the store unset.
func (c *Credentials) Restore(secret string) {
	if secret == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.secret = secret
	c.set = true
}

// Secret returns the active secret and whether one is set.
func (c *Credentials) Secret() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.secret, c.set
}

// Clear removes the secret. Called on explicit logout only; failed session
// probes and integrity failures deliberately leave the secret in place so
// the user can retry.
func (c *Credentials) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.secret = ""
	c.set = false
}
