// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/bitsofme/bitsofme-client/internal/logger"
	"github.com/bitsofme/bitsofme-client/models"
)

// PendingOperation is a wallet mutation deferred until the user supplies
// the master key. Each variant carries the data it needs and knows how to
// apply itself to the wallet contents.
type PendingOperation interface {
	apply(models.WalletContents) models.WalletContents

	// Describe names the operation for prompts and logs.
	Describe() string
}

// AddEntry appends a personal-data pair.
type AddEntry struct {
	Entry models.PersonalDataEntry
}

func (op AddEntry) apply(w models.WalletContents) models.WalletContents {
	w.PersonalData = append(append([]models.PersonalDataEntry{}, w.PersonalData...), op.Entry)
	return w
}

func (op AddEntry) Describe() string { return "add entry " + op.Entry.Name }

// EditEntry replaces the value of the named personal-data pair.
type EditEntry struct {
	Name     string
	NewValue string
}

func (op EditEntry) apply(w models.WalletContents) models.WalletContents {
	entries := append([]models.PersonalDataEntry{}, w.PersonalData...)
	for i := range entries {
		if entries[i].Name == op.Name {
			entries[i].Value = op.NewValue
		}
	}
	w.PersonalData = entries
	return w
}

func (op EditEntry) Describe() string { return "edit entry " + op.Name }

// DeleteEntry removes the named personal-data pair.
type DeleteEntry struct {
	Name string
}

func (op DeleteEntry) apply(w models.WalletContents) models.WalletContents {
	entries := make([]models.PersonalDataEntry, 0, len(w.PersonalData))
	for _, e := range w.PersonalData {
		if e.Name == op.Name {
			continue
		}
		entries = append(entries, e)
	}
	w.PersonalData = entries
	return w
}

func (op DeleteEntry) Describe() string { return "delete entry " + op.Name }

// DeleteCertificate removes the named certificate.
type DeleteCertificate struct {
	Name string
}

func (op DeleteCertificate) apply(w models.WalletContents) models.WalletContents {
	certs := make([]models.Certificate, 0, len(w.Certificates))
	for _, c := range w.Certificates {
		if c.Name() == op.Name {
			continue
		}
		certs = append(certs, c)
	}
	w.Certificates = certs
	return w
}

func (op DeleteCertificate) Describe() string { return "delete certificate " + op.Name }

// Confirmer gates wallet mutations behind the master-key prompt. A
// mutation is scheduled together with the wallet contents it applies to,
// held until the user confirms with their master key, and then dispatched
// exactly once. Scheduling a new operation replaces any pending one.
type Confirmer struct {
	wallet *WalletService
	logger *logger.Logger

	mu      sync.Mutex
	pending PendingOperation
	base    models.WalletContents
}

func NewConfirmer(wallet *WalletService, log *logger.Logger) *Confirmer {
	return &Confirmer{
		wallet: wallet,
		logger: log,
	}
}

// Schedule defers op, to be applied to the given wallet contents when the
// user confirms. Any previously pending operation is discarded.
func (c *Confirmer) Schedule(contents models.WalletContents, op PendingOperation) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending != nil {
		c.logger.Debug().Str("replaced", c.pending.Describe()).Msg("pending operation replaced")
	}
	c.pending = op
	c.base = contents
}

// Pending reports the scheduled operation, if any.
func (c *Confirmer) Pending() (PendingOperation, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending, c.pending != nil
}

// Confirm executes the pending operation with the supplied master key. An
// empty key fails locally and keeps the operation pending so the prompt
// can stay open. On a successful dispatch the operation is cleared; a
// second Confirm returns ErrNoPendingOperation rather than running twice.
func (c *Confirmer) Confirm(ctx context.Context, masterKey string) error {
	if masterKey == "" {
		return fmt.Errorf("%w: master key is required", ErrValidation)
	}

	c.mu.Lock()
	op := c.pending
	base := c.base
	c.mu.Unlock()

	if op == nil {
		return ErrNoPendingOperation
	}

	if err := c.wallet.Update(ctx, op.apply(base), masterKey); err != nil {
		return err
	}

	c.mu.Lock()
	// Only clear if no newer operation was scheduled meanwhile.
	if c.pending == op {
		c.pending = nil
		c.base = models.WalletContents{}
	}
	c.mu.Unlock()

	c.logger.Info().Str("operation", op.Describe()).Msg("wallet mutation confirmed")
	return nil
}

// Cancel drops the pending operation without dispatching it.
func (c *Confirmer) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = nil
	c.base = models.WalletContents{}
}