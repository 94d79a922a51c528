// SPDX-License-Identifier: Apache-2.0

// Package service implements the client's application logic on top of the
// server gateway: the login state machine, the sealed wallet exchanges,
// the master-key confirmer, verifications, notifications, registration
// and search. It owns the session credential and the integrity codec;
// the gateway below it only moves envelopes.
package service

import (
	"github.com/bitsofme/bitsofme-client/internal/adapter"
	"github.com/bitsofme/bitsofme-client/internal/integrity"
	"github.com/bitsofme/bitsofme-client/internal/logger"
	"github.com/bitsofme/bitsofme-client/internal/session"
)

// Services bundles every client service over one gateway and one session.
type Services struct {
	Auth          *Authenticator
	Wallet        *WalletService
	Confirmer     *Confirmer
	Verifications *VerificationService
	Notifications *NotificationService
	Registration  *RegistrationService
	Search        *SearchService

	Credentials *session.Credentials
	Codec       *integrity.Codec
}

// NewServices wires the full service graph. store may be nil to run
// without credential persistence; any previously persisted credential is
// restored into creds before use.
func NewServices(gateway adapter.ServerGateway, creds *session.Credentials, store *session.FileStore, log *logger.Logger) (*Services, error) {
	if store != nil {
		secret, err := store.Load()
		if err != nil {
			return nil, err
		}
		creds.Restore(secret)
	}

	codec := integrity.NewCodec(creds)
	wallet := NewWalletService(gateway, codec, log)

	return &Services{
		Auth:          NewAuthenticator(gateway, creds, store, log),
		Wallet:        wallet,
		Confirmer:     NewConfirmer(wallet, log),
		Verifications: NewVerificationService(gateway, log),
		Notifications: NewNotificationService(gateway, codec, log),
		Registration:  NewRegistrationService(gateway, log),
		Search:        NewSearchService(gateway, log),
		Credentials:   creds,
		Codec:         codec,
	}, nil
}