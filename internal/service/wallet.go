// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bitsofme/bitsofme-client/internal/adapter"
	"github.com/bitsofme/bitsofme-client/internal/integrity"
	"github.com/bitsofme/bitsofme-client/internal/logger"
	"github.com/bitsofme/bitsofme-client/models"
)

// WalletService owns every wallet exchange: reading and updating the
// caller's own wallet, the public views of other wallets, and the two
// sealed requests an accrediting entity sends (verification and
// certificate issuance).
//
// Every sensitive exchange travels as a signed envelope. Responses are
// verified before any field is used; a 2xx response whose HMAC does not
// match is a failure, never a success.
type WalletService struct {
	gateway adapter.ServerGateway
	codec   *integrity.Codec
	logger  *logger.Logger
}

func NewWalletService(gateway adapter.ServerGateway, codec *integrity.Codec, log *logger.Logger) *WalletService {
	return &WalletService{
		gateway: gateway,
		codec:   codec,
		logger:  log,
	}
}

// Read unlocks and returns the caller's wallet. The master key travels
// sealed; the response envelope is verified before the wallet is returned.
func (s *WalletService) Read(ctx context.Context, masterKey string) (models.WalletData, error) {
	if masterKey == "" {
		return models.WalletData{}, fmt.Errorf("%w: master key is required", ErrValidation)
	}

	env, err := integrity.Seal(s.codec, models.WalletReadRequest{MasterKey: masterKey})
	if err != nil {
		return models.WalletData{}, err
	}

	respEnv, err := s.gateway.WalletRead(ctx, env)
	if err != nil {
		return models.WalletData{}, mapGatewayError(err)
	}

	wallet, err := integrity.Open[models.WalletData](s.codec, respEnv)
	if err != nil {
		s.logger.Error().Err(err).Msg("wallet read response rejected")
		return models.WalletData{}, err
	}
	return wallet, nil
}

// Update replaces the wallet contents. The server re-encrypts under the
// supplied master key; a wrong key is rejected server-side as an
// authorization failure.
func (s *WalletService) Update(ctx context.Context, contents models.WalletContents, masterKey string) error {
	if masterKey == "" {
		return fmt.Errorf("%w: master key is required", ErrValidation)
	}

	env, err := integrity.Seal(s.codec, models.WalletUpdateRequest{
		Data:      contents,
		MasterKey: masterKey,
	})
	if err != nil {
		return err
	}

	respEnv, err := s.gateway.WalletUpdate(ctx, env)
	if err != nil {
		return mapGatewayError(err)
	}

	if _, err = integrity.Open[json.RawMessage](s.codec, respEnv); err != nil {
		s.logger.Error().Err(err).Msg("wallet update acknowledgement rejected")
		return err
	}
	return nil
}

// PublicProfile fetches another user's public profile. No master key is
// involved, but the response is still integrity-checked.
func (s *WalletService) PublicProfile(ctx context.Context, username string) (models.UserProfile, error) {
	if username == "" {
		return models.UserProfile{}, fmt.Errorf("%w: username is required", ErrValidation)
	}

	respEnv, err := s.gateway.PublicProfile(ctx, username)
	if err != nil {
		return models.UserProfile{}, mapGatewayError(err)
	}

	profile, err := integrity.Open[models.UserProfile](s.codec, respEnv)
	if err != nil {
		return models.UserProfile{}, err
	}
	return profile, nil
}

// PublicWallet fetches the names-only view of another user's wallet:
// which fields and certificates exist, never their values.
func (s *WalletService) PublicWallet(ctx context.Context, username string) ([]models.WalletEntry, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrValidation)
	}

	respEnv, err := s.gateway.PublicWallet(ctx, username)
	if err != nil {
		return nil, mapGatewayError(err)
	}

	wallet, err := integrity.Open[models.WalletData](s.codec, respEnv)
	if err != nil {
		return nil, err
	}
	return wallet.PublicEntries(), nil
}

// RequestVerification sends a sealed disclosure request to a wallet owner.
// The request key lets the server encrypt the disclosed value for the
// requester alone.
func (s *WalletService) RequestVerification(ctx context.Context, req models.VerificationRequest) error {
	if req.Email == "" || req.DataType.Key == "" || req.RequestKey == "" {
		return fmt.Errorf("%w: email, target field and request key are required", ErrValidation)
	}

	env, err := integrity.Seal(s.codec, req)
	if err != nil {
		return err
	}

	respEnv, err := s.gateway.RequestVerification(ctx, env)
	if err != nil {
		return mapGatewayError(err)
	}

	if _, err = integrity.Open[json.RawMessage](s.codec, respEnv); err != nil {
		return err
	}
	return nil
}

// RequestCertificate offers a certificate to a wallet owner on behalf of
// an accrediting entity. The certificate data must already embed the
// issuer's signature (see BuildCertificatePayload).
func (s *WalletService) RequestCertificate(ctx context.Context, email string, cert models.Certificate) error {
	if email == "" || cert.Name() == "" {
		return fmt.Errorf("%w: recipient email and certificate name are required", ErrValidation)
	}

	env, err := integrity.Seal(s.codec, models.CertificateAdditionRequest{
		Email:           email,
		CertificateData: cert,
	})
	if err != nil {
		return err
	}

	respEnv, err := s.gateway.RequestCertificate(ctx, env)
	if err != nil {
		return mapGatewayError(err)
	}

	if _, err = integrity.Open[json.RawMessage](s.codec, respEnv); err != nil {
		return err
	}
	return nil
}

// BuildCertificatePayload assembles the flat certificate map an
// accrediting entity issues: the display name, the issuing entity, the
// issue date, any extra attested fields, and the issuer's signature file
// embedded base64-encoded under "signature".
func BuildCertificatePayload(name, entity string, extra []models.CertificateField, signature []byte, now time.Time) models.Certificate {
	cert := models.Certificate{
		"nome":         name,
		"entidade":     entity,
		"data_emissao": issueDate(now),
	}

	for _, f := range extra {
		if f.Key == "" || f.Value == "" {
			continue
		}
		cert[f.Key] = f.Value
	}

	cert["signature"] = base64.StdEncoding.EncodeToString(signature)
	return cert
}

// issueDate renders now as dd-mm-yyyy, the format certificates carry.
func issueDate(now time.Time) string {
	return now.Format("02-01-2006")
}
