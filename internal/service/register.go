// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/bitsofme/bitsofme-client/internal/adapter"
	"github.com/bitsofme/bitsofme-client/internal/logger"
	"github.com/bitsofme/bitsofme-client/models"
)

// RegistrationService creates the two account kinds: regular wallet
// owners and accrediting entities.
type RegistrationService struct {
	gateway adapter.ServerGateway
	logger  *logger.Logger
}

func NewRegistrationService(gateway adapter.ServerGateway, log *logger.Logger) *RegistrationService {
	return &RegistrationService{
		gateway: gateway,
		logger:  log,
	}
}

// RegisterUser creates a regular account.
func (s *RegistrationService) RegisterUser(ctx context.Context, reg models.UserRegistration) error {
	if reg.Username == "" || reg.Name == "" {
		return fmt.Errorf("%w: username and name are required", ErrValidation)
	}
	if _, err := mail.ParseAddress(reg.Email); err != nil {
		return fmt.Errorf("%w: invalid email address", ErrValidation)
	}

	if err := s.gateway.RegisterUser(ctx, reg); err != nil {
		return mapGatewayError(err)
	}

	s.logger.Info().Str("username", reg.Username).Msg("user registered")
	return nil
}

// RegisterEC creates an accrediting-entity account. The authentication
// key and signing certificate are mandatory: without them the entity can
// neither log in nor issue verifiable certificates.
func (s *RegistrationService) RegisterEC(ctx context.Context, reg models.ECRegistration) error {
	if reg.Name == "" || reg.Kind == "" {
		return fmt.Errorf("%w: name and entity kind are required", ErrValidation)
	}
	if _, err := mail.ParseAddress(reg.Email); err != nil {
		return fmt.Errorf("%w: invalid email address", ErrValidation)
	}
	if reg.AuthenticationKey == "" || reg.Certificate == "" {
		return fmt.Errorf("%w: authentication key and certificate are required", ErrValidation)
	}

	if err := s.gateway.RegisterEC(ctx, reg); err != nil {
		return mapGatewayError(err)
	}

	s.logger.Info().Str("name", reg.Name).Msg("accrediting entity registered")
	return nil
}