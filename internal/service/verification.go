// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/bitsofme/bitsofme-client/internal/adapter"
	"github.com/bitsofme/bitsofme-client/internal/logger"
	"github.com/bitsofme/bitsofme-client/models"
)

// VerificationService tracks disclosure requests after they are created:
// listing every verification involving the caller and unlocking the
// disclosed value of an accepted one.
type VerificationService struct {
	gateway adapter.ServerGateway
	logger  *logger.Logger
}

func NewVerificationService(gateway adapter.ServerGateway, log *logger.Logger) *VerificationService {
	return &VerificationService{
		gateway: gateway,
		logger:  log,
	}
}

// Get unlocks one accepted verification with the requester's master key
// and returns the disclosed record.
func (s *VerificationService) Get(ctx context.Context, verificationID, masterKey string) (models.VerificationDetail, error) {
	if verificationID == "" {
		return models.VerificationDetail{}, fmt.Errorf("%w: verification id is required", ErrValidation)
	}
	if masterKey == "" {
		return models.VerificationDetail{}, fmt.Errorf("%w: master key is required", ErrValidation)
	}

	resp, err := s.gateway.GetVerification(ctx, verificationID, models.VerificationDetailRequest{MasterKey: masterKey})
	if err != nil {
		return models.VerificationDetail{}, mapGatewayError(err)
	}
	return resp.Verification, nil
}

// GetAll lists every verification the caller requested or received.
func (s *VerificationService) GetAll(ctx context.Context) ([]models.Verification, error) {
	resp, err := s.gateway.GetAllVerifications(ctx)
	if err != nil {
		return nil, mapGatewayError(err)
	}
	return resp.AllVerifications, nil
}