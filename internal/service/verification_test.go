// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bitsofme/bitsofme-client/internal/adapter"
	"github.com/bitsofme/bitsofme-client/internal/logger"
	"github.com/bitsofme/bitsofme-client/internal/mock"
	"github.com/bitsofme/bitsofme-client/models"
)

func newTestVerificationService(t *testing.T, ctrl *gomock.Controller) (*VerificationService, *mock.MockServerGateway) {
	t.Helper()
	gateway := mock.NewMockServerGateway(ctrl)
	return NewVerificationService(gateway, logger.Nop()), gateway
}

func TestVerificationService_Get_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestVerificationService(t, ctrl)
	ctx := context.Background()

	_, err := svc.Get(ctx, "", "mk")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Get(ctx, "v1", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestVerificationService_Get_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, gateway := newTestVerificationService(t, ctrl)
	ctx := context.Background()

	detail := models.VerificationDetail{
		VerificationID: "v1",
		DataType:       models.VerificationDataType{Display: "nif"},
		Value:          "123",
	}
	gateway.EXPECT().
		GetVerification(ctx, "v1", models.VerificationDetailRequest{MasterKey: "mk"}).
		Return(models.VerificationDetailResponse{Verification: detail}, nil)

	got, err := svc.Get(ctx, "v1", "mk")
	require.NoError(t, err)
	assert.Equal(t, detail, got)
}

func TestVerificationService_Get_MapsAuthorizationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, gateway := newTestVerificationService(t, ctrl)
	ctx := context.Background()

	gateway.EXPECT().
		GetVerification(ctx, "v1", gomock.Any()).
		Return(models.VerificationDetailResponse{}, adapter.ErrForbidden)

	_, err := svc.Get(ctx, "v1", "wrong")
	assert.ErrorIs(t, err, ErrAuthorization)
}

func TestVerificationService_GetAll_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, gateway := newTestVerificationService(t, ctrl)
	ctx := context.Background()

	list := []models.Verification{
		{VerificationID: "v1", Accepted: true, ExpiresAt: time.Now().Add(time.Hour)},
		{VerificationID: "v2"},
	}
	gateway.EXPECT().
		GetAllVerifications(ctx).
		Return(models.VerificationListResponse{AllVerifications: list}, nil)

	got, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, list, got)
}

func TestVerificationService_GetAll_MapsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, gateway := newTestVerificationService(t, ctrl)
	ctx := context.Background()

	gateway.EXPECT().GetAllVerifications(ctx).Return(models.VerificationListResponse{}, adapter.ErrInternalServerError)

	_, err := svc.GetAll(ctx)
	assert.ErrorIs(t, err, ErrUnavailable)
}