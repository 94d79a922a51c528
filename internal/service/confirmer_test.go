// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bitsofme/bitsofme-client/internal/integrity"
	"github.com/bitsofme/bitsofme-client/internal/logger"
	"github.com/bitsofme/bitsofme-client/internal/mock"
	"github.com/bitsofme/bitsofme-client/models"
)

func newTestConfirmer(t *testing.T, ctrl *gomock.Controller) (*Confirmer, *mock.MockServerGateway, *integrity.Codec) {
	t.Helper()
	wallet, gateway, codec := newTestWalletService(t, ctrl)
	return NewConfirmer(wallet, logger.Nop()), gateway, codec
}

var testContents = models.WalletContents{
	PersonalData: []models.PersonalDataEntry{
		{Name: "nif", Value: "123"},
		{Name: "tel", Value: "999"},
	},
	Certificates: []models.Certificate{
		{"nome": "cartao", "numero": "9"},
	},
}

// ── operation variants ───────────────────────────────────────────────────────

func TestPendingOperations_Apply(t *testing.T) {
	tests := []struct {
		name string
		op   PendingOperation
		want func(t *testing.T, w models.WalletContents)
	}{
		{
			name: "add entry",
			op:   AddEntry{Entry: models.PersonalDataEntry{Name: "morada", Value: "Lisboa"}},
			want: func(t *testing.T, w models.WalletContents) {
				require.Len(t, w.PersonalData, 3)
				assert.Equal(t, "morada", w.PersonalData[2].Name)
			},
		},
		{
			name: "edit entry",
			op:   EditEntry{Name: "tel", NewValue: "111"},
			want: func(t *testing.T, w models.WalletContents) {
				assert.Equal(t, "111", w.PersonalData[1].Value)
			},
		},
		{
			name: "delete entry",
			op:   DeleteEntry{Name: "nif"},
			want: func(t *testing.T, w models.WalletContents) {
				require.Len(t, w.PersonalData, 1)
				assert.Equal(t, "tel", w.PersonalData[0].Name)
			},
		},
		{
			name: "delete certificate",
			op:   DeleteCertificate{Name: "cartao"},
			want: func(t *testing.T, w models.WalletContents) {
				assert.Empty(t, w.Certificates)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.op.apply(testContents)
			tt.want(t, got)
			// The base contents must not be mutated in place.
			assert.Len(t, testContents.PersonalData, 2)
			assert.Len(t, testContents.Certificates, 1)
		})
	}
}

// ── Confirm ──────────────────────────────────────────────────────────────────

// TestConfirmer_EmptyMasterKeyKeepsPending: an empty key fails locally and
// the prompt can stay open; nothing goes on the wire.
func TestConfirmer_EmptyMasterKeyKeepsPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, _, _ := newTestConfirmer(t, ctrl)
	c.Schedule(testContents, DeleteEntry{Name: "nif"})

	err := c.Confirm(context.Background(), "")
	assert.ErrorIs(t, err, ErrValidation)

	_, pending := c.Pending()
	assert.True(t, pending)
}

// TestConfirmer_DispatchesExactlyOnce: a confirmed operation runs once; a
// second confirm finds nothing pending.
func TestConfirmer_DispatchesExactlyOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, gateway, codec := newTestConfirmer(t, ctrl)
	ctx := context.Background()

	gateway.EXPECT().
		WalletUpdate(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, env models.Envelope) (models.Envelope, error) {
			req, err := integrity.Open[models.WalletUpdateRequest](codec, env)
			require.NoError(t, err)
			assert.Equal(t, "mk", req.MasterKey)
			require.Len(t, req.Data.PersonalData, 1)
			assert.Equal(t, "tel", req.Data.PersonalData[0].Name)
			return mustSeal(t, codec, map[string]string{"status": "ok"}), nil
		}).
		Times(1)

	c.Schedule(testContents, DeleteEntry{Name: "nif"})

	require.NoError(t, c.Confirm(ctx, "mk"))
	_, pending := c.Pending()
	assert.False(t, pending)

	err := c.Confirm(ctx, "mk")
	assert.ErrorIs(t, err, ErrNoPendingOperation)
}

// TestConfirmer_FailedDispatchKeepsPending: a server failure leaves the
// operation scheduled so the user can retry with the right key.
func TestConfirmer_FailedDispatchKeepsPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, gateway, _ := newTestConfirmer(t, ctrl)
	ctx := context.Background()

	gateway.EXPECT().
		WalletUpdate(ctx, gomock.Any()).
		Return(models.Envelope{}, assert.AnError)

	c.Schedule(testContents, DeleteEntry{Name: "nif"})
	err := c.Confirm(ctx, "wrong")
	require.Error(t, err)

	_, pending := c.Pending()
	assert.True(t, pending)
}

// TestConfirmer_ScheduleReplacesPending: only the newest operation runs.
func TestConfirmer_ScheduleReplacesPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, gateway, codec := newTestConfirmer(t, ctrl)
	ctx := context.Background()

	gateway.EXPECT().
		WalletUpdate(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, env models.Envelope) (models.Envelope, error) {
			req, err := integrity.Open[models.WalletUpdateRequest](codec, env)
			require.NoError(t, err)
			// The replacement (edit), not the original delete, must run.
			require.Len(t, req.Data.PersonalData, 2)
			assert.Equal(t, "111", req.Data.PersonalData[1].Value)
			return mustSeal(t, codec, map[string]string{"status": "ok"}), nil
		}).
		Times(1)

	c.Schedule(testContents, DeleteEntry{Name: "nif"})
	c.Schedule(testContents, EditEntry{Name: "tel", NewValue: "111"})

	require.NoError(t, c.Confirm(ctx, "mk"))
}

func TestConfirmer_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, _, _ := newTestConfirmer(t, ctrl)

	c.Schedule(testContents, DeleteEntry{Name: "nif"})
	c.Cancel()

	_, pending := c.Pending()
	assert.False(t, pending)

	err := c.Confirm(context.Background(), "mk")
	assert.ErrorIs(t, err, ErrNoPendingOperation)
}