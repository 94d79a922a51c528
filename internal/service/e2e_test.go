// SPDX-License-Identifier: Apache-2.0

package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitsofme/bitsofme-client/internal/adapter"
	"github.com/bitsofme/bitsofme-client/internal/config"
	"github.com/bitsofme/bitsofme-client/internal/integrity"
	"github.com/bitsofme/bitsofme-client/internal/logger"
	"github.com/bitsofme/bitsofme-client/internal/service"
	"github.com/bitsofme/bitsofme-client/internal/session"
	"github.com/bitsofme/bitsofme-client/models"
)

// serverCodec builds the codec the fake server uses to seal and verify
// envelopes, derived from the same email and session nonce the login
// handler hands out.
func serverCodec(email, nonce string) *integrity.Codec {
	creds := session.NewCredentials()
	creds.Set(email, nonce)
	return integrity.NewCodec(creds)
}

func newE2EServices(t *testing.T, baseURL string) *service.Services {
	t.Helper()

	gateway, err := adapter.NewHTTPServerGateway(config.ClientAdapter{
		HTTPAddress:    baseURL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	services, err := service.NewServices(gateway, session.NewCredentials(), nil, logger.Nop())
	require.NoError(t, err)
	return services
}

// TestLoginThenWalletRead walks the whole client stack over a real HTTP
// round trip: OTP login establishes the session secret, after which a
// sealed wallet read verifies against the server's envelope.
func TestLoginThenWalletRead(t *testing.T) {
	codec := serverCodec("a@b.com", "n1")

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/start", func(w http.ResponseWriter, r *http.Request) {
		var req models.StartLoginRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a@b.com", req.Email)
		assert.NoError(t, json.NewEncoder(w).Encode(models.ChallengeResponse{ChallengeID: "c1"}))
	})
	mux.HandleFunc("POST /api/auth/verify", func(w http.ResponseWriter, r *http.Request) {
		var req models.VerifyCodeRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.ChallengeID != "c1" || req.Code != "123456" {
			http.Error(w, "bad code", http.StatusUnauthorized)
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "access_token", Value: "tok", Path: "/"})
		assert.NoError(t, json.NewEncoder(w).Encode(models.SessionResponse{SessionNonce: "n1"}))
	})
	mux.HandleFunc("POST /api/carteira/", func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie("access_token"); err != nil {
			http.Error(w, "no session", http.StatusUnauthorized)
			return
		}

		var env models.Envelope
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&env))
		req, err := integrity.Open[models.WalletReadRequest](codec, env)
		if !assert.NoError(t, err, "client envelope must verify server-side") {
			http.Error(w, "bad envelope", http.StatusBadRequest)
			return
		}
		assert.Equal(t, "mk", req.MasterKey)

		resp, err := integrity.Seal(codec, models.WalletData{
			User: models.UserProfile{Username: "ana", Email: "a@b.com"},
			WalletContents: models.WalletContents{
				PersonalData: []models.PersonalDataEntry{{Name: "nif", Value: "123"}},
			},
		})
		assert.NoError(t, err)
		assert.NoError(t, json.NewEncoder(w).Encode(resp))
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	services := newE2EServices(t, srv.URL)
	ctx := context.Background()

	require.NoError(t, services.Auth.StartOTP(ctx, "a@b.com"))
	require.NoError(t, services.Auth.VerifyOTP(ctx, "123456"))
	assert.Equal(t, service.StateAuthenticated, services.Auth.State())

	wallet, err := services.Wallet.Read(ctx, "mk")
	require.NoError(t, err)
	assert.Equal(t, "ana", wallet.User.Username)
	require.Len(t, wallet.PersonalData, 1)
	assert.Equal(t, "nif", wallet.PersonalData[0].Name)
}

// TestWalletRead_TamperedResponseRejected: a 2xx wallet response whose
// payload was altered in flight must surface as an integrity failure,
// never as wallet data.
func TestWalletRead_TamperedResponseRejected(t *testing.T) {
	codec := serverCodec("a@b.com", "n1")

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/start", func(w http.ResponseWriter, _ *http.Request) {
		assert.NoError(t, json.NewEncoder(w).Encode(models.ChallengeResponse{ChallengeID: "c1"}))
	})
	mux.HandleFunc("POST /api/auth/verify", func(w http.ResponseWriter, _ *http.Request) {
		assert.NoError(t, json.NewEncoder(w).Encode(models.SessionResponse{SessionNonce: "n1"}))
	})
	mux.HandleFunc("POST /api/carteira/", func(w http.ResponseWriter, _ *http.Request) {
		env, err := integrity.Seal(codec, models.WalletData{
			WalletContents: models.WalletContents{
				PersonalData: []models.PersonalDataEntry{{Name: "nif", Value: "123"}},
			},
		})
		assert.NoError(t, err)
		env.Data = json.RawMessage(`{"user":{},"personalData":[{"name":"nif","value":"999"}]}`)
		assert.NoError(t, json.NewEncoder(w).Encode(env))
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	services := newE2EServices(t, srv.URL)
	ctx := context.Background()

	require.NoError(t, services.Auth.StartOTP(ctx, "a@b.com"))
	require.NoError(t, services.Auth.VerifyOTP(ctx, "123456"))

	_, err := services.Wallet.Read(ctx, "mk")
	assert.ErrorIs(t, err, integrity.ErrIntegrityCheckFailed)
}