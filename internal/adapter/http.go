// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/bitsofme/bitsofme-client/internal/config"
	"github.com/bitsofme/bitsofme-client/internal/logger"
	"github.com/bitsofme/bitsofme-client/internal/utils"
	"github.com/bitsofme/bitsofme-client/models"
)

const refreshPath = "/api/auth/refresh"

type httpServerGateway struct {
	client  *resty.Client
	refresh refreshGroup
	ids     *utils.RequestIDGenerator

	logger *logger.Logger
}

// NewHTTPServerGateway constructs the HTTP/REST implementation of
// [ServerGateway]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying resty client with
// the resolved base URL and request timeout. The client's cookie jar
// carries the session cookies the server sets at login.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed
// as a valid URL.
func NewHTTPServerGateway(adapterCfg config.ClientAdapter, log *logger.Logger) (ServerGateway, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid gateway http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerGateway{
		client: client,
		ids:    utils.NewRequestIDGenerator(),
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// send issues the request built by build and applies the refresh-and-retry
// rule: a 401 triggers exactly one shared refresh attempt, after which the
// original request is re-sent once. The refresh call itself bypasses this
// path, so a 401 from the refresh endpoint can never recurse. If the
// refresh fails, the original 401 response is returned untouched so the
// caller surfaces the original error.
func (g *httpServerGateway) send(ctx context.Context, build func(r *resty.Request) (*resty.Response, error)) (*resty.Response, error) {
	issue := func() (*resty.Response, error) {
		r := g.client.R().
			SetContext(ctx).
			SetHeader("X-Request-Id", g.ids.Generate())
		return build(r)
	}

	resp, err := issue()
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusUnauthorized {
		return resp, nil
	}

	if rerr := g.refresh.do(ctx, g.refreshSession); rerr != nil {
		g.logger.Debug().Err(rerr).Msg("session refresh failed")
		return resp, nil
	}

	g.logger.Debug().Msg("session refreshed, retrying request")
	return issue()
}

// refreshSession posts to the refresh endpoint directly, outside send, to
// keep the refresh-retry loop from feeding on itself.
func (g *httpServerGateway) refreshSession(ctx context.Context) error {
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", g.ids.Generate()).
		Post(refreshPath)
	if err != nil {
		return fmt.Errorf("refresh request: %w", err)
	}
	return mapHTTPError(resp)
}

func (g *httpServerGateway) StartOTP(ctx context.Context, req models.StartLoginRequest) (models.ChallengeResponse, error) {
	var out models.ChallengeResponse
	if err := g.postJSON(ctx, "/api/auth/start", req, &out); err != nil {
		return models.ChallengeResponse{}, err
	}
	return out, nil
}

func (g *httpServerGateway) VerifyOTP(ctx context.Context, req models.VerifyCodeRequest) (models.SessionResponse, error) {
	var out models.SessionResponse
	if err := g.postJSON(ctx, "/api/auth/verify", req, &out); err != nil {
		return models.SessionResponse{}, err
	}
	return out, nil
}

func (g *httpServerGateway) StartSignature(ctx context.Context, req models.StartLoginRequest) (models.ChallengeResponse, error) {
	var out models.ChallengeResponse
	if err := g.postJSON(ctx, "/api/auth/signature/start", req, &out); err != nil {
		return models.ChallengeResponse{}, err
	}
	return out, nil
}

func (g *httpServerGateway) VerifySignature(ctx context.Context, req models.VerifySignatureRequest) (models.SessionResponse, error) {
	var out models.SessionResponse
	if err := g.postJSON(ctx, "/api/auth/signature/verify", req, &out); err != nil {
		return models.SessionResponse{}, err
	}
	return out, nil
}

func (g *httpServerGateway) Me(ctx context.Context) error {
	resp, err := g.send(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.Get("/api/auth/me")
	})
	if err != nil {
		return fmt.Errorf("session probe request: %w", err)
	}
	return mapHTTPError(resp)
}

func (g *httpServerGateway) Logout(ctx context.Context) error {
	resp, err := g.send(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.Post("/api/auth/logout")
	})
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	return mapHTTPError(resp)
}

func (g *httpServerGateway) WalletRead(ctx context.Context, env models.Envelope) (models.Envelope, error) {
	return g.exchangeEnvelope(ctx, http.MethodPost, "/api/carteira/", env)
}

func (g *httpServerGateway) WalletUpdate(ctx context.Context, env models.Envelope) (models.Envelope, error) {
	return g.exchangeEnvelope(ctx, http.MethodPut, "/api/carteira/update", env)
}

func (g *httpServerGateway) PublicProfile(ctx context.Context, username string) (models.Envelope, error) {
	return g.getEnvelope(ctx, "/api/carteira/user/"+url.PathEscape(username)+"/profile")
}

func (g *httpServerGateway) PublicWallet(ctx context.Context, username string) (models.Envelope, error) {
	return g.getEnvelope(ctx, "/api/carteira/user/"+url.PathEscape(username))
}

func (g *httpServerGateway) RequestVerification(ctx context.Context, env models.Envelope) (models.Envelope, error) {
	return g.exchangeEnvelope(ctx, http.MethodPost, "/api/verify/request-verification", env)
}

func (g *httpServerGateway) GetVerification(ctx context.Context, verificationID string, req models.VerificationDetailRequest) (models.VerificationDetailResponse, error) {
	path := "/api/verify/get-verifications/" + url.PathEscape(verificationID)

	resp, err := g.send(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetHeader("Content-Type", "application/json").
			SetBody(req).
			Put(path)
	})
	if err != nil {
		return models.VerificationDetailResponse{}, fmt.Errorf("get verification request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VerificationDetailResponse{}, err
	}

	var out models.VerificationDetailResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.VerificationDetailResponse{}, fmt.Errorf("decode verification response: %w", err)
	}
	return out, nil
}

func (g *httpServerGateway) GetAllVerifications(ctx context.Context) (models.VerificationListResponse, error) {
	resp, err := g.send(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.Get("/api/verify/get-all-verifications")
	})
	if err != nil {
		return models.VerificationListResponse{}, fmt.Errorf("get all verifications request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VerificationListResponse{}, err
	}

	var out models.VerificationListResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.VerificationListResponse{}, fmt.Errorf("decode verification list: %w", err)
	}
	return out, nil
}

func (g *httpServerGateway) PendingNotifications(ctx context.Context) (models.Envelope, error) {
	return g.getEnvelope(ctx, "/api/notifications/pending")
}

func (g *httpServerGateway) RespondNotification(ctx context.Context, env models.Envelope) (models.Envelope, error) {
	return g.exchangeEnvelope(ctx, http.MethodPost, "/api/notifications/respond", env)
}

func (g *httpServerGateway) RequestCertificate(ctx context.Context, env models.Envelope) (models.Envelope, error) {
	return g.exchangeEnvelope(ctx, http.MethodPost, "/api/notifications/request-certificate", env)
}

func (g *httpServerGateway) RegisterUser(ctx context.Context, reg models.UserRegistration) error {
	return g.postJSON(ctx, "/api/register/user-register", reg, nil)
}

func (g *httpServerGateway) RegisterEC(ctx context.Context, reg models.ECRegistration) error {
	return g.postJSON(ctx, "/api/register/ec-register", reg, nil)
}

func (g *httpServerGateway) SearchUsers(ctx context.Context, query string) ([]models.SearchResult, error) {
	resp, err := g.send(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetQueryParam("search", query).
			Get("/api/user/search")
	})
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var results []models.SearchResult
	if err = json.Unmarshal(resp.Body(), &results); err != nil {
		return nil, fmt.Errorf("decode search results: %w", err)
	}
	return results, nil
}

// postJSON posts body to path and, when out is non-nil, decodes the
// response body into it.
func (g *httpServerGateway) postJSON(ctx context.Context, path string, body, out any) error {
	resp, err := g.send(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetHeader("Content-Type", "application/json").
			SetBody(body).
			Post(path)
	})
	if err != nil {
		return fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// exchangeEnvelope sends a sealed envelope and decodes the sealed reply.
func (g *httpServerGateway) exchangeEnvelope(ctx context.Context, method, path string, env models.Envelope) (models.Envelope, error) {
	resp, err := g.send(ctx, func(r *resty.Request) (*resty.Response, error) {
		r = r.SetHeader("Content-Type", "application/json").SetBody(env)
		if method == http.MethodPut {
			return r.Put(path)
		}
		return r.Post(path)
	})
	if err != nil {
		return models.Envelope{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Envelope{}, err
	}

	return decodeEnvelope(resp.Body(), path)
}

// getEnvelope fetches a sealed envelope with no request body.
func (g *httpServerGateway) getEnvelope(ctx context.Context, path string) (models.Envelope, error) {
	resp, err := g.send(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.Get(path)
	})
	if err != nil {
		return models.Envelope{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Envelope{}, err
	}

	return decodeEnvelope(resp.Body(), path)
}

func decodeEnvelope(body []byte, path string) (models.Envelope, error) {
	var env models.Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return models.Envelope{}, fmt.Errorf("decode %s envelope: %w", path, err)
	}
	return env, nil
}