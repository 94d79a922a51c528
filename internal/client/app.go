// Package client assembles the service graph into a runnable application.
package client

import (
	"context"

	"github.com/bitsofme/bitsofme-client/internal/logger"
	"github.com/bitsofme/bitsofme-client/internal/service"
)

// App is the running client: the wired services plus startup behaviour.
type App struct {
	services *service.Services
	logger   *logger.Logger
}

func NewApp(services *service.Services, log *logger.Logger) *App {
	return &App{
		services: services,
		logger:   log,
	}
}

// Run probes any restored session so the caller starts in the right
// state: authenticated if the server still honours the cookies, idle
// otherwise. A failed probe is not an error and clears nothing.
func (a *App) Run(ctx context.Context) error {
	if _, ok := a.services.Credentials.Secret(); ok {
		if a.services.Auth.Probe(ctx) {
			a.logger.Info().Msg("restored session is active")
		} else {
			a.logger.Info().Msg("restored session is stale, login required")
		}
	} else {
		a.logger.Info().Msg("no stored session, login required")
	}

	return nil
}

// Services exposes the wired service graph to embedding callers.
func (a *App) Services() *service.Services {
	return a.services
}
