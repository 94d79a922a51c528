// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bitsofme/bitsofme-client/internal/adapter"
	"github.com/bitsofme/bitsofme-client/internal/integrity"
	"github.com/bitsofme/bitsofme-client/internal/logger"
	"github.com/bitsofme/bitsofme-client/models"
)

// NotificationService handles the wallet owner's side of pending
// requests: listing them and answering with an explicit accept or reject.
// Status never changes any other way on the client.
type NotificationService struct {
	gateway adapter.ServerGateway
	codec   *integrity.Codec
	logger  *logger.Logger
}

func NewNotificationService(gateway adapter.ServerGateway, codec *integrity.Codec, log *logger.Logger) *NotificationService {
	return &NotificationService{
		gateway: gateway,
		codec:   codec,
		logger:  log,
	}
}

// Pending lists the notifications awaiting the caller's decision. The
// response envelope is verified before the list is returned.
func (s *NotificationService) Pending(ctx context.Context) ([]models.Notification, error) {
	respEnv, err := s.gateway.PendingNotifications(ctx)
	if err != nil {
		return nil, mapGatewayError(err)
	}

	notifications, err := integrity.Open[[]models.Notification](s.codec, respEnv)
	if err != nil {
		s.logger.Error().Err(err).Msg("pending notifications rejected")
		return nil, err
	}
	return notifications, nil
}

// Respond answers a pending notification. Accepting requires the master
// key (the server mutates the wallet on the owner's behalf); rejecting
// must not carry one.
func (s *NotificationService) Respond(ctx context.Context, notificationID string, action models.NotificationAction, masterKey string) error {
	if notificationID == "" {
		return fmt.Errorf("%w: notification id is required", ErrValidation)
	}

	switch action {
	case models.ActionAccept:
		if masterKey == "" {
			return fmt.Errorf("%w: accepting requires the master key", ErrValidation)
		}
	case models.ActionReject:
		masterKey = ""
	default:
		return fmt.Errorf("%w: unknown action %q", ErrValidation, action)
	}

	env, err := integrity.Seal(s.codec, models.NotificationResponse{
		NotificationID: notificationID,
		Action:         action,
		MasterKey:      masterKey,
	})
	if err != nil {
		return err
	}

	respEnv, err := s.gateway.RespondNotification(ctx, env)
	if err != nil {
		return mapGatewayError(err)
	}

	if _, err = integrity.Open[json.RawMessage](s.codec, respEnv); err != nil {
		return err
	}

	s.logger.Info().Str("action", string(action)).Msg("notification answered")
	return nil
}