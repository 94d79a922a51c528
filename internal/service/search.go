// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"strings"

	"github.com/bitsofme/bitsofme-client/internal/adapter"
	"github.com/bitsofme/bitsofme-client/internal/logger"
	"github.com/bitsofme/bitsofme-client/models"
)

// SearchService looks other users up by username substring.
type SearchService struct {
	gateway adapter.ServerGateway
	logger  *logger.Logger
}

func NewSearchService(gateway adapter.ServerGateway, log *logger.Logger) *SearchService {
	return &SearchService{
		gateway: gateway,
		logger:  log,
	}
}

// Search returns users matching query. An empty or whitespace-only query
// short-circuits to an empty result without touching the network.
func (s *SearchService) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return []models.SearchResult{}, nil
	}

	results, err := s.gateway.SearchUsers(ctx, query)
	if err != nil {
		return nil, mapGatewayError(err)
	}
	return results, nil
}