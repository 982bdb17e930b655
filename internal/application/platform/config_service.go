package platform

import (
	"context"
	"errors"

	"github.com/quickvendor/backend/internal/domain/platform"
	"github.com/quickvendor/backend/internal/domain/shared"
)

// ConfigService manages system-wide configuration entries
type ConfigService struct {
	configRepo platform.ConfigRepository
}

// NewConfigService creates a new ConfigService
func NewConfigService(configRepo platform.ConfigRepository) *ConfigService {
	return &ConfigService{configRepo: configRepo}
}

// ListActive lists active configuration entries
func (s *ConfigService) ListActive(ctx context.Context) ([]ConfigResponse, error) {
	entries, err := s.configRepo.FindAllActive(ctx, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}
	return ToConfigResponses(entries), nil
}

// Upsert creates a configuration entry or replaces the value of an
// existing one
func (s *ConfigService) Upsert(ctx context.Context, req UpsertConfigRequest) (*ConfigResponse, error) {
	entry, err := s.configRepo.FindByKey(ctx, req.Key)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		entry, err = platform.NewConfigEntry(req.Key, req.Value, req.Description)
		if err != nil {
			return nil, err
		}
	} else {
		entry.UpdateValue(req.Value)
		if req.Description != "" {
			entry.Description = req.Description
		}
	}

	if err := s.configRepo.Save(ctx, entry); err != nil {
		return nil, err
	}

	response := ToConfigResponse(entry)
	return &response, nil
}
