package platform

import (
	"context"
	"math"

	"github.com/quickvendor/backend/internal/domain/platform"
)

// StatsService aggregates request-log and credential counts for the
// monitoring endpoint
type StatsService struct {
	logRepo    platform.RequestLogRepository
	keyRepo    platform.APIKeyRepository
	configRepo platform.ConfigRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(
	logRepo platform.RequestLogRepository,
	keyRepo platform.APIKeyRepository,
	configRepo platform.ConfigRepository,
) *StatsService {
	return &StatsService{
		logRepo:    logRepo,
		keyRepo:    keyRepo,
		configRepo: configRepo,
	}
}

// Snapshot computes the current monitoring stats. Success rate is the
// share of 2xx responses as a percentage, rounded to two decimals; with no
// traffic it reports zero.
func (s *StatsService) Snapshot(ctx context.Context) (*StatsResponse, error) {
	total, err := s.logRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	successful, err := s.logRepo.CountByStatusRange(ctx, 200, 299)
	if err != nil {
		return nil, err
	}

	activeKeys, err := s.keyRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	activeConfigs, err := s.configRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	var successRate float64
	if total > 0 {
		successRate = math.Round(float64(successful)/float64(total)*10000) / 100
	}

	return &StatsResponse{
		TotalRequests:      total,
		SuccessfulRequests: successful,
		SuccessRate:        successRate,
		ActiveAPIKeys:      activeKeys,
		ActiveConfigs:      activeConfigs,
	}, nil
}
