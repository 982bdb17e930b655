package platform

import (
	"context"

	"github.com/quickvendor/backend/internal/domain/shared"
)

// APIKeyRepository defines persistence operations for API keys
type APIKeyRepository interface {
	FindAllActive(ctx context.Context, filter shared.Filter) ([]APIKey, error)
	CountActive(ctx context.Context) (int64, error)
	Save(ctx context.Context, key *APIKey) error
}

// ConfigRepository defines persistence operations for configuration entries
type ConfigRepository interface {
	FindAllActive(ctx context.Context, filter shared.Filter) ([]ConfigEntry, error)
	FindByKey(ctx context.Context, key string) (*ConfigEntry, error)
	CountActive(ctx context.Context) (int64, error)
	Save(ctx context.Context, entry *ConfigEntry) error
}

// RequestLogRepository defines persistence operations for request logs
type RequestLogRepository interface {
	Create(ctx context.Context, log *RequestLog) error
	Count(ctx context.Context) (int64, error)
	CountByStatusRange(ctx context.Context, min, max int) (int64, error)
}
