package platform

import (
	"time"

	"github.com/google/uuid"
	"github.com/quickvendor/backend/internal/domain/platform"
)

// CreateAPIKeyRequest represents a request to provision an integration key
type CreateAPIKeyRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=100"`
	Service string `json:"service" binding:"required,oneof=payment shipping sms email analytics"`
}

// APIKeyResponse represents an API key in listings. The hash never leaves
// the system.
type APIKeyResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Service   string    `json:"service"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatedAPIKeyResponse carries the raw secret exactly once, in the
// creation response
type CreatedAPIKeyResponse struct {
	APIKeyResponse
	Key string `json:"key"`
}

// UpsertConfigRequest represents a request to set a configuration entry
type UpsertConfigRequest struct {
	Key         string `json:"key" binding:"required,min=1,max=100"`
	Value       string `json:"value" binding:"required"`
	Description string `json:"description" binding:"max=2000"`
}

// ConfigResponse represents a configuration entry in API responses
type ConfigResponse struct {
	ID          uuid.UUID `json:"id"`
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StatsResponse is the system monitoring snapshot
type StatsResponse struct {
	TotalRequests      int64   `json:"total_requests"`
	SuccessfulRequests int64   `json:"successful_requests"`
	SuccessRate        float64 `json:"success_rate"`
	ActiveAPIKeys      int64   `json:"active_api_keys"`
	ActiveConfigs      int64   `json:"active_configs"`
}

// ToAPIKeyResponse converts a domain APIKey to APIKeyResponse
func ToAPIKeyResponse(k *platform.APIKey) APIKeyResponse {
	return APIKeyResponse{
		ID:        k.ID,
		Name:      k.Name,
		Service:   string(k.Service),
		IsActive:  k.IsActive,
		CreatedAt: k.CreatedAt,
	}
}

// ToAPIKeyResponses converts a slice of API keys
func ToAPIKeyResponses(keys []platform.APIKey) []APIKeyResponse {
	responses := make([]APIKeyResponse, len(keys))
	for i := range keys {
		responses[i] = ToAPIKeyResponse(&keys[i])
	}
	return responses
}

// ToConfigResponse converts a domain ConfigEntry to ConfigResponse
func ToConfigResponse(c *platform.ConfigEntry) ConfigResponse {
	return ConfigResponse{
		ID:          c.ID,
		Key:         c.Key,
		Value:       c.Value,
		Description: c.Description,
		IsActive:    c.IsActive,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToConfigResponses converts a slice of configuration entries
func ToConfigResponses(entries []platform.ConfigEntry) []ConfigResponse {
	responses := make([]ConfigResponse, len(entries))
	for i := range entries {
		responses[i] = ToConfigResponse(&entries[i])
	}
	return responses
}
