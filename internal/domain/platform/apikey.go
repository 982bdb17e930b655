package platform

import (
	"strings"

	"github.com/quickvendor/backend/internal/domain/shared"
)

// ServiceType identifies the third-party integration an API key is for
type ServiceType string

const (
	ServicePayment   ServiceType = "payment"
	ServiceShipping  ServiceType = "shipping"
	ServiceSMS       ServiceType = "sms"
	ServiceEmail     ServiceType = "email"
	ServiceAnalytics ServiceType = "analytics"
)

// IsValid reports whether the service type is one of the known integrations
func (s ServiceType) IsValid() bool {
	switch s {
	case ServicePayment, ServiceShipping, ServiceSMS, ServiceEmail, ServiceAnalytics:
		return true
	}
	return false
}

// APIKey holds a named integration credential. Only a bcrypt hash of the
// secret is stored; the raw secret leaves the system exactly once, at
// creation time.
type APIKey struct {
	shared.BaseEntity
	Name     string      `gorm:"type:varchar(100);not null"`
	KeyHash  string      `gorm:"type:varchar(255);not null;uniqueIndex"`
	Service  ServiceType `gorm:"type:varchar(50);not null"`
	IsActive bool        `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (APIKey) TableName() string {
	return "api_keys"
}

// NewAPIKey creates a new API key record from an already-hashed secret
func NewAPIKey(name string, keyHash string, service ServiceType) (*APIKey, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "API key name is required")
	}
	if len(trimmed) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "API key name cannot exceed 100 characters")
	}
	if keyHash == "" {
		return nil, shared.NewDomainError("INVALID_KEY", "API key hash is required")
	}
	if !service.IsValid() {
		return nil, shared.NewDomainError("INVALID_SERVICE", "Unknown service type")
	}

	return &APIKey{
		BaseEntity: shared.NewBaseEntity(),
		Name:       trimmed,
		KeyHash:    keyHash,
		Service:    service,
		IsActive:   true,
	}, nil
}

// Revoke deactivates the key
func (k *APIKey) Revoke() {
	k.IsActive = false
	k.Touch()
}
