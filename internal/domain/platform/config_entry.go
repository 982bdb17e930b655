package platform

import (
	"strings"

	"github.com/quickvendor/backend/internal/domain/shared"
)

// ConfigEntry is a system-wide configuration setting stored as a key/value
// pair
type ConfigEntry struct {
	shared.BaseEntity
	Key         string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Value       string `gorm:"type:text;not null"`
	Description string `gorm:"type:text"`
	IsActive    bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (ConfigEntry) TableName() string {
	return "system_configurations"
}

// NewConfigEntry creates a new configuration entry
func NewConfigEntry(key, value, description string) (*ConfigEntry, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return nil, shared.NewDomainError("INVALID_KEY", "Configuration key is required")
	}
	if len(trimmed) > 100 {
		return nil, shared.NewDomainError("INVALID_KEY", "Configuration key cannot exceed 100 characters")
	}

	return &ConfigEntry{
		BaseEntity:  shared.NewBaseEntity(),
		Key:         trimmed,
		Value:       value,
		Description: description,
		IsActive:    true,
	}, nil
}

// UpdateValue replaces the stored value
func (c *ConfigEntry) UpdateValue(value string) {
	c.Value = value
	c.Touch()
}
