package platform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAPIKey(t *testing.T) {
	t.Run("creates key with valid input", func(t *testing.T) {
		key, err := NewAPIKey("Paystack production", "$2a$10$hash", ServicePayment)

		require.NoError(t, err)
		assert.Equal(t, "Paystack production", key.Name)
		assert.True(t, key.IsActive)
	})

	t.Run("rejects unknown service", func(t *testing.T) {
		_, err := NewAPIKey("Mystery", "$2a$10$hash", ServiceType("carrier-pigeon"))
		assert.Error(t, err)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewAPIKey("  ", "$2a$10$hash", ServiceSMS)
		assert.Error(t, err)
	})

	t.Run("rejects empty hash", func(t *testing.T) {
		_, err := NewAPIKey("Paystack", "", ServicePayment)
		assert.Error(t, err)
	})
}

func TestServiceType_IsValid(t *testing.T) {
	for _, s := range []ServiceType{ServicePayment, ServiceShipping, ServiceSMS, ServiceEmail, ServiceAnalytics} {
		assert.True(t, s.IsValid())
	}
	assert.False(t, ServiceType("").IsValid())
	assert.False(t, ServiceType("ftp").IsValid())
}

func TestNewRequestLog(t *testing.T) {
	log := NewRequestLog("/api/v1/products", "GET", 200, 125*time.Millisecond, "curl/8.0", "10.0.0.1")

	assert.Equal(t, "/api/v1/products", log.Endpoint)
	assert.InDelta(t, 0.125, log.ResponseTime, 0.0001)
	assert.True(t, log.IsSuccess())

	failed := NewRequestLog("/api/v1/products", "POST", 422, time.Millisecond, "", "")
	assert.False(t, failed.IsSuccess())
}

func TestNewConfigEntry(t *testing.T) {
	entry, err := NewConfigEntry("maintenance_mode", "off", "Toggles the storefront")
	require.NoError(t, err)
	assert.True(t, entry.IsActive)

	entry.UpdateValue("on")
	assert.Equal(t, "on", entry.Value)

	_, err = NewConfigEntry("", "x", "")
	assert.Error(t, err)
}
