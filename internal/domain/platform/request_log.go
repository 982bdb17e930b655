package platform

import (
	"time"

	"github.com/quickvendor/backend/internal/domain/shared"
)

// RequestLog records one handled API request for monitoring and the stats
// endpoint. Rows are append-only.
type RequestLog struct {
	shared.BaseEntity
	Endpoint     string  `gorm:"type:varchar(255);not null"`
	Method       string  `gorm:"type:varchar(10);not null"`
	StatusCode   int     `gorm:"not null"`
	ResponseTime float64 `gorm:"not null"` // seconds
	UserAgent    string  `gorm:"type:text"`
	IPAddress    string  `gorm:"type:varchar(45)"`
}

// TableName returns the table name for GORM
func (RequestLog) TableName() string {
	return "api_request_logs"
}

// NewRequestLog creates a log entry for a completed request
func NewRequestLog(endpoint, method string, statusCode int, duration time.Duration, userAgent, ipAddress string) *RequestLog {
	return &RequestLog{
		BaseEntity:   shared.NewBaseEntity(),
		Endpoint:     endpoint,
		Method:       method,
		StatusCode:   statusCode,
		ResponseTime: duration.Seconds(),
		UserAgent:    userAgent,
		IPAddress:    ipAddress,
	}
}

// IsSuccess reports whether the logged request completed with a 2xx status
func (l *RequestLog) IsSuccess() bool {
	return l.StatusCode >= 200 && l.StatusCode <= 299
}
