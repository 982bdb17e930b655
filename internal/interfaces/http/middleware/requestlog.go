package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quickvendor/backend/internal/domain/platform"
	"go.uber.org/zap"
)

const requestLogWriteTimeout = 5 * time.Second

// RequestAudit persists one row per handled request for the platform
// traffic statistics. Writes happen off the request goroutine so a slow
// insert never delays the response.
func RequestAudit(repo platform.RequestLogRepository, logger *zap.Logger, skipPaths []string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, path := range skipPaths {
		skip[path] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, skipped := skip[c.Request.URL.Path]; skipped {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		entry := platform.NewRequestLog(
			c.FullPath(),
			c.Request.Method,
			c.Writer.Status(),
			time.Since(start),
			c.Request.UserAgent(),
			c.ClientIP(),
		)
		if entry.Endpoint == "" {
			entry.Endpoint = c.Request.URL.Path
		}

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), requestLogWriteTimeout)
			defer cancel()

			if err := repo.Create(ctx, entry); err != nil {
				logger.Warn("Failed to persist request log",
					zap.String("endpoint", entry.Endpoint),
					zap.Error(err),
				)
			}
		}()
	}
}
