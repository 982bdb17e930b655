package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quickvendor/backend/internal/interfaces/http/dto"
)

// BodyLimit rejects request bodies over maxBytes. Product and review
// payloads are small; anything larger is a client mistake, not a use case.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, dto.NewErrorResponse(
				dto.ErrCodePayloadTooLarge,
				"Request body exceeds maximum allowed size",
			))
			return
		}

		// cap streaming requests that omit Content-Length
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
