package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/quickvendor/backend/internal/infrastructure/identity"
	"github.com/quickvendor/backend/internal/infrastructure/logger"
	"github.com/quickvendor/backend/internal/interfaces/http/dto"
)

// VendorUserIDKey is the gin context key holding the resolved vendor user ID
const VendorUserIDKey = "vendor_user_id"

// VendorIdentity resolves the caller's external user ID and stores it in
// the request context. Requests without a resolvable identity pass through;
// RequireVendor gates the routes that need one.
func VendorIdentity(resolver identity.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := resolver.Resolve(c.Request)
		if err == nil {
			c.Set(VendorUserIDKey, userID)

			// Tag the request context so downstream query logs carry
			// the calling vendor.
			ctx, enriched := logger.WithVendorID(c.Request.Context(), logger.FromContext(c.Request.Context()), userID.String())
			c.Request = c.Request.WithContext(ctx)
			c.Set("logger", enriched)
		} else if !errors.Is(err, identity.ErrNoIdentity) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				dto.ErrCodeUnauthorized,
				"Vendor identity could not be resolved",
			))
			return
		}
		c.Next()
	}
}

// RequireVendor rejects requests that did not resolve a vendor identity
func RequireVendor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetVendorUserID(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				dto.ErrCodeUnauthorized,
				"Vendor identity required",
			))
			return
		}
		c.Next()
	}
}

// GetVendorUserID returns the resolved vendor user ID from the context
func GetVendorUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(VendorUserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}
