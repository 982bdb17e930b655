package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/quickvendor/backend/internal/domain/shared"
)

// ReviewRepository defines persistence operations for product reviews
type ReviewRepository interface {
	FindActiveByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]ProductReview, error)
	CountActiveByProduct(ctx context.Context, productID uuid.UUID) (int64, error)
	Save(ctx context.Context, review *ProductReview) error
}
