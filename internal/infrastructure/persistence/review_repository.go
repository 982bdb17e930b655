package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/quickvendor/backend/internal/domain/catalog"
	"github.com/quickvendor/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormReviewRepository implements catalog.ReviewRepository using GORM
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GormReviewRepository
func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// FindActiveByProduct lists a product's approved reviews, newest first
func (r *GormReviewRepository) FindActiveByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]catalog.ProductReview, error) {
	var reviews []catalog.ProductReview
	query := r.db.WithContext(ctx).
		Model(&catalog.ProductReview{}).
		Where("product_id = ? AND is_active = ?", productID, true).
		Order("created_at DESC")

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if err := query.Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// CountActiveByProduct counts a product's approved reviews
func (r *GormReviewRepository) CountActiveByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.ProductReview{}).
		Where("product_id = ? AND is_active = ?", productID, true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a review
func (r *GormReviewRepository) Save(ctx context.Context, review *catalog.ProductReview) error {
	return translateError(r.db.WithContext(ctx).Save(review).Error)
}

// Ensure GormReviewRepository implements ReviewRepository
var _ catalog.ReviewRepository = (*GormReviewRepository)(nil)
