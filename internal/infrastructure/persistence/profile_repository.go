package persistence

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/quickvendor/backend/internal/domain/shared"
	"github.com/quickvendor/backend/internal/domain/vendor"
	"gorm.io/gorm"
)

// GormProfileRepository implements vendor.ProfileRepository using GORM
type GormProfileRepository struct {
	db *gorm.DB
}

// NewGormProfileRepository creates a new GormProfileRepository
func NewGormProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

// FindByUserID finds a profile by its external user ID regardless of the
// active flag
func (r *GormProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*vendor.VendorProfile, error) {
	var profile vendor.VendorProfile
	if err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error; err != nil {
		return nil, translateError(err)
	}
	return &profile, nil
}

// FindActiveByUserID finds an active profile by its external user ID
func (r *GormProfileRepository) FindActiveByUserID(ctx context.Context, userID uuid.UUID) (*vendor.VendorProfile, error) {
	var profile vendor.VendorProfile
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		First(&profile).Error; err != nil {
		return nil, translateError(err)
	}
	return &profile, nil
}

// FindActiveBySlug resolves a storefront slug to an active profile
func (r *GormProfileRepository) FindActiveBySlug(ctx context.Context, slug string) (*vendor.VendorProfile, error) {
	var profile vendor.VendorProfile
	if err := r.db.WithContext(ctx).
		Where("slug = ? AND is_active = ?", slug, true).
		First(&profile).Error; err != nil {
		return nil, translateError(err)
	}
	return &profile, nil
}

// FindAllActive finds all active profiles matching the filter
func (r *GormProfileRepository) FindAllActive(ctx context.Context, filter shared.Filter) ([]vendor.VendorProfile, error) {
	var profiles []vendor.VendorProfile
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&vendor.VendorProfile{}).Where("is_active = ?", true),
		filter,
	)

	if err := query.Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

// CountActive counts active profiles matching the filter
func (r *GormProfileRepository) CountActive(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&vendor.VendorProfile{}).Where("is_active = ?", true)
	query = r.applySearch(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SlugExists checks whether the slug is taken by any profile other than
// excludeUserID
func (r *GormProfileRepository) SlugExists(ctx context.Context, slug string, excludeUserID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&vendor.VendorProfile{}).
		Where("slug = ? AND user_id <> ?", slug, excludeUserID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a profile. A slug collision surfaces as
// shared.ErrAlreadyExists.
func (r *GormProfileRepository) Save(ctx context.Context, profile *vendor.VendorProfile) error {
	return translateError(r.db.WithContext(ctx).Save(profile).Error)
}

func (r *GormProfileRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applySearch(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("created_at DESC")
	}

	return query
}

func (r *GormProfileRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("business_name ILIKE ? OR slug ILIKE ?", pattern, pattern)
	}
	return query
}

// Ensure GormProfileRepository implements ProfileRepository
var _ vendor.ProfileRepository = (*GormProfileRepository)(nil)
