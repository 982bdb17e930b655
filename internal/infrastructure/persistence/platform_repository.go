package persistence

import (
	"context"

	"github.com/quickvendor/backend/internal/domain/platform"
	"github.com/quickvendor/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormAPIKeyRepository implements platform.APIKeyRepository using GORM
type GormAPIKeyRepository struct {
	db *gorm.DB
}

// NewGormAPIKeyRepository creates a new GormAPIKeyRepository
func NewGormAPIKeyRepository(db *gorm.DB) *GormAPIKeyRepository {
	return &GormAPIKeyRepository{db: db}
}

// FindAllActive lists active API keys, newest first
func (r *GormAPIKeyRepository) FindAllActive(ctx context.Context, filter shared.Filter) ([]platform.APIKey, error) {
	var keys []platform.APIKey
	query := r.db.WithContext(ctx).
		Model(&platform.APIKey{}).
		Where("is_active = ?", true).
		Order("created_at DESC")

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if err := query.Find(&keys).Error; err != nil {
		return nil, err
	}
	return keys, nil
}

// CountActive counts active API keys
func (r *GormAPIKeyRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&platform.APIKey{}).
		Where("is_active = ?", true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates an API key
func (r *GormAPIKeyRepository) Save(ctx context.Context, key *platform.APIKey) error {
	return translateError(r.db.WithContext(ctx).Save(key).Error)
}

// GormConfigRepository implements platform.ConfigRepository using GORM
type GormConfigRepository struct {
	db *gorm.DB
}

// NewGormConfigRepository creates a new GormConfigRepository
func NewGormConfigRepository(db *gorm.DB) *GormConfigRepository {
	return &GormConfigRepository{db: db}
}

// FindAllActive lists active configuration entries ordered by key
func (r *GormConfigRepository) FindAllActive(ctx context.Context, filter shared.Filter) ([]platform.ConfigEntry, error) {
	var entries []platform.ConfigEntry
	query := r.db.WithContext(ctx).
		Model(&platform.ConfigEntry{}).
		Where("is_active = ?", true).
		Order("key ASC")

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// FindByKey finds a configuration entry by its key
func (r *GormConfigRepository) FindByKey(ctx context.Context, key string) (*platform.ConfigEntry, error) {
	var entry platform.ConfigEntry
	if err := r.db.WithContext(ctx).First(&entry, "key = ?", key).Error; err != nil {
		return nil, translateError(err)
	}
	return &entry, nil
}

// CountActive counts active configuration entries
func (r *GormConfigRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&platform.ConfigEntry{}).
		Where("is_active = ?", true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a configuration entry. A key conflict surfaces as
// shared.ErrAlreadyExists.
func (r *GormConfigRepository) Save(ctx context.Context, entry *platform.ConfigEntry) error {
	return translateError(r.db.WithContext(ctx).Save(entry).Error)
}

// GormRequestLogRepository implements platform.RequestLogRepository using GORM
type GormRequestLogRepository struct {
	db *gorm.DB
}

// NewGormRequestLogRepository creates a new GormRequestLogRepository
func NewGormRequestLogRepository(db *gorm.DB) *GormRequestLogRepository {
	return &GormRequestLogRepository{db: db}
}

// Create inserts a request log entry
func (r *GormRequestLogRepository) Create(ctx context.Context, log *platform.RequestLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// Count counts all logged requests
func (r *GormRequestLogRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&platform.RequestLog{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatusRange counts logged requests whose status code falls in
// [min, max]
func (r *GormRequestLogRepository) CountByStatusRange(ctx context.Context, min, max int) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&platform.RequestLog{}).
		Where("status_code BETWEEN ? AND ?", min, max).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure implementations satisfy their interfaces
var (
	_ platform.APIKeyRepository     = (*GormAPIKeyRepository)(nil)
	_ platform.ConfigRepository     = (*GormConfigRepository)(nil)
	_ platform.RequestLogRepository = (*GormRequestLogRepository)(nil)
)
