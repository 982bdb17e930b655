package persistence

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/quickvendor/backend/internal/domain/catalog"
	"github.com/quickvendor/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormCollectionRepository implements catalog.CollectionRepository using
// GORM
type GormCollectionRepository struct {
	db *gorm.DB
}

// NewGormCollectionRepository creates a new GormCollectionRepository
func NewGormCollectionRepository(db *gorm.DB) *GormCollectionRepository {
	return &GormCollectionRepository{db: db}
}

// FindByIDForVendor finds a collection by ID within a vendor's scope
func (r *GormCollectionRepository) FindByIDForVendor(ctx context.Context, vendorID, id uuid.UUID) (*catalog.Collection, error) {
	var collection catalog.Collection
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ? AND id = ?", vendorID, id).
		First(&collection).Error; err != nil {
		return nil, translateError(err)
	}
	return &collection, nil
}

// FindAllForVendor finds a vendor's collections matching the filter
func (r *GormCollectionRepository) FindAllForVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]catalog.Collection, error) {
	var collections []catalog.Collection
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&catalog.Collection{}).Where("vendor_id = ?", vendorID),
		filter,
	)

	if err := query.Find(&collections).Error; err != nil {
		return nil, err
	}
	return collections, nil
}

// CountForVendor counts a vendor's collections
func (r *GormCollectionRepository) CountForVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&catalog.Collection{}).Where("vendor_id = ?", vendorID)
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a collection. A (vendor, name) conflict surfaces
// as shared.ErrAlreadyExists.
func (r *GormCollectionRepository) Save(ctx context.Context, collection *catalog.Collection) error {
	// Omit the association so membership changes stay explicit through
	// AddProducts/RemoveProduct.
	return translateError(r.db.WithContext(ctx).Omit("Products").Save(collection).Error)
}

// DeleteForVendor deletes a collection within a vendor's scope. Membership
// rows cascade at the database level; member products are untouched.
func (r *GormCollectionRepository) DeleteForVendor(ctx context.Context, vendorID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&catalog.Collection{}, "vendor_id = ? AND id = ?", vendorID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByIDForVendorWithProducts loads a collection and its members
func (r *GormCollectionRepository) FindByIDForVendorWithProducts(ctx context.Context, vendorID, id uuid.UUID) (*catalog.Collection, error) {
	var collection catalog.Collection
	if err := r.db.WithContext(ctx).
		Preload("Products").
		Where("vendor_id = ? AND id = ?", vendorID, id).
		First(&collection).Error; err != nil {
		return nil, translateError(err)
	}
	return &collection, nil
}

// FindPublicForVendor lists a vendor's public collections
func (r *GormCollectionRepository) FindPublicForVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]catalog.Collection, error) {
	var collections []catalog.Collection
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&catalog.Collection{}).
			Where("vendor_id = ? AND is_public = ?", vendorID, true),
		filter,
	)

	if err := query.Find(&collections).Error; err != nil {
		return nil, err
	}
	return collections, nil
}

// FindPublicByIDForVendorWithProducts loads one public collection with its
// members for the storefront
func (r *GormCollectionRepository) FindPublicByIDForVendorWithProducts(ctx context.Context, vendorID, id uuid.UUID) (*catalog.Collection, error) {
	var collection catalog.Collection
	if err := r.db.WithContext(ctx).
		Preload("Products").
		Where("vendor_id = ? AND id = ? AND is_public = ?", vendorID, id, true).
		First(&collection).Error; err != nil {
		return nil, translateError(err)
	}
	return &collection, nil
}

// CountPublicForVendor counts a vendor's public collections
func (r *GormCollectionRepository) CountPublicForVendor(ctx context.Context, vendorID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.Collection{}).
		Where("vendor_id = ? AND is_public = ?", vendorID, true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// NameExists checks whether the vendor already has a collection with this
// name, excluding excludeID
func (r *GormCollectionRepository) NameExists(ctx context.Context, vendorID uuid.UUID, name string, excludeID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.Collection{}).
		Where("vendor_id = ? AND name = ? AND id <> ?", vendorID, name, excludeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountProducts counts the members of a collection
func (r *GormCollectionRepository) CountProducts(ctx context.Context, collectionID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Table("collection_products").
		Where("collection_id = ?", collectionID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// AddProducts appends products inside one transaction so a failure leaves
// no partial membership
func (r *GormCollectionRepository) AddProducts(ctx context.Context, collection *catalog.Collection, products []catalog.Product) error {
	if len(products) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return translateError(tx.Model(collection).Association("Products").Append(&products))
	})
}

// RemoveProduct removes a single product from the collection
func (r *GormCollectionRepository) RemoveProduct(ctx context.Context, collection *catalog.Collection, productID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(collection).
		Association("Products").
		Delete(&catalog.Product{BaseEntity: shared.BaseEntity{ID: productID}})
}

func (r *GormCollectionRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}

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

// Ensure GormCollectionRepository implements CollectionRepository
var _ catalog.CollectionRepository = (*GormCollectionRepository)(nil)
