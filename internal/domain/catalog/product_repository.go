package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/quickvendor/backend/internal/domain/shared"
)

// ProductRepository defines persistence operations for products.
// All scoped lookups treat another vendor's product as missing.
type ProductRepository interface {
	shared.VendorScopedRepository[Product]

	// FindByIDsForVendor loads the subset of ids owned by the vendor.
	// Missing or foreign ids are simply absent from the result.
	FindByIDsForVendor(ctx context.Context, vendorID uuid.UUID, ids []uuid.UUID) ([]Product, error)

	// FindAvailableForVendor lists the vendor's purchasable products for
	// the public storefront
	FindAvailableForVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]Product, error)

	// CountAvailableForVendor counts the vendor's purchasable products
	CountAvailableForVendor(ctx context.Context, vendorID uuid.UUID) (int64, error)

	// FindAvailableByID fetches one purchasable product scoped to a vendor
	FindAvailableByID(ctx context.Context, vendorID, id uuid.UUID) (*Product, error)

	// FindFeatured lists available, in-stock products across all vendors,
	// newest first, capped at limit
	FindFeatured(ctx context.Context, limit int) ([]Product, error)

	// ExistsForVendor reports whether the product id belongs to the vendor
	ExistsForVendor(ctx context.Context, vendorID, id uuid.UUID) (bool, error)
}
