package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/quickvendor/backend/internal/domain/shared"
)

// CollectionRepository defines persistence operations for collections
type CollectionRepository interface {
	shared.VendorScopedRepository[Collection]

	// FindByIDForVendorWithProducts loads a collection and its members
	FindByIDForVendorWithProducts(ctx context.Context, vendorID, id uuid.UUID) (*Collection, error)

	// FindPublicForVendor lists a vendor's public collections
	FindPublicForVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]Collection, error)

	// FindPublicByIDForVendorWithProducts loads one public collection with
	// its members for the storefront. Private, foreign and unknown
	// collections all resolve to shared.ErrNotFound.
	FindPublicByIDForVendorWithProducts(ctx context.Context, vendorID, id uuid.UUID) (*Collection, error)

	// CountPublicForVendor counts a vendor's public collections
	CountPublicForVendor(ctx context.Context, vendorID uuid.UUID) (int64, error)

	// NameExists reports whether the vendor already has a collection with
	// this name, excluding excludeID
	NameExists(ctx context.Context, vendorID uuid.UUID, name string, excludeID uuid.UUID) (bool, error)

	// CountProducts counts the members of a collection
	CountProducts(ctx context.Context, collectionID uuid.UUID) (int64, error)

	// AddProducts appends products to the collection inside one
	// transaction; on any error no membership row is written
	AddProducts(ctx context.Context, collection *Collection, products []Product) error

	// RemoveProduct removes a single product from the collection
	RemoveProduct(ctx context.Context, collection *Collection, productID uuid.UUID) error
}
