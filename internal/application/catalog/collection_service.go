package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/quickvendor/backend/internal/domain/catalog"
	"github.com/quickvendor/backend/internal/domain/shared"
)

// CollectionService handles vendor-side collection operations
type CollectionService struct {
	collectionRepo catalog.CollectionRepository
	productRepo    catalog.ProductRepository
}

// NewCollectionService creates a new CollectionService
func NewCollectionService(collectionRepo catalog.CollectionRepository, productRepo catalog.ProductRepository) *CollectionService {
	return &CollectionService{
		collectionRepo: collectionRepo,
		productRepo:    productRepo,
	}
}

// Create creates a new collection for the vendor, optionally seeding it
// with an initial set of the vendor's products
func (s *CollectionService) Create(ctx context.Context, vendorID uuid.UUID, req CreateCollectionRequest) (*CollectionResponse, error) {
	collection, err := catalog.NewCollection(vendorID, req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	if req.IsPublic != nil {
		collection.SetVisibility(*req.IsPublic)
	}

	taken, err := s.collectionRepo.NameExists(ctx, vendorID, collection.Name, collection.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A collection with this name already exists")
	}

	// Resolve the seed batch before persisting anything so a rejected
	// batch never leaves an empty collection behind.
	var seed []catalog.Product
	if len(req.ProductIDs) > 0 {
		seed, err = s.resolveProducts(ctx, vendorID, collection, req.ProductIDs)
		if err != nil {
			return nil, err
		}
	}

	if err := s.collectionRepo.Save(ctx, collection); err != nil {
		return nil, err
	}

	if len(seed) > 0 {
		if err := s.collectionRepo.AddProducts(ctx, collection, seed); err != nil {
			return nil, err
		}
	}

	count, err := s.collectionRepo.CountProducts(ctx, collection.ID)
	if err != nil {
		return nil, err
	}

	response := ToCollectionResponse(collection, count, false)
	return &response, nil
}

// GetByID retrieves a collection owned by the vendor, with its members
func (s *CollectionService) GetByID(ctx context.Context, vendorID, collectionID uuid.UUID) (*CollectionResponse, error) {
	collection, err := s.collectionRepo.FindByIDForVendorWithProducts(ctx, vendorID, collectionID)
	if err != nil {
		return nil, err
	}

	response := ToCollectionResponse(collection, int64(len(collection.Products)), true)
	return &response, nil
}

// List retrieves the vendor's collections with pagination
func (s *CollectionService) List(ctx context.Context, vendorID uuid.UUID, page, pageSize int) ([]CollectionResponse, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}

	filter := shared.Filter{
		Page:     page,
		PageSize: pageSize,
		OrderBy:  "created_at",
		OrderDir: "desc",
		Filters:  make(map[string]interface{}),
	}

	collections, err := s.collectionRepo.FindAllForVendor(ctx, vendorID, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.collectionRepo.CountForVendor(ctx, vendorID, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CollectionResponse, len(collections))
	for i := range collections {
		count, err := s.collectionRepo.CountProducts(ctx, collections[i].ID)
		if err != nil {
			return nil, 0, err
		}
		responses[i] = ToCollectionResponse(&collections[i], count, false)
	}

	return responses, total, nil
}

// Update applies a partial update to a collection owned by the vendor
func (s *CollectionService) Update(ctx context.Context, vendorID, collectionID uuid.UUID, req UpdateCollectionRequest) (*CollectionResponse, error) {
	collection, err := s.collectionRepo.FindByIDForVendor(ctx, vendorID, collectionID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil || req.Description != nil {
		name := collection.Name
		description := collection.Description
		if req.Name != nil {
			name = *req.Name
		}
		if req.Description != nil {
			description = *req.Description
		}
		if name != collection.Name {
			taken, err := s.collectionRepo.NameExists(ctx, vendorID, name, collection.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, shared.NewDomainError("ALREADY_EXISTS", "A collection with this name already exists")
			}
		}
		if err := collection.Update(name, description); err != nil {
			return nil, err
		}
	}

	if req.IsPublic != nil {
		collection.SetVisibility(*req.IsPublic)
	}

	if err := s.collectionRepo.Save(ctx, collection); err != nil {
		return nil, err
	}

	count, err := s.collectionRepo.CountProducts(ctx, collection.ID)
	if err != nil {
		return nil, err
	}

	response := ToCollectionResponse(collection, count, false)
	return &response, nil
}

// Delete removes a collection owned by the vendor. Member products are
// untouched; only the grouping disappears.
func (s *CollectionService) Delete(ctx context.Context, vendorID, collectionID uuid.UUID) error {
	_, err := s.collectionRepo.FindByIDForVendor(ctx, vendorID, collectionID)
	if err != nil {
		return err
	}

	return s.collectionRepo.DeleteForVendor(ctx, vendorID, collectionID)
}

// AddProducts adds a batch of the vendor's products to a collection. The
// batch is all-or-nothing: one missing or foreign product rejects the
// whole request and nothing is written.
func (s *CollectionService) AddProducts(ctx context.Context, vendorID, collectionID uuid.UUID, req AddProductsRequest) (*CollectionResponse, error) {
	collection, err := s.collectionRepo.FindByIDForVendor(ctx, vendorID, collectionID)
	if err != nil {
		return nil, err
	}

	if err := s.addProducts(ctx, vendorID, collection, req.ProductIDs); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, vendorID, collectionID)
}

// RemoveProduct removes one product from a collection owned by the vendor
func (s *CollectionService) RemoveProduct(ctx context.Context, vendorID, collectionID, productID uuid.UUID) error {
	collection, err := s.collectionRepo.FindByIDForVendor(ctx, vendorID, collectionID)
	if err != nil {
		return err
	}

	return s.collectionRepo.RemoveProduct(ctx, collection, productID)
}

// addProducts resolves the requested ids within the vendor's scope and
// appends them in one transaction.
func (s *CollectionService) addProducts(ctx context.Context, vendorID uuid.UUID, collection *catalog.Collection, productIDs []uuid.UUID) error {
	products, err := s.resolveProducts(ctx, vendorID, collection, productIDs)
	if err != nil {
		return err
	}

	return s.collectionRepo.AddProducts(ctx, collection, products)
}

// resolveProducts loads the requested ids within the vendor's scope. Ids the
// vendor does not own never load, so a short result means the batch contains
// a missing or foreign product and the whole batch is rejected.
func (s *CollectionService) resolveProducts(ctx context.Context, vendorID uuid.UUID, collection *catalog.Collection, productIDs []uuid.UUID) ([]catalog.Product, error) {
	products, err := s.productRepo.FindByIDsForVendor(ctx, vendorID, productIDs)
	if err != nil {
		return nil, err
	}
	if len(products) != len(productIDs) {
		return nil, shared.NewDomainError("INVALID_PRODUCTS",
			"One or more products do not exist or do not belong to this vendor")
	}
	if err := collection.ValidateOwnership(products); err != nil {
		return nil, err
	}

	return products, nil
}
