package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/quickvendor/backend/internal/domain/catalog"
	"github.com/quickvendor/backend/internal/domain/shared"
)

// ProductService handles vendor-side product operations. Every lookup is
// scoped to the caller's vendor; a product owned by someone else is
// indistinguishable from a missing one.
type ProductService struct {
	productRepo catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// Create creates a new product for the vendor
func (s *ProductService) Create(ctx context.Context, vendorID uuid.UUID, req CreateProductRequest) (*ProductResponse, error) {
	product, err := catalog.NewProduct(vendorID, req.Name, req.Price, req.Quantity)
	if err != nil {
		return nil, err
	}

	if req.Description != "" {
		if err := product.Update(req.Name, req.Description); err != nil {
			return nil, err
		}
	}
	if req.ImageURL != "" {
		if err := product.SetImageURL(req.ImageURL); err != nil {
			return nil, err
		}
	}
	if req.IsAvailable != nil {
		product.SetAvailability(*req.IsAvailable)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product owned by the vendor
func (s *ProductService) GetByID(ctx context.Context, vendorID, productID uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDForVendor(ctx, vendorID, productID)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// List retrieves the vendor's products with filtering and pagination
func (s *ProductService) List(ctx context.Context, vendorID uuid.UUID, filter ProductListFilter) ([]ProductResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.Available != nil {
		domainFilter.Filters["is_available"] = *filter.Available
	}

	products, err := s.productRepo.FindAllForVendor(ctx, vendorID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.productRepo.CountForVendor(ctx, vendorID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToProductResponses(products), total, nil
}

// Update applies a partial update to a product owned by the vendor
func (s *ProductService) Update(ctx context.Context, vendorID, productID uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDForVendor(ctx, vendorID, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil || req.Description != nil {
		name := product.Name
		description := product.Description
		if req.Name != nil {
			name = *req.Name
		}
		if req.Description != nil {
			description = *req.Description
		}
		if err := product.Update(name, description); err != nil {
			return nil, err
		}
	}

	if req.Price != nil {
		if err := product.SetPrice(*req.Price); err != nil {
			return nil, err
		}
	}
	if req.Quantity != nil {
		if err := product.SetQuantity(*req.Quantity); err != nil {
			return nil, err
		}
	}
	if req.ImageURL != nil {
		if err := product.SetImageURL(*req.ImageURL); err != nil {
			return nil, err
		}
	}
	if req.IsAvailable != nil {
		product.SetAvailability(*req.IsAvailable)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Delete removes a product owned by the vendor
func (s *ProductService) Delete(ctx context.Context, vendorID, productID uuid.UUID) error {
	exists, err := s.productRepo.ExistsForVendor(ctx, vendorID, productID)
	if err != nil {
		return err
	}
	if !exists {
		return shared.ErrNotFound
	}

	return s.productRepo.DeleteForVendor(ctx, vendorID, productID)
}

// SetAvailability toggles whether a product is purchasable
func (s *ProductService) SetAvailability(ctx context.Context, vendorID, productID uuid.UUID, available bool) (*ProductResponse, error) {
	product, err := s.productRepo.FindByIDForVendor(ctx, vendorID, productID)
	if err != nil {
		return nil, err
	}

	product.SetAvailability(available)
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}
