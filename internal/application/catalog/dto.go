package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/quickvendor/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required,min=3,max=200"`
	Description string          `json:"description" binding:"max=2000"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Quantity    int             `json:"quantity" binding:"min=0"`
	ImageURL    string          `json:"image_url" binding:"omitempty,max=500"`
	IsAvailable *bool           `json:"is_available"`
}

// UpdateProductRequest represents a partial update to a product
type UpdateProductRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=3,max=200"`
	Description *string          `json:"description" binding:"omitempty,max=2000"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    *int             `json:"quantity" binding:"omitempty,min=0"`
	ImageURL    *string          `json:"image_url" binding:"omitempty,max=500"`
	IsAvailable *bool            `json:"is_available"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	VendorID    uuid.UUID       `json:"vendor_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	ImageURL    string          `json:"image_url"`
	IsAvailable bool            `json:"is_available"`
	InStock     bool            `json:"in_stock"`
	StockStatus string          `json:"stock_status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListFilter represents filter options for the vendor product list
type ProductListFilter struct {
	Search    string `form:"search"`
	Available *bool  `form:"available"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy   string `form:"order_by" binding:"omitempty,oneof=created_at name price quantity"`
	OrderDir  string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// CreateCollectionRequest represents a request to create a collection
type CreateCollectionRequest struct {
	Name        string      `json:"name" binding:"required,min=2,max=100"`
	Description string      `json:"description" binding:"max=2000"`
	IsPublic    *bool       `json:"is_public"`
	ProductIDs  []uuid.UUID `json:"product_ids"`
}

// UpdateCollectionRequest represents a partial update to a collection
type UpdateCollectionRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=100"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	IsPublic    *bool   `json:"is_public"`
}

// AddProductsRequest represents a request to add products to a collection
type AddProductsRequest struct {
	ProductIDs []uuid.UUID `json:"product_ids" binding:"required,min=1"`
}

// CollectionResponse represents a collection in API responses
type CollectionResponse struct {
	ID           uuid.UUID         `json:"id"`
	VendorID     uuid.UUID         `json:"vendor_id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	IsPublic     bool              `json:"is_public"`
	ProductCount int64             `json:"product_count"`
	Products     []ProductResponse `json:"products,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Name        string     `json:"name" binding:"required,min=1,max=100"`
	Description string     `json:"description" binding:"max=2000"`
	ImageURL    string     `json:"image_url" binding:"omitempty,max=500"`
	ParentID    *uuid.UUID `json:"parent_id"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	ImageURL    string     `json:"image_url"`
	ParentID    *uuid.UUID `json:"parent_id"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
}

// CreateReviewRequest represents a public review submission
type CreateReviewRequest struct {
	CustomerName  string `json:"customer_name" binding:"required,min=1,max=100"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	Rating        int    `json:"rating" binding:"required,min=1,max=5"`
	Title         string `json:"title" binding:"required,min=1,max=200"`
	Comment       string `json:"comment" binding:"max=5000"`
}

// ReviewResponse represents a product review in API responses
type ReviewResponse struct {
	ID           uuid.UUID `json:"id"`
	ProductID    uuid.UUID `json:"product_id"`
	CustomerName string    `json:"customer_name"`
	Rating       int       `json:"rating"`
	Title        string    `json:"title"`
	Comment      string    `json:"comment"`
	IsVerified   bool      `json:"is_verified"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		VendorID:    p.VendorID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		ImageURL:    p.ImageURL,
		IsAvailable: p.IsAvailable,
		InStock:     p.IsInStock(),
		StockStatus: string(p.StockStatus()),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductResponses converts a slice of products
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}

// ToCollectionResponse converts a domain Collection to CollectionResponse.
// Loaded members are included; productCount covers the full membership even
// when members were not loaded.
func ToCollectionResponse(c *catalog.Collection, productCount int64, withProducts bool) CollectionResponse {
	response := CollectionResponse{
		ID:           c.ID,
		VendorID:     c.VendorID,
		Name:         c.Name,
		Description:  c.Description,
		IsPublic:     c.IsPublic,
		ProductCount: productCount,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
	if withProducts {
		response.Products = ToProductResponses(c.Products)
	}
	return response
}

// ToCategoryResponse converts a domain Category to CategoryResponse
func ToCategoryResponse(c *catalog.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		ParentID:    c.ParentID,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
}

// ToCategoryResponses converts a slice of categories
func ToCategoryResponses(categories []catalog.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = ToCategoryResponse(&categories[i])
	}
	return responses
}

// ToReviewResponse converts a domain ProductReview to ReviewResponse.
// Customer email stays private.
func ToReviewResponse(r *catalog.ProductReview) ReviewResponse {
	return ReviewResponse{
		ID:           r.ID,
		ProductID:    r.ProductID,
		CustomerName: r.CustomerName,
		Rating:       r.Rating,
		Title:        r.Title,
		Comment:      r.Comment,
		IsVerified:   r.IsVerified,
		CreatedAt:    r.CreatedAt,
	}
}

// ToReviewResponses converts a slice of reviews
func ToReviewResponses(reviews []catalog.ProductReview) []ReviewResponse {
	responses := make([]ReviewResponse, len(reviews))
	for i := range reviews {
		responses[i] = ToReviewResponse(&reviews[i])
	}
	return responses
}
