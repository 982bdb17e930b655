package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/quickvendor/backend/internal/application/catalog"
	"github.com/quickvendor/backend/internal/interfaces/http/middleware"
)

// ProductHandler handles vendor product API endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// SetAvailabilityRequest toggles whether a product is purchasable
type SetAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

// RegisterRoutes registers the product routes
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/vendors/me/products", middleware.RequireVendor())
	{
		products.POST("", h.Create)
		products.GET("", h.List)
		products.GET("/:id", h.GetByID)
		products.PUT("/:id", h.Update)
		products.DELETE("/:id", h.Delete)
		products.PATCH("/:id/availability", h.SetAvailability)
	}
}

// Create adds a product to the caller's catalog
func (h *ProductHandler) Create(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor identity required")
		return
	}

	var req catalogapp.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	product, err := h.productService.Create(c.Request.Context(), vendorID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, product)
}

// List returns the caller's products
func (h *ProductHandler) List(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor identity required")
		return
	}

	var filter catalogapp.ProductListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	products, total, err := h.productService.List(c.Request.Context(), vendorID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	h.SuccessWithMeta(c, products, total, page, pageSize)
}

// GetByID returns one of the caller's products
func (h *ProductHandler) GetByID(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor identity required")
		return
	}

	productID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.NotFound(c, "Product not found")
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), vendorID, productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// Update applies a partial update to one of the caller's products
func (h *ProductHandler) Update(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor identity required")
		return
	}

	productID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.NotFound(c, "Product not found")
		return
	}

	var req catalogapp.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	product, err := h.productService.Update(c.Request.Context(), vendorID, productID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// Delete removes one of the caller's products
func (h *ProductHandler) Delete(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor identity required")
		return
	}

	productID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.NotFound(c, "Product not found")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), vendorID, productID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// SetAvailability toggles a product's storefront visibility
func (h *ProductHandler) SetAvailability(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor identity required")
		return
	}

	productID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.NotFound(c, "Product not found")
		return
	}

	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	product, err := h.productService.SetAvailability(c.Request.Context(), vendorID, productID, *req.IsAvailable)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}
