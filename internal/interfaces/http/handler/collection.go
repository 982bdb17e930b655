package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/quickvendor/backend/internal/application/catalog"
	"github.com/quickvendor/backend/internal/interfaces/http/middleware"
)

// CollectionHandler handles vendor collection API endpoints
type CollectionHandler struct {
	BaseHandler
	collectionService *catalogapp.CollectionService
}

// NewCollectionHandler creates a new CollectionHandler
func NewCollectionHandler(collectionService *catalogapp.CollectionService) *CollectionHandler {
	return &CollectionHandler{collectionService: collectionService}
}

// RegisterRoutes registers the collection routes
func (h *CollectionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	collections := rg.Group("/vendors/me/collections", middleware.RequireVendor())
	{
		collections.POST("", h.Create)
		collections.GET("", h.List)
		collections.GET("/:id", h.GetByID)
		collections.PUT("/:id", h.Update)
		collections.DELETE("/:id", h.Delete)
		collections.POST("/:id/products", h.AddProducts)
		collections.DELETE("/:id/products/:productId", h.RemoveProduct)
	}
}

// Create groups products into a new collection
func (h *CollectionHandler) Create(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor identity required")
		return
	}

	var req catalogapp.CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	collection, err := h.collectionService.Create(c.Request.Context(), vendorID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, collection)
}

// List returns the caller's collections
func (h *CollectionHandler) List(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor identity required")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	collections, total, err := h.collectionService.List(c.Request.Context(), vendorID, page, pageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	h.SuccessWithMeta(c, collections, total, page, pageSize)
}

// GetByID returns one collection with its member products
func (h *CollectionHandler) GetByID(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor identity required")
		return
	}

	collectionID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.NotFound(c, "Collection not found")
		return
	}

	collection, err := h.collectionService.GetByID(c.Request.Context(), vendorID, collectionID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, collection)
}

// Update applies a partial update to a collection
func (h *CollectionHandler) Update(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor identity required")
		return
	}

	collectionID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.NotFound(c, "Collection not found")
		return
	}

	var req catalogapp.UpdateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	collection, err := h.collectionService.Update(c.Request.Context(), vendorID, collectionID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, collection)
}

// Delete removes a collection. Member products stay in the catalog.
func (h *CollectionHandler) Delete(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor identity required")
		return
	}

	collectionID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.NotFound(c, "Collection not found")
		return
	}

	if err := h.collectionService.Delete(c.Request.Context(), vendorID, collectionID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// AddProducts adds a batch of the caller's products to a collection
func (h *CollectionHandler) AddProducts(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor identity required")
		return
	}

	collectionID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.NotFound(c, "Collection not found")
		return
	}

	var req catalogapp.AddProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	collection, err := h.collectionService.AddProducts(c.Request.Context(), vendorID, collectionID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, collection)
}

// RemoveProduct removes a single product from a collection
func (h *CollectionHandler) RemoveProduct(c *gin.Context) {
	vendorID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor identity required")
		return
	}

	collectionID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.NotFound(c, "Collection not found")
		return
	}

	productID, err := parseUUIDParam(c, "productId")
	if err != nil {
		h.NotFound(c, "Product not found")
		return
	}

	if err := h.collectionService.RemoveProduct(c.Request.Context(), vendorID, collectionID, productID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
