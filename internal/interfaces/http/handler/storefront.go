package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/quickvendor/backend/internal/application/catalog"
	"github.com/quickvendor/backend/internal/application/storefront"
	vendorapp "github.com/quickvendor/backend/internal/application/vendor"
)

// StorefrontHandler serves the public storefront API. Every route resolves
// a vendor by slug; unknown slugs and anything outside the vendor's public
// catalog surface as 404.
type StorefrontHandler struct {
	BaseHandler
	storefrontService *storefront.Service
	profileService    *vendorapp.ProfileService
}

// NewStorefrontHandler creates a new StorefrontHandler
func NewStorefrontHandler(storefrontService *storefront.Service, profileService *vendorapp.ProfileService) *StorefrontHandler {
	return &StorefrontHandler{
		storefrontService: storefrontService,
		profileService:    profileService,
	}
}

// RegisterRoutes registers the storefront routes
func (h *StorefrontHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/featured", h.Featured)

	store := rg.Group("/store/:slug")
	{
		store.GET("", h.GetVendor)
		store.GET("/products", h.ListProducts)
		store.GET("/products/:id", h.GetProduct)
		store.GET("/products/:id/reviews", h.ListReviews)
		store.POST("/products/:id/reviews", h.SubmitReview)
		store.GET("/collections", h.ListCollections)
		store.GET("/collections/:id", h.GetCollection)
	}
}

// Featured returns the featured products across all vendors
func (h *StorefrontHandler) Featured(c *gin.Context) {
	products, err := h.storefrontService.FeaturedProducts(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, products)
}

// GetVendor returns the public profile of an active vendor by slug
func (h *StorefrontHandler) GetVendor(c *gin.Context) {
	profile, err := h.profileService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, profile)
}

// ListProducts returns one page of a vendor's available products
func (h *StorefrontHandler) ListProducts(c *gin.Context) {
	page := storefront.ParsePage(c.Query("page"))

	result, err := h.storefrontService.ListProducts(c.Request.Context(), c.Param("slug"), page)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// GetProduct returns one available product from a vendor's storefront
func (h *StorefrontHandler) GetProduct(c *gin.Context) {
	productID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.NotFound(c, "Product not found")
		return
	}

	product, err := h.storefrontService.GetProduct(c.Request.Context(), c.Param("slug"), productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// ListCollections returns a vendor's public collections
func (h *StorefrontHandler) ListCollections(c *gin.Context) {
	result, err := h.storefrontService.ListCollections(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// GetCollection returns one public collection with its available products
func (h *StorefrontHandler) GetCollection(c *gin.Context) {
	collectionID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.NotFound(c, "Collection not found")
		return
	}

	collection, err := h.storefrontService.GetCollection(c.Request.Context(), c.Param("slug"), collectionID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, collection)
}

// ListReviews returns one page of a product's active reviews
func (h *StorefrontHandler) ListReviews(c *gin.Context) {
	productID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.NotFound(c, "Product not found")
		return
	}

	page := storefront.ParsePage(c.Query("page"))

	result, err := h.storefrontService.ListReviews(c.Request.Context(), c.Param("slug"), productID, page)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// SubmitReview creates a review on an available product
func (h *StorefrontHandler) SubmitReview(c *gin.Context) {
	productID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.NotFound(c, "Product not found")
		return
	}

	var req catalogapp.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	review, err := h.storefrontService.SubmitReview(c.Request.Context(), c.Param("slug"), productID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, review)
}
