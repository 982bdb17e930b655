package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/quickvendor/backend/internal/application/catalog"
)

// CategoryHandler handles platform category API endpoints. Browsing is
// public; creation belongs to the system surface.
type CategoryHandler struct {
	BaseHandler
	categoryService *catalogapp.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *catalogapp.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// RegisterRoutes registers the category routes
func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/categories", h.List)
	rg.GET("/categories/:id", h.GetByID)
	rg.POST("/system/categories", h.Create)
}

// List returns all active categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.ListActive(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, categories)
}

// GetByID returns one category
func (h *CategoryHandler) GetByID(c *gin.Context) {
	categoryID, err := parseUUIDParam(c, "id")
	if err != nil {
		h.NotFound(c, "Category not found")
		return
	}

	category, err := h.categoryService.GetByID(c.Request.Context(), categoryID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, category)
}

// Create adds a platform category
func (h *CategoryHandler) Create(c *gin.Context) {
	var req catalogapp.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, category)
}
