package handler

import (
	"github.com/gin-gonic/gin"
	vendorapp "github.com/quickvendor/backend/internal/application/vendor"
	"github.com/quickvendor/backend/internal/interfaces/http/middleware"
)

// VendorProfileHandler handles vendor profile API endpoints
type VendorProfileHandler struct {
	BaseHandler
	profileService *vendorapp.ProfileService
}

// NewVendorProfileHandler creates a new VendorProfileHandler
func NewVendorProfileHandler(profileService *vendorapp.ProfileService) *VendorProfileHandler {
	return &VendorProfileHandler{profileService: profileService}
}

// RegisterRoutes registers the profile routes
func (h *VendorProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/vendors", h.List)

	me := rg.Group("/vendors/me", middleware.RequireVendor())
	{
		me.POST("/profile", h.Onboard)
		me.GET("/profile", h.GetOwn)
		me.PUT("/profile", h.Update)
		me.DELETE("/profile", h.Deactivate)
	}
}

// Onboard creates the caller's vendor profile
func (h *VendorProfileHandler) Onboard(c *gin.Context) {
	userID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor identity required")
		return
	}

	var req vendorapp.OnboardProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	profile, err := h.profileService.Onboard(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, profile)
}

// GetOwn returns the caller's vendor profile
func (h *VendorProfileHandler) GetOwn(c *gin.Context) {
	userID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor identity required")
		return
	}

	profile, err := h.profileService.GetOwn(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, profile)
}

// Update applies a partial update to the caller's profile
func (h *VendorProfileHandler) Update(c *gin.Context) {
	userID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor identity required")
		return
	}

	var req vendorapp.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	profile, err := h.profileService.UpdateOwn(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, profile)
}

// Deactivate takes the caller's storefront offline
func (h *VendorProfileHandler) Deactivate(c *gin.Context) {
	userID, err := getVendorID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor identity required")
		return
	}

	if err := h.profileService.Deactivate(c.Request.Context(), userID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// List returns active vendor profiles
func (h *VendorProfileHandler) List(c *gin.Context) {
	var filter vendorapp.ProfileListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	profiles, total, err := h.profileService.ListActive(c.Request.Context(), filter)
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
	h.SuccessWithMeta(c, profiles, total, page, pageSize)
}
