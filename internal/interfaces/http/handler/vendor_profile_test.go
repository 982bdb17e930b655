package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	vendorapp "github.com/quickvendor/backend/internal/application/vendor"
	"github.com/quickvendor/backend/internal/domain/vendor"
	"github.com/quickvendor/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileRouter(repo *mockProfileRepository, callerID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewVendorProfileHandler(vendorapp.NewProfileService(repo))

	router := gin.New()
	if callerID != uuid.Nil {
		router.Use(func(c *gin.Context) {
			c.Set(middleware.VendorUserIDKey, callerID)
		})
	}
	h.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func TestVendorProfileHandler_Onboard(t *testing.T) {
	userID := uuid.New()
	existing, _ := vendor.NewProfile(userID, "Prior Business")
	existing.Slug = "prior-business"

	tests := []struct {
		name           string
		repo           *mockProfileRepository
		body           string
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "successful onboarding",
			repo:           &mockProfileRepository{},
			body:           `{"business_name":"Ada's Ceramics","whatsapp":"+15551234567"}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "duplicate profile",
			repo:           &mockProfileRepository{profile: existing},
			body:           `{"business_name":"Ada's Ceramics"}`,
			expectedStatus: http.StatusConflict,
			expectedCode:   "ERR_ALREADY_EXISTS",
		},
		{
			name:           "business name too short",
			repo:           &mockProfileRepository{},
			body:           `{"business_name":"ab"}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newProfileRouter(tt.repo, userID)

			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/api/v1/vendors/me/profile", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedCode != "" {
				var resp struct {
					Error struct {
						Code string `json:"code"`
					} `json:"error"`
				}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedCode, resp.Error.Code)
			}

			if tt.expectedStatus == http.StatusCreated {
				var resp struct {
					Success bool                      `json:"success"`
					Data    vendorapp.ProfileResponse `json:"data"`
				}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.True(t, resp.Success)
				assert.Equal(t, userID, resp.Data.UserID)
				assert.NotEmpty(t, resp.Data.Slug)
			}
		})
	}
}

func TestVendorProfileHandler_GetOwn(t *testing.T) {
	userID := uuid.New()
	profile, _ := vendor.NewProfile(userID, "Ada's Ceramics")
	profile.Slug = "adas-ceramics"

	router := newProfileRouter(&mockProfileRepository{profile: profile}, userID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/vendors/me/profile", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data vendorapp.ProfileResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "adas-ceramics", resp.Data.Slug)
	assert.Equal(t, "Ada's Ceramics", resp.Data.BusinessName)
}

func TestVendorProfileHandler_GetOwn_NoIdentity(t *testing.T) {
	router := newProfileRouter(&mockProfileRepository{}, uuid.Nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/vendors/me/profile", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVendorProfileHandler_GetOwn_Deactivated(t *testing.T) {
	userID := uuid.New()
	profile, _ := vendor.NewProfile(userID, "Ada's Ceramics")
	profile.IsActive = false

	router := newProfileRouter(&mockProfileRepository{profile: profile}, userID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/vendors/me/profile", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVendorProfileHandler_UpdateOwn(t *testing.T) {
	userID := uuid.New()
	profile, _ := vendor.NewProfile(userID, "Ada's Ceramics")
	profile.Slug = "adas-ceramics"

	router := newProfileRouter(&mockProfileRepository{profile: profile}, userID)

	w := httptest.NewRecorder()
	body := `{"whatsapp":"+15559876543","bank_name":"First National"}`
	req := httptest.NewRequest("PUT", "/api/v1/vendors/me/profile", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data vendorapp.ProfileResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "First National", resp.Data.BankName)
	assert.Equal(t, "adas-ceramics", resp.Data.Slug)
}

func TestVendorProfileHandler_Deactivate(t *testing.T) {
	userID := uuid.New()
	profile, _ := vendor.NewProfile(userID, "Ada's Ceramics")
	profile.Slug = "adas-ceramics"

	router := newProfileRouter(&mockProfileRepository{profile: profile}, userID)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/api/v1/vendors/me/profile", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.False(t, profile.IsActive)
}

func TestVendorProfileHandler_List(t *testing.T) {
	profile, _ := vendor.NewProfile(uuid.New(), "Ada's Ceramics")
	profile.Slug = "adas-ceramics"

	router := newProfileRouter(&mockProfileRepository{profile: profile}, uuid.Nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/v1/vendors", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    []vendorapp.ProfileResponse `json:"data"`
		Meta    struct {
			Total    int64 `json:"total"`
			Page     int   `json:"page"`
			PageSize int   `json:"page_size"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, int64(1), resp.Meta.Total)
	assert.Equal(t, 1, resp.Meta.Page)
}
