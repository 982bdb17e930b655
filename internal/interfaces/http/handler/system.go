package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	platformapp "github.com/quickvendor/backend/internal/application/platform"
	"github.com/quickvendor/backend/internal/infrastructure/persistence"
)

// SystemHandler serves the platform operations API: stats, configuration
// and API key management, plus the health endpoint.
type SystemHandler struct {
	BaseHandler
	statsService  *platformapp.StatsService
	configService *platformapp.ConfigService
	keyService    *platformapp.APIKeyService
	db            *persistence.Database
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(
	statsService *platformapp.StatsService,
	configService *platformapp.ConfigService,
	keyService *platformapp.APIKeyService,
	db *persistence.Database,
) *SystemHandler {
	return &SystemHandler{
		statsService:  statsService,
		configService: configService,
		keyService:    keyService,
		db:            db,
	}
}

// RegisterRoutes registers the system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	system := rg.Group("/system")
	{
		system.GET("/health", h.Health)
		system.GET("/stats", h.Stats)
		system.GET("/config", h.ListConfig)
		system.PUT("/config", h.UpsertConfig)
		system.GET("/keys", h.ListKeys)
		system.POST("/keys", h.CreateKey)
	}
}

// Health reports service liveness and database pool state
func (h *SystemHandler) Health(c *gin.Context) {
	status := "ok"
	code := http.StatusOK
	if err := h.db.Ping(); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	payload := gin.H{"status": status}
	if stats, err := h.db.Stats(); err == nil {
		payload["database"] = stats
	}

	c.JSON(code, payload)
}

// Stats returns platform-wide counters
func (h *SystemHandler) Stats(c *gin.Context) {
	stats, err := h.statsService.Snapshot(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, stats)
}

// ListConfig returns the active configuration entries
func (h *SystemHandler) ListConfig(c *gin.Context) {
	entries, err := h.configService.ListActive(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, entries)
}

// UpsertConfig creates or updates a configuration entry by key
func (h *SystemHandler) UpsertConfig(c *gin.Context) {
	var req platformapp.UpsertConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	entry, err := h.configService.Upsert(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, entry)
}

// ListKeys returns the active API keys without secrets
func (h *SystemHandler) ListKeys(c *gin.Context) {
	keys, err := h.keyService.ListActive(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, keys)
}

// CreateKey issues a new API key. The plaintext secret is only returned here.
func (h *SystemHandler) CreateKey(c *gin.Context) {
	var req platformapp.CreateAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	key, err := h.keyService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, key)
}
