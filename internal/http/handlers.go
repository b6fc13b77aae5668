package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sessionfs/sessionfs/internal/monitoring"
	"github.com/sessionfs/sessionfs/internal/registry"
	"github.com/sessionfs/sessionfs/internal/service"
	"github.com/sessionfs/sessionfs/internal/store"
	"github.com/sessionfs/sessionfs/internal/types"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	registry *registry.Manager
	store    *store.Store
	services *service.Registry
	metrics  *monitoring.Metrics
}

// NewHandlers creates a new handler set
func NewHandlers(
	reg *registry.Manager,
	st *store.Store,
	services *service.Registry,
	metrics *monitoring.Metrics,
) *Handlers {
	return &Handlers{
		registry: reg,
		store:    st,
		services: services,
		metrics:  metrics,
	}
}

// Root handles basic status
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "SessionFS",
		"scheme":  h.store.Scheme(),
	})
}

// Health handles detailed health check
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"registry":         h.registry.Stats(),
		"service_registry": h.services.Stats(),
	})
}

// ListSessions returns all session records in insertion order
func (h *Handlers) ListSessions(c *gin.Context) {
	records := h.registry.List()

	c.JSON(http.StatusOK, gin.H{
		"sessions": records,
		"stats":    h.registry.Stats(),
	})
}

// StatSession returns metadata for one session resource
func (h *Handlers) StatSession(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "key query parameter required"})
		return
	}

	meta, err := h.store.Stat(key)
	if err != nil {
		h.metrics.RecordStoreOp("stat", "not_found")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	h.metrics.RecordStoreOp("stat", "ok")
	c.JSON(http.StatusOK, gin.H{"key": key, "metadata": meta})
}

// ReadSession returns synthesized content for one session resource
func (h *Handlers) ReadSession(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "key query parameter required"})
		return
	}

	data, err := h.store.Read(key)
	if err != nil {
		h.metrics.RecordStoreOp("read", "not_found")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	h.metrics.RecordStoreOp("read", "ok")
	c.Data(http.StatusOK, "text/plain; charset=utf-8", data)
}

// RenameSession drives the two-phase rename protocol: the store emits a
// moved notification, the shell's listener applies the registry mutation,
// and the registry's change notification tells subscribers to re-render.
func (h *Handlers) RenameSession(c *gin.Context) {
	var req types.RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, ok := h.registry.Get(req.OldKey); !ok {
		h.metrics.RecordStoreOp("rename", "not_found")
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found: " + req.OldKey})
		return
	}

	// Phase one: file-layer rename. Dispatch is synchronous, so the
	// registry listener has run by the time this returns.
	h.store.Rename(req.OldKey, req.NewKey)

	// The listener refuses a rename whose target key is already taken.
	// The old key surviving means nothing was applied; checking the new
	// key instead would match the colliding record.
	if _, ok := h.registry.Get(req.OldKey); ok && req.OldKey != req.NewKey {
		h.metrics.RecordStoreOp("rename", "conflict")
		c.JSON(http.StatusConflict, gin.H{"error": "rename was not applied: " + req.NewKey})
		return
	}

	h.metrics.RecordStoreOp("rename", "ok")
	h.metrics.RenamesTotal.Inc()
	c.JSON(http.StatusOK, gin.H{
		"renamed": true,
		"old_key": req.OldKey,
		"new_key": req.NewKey,
	})
}

// ListServices lists all registered service providers
func (h *Handlers) ListServices(c *gin.Context) {
	categoryStr := c.Query("category")

	var category *types.Category
	if categoryStr != "" {
		cat := types.Category(categoryStr)
		category = &cat
	}

	c.JSON(http.StatusOK, gin.H{
		"services": h.services.List(category),
		"stats":    h.services.Stats(),
	})
}

// DiscoverServices discovers relevant services for a query
func (h *Handlers) DiscoverServices(c *gin.Context) {
	var req types.DiscoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":    req.Query,
		"services": h.services.Discover(req.Query, 5),
	})
}

// ExecuteService executes a service tool
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.services.Execute(c.Request.Context(), req.ToolID, req.Params, nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
