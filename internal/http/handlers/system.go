package handlers

import (
	"context"
	"net/http"
	"time"

	"travel/internal/repositories"

	"github.com/gin-gonic/gin"
)

// SystemHandler serves liveness, storage and route introspection endpoints.
type SystemHandler struct {
	Store *repositories.Store
	// Engine is set by the router once all routes are mounted.
	Engine *gin.Engine
}

func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "travel api running"})
}

func (h *SystemHandler) DBCheck(c *gin.Context) {
	if h.Store == nil || h.Store.DB == nil {
		respondError(c, http.StatusInternalServerError, "db_unavailable", "database not connected", nil)
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if err := h.Store.Ping(ctx); err != nil {
		respondError(c, http.StatusInternalServerError, "db_unavailable", "database ping failed: "+err.Error(), nil)
		return
	}
	if missing := h.Store.MissingTables(ctx); len(missing) > 0 {
		respondError(c, http.StatusInternalServerError, "schema_incomplete", "database schema incomplete", gin.H{"missing_tables": missing})
		return
	}
	var count int
	if err := h.Store.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM hotels`).Scan(&count); err != nil {
		respondError(c, http.StatusInternalServerError, "db_query_failed", "database query failed: "+err.Error(), nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK", "driver": h.Store.Dialect.Driver, "hotels_in_db": count})
}

func (h *SystemHandler) Routes(c *gin.Context) {
	if h.Engine == nil {
		respondError(c, http.StatusServiceUnavailable, "router_not_ready", "router not ready", nil)
		return
	}

	routes := h.Engine.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method":  rt.Method,
			"path":    rt.Path,
			"handler": rt.Handler,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
