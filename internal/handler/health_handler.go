package handler

import (
	"database/sql"
	"net/http"

	"github.com/labstack/echo/v4"

	"roteiro/backend/internal/cache"
)

type HealthHandler struct {
	db    *sql.DB
	cache *cache.Cache
}

type healthResponse struct {
	Status     string `json:"status"`
	Database   string `json:"database"`
	CacheItems int    `json:"cacheItems"`
}

func NewHealthHandler(db *sql.DB, responseCache *cache.Cache) *HealthHandler {
	return &HealthHandler{db: db, cache: responseCache}
}

func (h *HealthHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/health", h.Get)
}

func (h *HealthHandler) Get(c echo.Context) error {
	resp := healthResponse{Status: "ok", Database: "ok"}
	status := http.StatusOK

	if err := h.db.PingContext(c.Request().Context()); err != nil {
		resp.Status = "degraded"
		resp.Database = "error"
		status = http.StatusServiceUnavailable
	}

	if h.cache != nil {
		stats := h.cache.Stats()
		for _, n := range stats.Items {
			resp.CacheItems += n
		}
	}
	return c.JSON(status, resp)
}
