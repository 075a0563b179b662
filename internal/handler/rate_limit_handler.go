package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"roteiro/backend/internal/model"
	"roteiro/backend/internal/service"
)

type RateLimitHandler struct {
	service service.RateLimitService
}

type rateLimitConfigRequest struct {
	MaxRequests   int `json:"maxRequests"`
	WindowSeconds int `json:"windowSeconds"`
}

type rateLimitConfigResponse struct {
	Endpoint      string `json:"endpoint"`
	MaxRequests   int    `json:"maxRequests"`
	WindowSeconds int    `json:"windowSeconds"`
	UpdatedAt     string `json:"updatedAt"`
}

type rateLimitConfigListResponse struct {
	Items []rateLimitConfigResponse `json:"items"`
}

func NewRateLimitHandler(service service.RateLimitService) *RateLimitHandler {
	return &RateLimitHandler{service: service}
}

func (h *RateLimitHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/rate-limits", h.List)
	g.GET("/rate-limits/:endpoint", h.Get)
	g.PUT("/rate-limits/:endpoint", h.Set)
	g.DELETE("/rate-limits/:endpoint", h.Delete)
}

func (h *RateLimitHandler) List(c echo.Context) error {
	configs, err := h.service.ListEndpointConfigs(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	items := make([]rateLimitConfigResponse, 0, len(configs))
	for _, cfg := range configs {
		items = append(items, toRateLimitConfigResponse(cfg))
	}
	return c.JSON(http.StatusOK, rateLimitConfigListResponse{Items: items})
}

func (h *RateLimitHandler) Get(c echo.Context) error {
	endpoint := c.Param("endpoint")
	cfg, err := h.service.GetEndpointConfig(c.Request().Context(), endpoint)
	if err != nil {
		return writeServiceError(c, err)
	}
	if cfg == nil {
		return Error(c, http.StatusNotFound, "resource not found")
	}
	return c.JSON(http.StatusOK, toRateLimitConfigResponse(*cfg))
}

func (h *RateLimitHandler) Set(c echo.Context) error {
	endpoint := c.Param("endpoint")
	var req rateLimitConfigRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}

	if err := h.service.SetEndpointConfig(c.Request().Context(), endpoint, req.MaxRequests, req.WindowSeconds); err != nil {
		return writeServiceError(c, err)
	}

	cfg, err := h.service.GetEndpointConfig(c.Request().Context(), endpoint)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toRateLimitConfigResponse(*cfg))
}

func (h *RateLimitHandler) Delete(c echo.Context) error {
	endpoint := c.Param("endpoint")
	if err := h.service.DeleteEndpointConfig(c.Request().Context(), endpoint); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func toRateLimitConfigResponse(cfg model.EndpointConfig) rateLimitConfigResponse {
	return rateLimitConfigResponse{
		Endpoint:      cfg.Endpoint,
		MaxRequests:   cfg.MaxRequests,
		WindowSeconds: cfg.WindowSeconds,
		UpdatedAt:     cfg.UpdatedAt.Format(time.RFC3339),
	}
}
