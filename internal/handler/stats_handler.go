package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"roteiro/backend/internal/cache"
	"roteiro/backend/internal/service"
)

const dailyStatsLimit = 30

type StatsHandler struct {
	rateLimits service.RateLimitService
	chat       service.ChatService
	cache      *cache.Cache
}

type dailyStatsResponse struct {
	Date            string `json:"date"`
	TotalRequests   int64  `json:"totalRequests"`
	BlockedRequests int64  `json:"blockedRequests"`
}

type personaStatsResponse struct {
	PersonaID string `json:"personaId"`
	Questions int64  `json:"questions"`
	Fallbacks int64  `json:"fallbacks"`
}

type cacheStatsResponse struct {
	Hits            int64            `json:"hits"`
	Misses          int64            `json:"misses"`
	Evictions       int64            `json:"evictions"`
	EmergencyClears int64            `json:"emergencyClears"`
	Items           map[string]int   `json:"items"`
	Sizes           map[string]int64 `json:"sizes"`
	TotalSize       int64            `json:"totalSize"`
}

type statsResponse struct {
	Daily    []dailyStatsResponse   `json:"daily"`
	Personas []personaStatsResponse `json:"personas"`
	Cache    *cacheStatsResponse    `json:"cache,omitempty"`
}

func NewStatsHandler(rateLimits service.RateLimitService, chat service.ChatService, responseCache *cache.Cache) *StatsHandler {
	return &StatsHandler{rateLimits: rateLimits, chat: chat, cache: responseCache}
}

func (h *StatsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/stats", h.Get)
}

func (h *StatsHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	daily, err := h.rateLimits.DailyStats(ctx, dailyStatsLimit)
	if err != nil {
		return writeServiceError(c, err)
	}
	personas, err := h.chat.PersonaStats(ctx)
	if err != nil {
		return writeServiceError(c, err)
	}

	resp := statsResponse{
		Daily:    make([]dailyStatsResponse, 0, len(daily)),
		Personas: make([]personaStatsResponse, 0, len(personas)),
	}
	for _, d := range daily {
		resp.Daily = append(resp.Daily, dailyStatsResponse{
			Date:            d.Date,
			TotalRequests:   d.TotalRequests,
			BlockedRequests: d.BlockedRequests,
		})
	}
	for _, p := range personas {
		resp.Personas = append(resp.Personas, personaStatsResponse{
			PersonaID: p.PersonaID,
			Questions: p.Questions,
			Fallbacks: p.Fallbacks,
		})
	}
	if h.cache != nil {
		s := h.cache.Stats()
		resp.Cache = &cacheStatsResponse{
			Hits:            s.Hits,
			Misses:          s.Misses,
			Evictions:       s.Evictions,
			EmergencyClears: s.EmergencyClears,
			Items:           s.Items,
			Sizes:           s.Sizes,
			TotalSize:       s.TotalSize,
		}
	}
	return c.JSON(http.StatusOK, resp)
}
