package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"roteiro/backend/internal/service"
)

type ChatHandler struct {
	service service.ChatService
}

type chatRequest struct {
	Question      string `json:"question"`
	PersonalityID string `json:"personality_id"`
}

type chatResponse struct {
	RequestID    string   `json:"request_id"`
	Persona      string   `json:"persona"`
	Answer       string   `json:"answer"`
	Confidence   float64  `json:"confidence"`
	Source       string   `json:"source"`
	Sources      []string `json:"sources,omitempty"`
	Cached       bool     `json:"cached"`
	ProcessingMs int64    `json:"processing_ms"`
}

type personaResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Style       string `json:"style"`
	Description string `json:"description"`
	Greeting    string `json:"greeting"`
}

type personaListResponse struct {
	Items []personaResponse `json:"items"`
}

func NewChatHandler(service service.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

func (h *ChatHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/chat", h.Ask)
	g.GET("/personas", h.Personas)
}

func (h *ChatHandler) Ask(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}

	start := time.Now()
	answer, err := h.service.Ask(c.Request().Context(), req.Question, req.PersonalityID)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, chatResponse{
		RequestID:    answer.RequestID,
		Persona:      answer.PersonaID,
		Answer:       answer.Answer,
		Confidence:   answer.Confidence,
		Source:       answer.Source,
		Sources:      answer.Sources,
		Cached:       answer.Cached,
		ProcessingMs: time.Since(start).Milliseconds(),
	})
}

func (h *ChatHandler) Personas(c echo.Context) error {
	personas := service.Personas()
	items := make([]personaResponse, 0, len(personas))
	for _, p := range personas {
		items = append(items, personaResponse{
			ID:          p.ID,
			Name:        p.Name,
			Style:       p.Style,
			Description: p.Description,
			Greeting:    p.Greeting,
		})
	}
	return c.JSON(http.StatusOK, personaListResponse{Items: items})
}
