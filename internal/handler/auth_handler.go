package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"roteiro/backend/internal/service"
)

// AuthCookieName carries the admin token for browser clients; API clients
// use the Authorization header instead.
const AuthCookieName = "roteiro_token"

const authCookieTTL = 24 * time.Hour

type AuthHandler struct {
	service service.AuthService
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/admin/login", h.Login)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}

	token, err := h.service.Login(c.Request().Context(), req.Password)
	if err != nil {
		return writeServiceError(c, err)
	}

	c.SetCookie(&http.Cookie{
		Name:     AuthCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(authCookieTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, loginResponse{Token: token})
}
