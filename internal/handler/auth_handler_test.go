package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"roteiro/backend/internal/handler"
	"roteiro/backend/internal/service"
	"roteiro/backend/internal/service/mock"
)

func TestAuthHandler_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockAuthService(ctrl)
	h := handler.NewAuthHandlerHelper(mockService)

	reqBody := map[string]interface{}{
		"password": "secret1",
	}
	c, rec := newJSONContext(http.MethodPost, "/admin/login", reqBody)

	mockService.EXPECT().
		Login(gomock.Any(), "secret1").
		Return("test-token", nil)

	err := h.Login(c)
	require.NoError(t, err)

	var resp handler.LoginResponse
	decodeResponse(t, rec, http.StatusOK, &resp)
	require.Equal(t, "test-token", resp.Token)

	// Check cookie is set
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies, "should set auth cookie")
	require.Equal(t, handler.AuthCookieName, cookies[0].Name)
	require.Equal(t, "test-token", cookies[0].Value)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockAuthService(ctrl)
	h := handler.NewAuthHandlerHelper(mockService)

	reqBody := map[string]interface{}{
		"password": "wrong",
	}
	c, rec := newJSONContext(http.MethodPost, "/admin/login", reqBody)

	mockService.EXPECT().
		Login(gomock.Any(), "wrong").
		Return("", service.ErrUnauthorized)

	err := h.Login(c)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Empty(t, rec.Result().Cookies())
}

func TestAuthHandler_Login_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockAuthService(ctrl)
	h := handler.NewAuthHandlerHelper(mockService)

	c, rec := newRawContext(http.MethodPost, "/admin/login", "{broken")

	err := h.Login(c)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
