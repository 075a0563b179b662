package handler_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"roteiro/backend/internal/cache"
	"roteiro/backend/internal/handler"
	"roteiro/backend/internal/model"
	"roteiro/backend/internal/service/mock"
)

func TestStatsHandler_Get_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRateLimits := mock.NewMockRateLimitService(ctrl)
	mockChat := mock.NewMockChatService(ctrl)
	responseCache := cache.New(cache.Options{BudgetBytes: 1 << 20})
	responseCache.Set(cache.CategoryAPI, "k", "v")

	h := handler.NewStatsHandlerHelper(mockRateLimits, mockChat, responseCache)

	c, rec := newJSONContext(http.MethodGet, "/stats", nil)

	mockRateLimits.EXPECT().
		DailyStats(gomock.Any(), 30).
		Return([]model.DailyStats{
			{Date: "2026-08-29", TotalRequests: 120, BlockedRequests: 4},
		}, nil)
	mockChat.EXPECT().
		PersonaStats(gomock.Any()).
		Return([]model.PersonaStats{
			{PersonaID: model.PersonaDrGasnelio, Questions: 80, Fallbacks: 3},
		}, nil)

	err := h.Get(c)
	require.NoError(t, err)

	var resp handler.StatsResponse
	decodeResponse(t, rec, http.StatusOK, &resp)
	require.Len(t, resp.Daily, 1)
	require.Equal(t, int64(120), resp.Daily[0].TotalRequests)
	require.Len(t, resp.Personas, 1)
	require.Equal(t, int64(80), resp.Personas[0].Questions)
	require.NotNil(t, resp.Cache)
	require.Equal(t, 1, resp.Cache.Items[cache.CategoryAPI])
}

func TestStatsHandler_Get_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRateLimits := mock.NewMockRateLimitService(ctrl)
	mockChat := mock.NewMockChatService(ctrl)
	h := handler.NewStatsHandlerHelper(mockRateLimits, mockChat, nil)

	c, rec := newJSONContext(http.MethodGet, "/stats", nil)

	mockRateLimits.EXPECT().
		DailyStats(gomock.Any(), 30).
		Return(nil, errors.New("db down"))

	err := h.Get(c)
	require.NoError(t, err)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestStatsHandler_Get_NoCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRateLimits := mock.NewMockRateLimitService(ctrl)
	mockChat := mock.NewMockChatService(ctrl)
	h := handler.NewStatsHandlerHelper(mockRateLimits, mockChat, nil)

	c, rec := newJSONContext(http.MethodGet, "/stats", nil)

	mockRateLimits.EXPECT().DailyStats(gomock.Any(), 30).Return(nil, nil)
	mockChat.EXPECT().PersonaStats(gomock.Any()).Return(nil, nil)

	err := h.Get(c)
	require.NoError(t, err)

	var resp handler.StatsResponse
	decodeResponse(t, rec, http.StatusOK, &resp)
	require.Nil(t, resp.Cache)
}
