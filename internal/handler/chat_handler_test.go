package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"roteiro/backend/internal/handler"
	"roteiro/backend/internal/model"
	"roteiro/backend/internal/service"
	"roteiro/backend/internal/service/mock"
)

func TestChatHandler_Ask_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockChatService(ctrl)
	h := handler.NewChatHandlerHelper(mockService)

	reqBody := map[string]interface{}{
		"question":       "Qual a dose de rifampicina?",
		"personality_id": "dr_gasnelio",
	}
	c, rec := newJSONContext(http.MethodPost, "/chat", reqBody)

	mockService.EXPECT().
		Ask(gomock.Any(), "Qual a dose de rifampicina?", "dr_gasnelio").
		Return(model.ChatAnswer{
			RequestID:  "req-1",
			PersonaID:  "dr_gasnelio",
			Answer:     "600 mg em dose mensal supervisionada.",
			Confidence: 0.8,
			Source:     "knowledge_base",
			Sources:    []string{"roteiro.md"},
			Success:    true,
		}, nil)

	err := h.Ask(c)
	require.NoError(t, err)

	var resp handler.ChatResponse
	decodeResponse(t, rec, http.StatusOK, &resp)
	require.Equal(t, "req-1", resp.RequestID)
	require.Equal(t, "dr_gasnelio", resp.Persona)
	require.Equal(t, 0.8, resp.Confidence)
	require.Equal(t, "knowledge_base", resp.Source)
	require.False(t, resp.Cached)
	require.GreaterOrEqual(t, resp.ProcessingMs, int64(0))
}

func TestChatHandler_Ask_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockChatService(ctrl)
	h := handler.NewChatHandlerHelper(mockService)

	c, rec := newRawContext(http.MethodPost, "/chat", "{not json")

	err := h.Ask(c)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatHandler_Ask_ServiceErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "empty_question", err: service.ErrInvalid, status: http.StatusBadRequest},
		{name: "unknown_persona", err: service.ErrNotFound, status: http.StatusNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mock.NewMockChatService(ctrl)
			h := handler.NewChatHandlerHelper(mockService)

					reqBody := map[string]interface{}{
				"question":       "q",
				"personality_id": "p",
			}
			c, rec := newJSONContext(http.MethodPost, "/chat", reqBody)
		
			mockService.EXPECT().
				Ask(gomock.Any(), "q", "p").
				Return(model.ChatAnswer{}, tc.err)

			err := h.Ask(c)
			require.NoError(t, err)
			require.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestChatHandler_Personas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockChatService(ctrl)
	h := handler.NewChatHandlerHelper(mockService)

	c, rec := newJSONContext(http.MethodGet, "/personas", nil)

	err := h.Personas(c)
	require.NoError(t, err)

	var resp handler.PersonaListResponse
	decodeResponse(t, rec, http.StatusOK, &resp)
	require.Len(t, resp.Items, 2)
	require.Equal(t, model.PersonaDrGasnelio, resp.Items[0].ID)
	require.Equal(t, model.PersonaGa, resp.Items[1].ID)
	require.NotEmpty(t, resp.Items[0].Greeting)
}
