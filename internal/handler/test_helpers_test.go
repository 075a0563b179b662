package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// newJSONContext builds an Echo context around a request carrying the given
// body as JSON. A nil body sends an empty request.
func newJSONContext(method, target string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		raw, _ := json.Marshal(body)
		req = httptest.NewRequest(method, target, bytes.NewReader(raw))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

// newRawContext is newJSONContext with a verbatim string body, for
// malformed-payload cases.
func newRawContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

// setPathParams fills Echo path parameters on the context.
func setPathParams(c echo.Context, params map[string]string) {
	names := make([]string, 0, len(params))
	values := make([]string, 0, len(params))
	for name, value := range params {
		names = append(names, name)
		values = append(values, value)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
}

// decodeResponse checks the status code and unmarshals the JSON body into
// target, which may be nil when only the status matters.
func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder, wantStatus int, target interface{}) {
	t.Helper()
	require.Equal(t, wantStatus, rec.Code, "unexpected status code")
	if target == nil {
		return
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), target), "response body is not valid JSON")
}
