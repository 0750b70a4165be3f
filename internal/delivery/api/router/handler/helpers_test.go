package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/delivery/api/validator"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testRequest struct {
	method string
	target string
	body   string
	params map[string]string
	sess   *entity.Session
}

// serve runs a handler the way the echo router would, including the central
// error handler, and returns the recorder.
func serve(t *testing.T, h echo.HandlerFunc, tr testRequest) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(discardLogger()).HandleHTTPError

	var body io.Reader
	if tr.body != "" {
		body = strings.NewReader(tr.body)
	}
	req := httptest.NewRequest(tr.method, tr.target, body)
	if tr.body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// SetParamNames resizes the value slice, so names go in before values.
	names := make([]string, 0, len(tr.params))
	values := make([]string, 0, len(tr.params))
	for name, value := range tr.params {
		names = append(names, name)
		values = append(values, value)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	if tr.sess != nil {
		deliverycontext.SetSession(c, tr.sess)
	}

	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	return rec
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var envelope struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope.Data
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorInfo {
	t.Helper()

	var envelope response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)

	return envelope.Error
}

func guest() *entity.Session {
	return &entity.Session{ID: "sess-guest"}
}

func customer() *entity.Session {
	return &entity.Session{
		ID:         "sess-1",
		User:       &entity.AuthUser{UserID: "sub-123", LoginID: "ana@example.com"},
		Attributes: entity.UserAttributes{entity.AttrEmail: "ana@example.com"},
	}
}

func admin() *entity.Session {
	sess := customer()
	sess.IsAdmin = true

	return sess
}
