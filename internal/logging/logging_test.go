package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger(t *testing.T) (*logrus.Logger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	orig := output
	output = buf
	t.Cleanup(func() { output = orig })
	logger, err := New("debug")
	require.NoError(t, err)
	return logger, buf
}

func TestNew(t *testing.T) {
	logger, err := New("")
	require.NoError(t, err)
	require.Equal(t, logrus.InfoLevel, logger.GetLevel())

	logger, err = New("warn")
	require.NoError(t, err)
	require.Equal(t, logrus.WarnLevel, logger.GetLevel())

	_, err = New("loud")
	require.Error(t, err)
}

func TestInjectAndFromContext(t *testing.T) {
	logger, buf := newBufferedLogger(t)

	e := echo.New()
	e.Use(middleware.RequestID())
	e.Use(Inject(logger))
	e.GET("/x", func(c echo.Context) error {
		FromContext(c).Info("inside")
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(echo.HeaderXRequestID, "rid-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "inside", line["msg"])
	require.Equal(t, "rid-1", line["request_id"])
	require.Equal(t, "GET", line["method"])
}

func TestFromContextFallback(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	require.Equal(t, logrus.StandardLogger(), FromContext(c))
}

func TestRequestLogger(t *testing.T) {
	logger, buf := newBufferedLogger(t)

	e := echo.New()
	e.Use(RequestLogger(logger))
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })
	e.GET("/fail", func(c echo.Context) error { return errors.New("boom") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "request", line["msg"])
	require.EqualValues(t, http.StatusNoContent, line["status"])
	require.Equal(t, "/ok", line["uri"])

	buf.Reset()
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "request failed", line["msg"])
	require.Equal(t, "boom", line["error"])
}
