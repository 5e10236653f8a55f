package telemetry

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareCountsRoutes(t *testing.T) {
	e := echo.New()
	e.Use(Middleware())
	e.GET("/meals/:id", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })
	e.GET("/boom", func(c echo.Context) error { return echo.NewHTTPError(http.StatusUnauthorized, "no") })

	before := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/meals/:id", "204"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/meals/abc", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/meals/:id", "204")))

	before = testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/boom", "401"))
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/boom", "401")))
}

func TestRecordLedgerOperationAndHandler(t *testing.T) {
	before := testutil.ToFloat64(ledgerOperations.WithLabelValues("update", "forbidden"))
	RecordLedgerOperation("update", "forbidden")
	require.Equal(t, before+1, testutil.ToFloat64(ledgerOperations.WithLabelValues("update", "forbidden")))

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), "daily_diet_meal_ledger_operations_total"))
}
