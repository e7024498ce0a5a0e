package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"power-bidding/internal/config"
	"power-bidding/internal/forecast"
	"power-bidding/internal/pipeline"
	"power-bidding/internal/store"
)

type zeroNoise struct{}

func (zeroNoise) Draw() float64 { return 0 }

func init() {
	gin.SetMode(gin.TestMode)
}

// newRouter seeds a store with n hourly observations ending now and mounts
// the API routes over it.
func newRouter(t *testing.T, n int) *gin.Engine {
	t.Helper()

	st := store.New()
	if n > 0 {
		var b strings.Builder
		b.WriteString("timestamp,price\n")
		now := time.Now().UTC()
		for i := n - 1; i >= 0; i-- {
			ts := now.Add(-time.Duration(i) * time.Hour)
			fmt.Fprintf(&b, "%s,%0.2f\n", ts.Format(time.RFC3339), 40.0+float64(i%20))
		}
		path := filepath.Join(t.TempDir(), "prices.csv")
		require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
		_, err := st.Load([]string{path})
		require.NoError(t, err)
	}

	pl := pipeline.New(st, forecast.New(zeroNoise{}), zeroNoise{}, 168)
	h := New(st, pl, config.Default())

	router := gin.New()
	api := router.Group("/api/v1")
	api.GET("/status", h.Status)
	api.GET("/historical", h.Historical)
	api.POST("/forecast", h.Forecast)
	api.POST("/optimize", h.Optimize)
	return router
}

func doRequest(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	body := decode(t, w)
	detail, ok := body["error"].(map[string]any)
	require.True(t, ok, "expected error envelope, got %s", w.Body.String())
	code, _ := detail["code"].(string)
	return code
}

func TestStatusEndpoint(t *testing.T) {
	t.Run("loaded store", func(t *testing.T) {
		w := doRequest(newRouter(t, 48), http.MethodGet, "/api/v1/status", "")
		require.Equal(t, http.StatusOK, w.Code)

		body := decode(t, w)
		assert.Equal(t, "ok", body["status"])
		data := body["data"].(map[string]any)
		assert.Equal(t, float64(48), data["count"])
	})

	t.Run("empty store is no_data, not an error", func(t *testing.T) {
		w := doRequest(newRouter(t, 0), http.MethodGet, "/api/v1/status", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "no_data", decode(t, w)["status"])
	})
}

func TestHistoricalEndpoint(t *testing.T) {
	t.Run("defaults to 1d", func(t *testing.T) {
		w := doRequest(newRouter(t, 72), http.MethodGet, "/api/v1/historical", "")
		require.Equal(t, http.StatusOK, w.Code)

		body := decode(t, w)
		assert.Equal(t, "1d", body["range"])
		// 24 hourly points fall inside the last day (the now-aligned point
		// can land on either side of the boundary).
		count := body["count"].(float64)
		assert.InDelta(t, 24, count, 1)
	})

	t.Run("7d filter with 1000-record cap", func(t *testing.T) {
		// 1100 hourly points span ~46 days; the last 7 days hold ~168, so
		// grow density: use a smaller router but assert the cap directly
		// with range=all.
		router := newRouter(t, 1100)
		w := doRequest(router, http.MethodGet, "/api/v1/historical?range=7d", "")
		require.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		count := int(body["count"].(float64))
		assert.InDelta(t, 168, count, 1)

		w = doRequest(router, http.MethodGet, "/api/v1/historical?range=all", "")
		require.Equal(t, http.StatusOK, w.Code)
		body = decode(t, w)
		assert.Equal(t, float64(1000), body["count"], "capped at the 1000 most recent")

		stats := body["stats"].(map[string]any)
		assert.GreaterOrEqual(t, stats["max"].(float64), stats["mean"].(float64))
		assert.GreaterOrEqual(t, stats["mean"].(float64), stats["min"].(float64))
	})

	t.Run("invalid range is a client error", func(t *testing.T) {
		w := doRequest(newRouter(t, 10), http.MethodGet, "/api/v1/historical?range=2w", "")
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_REQUEST", errorCode(t, w))
	})

	t.Run("predictions flag appends a forecast", func(t *testing.T) {
		w := doRequest(newRouter(t, 48), http.MethodGet, "/api/v1/historical?predictions=true", "")
		require.Equal(t, http.StatusOK, w.Code)

		body := decode(t, w)
		preds, ok := body["predictions"].([]any)
		require.True(t, ok, "expected predictions in response")
		assert.Len(t, preds, 24)
	})
}

func TestForecastEndpoint(t *testing.T) {
	t.Run("returns horizon points with accuracy score", func(t *testing.T) {
		w := doRequest(newRouter(t, 48), http.MethodPost, "/api/v1/forecast",
			`{"start": "2025-03-05T09:00:00Z", "horizon": 12, "confidence_level": 0.9}`)
		require.Equal(t, http.StatusOK, w.Code)

		body := decode(t, w)
		points := body["forecast"].([]any)
		assert.Len(t, points, 12)
		acc := body["accuracy_score"].(float64)
		assert.GreaterOrEqual(t, acc, 0.85)
		assert.Less(t, acc, 0.95)
		assert.NotEmpty(t, body["run_id"])
	})

	t.Run("missing required fields", func(t *testing.T) {
		w := doRequest(newRouter(t, 48), http.MethodPost, "/api/v1/forecast", `{}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_REQUEST", errorCode(t, w))
	})

	t.Run("bad start format", func(t *testing.T) {
		w := doRequest(newRouter(t, 48), http.MethodPost, "/api/v1/forecast",
			`{"start": "03/05/2025", "horizon": 12, "confidence_level": 0.9}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("out-of-range confidence", func(t *testing.T) {
		w := doRequest(newRouter(t, 48), http.MethodPost, "/api/v1/forecast",
			`{"horizon": 12, "confidence_level": 1.5}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_REQUEST", errorCode(t, w))
	})

	t.Run("empty store is service unavailable", func(t *testing.T) {
		w := doRequest(newRouter(t, 0), http.MethodPost, "/api/v1/forecast",
			`{"horizon": 12, "confidence_level": 0.9}`)
		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "DATA_UNAVAILABLE", errorCode(t, w))
	})
}

func TestOptimizeEndpoint(t *testing.T) {
	t.Run("full result", func(t *testing.T) {
		w := doRequest(newRouter(t, 0), http.MethodPost, "/api/v1/optimize", `{
			"forecast": [
				{"timestamp": "2025-03-05T09:00:00Z", "predicted_price": 160, "confidence_lower": 150, "confidence_upper": 170, "confidence_level": 0.9}
			],
			"cost_model": {"generation_cost": 100}
		}`)
		require.Equal(t, http.StatusOK, w.Code)

		body := decode(t, w)
		decisions := body["decisions"].([]any)
		require.Len(t, decisions, 1)
		d := decisions[0].(map[string]any)
		assert.Equal(t, float64(150), d["bid_capacity"])
		assert.InDelta(t, 152.0, d["bid_price"].(float64), 1e-9)
		assert.Equal(t, "AGGRESSIVE", body["strategy"])
		assert.NotEmpty(t, body["risk_level"])
	})

	t.Run("empty forecast sequence", func(t *testing.T) {
		w := doRequest(newRouter(t, 0), http.MethodPost, "/api/v1/optimize",
			`{"forecast": [], "cost_model": {"generation_cost": 100}}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_REQUEST", errorCode(t, w))
	})

	t.Run("missing cost model", func(t *testing.T) {
		w := doRequest(newRouter(t, 0), http.MethodPost, "/api/v1/optimize",
			`{"forecast": [{"timestamp": "2025-03-05T09:00:00Z", "predicted_price": 160}]}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
