package couriersdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newHealthServer(t *testing.T, status int, resp HealthResponse) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGetReadinessHealthy(t *testing.T) {
	t.Parallel()

	srv := newHealthServer(t, http.StatusOK, HealthResponse{
		Status:  "ok",
		Uptime:  "5m",
		Version: "test",
		Checks:  &HealthChecks{Database: "ok"},
	})

	client := NewClient(srv.URL)
	health, err := client.GetReadiness(context.Background())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.Equal(t, "ok", health.Checks.Database)
}

func TestGetReadinessDegraded(t *testing.T) {
	t.Parallel()

	// A degraded readyz is a 503 with the same body shape; the caller must
	// still see which check failed.
	srv := newHealthServer(t, http.StatusServiceUnavailable, HealthResponse{
		Status:  "degraded",
		Uptime:  "5m",
		Version: "test",
		Checks:  &HealthChecks{Database: "error: disk I/O error"},
	})

	client := NewClient(srv.URL)
	health, err := client.GetReadiness(context.Background())
	require.NoError(t, err)
	require.Equal(t, "degraded", health.Status)
	require.NotNil(t, health.Checks)
	require.Contains(t, health.Checks.Database, "error:")
}

func TestHealthUnexpectedStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL)
	_, err := client.GetLiveness(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
}
