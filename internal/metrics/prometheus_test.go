package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_ObserveHTTPRequest(t *testing.T) {
	m := NewManager(WithRegistry(prometheus.NewRegistry()))

	m.ObserveHTTPRequest("/api/subjects/{id}", http.MethodGet, http.StatusOK, 10*time.Millisecond)
	m.ObserveHTTPRequest("/api/subjects/{id}", http.MethodGet, http.StatusOK, 20*time.Millisecond)
	m.ObserveHTTPRequest("/api/subjects/{id}", http.MethodGet, http.StatusNotFound, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/api/subjects/{id}", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/api/subjects/{id}", "GET", "404")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.httpRequestDuration))
}

func TestManager_UsersResolvedAndStorageUp(t *testing.T) {
	m := NewManager(WithRegistry(prometheus.NewRegistry()))

	m.UsersResolved(3)
	m.UsersResolved(0)
	assert.Equal(t, 3.0, testutil.ToFloat64(m.usersResolved))

	m.SetStorageUp(true)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.storageUp))
	m.SetStorageUp(false)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.storageUp))
}

func TestManager_Options(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewManager(
		WithRegistry(registry),
		WithNamespace("school"),
		WithHistogramBuckets([]float64{0.1, 1}),
	)
	m.UsersResolved(1)

	families, err := registry.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "school_subject_users_resolved_total")
	assert.Equal(t, []float64{0.1, 1}, m.histogramBuckets)
}

func TestManager_Handler(t *testing.T) {
	m := NewManager()
	m.SetStorageUp(true)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "storage_up 1")
	assert.Contains(t, string(body), "go_goroutines")
}
