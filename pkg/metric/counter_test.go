package metric

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterAndGauge(t *testing.T) {
	reg := prometheus.NewRegistry()

	c := NewCounterWithRegistry(reg, "items_added_total", "Items added.", "kind")
	c.Increment("child")
	c.Increment("child")
	c.Increment("sibling")

	size := 12
	NewGaugeFuncWithRegistry(reg, "tree_size", "Tree size.", func() float64 { return float64(size) })

	rec := httptest.NewRecorder()
	GetHandlerForRegistry(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `items_added_total{kind="child"} 2`)
	assert.Contains(t, body, `items_added_total{kind="sibling"} 1`)
	assert.Contains(t, body, "tree_size 12")

	size = 13
	rec = httptest.NewRecorder()
	GetHandlerForRegistry(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), "tree_size 13")
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewCounterWithRegistry(reg, "dup_total", "dup")
	assert.Panics(t, func() {
		NewCounterWithRegistry(reg, "dup_total", "dup")
	})
}
