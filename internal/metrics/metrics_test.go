package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New()
	m.EntityWrite("brands", "create")
	m.EntityWrite("brands", "create")
	m.CombinationsGenerated(4)
	m.CombinationsGenerated(0)
	m.WeightRejected("exceeded")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.entityWrites.WithLabelValues("brands", "create")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.combinationsGenerated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.weightRejections.WithLabelValues("exceeded")))
}

func TestNilMetricsAreNoops(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.EntityWrite("x", "y")
		m.CombinationsGenerated(3)
		m.WeightRejected("z")
	})
}

func TestHandlerExposesCounters(t *testing.T) {
	m := New()
	m.CombinationsGenerated(2)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "catalog_admin_combinations_generated_total 2")
}
