package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Observe(t *testing.T) {
	m := NewWithRegistry("salon-test", prometheus.NewRegistry())

	m.ObserveHTTPRequest("GET", "/api/v1/calendar", 200, 15*time.Millisecond)
	m.ObserveHTTPRequest("GET", "/api/v1/calendar", 200, 5*time.Millisecond)
	m.ObserveDBQuery("select", errors.New("timeout"), time.Millisecond)
	m.AddCalendarCells("AVAILABLE", 12)
	m.AddCalendarCells("BREAK", 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/api/v1/calendar", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dbQueriesTotal.WithLabelValues("select", "error")))
	assert.Equal(t, 12.0, testutil.ToFloat64(m.calendarCellsTotal.WithLabelValues("AVAILABLE")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.calendarCellsTotal.WithLabelValues("BREAK")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/", 200, time.Second)
		m.ObserveDBQuery("insert", nil, time.Second)
		m.SetDBPoolStats("postgres", 1, 1, 0, 0)
		m.AddCalendarCells("OCCUPIED", 3)
	})
}
