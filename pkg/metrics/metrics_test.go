package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordBookingAttempt(t *testing.T) {
	m := NewWithRegisterer("test", prometheus.NewRegistry())

	m.RecordBookingAttempt("success")
	m.RecordBookingAttempt("success")
	m.RecordBookingAttempt("too_close")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingAttempts.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingAttempts.WithLabelValues("too_close")))
}

func TestRecordSlotsGenerated(t *testing.T) {
	m := NewWithRegisterer("test", prometheus.NewRegistry())

	m.RecordSlotsGenerated(18, 0)
	m.RecordSlotsGenerated(0, 18)

	assert.Equal(t, 18.0, testutil.ToFloat64(m.SlotsGenerated.WithLabelValues("created")))
	assert.Equal(t, 18.0, testutil.ToFloat64(m.SlotsGenerated.WithLabelValues("skipped")))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordBookingAttempt("success")
		m.RecordSlotsGenerated(1, 1)
	})
}
