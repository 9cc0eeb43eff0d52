package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics(t *testing.T) {
	m := New()
	m.RecordUpdate("text")
	m.RecordUpdate("text")
	m.RecordUpdate("photo")
	m.RecordFailure("chat")

	if got := testutil.ToFloat64(m.updates.WithLabelValues("text")); got != 2 {
		t.Errorf("updates{text} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.updates.WithLabelValues("photo")); got != 1 {
		t.Errorf("updates{photo} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.failures.WithLabelValues("chat")); got != 1 {
		t.Errorf("failures{chat} = %v, want 1", got)
	}
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.RecordUpdate("text")
	m.RecordFailure("chat")
}
