package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestFlowMetricsCountersByLabel(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewFlowMetrics(reg)

	m.PersistResult("ok")
	m.PersistResult("ok")
	m.PersistResult("failure")
	m.CollaboratorCall("motor", "error")
	m.StatusTransition("")

	if got := testutil.ToFloat64(m.persist.WithLabelValues("ok")); got != 2 {
		t.Fatalf("expected persist ok=2, got %f", got)
	}
	if got := testutil.ToFloat64(m.persist.WithLabelValues("failure")); got != 1 {
		t.Fatalf("expected persist failure=1, got %f", got)
	}
	if got := testutil.ToFloat64(m.collaborators.WithLabelValues("motor", "error")); got != 1 {
		t.Fatalf("expected motor error=1, got %f", got)
	}
	if got := testutil.ToFloat64(m.statuses.WithLabelValues("unknown")); got != 1 {
		t.Fatalf("expected empty status normalized to unknown, got %f", got)
	}
}

func TestFlowMetricsNilSafe(t *testing.T) {
	var m *FlowMetrics
	m.PersistResult("ok")
	m.CollaboratorCall("motor", "ok")
	m.StatusTransition("DRAFT")

	unregistered := NewFlowMetrics(nil)
	unregistered.PersistResult("ok")
}
