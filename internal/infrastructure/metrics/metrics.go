package metrics

import (
	"takaful_quote/internal/usecase"

	"github.com/prometheus/client_golang/prometheus"
)

// FlowMetrics records quote flow counters.
type FlowMetrics struct {
	persist       *prometheus.CounterVec
	collaborators *prometheus.CounterVec
	statuses      *prometheus.CounterVec
}

var _ usecase.Metrics = (*FlowMetrics)(nil)

// NewFlowMetrics registers the flow metrics on the provided registerer.
func NewFlowMetrics(reg prometheus.Registerer) *FlowMetrics {
	if reg == nil {
		return &FlowMetrics{}
	}
	persist := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quote_draft_persist_total",
		Help: "Draft persist calls by result.",
	}, []string{"result"})
	collaborators := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quote_collaborator_calls_total",
		Help: "Collaborator calls by collaborator and result.",
	}, []string{"collaborator", "result"})
	statuses := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quote_status_writes_total",
		Help: "Persisted quote writes by resulting status.",
	}, []string{"status"})
	reg.MustRegister(persist, collaborators, statuses)
	return &FlowMetrics{
		persist:       persist,
		collaborators: collaborators,
		statuses:      statuses,
	}
}

func (m *FlowMetrics) PersistResult(result string) {
	if m == nil || m.persist == nil {
		return
	}
	m.persist.WithLabelValues(normalizeLabel(result)).Inc()
}

func (m *FlowMetrics) CollaboratorCall(collaborator, result string) {
	if m == nil || m.collaborators == nil {
		return
	}
	m.collaborators.WithLabelValues(normalizeLabel(collaborator), normalizeLabel(result)).Inc()
}

func (m *FlowMetrics) StatusTransition(status string) {
	if m == nil || m.statuses == nil {
		return
	}
	m.statuses.WithLabelValues(normalizeLabel(status)).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
