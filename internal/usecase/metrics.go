package usecase

// Metrics receives flow counters. infrastructure/metrics provides the
// Prometheus implementation.
type Metrics interface {
	PersistResult(result string)
	CollaboratorCall(collaborator, result string)
	StatusTransition(status string)
}

type noopMetrics struct{}

func (noopMetrics) PersistResult(string)            {}
func (noopMetrics) CollaboratorCall(string, string) {}
func (noopMetrics) StatusTransition(string)         {}

func metricsOrNoop(m Metrics) Metrics {
	if m == nil {
		return noopMetrics{}
	}
	return m
}

func callResult(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
