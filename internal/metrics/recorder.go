package metrics

import "time"

// OutcomeLabel enumerates final build outcomes for counters.
type OutcomeLabel string

const (
	OutcomeSuccess OutcomeLabel = "success"
	OutcomeInvalid OutcomeLabel = "invalid" // site declaration rejected
	OutcomeFailed  OutcomeLabel = "failed"
)

// Recorder defines observability hooks for site builds. Implementations
// may forward to Prometheus, OpenTelemetry, etc.
type Recorder interface {
	ObserveBuildDuration(d time.Duration)
	IncBuildOutcome(outcome OutcomeLabel)
	// IncViolation counts a rejected declaration by violated invariant (e.g. "route collision").
	IncViolation(kind string)
	IncEmit(target string, success bool)
	// IncFailure counts a failed build by error category (e.g. "filesystem").
	IncFailure(category string)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveBuildDuration(time.Duration) {}
func (NoopRecorder) IncBuildOutcome(OutcomeLabel)       {}
func (NoopRecorder) IncViolation(string)                {}
func (NoopRecorder) IncEmit(string, bool)               {}
func (NoopRecorder) IncFailure(string)                  {}

// OrNoop returns r, or a NoopRecorder when r is nil.
func OrNoop(r Recorder) Recorder {
	if r == nil {
		return NoopRecorder{}
	}
	return r
}
