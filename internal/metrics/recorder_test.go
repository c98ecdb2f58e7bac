package metrics

import (
	"testing"
	"time"
)

type testRecorder struct {
	buildDurations int
	buildOutcomes  map[OutcomeLabel]int
	violations     map[string]int
	emits          map[string]int
	failures       map[string]int
}

func newTestRecorder() *testRecorder {
	return &testRecorder{buildOutcomes: map[OutcomeLabel]int{}, violations: map[string]int{}, emits: map[string]int{}, failures: map[string]int{}}
}

func (t *testRecorder) ObserveBuildDuration(time.Duration)   { t.buildDurations++ }
func (t *testRecorder) IncBuildOutcome(outcome OutcomeLabel) { t.buildOutcomes[outcome]++ }
func (t *testRecorder) IncViolation(kind string)             { t.violations[kind]++ }
func (t *testRecorder) IncFailure(category string)           { t.failures[category]++ }
func (t *testRecorder) IncEmit(target string, success bool) {
	if success {
		t.emits[target]++
	}
}

var (
	_ Recorder = (*testRecorder)(nil)
	_ Recorder = NoopRecorder{}
	_ Recorder = (*PrometheusRecorder)(nil)
)

func TestOrNoop(t *testing.T) {
	if _, ok := OrNoop(nil).(NoopRecorder); !ok {
		t.Fatalf("expected NoopRecorder for nil")
	}
	tr := newTestRecorder()
	OrNoop(tr).IncEmit("hugo", true)
	if tr.emits["hugo"] != 1 {
		t.Fatalf("expected recorder to be passed through")
	}
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.ObserveBuildDuration(time.Second)
	r.IncBuildOutcome(OutcomeSuccess)
	r.IncViolation("route collision")
	r.IncEmit("docusaurus", false)
	r.IncFailure("emit")
}

func TestNilPrometheusRecorderIsSafe(t *testing.T) {
	var p *PrometheusRecorder
	p.ObserveBuildDuration(time.Second)
	p.IncBuildOutcome(OutcomeFailed)
	p.IncViolation("x")
	p.IncEmit("hugo", true)
	p.IncFailure("filesystem")
}
