package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "notesite"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	buildDuration prom.Histogram
	buildOutcome  *prom.CounterVec
	violations    *prom.CounterVec
	emits         *prom.CounterVec
	failures      *prom.CounterVec
	lastSuccess   prom.Gauge
}

// NewPrometheusRecorder constructs the metrics and registers them with reg
// (a fresh registry when nil).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		buildDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Duration of a configuration build, from load to emitted files",
			Buckets:   prom.ExponentialBuckets(0.001, 4, 8),
		}),
		buildOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "build_outcomes_total",
			Help:      "Build outcomes by final status",
		}, []string{"outcome"}),
		violations: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "validation_violations_total",
			Help:      "Rejected site declarations by violated invariant",
		}, []string{"kind"}),
		emits: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "emit_results_total",
			Help:      "Emitted framework configuration files by target and result",
		}, []string{"target", "result"}),
		failures: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "build_failures_total",
			Help:      "Failed builds by error category",
		}, []string{"category"}),
		lastSuccess: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful build",
		}),
	}
	reg.MustRegister(pr.buildDuration, pr.buildOutcome, pr.violations, pr.emits, pr.failures, pr.lastSuccess)
	return pr
}

func (p *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.buildDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncBuildOutcome(outcome OutcomeLabel) {
	if p == nil {
		return
	}
	p.buildOutcome.WithLabelValues(string(outcome)).Inc()
	if outcome == OutcomeSuccess {
		p.lastSuccess.SetToCurrentTime()
	}
}

func (p *PrometheusRecorder) IncViolation(kind string) {
	if p == nil {
		return
	}
	p.violations.WithLabelValues(kind).Inc()
}

func (p *PrometheusRecorder) IncEmit(target string, success bool) {
	if p == nil {
		return
	}
	res := "failed"
	if success {
		res = "success"
	}
	p.emits.WithLabelValues(target, res).Inc()
}

func (p *PrometheusRecorder) IncFailure(category string) {
	if p == nil {
		return
	}
	p.failures.WithLabelValues(category).Inc()
}
