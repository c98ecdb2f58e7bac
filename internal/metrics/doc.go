// Package metrics records build observability for notesite.
//
// Components receive a Recorder and default to NoopRecorder, so metrics are
// optional everywhere:
//
//	reg := prometheus.NewRegistry()
//	rec := metrics.NewPrometheusRecorder(reg)
//	... build with rec ...
//	_ = metrics.WriteTextfile("/var/lib/node_exporter/notesite.prom", reg)
//
// One-shot commands export through the node-exporter textfile collector;
// the long-running watch command can also serve HTTPHandler.
package metrics
