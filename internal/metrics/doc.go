// Package metrics records build observations.
//
// Components take a Recorder and default to NoopRecorder. A run that has a
// metrics textfile configured swaps in a PrometheusRecorder and writes its
// registry out with WriteTextfile when the run finishes:
//
//	rec := metrics.NewPrometheusRecorder(nil)
//	builder, err := site.NewBuilder(cfg, site.WithRecorder(rec))
//	...
//	_ = metrics.WriteTextfile(cfg.Metrics.Textfile, rec.Registry())
package metrics
