package metrics

import (
	"testing"
	"time"
)

// Compile-time checks that both recorders satisfy the interface.
var (
	_ Recorder = NoopRecorder{}
	_ Recorder = (*PrometheusRecorder)(nil)
)

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.IncPage(PageMonth, OutcomeWritten)
	r.ObservePreview(10, 2, false)
	r.AddTaggedSections(3)
	r.ObserveRunDuration("month", time.Second)
}

func TestPrometheusRecorder_NilReceiver(t *testing.T) {
	var p *PrometheusRecorder
	p.IncPage(PageTag, OutcomeFailed)
	p.ObservePreview(1, 1, true)
	p.AddTaggedSections(1)
	p.ObserveRunDuration("tags", time.Millisecond)
	if p.Registry() != nil {
		t.Fatal("nil recorder should have no registry")
	}
}
