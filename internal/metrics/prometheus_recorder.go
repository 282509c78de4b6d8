package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "journalbuilder"

// PrometheusRecorder implements Recorder with client_golang collectors.
type PrometheusRecorder struct {
	registry       *prom.Registry
	pages          *prom.CounterVec
	previewChars   prom.Histogram
	previewElems   prom.Histogram
	passthrough    prom.Counter
	taggedSections prom.Counter
	runDuration    *prom.HistogramVec
}

// NewPrometheusRecorder creates the collectors and registers them on reg.
// A nil reg gets a fresh private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		registry: reg,
		pages: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "pages_total",
			Help:      "Generated pages by kind and outcome",
		}, []string{"kind", "outcome"}),
		previewChars: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "preview_chars",
			Help:      "Estimated characters per entry preview",
			Buckets:   []float64{0, 50, 100, 200, 300, 400, 600, 1000},
		}),
		previewElems: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "preview_elements",
			Help:      "Selected elements per entry preview",
			Buckets:   prom.LinearBuckets(0, 1, 11),
		}),
		passthrough: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "preview_passthrough_total",
			Help:      "Entries copied unchanged because they have no body region",
		}),
		taggedSections: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "tagged_sections_total",
			Help:      "Tag index entries collected by corpus scans",
		}),
		runDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of a command run",
			Buckets:   prom.DefBuckets,
		}, []string{"command"}),
	}
	reg.MustRegister(pr.pages, pr.previewChars, pr.previewElems, pr.passthrough, pr.taggedSections, pr.runDuration)
	return pr
}

// Registry returns the registry the collectors live on.
func (p *PrometheusRecorder) Registry() *prom.Registry {
	if p == nil {
		return nil
	}
	return p.registry
}

func (p *PrometheusRecorder) IncPage(kind PageKind, outcome Outcome) {
	if p == nil {
		return
	}
	p.pages.WithLabelValues(string(kind), string(outcome)).Inc()
}

func (p *PrometheusRecorder) ObservePreview(chars, elements int, passthrough bool) {
	if p == nil {
		return
	}
	if passthrough {
		p.passthrough.Inc()
		return
	}
	p.previewChars.Observe(float64(chars))
	p.previewElems.Observe(float64(elements))
}

func (p *PrometheusRecorder) AddTaggedSections(n int) {
	if p == nil || n <= 0 {
		return
	}
	p.taggedSections.Add(float64(n))
}

func (p *PrometheusRecorder) ObserveRunDuration(command string, d time.Duration) {
	if p == nil {
		return
	}
	p.runDuration.WithLabelValues(command).Observe(d.Seconds())
}
