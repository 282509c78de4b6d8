package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counterValue sums the samples of a gathered counter family whose labels include want.
func counterValue(t *testing.T, reg *prom.Registry, name string, want map[string]string) float64 {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)
	total := 0.0
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
	next:
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			for k, v := range want {
				if labels[k] != v {
					continue next
				}
			}
			total += m.GetCounter().GetValue()
		}
	}
	return total
}

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.IncPage(PageMonth, OutcomeWritten)
	pr.IncPage(PageMonth, OutcomeWritten)
	pr.IncPage(PageYear, OutcomeFailed)
	pr.ObservePreview(240, 2, false)
	pr.ObservePreview(0, 0, true)
	pr.AddTaggedSections(5)
	pr.AddTaggedSections(-1)
	pr.ObserveRunDuration("all", 150*time.Millisecond)

	assert.InDelta(t, 2, counterValue(t, reg, "journalbuilder_pages_total", map[string]string{"kind": "month", "outcome": "written"}), 0)
	assert.InDelta(t, 1, counterValue(t, reg, "journalbuilder_pages_total", map[string]string{"kind": "year", "outcome": "failed"}), 0)
	assert.InDelta(t, 1, counterValue(t, reg, "journalbuilder_preview_passthrough_total", nil), 0)
	assert.InDelta(t, 5, counterValue(t, reg, "journalbuilder_tagged_sections_total", nil), 0)
	assert.Same(t, reg, pr.Registry())
}

func TestWriteTextfile(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	pr.IncPage(PageTagIndex, OutcomeWritten)
	path := filepath.Join(t.TempDir(), "metrics", "journalbuilder.prom")

	require.NoError(t, WriteTextfile(path, pr.Registry()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `journalbuilder_pages_total{kind="tag_index",outcome="written"} 1`)
}
