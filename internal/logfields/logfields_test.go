package logfields

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringHelpers(t *testing.T) {
	cases := []struct {
		name string
		key  string
		val  string
		attr slog.Attr
	}{
		{"RunID", KeyRunID, "r1", RunID("r1")},
		{"Command", KeyCommand, "month", Command("month")},
		{"Period", KeyPeriod, "2025-01", Period("2025-01")},
		{"Entry", KeyEntry, "2025-01-02", Entry("2025-01-02")},
		{"Tag", KeyTag, "go", Tag("go")},
		{"Path", KeyPath, "/tmp/x", Path("/tmp/x")},
		{"Kind", KeyKind, "month", Kind("month")},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.key, c.attr.Key)
			assert.Equal(t, c.val, c.attr.Value.String())
		})
	}
}

func TestNumericHelpers(t *testing.T) {
	assert.Equal(t, int64(3), Count(3).Value.Int64())
	assert.Equal(t, int64(120), Chars(120).Value.Int64())
	assert.InDelta(t, 1.5, DurationMS(1.5).Value.Float64(), 0.0001)
}

func TestError(t *testing.T) {
	assert.Equal(t, "boom", Error(errors.New("boom")).Value.String())
	assert.Empty(t, Error(nil).Value.String())
}
