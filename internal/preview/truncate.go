package preview

import (
	"log/slog"

	"git.home.luguber.info/inful/journalbuilder/internal/content"
	"git.home.luguber.info/inful/journalbuilder/internal/logfields"
)

// Result is the outcome of a selection pass.
type Result struct {
	Elements   []Element
	TotalChars int
	// Available is the number of leaves offered to the pass.
	Available int
}

// Truncate selects leaves greedily in order. The first min(MinElements, MaxElements)
// are always taken. After that selection stops at MaxElements, or at the first
// element that would push the total past MaxChars once at least one element
// beyond the minimum has been taken.
func Truncate(leaves []*content.Leaf, cfg Config, logger *slog.Logger) Result {
	if logger == nil {
		logger = slog.Default()
	}
	forced := min(cfg.MinElements, cfg.MaxElements)
	res := Result{Available: len(leaves)}
	extra := 0

	for _, leaf := range leaves {
		if len(res.Elements) >= cfg.MaxElements {
			debugf(cfg, logger, "maximum elements reached", logfields.Count(len(res.Elements)))
			break
		}
		el := Transform(leaf, cfg)
		if len(res.Elements) >= forced {
			if res.TotalChars+el.Cost > cfg.MaxChars && extra > 0 {
				debugf(cfg, logger, "character budget exceeded", logfields.Chars(res.TotalChars+el.Cost))
				break
			}
			extra++
		}
		res.Elements = append(res.Elements, el)
		res.TotalChars += el.Cost
		debugf(cfg, logger, "element selected",
			logfields.Kind(el.Kind.String()), slog.Int("cost", el.Cost), logfields.Chars(res.TotalChars))
	}
	return res
}

func debugf(cfg Config, logger *slog.Logger, msg string, attrs ...slog.Attr) {
	if !cfg.Debug {
		return
	}
	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}
	logger.Debug("preview: "+msg, args...)
}
