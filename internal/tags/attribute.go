// Package tags indexes relevance-scored tagged sections across the corpus.
package tags

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// DefaultRelevance applies when a relevance is absent, unparseable or out of range.
const DefaultRelevance = 100

// Attribute is the markup attribute carrying a section's tags.
const Attribute = "data-tags"

// ParseAttribute reads a tag attribute value into tag -> relevance.
//
// The usual form is comma separated "name" or "name=relevance" tokens. A value
// starting with '{' is read as a JSON object of the same mapping. Malformed input
// never fails: it yields an empty mapping or the default relevance.
func ParseAttribute(raw string) map[string]int {
	out := map[string]int{}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return out
	}
	if strings.HasPrefix(trimmed, "{") {
		return parseObject(trimmed)
	}
	for _, token := range strings.Split(trimmed, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		name, value, hasValue := strings.Cut(token, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		rel := DefaultRelevance
		if hasValue {
			rel = clamp(strings.TrimSpace(value))
		}
		out[name] = rel
	}
	return out
}

func parseObject(raw string) map[string]int {
	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return map[string]int{}
	}
	out := make(map[string]int, len(obj))
	for name, v := range obj {
		switch val := v.(type) {
		case float64:
			if val != math.Trunc(val) || val < 0 || val > 100 {
				out[name] = DefaultRelevance
				continue
			}
			out[name] = int(val)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(val))
			if err != nil {
				// A non-numeric string makes the whole object malformed.
				return map[string]int{}
			}
			out[name] = inRange(n)
		default:
			out[name] = DefaultRelevance
		}
	}
	return out
}

func clamp(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return DefaultRelevance
	}
	return inRange(n)
}

func inRange(n int) int {
	if n < 0 || n > 100 {
		return DefaultRelevance
	}
	return n
}
