// Package preview compresses an entry body into a bounded preview.
package preview

import (
	"git.home.luguber.info/inful/journalbuilder/internal/foundation"
	"git.home.luguber.info/inful/journalbuilder/internal/foundation/errors"
)

// Config bounds a preview.
type Config struct {
	MaxChars           int
	MinElements        int
	MaxElements        int
	TextTruncateLength int
	MaxListItems       int
	ListItemEstimate   int
	Debug              bool
}

// DefaultConfig returns the stock preview bounds.
func DefaultConfig() Config {
	return Config{
		MaxChars:           300,
		MinElements:        2,
		MaxElements:        6,
		TextTruncateLength: 120,
		MaxListItems:       3,
		ListItemEstimate:   25,
	}
}

var configRules = foundation.NewValidatorChain(
	foundation.NonNegative("max_chars", func(c Config) int { return c.MaxChars }),
	foundation.NonNegative("min_elements", func(c Config) int { return c.MinElements }),
	foundation.NonNegative("max_elements", func(c Config) int { return c.MaxElements }),
	foundation.NonNegative("text_truncate_length", func(c Config) int { return c.TextTruncateLength }),
	foundation.NonNegative("max_list_items", func(c Config) int { return c.MaxListItems }),
	foundation.NonNegative("list_item_estimate", func(c Config) int { return c.ListItemEstimate }),
	foundation.Check("min_elements", "range", "must not exceed max_elements",
		func(c Config) bool { return c.MinElements <= c.MaxElements }),
)

// Validate checks the invariants of the bounds.
func (c Config) Validate() error {
	return configRules.Validate(c).ToError(errors.CategoryConfig)
}
