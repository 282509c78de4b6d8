package config

import (
	"maps"

	"git.home.luguber.info/inful/journalbuilder/internal/foundation"
	"git.home.luguber.info/inful/journalbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/journalbuilder/internal/taglist"
	"git.home.luguber.info/inful/journalbuilder/internal/tags"
)

// FileConfig mirrors the YAML file. Nil fields leave the lower layer untouched.
type FileConfig struct {
	CorpusRoot               *string       `yaml:"corpus_root,omitempty"`
	SortOrder                *string       `yaml:"sort_order,omitempty"`
	Debug                    *bool         `yaml:"debug,omitempty"`
	CreateBackup             *bool         `yaml:"create_backup,omitempty"`
	AdjacentMonthSearchRange *int          `yaml:"adjacent_month_search_range,omitempty"`
	AdjacentYearSearchRange  *int          `yaml:"adjacent_year_search_range,omitempty"`
	Truncate                 *TruncateFile `yaml:"truncate,omitempty"`
	Layout                   *LayoutFile   `yaml:"layout,omitempty"`
	Tags                     *TagsFile     `yaml:"tags,omitempty"`
	Journal                  *JournalFile  `yaml:"journal,omitempty"`
	Metrics                  *MetricsFile  `yaml:"metrics,omitempty"`
}

type JournalFile struct {
	Path *string `yaml:"path,omitempty"`
}

type MetricsFile struct {
	Textfile *string `yaml:"textfile,omitempty"`
}

// TruncateFile is merged key by key into the default bounds.
type TruncateFile struct {
	MaxChars           *int `yaml:"max_chars,omitempty"`
	MinElements        *int `yaml:"min_elements,omitempty"`
	MaxElements        *int `yaml:"max_elements,omitempty"`
	TextTruncateLength *int `yaml:"text_truncate_length,omitempty"`
	MaxListItems       *int `yaml:"max_list_items,omitempty"`
	ListItemEstimate   *int `yaml:"list_item_estimate,omitempty"`
}

type LayoutFile struct {
	EntriesDir  *string  `yaml:"entries_dir,omitempty"`
	Extension   *string  `yaml:"extension,omitempty"`
	URLPrefix   *string  `yaml:"url_prefix,omitempty"`
	Lang        *string  `yaml:"lang,omitempty"`
	Stylesheets []string `yaml:"stylesheets,omitempty"`
	ReadMore    *string  `yaml:"read_more,omitempty"`
}

type TagsFile struct {
	OutputDir         *string                      `yaml:"output_dir,omitempty"`
	DefaultSort       *string                      `yaml:"default_sort,omitempty"`
	UpdateMaster      *bool                        `yaml:"update_master,omitempty"`
	MasterPath        *string                      `yaml:"master_path,omitempty"`
	MasterSort        *string                      `yaml:"master_sort,omitempty"`
	MasterStartMarker *string                      `yaml:"master_start_marker,omitempty"`
	MasterEndMarker   *string                      `yaml:"master_end_marker,omitempty"`
	Definitions       map[string]TagDefinitionFile `yaml:"definitions,omitempty"`
}

type TagDefinitionFile struct {
	Sort        string `yaml:"sort,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// Overrides come from command-line flags and win over the file.
type Overrides struct {
	CorpusRoot   string
	SortOrder    string
	Debug        *bool
	CreateBackup *bool
	MaxChars     *int
	MinElements  *int
	MaxElements  *int
	TagSort      string
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func setString(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

// Resolve layers file and overrides over defaults and validates the result.
// file may be nil.
func Resolve(defaults Config, file *FileConfig, overrides Overrides) (Config, error) {
	cfg := defaults
	cfg.Layout.Stylesheets = append([]string(nil), defaults.Layout.Stylesheets...)
	cfg.Tags.Definitions = maps.Clone(defaults.Tags.Definitions)
	if cfg.Tags.Definitions == nil {
		cfg.Tags.Definitions = map[string]TagDefinition{}
	}
	sortOrder := string(cfg.SortOrder)
	tagSort := string(cfg.Tags.DefaultSort)
	masterSort := string(cfg.Tags.MasterSort)
	rawDefs := map[string]TagDefinitionFile{}

	if file != nil {
		set(&cfg.CorpusRoot, file.CorpusRoot)
		set(&sortOrder, file.SortOrder)
		set(&cfg.Debug, file.Debug)
		set(&cfg.CreateBackup, file.CreateBackup)
		set(&cfg.AdjacentMonthSearchRange, file.AdjacentMonthSearchRange)
		set(&cfg.AdjacentYearSearchRange, file.AdjacentYearSearchRange)
		if t := file.Truncate; t != nil {
			set(&cfg.Truncate.MaxChars, t.MaxChars)
			set(&cfg.Truncate.MinElements, t.MinElements)
			set(&cfg.Truncate.MaxElements, t.MaxElements)
			set(&cfg.Truncate.TextTruncateLength, t.TextTruncateLength)
			set(&cfg.Truncate.MaxListItems, t.MaxListItems)
			set(&cfg.Truncate.ListItemEstimate, t.ListItemEstimate)
		}
		if l := file.Layout; l != nil {
			set(&cfg.Layout.EntriesDir, l.EntriesDir)
			set(&cfg.Layout.Extension, l.Extension)
			set(&cfg.Layout.URLPrefix, l.URLPrefix)
			set(&cfg.Layout.Lang, l.Lang)
			set(&cfg.Layout.ReadMore, l.ReadMore)
			if l.Stylesheets != nil {
				cfg.Layout.Stylesheets = l.Stylesheets
			}
		}
		if t := file.Tags; t != nil {
			set(&cfg.Tags.OutputDir, t.OutputDir)
			set(&tagSort, t.DefaultSort)
			set(&cfg.Tags.UpdateMaster, t.UpdateMaster)
			set(&cfg.Tags.MasterPath, t.MasterPath)
			set(&masterSort, t.MasterSort)
			set(&cfg.Tags.Markers.Start, t.MasterStartMarker)
			set(&cfg.Tags.Markers.End, t.MasterEndMarker)
			maps.Copy(rawDefs, t.Definitions)
		}
		if file.Journal != nil {
			set(&cfg.Journal.Path, file.Journal.Path)
		}
		if file.Metrics != nil {
			set(&cfg.Metrics.Textfile, file.Metrics.Textfile)
		}
	}

	setString(&cfg.CorpusRoot, overrides.CorpusRoot)
	setString(&sortOrder, overrides.SortOrder)
	setString(&tagSort, overrides.TagSort)
	set(&cfg.Debug, overrides.Debug)
	set(&cfg.CreateBackup, overrides.CreateBackup)
	set(&cfg.Truncate.MaxChars, overrides.MaxChars)
	set(&cfg.Truncate.MinElements, overrides.MinElements)
	set(&cfg.Truncate.MaxElements, overrides.MaxElements)

	var err error
	if cfg.SortOrder, err = entryOrders.Parse(sortOrder); err != nil {
		return cfg, invalid("sort_order", err)
	}
	if cfg.Tags.DefaultSort, err = tags.ParseSortOrder(tagSort); err != nil {
		return cfg, invalid("tags.default_sort", err)
	}
	if cfg.Tags.MasterSort, err = taglist.ParseOrder(masterSort); err != nil {
		return cfg, invalid("tags.master_sort", err)
	}
	for name, def := range rawDefs {
		resolved := TagDefinition{Description: def.Description}
		if def.Sort != "" {
			if resolved.Sort, err = tags.ParseSortOrder(def.Sort); err != nil {
				return cfg, invalid("tags.definitions."+name+".sort", err)
			}
		}
		cfg.Tags.Definitions[name] = resolved
	}
	return cfg, Validate(cfg)
}

var configRules = foundation.NewValidatorChain(
	foundation.NotEmpty("corpus_root", func(c Config) string { return c.CorpusRoot }),
	foundation.NonNegative("adjacent_month_search_range", func(c Config) int { return c.AdjacentMonthSearchRange }),
	foundation.NonNegative("adjacent_year_search_range", func(c Config) int { return c.AdjacentYearSearchRange }),
	foundation.NotEmpty("layout.entries_dir", func(c Config) string { return c.Layout.EntriesDir }),
	foundation.NotEmpty("layout.extension", func(c Config) string { return c.Layout.Extension }),
	foundation.NotEmpty("tags.master_start_marker", func(c Config) string { return c.Tags.Markers.Start }),
	foundation.NotEmpty("tags.master_end_marker", func(c Config) string { return c.Tags.Markers.End }),
)

// Validate checks the invariants of a resolved configuration.
func Validate(cfg Config) error {
	if err := configRules.Validate(cfg).ToError(errors.CategoryConfig); err != nil {
		return err
	}
	return cfg.Truncate.Validate()
}

func invalid(field string, err error) error {
	return errors.WrapError(err, errors.CategoryConfig, "invalid configuration value").
		Fatal().
		WithContext("field", field).
		Build()
}
