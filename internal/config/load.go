package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/journalbuilder/internal/foundation/errors"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "journalbuilder.yaml"

// Load reads the YAML file at path (if any), expands environment references
// and resolves it against Defaults and overrides. A missing or unreadable file
// is reported as a warning and the defaults are used.
func Load(path string, overrides Overrides) (Config, []string, error) {
	var warnings []string
	if err := loadEnvFiles(filepath.Dir(path)); err != nil {
		warnings = append(warnings, fmt.Sprintf("failed to load .env file: %v", err))
	}

	file, warning := readFile(path)
	if warning != "" {
		warnings = append(warnings, warning)
	}
	cfg, err := Resolve(Defaults(), file, overrides)
	if err != nil {
		return Config{}, warnings, err
	}
	return cfg, warnings, nil
}

func readFile(path string) (*FileConfig, string) {
	if path == "" {
		return nil, ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Sprintf("configuration file %s not found, using defaults", path)
		}
		return nil, fmt.Sprintf("failed to read configuration file %s: %v, using defaults", path, err)
	}

	expanded := os.ExpandEnv(string(data))
	var file FileConfig
	if err := yaml.Unmarshal([]byte(expanded), &file); err != nil {
		return nil, fmt.Sprintf("failed to parse configuration file %s: %v, using defaults", path, err)
	}
	return &file, ""
}

// loadEnvFiles loads .env and .env.local from dir without overriding
// variables already set in the process environment.
func loadEnvFiles(dir string) error {
	for _, name := range []string{".env", ".env.local"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return err
		}
		slog.Debug("Loaded environment file", slog.String("path", p))
	}
	return nil
}

// Init writes an example configuration file.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.ValidationError(fmt.Sprintf("configuration file already exists: %s (use --force to overwrite)", path)).Build()
	}

	data, err := yaml.Marshal(Example())
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal example configuration").Build()
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return errors.FileSystemError("failed to create configuration directory").WithCause(err).Build()
		}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return errors.FileSystemError("failed to write configuration file").
			WithCause(err).
			WithContext("path", path).
			Build()
	}
	return nil
}

// Example is the file written by Init. It spells out every default.
func Example() FileConfig {
	d := Defaults()
	order := string(d.SortOrder)
	tagSort := string(d.Tags.DefaultSort)
	masterSort := string(d.Tags.MasterSort)
	journal := ".journalbuilder/journal.db"
	return FileConfig{
		CorpusRoot:               ptr("./txt/zakki"),
		SortOrder:                &order,
		Debug:                    ptr(false),
		CreateBackup:             ptr(d.CreateBackup),
		AdjacentMonthSearchRange: ptr(d.AdjacentMonthSearchRange),
		AdjacentYearSearchRange:  ptr(d.AdjacentYearSearchRange),
		Truncate: &TruncateFile{
			MaxChars:           ptr(d.Truncate.MaxChars),
			MinElements:        ptr(d.Truncate.MinElements),
			MaxElements:        ptr(d.Truncate.MaxElements),
			TextTruncateLength: ptr(d.Truncate.TextTruncateLength),
			MaxListItems:       ptr(d.Truncate.MaxListItems),
			ListItemEstimate:   ptr(d.Truncate.ListItemEstimate),
		},
		Layout: &LayoutFile{
			EntriesDir:  ptr(d.Layout.EntriesDir),
			Extension:   ptr(d.Layout.Extension),
			URLPrefix:   ptr("/txt/zakki"),
			Lang:        ptr(d.Layout.Lang),
			Stylesheets: []string{"/css/journal.css"},
			ReadMore:    ptr(d.Layout.ReadMore),
		},
		Tags: &TagsFile{
			DefaultSort:       &tagSort,
			UpdateMaster:      ptr(d.Tags.UpdateMaster),
			MasterPath:        ptr("./txt/txt_main.html"),
			MasterSort:        &masterSort,
			MasterStartMarker: ptr(d.Tags.Markers.Start),
			MasterEndMarker:   ptr(d.Tags.Markers.End),
			Definitions: map[string]TagDefinitionFile{
				"travel": {Sort: "relevance-desc", Description: "Trips and *places*."},
			},
		},
		Journal: &JournalFile{Path: &journal},
	}
}

func ptr[T any](v T) *T { return &v }
