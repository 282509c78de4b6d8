package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/journalbuilder/internal/foundation/errors"
	"git.home.luguber.info/inful/journalbuilder/internal/taglist"
	"git.home.luguber.info/inful/journalbuilder/internal/tags"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	require.NoError(t, Validate(cfg))
	assert.Equal(t, OrderDesc, cfg.SortOrder)
	assert.Equal(t, 300, cfg.Truncate.MaxChars)
	assert.Equal(t, 24, cfg.AdjacentMonthSearchRange)
	assert.Equal(t, filepath.Join(".", "tag"), cfg.TagOutputDir())
	assert.Equal(t, taglist.DefaultMarkers(), cfg.Tags.Markers)
}

func TestResolve_Layering(t *testing.T) {
	root := "/srv/journal"
	maxChars := 500
	minEl := 1
	file := &FileConfig{
		CorpusRoot: &root,
		SortOrder:  ptr("ASC"),
		Truncate:   &TruncateFile{MaxChars: &maxChars},
		Tags: &TagsFile{
			DefaultSort: ptr("relevance_desc"),
			Definitions: map[string]TagDefinitionFile{
				"food": {Sort: "date-asc", Description: "Meals"},
			},
		},
	}
	debug := true
	cfg, err := Resolve(Defaults(), file, Overrides{Debug: &debug, MinElements: &minEl})
	require.NoError(t, err)

	assert.Equal(t, root, cfg.CorpusRoot)
	assert.Equal(t, OrderAsc, cfg.SortOrder)
	assert.Equal(t, 500, cfg.Truncate.MaxChars)
	assert.Equal(t, 1, cfg.Truncate.MinElements)
	assert.Equal(t, 6, cfg.Truncate.MaxElements, "unset keys keep defaults")
	assert.True(t, cfg.Preview().Debug)
	assert.Equal(t, tags.RelevanceDesc, cfg.Tags.DefaultSort)
	assert.Equal(t, tags.DateAsc, cfg.Tags.SortFor("food"))
	assert.Equal(t, tags.RelevanceDesc, cfg.Tags.SortFor("other"))
	assert.Equal(t, filepath.Join(root, "tag"), cfg.TagOutputDir())
}

func TestResolve_OverridesWin(t *testing.T) {
	file := &FileConfig{CorpusRoot: ptr("/from/file"), SortOrder: ptr("asc")}
	cfg, err := Resolve(Defaults(), file, Overrides{CorpusRoot: "/from/flag", SortOrder: "desc"})
	require.NoError(t, err)
	assert.Equal(t, "/from/flag", cfg.CorpusRoot)
	assert.Equal(t, OrderDesc, cfg.SortOrder)
}

func TestResolve_DoesNotMutateDefaults(t *testing.T) {
	defaults := Defaults()
	file := &FileConfig{Tags: &TagsFile{Definitions: map[string]TagDefinitionFile{"x": {}}}}
	_, err := Resolve(defaults, file, Overrides{})
	require.NoError(t, err)
	assert.Empty(t, defaults.Tags.Definitions)
}

func TestResolve_Invalid(t *testing.T) {
	tests := []struct {
		name string
		file *FileConfig
		over Overrides
	}{
		{"sort order", &FileConfig{SortOrder: ptr("sideways")}, Overrides{}},
		{"tag sort", nil, Overrides{TagSort: "alphabetical"}},
		{"master sort", &FileConfig{Tags: &TagsFile{MasterSort: ptr("random")}}, Overrides{}},
		{"definition sort", &FileConfig{Tags: &TagsFile{Definitions: map[string]TagDefinitionFile{"a": {Sort: "bogus"}}}}, Overrides{}},
		{"negative range", &FileConfig{AdjacentMonthSearchRange: ptr(-1)}, Overrides{}},
		{"min above max", nil, Overrides{MinElements: ptr(7)}},
		{"empty marker", &FileConfig{Tags: &TagsFile{MasterStartMarker: ptr("")}}, Overrides{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(Defaults(), tt.file, tt.over)
			require.Error(t, err)
			assert.True(t, errors.HasCategory(err, errors.CategoryConfig), "got %v", err)
		})
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("JB_TEST_ROOT", "/data/zakki")
	path := writeFile(t, dir, "journalbuilder.yaml", `
corpus_root: ${JB_TEST_ROOT}
sort_order: asc
truncate:
  max_chars: 120
layout:
  url_prefix: /txt/zakki
  stylesheets: [/a.css, /b.css]
tags:
  master_path: ${JB_TEST_ROOT}/index.html
  definitions:
    travel:
      sort: relevance-asc
      description: "Trips"
journal:
  path: /tmp/journal.db
`)
	cfg, warnings, err := Load(path, Overrides{})
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, "/data/zakki", cfg.CorpusRoot)
	assert.Equal(t, 120, cfg.Truncate.MaxChars)
	assert.Equal(t, []string{"/a.css", "/b.css"}, cfg.Layout.Stylesheets)
	assert.Equal(t, "/data/zakki/index.html", cfg.Tags.MasterPath)
	assert.Equal(t, tags.RelevanceAsc, cfg.Tags.SortFor("travel"))
	assert.Equal(t, "Trips", cfg.Tags.Definitions["travel"].Description)
	assert.Equal(t, "/tmp/journal.db", cfg.Journal.Path)
}

func TestLoad_MissingFileWarns(t *testing.T) {
	cfg, warnings, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), Overrides{CorpusRoot: "/x"})
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "not found")
	assert.Equal(t, "/x", cfg.CorpusRoot)
}

func TestLoad_MalformedFileWarns(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.yaml", "truncate: [unclosed\n")
	cfg, warnings, err := Load(path, Overrides{})
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "failed to parse")
	assert.Equal(t, Defaults().Truncate, cfg.Truncate)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "JB_DOTENV_ROOT=/from/dotenv\n")
	t.Cleanup(func() { os.Unsetenv("JB_DOTENV_ROOT") })
	path := writeFile(t, dir, "journalbuilder.yaml", "corpus_root: ${JB_DOTENV_ROOT}\n")

	cfg, _, err := Load(path, Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "/from/dotenv", cfg.CorpusRoot)
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "journalbuilder.yaml")
	require.NoError(t, Init(path, false))

	err := Init(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	require.NoError(t, Init(path, true))

	cfg, warnings, err := Load(path, Overrides{})
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, "./txt/zakki", cfg.CorpusRoot)
	assert.Equal(t, "./txt/txt_main.html", cfg.Tags.MasterPath)
	assert.Equal(t, tags.RelevanceDesc, cfg.Tags.SortFor("travel"))

	cfg, _, err = Load(path, Overrides{CorpusRoot: "/journal"})
	require.NoError(t, err)
	assert.Equal(t, "/journal", cfg.CorpusRoot)
}
