package catalog_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/guttosm/xslt-messages/catalog"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected catalog.Format
		wantErr  bool
	}{
		{input: "", expected: catalog.FormatJSON},
		{input: "json", expected: catalog.FormatJSON},
		{input: "TOML", expected: catalog.FormatTOML},
		{input: "yaml", expected: catalog.FormatYAML},
		{input: " yml ", expected: catalog.FormatYAML},
		{input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := catalog.ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormat_ContentType(t *testing.T) {
	assert.Contains(t, catalog.FormatJSON.ContentType(), "application/json")
	assert.Contains(t, catalog.FormatTOML.ContentType(), "application/toml")
	assert.Contains(t, catalog.FormatYAML.ContentType(), "application/yaml")
}

func germanCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, ok := catalog.Default().Catalog(language.German)
	require.True(t, ok)
	return c
}

func TestExport_JSON(t *testing.T) {
	c := germanCatalog(t)

	var buf bytes.Buffer
	require.NoError(t, c.Export(&buf, catalog.FormatJSON))

	var out struct {
		Locale   string          `json:"locale"`
		Messages []catalog.Entry `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "de", out.Locale)
	assert.Equal(t, c.Entries(), out.Messages)
	assert.Contains(t, buf.String(), "<<<<<<<")
}

func TestExport_TOMLRoundTrip(t *testing.T) {
	c := germanCatalog(t)

	var buf bytes.Buffer
	require.NoError(t, c.Export(&buf, catalog.FormatTOML))

	en := embeddedMessages(t, "en")
	fsys := fstest.MapFS{
		"messages.de.toml": &fstest.MapFile{Data: buf.Bytes()},
		"messages.en.toml": tomlFile(t, en),
	}
	b, err := catalog.Load(fsys)
	require.NoError(t, err)

	reloaded, ok := b.Catalog(language.German)
	require.True(t, ok)
	assert.Equal(t, c.Entries(), reloaded.Entries())
}

func TestExport_YAMLKeepsOrder(t *testing.T) {
	c := germanCatalog(t)

	var buf bytes.Buffer
	require.NoError(t, c.Export(&buf, catalog.FormatYAML))

	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Content, 1)

	root := doc.Content[0]
	require.Len(t, root.Content, 4)
	assert.Equal(t, "locale", root.Content[0].Value)
	assert.Equal(t, "de", root.Content[1].Value)

	messages := root.Content[3]
	entries := c.Entries()
	require.Len(t, messages.Content, 2*len(entries))
	for i, e := range entries {
		assert.Equal(t, e.Key, messages.Content[2*i].Value)
		assert.Equal(t, e.Template, messages.Content[2*i+1].Value, e.Key)
	}
}

func TestExport_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, germanCatalog(t).Export(&buf, catalog.Format("xml")))
	assert.Zero(t, buf.Len())
}
