package catalog_test

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/xslt-messages/catalog"
)

// embeddedMessages decodes one embedded catalog file independently of Load.
func embeddedMessages(t *testing.T, lang string) map[string]string {
	t.Helper()
	data, err := fs.ReadFile(catalog.Embedded(), "messages."+lang+".toml")
	require.NoError(t, err)

	var m map[string]string
	require.NoError(t, toml.Unmarshal(data, &m))
	return m
}

func tomlFile(t *testing.T, m map[string]string) *fstest.MapFile {
	t.Helper()
	data, err := toml.Marshal(m)
	require.NoError(t, err)
	return &fstest.MapFile{Data: data}
}

func copyMessages(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
