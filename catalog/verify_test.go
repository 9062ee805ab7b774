package catalog_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/guttosm/xslt-messages/catalog"
)

func TestVerify_ReportsIssues(t *testing.T) {
	en := embeddedMessages(t, "en")
	it := copyMessages(embeddedMessages(t, "it"))

	delete(it, catalog.ErrKeyIllegalAttribute)
	it["ER_NOT_IN_REGISTRY"] = "extra"
	it[catalog.ErrKeyNullSourcenodeApplyimports] = "  "
	it[catalog.ErrKeyCannotAdd] = "Impossibile aggiungere {0}"
	it[catalog.ErrKeyTemplateNotFound] = "{0}: impossibile trovare l'modello"

	fsys := fstest.MapFS{
		"messages.en.toml": tomlFile(t, en),
		"messages.it.toml": tomlFile(t, it),
	}
	b, err := catalog.Load(fsys)
	require.NoError(t, err)

	report := b.Verify()
	assert.False(t, report.OK())
	assert.Equal(t, language.English, report.Base)

	find := func(key string, kind catalog.IssueKind) bool {
		for _, i := range report.Issues {
			if i.Key == key && i.Kind == kind {
				assert.Equal(t, language.Italian, i.Locale)
				return true
			}
		}
		return false
	}

	assert.True(t, find(catalog.ErrKeyIllegalAttribute, catalog.IssueMissingKey))
	assert.True(t, find("ER_NOT_IN_REGISTRY", catalog.IssueUnregisteredKey))
	assert.True(t, find(catalog.ErrKeyNullSourcenodeApplyimports, catalog.IssueEmptyTemplate))
	assert.True(t, find(catalog.ErrKeyCannotAdd, catalog.IssuePlaceholderMismatch))
	assert.True(t, find(catalog.ErrKeyTemplateNotFound, catalog.IssueUnterminatedQuote))

	assert.Equal(t, 1, report.Count(catalog.IssueMissingKey))
	assert.Equal(t, 1, report.Count(catalog.IssueUnregisteredKey))
	assert.Equal(t, 1, report.Count(catalog.IssueEmptyTemplate))
}

func TestVerify_PlaceholderMismatchDetail(t *testing.T) {
	en := map[string]string{
		catalog.KeyBadCode:      "bad code",
		catalog.KeyFormatFailed: "format failed",
		catalog.ErrKeyCannotAdd: "Can not add {0} to {1}",
	}
	sv := copyMessages(en)
	sv[catalog.ErrKeyCannotAdd] = "Kan inte lägga till {0} i {2}"

	b, err := catalog.Load(fstest.MapFS{
		"messages.en.toml": tomlFile(t, en),
		"messages.sv.toml": tomlFile(t, sv),
	})
	require.NoError(t, err)

	report := b.Verify()
	require.Equal(t, 1, report.Count(catalog.IssuePlaceholderMismatch))
	for _, i := range report.Issues {
		if i.Kind == catalog.IssuePlaceholderMismatch {
			assert.Equal(t, "have [0 2], en has [0 1]", i.Detail)
			assert.Contains(t, i.String(), "placeholder_mismatch")
		}
	}
}

func TestVerify_UnterminatedQuoteInBaseLocale(t *testing.T) {
	en := map[string]string{
		catalog.KeyBadCode:             "bad code",
		catalog.KeyFormatFailed:        "format failed",
		catalog.ErrKeyCannotAdd:        "Can't add {0}",
		catalog.ErrKeyNoCurlybrace:     "Error: Can't have '{' within expression",
		catalog.KeyOptionIN:            "Can't read {default is CR/LF}",
		catalog.ErrKeyTemplateNotFound: "Could not find template named: {0}",
	}
	b, err := catalog.Load(fstest.MapFS{"messages.en.toml": tomlFile(t, en)})
	require.NoError(t, err)

	report := b.Verify()
	require.Equal(t, 1, report.Count(catalog.IssueUnterminatedQuote), "%v", report.Issues)
	for _, i := range report.Issues {
		if i.Kind == catalog.IssueUnterminatedQuote {
			assert.Equal(t, catalog.ErrKeyCannotAdd, i.Key)
			assert.Equal(t, language.English, i.Locale)
		}
	}
}
