// Package i18n localizes the service's own API messages, such as error
// responses. Message catalogs of the XSLT processor live in package catalog.
package i18n

import (
	"embed"
	"io/fs"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
	// LocaleQueryParam overrides Accept-Language when present.
	LocaleQueryParam = "lang"
)

//go:embed active.*.toml
var localeFS embed.FS

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	bundle     *i18n.Bundle
	matcher    language.Matcher
	localizers map[string]*i18n.Localizer
}

// NewTranslator creates a translator from the embedded message files.
func NewTranslator() *Translator {
	return newTranslatorFS(localeFS)
}

func newTranslatorFS(fsys fs.FS) *Translator {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(fsys, "active.*.toml")
	if err != nil {
		log.Error().Err(err).Msg("Failed to list API message files")
	}
	for _, name := range files {
		if _, err := bundle.LoadMessageFileFS(fsys, name); err != nil {
			log.Error().Err(err).Str("file", name).Msg("Failed to load API messages")
		}
	}

	tags := bundle.LanguageTags()
	t := &Translator{
		bundle:     bundle,
		matcher:    language.NewMatcher(tags),
		localizers: make(map[string]*i18n.Localizer, len(tags)),
	}
	for _, tag := range tags {
		t.localizers[tag.String()] = i18n.NewLocalizer(bundle, tag.String())
	}
	return t
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Locales returns the supported locales, default first.
func (t *Translator) Locales() []string {
	tags := t.bundle.LanguageTags()
	out := make([]string, len(tags))
	for i, tag := range tags {
		out[i] = tag.String()
	}
	return out
}

// Translate returns the message for key in locale. Unknown locales use the
// default locale and unknown keys return the key itself.
func (t *Translator) Translate(key, locale string) string {
	return t.TranslateWithData(key, locale, nil)
}

// TranslateWithData is Translate for messages that take template data.
// Keys missing from locale come from the default locale.
func (t *Translator) TranslateWithData(key, locale string, data map[string]any) string {
	localizer, ok := t.localizers[t.Match(locale)]
	if !ok {
		localizer = t.localizers[DefaultLocale]
	}
	if localizer == nil {
		return key
	}

	msg, served, _ := localizer.LocalizeWithTag(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if served == language.Und || msg == "" {
		return key
	}
	return msg
}

// Match returns the supported locale closest to an Accept-Language value.
func (t *Translator) Match(acceptLanguage string) string {
	if strings.TrimSpace(acceptLanguage) == "" {
		return DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}
	_, idx, conf := t.matcher.Match(tags...)
	if conf == language.No {
		return DefaultLocale
	}
	return t.bundle.LanguageTags()[idx].String()
}

// Preference returns the raw language preference of a request: the lang
// query parameter when present, the Accept-Language header otherwise.
func Preference(c *gin.Context) string {
	if lang := strings.TrimSpace(c.Query(LocaleQueryParam)); lang != "" {
		return lang
	}
	return c.GetHeader(AcceptLanguageHeader)
}

// GetLocale returns the supported API message locale for a request.
func GetLocale(c *gin.Context) string {
	return GetTranslator().Match(Preference(c))
}
