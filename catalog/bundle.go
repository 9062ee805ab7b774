package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

// DefaultPattern matches the catalog files at the root of a file system.
const DefaultPattern = "messages.*.toml"

var (
	// ErrNoCatalogs is returned when no file matches the catalog pattern.
	ErrNoCatalogs = errors.New("no catalog files found")
	// ErrMissingBaseLocale is returned when the base locale has no catalog.
	ErrMissingBaseLocale = errors.New("base locale catalog missing")
	// ErrMissingSentinel is returned when the base catalog lacks BAD_CODE or FORMAT_FAILED.
	ErrMissingSentinel = errors.New("base catalog missing sentinel message")
	// ErrDuplicateLocale is returned when two files declare the same locale.
	ErrDuplicateLocale = errors.New("duplicate catalog locale")
)

// Status describes how a lookup was satisfied.
type Status string

const (
	// StatusFound means the requested locale had the key.
	StatusFound Status = "found"
	// StatusFallback means the key came from the base locale.
	StatusFallback Status = "fallback"
	// StatusBadCode means no catalog had the key and BAD_CODE was served.
	StatusBadCode Status = "bad_code"
)

// Result is the outcome of resolving a key.
type Result struct {
	Key       string       `json:"key"`
	Template  string       `json:"template"`
	Requested language.Tag `json:"requested"`
	Locale    language.Tag `json:"locale"`
	Status    Status       `json:"status"`
	Alias     bool         `json:"alias,omitempty"`
}

// Option configures Load.
type Option func(*options)

type options struct {
	base    language.Tag
	pattern string
}

// WithBaseLocale sets the locale used as fallback. Defaults to English.
func WithBaseLocale(tag language.Tag) Option {
	return func(o *options) {
		o.base = tag
	}
}

// WithPattern sets the glob used to find catalog files.
func WithPattern(pattern string) Option {
	return func(o *options) {
		o.pattern = pattern
	}
}

// Bundle holds every loaded catalog. It is safe for concurrent use.
type Bundle struct {
	base       language.Tag
	tags       []language.Tag
	catalogs   map[language.Tag]*Catalog
	matcher    language.Matcher
	i18n       *i18n.Bundle
	localizers map[language.Tag]*i18n.Localizer
}

// Load reads every catalog file in fsys matching the pattern.
func Load(fsys fs.FS, opts ...Option) (*Bundle, error) {
	o := options{base: language.English, pattern: DefaultPattern}
	for _, opt := range opts {
		opt(&o)
	}

	paths, err := fs.Glob(fsys, o.pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", o.pattern, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: pattern %q", ErrNoCatalogs, o.pattern)
	}
	sort.Strings(paths)

	ib := i18n.NewBundle(o.base)
	ib.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	b := &Bundle{
		base:       o.base,
		catalogs:   make(map[language.Tag]*Catalog, len(paths)),
		i18n:       ib,
		localizers: make(map[language.Tag]*i18n.Localizer, len(paths)),
	}

	for _, path := range paths {
		mf, err := ib.LoadMessageFileFS(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("load catalog %s: %w", path, err)
		}
		if mf.Tag == language.Und {
			return nil, fmt.Errorf("load catalog %s: no locale in file name", path)
		}
		if _, dup := b.catalogs[mf.Tag]; dup {
			return nil, fmt.Errorf("%w: %s (%s)", ErrDuplicateLocale, mf.Tag, path)
		}

		templates := make(map[string]string, len(mf.Messages))
		for _, m := range mf.Messages {
			templates[m.ID] = m.Other
		}
		b.catalogs[mf.Tag] = newCatalog(mf.Tag, templates)
	}

	baseCatalog, ok := b.catalogs[o.base]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingBaseLocale, o.base)
	}
	for _, key := range []string{KeyBadCode, KeyFormatFailed} {
		if t, ok := baseCatalog.Template(key); !ok || t == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingSentinel, key)
		}
	}

	// The base locale goes first so that the matcher falls back to it.
	b.tags = append(b.tags, o.base)
	var others []language.Tag
	for tag := range b.catalogs {
		if tag != o.base {
			others = append(others, tag)
		}
	}
	sort.Slice(others, func(i, j int) bool { return others[i].String() < others[j].String() })
	b.tags = append(b.tags, others...)
	b.matcher = language.NewMatcher(b.tags)

	for _, tag := range b.tags {
		b.localizers[tag] = i18n.NewLocalizer(ib, tag.String())
	}

	return b, nil
}

// Base returns the fallback locale.
func (b *Bundle) Base() language.Tag {
	return b.base
}

// Locales returns the loaded locales, base locale first.
func (b *Bundle) Locales() []language.Tag {
	out := make([]language.Tag, len(b.tags))
	copy(out, b.tags)
	return out
}

// Catalog returns the catalog loaded for tag.
func (b *Bundle) Catalog(tag language.Tag) (*Catalog, bool) {
	c, ok := b.catalogs[tag]
	return c, ok
}

// Match picks the loaded locale that best serves the given preferences.
// Each preference may be a single tag or an Accept-Language header value.
// Empty, malformed or unsupported preferences select the base locale.
func (b *Bundle) Match(locales ...string) language.Tag {
	var prefs []language.Tag
	for _, l := range locales {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		tags, _, err := language.ParseAcceptLanguage(l)
		if err != nil {
			continue
		}
		prefs = append(prefs, tags...)
	}
	if len(prefs) == 0 {
		return b.base
	}

	_, idx, conf := b.matcher.Match(prefs...)
	if conf == language.No {
		return b.base
	}
	return b.tags[idx]
}

// Resolve looks key up for the given preferences. Keys missing from the
// matched locale come from the base locale; keys missing everywhere resolve
// to the matched locale's BAD_CODE text.
func (b *Bundle) Resolve(key string, locales ...string) Result {
	tag := b.Match(locales...)
	id, alias := Canonical(key)
	res := Result{Key: key, Requested: tag, Locale: tag, Alias: alias}

	// A default-language hit comes back with a MessageNotFoundErr for the
	// requested tag. Only an undetermined tag means no catalog had the key.
	msg, served, _ := b.localizers[tag].LocalizeWithTag(&i18n.LocalizeConfig{MessageID: id})
	if served == language.Und {
		res.Template = b.BadCode(tag.String())
		res.Status = StatusBadCode
		return res
	}

	res.Template = msg
	res.Locale = served
	res.Status = StatusFound
	if served != tag {
		res.Status = StatusFallback
	}
	return res
}

// Lookup returns the template for key, following the rules of Resolve.
func (b *Bundle) Lookup(key string, locales ...string) string {
	return b.Resolve(key, locales...).Template
}

// BadCode returns the text served for unknown keys.
func (b *Bundle) BadCode(locales ...string) string {
	return b.sentinel(KeyBadCode, locales)
}

// FormatFailed returns the text a formatter reports when substitution fails.
func (b *Bundle) FormatFailed(locales ...string) string {
	return b.sentinel(KeyFormatFailed, locales)
}

func (b *Bundle) sentinel(key string, locales []string) string {
	tag := b.Match(locales...)
	if t, ok := b.catalogs[tag].Template(key); ok && t != "" {
		return t
	}
	t, _ := b.catalogs[b.base].Template(key)
	return t
}
