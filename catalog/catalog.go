// Package catalog holds the message catalogs of the XSLT processor: the key
// registry, one template table per locale and the lookup rules that pick a
// template for a key and a list of language preferences.
//
// Templates are returned exactly as stored. Placeholders such as {0} and
// doubled single quotes are left for the formatter that consumes them.
package catalog

import (
	"sort"

	"golang.org/x/text/language"
)

// Entry is a single key and its template.
type Entry struct {
	Key      string `json:"key" yaml:"key"`
	Template string `json:"template" yaml:"template"`
}

// Catalog is the template table of one locale. It is immutable once loaded.
type Catalog struct {
	tag       language.Tag
	templates map[string]string
}

func newCatalog(tag language.Tag, templates map[string]string) *Catalog {
	return &Catalog{tag: tag, templates: templates}
}

// Tag returns the locale of the catalog.
func (c *Catalog) Tag() language.Tag {
	return c.tag
}

// Template returns the template stored for key.
func (c *Catalog) Template(key string) (string, bool) {
	t, ok := c.templates[key]
	return t, ok
}

// Len returns the number of templates in the catalog.
func (c *Catalog) Len() int {
	return len(c.templates)
}

// Keys returns the catalog keys. Registered keys come first in registry
// order, followed by any unregistered keys sorted by name.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.templates))
	var extra []string
	for _, k := range registry {
		if _, ok := c.templates[k]; ok {
			keys = append(keys, k)
		}
	}
	for k := range c.templates {
		if !IsRegistered(k) {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	return append(keys, extra...)
}

// Entries returns the catalog contents in the order of Keys.
func (c *Catalog) Entries() []Entry {
	keys := c.Keys()
	entries := make([]Entry, len(keys))
	for i, k := range keys {
		entries[i] = Entry{Key: k, Template: c.templates[k]}
	}
	return entries
}
