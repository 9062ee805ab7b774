package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// IssueKind classifies a verification finding.
type IssueKind string

const (
	IssueMissingKey          IssueKind = "missing_key"
	IssueUnregisteredKey     IssueKind = "unregistered_key"
	IssueEmptyTemplate       IssueKind = "empty_template"
	IssuePlaceholderMismatch IssueKind = "placeholder_mismatch"
	IssueUnterminatedQuote   IssueKind = "unterminated_quote"
)

// Issue is a single verification finding.
type Issue struct {
	Locale language.Tag `json:"locale"`
	Key    string       `json:"key"`
	Kind   IssueKind    `json:"kind"`
	Detail string       `json:"detail,omitempty"`
}

func (i Issue) String() string {
	if i.Detail == "" {
		return fmt.Sprintf("%s %s: %s", i.Locale, i.Key, i.Kind)
	}
	return fmt.Sprintf("%s %s: %s (%s)", i.Locale, i.Key, i.Kind, i.Detail)
}

// Report is the result of Verify.
type Report struct {
	Base    language.Tag   `json:"base"`
	Locales []language.Tag `json:"locales"`
	Keys    int            `json:"keys"`
	Issues  []Issue        `json:"issues"`
}

// OK reports whether verification found nothing.
func (r Report) OK() bool {
	return len(r.Issues) == 0
}

// Count returns the number of issues of the given kind.
func (r Report) Count(kind IssueKind) int {
	n := 0
	for _, i := range r.Issues {
		if i.Kind == kind {
			n++
		}
	}
	return n
}

// Verify checks every catalog against the registry and the base locale.
func (b *Bundle) Verify() Report {
	report := Report{
		Base:    b.base,
		Locales: b.Locales(),
		Keys:    len(registry),
		Issues:  []Issue{},
	}

	base := b.catalogs[b.base]
	for _, tag := range b.tags {
		c := b.catalogs[tag]
		add := func(key string, kind IssueKind, detail string) {
			report.Issues = append(report.Issues, Issue{Locale: tag, Key: key, Kind: kind, Detail: detail})
		}

		for _, key := range registry {
			if _, ok := c.Template(key); !ok {
				add(key, IssueMissingKey, "")
			}
		}

		for _, key := range c.Keys() {
			tmpl, _ := c.Template(key)
			if !IsRegistered(key) {
				add(key, IssueUnregisteredKey, "")
			}
			if strings.TrimSpace(tmpl) == "" {
				add(key, IssueEmptyTemplate, "")
				continue
			}

			got, err := Placeholders(tmpl)
			if errors.Is(err, ErrUnterminatedQuote) && takesArguments(tmpl) {
				add(key, IssueUnterminatedQuote, "")
			}
			if tag == b.base {
				continue
			}
			baseTmpl, ok := base.Template(key)
			if !ok {
				continue
			}
			want, _ := Placeholders(baseTmpl)
			if !slices.Equal(got, want) {
				add(key, IssuePlaceholderMismatch, fmt.Sprintf("have %v, %s has %v", got, b.base, want))
			}
		}
	}

	return report
}
