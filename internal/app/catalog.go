package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/guttosm/xslt-messages/catalog"
	"github.com/guttosm/xslt-messages/config"
	"github.com/guttosm/xslt-messages/internal/logger"
	"github.com/guttosm/xslt-messages/internal/metrics"
	"golang.org/x/text/language"
)

// ErrCatalogVerification is returned in strict mode when verification finds issues.
var ErrCatalogVerification = errors.New("catalog verification failed")

// InitializeCatalog loads the message catalogs from cfg.Dir, or the embedded
// set when no directory is configured, and verifies them. Issues are logged
// and exported as metrics; in strict mode they fail startup.
func InitializeCatalog(cfg config.CatalogConfig) (*catalog.Bundle, error) {
	log := logger.Component("catalog")

	base := language.English
	if cfg.BaseLocale != "" {
		tag, err := language.Parse(cfg.BaseLocale)
		if err != nil {
			return nil, fmt.Errorf("parse base locale %q: %w", cfg.BaseLocale, err)
		}
		base = tag
	}

	var fsys fs.FS
	source := "embedded"
	if cfg.Dir != "" {
		fsys = os.DirFS(cfg.Dir)
		source = cfg.Dir
	} else {
		fsys = catalog.Embedded()
	}

	bundle, err := catalog.Load(fsys, catalog.WithBaseLocale(base))
	if err != nil {
		return nil, fmt.Errorf("load catalogs from %s: %w", source, err)
	}

	locales := bundle.Locales()
	names := make([]string, len(locales))
	for i, tag := range locales {
		names[i] = tag.String()
	}
	log.Info().
		Str("source", source).
		Str("base", base.String()).
		Strs("locales", names).
		Int("keys", len(catalog.Keys())).
		Msg("Message catalogs loaded")

	report := bundle.Verify()
	metrics.SetCatalogIssues(issueCounts(report))
	if report.OK() {
		return bundle, nil
	}

	for _, issue := range report.Issues {
		log.Warn().
			Str("locale", issue.Locale.String()).
			Str("key", issue.Key).
			Str("kind", string(issue.Kind)).
			Str("detail", issue.Detail).
			Msg("Catalog issue")
	}
	if cfg.Strict {
		return nil, fmt.Errorf("%w: %d issues", ErrCatalogVerification, len(report.Issues))
	}
	log.Warn().Int("issues", len(report.Issues)).Msg("Catalog verification found issues - continuing")
	return bundle, nil
}

// issueCounts returns the number of issues per kind, zero counts included.
func issueCounts(report catalog.Report) map[string]int {
	kinds := []catalog.IssueKind{
		catalog.IssueMissingKey,
		catalog.IssueUnregisteredKey,
		catalog.IssueEmptyTemplate,
		catalog.IssuePlaceholderMismatch,
		catalog.IssueUnterminatedQuote,
	}
	counts := make(map[string]int, len(kinds))
	for _, kind := range kinds {
		counts[string(kind)] = report.Count(kind)
	}
	return counts
}
