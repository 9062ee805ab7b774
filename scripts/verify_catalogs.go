//go:build ignore

// This script verifies message catalogs against the key registry.
// Run with: go run scripts/verify_catalogs.go [-dir catalog/locales] [-base en]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/guttosm/xslt-messages/catalog"
	"golang.org/x/text/language"
)

func main() {
	dir := flag.String("dir", "catalog/locales", "directory holding messages.<locale>.toml files")
	base := flag.String("base", "en", "base locale")
	flag.Parse()

	tag, err := language.Parse(*base)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing base locale %q: %v\n", *base, err)
		os.Exit(2)
	}

	bundle, err := catalog.Load(os.DirFS(*dir), catalog.WithBaseLocale(tag))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalogs from %s: %v\n", *dir, err)
		os.Exit(2)
	}

	report := bundle.Verify()
	fmt.Printf("Checked %d keys in %d locales (base %s)\n", report.Keys, len(report.Locales), report.Base)
	if report.OK() {
		fmt.Println("No issues found")
		return
	}

	for _, issue := range report.Issues {
		fmt.Println("  " + issue.String())
	}
	fmt.Printf("%d issues found\n", len(report.Issues))
	os.Exit(1)
}
