//go:build ignore

// This script regenerates catalog/keys.go from the English catalog.
// Run with: go run scripts/generate_keys.go
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"go/format"
	"os"
	"strings"
	"unicode"

	"github.com/pelletier/go-toml/v2"
)

const (
	source = "catalog/locales/messages.en.toml"
	target = "catalog/keys.go"
)

// Constants whose Go name does not follow from the key string.
var overrides = map[string]string{
	"ER0000": "ErrKey0000",
	"ER_INVALID_SET_NAMESPACE_URI_VALUE_FOR_RESULT_PREFIX": "ErrKeyInvalidNamespaceURIValueForResultPrefix",
	"WG_CONFLICT_BETWEEN_XSLSTRIPSPACE_AND_XSLPRESERVESP":  "WarnKeyConflictBetweenXslstripspaceAndXslpreservespace",
}

var initialisms = map[string]bool{
	"AVT": true, "DOM": true, "DTD": true, "DTM": true, "NS": true, "PI": true,
	"SAX": true, "SAX1": true, "URI": true, "URL": true, "UTF16": true, "UTF8": true,
	"XML": true, "XSL": true, "XSLT": true, "XSLTC": true,
}

var mixedCase = map[string]string{
	"XPATH":       "XPath",
	"QNAME":       "QName",
	"NCNAME":      "NCName",
	"NMTOKEN":     "NMToken",
	"IOEXCEPTION": "IOException",
	"DOMSOURCE":   "DOMSource",
	"XERCESDOM":   "XercesDOM",
	"BSFMGR":      "BSFMgr",
	"NSPREFIX":    "NSPrefix",
	"RESULTNS":    "ResultNS",
}

var camelParts = map[string]string{
	"ui":    "UI",
	"xsltc": "XSLTC",
}

func upperWord(w string) string {
	if initialisms[w] {
		return w
	}
	if m, ok := mixedCase[w]; ok {
		return m
	}
	return w[:1] + strings.ToLower(w[1:])
}

func isUpperKey(key string) bool {
	return strings.IndexFunc(key, unicode.IsLower) < 0
}

func constName(key string) string {
	if name, ok := overrides[key]; ok {
		return name
	}

	parts := strings.Split(key, "_")
	var b strings.Builder
	if isUpperKey(key) {
		switch parts[0] {
		case "ER":
			b.WriteString("ErrKey")
			parts = parts[1:]
		case "WG":
			b.WriteString("WarnKey")
			parts = parts[1:]
		default:
			b.WriteString("Key")
		}
		for _, p := range parts {
			b.WriteString(upperWord(p))
		}
		return b.String()
	}

	b.WriteString("Key")
	for _, p := range parts {
		if m, ok := camelParts[p]; ok {
			b.WriteString(m)
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]) + p[1:])
	}
	return b.String()
}

// orderedKeys returns the keys of a flat TOML file in file order.
func orderedKeys(data []byte) ([]string, error) {
	var keys []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, _, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("malformed line %q", line)
		}
		keys = append(keys, strings.TrimSpace(key))
	}
	return keys, scanner.Err()
}

func main() {
	data, err := os.ReadFile(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", source, err)
		os.Exit(1)
	}

	var messages map[string]string
	if err := toml.Unmarshal(data, &messages); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %s: %v\n", source, err)
		os.Exit(1)
	}

	keys, err := orderedKeys(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning %s: %v\n", source, err)
		os.Exit(1)
	}
	if len(keys) != len(messages) {
		fmt.Fprintf(os.Stderr, "Error: scanned %d keys but decoded %d\n", len(keys), len(messages))
		os.Exit(1)
	}

	seen := make(map[string]string, len(keys))
	names := make([]string, len(keys))
	for i, key := range keys {
		name := constName(key)
		if other, dup := seen[name]; dup {
			fmt.Fprintf(os.Stderr, "Error: %s and %s both map to %s\n", other, key, name)
			os.Exit(1)
		}
		seen[name] = key
		names[i] = name
	}

	var buf bytes.Buffer
	buf.WriteString("// Code generated by scripts/generate_keys.go; DO NOT EDIT.\n\npackage catalog\n\n")
	buf.WriteString("// Message keys shared by every locale catalog, in registry order.\nconst (\n")
	for i, key := range keys {
		fmt.Fprintf(&buf, "\t%s = %q\n", names[i], key)
	}
	buf.WriteString(")\n\nvar registry = []string{\n")
	for _, name := range names {
		fmt.Fprintf(&buf, "\t%s,\n", name)
	}
	buf.WriteString("}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(target, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", target, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d keys to %s\n", len(keys), target)
}
