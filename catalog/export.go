package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a catalog export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ParseFormat parses an export format name. An empty name means JSON.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	switch f {
	case FormatTOML:
		return "application/toml; charset=utf-8"
	case FormatYAML:
		return "application/yaml; charset=utf-8"
	default:
		return "application/json; charset=utf-8"
	}
}

type jsonExport struct {
	Locale   string  `json:"locale"`
	Messages []Entry `json:"messages"`
}

// Export writes the catalog to w in registry order.
// TOML output can be loaded back with Load.
func (c *Catalog) Export(w io.Writer, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(jsonExport{Locale: c.tag.String(), Messages: c.Entries()})
	case FormatTOML:
		return c.exportTOML(w)
	case FormatYAML:
		return c.exportYAML(w)
	default:
		return fmt.Errorf("unsupported export format %q", f)
	}
}

func (c *Catalog) exportTOML(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "# XSLT processor messages (%s).\n\n", c.tag); err != nil {
		return err
	}
	// One document per entry keeps registry order; a map would be sorted.
	for _, e := range c.Entries() {
		line, err := toml.Marshal(map[string]string{e.Key: e.Template})
		if err != nil {
			return fmt.Errorf("encode %s: %w", e.Key, err)
		}
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}

func (c *Catalog) exportYAML(w io.Writer) error {
	str := func(v string) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
	}

	messages := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range c.Entries() {
		messages.Content = append(messages.Content, str(e.Key), str(e.Template))
	}
	doc := &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			str("locale"), str(c.tag.String()),
			str("messages"), messages,
		},
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
