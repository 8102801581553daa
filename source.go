// FILE: lixenwraith/proptype/source.go
package proptype

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Supported declaration and export formats.
const (
	FormatTOML = "toml"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatAuto = "auto"
)

// DecodeDeclarations parses a declaration document into a sequence accepted by
// Normalize and Compile.
//
// The document is either a list of entries (JSON, YAML), each a property name or an
// option table, or a table keyed by private name whose values are option tables:
//
//	[id]
//	[name]
//	alias = ["title", "label"]
//	get = "trim"
//
// TOML and YAML tables keep document order; JSON tables are processed in sorted key
// order. Enhancers are referenced by name and resolved against the enhancers
// registered on a Builder.
func DecodeDeclarations(data []byte, format string) ([]any, error) {
	format = strings.ToLower(format)
	if format == "" || format == FormatAuto {
		format = detectFormatFromContent(data)
		if format == "" {
			return nil, fmt.Errorf("%w: unable to detect declaration format", ErrUnsupportedFormat)
		}
	}

	switch format {
	case FormatTOML:
		return decodeTOML(data)
	case FormatJSON:
		return decodeJSON(data)
	case FormatYAML:
		return decodeYAML(data)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// decodeTOML keeps the order of top-level keys using the decoder metadata.
func decodeTOML(data []byte) ([]any, error) {
	raw := make(map[string]any)
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML declarations: %w", err)
	}

	entries := make([]any, 0, len(raw))
	for _, key := range md.Keys() {
		if len(key) != 1 {
			continue
		}
		name := key[0]
		entries = append(entries, map[string]any{name: raw[name]})
	}
	return entries, nil
}

func decodeJSON(data []byte) ([]any, error) {
	var root any
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber() // Preserve number precision in pass-through options
	if err := decoder.Decode(&root); err != nil {
		return nil, fmt.Errorf("failed to parse JSON declarations: %w", err)
	}

	switch v := root.(type) {
	case []any:
		return v, nil
	case map[string]any:
		return []any{v}, nil
	}
	return nil, fmt.Errorf("%w: JSON declarations must be a list or an object, got %T", ErrInvalidDeclaration, root)
}

// decodeYAML walks the node tree so mapping order survives decoding.
func decodeYAML(data []byte) ([]any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML declarations: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return []any{}, nil
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.MappingNode:
		return yamlMappingEntries(root)
	case yaml.SequenceNode:
		var entries []any
		for _, item := range root.Content {
			switch item.Kind {
			case yaml.ScalarNode:
				entries = append(entries, item.Value)
			case yaml.MappingNode:
				mapped, err := yamlMappingEntries(item)
				if err != nil {
					return nil, err
				}
				entries = append(entries, mapped...)
			default:
				return nil, fmt.Errorf("%w: unexpected YAML node at line %d", ErrInvalidDeclaration, item.Line)
			}
		}
		return entries, nil
	}
	return nil, fmt.Errorf("%w: YAML declarations must be a list or a mapping", ErrInvalidDeclaration)
}

// yamlMappingEntries turns each key of a mapping node into a single-entry declaration.
func yamlMappingEntries(node *yaml.Node) ([]any, error) {
	entries := make([]any, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		var opts any
		if err := value.Decode(&opts); err != nil {
			return nil, fmt.Errorf("failed to decode options of %q: %w", key.Value, err)
		}
		entries = append(entries, map[string]any{key.Value: opts})
	}
	return entries, nil
}

// detectFormatFromContent attempts to detect format by parsing
func detectFormatFromContent(data []byte) string {
	// Try JSON first (strict format)
	var jsonTest any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return FormatJSON
	}

	// Try YAML (superset of JSON, so check after JSON).
	// A bare scalar parses as YAML too, e.g. `a = 1`, so only lists and mappings count.
	var yamlTest any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		switch yamlTest.(type) {
		case []any, map[string]any:
			return FormatYAML
		}
	}

	// Try TOML last
	var tomlTest map[string]any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return FormatTOML
	}

	return ""
}
