// FILE: lixenwraith/proptype/describe.go
package proptype

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// PropertyInfo describes one public name of a compiled Type for tooling and debugging.
type PropertyInfo struct {
	PublicName  string
	PrivateName string
	Aliases     []string // other public names resolving to the same private name
	HasGetter   bool
	HasSetter   bool
	Extra       map[string]any
}

// Describe returns a snapshot of every public name, sorted by public name.
// Unlike the guarded tables it never fails.
func (t *Type) Describe() []PropertyInfo {
	byName := make(map[string]Descriptor, len(t.descriptors))
	for _, d := range t.descriptors {
		byName[d.PublicName] = d
	}

	infos := make([]PropertyInfo, 0, len(byName))
	for _, name := range t.Names() {
		d := byName[name]
		var aliases []string
		for _, alias := range t.aliasesOf(d.PrivateName) {
			if alias != name {
				aliases = append(aliases, alias)
			}
		}
		if d.PublicName != d.PrivateName {
			aliases = append([]string{d.PrivateName}, aliases...)
		}
		infos = append(infos, PropertyInfo{
			PublicName:  d.PublicName,
			PrivateName: d.PrivateName,
			Aliases:     aliases,
			HasGetter:   d.Get != nil,
			HasSetter:   d.Set != nil,
			Extra:       cloneExtra(d.Extra),
		})
	}
	return infos
}

// Debug returns a formatted string showing all public names and how they resolve
func (t *Type) Debug() string {
	var b strings.Builder
	b.WriteString("Type Debug Info:\n")
	b.WriteString(fmt.Sprintf("Storage keys: %v\n", t.privateNames))
	b.WriteString("Properties:\n")

	for _, info := range t.Describe() {
		b.WriteString(fmt.Sprintf("  %s:\n", info.PublicName))
		b.WriteString(fmt.Sprintf("    Private: %s\n", info.PrivateName))
		if len(info.Aliases) > 0 {
			b.WriteString(fmt.Sprintf("    Aliases: %s\n", strings.Join(info.Aliases, ", ")))
		}
		b.WriteString(fmt.Sprintf("    Getter: %t\n", info.HasGetter))
		b.WriteString(fmt.Sprintf("    Setter: %t\n", info.HasSetter))
		for key, value := range info.Extra {
			b.WriteString(fmt.Sprintf("    %s: %v\n", key, value))
		}
	}

	return b.String()
}

// Validate checks that every required public name has a non-nil value in rec
func (t *Type) Validate(rec Record, required ...string) error {
	var missing []string

	for _, name := range required {
		has, err := t.Has.Lookup(name)
		if err != nil {
			return err
		}
		if !has(rec) {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingProperty, strings.Join(missing, ", "))
	}

	return nil
}

// Export writes the declared storage keys of rec (see PickAll) to w in the given format.
// Nil values are omitted.
func (t *Type) Export(w io.Writer, rec Record, format string) error {
	data := compact(t.PickAll(rec))

	switch strings.ToLower(format) {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(data); err != nil {
			return fmt.Errorf("failed to marshal record to TOML: %w", err)
		}
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(data); err != nil {
			return fmt.Errorf("failed to marshal record to JSON: %w", err)
		}
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		if err := encoder.Encode(data); err != nil {
			return fmt.Errorf("failed to marshal record to YAML: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("failed to flush YAML encoder: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return nil
}
