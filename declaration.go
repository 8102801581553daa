// FILE: lixenwraith/proptype/declaration.go
package proptype

import (
	"sort"
)

// Record is the open key-value structure accessors read from and write to.
type Record = map[string]any

// Getter enhances a raw stored value on read. It receives the whole record so
// virtual properties can be derived from sibling fields.
type Getter func(raw any, rec Record) any

// Setter transforms a value before it is stored.
type Setter func(value any) any

// Options is the extended form of a property declaration.
type Options struct {
	// Alias lists additional public names for the property.
	// A lone string in a raw option map is a one-element list.
	Alias []string `mapstructure:"alias"`

	Get Getter `mapstructure:"get"`
	Set Setter `mapstructure:"set"`

	// Extra holds pass-through keys that have no meaning to the compiler.
	Extra map[string]any `mapstructure:",remain"`
}

// Declarations maps private names to their options. One value may declare any
// number of properties; they are processed in sorted key order.
type Declarations map[string]Options

// Descriptor is the canonical form of a declaration for one public name.
// A property with N aliases yields N+1 descriptors sharing PrivateName, Get and Set.
type Descriptor struct {
	PrivateName string
	PublicName  string
	Alias       []string
	Get         Getter
	Set         Setter
	Extra       map[string]any
}

// property is a private name paired with its resolved options.
type property struct {
	name string
	opts Options
}

// Normalize flattens a single declaration or a sequence of declarations into
// canonical descriptors, preserving input order.
//
// Accepted declarations are a property name (string), Declarations,
// map[string]Options, or map[string]any whose values are Options, *Options,
// raw option maps or nil. []string and []any sequences may mix them freely.
func Normalize(input any) ([]Descriptor, error) {
	return (&normalizer{}).normalize(input)
}

// normalizer resolves named enhancers referenced from raw option maps.
type normalizer struct {
	getters map[string]Getter
	setters map[string]Setter
}

func (n *normalizer) normalize(input any) ([]Descriptor, error) {
	var entries []any
	switch v := input.(type) {
	case nil:
		return nil, invalid(0, input, "nil declaration")
	case []any:
		entries = v
	case []string:
		entries = make([]any, len(v))
		for i, name := range v {
			entries[i] = name
		}
	case []Declarations:
		entries = make([]any, len(v))
		for i, decl := range v {
			entries[i] = decl
		}
	default:
		entries = []any{v}
	}

	descriptors := make([]Descriptor, 0, len(entries))
	for i, entry := range entries {
		props, err := n.properties(i, entry)
		if err != nil {
			return nil, err
		}
		for _, p := range props {
			descriptors = append(descriptors, expand(p)...)
		}
	}
	return descriptors, nil
}

// properties canonicalizes one declaration into its properties.
func (n *normalizer) properties(index int, entry any) ([]property, error) {
	switch v := entry.(type) {
	case string:
		if v == "" {
			return nil, invalid(index, entry, "empty property name")
		}
		return []property{{name: v, opts: Options{Alias: []string{}}}}, nil

	case Declarations:
		return n.properties(index, map[string]Options(v))

	case map[string]Options:
		if len(v) == 0 {
			return nil, invalid(index, entry, "empty option map")
		}
		props := make([]property, 0, len(v))
		for _, name := range sortedKeys(v) {
			p, err := n.property(index, name, v[name])
			if err != nil {
				return nil, err
			}
			props = append(props, p)
		}
		return props, nil

	case map[string]any:
		if len(v) == 0 {
			return nil, invalid(index, entry, "empty option map")
		}
		props := make([]property, 0, len(v))
		for _, name := range sortedKeys(v) {
			p, err := n.property(index, name, v[name])
			if err != nil {
				return nil, err
			}
			props = append(props, p)
		}
		return props, nil
	}

	return nil, invalid(index, entry, "expected property name or option map")
}

// property resolves the options of one private name and checks its names.
func (n *normalizer) property(index int, name string, value any) (property, error) {
	if name == "" {
		return property{}, invalid(index, value, "empty property name")
	}

	var opts Options
	switch v := value.(type) {
	case nil:
	case Options:
		opts = v
	case *Options:
		if v != nil {
			opts = *v
		}
	case map[string]any:
		decoded, err := n.decodeOptions(v)
		if err != nil {
			return property{}, invalid(index, value, "property %q: %v", name, err)
		}
		opts = decoded
	default:
		return property{}, invalid(index, value, "property %q: options must be a map, got %T", name, value)
	}

	aliases := make([]string, 0, len(opts.Alias))
	for _, alias := range opts.Alias {
		if alias == "" {
			return property{}, invalid(index, value, "property %q: empty alias", name)
		}
		aliases = append(aliases, alias)
	}
	opts.Alias = aliases
	opts.Extra = cloneExtra(opts.Extra)

	return property{name: name, opts: opts}, nil
}

// expand emits one descriptor per public name: aliases first, then the private name.
func expand(p property) []Descriptor {
	publicNames := append(append([]string{}, p.opts.Alias...), p.name)
	out := make([]Descriptor, len(publicNames))
	for i, publicName := range publicNames {
		out[i] = Descriptor{
			PrivateName: p.name,
			PublicName:  publicName,
			Alias:       p.opts.Alias,
			Get:         p.opts.Get,
			Set:         p.opts.Set,
			Extra:       p.opts.Extra,
		}
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
