// FILE: lixenwraith/proptype/builder.go
package proptype

import (
	"fmt"
)

// ValidatorFunc defines the signature for a function that can validate a compiled Type.
// It receives the fully built *Type and should return an error if validation fails.
type ValidatorFunc func(t *Type) error

// source is a declaration document waiting to be decoded. It holds its place
// among the declarations until Build.
type source struct {
	data   []byte
	format string
}

// Builder provides a fluent interface for compiling a Type from several declaration
// sources and named enhancers.
type Builder struct {
	decls      []any
	getters    map[string]Getter
	setters    map[string]Setter
	policy     CollisionPolicy
	tagName    string
	err        error
	validators []ValidatorFunc
}

// NewBuilder creates a new type builder
func NewBuilder() *Builder {
	return &Builder{
		getters:    make(map[string]Getter),
		setters:    make(map[string]Setter),
		policy:     CollisionLastWins,
		tagName:    defaultTagName,
		validators: make([]ValidatorFunc, 0),
	}
}

// WithDeclarations appends declarations in any form accepted by Normalize.
// Declarations from all calls and sources are compiled in the order they were added.
func (b *Builder) WithDeclarations(decls ...any) *Builder {
	for _, decl := range decls {
		switch v := decl.(type) {
		case []any:
			b.decls = append(b.decls, v...)
		case []string:
			for _, name := range v {
				b.decls = append(b.decls, name)
			}
		default:
			b.decls = append(b.decls, v)
		}
	}
	return b
}

// WithSource adds a declaration document (see DecodeDeclarations). It is decoded at
// Build time, after all named enhancers are known.
func (b *Builder) WithSource(data []byte, format string) *Builder {
	b.decls = append(b.decls, source{data: data, format: format})
	return b
}

// WithStruct appends declarations derived from the tags of a struct (see DeclareStruct).
func (b *Builder) WithStruct(v any) *Builder {
	decls, err := declareStruct(v, b.tagName)
	if err != nil {
		if b.err == nil {
			b.err = err
		}
		return b
	}
	b.decls = append(b.decls, decls...)
	return b
}

// WithGetter registers a getter that documents and raw option maps can reference by name.
func (b *Builder) WithGetter(name string, fn Getter) *Builder {
	if name == "" || fn == nil {
		if b.err == nil {
			b.err = fmt.Errorf("%w: getter registration requires a name and a function", ErrInvalidDeclaration)
		}
		return b
	}
	b.getters[name] = fn
	return b
}

// WithSetter registers a setter that documents and raw option maps can reference by name.
func (b *Builder) WithSetter(name string, fn Setter) *Builder {
	if name == "" || fn == nil {
		if b.err == nil {
			b.err = fmt.Errorf("%w: setter registration requires a name and a function", ErrInvalidDeclaration)
		}
		return b
	}
	b.setters[name] = fn
	return b
}

// WithCollisionPolicy sets how duplicate public names are resolved
func (b *Builder) WithCollisionPolicy(policy CollisionPolicy) *Builder {
	b.policy = policy
	return b
}

// WithTagName sets the struct tag used by WithStruct, Scan and FromStruct.
// It must be called before WithStruct to affect it.
func (b *Builder) WithTagName(tagName string) *Builder {
	if tagName != "" {
		b.tagName = tagName
	}
	return b
}

// WithValidator adds a validation function that runs at the end of the build process
// Multiple validators can be added and are executed in the order they are added
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build compiles the Type with all specified options
func (b *Builder) Build() (*Type, error) {
	if b.err != nil {
		return nil, b.err
	}

	decls := make([]any, 0, len(b.decls))
	sources := 0
	for _, decl := range b.decls {
		src, ok := decl.(source)
		if !ok {
			decls = append(decls, decl)
			continue
		}
		entries, err := DecodeDeclarations(src.data, src.format)
		if err != nil {
			return nil, fmt.Errorf("failed to decode declaration source %d: %w", sources, err)
		}
		sources++
		decls = append(decls, entries...)
	}

	n := &normalizer{getters: b.getters, setters: b.setters}
	descriptors, err := n.normalize(decls)
	if err != nil {
		return nil, err
	}

	t, err := build(descriptors, b.policy)
	if err != nil {
		return nil, err
	}
	t.tagName = b.tagName

	// Run validators
	for _, validator := range b.validators {
		if err := validator(t); err != nil {
			return nil, fmt.Errorf("type validation failed: %w", err)
		}
	}

	return t, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Type {
	t, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("proptype build failed: %v", err))
	}
	return t
}
