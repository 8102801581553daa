// FILE: lixenwraith/proptype/decode.go
package proptype

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

var (
	getterType = reflect.TypeOf(Getter(nil))
	setterType = reflect.TypeOf(Setter(nil))
	aliasType  = reflect.TypeOf([]string(nil))
)

// decodeOptions decodes a raw option map, as produced by a document parser or
// written inline, into Options.
func (n *normalizer) decodeOptions(raw map[string]any) (Options, error) {
	var opts Options

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &opts,
		DecodeHook: n.getDecodeHook(),
	})
	if err != nil {
		return Options{}, fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return Options{}, fmt.Errorf("decode failed: %w", err)
	}
	return opts, nil
}

// getDecodeHook returns the composite decode hook for option maps
func (n *normalizer) getDecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		// alias = "a" is shorthand for alias = ["a"]
		stringToOneElementSliceHookFunc(),

		n.getterHookFunc(),
		n.setterHookFunc(),
	)
}

// stringToOneElementSliceHookFunc wraps a lone string into a one-element []string.
// The string is never split.
func stringToOneElementSliceHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != aliasType {
			return data, nil
		}
		return []string{reflect.ValueOf(data).String()}, nil
	}
}

// getterHookFunc converts the supported getter shapes and registered getter names into Getter.
func (n *normalizer) getterHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t != getterType {
			return data, nil
		}

		switch fn := data.(type) {
		case Getter:
			return fn, nil
		case func(any, Record) any:
			return Getter(fn), nil
		case func(any) any:
			return Getter(func(raw any, _ Record) any { return fn(raw) }), nil
		case string:
			getter, ok := n.getters[fn]
			if !ok {
				return nil, fmt.Errorf("getter %q is not registered", fn)
			}
			return getter, nil
		}
		return nil, fmt.Errorf("unsupported getter type %s", f)
	}
}

// setterHookFunc converts the supported setter shapes and registered setter names into Setter.
func (n *normalizer) setterHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t != setterType {
			return data, nil
		}

		switch fn := data.(type) {
		case Setter:
			return fn, nil
		case func(any) any:
			return Setter(fn), nil
		case string:
			setter, ok := n.setters[fn]
			if !ok {
				return nil, fmt.Errorf("setter %q is not registered", fn)
			}
			return setter, nil
		}
		return nil, fmt.Errorf("unsupported setter type %s", f)
	}
}
