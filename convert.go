// FILE: lixenwraith/proptype/convert.go
package proptype

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// value reads the enhanced value of a public name
func (t *Type) value(name string, rec Record) (any, error) {
	get, err := t.Get.Lookup(name)
	if err != nil {
		return nil, err
	}
	return get(rec), nil
}

// As reads a property through its getter and weakly decodes it into T,
// e.g. As[int64], As[[]string] or As[time.Duration].
// A nil value yields the zero T. Strings like "42", "true" or "1m" convert to
// numbers, booleans and durations; a string decodes to a slice by splitting on ",".
func As[T any](t *Type, name string, rec Record) (T, error) {
	var out T
	val, err := t.value(name, rec)
	if err != nil {
		return out, err
	}
	if val == nil {
		return out, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		TagName:          t.tagName,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return out, fmt.Errorf("decoder creation failed: %w", err)
	}
	if err := decoder.Decode(val); err != nil {
		return out, fmt.Errorf("cannot decode property %s into %T: %w", name, out, err)
	}
	return out, nil
}
