// FILE: lixenwraith/proptype/struct.go
package proptype

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
)

// defaultTagName is the struct tag read by DeclareStruct, Scan and FromStruct.
const defaultTagName = "prop"

// DeclareStruct derives declarations from the exported fields of a struct.
// The tag `prop:"name,alias=a|b"` sets the private name and aliases; fields without
// a tag use the field name and `prop:"-"` skips the field.
func DeclareStruct(v any) ([]any, error) {
	return declareStruct(v, defaultTagName)
}

func declareStruct(v any, tagName string) ([]any, error) {
	rv := reflect.ValueOf(v)

	// Handle pointer or direct struct value
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, fmt.Errorf("%w: DeclareStruct requires a non-nil struct pointer or value", ErrInvalidDeclaration)
		}
		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: DeclareStruct requires a struct or struct pointer, got %T", ErrInvalidDeclaration, v)
	}

	t := rv.Type()
	decls := make([]any, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get(tagName)
		if tag == "-" {
			continue // Skip this field
		}

		name := field.Name
		var aliases []string
		if tag != "" {
			parts := strings.Split(tag, ",")
			if parts[0] != "" {
				name = parts[0]
			}
			// Other options (omitempty, remain, ...) belong to mapstructure and are ignored here
			for _, opt := range parts[1:] {
				if list, ok := strings.CutPrefix(opt, "alias="); ok && list != "" {
					aliases = append(aliases, strings.Split(list, "|")...)
				}
			}
		}

		if len(aliases) == 0 {
			decls = append(decls, name)
			continue
		}
		decls = append(decls, Declarations{name: {Alias: aliases}})
	}

	return decls, nil
}

// Scan decodes the declared storage keys of rec into the target struct or map.
// Raw values are used; enhancers are not applied.
// The target must be a non-nil pointer. Weakly typed input is accepted.
func (t *Type) Scan(rec Record, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be non-nil pointer, got %T", target)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          t.tagName,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(compact(t.PickAll(rec))); err != nil {
		return fmt.Errorf("failed to scan record into %T: %w", target, err)
	}
	return nil
}

// FromStruct builds a record from a struct, keeping only declared storage keys.
func (t *Type) FromStruct(v any) (Record, error) {
	raw := make(map[string]any)
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &raw,
		TagName: t.tagName,
	})
	if err != nil {
		return nil, fmt.Errorf("decoder creation failed: %w", err)
	}
	if err := decoder.Decode(v); err != nil {
		return nil, fmt.Errorf("failed to convert %T into a record: %w", v, err)
	}

	rec := make(Record, len(t.privateNames))
	for _, private := range t.privateNames {
		if value, ok := raw[private]; ok {
			rec[private] = value
		}
	}
	return rec, nil
}
