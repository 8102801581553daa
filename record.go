// FILE: lixenwraith/proptype/record.go
package proptype

import "reflect"

// cloneRecord returns a shallow copy of rec. A nil record yields an empty one.
func cloneRecord(rec Record) Record {
	out := make(Record, len(rec)+1)
	for k, v := range rec {
		out[k] = v
	}
	return out
}

// assoc returns a copy of rec with key set to value.
func assoc(rec Record, key string, value any) Record {
	out := cloneRecord(rec)
	out[key] = value
	return out
}

// cloneExtra copies pass-through options. Nil stays nil.
func cloneExtra(extra map[string]any) map[string]any {
	if extra == nil {
		return nil
	}
	out := make(map[string]any, len(extra))
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// isNil reports whether v is missing: an untyped nil, or a nil pointer, slice,
// map, chan, func or interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// compact drops missing values, for encoders that cannot represent them.
func compact(rec Record) Record {
	out := make(Record, len(rec))
	for k, v := range rec {
		if !isNil(v) {
			out[k] = v
		}
	}
	return out
}
