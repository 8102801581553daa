// FILE: lixenwraith/proptype/table.go
package proptype

import "sort"

// Table is a guarded namespace of per-property operations keyed by public name.
// Looking up a name that was never declared fails with *UnknownPropertyError;
// there is no fallback value and no special-cased probe key.
type Table[F any] struct {
	ops map[string]F
}

func newTable[F any](size int) Table[F] {
	return Table[F]{ops: make(map[string]F, size)}
}

// Lookup returns the operation registered for name.
func (t Table[F]) Lookup(name string) (F, error) {
	op, ok := t.ops[name]
	if !ok {
		var zero F
		return zero, &UnknownPropertyError{Name: name}
	}
	return op, nil
}

// Must returns the operation registered for name and panics with
// *UnknownPropertyError if the name is not declared.
func (t Table[F]) Must(name string) F {
	op, err := t.Lookup(name)
	if err != nil {
		panic(err)
	}
	return op
}

// Contains reports whether name is declared. It never fails, so tooling can
// probe arbitrary names safely.
func (t Table[F]) Contains(name string) bool {
	_, ok := t.ops[name]
	return ok
}

// Names returns the declared public names in sorted order.
func (t Table[F]) Names() []string {
	names := make([]string, 0, len(t.ops))
	for name := range t.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of declared public names.
func (t Table[F]) Len() int { return len(t.ops) }
