// FILE: lixenwraith/proptype/type.go
package proptype

import (
	"fmt"
	"reflect"
	"sort"
)

// CollisionPolicy decides what happens when two descriptors claim the same public name,
// e.g. an alias that equals another property's private name.
type CollisionPolicy int

const (
	// CollisionLastWins keeps the descriptor declared last (default).
	CollisionLastWins CollisionPolicy = iota

	// CollisionReject fails compilation with *DuplicatePropertyError.
	CollisionReject
)

// String returns the policy name.
func (p CollisionPolicy) String() string {
	switch p {
	case CollisionLastWins:
		return "last-wins"
	case CollisionReject:
		return "reject"
	default:
		return fmt.Sprintf("CollisionPolicy(%d)", int(p))
	}
}

// CompileOption customizes Compile.
type CompileOption func(*compileOptions)

type compileOptions struct {
	policy CollisionPolicy
}

// OnCollision sets the collision policy used by Compile.
func OnCollision(policy CollisionPolicy) CompileOption {
	return func(o *compileOptions) { o.policy = policy }
}

// Type is the compiled accessor bundle. Every table is keyed by public name and
// fails with *UnknownPropertyError for names that were never declared.
// A Type is immutable and safe for concurrent use.
//
// Has treats a value as missing when it is nil, including typed nils such as a
// nil slice, map or pointer.
type Type struct {
	Props  Table[func() string]
	Get    Table[func(rec Record) any]
	Set    Table[func(value any) func(rec Record) Record]
	Pick   Table[func(rec Record) Record]
	Pluck  Table[func(records []Record) []any]
	Has    Table[func(rec Record) bool]
	Eq     Table[func(value any) func(rec Record) bool]
	FindBy Table[Finder]
	ObjOf  Table[func(value any) Record]
	Over   Table[func(fn func(any) any) func(rec Record) Record]

	lenses       map[string]Lens
	descriptors  []Descriptor // resolved, one per public name, in declaration order
	privateNames []string
	readers      []func(Record) any // enhanced getter per private name, parallel to privateNames
	tagName      string
}

// Compile normalizes the declarations and builds the accessor bundle.
func Compile(input any, opts ...CompileOption) (*Type, error) {
	var o compileOptions
	for _, opt := range opts {
		opt(&o)
	}

	descriptors, err := Normalize(input)
	if err != nil {
		return nil, err
	}
	return build(descriptors, o.policy)
}

// MustCompile is like Compile but panics on error
func MustCompile(input any, opts ...CompileOption) *Type {
	t, err := Compile(input, opts...)
	if err != nil {
		panic(fmt.Sprintf("proptype: compile failed: %v", err))
	}
	return t
}

// build resolves public names according to policy and fills every table.
func build(descriptors []Descriptor, policy CollisionPolicy) (*Type, error) {
	winners := make(map[string]int, len(descriptors))
	for i, d := range descriptors {
		if prev, exists := winners[d.PublicName]; exists && policy == CollisionReject {
			return nil, &DuplicatePropertyError{
				PublicName: d.PublicName,
				First:      descriptors[prev].PrivateName,
				Second:     d.PrivateName,
			}
		}
		winners[d.PublicName] = i
	}

	size := len(winners)
	t := &Type{
		Props:   newTable[func() string](size),
		Get:     newTable[func(Record) any](size),
		Set:     newTable[func(any) func(Record) Record](size),
		Pick:    newTable[func(Record) Record](size),
		Pluck:   newTable[func([]Record) []any](size),
		Has:     newTable[func(Record) bool](size),
		Eq:      newTable[func(any) func(Record) bool](size),
		FindBy:  newTable[Finder](size),
		ObjOf:   newTable[func(any) Record](size),
		Over:    newTable[func(func(any) any) func(Record) Record](size),
		lenses:  make(map[string]Lens, size),
		tagName: defaultTagName,
	}

	seen := make(map[string]bool)
	for i, d := range descriptors {
		if winners[d.PublicName] != i {
			continue
		}
		t.register(d)
		t.descriptors = append(t.descriptors, d)
		if !seen[d.PrivateName] {
			seen[d.PrivateName] = true
			t.privateNames = append(t.privateNames, d.PrivateName)
			t.readers = append(t.readers, getterFor(d))
		}
	}

	return t, nil
}

// register installs every per-property operation for one resolved descriptor.
func (t *Type) register(d Descriptor) {
	name := d.PublicName
	get := getterFor(d)
	set := setterFor(d)
	lens := Lens{Get: get, Set: set}

	eq := func(value any) func(Record) bool {
		return func(rec Record) bool {
			return reflect.DeepEqual(value, get(rec))
		}
	}

	private := d.PrivateName
	t.Props.ops[name] = func() string { return private }
	t.Get.ops[name] = get
	t.Set.ops[name] = set
	t.Pick.ops[name] = func(rec Record) Record {
		return Record{name: get(rec)}
	}
	t.Pluck.ops[name] = func(records []Record) []any {
		out := make([]any, len(records))
		for i, rec := range records {
			out[i] = get(rec)
		}
		return out
	}
	t.Has.ops[name] = func(rec Record) bool { return !isNil(get(rec)) }
	t.Eq.ops[name] = eq
	t.FindBy.ops[name] = func(value any) func([]Record) (Record, bool) {
		matches := eq(value)
		return func(records []Record) (Record, bool) {
			for _, rec := range records {
				if matches(rec) {
					return rec, true
				}
			}
			return nil, false
		}
	}
	t.ObjOf.ops[name] = func(value any) Record { return set(value)(Record{}) }
	t.Over.ops[name] = lens.Over
	t.lenses[name] = lens
}

// getterFor reads the private key and applies the get enhancer, if any.
func getterFor(d Descriptor) func(Record) any {
	private, enhance := d.PrivateName, d.Get
	if enhance == nil {
		return func(rec Record) any { return rec[private] }
	}
	return func(rec Record) any { return enhance(rec[private], rec) }
}

// setterFor writes the private key, copy-on-write, after the set enhancer, if any.
func setterFor(d Descriptor) func(any) func(Record) Record {
	private, enhance := d.PrivateName, d.Set
	return func(value any) func(Record) Record {
		stored := value
		if enhance != nil {
			stored = enhance(value)
		}
		return func(rec Record) Record { return assoc(rec, private, stored) }
	}
}

// PickAll returns the raw values of every declared storage key, without enhancers.
// Keys absent from rec are present in the result with a nil value.
func (t *Type) PickAll(rec Record) Record {
	out := make(Record, len(t.privateNames))
	for _, private := range t.privateNames {
		out[private] = rec[private]
	}
	return out
}

// AllProps returns the enhanced value of every declared property, one per storage
// key, in declaration order. Aliases do not add entries.
func (t *Type) AllProps(rec Record) []any {
	out := make([]any, len(t.readers))
	for i, read := range t.readers {
		out[i] = read(rec)
	}
	return out
}

// Lens returns the getter/setter pair of a public name.
func (t *Type) Lens(name string) (Lens, error) {
	lens, ok := t.lenses[name]
	if !ok {
		return Lens{}, &UnknownPropertyError{Name: name}
	}
	return lens, nil
}

// Names returns all public names in sorted order.
func (t *Type) Names() []string { return t.Get.Names() }

// PrivateNames returns the storage keys reachable through the bundle, in declaration order.
func (t *Type) PrivateNames() []string {
	return append([]string(nil), t.privateNames...)
}

// Descriptors returns the resolved descriptors, one per public name, in declaration order.
func (t *Type) Descriptors() []Descriptor {
	out := make([]Descriptor, len(t.descriptors))
	for i, d := range t.descriptors {
		d.Alias = append([]string(nil), d.Alias...)
		d.Extra = cloneExtra(d.Extra)
		out[i] = d
	}
	return out
}

// aliasesOf returns the public names that resolve to private, sorted.
func (t *Type) aliasesOf(private string) []string {
	var names []string
	for _, d := range t.descriptors {
		if d.PrivateName == private && d.PublicName != private {
			names = append(names, d.PublicName)
		}
	}
	sort.Strings(names)
	return names
}
