// FILE: lixenwraith/proptype/errors.go
package proptype

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors. Typed errors below match them through errors.Is.
var (
	// ErrInvalidDeclaration is returned when a declaration is neither a property name nor an option map.
	ErrInvalidDeclaration = errors.New("proptype: invalid declaration")

	// ErrUnknownProperty is returned when a guarded table is queried for an undeclared name.
	ErrUnknownProperty = errors.New("proptype: unknown property")

	// ErrDuplicateProperty is returned under CollisionReject when a public name is declared twice.
	ErrDuplicateProperty = errors.New("proptype: duplicate property")

	// ErrMissingProperty is returned by Validate when a required property has no value.
	ErrMissingProperty = errors.New("proptype: missing required property")

	// ErrUnsupportedFormat is returned for declaration or export formats other than toml, json, yaml.
	ErrUnsupportedFormat = errors.New("proptype: unsupported format")
)

// UnknownPropertyError names the property that was looked up but never declared.
type UnknownPropertyError struct {
	Name string
}

// Error implements the error interface.
func (e *UnknownPropertyError) Error() string {
	// Example: unknown property 'xyz'
	return "unknown property '" + e.Name + "'"
}

// Is reports whether target is ErrUnknownProperty.
func (e *UnknownPropertyError) Is(target error) bool { return target == ErrUnknownProperty }

// InvalidDeclarationError describes a rejected declaration entry.
type InvalidDeclarationError struct {
	// Index is the position of the entry in the declaration sequence.
	Index int

	// Value is the offending entry.
	Value any

	// Reason explains the rejection.
	Reason string
}

// Error implements the error interface.
func (e *InvalidDeclarationError) Error() string {
	return fmt.Sprintf("%v at index %d (%T): %s", ErrInvalidDeclaration, e.Index, e.Value, e.Reason)
}

// Is reports whether target is ErrInvalidDeclaration.
func (e *InvalidDeclarationError) Is(target error) bool { return target == ErrInvalidDeclaration }

// DuplicatePropertyError is returned when two descriptors claim the same public name.
type DuplicatePropertyError struct {
	PublicName string

	// First and Second are the private names of the colliding descriptors, in declaration order.
	First  string
	Second string
}

// Error implements the error interface.
func (e *DuplicatePropertyError) Error() string {
	return ErrDuplicateProperty.Error() + " " + strconv.Quote(e.PublicName) +
		" (declared for " + strconv.Quote(e.First) + " and " + strconv.Quote(e.Second) + ")"
}

// Is reports whether target is ErrDuplicateProperty.
func (e *DuplicatePropertyError) Is(target error) bool { return target == ErrDuplicateProperty }

func invalid(index int, value any, format string, args ...any) error {
	return &InvalidDeclarationError{Index: index, Value: value, Reason: fmt.Sprintf(format, args...)}
}
