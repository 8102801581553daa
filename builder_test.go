// FILE: lixenwraith/proptype/builder_test.go
package proptype

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuilder tests the builder pattern
func TestBuilder(t *testing.T) {
	t.Run("BasicBuilder", func(t *testing.T) {
		typ, err := NewBuilder().
			WithDeclarations("id", []string{"name", "email"}).
			Build()

		require.NoError(t, err)
		assert.Equal(t, []string{"email", "id", "name"}, typ.Names())
		assert.Equal(t, []string{"id", "name", "email"}, typ.PrivateNames())
	})

	t.Run("BuilderWithAllOptions", func(t *testing.T) {
		doc := `
[name]
alias = ["title"]
get = "trim"
set = "lower"
`
		typ, err := NewBuilder().
			WithDeclarations("id").
			WithGetter("trim", func(raw any, _ Record) any {
				if s, ok := raw.(string); ok {
					return strings.TrimSpace(s)
				}
				return raw
			}).
			WithSetter("lower", func(v any) any { return strings.ToLower(v.(string)) }).
			WithSource([]byte(doc), FormatTOML).
			WithCollisionPolicy(CollisionReject).
			Build()

		require.NoError(t, err)
		rec := typ.Set.Must("title")("  ADA ")(Record{"id": 1})
		assert.Equal(t, "  ada ", rec["name"])
		assert.Equal(t, "ada", typ.Get.Must("title")(rec))
		assert.Equal(t, []string{"id", "name"}, typ.PrivateNames())
	})

	t.Run("KeepsAddOrder", func(t *testing.T) {
		typ, err := NewBuilder().
			WithSource([]byte(`["b"]`), FormatJSON).
			WithDeclarations("a").
			WithSource([]byte("- c\n"), FormatYAML).
			Build()

		require.NoError(t, err)
		assert.Equal(t, []string{"b", "a", "c"}, typ.PrivateNames())
	})

	t.Run("LaterDeclarationWinsOverEarlierSource", func(t *testing.T) {
		typ, err := NewBuilder().
			WithSource([]byte(`["a"]`), FormatJSON).
			WithDeclarations(Declarations{"b": {Alias: []string{"a"}}}).
			Build()

		require.NoError(t, err)
		assert.Equal(t, "b", typ.Props.Must("a")())
		assert.Equal(t, []string{"b"}, typ.PrivateNames())
	})

	t.Run("CollisionAcrossSources", func(t *testing.T) {
		builder := func() *Builder {
			return NewBuilder().
				WithDeclarations("a").
				WithSource([]byte("- b:\n    alias: a\n"), FormatYAML)
		}

		typ, err := builder().Build()
		require.NoError(t, err)
		assert.Equal(t, "b", typ.Props.Must("a")())

		_, err = builder().WithCollisionPolicy(CollisionReject).Build()
		assert.ErrorIs(t, err, ErrDuplicateProperty)
	})

	t.Run("BuilderWithValidator", func(t *testing.T) {
		validatorCalled := false
		validator := func(typ *Type) error {
			validatorCalled = true
			if !typ.Get.Contains("id") {
				return fmt.Errorf("id must be declared")
			}
			return nil
		}

		_, err := NewBuilder().
			WithDeclarations("id").
			WithValidator(validator).
			Build()
		require.NoError(t, err)
		assert.True(t, validatorCalled)

		_, err = NewBuilder().
			WithDeclarations("name").
			WithValidator(validator).
			Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "type validation failed")
		assert.Contains(t, err.Error(), "id must be declared")
	})

	t.Run("BuilderErrorAccumulation", func(t *testing.T) {
		_, err := NewBuilder().
			WithGetter("", nil).
			WithSetter("s", nil).
			WithDeclarations("a").
			Build()

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidDeclaration)
		assert.Contains(t, err.Error(), "getter")
	})

	t.Run("UnregisteredEnhancerName", func(t *testing.T) {
		_, err := NewBuilder().
			WithSource([]byte(`{"a": {"get": "missing"}}`), FormatJSON).
			Build()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidDeclaration)
		assert.Contains(t, err.Error(), `getter "missing" is not registered`)
	})

	t.Run("BadSource", func(t *testing.T) {
		_, err := NewBuilder().
			WithSource([]byte(`a = 1`), "xml").
			Build()
		assert.True(t, errors.Is(err, ErrUnsupportedFormat))
	})

	t.Run("MustBuildPanic", func(t *testing.T) {
		assert.Panics(t, func() {
			NewBuilder().WithDeclarations(3).MustBuild()
		})
		assert.NotPanics(t, func() {
			NewBuilder().WithDeclarations("ok").MustBuild()
		})
	})
}
