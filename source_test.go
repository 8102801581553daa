// FILE: lixenwraith/proptype/source_test.go
package proptype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecodeDeclarations tests declaration documents in every supported format
func TestDecodeDeclarations(t *testing.T) {
	t.Run("TOMLKeepsDocumentOrder", func(t *testing.T) {
		doc := `
[zeta]

[alpha]
alias = ["first", "one"]
doc = "passed through"

[mid]
alias = "m"
`
		entries, err := DecodeDeclarations([]byte(doc), FormatTOML)
		require.NoError(t, err)
		require.Len(t, entries, 3)

		descriptors, err := Normalize(entries)
		require.NoError(t, err)
		assert.Equal(t, []string{"zeta", "first", "one", "alpha", "m", "mid"}, publicNames(descriptors))
		assert.Equal(t, "passed through", descriptors[1].Extra["doc"])
	})

	t.Run("TOMLInlineTables", func(t *testing.T) {
		doc := `
b = {}
a = { alias = "x" }
`
		entries, err := DecodeDeclarations([]byte(doc), FormatTOML)
		require.NoError(t, err)
		descriptors, err := Normalize(entries)
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "x", "a"}, publicNames(descriptors))
	})

	t.Run("YAMLList", func(t *testing.T) {
		doc := `
- foo
- bar:
    alias: barAlias
  baz:
    alias: [b1, b2]
- qux:
`
		entries, err := DecodeDeclarations([]byte(doc), FormatYAML)
		require.NoError(t, err)
		descriptors, err := Normalize(entries)
		require.NoError(t, err)
		assert.Equal(t, []string{"foo", "barAlias", "bar", "b1", "b2", "baz", "qux"}, publicNames(descriptors))
	})

	t.Run("YAMLMappingKeepsOrder", func(t *testing.T) {
		doc := `
second: {}
first:
  alias: one
`
		entries, err := DecodeDeclarations([]byte(doc), FormatYAML)
		require.NoError(t, err)
		descriptors, err := Normalize(entries)
		require.NoError(t, err)
		assert.Equal(t, []string{"second", "one", "first"}, publicNames(descriptors))
	})

	t.Run("JSONList", func(t *testing.T) {
		doc := `["foo", {"bar": {"alias": "barAlias", "weight": 1.5}}]`
		entries, err := DecodeDeclarations([]byte(doc), FormatJSON)
		require.NoError(t, err)
		descriptors, err := Normalize(entries)
		require.NoError(t, err)
		assert.Equal(t, []string{"foo", "barAlias", "bar"}, publicNames(descriptors))
		assert.Equal(t, "1.5", descriptors[1].Extra["weight"].(interface{ String() string }).String())
	})

	t.Run("JSONObjectIsSorted", func(t *testing.T) {
		entries, err := DecodeDeclarations([]byte(`{"b": {}, "a": {}}`), FormatJSON)
		require.NoError(t, err)
		descriptors, err := Normalize(entries)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, publicNames(descriptors))
	})

	t.Run("AutoDetect", func(t *testing.T) {
		entries, err := DecodeDeclarations([]byte(`["a", "b"]`), FormatAuto)
		require.NoError(t, err)
		assert.Equal(t, []any{"a", "b"}, entries)

		entries, err = DecodeDeclarations([]byte("- a\n- b\n"), "")
		require.NoError(t, err)
		assert.Equal(t, []any{"a", "b"}, entries)

		entries, err = DecodeDeclarations([]byte("a = {}\n"), FormatAuto)
		require.NoError(t, err)
		assert.Equal(t, []any{map[string]any{"a": map[string]any{}}}, entries)
	})

	t.Run("UnsupportedFormat", func(t *testing.T) {
		_, err := DecodeDeclarations([]byte(`a = 1`), "ini")
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("MalformedDocuments", func(t *testing.T) {
		_, err := DecodeDeclarations([]byte(`[unterminated`), FormatTOML)
		assert.Error(t, err)

		_, err = DecodeDeclarations([]byte(`{"a":`), FormatJSON)
		assert.Error(t, err)

		_, err = DecodeDeclarations([]byte(`"just a string"`), FormatJSON)
		assert.ErrorIs(t, err, ErrInvalidDeclaration)
	})

	t.Run("InvalidEntriesFailAtNormalize", func(t *testing.T) {
		entries, err := DecodeDeclarations([]byte(`["ok", 7]`), FormatJSON)
		require.NoError(t, err)
		_, err = Normalize(entries)
		assert.ErrorIs(t, err, ErrInvalidDeclaration)
	})
}
