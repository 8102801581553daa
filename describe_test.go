// FILE: lixenwraith/proptype/describe_test.go
package proptype

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func describeFixture() *Type {
	return MustCompile([]any{
		"id",
		Declarations{"name": {
			Alias: []string{"title"},
			Get: func(raw any, _ Record) any {
				if s, ok := raw.(string); ok {
					return strings.ToUpper(s)
				}
				return raw
			},
			Extra: map[string]any{"doc": "display name"},
		}},
	})
}

// TestDescribe tests introspection of a compiled type
func TestDescribe(t *testing.T) {
	typ := describeFixture()

	t.Run("Describe", func(t *testing.T) {
		infos := typ.Describe()
		require.Len(t, infos, 3)

		assert.Equal(t, "id", infos[0].PublicName)
		assert.Empty(t, infos[0].Aliases)
		assert.False(t, infos[0].HasGetter)

		assert.Equal(t, "name", infos[1].PublicName)
		assert.Equal(t, []string{"title"}, infos[1].Aliases)
		assert.True(t, infos[1].HasGetter)
		assert.False(t, infos[1].HasSetter)
		assert.Equal(t, "display name", infos[1].Extra["doc"])

		assert.Equal(t, "title", infos[2].PublicName)
		assert.Equal(t, "name", infos[2].PrivateName)
		assert.Equal(t, []string{"name"}, infos[2].Aliases)
	})

	t.Run("ExtraCannotBeMutated", func(t *testing.T) {
		typ.Describe()[1].Extra["doc"] = "mutated"
		typ.Descriptors()[1].Extra["doc"] = "mutated"
		assert.Equal(t, "display name", typ.Describe()[1].Extra["doc"])
	})

	t.Run("Debug", func(t *testing.T) {
		out := typ.Debug()
		assert.True(t, strings.HasPrefix(out, "Type Debug Info:\n"))
		assert.Contains(t, out, "Storage keys: [id name]")
		assert.Contains(t, out, "Aliases: title")
		assert.Contains(t, out, "doc: display name")
	})
}

// TestValidate tests required property checks
func TestValidate(t *testing.T) {
	typ := describeFixture()

	t.Run("AllPresent", func(t *testing.T) {
		assert.NoError(t, typ.Validate(Record{"id": 1, "name": "ada"}, "id", "title"))
	})

	t.Run("Missing", func(t *testing.T) {
		err := typ.Validate(Record{"id": 1}, "id", "name", "title")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMissingProperty)
		assert.Contains(t, err.Error(), "name, title")
	})

	t.Run("UnknownName", func(t *testing.T) {
		err := typ.Validate(Record{}, "nope")
		assert.ErrorIs(t, err, ErrUnknownProperty)
	})

	t.Run("NothingRequired", func(t *testing.T) {
		assert.NoError(t, typ.Validate(nil))
	})
}

// TestExport tests writing records in every supported format
func TestExport(t *testing.T) {
	typ := describeFixture()
	rec := Record{"id": 1, "name": "ada", "junk": true}

	tests := []struct {
		format   string
		contains []string
	}{
		{FormatJSON, []string{`"id": 1`, `"name": "ada"`}},
		{FormatTOML, []string{`id = 1`, `name = "ada"`}},
		{FormatYAML, []string{`id: 1`, `name: ada`}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, typ.Export(&buf, rec, tt.format))
			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
			assert.NotContains(t, buf.String(), "junk")
		})
	}

	t.Run("MissingValuesOmitted", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, typ.Export(&buf, Record{"id": 2}, "JSON"))
		assert.NotContains(t, buf.String(), "name")
	})

	t.Run("UnsupportedFormat", func(t *testing.T) {
		var buf bytes.Buffer
		err := typ.Export(&buf, rec, "xml")
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
		assert.Zero(t, buf.Len())
	})
}
