// FILE: lixenwraith/proptype/doc.go

// Package proptype compiles lightweight property declarations into a bundle of pure
// accessor functions over plain key-value records (map[string]any), without a full
// struct or schema definition.
//
// Features:
//   - Bare names, option maps, aliases, getter and setter enhancers
//   - Per-property get, set, pick, pluck, has, eq, findBy, objOf and over operations
//   - Guarded tables: an undeclared name always fails with ErrUnknownProperty
//   - Copy-on-write setters; a compiled Type is immutable and safe for concurrent use
//   - Declarations from TOML, JSON or YAML documents and from struct tags
//   - Explicit collision policy for duplicate public names
//
// Quick Start:
//
//	person := proptype.MustCompile([]any{
//	    "id",
//	    proptype.Declarations{
//	        "name": {Alias: []string{"title"}},
//	        "age": {Get: func(raw any, _ proptype.Record) any {
//	            if raw == nil {
//	                return 0
//	            }
//	            return raw
//	        }},
//	    },
//	})
//
//	rec := proptype.Record{"id": 7, "name": "Ada"}
//	person.Get.Must("title")(rec)             // "Ada"
//	person.Pick.Must("age")(rec)              // Record{"age": 0}
//	rec2 := person.Set.Must("name")("Grace")(rec) // rec is unchanged
//
//	if _, err := person.Get.Lookup("email"); errors.Is(err, proptype.ErrUnknownProperty) {
//	    // unknown property 'email'
//	}
//
// Builder:
//
//	t, err := proptype.NewBuilder().
//	    WithGetter("trim", trim).
//	    WithSource(tomlBytes, proptype.FormatTOML).
//	    WithCollisionPolicy(proptype.CollisionReject).
//	    Build()
//
// Duplicate public names resolve to the last declaration unless CollisionReject is set.
package proptype
