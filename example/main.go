// FILE: lixenwraith/proptype/example/main.go
package main

import (
	"errors"
	"log"
	"os"
	"strings"

	"github.com/lixenwraith/proptype"
)

const declarations = `
[id]

[name]
alias = ["title", "label"]
get = "trim"
set = "lower"

[age]
get = "zero"
doc = "years, defaults to zero"
`

func main() {
	// =========================================================================
	// PART 1: COMPILE A TYPE FROM A TOML DOCUMENT
	// Named enhancers are registered on the builder and referenced by the document.
	// =========================================================================
	log.Println("---")
	log.Println("PART 1: Compiling declarations...")

	person, err := proptype.NewBuilder().
		WithGetter("trim", func(raw any, _ proptype.Record) any {
			if s, ok := raw.(string); ok {
				return strings.TrimSpace(s)
			}
			return raw
		}).
		WithGetter("zero", func(raw any, _ proptype.Record) any {
			if raw == nil {
				return 0
			}
			return raw
		}).
		WithSetter("lower", func(value any) any {
			if s, ok := value.(string); ok {
				return strings.ToLower(s)
			}
			return value
		}).
		WithSource([]byte(declarations), proptype.FormatTOML).
		WithCollisionPolicy(proptype.CollisionReject).
		WithValidator(func(t *proptype.Type) error {
			if !t.Get.Contains("id") {
				return errors.New("every person needs an id")
			}
			return nil
		}).
		Build()
	if err != nil {
		log.Fatalf("Failed to compile declarations: %v", err)
	}
	log.Printf("Public names: %v", person.Names())
	log.Printf("Storage keys: %v", person.PrivateNames())

	// =========================================================================
	// PART 2: READ AND WRITE RECORDS
	// Setters never modify their input; aliases reach the same storage key.
	// =========================================================================
	log.Println("---")
	log.Println("PART 2: Accessing records...")

	ada := proptype.Record{"id": 1, "name": "  Ada Lovelace "}
	log.Printf("title = %q", person.Get.Must("title")(ada))
	log.Printf("age = %v", person.Get.Must("age")(ada))
	log.Printf("pick(label) = %v", person.Pick.Must("label")(ada))

	renamed := person.Set.Must("label")("ADA")(ada)
	log.Printf("after set: %v (original still %q)", renamed["name"], ada["name"])

	older := person.Over.Must("age")(func(v any) any { return v.(int) + 36 })(ada)
	log.Printf("over(age): %v", older["age"])

	// =========================================================================
	// PART 3: COLLECTIONS
	// =========================================================================
	log.Println("---")
	log.Println("PART 3: Working with collections...")

	people := []proptype.Record{
		ada,
		person.ObjOf.Must("id")(2),
		{"id": 3, "name": "Grace", "age": 85},
	}
	log.Printf("pluck(id) = %v", person.Pluck.Must("id")(people))

	if grace, ok := person.FindBy.Must("name").Find("Grace", people); ok {
		log.Printf("findBy(name) = %v", grace)
	}
	log.Printf("has(age) on record 3 = %t", person.Has.Must("age")(people[2]))
	log.Printf("eq(id, 2) on record 2 = %t", person.Eq.Must("id")(2)(people[1]))

	// =========================================================================
	// PART 4: THE GUARD
	// =========================================================================
	log.Println("---")
	log.Println("PART 4: Looking up an undeclared name...")

	if _, err := person.Get.Lookup("email"); errors.Is(err, proptype.ErrUnknownProperty) {
		log.Printf("Lookup failed as expected: %v", err)
	}
	if err := person.Validate(people[1], "id", "name"); err != nil {
		log.Printf("Validation: %v", err)
	}

	log.Println("---")
	log.Println("Exporting record 3 as YAML:")
	if err := person.Export(os.Stdout, people[2], proptype.FormatYAML); err != nil {
		log.Fatalf("Export failed: %v", err)
	}
}
