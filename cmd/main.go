// FILE: lixenwraith/proptype/cmd/main.go
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/lixenwraith/proptype"
)

func main() {
	declPath := flag.String("decl", "props.toml", "declaration document (toml, json or yaml)")
	recordPath := flag.String("record", "", "JSON record to read from (default: empty record)")
	get := flag.String("get", "", "comma-separated public names to read")
	export := flag.String("export", "", "export the record's declared keys in this format")
	reject := flag.Bool("strict", false, "reject duplicate public names")
	debug := flag.Bool("debug", false, "print how every public name resolves")
	flag.Parse()

	data, err := os.ReadFile(*declPath)
	if err != nil {
		log.Fatalf("Failed to read declarations: %v", err)
	}

	builder := proptype.NewBuilder().
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
		WithSource(data, detectFileFormat(*declPath))
	if *reject {
		builder = builder.WithCollisionPolicy(proptype.CollisionReject)
	}

	t, err := builder.Build()
	if err != nil {
		log.Fatalf("Failed to compile declarations: %v", err)
	}

	if *debug {
		log.Print(t.Debug())
	}

	rec := proptype.Record{}
	if *recordPath != "" {
		raw, err := os.ReadFile(*recordPath)
		if err != nil {
			log.Fatalf("Failed to read record: %v", err)
		}
		if err := json.Unmarshal(raw, &rec); err != nil {
			log.Fatalf("Failed to parse record: %v", err)
		}
	}

	if *get != "" {
		for _, name := range strings.Split(*get, ",") {
			read, err := t.Get.Lookup(strings.TrimSpace(name))
			if err != nil {
				log.Fatal(err)
			}
			log.Printf("%s = %v", name, read(rec))
		}
	}

	if *export != "" {
		if err := t.Export(os.Stdout, rec, *export); err != nil {
			log.Fatalf("Failed to export record: %v", err)
		}
	}
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return proptype.FormatTOML
	case ".json":
		return proptype.FormatJSON
	case ".yaml", ".yml":
		return proptype.FormatYAML
	default:
		return proptype.FormatAuto
	}
}
