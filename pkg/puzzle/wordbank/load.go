package wordbank

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/gitrdm/zebragen/pkg/puzzle"
)

//go:embed schema/*.json
var schemaFS embed.FS

var tableSchema *jsonschema.Schema

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	data, err := schemaFS.ReadFile("schema/table.schema.json")
	if err != nil {
		panic(fmt.Sprintf("wordbank: failed to read table schema: %v", err))
	}
	if err := compiler.AddResource("table.schema.json", strings.NewReader(string(data))); err != nil {
		panic(fmt.Sprintf("wordbank: failed to add table schema: %v", err))
	}
	tableSchema, err = compiler.Compile("table.schema.json")
	if err != nil {
		panic(fmt.Sprintf("wordbank: failed to compile table schema: %v", err))
	}
}

// tableDoc mirrors the JSON shape table.schema.json validates.
type tableDoc struct {
	Attributes []struct {
		Name   string   `json:"name"`
		Values []string `json:"values"`
	} `json:"attributes"`
}

// LoadTableJSON validates data against the embedded table schema, then
// builds a puzzle.Table from it. This is the caller-supplied-table path:
// the core never parses JSON itself, it only ever receives a
// *puzzle.Table.
func LoadTableJSON(data []byte) (*puzzle.Table, error) {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("wordbank: invalid JSON: %w", err)
	}
	if err := tableSchema.Validate(raw); err != nil {
		return nil, fmt.Errorf("wordbank: schema validation failed: %w", err)
	}

	var doc tableDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("wordbank: failed to parse table: %w", err)
	}

	rows := make([]puzzle.AttributeRow, 0, len(doc.Attributes))
	for _, a := range doc.Attributes {
		rows = append(rows, puzzle.AttributeRow{Name: a.Name, Values: a.Values})
	}
	return puzzle.NewTable(rows)
}
