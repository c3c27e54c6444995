package report

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"pydoccheck/internal/checker"
)

//go:embed report.schema.json
var reportSchemaSrc string

const reportSchemaName = "report.schema.json"

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// Report is the JSON document produced by --format json.
type Report struct {
	Root   string                `json:"root"`
	Files  []*checker.FileReport `json:"files"`
	Totals RunTotals             `json:"totals"`
}

// MarshalReport renders the report, validating it against the bundled JSON
// schema first. The schema is the contract consumers of the JSON output
// rely on, so a document that fails it is a bug, not output.
func MarshalReport(rep *Report) ([]byte, error) {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to normalize report for schema validation: %w", err)
	}
	s, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("failed to compile report schema: %w", err)
	}
	if err := s.Validate(doc); err != nil {
		return nil, fmt.Errorf("report schema validation failed: %w", err)
	}
	return data, nil
}

// SaveReport writes the schema-validated report to path.
func SaveReport(path string, rep *Report) error {
	data, err := MarshalReport(rep)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(reportSchemaName, strings.NewReader(reportSchemaSrc)); err != nil {
			schemaErr = err
			return
		}
		schema, schemaErr = compiler.Compile(reportSchemaName)
	})
	return schema, schemaErr
}
