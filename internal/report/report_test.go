package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"pydoccheck/internal/checker"
	"pydoccheck/internal/rules"
)

func sampleFileReport() *checker.FileReport {
	return &checker.FileReport{
		Path: "pkg/mod.py",
		Functions: []checker.FunctionReport{
			{
				Name: "f",
				Line: 3,
				Findings: []rules.Finding{
					{Kind: rules.MissingFromDocstring, Message: "Argument 'a' not in docstring."},
				},
			},
		},
		FunctionsChecked: 2,
		FindingsTotal:    1,
	}
}

func TestTextReporter(t *testing.T) {
	var buf bytes.Buffer
	r := NewTextReporter(&buf)

	r.File(sampleFileReport())
	out := buf.String()
	assert.Contains(t, out, "Checking file: pkg/mod.py")
	assert.Contains(t, out, "Function 'f' (line 3) error:")
	assert.Contains(t, out, "- Argument 'a' not in docstring.")

	t.Run("Clean File Prints Nothing", func(t *testing.T) {
		var clean bytes.Buffer
		NewTextReporter(&clean).File(&checker.FileReport{Path: "ok.py", FunctionsChecked: 1})
		assert.Empty(t, clean.String())
	})
}

func TestTextReporter_Summary(t *testing.T) {
	var buf bytes.Buffer
	totals := &RunTotals{Files: 2, Functions: 5, Findings: 3}
	NewTextReporter(&buf).Summary("/src", totals)

	out := buf.String()
	assert.Contains(t, out, "Stats for /src:")
	assert.Contains(t, out, "Checked 2 files with 5 functions.")
	assert.Contains(t, out, "Found 3 mismatches in docstrings.")
	assert.NotContains(t, out, "Skipped")
}

func TestRunTotals(t *testing.T) {
	totals := &RunTotals{}
	totals.AddFile(sampleFileReport())
	totals.AddFile(&checker.FileReport{Path: "ok.py", FunctionsChecked: 4})
	totals.AddSkipped()

	assert.Equal(t, 2, totals.Files)
	assert.Equal(t, 6, totals.Functions)
	assert.Equal(t, 1, totals.Findings)
	assert.Equal(t, 1, totals.Skipped)
}
