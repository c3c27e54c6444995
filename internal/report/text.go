// Package report presents findings and accumulates run totals. Everything
// here is presentation; the checker core knows nothing about it.
package report

import (
	"fmt"
	"io"

	"pydoccheck/internal/checker"
)

// TextReporter prints findings in the classic indented layout, one block
// per file.
type TextReporter struct {
	w io.Writer
}

// NewTextReporter writes to w.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

// File prints one file's findings block. Files without findings print
// nothing.
func (r *TextReporter) File(fr *checker.FileReport) {
	if len(fr.Functions) == 0 {
		return
	}
	fmt.Fprintf(r.w, "Checking file: %s\n", fr.Path)
	for _, fn := range fr.Functions {
		fmt.Fprintf(r.w, "    Function '%s' (line %d) error:\n", fn.Name, fn.Line)
		for _, f := range fn.Findings {
			fmt.Fprintf(r.w, "        - %s\n", f.Message)
		}
		fmt.Fprintln(r.w)
	}
}

// Skipped reports a file that was dropped from the run.
func (r *TextReporter) Skipped(path string, err error) {
	fmt.Fprintf(r.w, "Skipping %s: %v\n", path, err)
}

// Summary prints the stats trailer for one checked path.
func (r *TextReporter) Summary(path string, totals *RunTotals) {
	fmt.Fprintf(r.w, "Stats for %s:\n", path)
	fmt.Fprintf(r.w, "    Checked %d files with %d functions.\n", totals.Files, totals.Functions)
	fmt.Fprintf(r.w, "    Found %d mismatches in docstrings.\n", totals.Findings)
	if totals.Skipped > 0 {
		fmt.Fprintf(r.w, "    Skipped %d files.\n", totals.Skipped)
	}
}
