package report

import "pydoccheck/internal/checker"

// RunTotals accumulates the run-wide counters. It is owned by the CLI and
// updated after each file's pipeline completes; the per-file core never
// touches it.
type RunTotals struct {
	Files     int `json:"files"`
	Functions int `json:"functions"`
	Findings  int `json:"findings"`
	Skipped   int `json:"skipped"`
}

// AddFile folds one completed file report into the totals.
func (t *RunTotals) AddFile(fr *checker.FileReport) {
	t.Files++
	t.Functions += fr.FunctionsChecked
	t.Findings += fr.FindingsTotal
}

// AddSkipped records a file that could not be parsed or read.
func (t *RunTotals) AddSkipped() {
	t.Skipped++
}
