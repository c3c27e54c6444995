// Package stats tallies code and total line counts per file. It shares the
// crawler's traversal but is otherwise independent of the checker.
package stats

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// FileCount holds one file's line tallies.
type FileCount struct {
	Path  string `json:"path"`
	Code  int    `json:"code"`
	Total int    `json:"total"`
}

// Summary aggregates counts across files in insertion order.
type Summary struct {
	Code  int
	Total int
	Files []FileCount
}

// CountSource tallies one file's lines. A code line is any line with at
// least one non-whitespace character.
func CountSource(src []byte) (code, total int) {
	scanner := bufio.NewScanner(bytes.NewReader(src))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		total++
		if strings.TrimSpace(scanner.Text()) != "" {
			code++
		}
	}
	return code, total
}

// Add counts src and folds it into the summary.
func (s *Summary) Add(path string, src []byte) {
	code, total := CountSource(src)
	s.Files = append(s.Files, FileCount{Path: path, Code: code, Total: total})
	s.Code += code
	s.Total += total
}

// Blank returns the number of empty lines seen so far.
func (s *Summary) Blank() int {
	return s.Total - s.Code
}

// Print writes the summary. Verbose adds the per-file breakdown.
func (s *Summary) Print(w io.Writer, verbose bool) {
	if verbose {
		for _, f := range s.Files {
			fmt.Fprintf(w, "%s: %d/%d lines\n", f.Path, f.Code, f.Total)
		}
	}
	if s.Total == 0 {
		fmt.Fprintln(w, "No lines counted.")
		return
	}
	fmt.Fprintf(w, "Code percentage: %.2f%%\n", float64(s.Code)/float64(s.Total)*100)
	if blank := s.Blank(); blank > 0 {
		fmt.Fprintf(w, "Code to space ratio: %.2f/1\n", float64(s.Code)/float64(blank))
	}
	fmt.Fprintf(w, "Total empty lines: %d\n", s.Blank())
	fmt.Fprintf(w, "Total code lines: %d/%d\n", s.Code, s.Total)
}
