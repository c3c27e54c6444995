// Package checker wires the per-file pipeline: source text goes through the
// extractor, each function's docstring through the contract parser, and both
// through the rule engine. The checker holds no cross-file state.
package checker

import (
	"pydoccheck/internal/docstring"
	"pydoccheck/internal/extractor"
	"pydoccheck/internal/rules"
)

// Options configures an analysis pass.
type Options struct {
	// Verbose enables the soft findings (untyped parameters, argument order).
	Verbose bool
	// IgnoredNames suppresses all findings of the named functions. Ignored
	// functions are still counted as checked.
	IgnoredNames map[string]bool
}

// FunctionReport groups the findings of one function.
type FunctionReport struct {
	Name     string          `json:"name"`
	Line     int             `json:"line"`
	Findings []rules.Finding `json:"findings"`
}

// FileReport is the result of analyzing one file. Functions lists only the
// functions that produced at least one finding.
type FileReport struct {
	Path             string           `json:"path"`
	Functions        []FunctionReport `json:"functions,omitempty"`
	FunctionsChecked int              `json:"functions_checked"`
	FindingsTotal    int              `json:"findings_total"`
}

// Checker runs the full pipeline for one file at a time.
type Checker struct {
	ext    *extractor.Extractor
	engine *rules.Engine
	opts   Options
}

// New creates a checker for Python sources.
func New(opts Options) (*Checker, error) {
	ext, err := extractor.NewExtractor("python")
	if err != nil {
		return nil, err
	}
	return &Checker{
		ext:    ext,
		engine: &rules.Engine{Verbose: opts.Verbose},
		opts:   opts,
	}, nil
}

// CheckFile reads and analyzes one file.
func (c *Checker) CheckFile(path string) (*FileReport, error) {
	functions, err := c.ext.ExtractFromFile(path)
	if err != nil {
		return nil, err
	}
	return c.report(path, functions), nil
}

// CheckSource analyzes raw source text. The path is used for reporting only.
func (c *Checker) CheckSource(path string, src []byte) (*FileReport, error) {
	functions, err := c.ext.ExtractFromSource(path, src)
	if err != nil {
		return nil, err
	}
	return c.report(path, functions), nil
}

func (c *Checker) report(path string, functions []*extractor.Function) *FileReport {
	report := &FileReport{Path: path}
	for _, fn := range functions {
		report.FunctionsChecked++
		if c.opts.IgnoredNames[fn.Name] {
			continue
		}
		findings := c.engine.Check(fn, docstring.Parse(fn.Docstring))
		if len(findings) == 0 {
			continue
		}
		report.Functions = append(report.Functions, FunctionReport{
			Name:     fn.Name,
			Line:     fn.Line,
			Findings: findings,
		})
		report.FindingsTotal += len(findings)
	}
	return report
}
