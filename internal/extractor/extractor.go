package extractor

import (
	"context"
	"fmt"
	"os"

	sitter "github.com/smacker/go-tree-sitter"
)

// ParseError reports a source unit that is not syntactically valid. Callers
// are expected to skip the file and keep processing the rest of the run.
type ParseError struct {
	Path string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("syntax error in %s", e.Path)
}

// Extractor turns one unit of source text into function definitions using a
// language-specific front end.
type Extractor struct {
	langExtractor LanguageExtractor
	langName      string
}

// NewExtractor creates a new extractor for a given language.
func NewExtractor(lang string) (*Extractor, error) {
	var langExt LanguageExtractor
	switch lang {
	case "python":
		langExt = &PythonExtractor{}
	default:
		return nil, fmt.Errorf("unsupported language: %s", lang)
	}
	return &Extractor{langExtractor: langExt, langName: lang}, nil
}

// ExtractFromFile reads and parses a single source file.
func (e *Extractor) ExtractFromFile(filepath string) ([]*Function, error) {
	sourceCode, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filepath, err)
	}
	return e.ExtractFromSource(filepath, sourceCode)
}

// ExtractFromSource parses raw source text and returns every function
// definition in source order, nested definitions included. It returns a
// *ParseError when the text is not syntactically valid.
func (e *Extractor) ExtractFromSource(filepath string, sourceCode []byte) ([]*Function, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(e.langExtractor.GetLanguage())
	tree, err := parser.ParseCtx(context.Background(), nil, sourceCode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", filepath, err)
	}
	if tree.RootNode().HasError() {
		return nil, &ParseError{Path: filepath}
	}

	query, err := sitter.NewQuery([]byte(e.langExtractor.GetQuery()), e.langExtractor.GetLanguage())
	if err != nil {
		return nil, fmt.Errorf("failed to create query: %w", err)
	}

	qc := sitter.NewQueryCursor()
	qc.Exec(query, tree.RootNode())

	var functions []*Function
	for {
		m, ok := qc.NextMatch()
		if !ok {
			break
		}
		for _, c := range m.Captures {
			if fn := e.langExtractor.ExtractFunction(c.Node, sourceCode, filepath); fn != nil {
				functions = append(functions, fn)
			}
		}
	}

	return functions, nil
}
