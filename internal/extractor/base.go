package extractor

import sitter "github.com/smacker/go-tree-sitter"

// Function is one extracted function definition: its declared signature,
// the raw docstring attached to it, and the facts the rule engine needs.
type Function struct {
	Name      string  `json:"name"`
	Filepath  string  `json:"filepath"`
	Line      int     `json:"line"` // 1-based line of the def
	Params    []Param `json:"params"`
	Docstring string  `json:"docstring,omitempty"`

	// ReturnType is the verbatim return annotation text. It is only
	// meaningful when HasReturnAnnotation is true; the annotation "None"
	// is the explicit "returns nothing" sentinel and is kept verbatim.
	ReturnType          string `json:"return_type,omitempty"`
	HasReturnAnnotation bool   `json:"has_return_annotation"`

	// ReturnsValue reports whether the body contains at least one return
	// statement carrying an expression. Bare returns do not count.
	ReturnsValue bool `json:"returns_value"`
}

// Param is a single declared parameter. Type and Default hold verbatim
// source text, never evaluated values; an empty Type means no annotation.
type Param struct {
	Name       string `json:"name"`
	Type       string `json:"type,omitempty"`
	HasDefault bool   `json:"has_default"`
	Default    string `json:"default,omitempty"`
}

// ParamNames returns the declared parameter names in declaration order.
func (f *Function) ParamNames() []string {
	names := make([]string, 0, len(f.Params))
	for _, p := range f.Params {
		names = append(names, p.Name)
	}
	return names
}

// LanguageExtractor defines the interface that each language front end must implement.
type LanguageExtractor interface {
	GetLanguage() *sitter.Language
	GetQuery() string
	ExtractFunction(node *sitter.Node, sourceCode []byte, filepath string) *Function
}
