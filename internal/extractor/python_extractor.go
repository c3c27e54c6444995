package extractor

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// instanceParam is the conventional name of the implicit instance-binding
// parameter. It is excluded from the signature by convention, not by type.
const instanceParam = "self"

// PythonExtractor implements LanguageExtractor for Python.
type PythonExtractor struct{}

func (p *PythonExtractor) GetLanguage() *sitter.Language {
	return python.GetLanguage()
}

func (p *PythonExtractor) GetQuery() string {
	// Query patterns match at every depth, so nested defs are captured too.
	return `(function_definition) @func`
}

func (p *PythonExtractor) ExtractFunction(node *sitter.Node, sourceCode []byte, filepath string) *Function {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}

	fn := &Function{
		Name:     nameNode.Content(sourceCode),
		Filepath: filepath,
		Line:     int(node.StartPoint().Row + 1),
		Params:   []Param{},
	}

	if paramsNode := node.ChildByFieldName("parameters"); paramsNode != nil {
		fn.Params = p.extractParams(paramsNode, sourceCode)
	}
	if retNode := node.ChildByFieldName("return_type"); retNode != nil {
		fn.ReturnType = retNode.Content(sourceCode)
		fn.HasReturnAnnotation = true
	}
	if bodyNode := node.ChildByFieldName("body"); bodyNode != nil {
		fn.Docstring = p.extractDocstring(bodyNode, sourceCode)
		fn.ReturnsValue = returnsValue(bodyNode)
	}

	return fn
}

// extractParams renders each declared parameter back to verbatim source
// text. A leading instance-binding parameter is dropped; bare `*` and `/`
// separators contribute nothing.
func (p *PythonExtractor) extractParams(paramsNode *sitter.Node, sourceCode []byte) []Param {
	params := []Param{}
	for i := 0; i < int(paramsNode.NamedChildCount()); i++ {
		child := paramsNode.NamedChild(i)
		var prm Param
		switch child.Type() {
		case "identifier":
			prm.Name = child.Content(sourceCode)
		case "typed_parameter":
			// The name is the first named child; splat params keep their
			// bare identifier without the * / ** markers.
			if n := child.NamedChild(0); n != nil {
				prm.Name = splatName(n, sourceCode)
			}
			if t := child.ChildByFieldName("type"); t != nil {
				prm.Type = t.Content(sourceCode)
			}
		case "default_parameter", "typed_default_parameter":
			if n := child.ChildByFieldName("name"); n != nil {
				prm.Name = n.Content(sourceCode)
			}
			if t := child.ChildByFieldName("type"); t != nil {
				prm.Type = t.Content(sourceCode)
			}
			if v := child.ChildByFieldName("value"); v != nil {
				prm.HasDefault = true
				prm.Default = v.Content(sourceCode)
			}
		case "list_splat_pattern", "dictionary_splat_pattern":
			prm.Name = splatName(child, sourceCode)
		default:
			// keyword_separator, positional_separator
			continue
		}
		if prm.Name == "" {
			continue
		}
		params = append(params, prm)
	}

	if len(params) > 0 && params[0].Name == instanceParam {
		params = params[1:]
	}
	return params
}

func splatName(node *sitter.Node, sourceCode []byte) string {
	if node.Type() == "identifier" {
		return node.Content(sourceCode)
	}
	if n := node.NamedChild(0); n != nil {
		return n.Content(sourceCode)
	}
	return ""
}

// extractDocstring returns the cleaned docstring when the body's first
// statement is a string literal, else "".
func (p *PythonExtractor) extractDocstring(bodyNode *sitter.Node, sourceCode []byte) string {
	first := bodyNode.NamedChild(0)
	if first == nil || first.Type() != "expression_statement" {
		return ""
	}
	str := first.NamedChild(0)
	if str == nil || (str.Type() != "string" && str.Type() != "concatenated_string") {
		return ""
	}
	return cleanDocstring(str.Content(sourceCode))
}

// returnsValue scans a body for a return statement carrying an expression.
// It recurses through control structures but never into nested function or
// lambda bodies, which have their own return semantics.
func returnsValue(node *sitter.Node) bool {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "function_definition", "lambda":
			continue
		case "return_statement":
			if child.NamedChildCount() > 0 {
				return true
			}
		default:
			if returnsValue(child) {
				return true
			}
		}
	}
	return false
}

// cleanDocstring strips the quote delimiters and any string prefix, then
// removes the common leading indentation the way Python presents docstrings.
func cleanDocstring(raw string) string {
	s := raw
	if i := strings.IndexAny(s, `"'`); i > 0 {
		s = s[i:]
	}
	for _, q := range []string{`"""`, `'''`, `"`, `'`} {
		if strings.HasPrefix(s, q) && strings.HasSuffix(s, q) && len(s) >= 2*len(q) {
			s = s[len(q) : len(s)-len(q)]
			break
		}
	}

	lines := strings.Split(s, "\n")
	margin := -1
	for _, l := range lines[1:] {
		trimmed := strings.TrimLeft(l, " \t")
		if trimmed == "" {
			continue
		}
		if indent := len(l) - len(trimmed); margin < 0 || indent < margin {
			margin = indent
		}
	}

	cleaned := []string{strings.TrimLeft(lines[0], " \t")}
	for _, l := range lines[1:] {
		if margin > 0 {
			if len(l) >= margin {
				l = l[margin:]
			} else {
				l = strings.TrimLeft(l, " \t")
			}
		}
		cleaned = append(cleaned, strings.TrimRight(l, " \t"))
	}
	return strings.Trim(strings.Join(cleaned, "\n"), "\n")
}
