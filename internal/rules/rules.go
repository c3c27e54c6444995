// Package rules compares one extracted function signature against its
// docstring contract and produces an ordered list of findings.
package rules

import (
	"fmt"
	"slices"
	"strings"

	"pydoccheck/internal/docstring"
	"pydoccheck/internal/extractor"
)

// Kind tags one category of signature/docstring inconsistency.
type Kind string

const (
	MissingFromDocstring       Kind = "missing_from_docstring"
	UndeclaredTypeDocumented   Kind = "undeclared_type_documented"
	UntypedParameterWarning    Kind = "untyped_parameter"
	TypeMismatch               Kind = "type_mismatch"
	MissingOptionalMarker      Kind = "missing_optional_marker"
	SpuriousOptionalMarker     Kind = "spurious_optional_marker"
	NoReturnTypeDeclared       Kind = "no_return_type_declared"
	ReturnValueButNoneDeclared Kind = "return_value_but_none_declared"
	ReturnDeclaredButNoValue   Kind = "return_declared_but_no_value"
	ReturnTypeMismatch         Kind = "return_type_mismatch"
	ReturnTypeUndocumented     Kind = "return_type_undocumented"
	ArgumentOrderMismatch      Kind = "argument_order_mismatch"
)

// Finding is one reported inconsistency.
type Finding struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// noneType is the annotation text that explicitly declares "returns
// nothing". Compared verbatim, like every other type text here.
const noneType = "None"

// optionalMarker is the substring signaling a defaulted parameter.
const optionalMarker = "optional"

// Engine holds the rule configuration. Verbose enables the soft findings
// (untyped parameters, argument order) that are suppressed by default.
type Engine struct {
	Verbose bool
}

// Check compares a signature against its contract. Findings come out in a
// fixed order: parameters in declaration order, then at most one return
// finding, then the verbose-only order finding. The same input always
// yields the same list.
func (e *Engine) Check(fn *extractor.Function, doc docstring.Contract) []Finding {
	var findings []Finding
	for _, p := range fn.Params {
		findings = append(findings, e.checkParam(p, doc)...)
	}

	retFinding := checkReturn(fn, doc)
	if retFinding != nil {
		findings = append(findings, *retFinding)
	}

	// The order rule is noisy, so it hides behind verbose and yields to
	// any return finding.
	if e.Verbose && retFinding == nil {
		if f := checkOrder(fn, doc); f != nil {
			findings = append(findings, *f)
		}
	}
	return findings
}

func (e *Engine) checkParam(p extractor.Param, doc docstring.Contract) []Finding {
	docType, documented := doc.ParamTypes[p.Name]

	switch {
	case p.Type != "" && !documented:
		return []Finding{{
			Kind:    MissingFromDocstring,
			Message: fmt.Sprintf("Argument '%s' not in docstring.", p.Name),
		}}
	case p.Type == "" && documented:
		return []Finding{{
			Kind:    UndeclaredTypeDocumented,
			Message: fmt.Sprintf("Argument '%s' is documented as '%s', but the signature declares no type.", p.Name, docType),
		}}
	case p.Type == "" && !documented:
		if !e.Verbose {
			return nil
		}
		return []Finding{{
			Kind:    UntypedParameterWarning,
			Message: fmt.Sprintf("Argument '%s' has neither a type annotation nor a docstring entry.", p.Name),
		}}
	}

	// Both the bare declared type and the ", optional" form are accepted
	// spellings; whether the optional suffix was correct for this
	// parameter is the marker branches' call, not a type mismatch.
	withMarker := p.Type + ", " + optionalMarker
	switch {
	case docType != p.Type && docType != withMarker:
		return []Finding{{
			Kind:    TypeMismatch,
			Message: fmt.Sprintf("TypeMismatch '%s': function '%s', docstring '%s'.", p.Name, p.Type, docType),
		}}
	case p.HasDefault && !strings.Contains(docType, optionalMarker):
		return []Finding{{
			Kind:    MissingOptionalMarker,
			Message: fmt.Sprintf("Argument '%s' has a default value, but 'optional' is missing in the docstring.", p.Name),
		}}
	case !p.HasDefault && strings.Contains(docType, optionalMarker):
		return []Finding{{
			Kind:    SpuriousOptionalMarker,
			Message: fmt.Sprintf("Argument '%s' has NO default value, but the docstring contains 'optional'.", p.Name),
		}}
	}
	return nil
}

// checkReturn applies the return rules in fixed priority order; the first
// match wins, so a function gets at most one return finding.
func checkReturn(fn *extractor.Function, doc docstring.Contract) *Finding {
	switch {
	case !fn.HasReturnAnnotation:
		return &Finding{
			Kind:    NoReturnTypeDeclared,
			Message: fmt.Sprintf("Function '%s' declares no return type.", fn.Name),
		}
	case fn.ReturnsValue && fn.ReturnType == noneType:
		return &Finding{
			Kind:    ReturnValueButNoneDeclared,
			Message: fmt.Sprintf("Function '%s' returns a value, but is annotated as returning 'None'.", fn.Name),
		}
	case !fn.ReturnsValue && fn.ReturnType != noneType:
		return &Finding{
			Kind:    ReturnDeclaredButNoValue,
			Message: fmt.Sprintf("Function '%s' is annotated as returning '%s', but never returns a value.", fn.Name, fn.ReturnType),
		}
	case fn.ReturnType != noneType && doc.ReturnType != "" && doc.ReturnType != fn.ReturnType:
		return &Finding{
			Kind:    ReturnTypeMismatch,
			Message: fmt.Sprintf("Return TypeMismatch: function '%s', docstring '%s'.", fn.ReturnType, doc.ReturnType),
		}
	case fn.ReturnType != noneType && doc.ReturnType == "":
		return &Finding{
			Kind:    ReturnTypeUndocumented,
			Message: fmt.Sprintf("Return-type '%s' not in docstring.", fn.ReturnType),
		}
	}
	return nil
}

func checkOrder(fn *extractor.Function, doc docstring.Contract) *Finding {
	declared := fn.ParamNames()
	if len(declared) == 0 && len(doc.ParamOrder) == 0 {
		return nil
	}
	if slices.Equal(declared, doc.ParamOrder) {
		return nil
	}
	return &Finding{
		Kind: ArgumentOrderMismatch,
		Message: fmt.Sprintf("Argument order mismatch: signature (%s), docstring (%s).",
			strings.Join(declared, ", "), strings.Join(doc.ParamOrder, ", ")),
	}
}
