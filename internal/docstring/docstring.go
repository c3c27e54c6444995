// Package docstring extracts the documented parameter/return contract from
// a Google-style docstring. Extraction is pure text pattern matching: an
// absent or unrecognized section degrades to an empty value, never an error.
package docstring

import (
	"regexp"
	"strings"
)

// Contract is the structured description a docstring makes about a function.
type Contract struct {
	// ParamTypes maps a documented parameter name to its verbatim type
	// text, including any ", optional" suffix.
	ParamTypes map[string]string
	// ParamOrder lists parameter names in the order the Args block
	// documents them. The instance parameter is never included.
	ParamOrder []string
	// ReturnType is the first token of the Returns block, "" when absent.
	ReturnType string
}

const instanceParam = "self"

var (
	argsHeaderRe = regexp.MustCompile(`(?i)^\s*args\s*:\s*$`)
	paramLineRe  = regexp.MustCompile(`^\s*(\w+)\s*\(([^)]+)\):`)
	returnsRe    = regexp.MustCompile(`(?i)returns\s*:\s*\n\s*([^\s:]+)`)
	orderNameRe  = regexp.MustCompile(`^([A-Za-z_]\w*)`)
)

// Parse extracts the contract from one docstring. An empty docstring yields
// an empty contract.
func Parse(doc string) Contract {
	c := Contract{ParamTypes: map[string]string{}}
	if doc == "" {
		return c
	}

	lines := strings.Split(doc, "\n")
	parseParamTypes(lines, &c)
	parseParamOrder(lines, &c)
	if m := returnsRe.FindStringSubmatch(doc); m != nil {
		c.ReturnType = m[1]
	}
	return c
}

// parseParamTypes collects `name (type):` entries from the Args block,
// which runs until a blank line or the end of the text.
func parseParamTypes(lines []string, c *Contract) {
	inArgs := false
	for _, line := range lines {
		if !inArgs {
			if argsHeaderRe.MatchString(line) {
				inArgs = true
			}
			continue
		}
		if strings.TrimSpace(line) == "" {
			return
		}
		if m := paramLineRe.FindStringSubmatch(line); m != nil {
			if _, seen := c.ParamTypes[m[1]]; !seen {
				c.ParamTypes[m[1]] = m[2]
			}
		}
	}
}

// parseParamOrder re-scans the Args block recording the leading name token
// of every line that starts with an identifier character. The first line
// that does not ends the block; this deliberately differs from the
// blank-line heuristic of the type pass.
func parseParamOrder(lines []string, c *Contract) {
	inArgs := false
	for _, line := range lines {
		if !inArgs {
			if argsHeaderRe.MatchString(line) {
				inArgs = true
			}
			continue
		}
		m := orderNameRe.FindStringSubmatch(strings.TrimLeft(line, " \t"))
		if m == nil {
			return
		}
		if m[1] != instanceParam {
			c.ParamOrder = append(c.ParamOrder, m[1])
		}
	}
}
