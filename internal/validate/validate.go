// Package validate layers the cross-field and table-lookup rules on top
// of the entity's own format validation.
package validate

import (
	"os"
	"strings"
	"unicode/utf8"

	"shireesh.com/matforge/internal/toolconfig"
)

// DefaultReservedWords are MATLAB keywords a tool may not be named after.
var DefaultReservedWords = []string{"function", "end", "if", "else", "for", "while", "return"}

const maxNameLength = 50

// Checker applies the business rules that don't belong in the entity.
// Its rule tables are fixed at construction.
type Checker struct {
	reserved map[string]struct{}
}

// NewChecker builds a Checker over the default reserved words plus any
// extras (typically from configuration). Words are matched
// case-insensitively.
func NewChecker(extraReserved []string) *Checker {
	c := &Checker{
		reserved: make(map[string]struct{}, len(DefaultReservedWords)+len(extraReserved)),
	}
	for _, w := range DefaultReservedWords {
		c.reserved[strings.ToLower(w)] = struct{}{}
	}
	for _, w := range extraReserved {
		c.reserved[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}
	return c
}

// Check runs the entity's own validation first, then the checker's
// rules. It returns (true, "Valid") only when everything passes;
// otherwise the reason describes the first failing layer.
func (c *Checker) Check(cfg *toolconfig.ToolConfig) (bool, string) {
	if !cfg.Validate() {
		return false, cfg.ErrorSummary()
	}

	if _, ok := c.reserved[strings.ToLower(cfg.Name)]; ok {
		return false, "'" + cfg.Name + "' is a reserved MATLAB keyword"
	}

	if cfg.ShouldCreate() && strings.TrimSpace(cfg.Description) == "" {
		return false, "Description required when creating a tool"
	}

	if utf8.RuneCountInString(cfg.Name) > maxNameLength {
		return false, "Tool name too long (maximum 50 characters)"
	}

	if cfg.InputFile != "" {
		if _, err := os.Stat(cfg.InputFile); err != nil {
			return false, "Input file not found: " + cfg.InputFile
		}
		if !strings.HasSuffix(strings.ToLower(cfg.InputFile), ".mat") {
			return false, "Input file must have .mat extension"
		}
	}

	return true, "Valid"
}
