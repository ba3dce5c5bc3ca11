// Package toolconfig holds the configuration record a single wizard run
// builds up and hands through validation and rendering. The struct is a
// plain value holder: it does no I/O and never collects data itself.
package toolconfig

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// InputKind is the closed set of ways a generated tool receives data.
type InputKind string

const (
	InputFilePath   InputKind = "file_path"
	InputDirectData InputKind = "direct_data"
	InputConfigFile InputKind = "config_file"
)

// OutputKind is the closed set of artifacts a generated tool produces.
type OutputKind string

const (
	OutputFile          OutputKind = "file"
	OutputDataStructure OutputKind = "data_structure"
	OutputVisualization OutputKind = "visualization"
	OutputReport        OutputKind = "report"
)

// ParseInputKind maps a raw answer to an InputKind, case-insensitively.
// Unknown values fall back to InputFilePath with ok=false.
func ParseInputKind(s string) (InputKind, bool) {
	switch InputKind(strings.ToLower(strings.TrimSpace(s))) {
	case InputFilePath:
		return InputFilePath, true
	case InputDirectData:
		return InputDirectData, true
	case InputConfigFile:
		return InputConfigFile, true
	}
	return InputFilePath, false
}

// ParseOutputKind maps a raw answer to an OutputKind, case-insensitively.
// Unknown values fall back to OutputDataStructure with ok=false.
func ParseOutputKind(s string) (OutputKind, bool) {
	switch OutputKind(strings.ToLower(strings.TrimSpace(s))) {
	case OutputFile:
		return OutputFile, true
	case OutputDataStructure:
		return OutputDataStructure, true
	case OutputVisualization:
		return OutputVisualization, true
	case OutputReport:
		return OutputReport, true
	}
	return OutputDataStructure, false
}

// ToolConfig carries everything needed to render one tool. Fields are
// normalized exactly once, in New, before anything else sees the value.
type ToolConfig struct {
	Name        string
	CreateFlag  string
	Description string
	Input       InputKind
	Output      OutputKind
	Category    string
	InputFile   string

	// populated by Validate, read through Errors/ErrorSummary
	errors []string
}

// New builds a ToolConfig from raw collected answers. Trimming and case
// folding happen here and nowhere else; construction never fails, bad
// values are caught later by Validate.
func New(name, createFlag, description string, input InputKind, output OutputKind, category, inputFile string) *ToolConfig {
	if input == "" {
		input = InputFilePath
	}
	if output == "" {
		output = OutputDataStructure
	}
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		category = "general"
	}
	return &ToolConfig{
		Name:        strings.TrimSpace(name),
		CreateFlag:  strings.ToUpper(strings.TrimSpace(createFlag)),
		Description: strings.TrimSpace(description),
		Input:       input,
		Output:      output,
		Category:    category,
		InputFile:   strings.TrimSpace(inputFile),
	}
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Validate clears the error list and re-checks the format rules. The
// rule order is fixed so callers can rely on the first message.
func (c *ToolConfig) Validate() bool {
	c.errors = c.errors[:0]

	if !isAlpha(strings.ReplaceAll(c.Name, " ", "")) {
		c.errors = append(c.errors, "Tool name must contain only letters")
	}
	if utf8.RuneCountInString(c.Name) < 3 {
		c.errors = append(c.errors, "Tool name must be at least 3 characters")
	}
	if c.CreateFlag != "Y" && c.CreateFlag != "N" {
		c.errors = append(c.errors, "create_tool must be Y or N")
	}
	if strings.TrimSpace(c.Description) == "" {
		c.errors = append(c.errors, "Description cannot be empty")
	}
	return len(c.errors) == 0
}

// ShouldCreate reports whether the user answered yes to creating the tool.
func (c *ToolConfig) ShouldCreate() bool {
	return c.CreateFlag == "Y"
}

// Errors returns a copy of the messages recorded by the last Validate.
func (c *ToolConfig) Errors() []string {
	out := make([]string, len(c.errors))
	copy(out, c.errors)
	return out
}

// ErrorSummary joins the recorded messages for display.
func (c *ToolConfig) ErrorSummary() string {
	if len(c.errors) == 0 {
		return "No errors"
	}
	return strings.Join(c.errors, " • ")
}

// Summary renders the collected answers for the confirmation screen.
func (c *ToolConfig) Summary() string {
	return fmt.Sprintf(
		"Tool Name: %s\nCreate: %s\nDescription: %s\nCategory: %s\nInput: %s\nOutput: %s",
		c.Name, c.CreateFlag, c.Description, c.Category, c.Input, c.Output)
}
