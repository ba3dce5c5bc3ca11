// Package wizard collects the raw answers for one tool and builds the
// ToolConfig. It asks, it does not judge: validation belongs to the
// entity and the checker.
package wizard

import (
	"github.com/manifoldco/promptui"

	"shireesh.com/matforge/internal/toolconfig"
	"shireesh.com/matforge/internal/tui"
)

// Prompter is the interactive channel the collector reads from.
type Prompter interface {
	Input(label, def string) (string, error)
	Select(label string, choices []string) (string, error)
}

// TerminalPrompter asks on the controlling terminal: promptui for free
// text, the bubbletea selector for closed choices.
type TerminalPrompter struct{}

func (TerminalPrompter) Input(label, def string) (string, error) {
	prompt := promptui.Prompt{Label: label, Default: def}
	result, err := prompt.Run()
	if err != nil {
		// treat an aborted prompt as an empty answer
		return "", nil
	}
	return result, nil
}

func (TerminalPrompter) Select(label string, choices []string) (string, error) {
	return tui.Select(label, choices)
}

var inputChoices = []string{
	string(toolconfig.InputFilePath),
	string(toolconfig.InputDirectData),
	string(toolconfig.InputConfigFile),
}

var outputChoices = []string{
	string(toolconfig.OutputDataStructure),
	string(toolconfig.OutputFile),
	string(toolconfig.OutputVisualization),
	string(toolconfig.OutputReport),
}

// Collect runs the question sequence once and returns the resulting
// config. Answers are passed through raw; empty answers pick up the
// entity's defaults.
func Collect(p Prompter) (*toolconfig.ToolConfig, error) {
	createFlag, err := p.Input("Create a tool? (Y/N)", "")
	if err != nil {
		return nil, err
	}
	name, err := p.Input("Tool name", "")
	if err != nil {
		return nil, err
	}
	description, err := p.Input("Description", "")
	if err != nil {
		return nil, err
	}
	category, err := p.Input("Category", "general")
	if err != nil {
		return nil, err
	}
	inputRaw, err := p.Select("Input type", inputChoices)
	if err != nil {
		return nil, err
	}
	outputRaw, err := p.Select("Output type", outputChoices)
	if err != nil {
		return nil, err
	}
	inputFile, err := p.Input("Input .mat file (enter to skip)", "")
	if err != nil {
		return nil, err
	}

	input, _ := toolconfig.ParseInputKind(inputRaw)
	output, _ := toolconfig.ParseOutputKind(outputRaw)
	return toolconfig.New(name, createFlag, description, input, output, category, inputFile), nil
}
