package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shireesh.com/matforge/internal/toolconfig"
)

// scriptPrompter replays canned answers keyed by prompt label.
type scriptPrompter struct {
	answers map[string]string
	asked   []string
}

func (s *scriptPrompter) Input(label, def string) (string, error) {
	s.asked = append(s.asked, label)
	if a, ok := s.answers[label]; ok {
		return a, nil
	}
	return def, nil
}

func (s *scriptPrompter) Select(label string, choices []string) (string, error) {
	s.asked = append(s.asked, label)
	if a, ok := s.answers[label]; ok {
		return a, nil
	}
	return choices[0], nil
}

func TestCollectBuildsConfigFromAnswers(t *testing.T) {
	p := &scriptPrompter{answers: map[string]string{
		"Create a tool? (Y/N)": "y",
		"Tool name":            "  DataProcessor ",
		"Description":          "Processes sensor data",
		"Category":             "Analysis",
		"Input type":           "direct_data",
		"Output type":          "report",
	}}
	cfg, err := Collect(p)
	require.NoError(t, err)

	assert.Equal(t, "DataProcessor", cfg.Name)
	assert.Equal(t, "Y", cfg.CreateFlag)
	assert.Equal(t, "Processes sensor data", cfg.Description)
	assert.Equal(t, "analysis", cfg.Category)
	assert.Equal(t, toolconfig.InputDirectData, cfg.Input)
	assert.Equal(t, toolconfig.OutputReport, cfg.Output)
	assert.Empty(t, cfg.InputFile)
}

func TestCollectDefaultsWhenAnswersEmpty(t *testing.T) {
	p := &scriptPrompter{answers: map[string]string{
		"Create a tool? (Y/N)": "n",
		"Tool name":            "Tool",
		"Description":          "",
		"Category":             "",
	}}
	cfg, err := Collect(p)
	require.NoError(t, err)

	assert.Equal(t, toolconfig.InputFilePath, cfg.Input)
	assert.Equal(t, toolconfig.OutputDataStructure, cfg.Output)
	assert.Equal(t, "general", cfg.Category)
}

func TestCollectAppliesNoValidation(t *testing.T) {
	p := &scriptPrompter{answers: map[string]string{
		"Create a tool? (Y/N)": "MAYBE",
		"Tool name":            "123",
	}}
	cfg, err := Collect(p)
	require.NoError(t, err)
	assert.Equal(t, "MAYBE", cfg.CreateFlag)
	assert.Equal(t, "123", cfg.Name)
}

func TestCollectAsksEachQuestionOnce(t *testing.T) {
	p := &scriptPrompter{answers: map[string]string{}}
	_, err := Collect(p)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Create a tool? (Y/N)",
		"Tool name",
		"Description",
		"Category",
		"Input type",
		"Output type",
		"Input .mat file (enter to skip)",
	}, p.asked)
}
