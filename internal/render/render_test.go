package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shireesh.com/matforge/internal/toolconfig"
)

func TestRenderCancelledWhenNotCreating(t *testing.T) {
	cfg := toolconfig.New("Tool", "N", "desc", "", "", "", "")
	assert.Equal(t, Cancelled, Render(cfg, "Hello MATLAB_NAME"))
	assert.Equal(t, Cancelled, Render(cfg, ""))
}

func TestRenderSubstitutesTokens(t *testing.T) {
	cfg := toolconfig.New("Tool", "Y", "desc", "", "", "", "")
	assert.Equal(t, "Hello Tool, desc", Render(cfg, "Hello MATLAB_NAME, DESCRIPTION"))
}

func TestRenderAllTokens(t *testing.T) {
	cfg := toolconfig.New("Filter", "Y", "smooths signals", toolconfig.InputConfigFile, toolconfig.OutputReport, "Signal", "in.mat")
	got := Render(cfg, "MATLAB_NAME|DESCRIPTION|CATEGORY|INPUT_TYPE|OUTPUT_TYPE|INPUT_FILE")
	assert.Equal(t, "Filter|smooths signals|signal|config_file|report|in.mat", got)
}

func TestRenderLeavesUnknownTokensAlone(t *testing.T) {
	cfg := toolconfig.New("Tool", "Y", "desc", "", "", "", "")
	assert.Equal(t, "AUTHOR_NAME stays, Tool done", Render(cfg, "AUTHOR_NAME stays, MATLAB_NAME done"))
}

func TestRenderNoPlaceholderLeakage(t *testing.T) {
	cfg := toolconfig.New("Tool", "Y", "desc", toolconfig.InputDirectData, toolconfig.OutputFile, "math", "x.mat")
	in := "MATLAB_NAME DESCRIPTION CATEGORY INPUT_TYPE OUTPUT_TYPE INPUT_FILE MATLAB_NAME"
	got := Render(cfg, in)
	for _, tok := range Tokens {
		assert.NotContains(t, got, tok)
	}
}
