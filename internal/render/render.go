// Package render fills placeholder tokens in template text with fields
// from a ToolConfig. It works on text it is handed; reading template
// files is the generator's job.
package render

import (
	"strings"

	"shireesh.com/matforge/internal/toolconfig"
)

// Cancelled is returned instead of rendered output when the user
// declined tool creation.
const Cancelled = "Tool creation cancelled by user"

// Placeholder tokens recognized in template text. Anything else passes
// through verbatim.
const (
	TokenName        = "MATLAB_NAME"
	TokenDescription = "DESCRIPTION"
	TokenCategory    = "CATEGORY"
	TokenInputType   = "INPUT_TYPE"
	TokenOutputType  = "OUTPUT_TYPE"
	TokenInputFile   = "INPUT_FILE"
)

// Tokens lists every recognized placeholder.
var Tokens = []string{TokenName, TokenDescription, TokenCategory, TokenInputType, TokenOutputType, TokenInputFile}

// Render substitutes the config's fields into templateText. A config
// with ShouldCreate false short-circuits to the Cancelled sentinel
// without touching the template.
func Render(cfg *toolconfig.ToolConfig, templateText string) string {
	if !cfg.ShouldCreate() {
		return Cancelled
	}
	r := strings.NewReplacer(
		TokenName, cfg.Name,
		TokenDescription, cfg.Description,
		TokenCategory, cfg.Category,
		TokenInputType, string(cfg.Input),
		TokenOutputType, string(cfg.Output),
		TokenInputFile, cfg.InputFile,
	)
	return r.Replace(templateText)
}
