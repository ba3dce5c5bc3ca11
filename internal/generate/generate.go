// Package generate lays out the project tree for a tool and writes the
// rendered templates into it.
package generate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"shireesh.com/matforge/internal/render"
	"shireesh.com/matforge/internal/toolconfig"
)

// Template file names looked up under the template directory.
const (
	PlainToolTemplate = "matlab_tool.m"
	InputToolTemplate = "matlab_input_tool.m"
	ReadmeTemplate    = "readme.md"
)

// Generator writes tool projects below OutputDir using templates from
// TemplateDir. Both paths are fixed at construction.
type Generator struct {
	TemplateDir string
	OutputDir   string
	Log         *zap.Logger
}

func New(templateDir, outputDir string, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{TemplateDir: templateDir, OutputDir: outputDir, Log: log}
}

func (g *Generator) renderTemplate(name string, cfg *toolconfig.ToolConfig) (string, error) {
	path := filepath.Join(g.TemplateDir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading template %s", path)
	}
	return render.Render(cfg, string(data)), nil
}

// Generate creates <OutputDir>/<Name>/{src,docs}, writes the rendered
// MATLAB stub and README, and returns a success message. The tool
// template depends on whether an input file was given.
func (g *Generator) Generate(cfg *toolconfig.ToolConfig) (string, error) {
	base := filepath.Join(g.OutputDir, cfg.Name)
	srcDir := filepath.Join(base, "src")
	docsDir := filepath.Join(base, "docs")

	g.Log.Debug("creating project tree", zap.String("base", base))
	for _, dir := range []string{srcDir, docsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", errors.Wrapf(err, "creating %s", dir)
		}
	}

	toolTemplate := PlainToolTemplate
	if cfg.InputFile != "" {
		toolTemplate = InputToolTemplate
	}
	toolText, err := g.renderTemplate(toolTemplate, cfg)
	if err != nil {
		return "", err
	}
	toolPath := filepath.Join(srcDir, cfg.Name+".m")
	if err := os.WriteFile(toolPath, []byte(toolText), 0o644); err != nil {
		return "", errors.Wrapf(err, "writing %s", toolPath)
	}
	g.Log.Debug("wrote tool stub", zap.String("path", toolPath))

	readmeText, err := g.renderTemplate(ReadmeTemplate, cfg)
	if err != nil {
		return "", err
	}
	readmePath := filepath.Join(docsDir, "README.md")
	if err := os.WriteFile(readmePath, []byte(readmeText), 0o644); err != nil {
		return "", errors.Wrapf(err, "writing %s", readmePath)
	}
	g.Log.Debug("wrote readme", zap.String("path", readmePath))

	return fmt.Sprintf("Tool '%s' created successfully at %s", cfg.Name, base), nil
}
