package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shireesh.com/matforge/internal/config"
	"shireesh.com/matforge/internal/generate"
	"shireesh.com/matforge/internal/logging"
	"shireesh.com/matforge/internal/render"
	"shireesh.com/matforge/internal/validate"
	"shireesh.com/matforge/internal/wizard"
)

var (
	bannerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Padding(0, 1)
	summaryStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

var (
	configPath string
	outputDir  string

	// template dir extracted from the embedded bundle, set by Execute
	bundledTemplateDir string
)

var rootCmd = &cobra.Command{
	Use:   "matforge",
	Short: "Interactive wizard that scaffolds MATLAB tool projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWizard()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the config file (default ~/"+config.FileName+")")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "", "directory to place the generated tool in")
}

// Execute runs the CLI. templateDir points at the templates extracted
// from the embedded bundle; a configured template_dir takes precedence.
func Execute(templateDir string) {
	bundledTemplateDir = templateDir
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, failStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func runWizard() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	templateDir := bundledTemplateDir
	if cfg.TemplateDir != "" {
		templateDir = cfg.TemplateDir
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	log.Debug("wizard starting",
		zap.String("templateDir", templateDir),
		zap.String("outputDir", cfg.OutputDir))

	fmt.Println(bannerStyle.Render("MATLAB Tool Setup Wizard"))

	toolCfg, err := wizard.Collect(wizard.TerminalPrompter{})
	if err != nil {
		return err
	}
	fmt.Println(summaryStyle.Render(toolCfg.Summary()))

	ok, reason := validate.NewChecker(cfg.ReservedWords).Check(toolCfg)
	if !ok {
		fmt.Println(failStyle.Render("Validation failed: " + reason))
		os.Exit(1)
	}
	log.Debug("configuration valid", zap.String("tool", toolCfg.Name))

	if !toolCfg.ShouldCreate() {
		fmt.Println(render.Cancelled)
		return nil
	}

	msg, err := generate.New(templateDir, cfg.OutputDir, log).Generate(toolCfg)
	if err != nil {
		return err
	}
	fmt.Println(okStyle.Render(msg))
	return nil
}
