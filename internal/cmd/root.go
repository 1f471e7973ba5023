// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flaskforge/cli/internal/config"
	"github.com/flaskforge/cli/internal/execx"
	"github.com/flaskforge/cli/internal/output"
	"github.com/flaskforge/cli/internal/pipeline"
	"github.com/flaskforge/cli/internal/templates"
)

var (
	// Generation flags
	blueprintsFlag   string
	dependenciesFlag string
	verbosityFlag    int
	templateFlag     string
	configFlag       string
	postGenHooksFlag string
	venvDirFlag      string
)

// NewRootCmd creates the root command for the fforge CLI. The root command
// is the generator itself; everything else is auxiliary.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fforge <project-name>",
		Short: "Generate a Flask project skeleton",
		Long: `fforge generates a Flask project skeleton: directory layout, rendered
template files, blueprint sub-units, Docker and CI files, a provisioned
virtual environment with installed dependencies, and an initialized
database.

Stage failures are logged and never abort the remaining stages; the
command reports completion and exits 0 regardless. Inspect the log output
or the generated directory to judge the outcome.

Examples:
  # REST API project with two blueprints
  fforge shop -b catalog,cart

  # Full-stack project with no dependencies installed
  fforge shop -t full_stack -D ""

  # Run hooks inside the new environment after generation
  fforge shop -H "git init,pip freeze > requirements.txt"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGenerate,
	}

	rootCmd.Flags().StringVarP(&blueprintsFlag, "blueprints", "b", "",
		"Comma-separated list of blueprint names")
	rootCmd.Flags().StringVarP(&dependenciesFlag, "dependencies", "D", strings.Join(config.DefaultDependencies, ","),
		"Comma-separated list of dependency specifiers")
	rootCmd.Flags().IntVarP(&verbosityFlag, "verbosity", "v", 0,
		"Logging verbosity: 0 (CRITICAL) to 4 (DEBUG)")
	rootCmd.Flags().StringVarP(&templateFlag, "template", "t", config.DefaultTemplate,
		fmt.Sprintf("Template set (%s)", strings.Join(templates.ValidSets(), ", ")))
	rootCmd.Flags().StringVarP(&configFlag, "config", "c", "",
		"Path to custom configuration file (reserved; consumed by no stage)")
	rootCmd.Flags().StringVarP(&postGenHooksFlag, "post-gen-hooks", "H", "",
		"Comma-separated shell commands run after generation")
	rootCmd.Flags().StringVarP(&venvDirFlag, "venv-dir", "e", "",
		"Alternate virtual environment directory (accepted; environment stays under the project root)")

	rootCmd.AddCommand(NewVersionCmd())
	rootCmd.AddCommand(NewTemplatesCmd())

	return rootCmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := output.NewLogger(verbosityFlag)

	cfg := config.GenerationConfig{
		ProjectName:  args[0],
		Blueprints:   config.SplitList(blueprintsFlag),
		Dependencies: config.SplitList(dependenciesFlag),
		Verbosity:    verbosityFlag,
		Template:     templateFlag,
		ConfigPath:   configFlag,
		PostGenHooks: config.SplitList(postGenHooksFlag),
		VenvDir:      venvDirFlag,
	}

	// The custom config file is a reserved extension point: loaded and
	// reported, consumed by no stage.
	if cfg.ConfigPath != "" {
		fileCfg, err := config.NewLoader().Load(cfg.ConfigPath)
		if err != nil {
			logger.Warn("config file not loaded", "path", cfg.ConfigPath, "error", err)
		} else {
			logger.Debug("config file loaded", "path", cfg.ConfigPath, "template", fileCfg.Template)
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}
	paths := config.NewProjectPaths(cwd, cfg.ProjectName)

	logger.Debug("starting generation",
		"project", cfg.ProjectName,
		"template", cfg.Template,
		"blueprints", len(cfg.Blueprints),
		"dependencies", len(cfg.Dependencies),
	)

	p := pipeline.New(cfg, paths, logger, execx.NewShellRunner())
	res := p.Run(cmd.Context())

	printSummary(cfg.ProjectName, paths.Root, res)

	// Stage failures never escalate to a non-zero exit.
	return nil
}

// printSummary renders the file tree and per-stage outcomes to stdout.
func printSummary(projectName, root string, res pipeline.Result) {
	if tree := output.RenderFileTree(projectName, res.Files); tree != "" {
		output.Println("")
		output.Print(tree)
	}

	output.Println("")
	for _, s := range res.Stages {
		output.Println(output.FormatStageLine(s.Stage, s.Failed()))
	}

	output.Println("")
	if failed := res.Failed(); len(failed) > 0 {
		output.Println(fmt.Sprintf("Project %s generated with %d failed stage(s) in %s",
			output.StyleNoun.Render(projectName), len(failed), root))
		return
	}
	output.Println(output.FormatCheckmark(fmt.Sprintf("Project %s generated in %s",
		output.StyleNoun.Render(projectName), root)))
}
