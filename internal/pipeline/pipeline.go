// Package pipeline orchestrates the generation stages that turn a
// configuration into a populated project directory.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/flaskforge/cli/internal/assets"
	"github.com/flaskforge/cli/internal/blueprint"
	"github.com/flaskforge/cli/internal/config"
	"github.com/flaskforge/cli/internal/execx"
	"github.com/flaskforge/cli/internal/output"
	"github.com/flaskforge/cli/internal/scaffold"
	"github.com/flaskforge/cli/internal/templates"
	"github.com/flaskforge/cli/internal/venv"
)

// Pipeline sequences the generation stages in a fixed order: directories,
// virtual environment, dependency install, template set, blueprints, the
// fixed application files, database initialization, and finally the
// post-generation hooks.
//
// Failures are caught at the stage boundary, logged at ERROR, recorded in
// the aggregate Result, and never stop the remaining stages. A failed
// environment creation leaves the activation context empty; stages that need
// it are still attempted and fail on their own.
type Pipeline struct {
	cfg    config.GenerationConfig
	paths  config.ProjectPaths
	log    *log.Logger
	runner execx.Runner

	prov       *venv.Provisioner
	blueprints *blueprint.Generator

	env     venv.EnvContext
	results []StageResult
	files   map[string]string
}

// New creates a Pipeline for one generation run.
func New(cfg config.GenerationConfig, paths config.ProjectPaths, logger *log.Logger, runner execx.Runner) *Pipeline {
	return &Pipeline{
		cfg:        cfg,
		paths:      paths,
		log:        logger,
		runner:     runner,
		prov:       venv.NewProvisioner(runner, logger),
		blueprints: blueprint.NewGenerator(logger),
		files:      make(map[string]string),
	}
}

// Run attempts every stage and returns the aggregate result. It never
// returns an error: stage failures are observable only through the Result
// and the log.
func (p *Pipeline) Run(ctx context.Context) Result {
	p.attempt(ctx, "create directories", p.createDirectories)
	p.attempt(ctx, "create virtual environment", p.createEnvironment)
	p.attempt(ctx, "install dependencies", p.installDependencies)
	p.attempt(ctx, "render template set", p.renderTemplateSet)

	for _, name := range p.cfg.Blueprints {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		p.attempt(ctx, "generate blueprint "+name, func(ctx context.Context) error {
			return p.generateBlueprint(ctx, name)
		})
	}

	p.attempt(ctx, "write app initializer", p.writeInitFile)
	p.attempt(ctx, "write models file", p.writeModelsFile)
	p.attempt(ctx, "write docker files", p.writeDockerFiles)
	p.attempt(ctx, "write ci workflow", p.writeCIFiles)
	p.attempt(ctx, "initialize database", p.initializeDatabase)

	for i, hook := range p.cfg.PostGenHooks {
		hook = strings.TrimSpace(hook)
		if hook == "" {
			continue
		}
		p.attempt(ctx, fmt.Sprintf("post-generation hook %d (%s)", i+1, hook), func(ctx context.Context) error {
			return p.runHook(ctx, hook)
		})
	}

	p.log.Info("project generation finished", "project", p.cfg.ProjectName, "failed_stages", len(Result{Stages: p.results}.Failed()))

	return Result{Stages: p.results, Files: p.files}
}

// attempt runs one stage, logging and recording its outcome. No stage error
// propagates past this boundary.
func (p *Pipeline) attempt(ctx context.Context, stage string, fn func(context.Context) error) {
	p.log.Debug("stage starting", "stage", stage)

	err := fn(ctx)
	if err != nil {
		p.log.Error(stage, "error", err)
	} else {
		p.log.Debug("stage done", "stage", stage)
	}

	p.results = append(p.results, StageResult{Stage: stage, Err: err})
}

func (p *Pipeline) createDirectories(context.Context) error {
	if err := scaffold.CreateDirectories(p.paths); err != nil {
		return err
	}
	p.log.Info("directories created", "project", p.cfg.ProjectName)
	return nil
}

func (p *Pipeline) createEnvironment(ctx context.Context) error {
	return output.RunWithSpinner(ctx, func() error {
		env, err := p.prov.Create(ctx, p.paths.Env)
		if err != nil {
			return err
		}
		p.env = env
		return nil
	}, output.WithTitle("Creating virtual environment..."))
}

func (p *Pipeline) installDependencies(ctx context.Context) error {
	if len(p.cfg.Dependencies) == 0 {
		return nil
	}
	return output.RunWithSpinner(ctx, func() error {
		return p.prov.Install(ctx, p.env, p.cfg.Dependencies)
	}, output.WithTitle("Installing dependencies..."))
}

func (p *Pipeline) renderTemplateSet(context.Context) error {
	created, err := templates.Render(templates.SetName(p.cfg.Template), p.paths.Root, templates.Data{
		ProjectName: p.cfg.ProjectName,
	})
	if err != nil {
		return err
	}

	for _, f := range created {
		p.files[f] = ""
	}
	p.log.Info("base files created", "template", p.cfg.Template, "files", len(created))
	return nil
}

func (p *Pipeline) generateBlueprint(_ context.Context, name string) error {
	created, err := p.blueprints.Generate(name, p.paths)
	for _, f := range created {
		p.files[f] = ""
	}
	if err != nil {
		return err
	}
	p.log.Info("blueprint created", "name", name)
	return nil
}

func (p *Pipeline) writeInitFile(context.Context) error {
	content, err := assets.AppInit()
	if err != nil {
		return err
	}
	return p.writeFile(filepath.Join(p.cfg.ProjectName, "__init__.py"), content, "Application factory")
}

func (p *Pipeline) writeModelsFile(context.Context) error {
	content, err := assets.Models()
	if err != nil {
		return err
	}
	return p.writeFile(filepath.Join(p.cfg.ProjectName, "models.py"), content, "Model definitions")
}

func (p *Pipeline) writeDockerFiles(context.Context) error {
	dockerfile, err := assets.Dockerfile()
	if err != nil {
		return err
	}
	if err := p.writeFile("Dockerfile", dockerfile, "Container build file"); err != nil {
		return err
	}

	compose, err := assets.Compose()
	if err != nil {
		return err
	}
	return p.writeFile("docker-compose.yml", compose, "Compose file")
}

func (p *Pipeline) writeCIFiles(context.Context) error {
	workflow, err := assets.CIWorkflow()
	if err != nil {
		return err
	}
	return p.writeFile(filepath.Join(".github", "workflows", "python-app.yml"), workflow, "CI workflow")
}

// initializeDatabase runs the three migration commands in order inside the
// project directory with the environment activated. A failure stops the
// remaining migration commands but not the rest of the pipeline.
func (p *Pipeline) initializeDatabase(ctx context.Context) error {
	commands := [][]string{
		{"flask", "db", "init"},
		{"flask", "db", "migrate"},
		{"flask", "db", "upgrade"},
	}

	for _, argv := range commands {
		err := p.runner.Run(ctx, execx.Command{
			Argv: argv,
			Dir:  p.paths.Root,
			Env:  p.env.Environ(),
		})
		if err != nil {
			return fmt.Errorf("initializing database: %w", err)
		}
	}

	p.log.Info("database initialized")
	return nil
}

func (p *Pipeline) runHook(ctx context.Context, hook string) error {
	return p.runner.Run(ctx, execx.Command{
		Line: hook,
		Dir:  p.paths.Root,
		Env:  p.env.Environ(),
	})
}

// writeFile writes one project-relative file, creating parent directories,
// and records it for the run summary.
func (p *Pipeline) writeFile(rel string, content []byte, desc string) error {
	target := filepath.Join(p.paths.Root, rel)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", target, err)
	}
	if err := os.WriteFile(target, content, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}

	p.files[rel] = desc
	return nil
}
