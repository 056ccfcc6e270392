package cli

import (
	"context"
	"strings"

	"github.com/aurelia-labs/au/internal/branding"
	"github.com/aurelia-labs/au/internal/cliopts"
	"github.com/aurelia-labs/au/internal/commands"
	"github.com/aurelia-labs/au/internal/filesystem"
	"github.com/aurelia-labs/au/internal/project"
	"github.com/aurelia-labs/au/internal/ui"
	"github.com/aurelia-labs/au/internal/version"
	"go.uber.org/zap"
)

const defaultSubcommand = "default"

// RunnerConfig holds the collaborators of a Runner. Zero fields get defaults.
type RunnerConfig struct {
	FS       *filesystem.FS
	UI       *ui.UI
	Options  *cliopts.Options
	Logger   *zap.Logger
	Build    commands.BuildInfo
	Registry commands.Registry
}

// Runner resolves and executes one command per invocation.
type Runner struct {
	fs       *filesystem.FS
	ui       *ui.UI
	options  *cliopts.Options
	logger   *zap.Logger
	build    commands.BuildInfo
	registry commands.Registry

	deps commands.Deps
}

// NewRunner returns a Runner with its container configured.
func NewRunner(cfg RunnerConfig) *Runner {
	r := &Runner{
		fs:       cfg.FS,
		ui:       cfg.UI,
		options:  cfg.Options,
		logger:   cfg.Logger,
		build:    cfg.Build,
		registry: cfg.Registry,
	}
	if r.fs == nil {
		r.fs = filesystem.NewOs()
	}
	if r.ui == nil {
		r.ui = ui.New()
	}
	if r.options == nil {
		r.options = cliopts.New(nil, cliopts.WorkingDir())
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	if r.registry == nil {
		r.registry = commands.Builtins()
	}

	r.deps = commands.Deps{
		FS:       r.fs,
		Logger:   r.logger,
		Build:    r.build,
		Registry: r.registry,
	}
	r.configureContainer()
	return r
}

// configureContainer registers the invocation options and the UI as the
// shared instances every command is built with.
func (r *Runner) configureContainer() {
	r.deps.Options = r.options
	r.deps.UI = r.ui
}

// Deps returns the dependencies commands are constructed with.
func (r *Runner) Deps() commands.Deps {
	return r.deps
}

// Run executes cmd with args.
func (r *Runner) Run(ctx context.Context, cmd string, args []string) error {
	if cmd == "--version" || cmd == "-v" {
		r.ui.Log(r.build.Version)
		return nil
	}

	p, err := r.establishProject()
	if err != nil {
		return err
	}
	if p != nil {
		r.registerProject(p)
	}

	command := r.createCommand(cmd, args)
	r.logger.Debug("executing command",
		zap.String("command", cmd),
		zap.String("task", r.options.TaskName),
		zap.String("subcommand", r.options.Subcommand))
	return command.Execute(ctx, args)
}

// establishProject finds the enclosing project, if the run mode calls for one.
func (r *Runner) establishProject() (*project.Project, error) {
	if !r.options.RunningLocally && !r.options.RunningGlobally {
		return nil, nil
	}

	dir, ok := project.Find(r.fs, r.options.BaseDir)
	if !ok {
		r.ui.Log("No " + branding.DisplayName() + " project found.")
		return nil, nil
	}
	r.logger.Debug("found project", zap.String("dir", dir))
	return project.Establish(r.fs, dir)
}

// registerProject makes p available to commands. A global install only
// takes a project whose cli.version constraint it satisfies.
func (r *Runner) registerProject(p *project.Project) {
	if r.options.RunningLocally {
		r.deps.Project = p
		return
	}

	constraint := p.CLIConstraint()
	ok, err := version.Satisfies(r.build.Version, constraint)
	if err != nil {
		r.logger.Debug("bad cli.version constraint", zap.String("constraint", constraint), zap.Error(err))
	}
	if ok {
		r.deps.Project = p
		return
	}
	r.ui.Warningf("%s is likely a%s %s project, but it requires CLI version %q and this global install is %s. "+
		"Install the CLI in the project or upgrade the global one.",
		p.Directory, article(branding.DisplayName()), branding.DisplayName(), constraint, r.build.Version)
}

// createCommand resolves cmd to a command. Unknown names fall back to help.
func (r *Runner) createCommand(cmd string, args []string) commands.Command {
	if cmd == "" || cmd == "--help" || cmd == "-h" {
		return r.createHelpCommand()
	}

	module, sub, _ := strings.Cut(cmd, ":")
	if sub == "" {
		sub = defaultSubcommand
	}
	module = commands.ResolveAlias(module)

	r.options.Args = args
	r.options.TaskName = module
	r.options.Subcommand = sub

	if entry, ok := r.registry.Lookup(module); ok {
		return entry.New(r.deps)
	}

	if p := r.deps.Project; p != nil {
		path, err := p.ResolveTask(module)
		if err != nil {
			r.logger.Debug("resolving task", zap.String("task", module), zap.Error(err))
		}
		if path != "" {
			return commands.NewRunCommand(r.deps)
		}
	}

	r.ui.Log("Invalid Command: " + cmd)
	return r.createHelpCommand()
}

func (r *Runner) createHelpCommand() commands.Command {
	if entry, ok := r.registry.Lookup("help"); ok {
		return entry.New(r.deps)
	}
	return commands.NewHelpCommand(r.deps)
}

func article(word string) string {
	if word != "" && strings.ContainsRune("AEIOUaeiou", rune(word[0])) {
		return "n"
	}
	return ""
}
