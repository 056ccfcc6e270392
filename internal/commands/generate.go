package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aurelia-labs/au/internal/branding"
	"github.com/aurelia-labs/au/internal/ui"
)

// GenerateCommand runs one of the project's generator scripts.
type GenerateCommand struct {
	deps Deps
}

// NewGenerateCommand builds the generate command.
func NewGenerateCommand(d Deps) Command {
	return &GenerateCommand{deps: d}
}

// Execute resolves the generator named by "generate:<name>" or the first
// positional argument, prompting when neither is given.
func (c *GenerateCommand) Execute(ctx context.Context, args []string) error {
	p := c.deps.Project
	if p == nil {
		return ErrNoProject
	}

	name, rest := c.generatorName(args)
	if name == "" {
		var err error
		if name, err = c.choose(); err != nil {
			return err
		}
	}

	path, err := p.ResolveGenerator(name)
	if err != nil {
		return fmt.Errorf("resolving generator %q: %w", name, err)
	}
	if path == "" {
		return fmt.Errorf("generator %q not found in %s", name, p.GeneratorDirectory())
	}
	return runScript(ctx, c.deps, path, rest)
}

// generatorName returns the generator name and the args left for the script.
func (c *GenerateCommand) generatorName(args []string) (string, []string) {
	if sub := c.deps.Options.Subcommand; sub != "" && sub != "default" {
		return sub, args
	}
	pos := c.deps.Options.Positional("env")
	if len(pos) == 0 {
		return "", args
	}
	name := pos[0]
	rest := make([]string, 0, len(args))
	removed := false
	for _, a := range args {
		if !removed && a == name {
			removed = true
			continue
		}
		rest = append(rest, a)
	}
	return name, rest
}

func (c *GenerateCommand) choose() (string, error) {
	gens, err := c.deps.Project.Generators()
	if err != nil {
		return "", err
	}
	if len(gens) == 0 {
		return "", fmt.Errorf("no generators found in %s", c.deps.Project.GeneratorDirectory())
	}

	names := make([]string, len(gens))
	for i, g := range gens {
		names[i] = g.Name
	}

	choice, err := c.deps.UI.Select("What would you like to generate?", names)
	if errors.Is(err, ui.ErrNonInteractive) {
		return "", fmt.Errorf("no generator given; run %s generate <generator> with one of: %s",
			branding.CLIName(), strings.Join(names, ", "))
	}
	if err != nil {
		return "", fmt.Errorf("selecting generator: %w", err)
	}
	return choice, nil
}
