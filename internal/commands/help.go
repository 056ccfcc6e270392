package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/aurelia-labs/au/internal/branding"
	"github.com/aurelia-labs/au/internal/project"
	"github.com/gosuri/uitable"
)

const helpColWidth = 72

// HelpCommand lists built-in commands and, inside a project, its tasks and
// generators.
type HelpCommand struct {
	deps Deps
}

// NewHelpCommand builds the help command.
func NewHelpCommand(d Deps) Command {
	return &HelpCommand{deps: d}
}

// Execute prints the help screen.
func (c *HelpCommand) Execute(_ context.Context, _ []string) error {
	u := c.deps.UI
	cli := branding.CLIName()

	u.Bold(fmt.Sprintf("%s CLI (%s)", branding.DisplayName(), c.deps.Build.Version))
	u.Log("")
	u.Logf("Usage: %s <command> [args] [flags]", cli)
	u.Log("")

	u.Bold("Commands:")
	table := newTable()
	for _, e := range c.deps.Registry.Entries() {
		table.AddRow("  "+e.Usage, e.Description)
	}
	u.Log(table.String())

	if p := c.deps.Project; p != nil {
		if err := c.printScripts("Tasks:", p.Tasks, "Run with: "+cli+" <task> [--watch] [--env <name>]"); err != nil {
			return err
		}
		if err := c.printScripts("Generators:", p.Generators, "Run with: "+cli+" generate <generator>"); err != nil {
			return err
		}
	} else {
		u.Log("")
		u.Log("Run inside a project to list its tasks and generators.")
	}

	u.Log("")
	u.Bold("Flags:")
	flags := newTable()
	flags.AddRow("  --version, -v", "Print the CLI version")
	flags.AddRow("  --help, -h", "Show this help")
	flags.AddRow("  --env <name>", "Select the build environment (default: dev)")
	u.Log(flags.String())
	return nil
}

func (c *HelpCommand) printScripts(title string, list func() ([]project.Metadata, error), hint string) error {
	scripts, err := list()
	if err != nil {
		return err
	}
	if len(scripts) == 0 {
		return nil
	}

	u := c.deps.UI
	u.Log("")
	u.Bold(title)
	u.Log("  " + hint)
	table := newTable()
	for _, s := range scripts {
		desc := s.Description
		if len(s.Flags) > 0 {
			names := make([]string, len(s.Flags))
			for i, f := range s.Flags {
				names[i] = "--" + f.Name
			}
			desc = strings.TrimSpace(desc + " [" + strings.Join(names, " ") + "]")
		}
		table.AddRow("  "+s.Name, desc)
	}
	u.Log(table.String())
	return nil
}

func newTable() *uitable.Table {
	t := uitable.New()
	t.MaxColWidth = helpColWidth
	t.Wrap = true
	return t
}
