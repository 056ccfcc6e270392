package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// RunCommand executes the project task named by Options.TaskName. It is the
// fallback for command names that match no built-in.
type RunCommand struct {
	deps Deps
}

// NewRunCommand builds the task runner.
func NewRunCommand(d Deps) Command {
	return &RunCommand{deps: d}
}

// Task returns the name of the task this command runs.
func (c *RunCommand) Task() string {
	return c.deps.Options.TaskName
}

// Execute runs the task once, or keeps re-running it on source changes when
// --watch is given.
func (c *RunCommand) Execute(ctx context.Context, args []string) error {
	p := c.deps.Project
	if p == nil {
		return ErrNoProject
	}

	name := c.Task()
	path, err := p.ResolveTask(name)
	if err != nil {
		return fmt.Errorf("resolving task %q: %w", name, err)
	}
	if path == "" {
		return fmt.Errorf("task %q not found in %s", name, p.TaskDirectory())
	}

	c.deps.logger().Debug("running task", zap.String("task", name), zap.String("path", path))

	if !c.deps.Options.HasFlag("watch", "") {
		return runScript(ctx, c.deps, path, args)
	}
	return c.watch(ctx, path, withoutFlag(args, "--watch"))
}

// withoutFlag returns args minus every occurrence of flag before "--".
func withoutFlag(args []string, flag string) []string {
	out := make([]string, 0, len(args))
	for i, a := range args {
		if a == "--" {
			return append(out, args[i:]...)
		}
		if a != flag {
			out = append(out, a)
		}
	}
	return out
}
