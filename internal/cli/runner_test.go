package cli

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/aurelia-labs/au/internal/cliopts"
	"github.com/aurelia-labs/au/internal/commands"
	"github.com/aurelia-labs/au/internal/filesystem"
	"github.com/aurelia-labs/au/internal/project"
	"github.com/aurelia-labs/au/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const root = "/workspaces/app"

// spyCommand records how it was built and executed.
type spyCommand struct {
	deps     commands.Deps
	executed bool
	args     []string
	err      error
}

func (c *spyCommand) Execute(_ context.Context, args []string) error {
	c.executed = true
	c.args = args
	return c.err
}

type harness struct {
	runner  *Runner
	fs      *filesystem.FS
	out     *bytes.Buffer
	options *cliopts.Options
	built   []*spyCommand
}

// newHarness wires a Runner over an in-memory filesystem whose registry
// builds spy commands for "help" and "version".
func newHarness(t *testing.T, buildVersion string, mode func(*cliopts.Options)) *harness {
	t.Helper()
	h := &harness{
		fs:      filesystem.NewMem(),
		out:     &bytes.Buffer{},
		options: cliopts.New(nil, root),
	}
	if mode != nil {
		mode(h.options)
	}

	spy := func(d commands.Deps) commands.Command {
		c := &spyCommand{deps: d}
		h.built = append(h.built, c)
		return c
	}
	registry := commands.Registry{}
	registry.Register(commands.Entry{Name: "help", New: spy})
	registry.Register(commands.Entry{Name: "version", New: spy})
	registry.Register(commands.Entry{Name: "generate", New: spy})

	h.runner = NewRunner(RunnerConfig{
		FS:       h.fs,
		UI:       ui.NewWithWriter(h.out),
		Options:  h.options,
		Build:    commands.BuildInfo{Version: buildVersion},
		Registry: registry,
	})
	return h
}

func (h *harness) writeProject(t *testing.T, model string, files ...string) {
	t.Helper()
	require.NoError(t, h.fs.WriteFile(project.ModelPath(root), model))
	for _, f := range files {
		require.NoError(t, h.fs.WriteFile(filepath.Join(root, f), "echo ok"))
	}
}

func (h *harness) last(t *testing.T) *spyCommand {
	t.Helper()
	require.NotEmpty(t, h.built, "no command was created")
	return h.built[len(h.built)-1]
}

func local(o *cliopts.Options) { cliopts.ModeLocal.Apply(o) }
func global(o *cliopts.Options) { cliopts.ModeGlobal.Apply(o) }

func TestConfigureContainer(t *testing.T) {
	h := newHarness(t, "1.0.0", nil)
	d := h.runner.Deps()
	assert.Same(t, h.options, d.Options)
	assert.NotNil(t, d.UI)
	assert.Nil(t, d.Project)
}

func TestVersionFlag(t *testing.T) {
	for _, flag := range []string{"--version", "-v"} {
		t.Run(flag, func(t *testing.T) {
			h := newHarness(t, "1.4.2", local)
			h.writeProject(t, `{"name": "app"}`)

			require.NoError(t, h.runner.Run(context.Background(), flag, nil))
			assert.Equal(t, "1.4.2\n", h.out.String())
			assert.Empty(t, h.built)
			assert.Nil(t, h.runner.Deps().Project, "version must not establish the project")
		})
	}
}

func TestEstablishProject(t *testing.T) {
	t.Run("no run mode", func(t *testing.T) {
		h := newHarness(t, "1.0.0", nil)
		h.writeProject(t, `{"name": "app"}`)

		p, err := h.runner.establishProject()
		require.NoError(t, err)
		assert.Nil(t, p)
		assert.Empty(t, h.out.String())
	})

	t.Run("not found", func(t *testing.T) {
		h := newHarness(t, "1.0.0", local)

		p, err := h.runner.establishProject()
		require.NoError(t, err)
		assert.Nil(t, p)
		assert.Equal(t, "No Aurelia project found.\n", h.out.String())
	})

	t.Run("found from a subdirectory", func(t *testing.T) {
		h := newHarness(t, "1.0.0", local)
		h.writeProject(t, `{"name": "app"}`)
		h.options.BaseDir = filepath.Join(root, "src", "resources")

		p, err := h.runner.establishProject()
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, root, p.Directory)
	})

	t.Run("establish errors are returned", func(t *testing.T) {
		h := newHarness(t, "1.0.0", local)
		h.writeProject(t, `{"paths": {}}`)

		err := h.runner.Run(context.Background(), "help", nil)
		assert.ErrorIs(t, err, project.ErrInvalidModel)
		assert.Empty(t, h.built)
	})
}

func TestRunRegistersProject(t *testing.T) {
	h := newHarness(t, "1.0.0", local)
	h.writeProject(t, `{"name": "app"}`)

	require.NoError(t, h.runner.Run(context.Background(), "help", nil))
	p := h.last(t).deps.Project
	require.NotNil(t, p)
	assert.Equal(t, "app", p.Name())
}

func TestRunGlobalMode(t *testing.T) {
	t.Run("compatible", func(t *testing.T) {
		h := newHarness(t, "1.5.0", global)
		h.writeProject(t, `{"name": "app", "cli": {"version": "^1.2.0"}}`)

		require.NoError(t, h.runner.Run(context.Background(), "help", nil))
		assert.NotNil(t, h.last(t).deps.Project)
		assert.NotContains(t, h.out.String(), "Warning")
	})

	t.Run("incompatible", func(t *testing.T) {
		h := newHarness(t, "2.0.0", global)
		h.writeProject(t, `{"name": "app", "cli": {"version": "^1.2.0"}}`)

		require.NoError(t, h.runner.Run(context.Background(), "help", nil))
		assert.Nil(t, h.last(t).deps.Project)
		assert.Contains(t, h.out.String(), "is likely an Aurelia project")
	})

	t.Run("no constraint", func(t *testing.T) {
		h := newHarness(t, "2.0.0", global)
		h.writeProject(t, `{"name": "app"}`)

		require.NoError(t, h.runner.Run(context.Background(), "help", nil))
		assert.NotNil(t, h.last(t).deps.Project)
	})
}

func TestRunPassesArgs(t *testing.T) {
	h := newHarness(t, "1.0.0", nil)

	args := []string{"component", "--env", "prod"}
	require.NoError(t, h.runner.Run(context.Background(), "generate", args))

	c := h.last(t)
	assert.True(t, c.executed)
	assert.Equal(t, args, c.args)
	assert.Equal(t, args, h.options.Args)
	assert.Equal(t, "generate", h.options.TaskName)
	assert.Equal(t, "default", h.options.Subcommand)
}

func TestRunReturnsCommandError(t *testing.T) {
	h := newHarness(t, "1.0.0", nil)
	want := errors.New("boom")
	h.runner.registry.Register(commands.Entry{Name: "fail", New: func(commands.Deps) commands.Command {
		return &spyCommand{err: want}
	}})

	assert.Same(t, want, h.runner.Run(context.Background(), "fail", nil))
}

func TestCreateCommand(t *testing.T) {
	t.Run("help variants", func(t *testing.T) {
		for _, cmd := range []string{"", "--help", "-h", "help", "h"} {
			h := newHarness(t, "1.0.0", nil)
			h.runner.createCommand(cmd, nil)
			assert.Len(t, h.built, 1, "cmd %q", cmd)
			assert.Empty(t, h.out.String(), "cmd %q", cmd)
		}
	})

	t.Run("alias and subcommand", func(t *testing.T) {
		h := newHarness(t, "1.0.0", nil)
		h.runner.createCommand("g:component", []string{"nav-bar"})

		assert.Len(t, h.built, 1)
		assert.Equal(t, "generate", h.options.TaskName)
		assert.Equal(t, "component", h.options.Subcommand)
		assert.Equal(t, []string{"nav-bar"}, h.options.Args)
	})

	t.Run("project task", func(t *testing.T) {
		h := newHarness(t, "1.0.0", local)
		h.writeProject(t, `{"name": "app"}`, "aurelia_project/tasks/build.sh")
		p, err := h.runner.establishProject()
		require.NoError(t, err)
		h.runner.registerProject(p)

		cmd := h.runner.createCommand("build", []string{"--env", "prod"})
		run, ok := cmd.(*commands.RunCommand)
		require.True(t, ok, "got %T", cmd)
		assert.Equal(t, "build", run.Task())
		assert.Empty(t, h.out.String())
	})

	t.Run("invalid command", func(t *testing.T) {
		h := newHarness(t, "1.0.0", nil)
		cmd := h.runner.createCommand("frobnicate", nil)

		assert.Same(t, h.last(t), cmd)
		assert.Equal(t, "Invalid Command: frobnicate\n", h.out.String())
	})

	t.Run("task without project", func(t *testing.T) {
		h := newHarness(t, "1.0.0", nil)
		h.writeProject(t, `{"name": "app"}`, "aurelia_project/tasks/build.sh")

		h.runner.createCommand("build", nil)
		assert.Equal(t, "Invalid Command: build\n", h.out.String())
	})
}
