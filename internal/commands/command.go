package commands

import (
	"context"
	"errors"
	"sort"

	"github.com/aurelia-labs/au/internal/cliopts"
	"github.com/aurelia-labs/au/internal/filesystem"
	"github.com/aurelia-labs/au/internal/project"
	"github.com/aurelia-labs/au/internal/ui"
	"go.uber.org/zap"
)

// ErrNoProject is returned by commands that need a project when none was
// established.
var ErrNoProject = errors.New("no project found in this directory or its parents")

// Command is a unit of CLI behavior.
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// Factory builds a command from its dependencies.
type Factory func(Deps) Command

// BuildInfo is injected via ldflags at build time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Deps carries the collaborators a command is constructed with.
type Deps struct {
	UI       *ui.UI
	Options  *cliopts.Options
	FS       *filesystem.FS
	Project  *project.Project
	Logger   *zap.Logger
	Build    BuildInfo
	Registry Registry
}

func (d Deps) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

// Entry registers a built-in command.
type Entry struct {
	Name        string
	Usage       string
	Description string
	New         Factory
}

// Registry maps command names to entries.
type Registry map[string]Entry

var aliases = map[string]string{
	"g": "generate",
	"h": "help",
}

// ResolveAlias maps a short alias onto its command name. Unknown names are
// returned unchanged.
func ResolveAlias(name string) string {
	if target, ok := aliases[name]; ok {
		return target
	}
	return name
}

// Lookup finds the entry for name, following aliases.
func (r Registry) Lookup(name string) (Entry, bool) {
	e, ok := r[ResolveAlias(name)]
	return e, ok
}

// Register adds or replaces an entry.
func (r Registry) Register(e Entry) {
	r[e.Name] = e
}

// Entries returns the registered entries sorted by name.
func (r Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r))
	for _, e := range r {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Builtins returns a fresh registry of the built-in commands.
func Builtins() Registry {
	r := Registry{}
	r.Register(Entry{
		Name:        "help",
		Usage:       "help",
		Description: "Show available commands, project tasks and generators",
		New:         NewHelpCommand,
	})
	r.Register(Entry{
		Name:        "version",
		Usage:       "version [--json]",
		Description: "Print version information",
		New:         NewVersionCommand,
	})
	r.Register(Entry{
		Name:        "generate",
		Usage:       "generate <generator> [args]",
		Description: "Run one of the project's generators",
		New:         NewGenerateCommand,
	})
	r.Register(Entry{
		Name:        "config",
		Usage:       "config [get|set|clear] <key> [value] [--json]",
		Description: "Read and edit the project model or user settings",
		New:         NewConfigCommand,
	})
	return r
}
