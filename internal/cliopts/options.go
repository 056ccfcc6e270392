// Package cliopts holds the parsed invocation: the command arguments, the
// directory the CLI was started from and whether it runs from a project-local
// or a global install. Flags are read straight from the raw arguments because
// commands and project tasks define their own flag sets.
package cliopts

import (
	"os"
	"strings"

	"github.com/aurelia-labs/au/internal/config"
)

const defaultEnvironment = "dev"

// Options describes one CLI invocation.
type Options struct {
	Args       []string // arguments after the command name
	TaskName   string   // command module, e.g. "build" for "au build"
	Subcommand string   // part after ':' in "generate:component", or "default"
	BaseDir    string   // directory the CLI was started from

	RunningLocally  bool
	RunningGlobally bool
}

// New returns Options for args started from baseDir.
func New(args []string, baseDir string) *Options {
	return &Options{Args: args, BaseDir: baseDir}
}

// HasFlag reports whether --name, --name=value or -short appears in Args.
// An empty short disables the short form.
func (o *Options) HasFlag(name, short string) bool {
	_, ok := o.lookup(name, short)
	return ok
}

// FlagValue returns the value of --name=value, or the argument following
// --name or -short. It returns "" when the flag is absent or has no value.
func (o *Options) FlagValue(name, short string) string {
	i, ok := o.lookup(name, short)
	if !ok {
		return ""
	}
	arg := o.Args[i]
	if _, v, found := strings.Cut(arg, "="); found && strings.HasPrefix(arg, "--") {
		return v
	}
	if i+1 < len(o.Args) && !isFlag(o.Args[i+1]) {
		return o.Args[i+1]
	}
	return ""
}

func (o *Options) lookup(name, short string) (int, bool) {
	long := "--" + name
	for i, arg := range o.Args {
		if arg == "--" {
			break
		}
		if arg == long || strings.HasPrefix(arg, long+"=") {
			return i, true
		}
		if short != "" && arg == "-"+short {
			return i, true
		}
	}
	return -1, false
}

// Positional returns Args with flags and their values removed. valueFlags
// names the long flags that consume the following argument.
func (o *Options) Positional(valueFlags ...string) []string {
	takesValue := make(map[string]bool, len(valueFlags))
	for _, f := range valueFlags {
		takesValue["--"+f] = true
	}

	var out []string
	for i := 0; i < len(o.Args); i++ {
		arg := o.Args[i]
		if arg == "--" {
			out = append(out, o.Args[i+1:]...)
			break
		}
		if isFlag(arg) {
			if takesValue[arg] && i+1 < len(o.Args) {
				i++
			}
			continue
		}
		out = append(out, arg)
	}
	return out
}

// Environment returns the build environment: --env, then the env setting,
// then "dev".
func (o *Options) Environment() string {
	if v := o.FlagValue("env", ""); v != "" {
		return v
	}
	if v := config.Get(config.KeyEnv); v != "" {
		return v
	}
	return defaultEnvironment
}

func isFlag(arg string) bool {
	return len(arg) > 1 && arg[0] == '-'
}

// WorkingDir returns the current directory, or "." if it cannot be read.
func WorkingDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}
