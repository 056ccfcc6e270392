package runtime

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Runtime executes a script.
type Runtime interface {
	Run(ctx context.Context, script *Script) (*Output, error)
}

// Script describes one invocation of a project script.
type Script struct {
	Path string   // absolute path to the script file
	Dir  string   // working directory; defaults to the script's directory
	Args []string // arguments appended after the script path
	Env  []string // full environment, see BuildEnv; nil inherits os.Environ()
}

// Output captures the result of a script execution.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Supported runtime identifiers.
const (
	RuntimeShell = "sh"
	RuntimeNode  = "node"
	RuntimeGo    = "go"
)

// extensions maps a script extension to its runtime, in resolution order.
var extensions = []struct {
	ext     string
	runtime string
}{
	{".sh", RuntimeShell},
	{".js", RuntimeNode},
	{".mjs", RuntimeNode},
	{".cjs", RuntimeNode},
	{".go", RuntimeGo},
}

// Extensions returns the script extensions the CLI can execute, in the order
// they are tried when resolving a task or generator by name.
func Extensions() []string {
	out := make([]string, len(extensions))
	for i, e := range extensions {
		out[i] = e.ext
	}
	return out
}

// IsScript reports whether name carries a runnable extension.
func IsScript(name string) bool {
	return runtimeName(filepath.Ext(name)) != ""
}

func runtimeName(ext string) string {
	for _, e := range extensions {
		if e.ext == ext {
			return e.runtime
		}
	}
	return ""
}

// ForScript returns the Runtime for the script at path.
func ForScript(path string, stdout, stderr io.Writer) Runtime {
	return Dispatch(runtimeName(filepath.Ext(path)), stdout, stderr)
}

// Dispatch returns the Runtime implementation for the given identifier.
// Returns an error-producing runtime for unknown values.
func Dispatch(name string, stdout, stderr io.Writer) Runtime {
	switch name {
	case RuntimeShell:
		return &ShellRuntime{Stdout: stdout, Stderr: stderr}
	case RuntimeNode:
		return &NodeRuntime{Stdout: stdout, Stderr: stderr}
	case RuntimeGo:
		return &GoRuntime{Stdout: stdout, Stderr: stderr}
	default:
		return &unknownRuntime{name: name}
	}
}

// unknownRuntime is returned when the runtime identifier is not recognized.
type unknownRuntime struct {
	name string
}

func (u *unknownRuntime) Run(_ context.Context, script *Script) (*Output, error) {
	path := ""
	if script != nil {
		path = script.Path
	}
	return nil, fmt.Errorf("no runtime for %q (runtime %q): supported extensions are %s",
		path, u.name, strings.Join(Extensions(), ", "))
}

// execute runs bin with argv, streaming output to the given writers while
// also capturing it. A non-zero exit is reported through Output.ExitCode.
func execute(ctx context.Context, bin string, argv []string, script *Script, stdout, stderr io.Writer) (*Output, error) {
	if _, err := os.Stat(script.Path); err != nil {
		return nil, fmt.Errorf("script not found at %s: %w", script.Path, err)
	}

	cmd := exec.CommandContext(ctx, bin, argv...)
	cmd.Dir = script.Dir
	if cmd.Dir == "" {
		cmd.Dir = filepath.Dir(script.Path)
	}
	cmd.Env = script.Env

	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

	err := cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("executing %s: %w", filepath.Base(script.Path), err)
	}

	return output, nil
}
