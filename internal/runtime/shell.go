package runtime

import (
	"context"
	"fmt"
	"io"
	"os/exec"
)

// ShellRuntime executes POSIX shell scripts.
type ShellRuntime struct {
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes `sh <script> <args...>`.
func (s *ShellRuntime) Run(ctx context.Context, script *Script) (*Output, error) {
	bin, err := exec.LookPath("sh")
	if err != nil {
		return nil, fmt.Errorf("shell runtime requires sh: %w", err)
	}
	argv := append([]string{script.Path}, script.Args...)
	return execute(ctx, bin, argv, script, s.Stdout, s.Stderr)
}
