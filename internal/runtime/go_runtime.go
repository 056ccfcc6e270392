package runtime

import (
	"context"
	"fmt"
	"io"
	"os/exec"
)

// GoRuntime executes single-file Go programs through `go run`.
type GoRuntime struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes `go run <script> <args...>`.
func (g *GoRuntime) Run(ctx context.Context, script *Script) (*Output, error) {
	goBin, err := exec.LookPath("go")
	if err != nil {
		return nil, fmt.Errorf("go runtime requires the Go toolchain: %w", err)
	}
	argv := append([]string{"run", script.Path}, script.Args...)
	return execute(ctx, goBin, argv, script, g.Stdout, g.Stderr)
}
