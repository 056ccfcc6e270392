package runtime

import (
	"context"
	"fmt"
	"io"
	"os/exec"
)

// NodeRuntime executes JavaScript scripts with Node.js.
type NodeRuntime struct {
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes `node <script> <args...>`.
func (n *NodeRuntime) Run(ctx context.Context, script *Script) (*Output, error) {
	// Verify Node.js is available.
	nodeBin, err := exec.LookPath("node")
	if err != nil {
		return nil, fmt.Errorf("node runtime requires Node.js: %w", err)
	}
	argv := append([]string{script.Path}, script.Args...)
	return execute(ctx, nodeBin, argv, script, n.Stdout, n.Stderr)
}
