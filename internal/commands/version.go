package commands

import (
	"context"
	"encoding/json"
	"fmt"
)

// VersionCommand prints build information.
type VersionCommand struct {
	deps Deps
}

// NewVersionCommand builds the version command.
func NewVersionCommand(d Deps) Command {
	return &VersionCommand{deps: d}
}

// Execute prints the version, or all build info as JSON with --json.
func (c *VersionCommand) Execute(_ context.Context, _ []string) error {
	b := c.deps.Build
	if c.deps.Options.HasFlag("json", "") {
		info := map[string]string{
			"version": b.Version,
			"commit":  b.Commit,
			"date":    b.Date,
		}
		out, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling version info: %w", err)
		}
		c.deps.UI.Log(string(out))
		return nil
	}

	c.deps.UI.Log(b.Version)
	return nil
}
