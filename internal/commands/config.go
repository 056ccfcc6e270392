package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aurelia-labs/au/internal/config"
)

// ConfigCommand reads and edits the project model, or the user settings
// under "config user".
type ConfigCommand struct {
	deps Deps
}

// NewConfigCommand builds the config command.
func NewConfigCommand(d Deps) Command {
	return &ConfigCommand{deps: d}
}

// Execute dispatches on the first positional argument.
func (c *ConfigCommand) Execute(_ context.Context, _ []string) error {
	pos := c.deps.Options.Positional("env")
	if len(pos) > 0 && pos[0] == "user" {
		return c.user(pos[1:])
	}

	p := c.deps.Project
	if p == nil {
		return ErrNoProject
	}

	if len(pos) == 0 {
		return c.print(p.Model)
	}

	switch action := pos[0]; action {
	case "get":
		if len(pos) < 2 {
			return fmt.Errorf("usage: config get <key>")
		}
		v, ok := p.Get(pos[1])
		if !ok {
			return fmt.Errorf("key %q is not set", pos[1])
		}
		return c.print(v)

	case "set":
		if len(pos) < 3 {
			return fmt.Errorf("usage: config set <key> <value> [--json]")
		}
		value, err := c.parseValue(pos[2])
		if err != nil {
			return err
		}
		if err := p.Set(pos[1], value); err != nil {
			return err
		}
		if err := p.Save(); err != nil {
			return err
		}
		c.deps.UI.Successf("Set %s", pos[1])
		return nil

	case "clear":
		if len(pos) < 2 {
			return fmt.Errorf("usage: config clear <key>")
		}
		if !p.Clear(pos[1]) {
			return fmt.Errorf("key %q is not set", pos[1])
		}
		if err := p.Save(); err != nil {
			return err
		}
		c.deps.UI.Successf("Cleared %s", pos[1])
		return nil

	default:
		return fmt.Errorf("unknown config action %q (want get, set, clear or user)", action)
	}
}

func (c *ConfigCommand) user(pos []string) error {
	if len(pos) < 2 {
		return fmt.Errorf("usage: config user get|set <key> [value]")
	}
	switch pos[0] {
	case "get":
		c.deps.UI.Log(config.Get(pos[1]))
		return nil
	case "set":
		if len(pos) < 3 {
			return fmt.Errorf("usage: config user set <key> <value>")
		}
		if err := config.Set(pos[1], pos[2]); err != nil {
			return err
		}
		c.deps.UI.Successf("Set %s = %s in %s", pos[1], pos[2], config.FilePath())
		return nil
	default:
		return fmt.Errorf("unknown config user action %q (want get or set)", pos[0])
	}
}

// parseValue decodes raw as JSON when --json is given.
func (c *ConfigCommand) parseValue(raw string) (interface{}, error) {
	if !c.deps.Options.HasFlag("json", "") {
		return raw, nil
	}
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("parsing %q as JSON: %w", raw, err)
	}
	return v, nil
}

func (c *ConfigCommand) print(v interface{}) error {
	if s, ok := v.(string); ok {
		c.deps.UI.Log(s)
		return nil
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling value: %w", err)
	}
	c.deps.UI.Log(string(data))
	return nil
}
