package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/aurelia-labs/au/internal/runtime"
	"go.uber.org/zap"
)

// runScript executes a project script with the project environment and turns
// a non-zero exit into an error.
func runScript(ctx context.Context, d Deps, path string, args []string) error {
	envName := d.Options.Environment()
	env, err := runtime.BuildEnv(runtime.EnvConfig{
		ProjectRoot: d.Project.Directory,
		Environment: envName,
		ScriptPath:  path,
		EnvFile:     d.Project.EnvironmentFile(envName),
	})
	if err != nil {
		return fmt.Errorf("building script environment: %w", err)
	}

	d.logger().Debug("executing script",
		zap.String("script", path),
		zap.Strings("args", args),
		zap.String("env", envName))

	rt := runtime.ForScript(path, d.UI.Writer(), d.UI.ErrWriter())
	out, err := rt.Run(ctx, &runtime.Script{
		Path: path,
		Dir:  d.Project.Directory,
		Args: args,
		Env:  env,
	})
	if err != nil {
		return err
	}
	if out.ExitCode != 0 {
		return fmt.Errorf("%s exited with code %d", filepath.Base(path), out.ExitCode)
	}
	return nil
}
