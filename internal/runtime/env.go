package runtime

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/aurelia-labs/au/internal/branding"
	"github.com/joho/godotenv"
)

// EnvConfig holds the values exported to every project script.
type EnvConfig struct {
	ProjectRoot string
	Environment string
	ScriptPath  string
	EnvFile     string // optional dotenv file; missing files are ignored
}

// BuildEnv constructs the environment for a script execution. It inherits
// the current process environment, then layers the dotenv file and finally
// the CLI's own variables on top.
func BuildEnv(cfg EnvConfig) ([]string, error) {
	env := os.Environ()

	if cfg.EnvFile != "" {
		if _, err := os.Stat(cfg.EnvFile); err == nil {
			vars, err := godotenv.Read(cfg.EnvFile)
			if err != nil {
				return nil, fmt.Errorf("reading environment file %s: %w", cfg.EnvFile, err)
			}
			keys := make([]string, 0, len(vars))
			for k := range vars {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				env = setEnv(env, k, vars[k])
			}
		}
	}

	env = setEnv(env, branding.EnvVar("PROJECT_ROOT"), cfg.ProjectRoot)
	env = setEnv(env, branding.EnvVar("ENV"), cfg.Environment)
	env = setEnv(env, branding.EnvVar("SCRIPT"), cfg.ScriptPath)
	return env, nil
}

// setEnv sets or replaces an environment variable in the env slice.
func setEnv(env []string, key, value string) []string {
	prefix := key + "="
	for i, e := range env {
		if strings.HasPrefix(e, prefix) {
			env[i] = prefix + value
			return env
		}
	}
	return append(env, prefix+value)
}
