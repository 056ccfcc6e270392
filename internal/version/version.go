// Package version compares CLI versions and checks them against the
// constraint a project pins in its model (cli.version).
package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Dev is the version reported by builds without ldflags.
const Dev = "dev"

// Satisfies reports whether version meets constraint. An empty constraint
// and development builds always satisfy.
func Satisfies(version, constraint string) (bool, error) {
	if strings.TrimSpace(constraint) == "" || version == Dev {
		return true, nil
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}
	v, err := parse(version)
	if err != nil {
		return false, fmt.Errorf("parsing version %q: %w", version, err)
	}
	return c.Check(v), nil
}

// parse strips a leading "v" and parses the version string.
func parse(version string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(version, "v"))
}
