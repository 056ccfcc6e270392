package cliopts

import (
	"os"
	"path/filepath"

	"github.com/aurelia-labs/au/internal/branding"
	"github.com/aurelia-labs/au/internal/filesystem"
	"github.com/aurelia-labs/au/internal/project"
)

// Mode represents where the running binary was installed.
type Mode int

const (
	// ModeGlobal is a binary installed outside any project.
	ModeGlobal Mode = iota
	// ModeLocal is a binary pinned inside a project tree (e.g. <root>/bin/au).
	ModeLocal
)

// DetectMode returns the install mode of the executable at exe.
// AU_MODE=local|global overrides detection.
func DetectMode(fsys *filesystem.FS, exe string) Mode {
	switch os.Getenv(branding.EnvVar("MODE")) {
	case "local":
		return ModeLocal
	case "global":
		return ModeGlobal
	}
	if exe == "" {
		return ModeGlobal
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	if _, ok := project.Find(fsys, filepath.Dir(exe)); ok {
		return ModeLocal
	}
	return ModeGlobal
}

// Apply sets the RunningLocally/RunningGlobally pair from m.
func (m Mode) Apply(o *Options) {
	o.RunningLocally = m == ModeLocal
	o.RunningGlobally = m == ModeGlobal
}

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeLocal:
		return "local"
	case ModeGlobal:
		return "global"
	default:
		return "unknown"
	}
}
