package project

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aurelia-labs/au/internal/branding"
	"github.com/aurelia-labs/au/internal/filesystem"
)

const (
	tasksDir        = "tasks"
	generatorsDir   = "generators"
	environmentsDir = "environments"
	defaultSource   = "src"
)

// Project is the handle for a discovered project root.
type Project struct {
	Directory string
	Model     map[string]interface{}

	fs *filesystem.FS
}

// ModelPath returns the full path to aurelia_project/aurelia.json for a
// project root.
func ModelPath(dir string) string {
	return filepath.Join(dir, branding.ProjectDir(), branding.ProjectFile())
}

// Find walks up from start looking for the project marker directory and
// returns the first directory that contains it.
func Find(fsys *filesystem.FS, start string) (string, bool) {
	dir := filepath.Clean(start)
	for {
		if fsys.IsDir(filepath.Join(dir, branding.ProjectDir())) {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Establish loads and validates the project rooted at dir.
func Establish(fsys *filesystem.FS, dir string) (*Project, error) {
	data, err := fsys.ReadBytes(ModelPath(dir))
	if err != nil {
		return nil, fmt.Errorf("reading project model: %w", err)
	}

	if err := validateBytes(data); err != nil {
		return nil, err
	}

	model, err := decodeModel(data)
	if err != nil {
		return nil, fmt.Errorf("parsing project model: %w", err)
	}

	return &Project{
		Directory: dir,
		Model:     model,
		fs:        fsys,
	}, nil
}

func decodeModel(data []byte) (map[string]interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var model map[string]interface{}
	if err := dec.Decode(&model); err != nil {
		return nil, err
	}
	if model == nil {
		model = map[string]interface{}{}
	}
	return model, nil
}

// Name returns the project name from the model.
func (p *Project) Name() string {
	name, _ := p.Model["name"].(string)
	return name
}

// MetaDirectory returns the aurelia_project directory.
func (p *Project) MetaDirectory() string {
	return filepath.Join(p.Directory, branding.ProjectDir())
}

// TaskDirectory returns the directory holding task scripts.
func (p *Project) TaskDirectory() string {
	return filepath.Join(p.MetaDirectory(), tasksDir)
}

// GeneratorDirectory returns the directory holding generator scripts.
func (p *Project) GeneratorDirectory() string {
	return filepath.Join(p.MetaDirectory(), generatorsDir)
}

// EnvironmentFile returns the dotenv file for the named build environment.
func (p *Project) EnvironmentFile(env string) string {
	return filepath.Join(p.MetaDirectory(), environmentsDir, env+".env")
}

// SourceDirectory returns the project's source root (paths.root, or src).
func (p *Project) SourceDirectory() string {
	root := defaultSource
	if v, ok := p.Get("paths.root"); ok {
		if s, ok := v.(string); ok && s != "" {
			root = s
		}
	}
	return filepath.Join(p.Directory, root)
}

// CLIConstraint returns the semver constraint pinned at cli.version, if any.
func (p *Project) CLIConstraint() string {
	v, ok := p.Get("cli.version")
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Save validates the model and writes it back to aurelia.json.
func (p *Project) Save() error {
	if err := p.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(p.Model, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling project model: %w", err)
	}

	if err := p.fs.WriteFile(ModelPath(p.Directory), string(data)+"\n"); err != nil {
		return fmt.Errorf("writing project model: %w", err)
	}
	return nil
}

// Get returns the model value at a dotted key such as "paths.root".
func (p *Project) Get(key string) (interface{}, bool) {
	var cur interface{} = p.Model
	for _, part := range splitKey(key) {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil, false
		}
		cur, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Set stores value at a dotted key, creating intermediate objects.
func (p *Project) Set(key string, value interface{}) error {
	parts := splitKey(key)
	if len(parts) == 0 {
		return fmt.Errorf("empty key")
	}

	m := p.Model
	for i, part := range parts[:len(parts)-1] {
		next, ok := m[part]
		if !ok {
			child := map[string]interface{}{}
			m[part] = child
			m = child
			continue
		}
		child, ok := next.(map[string]interface{})
		if !ok {
			return fmt.Errorf("cannot set %q: %q is not an object", key, strings.Join(parts[:i+1], "."))
		}
		m = child
	}
	m[parts[len(parts)-1]] = value
	return nil
}

// Clear removes the value at a dotted key. It reports whether anything was
// removed.
func (p *Project) Clear(key string) bool {
	parts := splitKey(key)
	if len(parts) == 0 {
		return false
	}
	parentKey := strings.Join(parts[:len(parts)-1], ".")

	var parent interface{} = p.Model
	if parentKey != "" {
		var ok bool
		if parent, ok = p.Get(parentKey); !ok {
			return false
		}
	}
	m, ok := parent.(map[string]interface{})
	if !ok {
		return false
	}
	last := parts[len(parts)-1]
	if _, ok := m[last]; !ok {
		return false
	}
	delete(m, last)
	return true
}

func splitKey(key string) []string {
	var parts []string
	for _, p := range strings.Split(key, ".") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
