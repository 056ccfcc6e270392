package project

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aurelia-labs/au/internal/runtime"
	"go.yaml.in/yaml/v3"
)

// Metadata describes a task or generator for help output.
type Metadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Flags       []Flag `yaml:"flags"`

	// Path is the resolved script file.
	Path string `yaml:"-"`
}

// Flag documents one flag a script understands.
type Flag struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Type        string `yaml:"type"`
}

// sidecar extensions, tried in order. JSON sidecars parse as YAML.
var metadataExtensions = []string{".json", ".yaml", ".yml"}

// ResolveTask returns the script implementing the named task, or "" when the
// project has no such task.
func (p *Project) ResolveTask(name string) (string, error) {
	return p.resolveScript(p.TaskDirectory(), name)
}

// ResolveGenerator returns the script implementing the named generator, or ""
// when the project has no such generator.
func (p *Project) ResolveGenerator(name string) (string, error) {
	return p.resolveScript(p.GeneratorDirectory(), name)
}

// Tasks lists the project's tasks, sorted by name.
func (p *Project) Tasks() ([]Metadata, error) {
	return p.listScripts(p.TaskDirectory())
}

// Generators lists the project's generators, sorted by name.
func (p *Project) Generators() ([]Metadata, error) {
	return p.listScripts(p.GeneratorDirectory())
}

func (p *Project) resolveScript(dir, name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", nil
	}
	for _, ext := range runtime.Extensions() {
		path := filepath.Join(dir, name+ext)
		info, err := p.fs.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", nil
}

func (p *Project) listScripts(dir string) ([]Metadata, error) {
	if !p.fs.IsDir(dir) {
		return nil, nil
	}
	entries, err := p.fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	seen := make(map[string]bool)
	var names []string
	for _, entry := range entries {
		if !runtime.IsScript(entry) {
			continue
		}
		name := strings.TrimSuffix(entry, filepath.Ext(entry))
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)

	result := make([]Metadata, 0, len(names))
	for _, name := range names {
		path, err := p.resolveScript(dir, name)
		if err != nil {
			return nil, err
		}
		meta, err := p.readMetadata(dir, name)
		if err != nil {
			return nil, err
		}
		meta.Name = name
		meta.Path = path
		result = append(result, meta)
	}
	return result, nil
}

func (p *Project) readMetadata(dir, name string) (Metadata, error) {
	var meta Metadata
	for _, ext := range metadataExtensions {
		path := filepath.Join(dir, name+ext)
		if !p.fs.Exists(path) {
			continue
		}
		data, err := p.fs.ReadBytes(path)
		if err != nil {
			return meta, fmt.Errorf("reading %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &meta); err != nil {
			return meta, fmt.Errorf("parsing %s: %w", path, err)
		}
		return meta, nil
	}
	return meta, nil
}
