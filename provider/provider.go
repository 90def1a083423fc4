// Package provider reads source content type definitions from a directory
// tree: one directory per content type holding a config.yaml definition and
// an optional template.html frontend template.
package provider

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/webcoast/ctmigrate"
)

const (
	// DefinitionFile is the content type definition inside its directory.
	DefinitionFile = "config.yaml"

	// TemplateFile is the frontend template inside its directory.
	TemplateFile = "template.html"
)

// ErrNotFound is returned for content types without a definition.
var ErrNotFound = errors.New("content type not found")

// Provider hands out content type definitions.
type Provider struct {
	fsys fs.FS
}

// New returns a provider reading from fsys.
func New(fsys fs.FS) *Provider {
	return &Provider{fsys: fsys}
}

// Open returns a provider reading from the directory dir.
func Open(dir string) *Provider {
	return New(os.DirFS(dir))
}

// Names returns the names of all content types in lexical order.
func (p *Provider) Names() ([]string, error) {
	entries, err := fs.ReadDir(p.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("list content types: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if _, err := fs.Stat(p.fsys, path.Join(e.Name(), DefinitionFile)); err == nil {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// ContentType returns the validated definition of the content type name.
func (p *Provider) ContentType(name string) (ctmigrate.ContentType, error) {
	file := path.Join(name, DefinitionFile)
	if !fs.ValidPath(file) {
		return ctmigrate.ContentType{}, fmt.Errorf("invalid content type name %q", name)
	}
	data, err := fs.ReadFile(p.fsys, file)
	if errors.Is(err, fs.ErrNotExist) {
		return ctmigrate.ContentType{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return ctmigrate.ContentType{}, fmt.Errorf("read %s: %w", file, err)
	}

	var ct ctmigrate.ContentType
	if err := yaml.Unmarshal(data, &ct); err != nil {
		return ctmigrate.ContentType{}, fmt.Errorf("decode %s: %w", file, err)
	}
	if err := ct.Validate(); err != nil {
		return ctmigrate.ContentType{}, fmt.Errorf("%s: %w", file, err)
	}
	return ct, nil
}

// FrontendTemplate returns the template of the content type name, or an
// empty string if it has none.
func (p *Provider) FrontendTemplate(name string) (string, error) {
	file := path.Join(name, TemplateFile)
	if !fs.ValidPath(file) {
		return "", fmt.Errorf("invalid content type name %q", name)
	}
	data, err := fs.ReadFile(p.fsys, file)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", file, err)
	}
	return string(data), nil
}
