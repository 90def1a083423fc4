// Package registry discovers the TYPO3 extensions of a project from their
// composer manifests and resolves EXT: references to paths.
package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// ExtPrefix starts extension references such as EXT:site/ext_emconf.php.
const ExtPrefix = "EXT:"

// ManifestFile is the composer manifest of a package.
const ManifestFile = "composer.json"

// DefaultPatterns are the package directories of a composer based project.
var DefaultPatterns = []string{"packages/*", "typo3conf/ext/*"}

// ErrUnknownExtension is returned when a reference names an extension that
// is not in the registry.
var ErrUnknownExtension = errors.New("unknown extension")

// Extension is an installed extension.
type Extension struct {
	// Key is the extension key.
	Key string

	// Package is the composer package name, if any.
	Package string

	// Dir is the slash separated extension directory, relative to the
	// project root.
	Dir string
}

// Registry is a set of extensions indexed by key.
type Registry struct {
	byKey map[string]Extension
	keys  []string
}

// New returns a registry of exts. The first extension with a key wins.
func New(exts ...Extension) *Registry {
	r := &Registry{byKey: make(map[string]Extension, len(exts))}
	for _, ext := range exts {
		r.add(ext)
	}
	return r
}

func (r *Registry) add(ext Extension) bool {
	if ext.Key == "" {
		return false
	}
	if _, ok := r.byKey[ext.Key]; ok {
		return false
	}
	r.byKey[ext.Key] = ext
	r.keys = append(r.keys, ext.Key)
	sort.Strings(r.keys)
	return true
}

type manifest struct {
	Name  string `json:"name"`
	Extra struct {
		TYPO3 struct {
			ExtensionKey string `json:"extension-key"`
		} `json:"typo3/cms"`
	} `json:"extra"`
}

// Scan reads the composer manifest of every directory below root matching
// one of patterns. Packages without an extension key are ignored.
func Scan(root string, patterns []string) (*Registry, error) {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}
	r := New()
	for _, pattern := range patterns {
		dirs, err := filepath.Glob(filepath.Join(root, filepath.FromSlash(pattern)))
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		sort.Strings(dirs)
		for _, dir := range dirs {
			ext, ok, err := readExtension(root, dir)
			if err != nil {
				return nil, err
			}
			if ok {
				r.add(ext)
			}
		}
	}
	return r, nil
}

func readExtension(root, dir string) (Extension, bool, error) {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return Extension{}, false, nil
	}
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if errors.Is(err, fs.ErrNotExist) {
		return Extension{}, false, nil
	}
	if err != nil {
		return Extension{}, false, fmt.Errorf("read manifest: %w", err)
	}

	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Extension{}, false, fmt.Errorf("parse %s: %w", filepath.Join(dir, ManifestFile), err)
	}
	if m.Extra.TYPO3.ExtensionKey == "" {
		return Extension{}, false, nil
	}

	rel, err := filepath.Rel(root, dir)
	if err != nil {
		return Extension{}, false, fmt.Errorf("relative path of %s: %w", dir, err)
	}
	return Extension{
		Key:     m.Extra.TYPO3.ExtensionKey,
		Package: m.Name,
		Dir:     filepath.ToSlash(rel),
	}, true, nil
}

// Keys returns the extension keys in lexical order.
func (r *Registry) Keys() []string {
	return append([]string(nil), r.keys...)
}

// Extensions returns the extensions ordered by key.
func (r *Registry) Extensions() []Extension {
	exts := make([]Extension, 0, len(r.keys))
	for _, k := range r.keys {
		exts = append(exts, r.byKey[k])
	}
	return exts
}

// Lookup returns the extension with key.
func (r *Registry) Lookup(key string) (Extension, bool) {
	ext, ok := r.byKey[key]
	return ext, ok
}

// Resolve maps EXT:<key>/<path> to the path below the project root.
// Other references are returned cleaned.
func (r *Registry) Resolve(ref string) (string, error) {
	rest, ok := strings.CutPrefix(ref, ExtPrefix)
	if !ok {
		return path.Clean(ref), nil
	}
	key, rel, _ := strings.Cut(rest, "/")
	ext, ok := r.byKey[key]
	if !ok {
		return "", fmt.Errorf("%w: %q in %s", ErrUnknownExtension, key, ref)
	}
	resolved := path.Join(ext.Dir, rel)
	if resolved != ext.Dir && !strings.HasPrefix(resolved, ext.Dir+"/") && ext.Dir != "." {
		return "", fmt.Errorf("%s escapes extension %s", ref, key)
	}
	return resolved, nil
}
