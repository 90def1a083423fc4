package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestScan(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "packages/site/composer.json"),
		`{"name": "acme/site", "extra": {"typo3/cms": {"extension-key": "site"}}}`)
	writeFile(t, filepath.Join(root, "packages/blog/composer.json"),
		`{"name": "acme/blog", "extra": {"typo3/cms": {"extension-key": "blog"}}}`)
	writeFile(t, filepath.Join(root, "packages/library/composer.json"),
		`{"name": "acme/library"}`)
	writeFile(t, filepath.Join(root, "packages/README.md"), "not a package")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "packages/empty"), 0o755))
	writeFile(t, filepath.Join(root, "typo3conf/ext/legacy/composer.json"),
		`{"extra": {"typo3/cms": {"extension-key": "legacy"}}}`)

	r, err := Scan(root, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"blog", "legacy", "site"}, r.Keys())

	site, ok := r.Lookup("site")
	require.True(t, ok)
	assert.Equal(t, Extension{Key: "site", Package: "acme/site", Dir: "packages/site"}, site)

	legacy, ok := r.Lookup("legacy")
	require.True(t, ok)
	assert.Equal(t, "typo3conf/ext/legacy", legacy.Dir)

	_, ok = r.Lookup("library")
	assert.False(t, ok)
}

func TestScan_InvalidManifest(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "packages/broken/composer.json"), `{"name":`)

	_, err := Scan(root, []string{"packages/*"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "composer.json")
}

func TestScan_FirstKeyWins(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "packages/site/composer.json"),
		`{"extra": {"typo3/cms": {"extension-key": "site"}}}`)
	writeFile(t, filepath.Join(root, "vendor/site/composer.json"),
		`{"extra": {"typo3/cms": {"extension-key": "site"}}}`)

	r, err := Scan(root, []string{"packages/*", "vendor/*"})
	require.NoError(t, err)

	site, _ := r.Lookup("site")
	assert.Equal(t, "packages/site", site.Dir)
	assert.Len(t, r.Extensions(), 1)
}

func TestResolve(t *testing.T) {
	r := New(
		Extension{Key: "site", Dir: "packages/site"},
		Extension{Key: "root", Dir: "."},
	)

	tests := []struct {
		name    string
		ref     string
		want    string
		wantErr error
	}{
		{name: "extension file", ref: "EXT:site/Configuration/TCA/Overrides/tt_content.php", want: "packages/site/Configuration/TCA/Overrides/tt_content.php"},
		{name: "extension dir", ref: "EXT:site", want: "packages/site"},
		{name: "root extension", ref: "EXT:root/composer.json", want: "composer.json"},
		{name: "plain path", ref: "public/fileadmin/../index.php", want: "public/index.php"},
		{name: "unknown", ref: "EXT:news/ext_emconf.php", wantErr: ErrUnknownExtension},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.ref)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := r.Resolve("EXT:site/../blog/x.php")
	assert.Error(t, err)
}
