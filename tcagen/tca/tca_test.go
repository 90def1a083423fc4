package tca

import (
	"context"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/webcoast/ctmigrate/tcagen/ir"
	"github.com/webcoast/ctmigrate/tcagen/sink"
)

// golden returns the named file of a txtar archive in testdata, without its
// final newline.
func golden(t *testing.T, archive, name string) string {
	t.Helper()
	a, err := txtar.ParseFile("testdata/" + archive)
	if err != nil {
		t.Fatalf("ParseFile(%s) error = %v", archive, err)
	}
	for _, f := range a.Files {
		if f.Name == name {
			return strings.TrimSuffix(string(f.Data), "\n")
		}
	}
	t.Fatalf("%s has no file %s", archive, name)
	return ""
}

func read(t *testing.T, store *sink.MemorySink, path string) string {
	t.Helper()
	data := store.Get(path)
	if data == nil {
		t.Fatalf("%s was not written", path)
	}
	return string(data)
}

func TestWriteContainerContentType(t *testing.T) {
	ctx := context.Background()
	store := sink.NewMemorySink()
	w := NewWriter(store)

	grid := ir.List(ir.List(
		ir.MapOf("name", "Left", "colPos", 201),
		ir.MapOf("name", "Right", "colPos", 202),
	))
	ct := ContainerType{
		CType:       "my_teaser",
		Group:       "container",
		Title:       "Teaser",
		Description: "It's a teaser",
		Grid:        grid,
		Icon:        "content-container",
	}
	const path = "site/Configuration/TCA/ContentTypes/my_teaser.php"
	if err := w.WriteContainerContentType(ctx, path, ct); err != nil {
		t.Fatalf("WriteContainerContentType() error = %v", err)
	}

	got := strings.TrimSuffix(read(t, store, path), "\n")
	if want := golden(t, "container.txtar", "my_teaser.php"); got != want {
		t.Errorf("type definition mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteContainerContentType_Overwrites(t *testing.T) {
	ctx := context.Background()
	store := sink.NewMemorySink()
	const path = "site/Configuration/TCA/ContentTypes/box.php"
	if err := store.WriteFile(ctx, path, []byte("old content")); err != nil {
		t.Fatal(err)
	}

	w := NewWriter(store)
	if err := w.WriteContainerContentType(ctx, path, ContainerType{CType: "box", Group: "container"}); err != nil {
		t.Fatalf("WriteContainerContentType() error = %v", err)
	}

	got := read(t, store, path)
	if strings.Contains(got, "old content") {
		t.Error("previous content was kept")
	}
	if strings.Contains(got, "setIcon") {
		t.Error("setIcon emitted without an icon")
	}
	if !strings.HasSuffix(got, "    ->setGroup('container')\n);\n") {
		t.Errorf("unexpected ending:\n%s", got)
	}
}

func TestAddColumnDefinitions(t *testing.T) {
	ctx := context.Background()
	store := sink.NewMemorySink()
	w := NewWriter(store)

	columns := []Column{
		{
			Name:        "teaser_text",
			Label:       "Text",
			Description: "Shown below",
			Config:      ir.MapOf("type", "text", "rows", 5),
		},
		{Name: "header", Label: "Headline"},
	}
	overrides := ir.MapOf("header", ir.MapOf("config", ir.MapOf("max", 80)))

	const path = "site/Configuration/TCA/Overrides/tt_content.php"
	if err := w.AddColumnDefinitions(ctx, path, columns, overrides, "my_teaser"); err != nil {
		t.Fatalf("AddColumnDefinitions() error = %v", err)
	}

	got := read(t, store, path)
	if want := golden(t, "columns.txtar", "tt_content.php"); got != want {
		t.Errorf("column definitions mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestAddColumnDefinitions_AppendsToExistingFile(t *testing.T) {
	ctx := context.Background()
	store := sink.NewMemorySink()
	const path = "site/Configuration/TCA/ContentTypes/box.php"

	w := NewWriter(store)
	if err := w.WriteContainerContentType(ctx, path, ContainerType{CType: "box", Group: "container"}); err != nil {
		t.Fatal(err)
	}
	before := read(t, store, path)

	columns := []Column{{Name: "subheader", Label: "Subline"}}
	for range 2 {
		if err := w.AddColumnDefinitions(ctx, path, columns, nil, "box"); err != nil {
			t.Fatalf("AddColumnDefinitions() error = %v", err)
		}
	}
	got := read(t, store, path)

	if n := strings.Count(got, "use TYPO3\\CMS\\Core\\Utility\\ExtensionManagementUtility;"); n != 1 {
		t.Errorf("import count = %d, want 1", n)
	}
	if n := strings.Count(got, "ExtensionManagementUtility::addToAllTCAtypes("); n != 2 {
		t.Errorf("registration count = %d, want 2", n)
	}
	if !strings.Contains(got, "'subheader;Subline',") {
		t.Error("column without config should be listed with its label")
	}
	if strings.Contains(got, "columnsOverrides") {
		t.Error("columnsOverrides emitted without overrides")
	}
	if !strings.Contains(got, "configureContainer(") || len(got) <= len(before) {
		t.Error("existing content was not kept")
	}
}

func TestRenderColumnDefinitions_Position(t *testing.T) {
	tests := []struct {
		name    string
		columns []Column
		want    string
	}{
		{
			name:    "after header",
			columns: []Column{{Name: "bodytext", Config: ir.MapOf("type", "text")}},
			want:    "'after:header'",
		},
		{
			name:    "replace header",
			columns: []Column{{Name: "bodytext", Config: ir.MapOf("type", "text")}, {Name: "header", Label: "Title"}},
			want:    "'replace:header'",
		},
		{
			name: "no columns",
			want: "'after:header'",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderColumnDefinitions(DefaultTable, tt.columns, nil, "box")
			if !strings.Contains(got, tt.want) {
				t.Errorf("RenderColumnDefinitions() missing %s:\n%s", tt.want, got)
			}
		})
	}
}

func TestRenderColumnDefinitions_OnlyConfiguredColumnsRegistered(t *testing.T) {
	got := RenderColumnDefinitions(DefaultTable, []Column{
		{Name: "bodytext", Label: "Text"},
		{Name: "tx_link", Label: "Link", Config: ir.MapOf("type", "link")},
	}, nil, "box")

	if strings.Contains(got, "'bodytext' =>") {
		t.Errorf("existing column registered:\n%s", got)
	}
	if !strings.Contains(got, "'tx_link' => [") {
		t.Errorf("new column not registered:\n%s", got)
	}
	if !strings.Contains(got, "'bodytext;Text, tx_link'") {
		t.Errorf("unexpected field list:\n%s", got)
	}
}

func TestRequireOverride(t *testing.T) {
	ctx := context.Background()
	store := sink.NewMemorySink()
	w := NewWriter(store)

	const (
		overrides = "site/Configuration/TCA/Overrides/tt_content.php"
		typeFile  = "site/Configuration/TCA/ContentTypes/my_teaser.php"
	)
	if err := w.RequireOverride(ctx, overrides, typeFile); err != nil {
		t.Fatalf("RequireOverride() error = %v", err)
	}
	first := read(t, store, overrides)
	want := Header + "\nrequire_once __DIR__ . '/../ContentTypes/my_teaser.php';\n"
	if first != want {
		t.Errorf("first call:\ngot:\n%s\nwant:\n%s", first, want)
	}

	if err := w.RequireOverride(ctx, overrides, typeFile); err != nil {
		t.Fatalf("RequireOverride() second call error = %v", err)
	}
	if second := read(t, store, overrides); len(second) != len(first) {
		t.Errorf("second call changed the file:\n%s", second)
	}
}

func TestRequireOverride_RecognizesExistingRequire(t *testing.T) {
	ctx := context.Background()
	store := sink.NewMemorySink()
	const overrides = "site/Configuration/TCA/Overrides/tt_content.php"
	existing := Header + "\nrequire_once '/../ContentTypes/box.php';\n"
	if err := store.WriteFile(ctx, overrides, []byte(existing)); err != nil {
		t.Fatal(err)
	}

	w := NewWriter(store)
	if err := w.RequireOverride(ctx, overrides, "site/Configuration/TCA/ContentTypes/box.php"); err != nil {
		t.Fatalf("RequireOverride() error = %v", err)
	}
	if got := read(t, store, overrides); got != existing {
		t.Errorf("file changed:\n%s", got)
	}
}

func TestRelativePath(t *testing.T) {
	tests := []struct {
		from, target string
		want         string
	}{
		{"ext/Configuration/TCA/Overrides/tt_content.php", "ext/Configuration/TCA/ContentTypes/a.php", "../ContentTypes/a.php"},
		{"ext/Configuration/TCA/Overrides/tt_content.php", "ext/Configuration/TCA/Overrides/a.php", "a.php"},
		{"ext/Overrides/tt_content.php", "ext/Overrides/Types/a.php", "Types/a.php"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, err := RelativePath(tt.from, tt.target)
			if err != nil {
				t.Fatalf("RelativePath() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("RelativePath() = %q, want %q", got, tt.want)
			}
		})
	}
}
