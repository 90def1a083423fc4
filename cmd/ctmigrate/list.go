package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/bndr/gotabulate"

	"github.com/webcoast/ctmigrate/builder"
	"github.com/webcoast/ctmigrate/provider"
	"github.com/webcoast/ctmigrate/registry"
)

type ListCmd struct {
	Definitions string `help:"Directory of the content type definitions, relative to the root." default:"content-types"`
}

func (c *ListCmd) Run(g *Globals) error {
	out, err := contentTypeTable(provider.Open(filepath.Join(g.Root, c.Definitions)))
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

type ExtensionsCmd struct{}

func (c *ExtensionsCmd) Run(g *Globals) error {
	reg, err := registry.Scan(g.Root, g.Packages)
	if err != nil {
		return err
	}
	fmt.Println(extensionTable(reg))
	return nil
}

func contentTypeTable(defs *provider.Provider) (string, error) {
	names, err := defs.Names()
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "No content types found.", nil
	}

	b := &builder.ContainerBuilder{}
	rows := make([][]any, 0, len(names))
	for _, name := range names {
		ct, err := defs.ContentType(name)
		if err != nil {
			rows = append(rows, []any{name, err.Error(), "", "", ""})
			continue
		}
		columns := 0
		for _, row := range ct.Grid {
			columns += len(row)
		}
		supported := "no"
		if b.Supports(ct) {
			supported = "yes"
		}
		rows = append(rows, []any{name, ct.Title, strconv.Itoa(columns), strconv.Itoa(len(ct.Fields)), supported})
	}
	return render([]string{"Name", "Title", "Grid columns", "Fields", b.Title()}, rows), nil
}

func extensionTable(reg *registry.Registry) string {
	exts := reg.Extensions()
	if len(exts) == 0 {
		return "No extensions found."
	}
	rows := make([][]any, 0, len(exts))
	for _, ext := range exts {
		rows = append(rows, []any{ext.Key, ext.Package, ext.Dir})
	}
	return render([]string{"Key", "Package", "Directory"}, rows)
}

func render(headers []string, rows [][]any) string {
	t := gotabulate.Create(rows)
	t.SetHeaders(headers)
	t.SetAlign("left")
	t.SetWrapStrings(true)
	t.SetMaxCellSize(60)
	return t.Render("grid")
}
