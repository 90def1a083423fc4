// Package tca writes the TYPO3 table configuration (TCA) files of a
// container content type: the type definition registering the container
// and the column definitions attached to it.
package tca

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/webcoast/ctmigrate/tcagen/ir"
	"github.com/webcoast/ctmigrate/tcagen/patch"
	"github.com/webcoast/ctmigrate/tcagen/php"
	"github.com/webcoast/ctmigrate/tcagen/sink"
)

// Imported classes.
const (
	GeneralUtility             = `TYPO3\CMS\Core\Utility\GeneralUtility`
	ExtensionManagementUtility = `TYPO3\CMS\Core\Utility\ExtensionManagementUtility`
	ContainerRegistry          = `B13\Container\Tca\Registry`
	ContainerConfiguration     = `B13\Container\Tca\ContainerConfiguration`
)

// DefaultTable is the table container content types belong to.
const DefaultTable = "tt_content"

// Header starts every generated file: the strict types declaration and the
// access guard.
const Header = `<?php

declare(strict_types=1);

if (!defined('TYPO3')) {
    die('Access denied.');
}
`

// ContainerType describes a container content type registration.
type ContainerType struct {
	// CType is the content type identifier.
	CType string

	// Group is the new content element wizard group.
	Group string

	// Title and Description are literal strings or label references.
	Title       string
	Description string

	// Grid is the column layout, a list of rows of column maps.
	Grid ir.Value

	// Icon is an optional icon identifier.
	Icon string
}

// Column is a column attached to a content type.
type Column struct {
	// Name is the column name in the table.
	Name string

	// Label and Description are literal strings or label references.
	Label       string
	Description string

	// Config is the column configuration. Columns without a config already
	// exist in the table and are only added to the type's field list.
	Config *ir.MapValue
}

// Writer creates and patches TCA files in a store.
type Writer struct {
	Store sink.Store

	// Table is the table content types are added to (default: tt_content).
	Table string
}

// NewWriter returns a writer for store.
func NewWriter(store sink.Store) *Writer {
	return &Writer{Store: store, Table: DefaultTable}
}

func (w *Writer) table() string {
	if w.Table == "" {
		return DefaultTable
	}
	return w.Table
}

// WriteContainerContentType writes the type definition file at path,
// replacing any previous content. Callers confirm overwrites themselves.
func (w *Writer) WriteContainerContentType(ctx context.Context, path string, ct ContainerType) error {
	if err := w.Store.WriteFile(ctx, path, []byte(RenderContainerContentType(ct))); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderContainerContentType returns the source of a type definition file.
func RenderContainerContentType(ct ContainerType) string {
	content := Header
	content = patch.AddImport(content, GeneralUtility)
	content = patch.AddImport(content, ContainerRegistry)
	content = patch.AddImport(content, ContainerConfiguration)

	grid := ct.Grid
	if grid == nil {
		grid = ir.List()
	}

	var b strings.Builder
	b.WriteString(content)
	b.WriteString("\nGeneralUtility::makeInstance(Registry::class)->configureContainer(\n")
	b.WriteString("    (\n")
	b.WriteString("        new ContainerConfiguration(\n")
	fmt.Fprintf(&b, "            %s,\n", php.Quote(ct.CType))
	fmt.Fprintf(&b, "            %s,\n", php.Quote(ct.Title))
	fmt.Fprintf(&b, "            %s,\n", php.Quote(ct.Description))
	fmt.Fprintf(&b, "            %s\n", php.TrimArray(php.Array(grid, 3)))
	b.WriteString("        )\n")
	b.WriteString("    )\n")
	fmt.Fprintf(&b, "    ->setGroup(%s)", php.Quote(ct.Group))
	if ct.Icon != "" {
		fmt.Fprintf(&b, "\n    ->setIcon(%s)", php.Quote(ct.Icon))
	}
	b.WriteString("\n);\n")
	return b.String()
}

// AddColumnDefinitions appends the registration of columns to the file at
// path and attaches them to the content type ctype. Columns whose name is
// a key of overrides get their configuration overridden for this type only.
// The file is created when missing.
//
// The appended text is not deduplicated: calling it twice registers the
// columns twice.
func (w *Writer) AddColumnDefinitions(ctx context.Context, path string, columns []Column, overrides *ir.MapValue, ctype string) error {
	content, err := w.readOrCreate(ctx, path)
	if err != nil {
		return err
	}
	content = patch.AddImport(content, ExtensionManagementUtility)
	content += RenderColumnDefinitions(w.table(), columns, overrides, ctype)
	if err := w.Store.WriteFile(ctx, path, []byte(content)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderColumnDefinitions returns the statements AddColumnDefinitions
// appends.
func RenderColumnDefinitions(table string, columns []Column, overrides *ir.MapValue, ctype string) string {
	definitions := ir.Map()
	fieldList := make([]string, 0, len(columns))
	names := make([]string, 0, len(columns))
	for _, col := range columns {
		names = append(names, col.Name)
		if col.Config == nil || col.Config.Len() == 0 {
			fieldList = append(fieldList, col.Name+";"+col.Label)
			continue
		}
		fieldList = append(fieldList, col.Name)

		def := ir.Map().Set("label", ir.String(col.Label))
		if col.Description != "" {
			def.Set("description", ir.String(col.Description))
		}
		def.Set("config", col.Config)
		definitions.Set(col.Name, def)
	}

	var b strings.Builder
	b.WriteString("\nExtensionManagementUtility::addTCAcolumns(\n")
	fmt.Fprintf(&b, "    %s,\n", php.Quote(table))
	fmt.Fprintf(&b, "    %s\n", php.TrimArrayRight(php.Array(definitions, 1)))
	b.WriteString(");\n\n")
	b.WriteString("ExtensionManagementUtility::addToAllTCAtypes(\n")
	fmt.Fprintf(&b, "    %s,\n", php.Quote(table))
	fmt.Fprintf(&b, "    %s,\n", php.Quote(strings.Join(fieldList, ", ")))
	fmt.Fprintf(&b, "    %s,\n", php.Quote(ctype))
	fmt.Fprintf(&b, "    '%s:header'\n", AnchorPosition(names))
	b.WriteString(");")

	if overrides != nil && overrides.Len() > 0 {
		fmt.Fprintf(&b, "\n$GLOBALS['TCA'][%s]['types'][%s]['columnsOverrides'] = %s;",
			php.Quote(table), php.Quote(ctype), php.TrimArray(php.Array(overrides, 0)))
	}
	return b.String()
}

// Position is where new fields are placed relative to the header palette.
type Position string

const (
	PositionAfter   Position = "after"
	PositionReplace Position = "replace"
)

// AnchorPosition returns the position for a field list: fields replace the
// header when one of them is named header, the container's description
// pseudo field, and go after it otherwise.
func AnchorPosition(names []string) Position {
	for _, n := range names {
		if n == "header" {
			return PositionReplace
		}
	}
	return PositionAfter
}

// RequireOverride makes the overrides file require the type definition
// file. The overrides file is created when missing; an existing require is
// left alone.
func (w *Writer) RequireOverride(ctx context.Context, overridesPath, typePath string) error {
	content, err := w.readOrCreate(ctx, overridesPath)
	if err != nil {
		return err
	}
	rel, err := RelativePath(overridesPath, typePath)
	if err != nil {
		return err
	}
	if patch.HasRequire(content, rel) {
		return nil
	}
	if err := w.Store.WriteFile(ctx, overridesPath, []byte(patch.AddRequire(content, rel))); err != nil {
		return fmt.Errorf("write %s: %w", overridesPath, err)
	}
	return nil
}

// readOrCreate returns the content of the file at path, creating it with
// Header first when it does not exist.
func (w *Writer) readOrCreate(ctx context.Context, path string) (string, error) {
	data, err := w.Store.ReadFile(ctx, path)
	if err == nil {
		return string(data), nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if err := w.Store.WriteFile(ctx, path, []byte(Header)); err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	return Header, nil
}

// RelativePath returns the slash separated path of target relative to the
// directory of the file from.
func RelativePath(from, target string) (string, error) {
	dir, err := filepath.Rel(filepath.FromSlash(path.Dir(from)), filepath.FromSlash(path.Dir(target)))
	if err != nil {
		return "", fmt.Errorf("relative path from %s to %s: %w", from, target, err)
	}
	return path.Join(filepath.ToSlash(dir), path.Base(target)), nil
}
