// Package ctmigrate migrates content type definitions into container
// content elements for TYPO3: it asks the operator how each part of the
// source definition should be carried over and writes the TCA, XLIFF and
// template files the container extension needs.
//
// This package holds the data model shared by the builder and the
// generators. Code generation lives in tcagen, the interactive flow in
// builder.
package ctmigrate

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/webcoast/ctmigrate/tcagen/ir"
)

// ContentType is the normalized definition of a source content type.
// Providers hand it out read-only; the builder works on a Clone.
type ContentType struct {
	// Title is the human readable name or a label reference.
	Title string `yaml:"title" validate:"required"`

	// Description is shown in the new content element wizard.
	Description string `yaml:"description"`

	// Group is the wizard group the type is registered in.
	Group string `yaml:"group"`

	// IconIdentifier is an optional registered icon identifier.
	IconIdentifier string `yaml:"iconIdentifier"`

	// Grid is the visual column layout of the container.
	Grid Grid `yaml:"grid" validate:"dive,dive"`

	// Fields are the content type's fields in display order.
	Fields []FieldSpec `yaml:"fields" validate:"dive"`
}

// Clone returns a deep copy of ct.
func (ct ContentType) Clone() ContentType {
	c := ct
	c.Grid = ct.Grid.Clone()
	if ct.Fields != nil {
		c.Fields = make([]FieldSpec, len(ct.Fields))
		for i, f := range ct.Fields {
			f.Config = f.Config.Clone()
			c.Fields[i] = f
		}
	}
	return c
}

// Validate checks the definition: a title is required and every grid column
// needs a name.
func (ct ContentType) Validate() error {
	if err := validate.Struct(ct); err != nil {
		return fmt.Errorf("invalid content type: %w", fromValidatorError(err))
	}
	return nil
}

// Grid is an ordered sequence of rows, each an ordered sequence of columns.
type Grid [][]Column

// Clone returns a deep copy of g.
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = make([]Column, len(row))
		for j, col := range row {
			out[i][j] = Column{attrs: col.attrs.Clone()}
		}
	}
	return out
}

// Value returns the grid as a literal list of lists of column maps.
func (g Grid) Value() *ir.ListValue {
	rows := ir.List()
	for _, row := range g {
		cols := ir.List()
		for _, col := range row {
			cols.Append(col.Value())
		}
		rows.Append(cols)
	}
	return rows
}

// Column describes one column of a grid row: a name plus layout attributes
// such as colPos, kept in their original order.
type Column struct {
	attrs *ir.MapValue
}

// NewColumn returns a column with the given name followed by the attribute
// pairs (see ir.MapOf).
func NewColumn(name string, attrs ...any) Column {
	m := ir.Map().Set("name", ir.String(name))
	for _, e := range ir.MapOf(attrs...).Entries() {
		m.SetKey(e.Key, e.Value)
	}
	return Column{attrs: m}
}

// Name returns the display name of the column.
func (c Column) Name() string {
	name, _ := c.attrs.GetString("name")
	return name
}

// SetName replaces the display name, keeping its position.
func (c *Column) SetName(name string) {
	if c.attrs == nil {
		c.attrs = ir.Map()
	}
	c.attrs.Set("name", ir.String(name))
}

// Value returns the column attributes as a literal map.
func (c Column) Value() *ir.MapValue {
	if c.attrs == nil {
		return ir.Map()
	}
	return c.attrs
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Column) UnmarshalYAML(node *yaml.Node) error {
	var m ir.MapValue
	if err := m.UnmarshalYAML(node); err != nil {
		return fmt.Errorf("grid column: %w", err)
	}
	c.attrs = &m
	return nil
}

// FieldSpec is a field of the source content type.
type FieldSpec struct {
	// Identifier is the source identifier, usually lowerCamelCase.
	Identifier string `yaml:"identifier" validate:"required"`

	// Type is the field type tag.
	Type FieldType `yaml:"type"`

	// Label is the display label of a field.
	Label string `yaml:"label"`

	// Title is the display label of a tab.
	Title string `yaml:"title"`

	// Description is an optional help text.
	Description string `yaml:"description"`

	// Config is the type specific TCA column configuration.
	Config *ir.MapValue `yaml:"config"`
}

// DisplayLabel returns the label shown to the operator: the title for tabs,
// the label for every other field, each falling back to the other.
func (f FieldSpec) DisplayLabel() string {
	first, second := f.Label, f.Title
	if f.Type.IsTab() {
		first, second = f.Title, f.Label
	}
	if first != "" {
		return first
	}
	return second
}
