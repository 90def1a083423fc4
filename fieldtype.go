package ctmigrate

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/webcoast/ctmigrate/tcagen/ir"
)

// FieldKind discriminates field type tags.
type FieldKind int

const (
	// KindWidget is an editing widget; its type name is passed through.
	KindWidget FieldKind = iota
	// KindTab starts a new tab in the editing form.
	KindTab
	// KindSection is a repeatable group of fields. Containers cannot hold it.
	KindSection
)

// String returns the kind name.
func (k FieldKind) String() string {
	switch k {
	case KindWidget:
		return "Widget"
	case KindTab:
		return "Tab"
	case KindSection:
		return "Section"
	default:
		return "Unknown"
	}
}

// FieldType is the type tag of a source field: Tab, Section or a widget
// carrying an opaque type name.
type FieldType struct {
	kind FieldKind
	name string
}

var (
	// Tab is the tab marker.
	Tab = FieldType{kind: KindTab, name: "Tab"}
	// Section is the section marker.
	Section = FieldType{kind: KindSection, name: "Section"}
)

// Widget returns the field type of an editing widget.
func Widget(name string) FieldType {
	return FieldType{kind: KindWidget, name: name}
}

// ParseFieldType maps a type tag to a field type. "tab" and "section" are
// matched case-insensitively; anything else is a widget.
func ParseFieldType(s string) FieldType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tab":
		return Tab
	case "section":
		return Section
	default:
		return Widget(strings.TrimSpace(s))
	}
}

// Kind returns the discriminator.
func (t FieldType) Kind() FieldKind { return t.kind }

// IsTab reports whether t is the tab marker.
func (t FieldType) IsTab() bool { return t.kind == KindTab }

// IsSection reports whether t is the section marker.
func (t FieldType) IsSection() bool { return t.kind == KindSection }

// String returns the type name.
func (t FieldType) String() string { return t.name }

// Value returns the type as a backed enum case for code generation.
func (t FieldType) Value() *ir.EnumValue {
	return ir.BackedEnum(t.kind.String(), t.name)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *FieldType) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: field type must be a string", node.Line)
	}
	*t = ParseFieldType(node.Value)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (t FieldType) MarshalYAML() (any, error) {
	return t.name, nil
}
