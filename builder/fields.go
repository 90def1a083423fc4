package builder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/webcoast/ctmigrate"
	"github.com/webcoast/ctmigrate/internal/console"
	"github.com/webcoast/ctmigrate/tcagen/ir"
)

// Field is a source field as the operator decided to migrate it.
type Field struct {
	// Identifier is the column name.
	Identifier string

	// Label and Description are literal strings or label references.
	Label       string
	Description string

	// UseExistingField marks columns that already exist in the table.
	// Their Config never holds a type.
	UseExistingField bool

	// Config is the column configuration.
	Config *ir.MapValue
}

// FieldBuilder asks the operator how to migrate each field of a content
// type.
type FieldBuilder struct {
	IO     console.IO
	Logger *slog.Logger
}

func (b *FieldBuilder) logger() *slog.Logger {
	if b.Logger == nil {
		return slog.Default()
	}
	return b.Logger
}

// BuildFields walks specs in order and returns the fields the operator
// accepted. Declined and unsupported fields are left out.
func (b *FieldBuilder) BuildFields(ctx context.Context, specs []ctmigrate.FieldSpec) ([]Field, error) {
	var fields []Field
	for _, spec := range specs {
		kind, question := "Field", "Do you want to process this field?"
		if spec.Type.IsTab() {
			kind, question = "Tab", "Do you want to process this tab?"
		}
		b.IO.Writeln(fmt.Sprintf("%s: %s (%s)", kind, spec.DisplayLabel(), spec.Identifier))

		ok, err := b.IO.Confirm(question, true)
		if err != nil {
			return nil, err
		}
		if !ok {
			b.logger().DebugContext(ctx, "field skipped", slog.String("field", spec.Identifier))
			continue
		}

		field, err := b.buildField(spec)
		if errors.Is(err, ctmigrate.ErrUnsupportedField) {
			b.logger().DebugContext(ctx, "field dropped",
				slog.String("field", spec.Identifier),
				slog.String("type", spec.Type.String()))
			continue
		}
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return fields, nil
}

func (b *FieldBuilder) buildField(spec ctmigrate.FieldSpec) (Field, error) {
	switch spec.Type.Kind() {
	case ctmigrate.KindSection:
		b.IO.Block(fmt.Sprintf("The field %q is a section type. Sections are not supported for container elements.", spec.DisplayLabel()), console.StyleError)
		return Field{}, fmt.Errorf("%w: %s is a section", ctmigrate.ErrUnsupportedField, spec.Identifier)

	case ctmigrate.KindTab:
		identifier, err := b.IO.Ask(console.Question{
			Prompt:   "What is the identifier of the tab?",
			Default:  ctmigrate.CamelCaseToLowerCaseUnderscored(spec.Identifier),
			Validate: ctmigrate.Required("identifier of the tab"),
		})
		if err != nil {
			return Field{}, err
		}
		label, err := b.askLabel(spec)
		if err != nil {
			return Field{}, err
		}
		return Field{
			Identifier: identifier,
			Label:      label,
			Config:     ir.Map().Set("type", spec.Type.Value()),
		}, nil

	default:
		identifier, err := b.IO.Ask(console.Question{
			Prompt:   "What is the identifier of the field?",
			Default:  ctmigrate.CamelCaseToLowerCaseUnderscored(spec.Identifier),
			Validate: ctmigrate.Required("identifier of the field"),
		})
		if err != nil {
			return Field{}, err
		}
		label, err := b.askLabel(spec)
		if err != nil {
			return Field{}, err
		}
		existing, err := b.IO.Confirm("Do you want to use an existing field?", false)
		if err != nil {
			return Field{}, err
		}

		config := ir.Merge(ir.Map().Set("type", spec.Type.Value()), spec.Config)
		if existing {
			config.Delete("type")
		}
		return Field{
			Identifier:       identifier,
			Label:            label,
			Description:      spec.Description,
			UseExistingField: existing,
			Config:           config,
		}, nil
	}
}

func (b *FieldBuilder) askLabel(spec ctmigrate.FieldSpec) (string, error) {
	return b.IO.Ask(console.Question{
		Prompt:   "What is the label of the field?",
		Default:  spec.DisplayLabel(),
		Validate: ctmigrate.Required("label of the field"),
	})
}
