// Package builder drives the interactive migration of a content type into
// a container content type.
package builder

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"time"

	"github.com/webcoast/ctmigrate"
	"github.com/webcoast/ctmigrate/internal/console"
	"github.com/webcoast/ctmigrate/tcagen/ir"
	"github.com/webcoast/ctmigrate/tcagen/patch"
	"github.com/webcoast/ctmigrate/tcagen/sink"
	"github.com/webcoast/ctmigrate/tcagen/tca"
	"github.com/webcoast/ctmigrate/tcagen/xliff"
)

// Extensions lists the extensions content types can be placed in.
type Extensions interface {
	// Keys returns the available extension keys.
	Keys() []string

	// Resolve maps an EXT:<key>/<path> reference to a store path.
	Resolve(ref string) (string, error)
}

// TemplateProvider returns the frontend template of a source content type,
// or an empty string if it has none.
type TemplateProvider interface {
	FrontendTemplate(name string) (string, error)
}

// Result describes a finished build.
type Result struct {
	Extension string
	CType     string

	// Files lists the store paths written, in order.
	Files []string

	// TemplateCopied is false when there was no template or the operator
	// declined to overwrite an existing one.
	TemplateCopied bool
}

// ContainerBuilder migrates content types with a grid into container
// content types.
type ContainerBuilder struct {
	IO         console.IO
	Extensions Extensions
	Store      sink.Store

	// Logger receives a record per written file (default: slog.Default()).
	Logger *slog.Logger

	Config Config
	Preset Preset

	// Now dates new label files (default: time.Now).
	Now func() time.Time
}

// Title names the target of this builder.
func (b *ContainerBuilder) Title() string {
	return "Container"
}

// Supports reports whether ct can become a container, which requires a
// grid.
func (b *ContainerBuilder) Supports(ct ctmigrate.ContentType) bool {
	return len(ct.Grid) > 0
}

func (b *ContainerBuilder) logger() *slog.Logger {
	if b.Logger == nil {
		return slog.Default()
	}
	return b.Logger
}

// build holds the state of a single Build call.
type build struct {
	*ContainerBuilder
	cfg    Config
	result *Result
}

// Build runs the dialogue for the content type name and writes the
// container definition, the column definitions, the labels and the
// frontend template. It returns ctmigrate.ErrAborted without writing
// anything when the operator declines to overwrite an existing
// definition.
func (b *ContainerBuilder) Build(ctx context.Context, name string, source ctmigrate.ContentType, templates TemplateProvider) (*Result, error) {
	run := &build{ContainerBuilder: b, cfg: applyConfigDefaults(b.Config), result: &Result{}}
	return run.run(ctx, name, source, templates)
}

func (b *build) run(ctx context.Context, name string, source ctmigrate.ContentType, templates TemplateProvider) (*Result, error) {
	b.IO.Section(fmt.Sprintf("Building container configuration for %q", name))

	keys := b.Extensions.Keys()
	ext, err := b.IO.Ask(console.Question{
		Prompt:       "In which extension, should we place the content block?",
		Default:      b.Preset.Extension,
		Autocomplete: keys,
		Validate:     ctmigrate.ExtensionKey(keys),
	})
	if err != nil {
		return nil, err
	}
	b.result.Extension = ext

	ctypeDefault := b.Preset.CType
	if ctypeDefault == "" {
		ctypeDefault = ctmigrate.ContentTypeName(source.Title)
	}
	ctype, err := b.IO.Ask(console.Question{
		Prompt:   "What is the name of the content block?",
		Default:  ctypeDefault,
		Validate: ctmigrate.ContentTypeIdentifier,
	})
	if err != nil {
		return nil, err
	}
	b.result.CType = ctype

	typeFile, err := b.resolve(ext, path.Join(b.cfg.ContentTypesDir, ctype+".php"))
	if err != nil {
		return nil, err
	}
	exists, err := b.Store.Exists(ctx, typeFile)
	if err != nil {
		return nil, fmt.Errorf("check %s: %w", typeFile, err)
	}
	if exists {
		overwrite, err := b.IO.Confirm(fmt.Sprintf("The file %q already exists. Do you want to override this file? If you choose \"no\", this will abort the migration for this provider.", typeFile), false)
		if err != nil {
			return nil, err
		}
		if !overwrite {
			b.IO.Block("Aborting the process to avoid overriding existing TCA configuration.", console.StyleWarning)
			b.logger().DebugContext(ctx, "content type aborted", slog.String("ctype", ctype))
			return nil, ctmigrate.ErrAborted
		}
	}

	groupDefault := b.Preset.Group
	if groupDefault == "" {
		groupDefault = source.Group
	}
	if groupDefault == "" {
		groupDefault = b.cfg.DefaultGroup
	}
	group, err := b.IO.Ask(console.Question{
		Prompt:   "In which wizard category should the content block be placed?",
		Default:  groupDefault,
		Validate: ctmigrate.RequiredTrimmed("wizard category"),
	})
	if err != nil {
		return nil, err
	}

	languageFile := "EXT:" + ext + "/" + fmt.Sprintf(b.cfg.LanguageFile, ctype)
	labels := ctmigrate.NewLabelExtractor(languageFile)

	ct := source.Clone()
	ct.Title = labels.Extract(ct.Title, "tt_content.CType."+ctype+".title")
	ct.Description = labels.Extract(ct.Description, "tt_content.CType."+ctype+".description")
	for i := range ct.Grid {
		for j := range ct.Grid[i] {
			col := &ct.Grid[i][j]
			col.SetName(labels.Extract(col.Name(), "tt_content."+ctype+"."+col.Name()+".label"))
		}
	}

	fields, err := (&FieldBuilder{IO: b.IO, Logger: b.Logger}).BuildFields(ctx, ct.Fields)
	if err != nil {
		return nil, err
	}
	columns, overrides := columnDefinitions(fields, labels, ctype)

	tcaWriter := &tca.Writer{Store: b.Store, Table: b.cfg.Table}
	err = tcaWriter.WriteContainerContentType(ctx, typeFile, tca.ContainerType{
		CType:       ctype,
		Group:       group,
		Title:       ct.Title,
		Description: ct.Description,
		Grid:        ct.Grid.Value(),
		Icon:        ct.IconIdentifier,
	})
	if err != nil {
		return nil, err
	}
	if err := tcaWriter.AddColumnDefinitions(ctx, typeFile, columns, overrides, ctype); err != nil {
		return nil, err
	}
	b.wrote(ctx, typeFile, "type definition")

	overridesFile, err := b.resolve(ext, b.cfg.OverridesFile)
	if err != nil {
		return nil, err
	}
	if err := tcaWriter.RequireOverride(ctx, overridesFile, typeFile); err != nil {
		return nil, err
	}
	b.wrote(ctx, overridesFile, "overrides")

	xliffFile, err := b.Extensions.Resolve(languageFile)
	if err != nil {
		return nil, err
	}
	units := make([]patch.TransUnit, 0, labels.Labels.Len())
	for key, value := range labels.Labels.All() {
		units = append(units, patch.TransUnit{ID: key, Source: value})
	}
	xliffWriter := &xliff.Writer{Store: b.Store, Now: b.Now}
	if err := xliffWriter.AddLabels(ctx, xliffFile, units, ext); err != nil {
		return nil, err
	}
	b.wrote(ctx, xliffFile, "labels")

	if err := b.copyTemplate(ctx, templates, name, ext, ctype); err != nil {
		return nil, err
	}

	b.IO.Block("  Container configuration finished  ", console.StyleSuccess)
	return b.result, nil
}

// columnDefinitions turns built fields into TCA columns, moving literal
// labels into the label file. The configuration of existing columns goes
// into the returned overrides instead. A repeated identifier replaces the
// earlier column in place.
func columnDefinitions(fields []Field, labels *ctmigrate.LabelExtractor, ctype string) ([]tca.Column, *ir.MapValue) {
	var columns []tca.Column
	position := make(map[string]int, len(fields))
	overrides := ir.Map()

	for _, f := range fields {
		col := tca.Column{Name: f.Identifier}
		if f.UseExistingField {
			prefix := "tt_content." + f.Identifier + ".types." + ctype
			col.Label = labels.Extract(f.Label, prefix+".label")
			col.Description = labels.ExtractOptional(f.Description, prefix+".description")
			if f.Config.Len() > 0 {
				overrides.Set(f.Identifier, ir.Map().Set("config", f.Config))
			}
		} else {
			prefix := "tt_content." + f.Identifier
			col.Label = labels.Extract(f.Label, prefix+".label")
			col.Description = labels.ExtractOptional(f.Description, prefix+".description")
			col.Config = f.Config
		}

		if i, ok := position[f.Identifier]; ok {
			columns[i] = col
			continue
		}
		position[f.Identifier] = len(columns)
		columns = append(columns, col)
	}
	return columns, overrides
}

func (b *build) copyTemplate(ctx context.Context, templates TemplateProvider, name, ext, ctype string) error {
	if templates == nil {
		return nil
	}
	code, err := templates.FrontendTemplate(name)
	if err != nil {
		return fmt.Errorf("template of %s: %w", name, err)
	}
	if code == "" {
		return nil
	}

	file, err := b.resolve(ext, fmt.Sprintf(b.cfg.TemplateFile, ctmigrate.UnderscoredToUpperCamelCase(ctype)))
	if err != nil {
		return err
	}
	exists, err := b.Store.Exists(ctx, file)
	if err != nil {
		return fmt.Errorf("check %s: %w", file, err)
	}
	if exists {
		overwrite, err := b.IO.Confirm(fmt.Sprintf("The file %q already exists. Do you want to override this file? If you choose \"no\", the template will not be copied.", file), false)
		if err != nil {
			return err
		}
		if !overwrite {
			b.IO.Block("Skipping the template to avoid overriding existing file.", console.StyleWarning)
			return nil
		}
	}

	if err := b.Store.WriteFile(ctx, file, []byte(code)); err != nil {
		return fmt.Errorf("write %s: %w", file, err)
	}
	b.result.TemplateCopied = true
	b.wrote(ctx, file, "template")
	return nil
}

func (b *build) resolve(ext, rel string) (string, error) {
	p, err := b.Extensions.Resolve("EXT:" + ext + "/" + rel)
	if err != nil {
		return "", fmt.Errorf("resolve %s in %s: %w", rel, ext, err)
	}
	return p, nil
}

func (b *build) wrote(ctx context.Context, file, artifact string) {
	b.result.Files = append(b.result.Files, file)
	b.logger().InfoContext(ctx, "file written",
		slog.String("artifact", artifact),
		slog.String("path", file))
}
