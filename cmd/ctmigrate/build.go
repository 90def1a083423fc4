package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/webcoast/ctmigrate"
	"github.com/webcoast/ctmigrate/builder"
	"github.com/webcoast/ctmigrate/internal/console"
	"github.com/webcoast/ctmigrate/provider"
	"github.com/webcoast/ctmigrate/registry"
	"github.com/webcoast/ctmigrate/tcagen/sink"
)

type BuildCmd struct {
	Names         []string `arg:"" optional:"" help:"Content types to migrate. Default: every supported one."`
	Definitions   string   `help:"Directory of the content type definitions, relative to the root." default:"content-types"`
	NoInteraction bool     `help:"Accept the default answer of every question." short:"n"`
	Set           []string `help:"Preset answer (extension, ctype or group)." placeholder:"KEY=VALUE"`
}

func (c *BuildCmd) Run(g *Globals) error {
	dialog := console.NewTerminal(os.Stdin, os.Stdout, !c.NoInteraction)
	return c.run(context.Background(), g, dialog, g.logger())
}

func (c *BuildCmd) run(ctx context.Context, g *Globals, dialog console.IO, logger *slog.Logger) error {
	reg, err := registry.Scan(g.Root, g.Packages)
	if err != nil {
		return err
	}
	if len(reg.Keys()) == 0 {
		return fmt.Errorf("no extensions found in %s matching %v", g.Root, g.Packages)
	}
	preset, err := builder.ParsePreset(c.Set)
	if err != nil {
		return err
	}

	defs := provider.Open(filepath.Join(g.Root, c.Definitions))
	names := c.Names
	if len(names) == 0 {
		if names, err = defs.Names(); err != nil {
			return err
		}
	}

	b := &builder.ContainerBuilder{
		IO:         dialog,
		Extensions: reg,
		Store:      sink.NewFilesystemSink(g.Root),
		Logger:     logger,
		Preset:     preset,
	}
	var built int
	for _, name := range names {
		ct, err := defs.ContentType(name)
		if err != nil {
			return err
		}
		if !b.Supports(ct) {
			dialog.Block(fmt.Sprintf("Skipping %q: the %s builder needs a grid.", name, b.Title()), console.StyleInfo)
			continue
		}
		res, err := b.Build(ctx, name, ct, defs)
		if errors.Is(err, ctmigrate.ErrAborted) {
			continue
		}
		if err != nil {
			return fmt.Errorf("build %s: %w", name, err)
		}
		built++
		logger.DebugContext(ctx, "content type built",
			slog.String("name", name),
			slog.String("ctype", res.CType),
			slog.String("extension", res.Extension),
			slog.Int("files", len(res.Files)))
	}
	logger.InfoContext(ctx, "build finished", slog.Int("built", built), slog.Int("requested", len(names)))
	return nil
}
