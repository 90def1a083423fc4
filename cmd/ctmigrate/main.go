package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

type Globals struct {
	Root     string   `help:"Project root directory." default:"." env:"CTMIGRATE_ROOT" type:"existingdir"`
	Packages []string `help:"Glob patterns of extension directories, relative to the root." default:"packages/*,typo3conf/ext/*"`
	Verbose  bool     `help:"Log debug messages." short:"v"`
}

func (g *Globals) logger() *slog.Logger {
	level := slog.LevelInfo
	if g.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

type CLI struct {
	Globals

	Build      BuildCmd      `cmd:"" help:"Migrate content types into container content types."`
	List       ListCmd       `cmd:"" help:"List the content type definitions."`
	Extensions ExtensionsCmd `cmd:"" help:"List the extensions content types can be placed in."`
	Version    VersionCmd    `cmd:"" help:"Print version information."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("ctmigrate"),
		kong.Description("Migrate content type definitions into container content elements for TYPO3."),
		kong.UsageOnError(),
		kong.Bind(&cli.Globals),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
