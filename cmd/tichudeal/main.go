package main

import (
	"github.com/alecthomas/kong"
	_ "github.com/joho/godotenv/autoload"

	"github.com/lox/tichudeal/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Deal    DealCmd          `cmd:"" help:"Deal a batch of boards and export them"`
	Preview PreviewCmd       `cmd:"" help:"Deal a batch of boards and print them to the terminal"`
	Render  RenderCmd        `cmd:"" help:"Export a previously archived batch without re-dealing"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("tichudeal"),
		kong.Description("Deal, sort and print Tichu hands"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_file": config.DefaultFile,
		},
		kong.Bind(&cli.Globals),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
