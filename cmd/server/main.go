package main

import (
	"github.com/alecthomas/kong"
)

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("homebar"),
		kong.Description("homebar tracks a home bar's inventory, recipes and party consumption."),
	)
	err := ctx.Run(&Context{Debug: CLI.Debug})
	ctx.FatalIfErrorf(err)
}
