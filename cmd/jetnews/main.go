// Command jetnews is a terminal reader for the Jetnews sample posts and RSS feeds.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

// CLI is the command line of jetnews.
type CLI struct {
	Config string `help:"Path to the config file." type:"path"`
	Debug  bool   `help:"Log at debug level."`

	Run     RunCmd     `cmd:"" default:"1" help:"Start the reader (default)."`
	Preview PreviewCmd `cmd:"" help:"Render the sample article screen to stdout."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("jetnews"),
		kong.Description("Read Jetnews posts in the terminal."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(&cli); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
