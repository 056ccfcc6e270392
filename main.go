package main

import (
	"io"
	"os"

	"github.com/aurelia-labs/au/internal/cli"
	"github.com/aurelia-labs/au/internal/commands"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	build := commands.BuildInfo{Version: version, Commit: commit, Date: date}
	if err := cli.Execute(build, args, stdout, stderr); err != nil {
		return 1
	}
	return 0
}
