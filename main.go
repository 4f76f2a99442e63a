package main

import (
	"fmt"
	"os"

	"github.com/stackforge-labs/stackforge/internal/branding"
	"github.com/stackforge-labs/stackforge/internal/cli"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "If this looks like a bug, report it at https://github.com/%s/issues\n", branding.GitHubRepo())
		os.Exit(1)
	}
}
