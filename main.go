package main

import (
	"os"

	"github.com/idelchi/paxconv/internal/commands"
)

// version is set at build time.
var version = "dev" //nolint:gochecknoglobals // overridden via -ldflags

func main() {
	if err := commands.NewRootCommand(version).Execute(); err != nil {
		os.Exit(1)
	}
}
