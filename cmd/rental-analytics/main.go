package main

import (
	"log/slog"
	"os"

	"github.com/aevon-lab/rental-analytics/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Initialize Logger. Reports go to stdout, so logs use stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := cli.Execute(version); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}
