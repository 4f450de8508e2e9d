package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:     "fluxd",
		Short:   "Dependency-ordered event dispatcher",
		Version: version,
		Long: `fluxd hosts an event dispatcher whose listeners run in dependency order.

It exposes an admin HTTP API for inspecting listeners and dispatching
events, journals dispatches to postgres and relays selected events
to other instances over redis.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
