// Package cli holds the rental-analytics command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the command tree: serve and rollup.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "rental-analytics",
		Short:         "Booking, fleet and user rollups for the rental admin dashboard",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate(`{{printf "rental-analytics version: %s\n" .Version}}`)

	root.AddCommand(newServeCommand())
	root.AddCommand(newRollupCommand())
	return root
}

// Execute runs the root command with the process arguments.
func Execute(version string) error {
	if err := NewRootCommand(version).Execute(); err != nil {
		return fmt.Errorf("rental-analytics: %w", err)
	}
	return nil
}
