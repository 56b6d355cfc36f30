package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command with common configuration
// and attaches all subcommands.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "paxconv [flags] command [flags]",
		Short: "Kantec to Paxton 10 card number converter",
		Long: `Converts Kantec EntraPass card numbers (e.g. "4D:52042") into the Paxton 10
card number format. Supports one-off conversions and whole-CSV batch runs.`,
		Version:      version,
		SilenceUsage: true,
	}

	root.AddCommand(NewConvertCommand(), NewCSVCommand(), NewVerifyCommand())

	return root
}
