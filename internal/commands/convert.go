package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idelchi/paxconv/internal/paxton"
)

// NewConvertCommand creates a new cobra command for the convert subcommand.
func NewConvertCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "convert <card-number>",
		Aliases: []string{"conv"},
		Short:   "Convert a single Kantec card number",
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			converted, err := paxton.Convert(args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Kantec:  %s\n", args[0]) //nolint:forbidigo
			fmt.Printf("Paxton:  %s\n", converted) //nolint:forbidigo

			return nil
		},
	}
}
