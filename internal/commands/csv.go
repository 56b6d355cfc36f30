package commands

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/paxconv/internal/batch"
	"github.com/idelchi/paxconv/internal/config"
)

// NewCSVCommand creates a new cobra command for the csv subcommand.
func NewCSVCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csv [flags] <input.csv> <output.csv>",
		Short: "Convert a CSV table of Kantec card numbers",
		Args:  cobra.ExactArgs(2),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return viper.BindPFlags(cmd.Flags())
		},
		RunE: func(_ *cobra.Command, args []string) error {
			// Unmarshal all config (from flags) into struct
			var cfg config.Config
			if err := viper.Unmarshal(&cfg); err != nil {
				return fmt.Errorf("parsing config: %w", err)
			}

			cfg.Input = args[0]
			cfg.Output = args[1]

			if err := cfg.Validate(); err != nil {
				return err
			}

			summary, err := batch.NewRunner(&cfg).Run()
			if err != nil {
				return err
			}

			if !cfg.Quiet {
				summary.Print(os.Stdout)
			}

			return nil
		},
	}

	cmd.Flags().String("source-column", "Kantec", "Name of the column holding Kantec card numbers")
	cmd.Flags().String("dest-column", "Paxton", "Name of the column to write Paxton card numbers to")
	cmd.Flags().IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	cmd.Flags().BoolP("quiet", "q", false, "Suppress the conversion summary")

	return cmd
}
