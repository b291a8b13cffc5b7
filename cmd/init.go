package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ghostscrub/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default .ghostscrub configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(config.DefaultFileName); err == nil && !initForce {
			return fmt.Errorf("configuration file %s already exists. Use --force to overwrite", config.DefaultFileName)
		}

		if err := os.WriteFile(config.DefaultFileName, []byte(config.DefaultTemplate), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", config.DefaultFileName, err)
		}

		fmt.Fprintf(os.Stdout, "Created %s configuration file with default settings.\n", config.DefaultFileName)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing configuration file")
	rootCmd.AddCommand(initCmd)
}
