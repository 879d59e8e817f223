package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bomberquest/internal/config"
)

var (
	flagConfigWrite bool
	flagConfigForce bool
	flagConfigPath  string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or install the default game config",
	Long: `Print the default game configuration as YAML, or write it to the
per-user location that every game command reads:
  ~/.bomberquest/configs/bomberquest.yaml

Examples:
  bomberquest config > mine.yaml
  bomberquest config --write
  bomberquest config --write --path ./configs/bomberquest.yaml --force`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigWrite, "write", false, "Write the defaults to a file instead of printing them")
	configCmd.Flags().BoolVar(&flagConfigForce, "force", false, "Overwrite an existing config file")
	configCmd.Flags().StringVar(&flagConfigPath, "path", "", "Destination for --write (default: per-user config)")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagConfigWrite {
		os.Stdout.Write(config.DefaultYAML()) //nolint:errcheck
		return
	}

	path := flagConfigPath
	if path == "" {
		path = config.UserConfigPath()
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "Error: cannot determine home directory, pass --path")
		os.Exit(1)
	}

	if err := config.WriteDefault(path, flagConfigForce); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if !flagConfigForce {
			fmt.Fprintln(os.Stderr, "Use --force to overwrite it.")
		}
		os.Exit(1)
	}
	fmt.Printf("Wrote default config to %s\n", path)
}
