// Package main provides the larder CLI: flat-record document storage over
// the fs, badger, or sqlite backend.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/internal/paths"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagBackend   string
	flagJSON      bool
	flagVerbose   bool
)

// Values loaded from config.yaml by PersistentPreRunE, available to all
// subcommands.
var (
	configDataDir string
	configBackend string
)

var rootCmd = &cobra.Command{
	Use:   "larder",
	Short: "Larder is a flat-file document store",
	Long: `Larder stores documents as individual flat records on a filesystem,
BadgerDB, or SQLite backend, indexed per table for full listing.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}

		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configBackend = cfg.GetString(cfgKeyBackend)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.larder-db)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "storage backend: fs, badger, or sqlite (default: fs)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "log backend activity to stderr")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(existsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
