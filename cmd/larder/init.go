// Init command creates the configuration and data directories.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize larder storage",
	Long: `Init creates the configuration directory with a default config.yaml
and opens the storage backend once so its data directory exists.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	// Config dir and config.yaml were created by PersistentPreRunE;
	// opening the store creates the data dir.
	_, st, err := openDocuments()
	if err != nil {
		return err
	}
	defer st.Close()

	fmt.Printf("initialized larder with %s backend\n", resolveBackend())
	return nil
}
