// Exists command reports whether a document is stored under an ID.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var existsCmd = &cobra.Command{
	Use:   "exists <id>",
	Short: "Check whether a document exists",
	Args:  cobra.ExactArgs(1),
	RunE:  runExists,
}

func runExists(cmd *cobra.Command, args []string) error {
	documents, st, err := openDocuments()
	if err != nil {
		return err
	}
	defer st.Close()

	fmt.Println(documents.ExistsByID(args[0]))
	return nil
}
