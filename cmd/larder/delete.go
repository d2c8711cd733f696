// Delete command removes a document by ID.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a document by ID",
	Long: `Delete removes the document with the given ID and its index entry.
Deleting an ID that does not exist is a no-op.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	documents, st, err := openDocuments()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := documents.DeleteByID(args[0]); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	fmt.Printf("deleted %s\n", args[0])
	return nil
}
