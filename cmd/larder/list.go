// List command prints every stored document in index order.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all documents",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	documents, st, err := openDocuments()
	if err != nil {
		return err
	}
	defer st.Close()

	all, err := documents.FindAll()
	if err != nil {
		return fmt.Errorf("list documents: %w", err)
	}

	if flagJSON {
		out, err := json.MarshalIndent(all, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal documents: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	for _, doc := range all {
		fmt.Printf("%s\t%s\n", doc.ID, doc.Body)
	}
	return nil
}
