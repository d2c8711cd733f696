// Get command retrieves a document by ID.
package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/pkg/types"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get a document by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	documents, st, err := openDocuments()
	if err != nil {
		return err
	}
	defer st.Close()

	doc, err := documents.FindByID(args[0])
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("document %q not found", args[0])
		}
		return fmt.Errorf("get document: %w", err)
	}

	if flagJSON {
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal document: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}
	fmt.Println(doc.Body)
	return nil
}
