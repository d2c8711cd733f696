// Set command stores a document.
package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/pkg/types"
)

var setFlagID string

var setCmd = &cobra.Command{
	Use:   "set <body>",
	Short: "Store a document",
	Long: `Set stores a document body. With --id the document is created or
overwritten under that ID; without it a new UUID v7 is generated.

Example:
  larder set "pick up milk"
  larder set --id note-1 "pick up milk"`,
	Args: cobra.ExactArgs(1),
	RunE: runSet,
}

func init() {
	setCmd.Flags().StringVar(&setFlagID, "id", "", "document ID (default: generated UUID v7)")
}

// newUUID generates a UUID v7 string.
func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fall back to v4 if v7 generation fails.
		return uuid.New().String()
	}
	return id.String()
}

func runSet(cmd *cobra.Command, args []string) error {
	documents, st, err := openDocuments()
	if err != nil {
		return err
	}
	defer st.Close()

	id := setFlagID
	if id == "" {
		id = newUUID()
	}

	doc, err := documents.Save(types.Document{
		ID:        id,
		Body:      args[0],
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("save document: %w", err)
	}

	if flagJSON {
		out, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("marshal document: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}
	fmt.Println(doc.ID)
	return nil
}
