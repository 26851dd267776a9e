// Package export writes the ledger to a CSV file
package export

import (
	"fmt"

	"finai/cmd/root"
	"finai/internal/store"

	"github.com/spf13/cobra"
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ledger to CSV",
	Long:  `Export all transactions to a CSV file. The delimiter is configurable via the export section of the config file.`,
	Run:   exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.OutputFile, "output", "o", "", "Output CSV file (required)")
	if err := Cmd.MarkFlagRequired("output"); err != nil {
		root.Log.WithError(err).Warn("Failed to mark output flag required")
	}
}

func exportFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Export command called")

	session, err := root.OpenStore().Load()
	if err != nil {
		root.Log.Fatalf("Error loading session: %v", err)
	}

	if err := store.ExportCSV(session.Transactions, root.OutputFile); err != nil {
		root.Log.Fatalf("Error exporting CSV: %v", err)
	}

	fmt.Printf("Exported %d transactions to %s\n", len(session.Transactions), root.OutputFile)
}
