// Package report generates a free-text spending report with the AI advisor
package report

import (
	"fmt"
	"os"

	"finai/cmd/root"

	"github.com/spf13/cobra"
)

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a Markdown spending report using the Gemini model",
	Long: `Generate a free-text Markdown analysis of the whole ledger using the
Gemini model. Requires a configured GEMINI_API_KEY; without one a fixed
instruction is printed instead.`,
	Run: reportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.OutputFile, "output", "o", "", "Write the report to a file instead of stdout")
}

func reportFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Report command called")

	session, err := root.OpenStore().Load()
	if err != nil {
		root.Log.Fatalf("Error loading session: %v", err)
	}

	report := root.NewAdvisor().GenerateReport(cmd.Context(), session.Transactions)

	if root.OutputFile != "" {
		if err := os.WriteFile(root.OutputFile, []byte(report), 0600); err != nil {
			root.Log.Fatalf("Error writing report file: %v", err)
		}
		fmt.Printf("Report written to %s\n", root.OutputFile)
		return
	}

	fmt.Println(report)
}
