// Package advise handles one advisory chat turn with the AI advisor
package advise

import (
	"fmt"
	"strings"

	"finai/cmd/root"
	"finai/internal/models"

	"github.com/spf13/cobra"
)

// Cmd represents the advise command
var Cmd = &cobra.Command{
	Use:   "advise [question]",
	Short: "Ask the AI advisor a question about your finances",
	Long: `Ask the Gemini-backed advisor a free-text question. The advisor sees
the declared profile, the derived totals and the most recent transactions.
Both the question and the answer are appended to the chat history. Without a
configured GEMINI_API_KEY the advisor answers with a fixed instruction
instead of calling the model.`,
	Args: cobra.MinimumNArgs(1),
	Run:  adviseFunc,
}

func adviseFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Advise command called")

	question := strings.Join(args, " ")

	s := root.OpenStore()
	session, err := s.Load()
	if err != nil {
		root.Log.Fatalf("Error loading session: %v", err)
	}

	answer := root.NewAdvisor().GetAdvice(cmd.Context(), session.Transactions, session.Profile, question)

	session.AppendChat(models.NewChatMessage(models.RoleUser, question))
	session.AppendChat(models.NewChatMessage(models.RoleModel, answer))

	if err := s.Save(session); err != nil {
		root.Log.Fatalf("Error saving session: %v", err)
	}

	fmt.Println(answer)
}
