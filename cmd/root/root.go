// Package root contains the root command for the application
package root

import (
	"time"

	"finai/internal/advisor"
	"finai/internal/config"
	"finai/internal/ledger"
	"finai/internal/logging"
	"finai/internal/store"

	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logging.GetLogger()

	// AppConfig holds the resolved configuration after PersistentPreRun
	AppConfig *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "finai",
		Short: "A CLI personal finance assistant with an AI advisor.",
		Long: `finai keeps a local ledger of income and expenses and derives the
dashboard metrics from it: totals, savings, expense ratio, goal progress and
daily cash flow. A Gemini-backed advisor can draft transactions from plain
language, answer questions about your finances and write spending reports.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to finai!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize configuration and logging
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			AppConfig = cfg

			Log = logging.NewLogrusAdapterFromLogger(config.ConfigureLoggingFromConfig(cfg))
			logging.SetDefaultLogger(Log)

			// Propagate the configured logger to the packages that cache one
			ledger.SetLogger(Log)
			store.SetLogger(Log)

			if SessionFile == "" {
				SessionFile = cfg.Session.File
			}
			if cfg.Export.Delimiter != "" {
				store.SetDelimiter([]rune(cfg.Export.Delimiter)[0])
			}
		},
	}

	// SessionFile is the session file path, shared by all commands
	SessionFile string

	// Specific add command flags
	Title    string
	Amount   string
	TxType   string
	Category string
	Date     string

	// Specific dashboard command flags
	Days int

	// Specific goals command flags
	SetGoal string

	// Specific profile command flags
	Name   string
	Income string
	Goal   string
	Plan   string

	// Specific export/report command flags
	OutputFile string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SessionFile, "session", "s", "", "Session file (default from config)")
}

// OpenStore returns the session store bound to the configured session file.
func OpenStore() *store.SessionStore {
	return store.NewSessionStore(SessionFile)
}

// NewAdvisor builds the advisor from the resolved configuration. When the AI
// is disabled or no key is configured the advisor still works, answering with
// its deterministic fallbacks.
func NewAdvisor() *advisor.Advisor {
	apiKey := ""
	model := "gemini-2.0-flash"
	timeout := 30 * time.Second
	historyLimit := advisor.DefaultHistoryLimit

	if AppConfig != nil {
		if AppConfig.AI.Enabled {
			apiKey = AppConfig.AI.APIKey
		}
		model = AppConfig.AI.Model
		timeout = time.Duration(AppConfig.AI.TimeoutSeconds) * time.Second
		historyLimit = AppConfig.AI.HistoryLimit
	}

	client := advisor.NewGeminiClient(apiKey, model, timeout, Log)
	return advisor.New(client, historyLimit, Log)
}
