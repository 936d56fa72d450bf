package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/victoriabracamonte945-dot/TodoListCuteRosyPlans.io/internal/ai"
	"github.com/victoriabracamonte945-dot/TodoListCuteRosyPlans.io/internal/logging"
	"github.com/victoriabracamonte945-dot/TodoListCuteRosyPlans.io/internal/storage"
	"github.com/victoriabracamonte945-dot/TodoListCuteRosyPlans.io/internal/update"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "rosyplans failed: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())

	cmd := &cobra.Command{
		Use:   "rosyplans",
		Short: "A cute terminal to-do list with an AI planning assistant",
		Long: `rosyplans keeps a little list of plans in your terminal. Rosy, the
built-in assistant, can break a plan into sub-tasks with Gemini and
draft Google Calendar events for anything on the list.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to the task database or file")
	cmd.Flags().StringVar(&cfg.StoreBackend, "store", cfg.StoreBackend, "storage backend: sqlite or file")
	cmd.Flags().IntVar(&cfg.RequestTimeoutSeconds, "timeout", cfg.RequestTimeoutSeconds, "AI request timeout in seconds")
	cmd.Flags().StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "append JSON logs to this file")
	cmd.Flags().StringVar(&cfg.GeminiModel, "model", cfg.GeminiModel, "Gemini model name")

	return cmd
}

func run(cfg update.RuntimeConfig) error {
	logger, logCloser, err := logging.New(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	var suggester update.Suggester
	if cfg.GeminiAPIKey != "" {
		client := ai.New(cfg.GeminiAPIKey)
		client.Model = cfg.GeminiModel
		suggester = client
	}

	logger.Info("starting rosyplans", logging.Operation("startup"), logging.Backend(cfg.StoreBackend))
	model := update.NewModelWithRuntime(store, suggester, update.ExecBrowserOpener{}, logger, cfg)
	program := tea.NewProgram(model)
	if _, err := program.Run(); err != nil {
		logger.Error("program exited", logging.Err(err))
		return err
	}
	return nil
}

func openStore(cfg update.RuntimeConfig) (storage.Store, error) {
	switch cfg.StoreBackend {
	case "file":
		return storage.NewFileStore(cfg.DBPath), nil
	case "sqlite":
		return storage.OpenSQLite(cfg.DBPath)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
