package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/marriagecalc/internal/calculation"
	"github.com/rgehrsitz/marriagecalc/internal/config"
	"github.com/rgehrsitz/marriagecalc/internal/logging"
	"github.com/rgehrsitz/marriagecalc/internal/simclient"
	"github.com/rgehrsitz/marriagecalc/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:          "marriagecalc-tui [scenario-file]",
	Short:        "Interactive marriage bonus and penalty heatmap",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func run(cmd *cobra.Command, args []string) error {
	scenarioPath := args[0]
	if _, err := os.Stat(scenarioPath); os.IsNotExist(err) {
		return fmt.Errorf("scenario file not found: %s", scenarioPath)
	}

	configPath, _ := cmd.Flags().GetString("config")
	envFile, _ := cmd.Flags().GetString("env-file")
	cfg, err := config.LoadAppConfig(configPath, envFile)
	if err != nil {
		return err
	}

	// Log lines would corrupt the alternate screen
	var logger logging.Logger = logging.NopLogger{}
	if cfg.Debug {
		f, err := tea.LogToFile("marriagecalc-tui.log", "debug")
		if err == nil {
			defer f.Close()
			logger = logging.StdLogger{Verbose: true}
		}
	}

	engine := calculation.NewEngine(simclient.New(cfg.APIBase, logger))
	engine.SetLogger(logger)

	p := tea.NewProgram(
		tui.NewModel(scenarioPath, engine, cfg.Timeout),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}

func init() {
	rootCmd.Flags().String("config", "", "Path to a YAML settings file")
	rootCmd.Flags().String("env-file", ".env", "Path to a .env file with MARRIAGECALC_ settings")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
