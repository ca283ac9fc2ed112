package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/rgehrsitz/marriagecalc/internal/calculation"
	"github.com/rgehrsitz/marriagecalc/internal/config"
	"github.com/rgehrsitz/marriagecalc/internal/domain"
	"github.com/rgehrsitz/marriagecalc/internal/logging"
	"github.com/rgehrsitz/marriagecalc/internal/simclient"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "marriagecalc %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "marriagecalc",
	Short: "Marriage bonus and penalty calculator",
	Long: "Compares a household's taxes and benefits when married against the same two people " +
		"filing separately, using a remote microsimulation engine",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// appConfig loads the config file, .env and environment, then applies the
// command-line overrides
func appConfig(cmd *cobra.Command) (config.AppConfig, error) {
	flags := cmd.Flags()
	cfgPath, _ := flags.GetString("config")
	envFile, _ := flags.GetString("env-file")

	cfg, err := config.LoadAppConfig(cfgPath, envFile)
	if err != nil {
		return cfg, err
	}

	if flags.Changed("api-base") {
		cfg.APIBase, _ = flags.GetString("api-base")
	}
	if flags.Changed("country") {
		cfg.DefaultCountry, _ = flags.GetString("country")
	}
	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}
	if flags.Changed("timeout") {
		cfg.Timeout, _ = flags.GetDuration("timeout")
	}
	return cfg, cfg.Validate()
}

func newLogger(cfg config.AppConfig) logging.Logger {
	return logging.StdLogger{Verbose: cfg.Debug}
}

func newEngine(cfg config.AppConfig, logger logging.Logger) *calculation.Engine {
	engine := calculation.NewEngine(simclient.New(cfg.APIBase, logger))
	engine.SetLogger(logger)
	return engine
}

// calcContext bounds one command's calculations by the configured timeout
func calcContext(cfg config.AppConfig) (context.Context, context.CancelFunc) {
	if cfg.Timeout > 0 {
		return context.WithTimeout(context.Background(), cfg.Timeout)
	}
	return context.WithCancel(context.Background())
}

func loadScenario(cfg config.AppConfig, path string) (*domain.Scenario, error) {
	parser := config.NewInputParser()
	parser.DefaultCountry = cfg.DefaultCountry
	return parser.LoadFromFile(path)
}

var validateCmd = &cobra.Command{
	Use:   "validate [scenario-file]",
	Short: "Validate a scenario file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := appConfig(cmd)
		if err != nil {
			return err
		}
		if _, err := loadScenario(cfg, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Scenario file %s is valid\n", args[0])
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to a YAML settings file")
	pf.String("env-file", ".env", "Path to a .env file with MARRIAGECALC_ settings")
	pf.String("api-base", "", "Base URL of the microsimulation engine")
	pf.String("country", "", "Country used when a scenario file names none (us, uk)")
	pf.Bool("debug", false, "Enable debug logging")
	pf.Duration("timeout", 60*time.Second, "Overall budget for one command's calculations")

	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(heatmapCmd)
	rootCmd.AddCommand(cellCmd)
	rootCmd.AddCommand(situationCmd)
	rootCmd.AddCommand(metadataCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.SetFlags(0)
		log.Println(err)
		os.Exit(1)
	}
}
