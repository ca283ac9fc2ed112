package main

import (
	"fmt"

	"github.com/rgehrsitz/marriagecalc/internal/compare"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare [scenario-file]",
	Short: "Compare a household married versus filing separately",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := appConfig(cmd)
		if err != nil {
			return err
		}
		logger := newLogger(cfg)

		scenario, err := loadScenario(cfg, args[0])
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		tabs, _ := cmd.Flags().GetStringSlice("tab")
		audit, _ := cmd.Flags().GetBool("audit")
		descriptions, _ := cmd.Flags().GetBool("descriptions")

		ctx, cancel := calcContext(cfg)
		defer cancel()

		engine := compare.NewCompareEngine(newEngine(cfg, logger))
		report, err := engine.Compare(ctx, scenario, compare.CompareOptions{
			Tabs:       tabs,
			Audit:      audit,
			IncludeRaw: format == "json",
		})
		if err != nil {
			return err
		}
		if audit && !compare.AllOK(report.Audit) {
			logger.Warnf("breakdowns do not reconcile with the aggregates for %s", scenario.Name)
		}

		out := cmd.OutOrStdout()
		switch format {
		case "table":
			fmt.Fprint(out, (&compare.TableFormatter{ShowDescriptions: descriptions}).Format(report))
		case "compact":
			fmt.Fprintln(out, (&compare.TableFormatter{}).FormatCompact(report))
			fmt.Fprintln(out, report.Verdict.Sentence(report.CurrencySymbol))
		case "csv":
			data, err := (&compare.CSVFormatter{}).Format(report)
			if err != nil {
				return err
			}
			fmt.Fprint(out, data)
		case "json":
			data, err := (&compare.JSONFormatter{Pretty: true}).Format(report)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, data)
		default:
			return fmt.Errorf("unknown format %q (table, compact, csv, json)", format)
		}
		return nil
	},
}

func init() {
	compareCmd.Flags().StringP("format", "f", "table", "Output format (table, compact, csv, json)")
	compareCmd.Flags().StringSlice("tab", nil, "Tables to print (summary, benefits, healthcare, credits, taxes, state); default all")
	compareCmd.Flags().Bool("audit", false, "Check that program breakdowns reconcile with the aggregates")
	compareCmd.Flags().Bool("descriptions", false, "Print a short description under each program")
}
