package main

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/rgehrsitz/marriagecalc/internal/calculation"
	"github.com/rgehrsitz/marriagecalc/internal/compare"
	"github.com/rgehrsitz/marriagecalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var heatmapCmd = &cobra.Command{
	Use:   "heatmap [scenario-file]",
	Short: "Sweep both incomes and print the marriage delta grid",
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
		p, _, err := calculation.Resolve(scenario.Country)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		tab, _ := cmd.Flags().GetString("tab")
		stride, _ := cmd.Flags().GetInt("stride")

		ctx, cancel := calcContext(cfg)
		defer cancel()

		sweep, err := newEngine(cfg, logger).GetHeatmapData(ctx, p.ID, scenario.Household)
		if err != nil {
			return fmt.Errorf("failed to sweep scenario %s: %w", scenario.Name, err)
		}
		if tab == "" && len(sweep.Tabs) > 0 {
			tab = sweep.Tabs[0]
		}

		out := cmd.OutOrStdout()
		switch format {
		case "grid":
			gf := &compare.GridFormatter{Stride: stride, CurrencySymbol: p.CurrencySymbol}
			text, err := gf.Format(sweep, tab, scenario.Household.Head.Income, scenario.Household.SpouseIncome())
			if err != nil {
				return err
			}
			fmt.Fprint(out, text)
		case "csv":
			grid, ok := sweep.Grids[tab]
			if !ok {
				return fmt.Errorf("unknown heatmap tab %q", tab)
			}
			data, err := (&compare.CSVFormatter{}).FormatGrid(grid, sweep.Step)
			if err != nil {
				return err
			}
			fmt.Fprint(out, data)
		case "json":
			data, err := (&compare.JSONFormatter{}).Format(sweep)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, data)
		default:
			return fmt.Errorf("unknown format %q (grid, csv, json)", format)
		}
		return nil
	},
}

var cellCmd = &cobra.Command{
	Use:   "cell [sweep-file]",
	Short: "Rebuild the comparison for one cell of a saved heatmap sweep",
	Long: "Reads a sweep written by 'heatmap --format json' and prints the full comparison " +
		"for one grid cell without calling the engine",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := appConfig(cmd)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read sweep: %w", err)
		}
		var sweep domain.HeatmapSweep
		if err := json.Unmarshal(data, &sweep); err != nil {
			return fmt.Errorf("failed to parse sweep: %w", err)
		}

		countryID := cfg.DefaultCountry
		headIdx, _ := cmd.Flags().GetInt("head-index")
		spouseIdx, _ := cmd.Flags().GetInt("spouse-index")
		if cmd.Flags().Changed("you") {
			income, _ := cmd.Flags().GetFloat64("you")
			headIdx = sweep.IndexFor(income)
		}
		if cmd.Flags().Changed("partner") {
			income, _ := cmd.Flags().GetFloat64("partner")
			spouseIdx = sweep.IndexFor(income)
		}
		if headIdx < 0 || headIdx >= sweep.Count || spouseIdx < 0 || spouseIdx >= sweep.Count {
			return fmt.Errorf("cell (%d, %d) is outside the %dx%d grid", headIdx, spouseIdx, sweep.Count, sweep.Count)
		}

		p, cat, err := calculation.Resolve(countryID)
		if err != nil {
			return err
		}
		cmp, err := calculation.CellFromSweep(p.ID, &sweep, headIdx, spouseIdx)
		if err != nil {
			return err
		}

		money := func(v float64) string {
			return compare.FormatCurrency(decimal.NewFromFloat(v), p.CurrencySymbol)
		}
		report := &compare.Report{
			ScenarioName:   fmt.Sprintf("Cell you %s, partner %s", money(sweep.IncomeAt(headIdx)), money(sweep.IncomeAt(spouseIdx))),
			Country:        p.ID,
			CurrencySymbol: p.CurrencySymbol,
			Household: domain.Household{
				Head:   domain.Adult{Income: sweep.IncomeAt(headIdx)},
				Spouse: &domain.Adult{Income: sweep.IncomeAt(spouseIdx)},
			},
			Verdict: compare.NewVerdict(cmp),
			Tables:  compare.NewTableBuilder(cat).BuildAll(cmp, compare.TabsFor(p)),
		}
		fmt.Fprint(cmd.OutOrStdout(), (&compare.TableFormatter{}).Format(report))
		return nil
	},
}

func init() {
	heatmapCmd.Flags().StringP("format", "f", "grid", "Output format (grid, csv, json)")
	heatmapCmd.Flags().String("tab", "", "Heatmap view to print (default: net income)")
	heatmapCmd.Flags().Int("stride", 4, "Print every n-th income step")

	cellCmd.Flags().Int("head-index", 0, "Your income index on the sweep axis")
	cellCmd.Flags().Int("spouse-index", 0, "Your partner's income index on the sweep axis")
	cellCmd.Flags().Float64("you", 0, "Your income; picks the nearest index")
	cellCmd.Flags().Float64("partner", 0, "Your partner's income; picks the nearest index")
}
