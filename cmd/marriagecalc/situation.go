package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rgehrsitz/marriagecalc/internal/calculation"
	"github.com/rgehrsitz/marriagecalc/internal/compare"
	"github.com/rgehrsitz/marriagecalc/internal/country"
	"github.com/rgehrsitz/marriagecalc/internal/metadata"
	"github.com/rgehrsitz/marriagecalc/internal/situation"
	"github.com/spf13/cobra"
)

var situationCmd = &cobra.Command{
	Use:   "situation [scenario-file]",
	Short: "Print the request payload sent to the engine for one scenario leg",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := appConfig(cmd)
		if err != nil {
			return err
		}
		scenario, err := loadScenario(cfg, args[0])
		if err != nil {
			return err
		}
		p, cat, err := calculation.Resolve(scenario.Country)
		if err != nil {
			return err
		}

		leg, _ := cmd.Flags().GetString("leg")
		outputs, _ := cmd.Flags().GetBool("outputs")

		h := scenario.Household
		switch leg {
		case "married":
		case "head":
			h = h.HeadAlone()
		case "spouse":
			h = h.SpouseAlone()
		default:
			return fmt.Errorf("unknown leg %q (married, head, spouse)", leg)
		}

		sit := situation.Build(p, h)
		if outputs {
			situation.AddOutputVariables(p, cat, sit,
				situation.YearOrDefault(p, h.Year), situation.RegionOrDefault(p, h.Region))
		}
		if err := sit.Validate(); err != nil {
			return err
		}

		data, err := (&compare.JSONFormatter{Pretty: true}).Format(sit)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), data)
		return nil
	},
}

var metadataCmd = &cobra.Command{
	Use:   "metadata [country]",
	Short: "List the programs and regions the calculator reports for a country",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			out := cmd.OutOrStdout()
			for _, p := range country.All() {
				fmt.Fprintf(out, "%-4s %s (%s, default year %s)\n", p.ID, p.Name, p.CurrencySymbol, p.DefaultYear)
			}
			return nil
		}

		p, cat, err := calculation.Resolve(args[0])
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		if format == "json" {
			data, err := (&compare.JSONFormatter{Pretty: true}).Format(cat)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), data)
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), describeCatalog(p, cat))
		return nil
	},
}

func describeCatalog(p country.Profile, cat *metadata.Catalog) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s (%s)\n", p.Name, p.ID))
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Years: %s (default %s)\n", strings.Join(p.AvailableYears, ", "), p.DefaultYear))

	regions := make([]string, 0, len(p.Regions))
	for _, r := range p.Regions {
		regions = append(regions, r.Code)
	}
	sort.Strings(regions)
	sb.WriteString(fmt.Sprintf("%s codes: %s\n", p.RegionLabel, strings.Join(regions, " ")))

	for _, c := range cat.Categories() {
		if len(c.Descriptors) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("\n%s:\n", c.Name))
		for _, d := range c.Descriptors {
			sb.WriteString(fmt.Sprintf("  %-45s %-10s %s\n", d.Variable, d.Entity, d.Label))
		}
	}
	return sb.String()
}

func init() {
	situationCmd.Flags().String("leg", "married", "Scenario leg (married, head, spouse)")
	situationCmd.Flags().Bool("outputs", true, "Include the output variables the engine is asked to compute")

	metadataCmd.Flags().StringP("format", "f", "text", "Output format (text, json)")
}
