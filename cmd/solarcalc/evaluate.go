package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/raterudder/solarledger/pkg/report"
	"github.com/raterudder/solarledger/pkg/types"
	"github.com/raterudder/solarledger/pkg/utility"
)

func newEvaluateCmd() *cobra.Command {
	var (
		profilePath string
		now         string
		asJSON      bool
	)
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Project and grade a profile",
		Long: "Project and grade a profile read from a YAML or JSON file. " +
			"Use - to read YAML from stdin.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProfile(cmd.InOrStdin(), profilePath)
			if err != nil {
				return err
			}
			p, err = prepareProfile(p, now, time.Now())
			if err != nil {
				return err
			}

			r := report.Build(cmd.Context(), p)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(r)
			}
			return writeReport(cmd.OutOrStdout(), r)
		},
	}
	cmd.Flags().StringVarP(&profilePath, "profile", "p", "", "path to the profile (.yaml, .yml or .json)")
	cmd.Flags().StringVar(&now, "now", "", "evaluation month as YYYY-MM, defaults to the profile's or the current month")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	_ = cmd.MarkFlagRequired("profile")
	return cmd
}

// loadProfile decodes JSON when the path ends in .json and YAML otherwise.
func loadProfile(stdin io.Reader, path string) (types.InstallationProfile, error) {
	var (
		b   []byte
		err error
	)
	if path == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return types.InstallationProfile{}, fmt.Errorf("failed to read profile: %w", err)
	}

	var p types.InstallationProfile
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(b, &p)
	} else {
		err = yaml.Unmarshal(b, &p)
	}
	if err != nil {
		return types.InstallationProfile{}, fmt.Errorf("failed to decode profile %s: %w", path, err)
	}
	return p, nil
}

// prepareProfile stamps the evaluation month, migrates old profiles and
// validates the result.
func prepareProfile(p types.InstallationProfile, now string, clock time.Time) (types.InstallationProfile, error) {
	switch {
	case now != "":
		ym, err := types.ParseYearMonth(now)
		if err != nil {
			return p, err
		}
		p.Now = ym
	case p.Now.IsZero():
		p.Now = types.YearMonthOf(clock.In(utility.Location()))
	}

	// an unversioned profile is taken as current
	if p.Version > 0 && p.Version < types.CurrentProfileVersion {
		migrated, _, err := types.MigrateProfile(p, p.Version)
		if err != nil {
			return p, fmt.Errorf("failed to migrate profile: %w", err)
		}
		p = migrated
	}
	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("invalid profile: %w", err)
	}
	return p, nil
}

func writeReport(out io.Writer, r types.Report) error {
	s := r.Summary
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	if r.Fallback {
		fmt.Fprintln(tw, "warning: the profile could not be projected, placeholder values are shown")
	}
	fmt.Fprintf(tw, "Grade %s (%s)\t%s\n", r.Score.Grade, r.Score.Status, r.Score.Message)
	fmt.Fprintf(tw, "\t%s\n\n", r.Score.Recommendation)

	fmt.Fprintf(tw, "Evaluated\t%s\n", r.Evaluated)
	fmt.Fprintf(tw, "Months since install\t%d\n", s.MonthsSinceInstall)
	fmt.Fprintf(tw, "Cumulative savings\t$%s\n", types.FormatDollars(s.CumulativeSavings))
	fmt.Fprintf(tw, "Average monthly savings\t$%s\n", types.FormatDollars(s.AvgMonthlySavings))
	fmt.Fprintf(tw, "Cumulative solar cost\t$%s\n", types.FormatDollars(s.CumulativeCost))
	if s.PayoffCost > 0 {
		fmt.Fprintf(tw, "Payoff\t$%s\n", types.FormatDollars(s.PayoffCost))
	}
	fmt.Fprintf(tw, "Total investment\t$%s\n", types.FormatDollars(s.TotalInvestment))
	fmt.Fprintf(tw, "Tax credit\t$%s\n", types.FormatDollars(s.TaxCredit))
	fmt.Fprintf(tw, "Payback\t%.1f years\n", s.PaybackYears)
	fmt.Fprintf(tw, "ROI\t%.1f%%\n", s.ROIPercent)
	fmt.Fprintf(tw, "Utility rate\t$%.3f -> $%.3f (%+.1f%%)\n", s.InitialUtilityRate, s.CurrentUtilityRate, s.RateIncreasePercent)
	fmt.Fprintf(tw, "Offset\t%.0f%%\n", s.OffsetPercent)
	fmt.Fprintf(tw, "Current NEM\t%s $%s (%.0f kWh @ $%.3f)\n", s.CurrentNEMImpact.Type, types.FormatDollars(s.CurrentNEMImpact.Amount), s.CurrentNEMImpact.Quantity, s.CurrentNEMImpact.Rate)
	fmt.Fprintf(tw, "Health\t%s (%.0f%% of expected)\n", r.Health.Status, r.Health.PerformanceRatio)
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(s.Yearly) == 0 {
		return nil
	}
	fmt.Fprintln(out)
	tw = tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Year\tRate\tUsage\tProduction\tUtility\tSolar\tBattery\tFees\tArbitrage\tNEM\tSavings\tCumulative\t")
	for _, y := range s.Yearly {
		fmt.Fprintf(
			tw,
			"%d\t%.3f\t%.0f\t%.0f\t%.0f\t%.0f\t%.0f\t%.0f\t%.0f\t%.0f\t%.0f\t%.0f\t\n",
			y.Year, y.UtilityRate, y.ProjectedUsageKWH, y.ProductionKWH, y.UtilityCost, y.SolarCost,
			y.BatteryCost, y.ConnectionFees, y.ArbitrageSavings, y.NEMImpact, y.AnnualSavings, y.CumulativeSavings,
		)
	}
	return tw.Flush()
}
