package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/raterudder/solarledger/pkg/types"
	"github.com/raterudder/solarledger/pkg/utility"
)

func newRatesCmd() *cobra.Command {
	var (
		u        string
		from, to int
		care     bool
	)
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Print the resolved utility rate for each year",
		RunE: func(cmd *cobra.Command, args []string) error {
			id := types.UtilityID(u)
			if !cmd.Flags().Changed("from") {
				first, _, err := utility.TableYears(id)
				if err != nil {
					return err
				}
				from = first
			}
			rates, err := utility.RatesBetween(id, from, to, care)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "Year\t$/kWh\tSource")
			for _, r := range rates {
				source := "published"
				if !r.Tabulated {
					source = "estimated"
				}
				fmt.Fprintf(tw, "%d\t%.3f\t%s\n", r.Year, r.DollarsPerKWH, source)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&u, "utility", "u", string(types.UtilitySCE), "utility: SCE, PGE or SDGE")
	cmd.Flags().IntVar(&from, "from", 0, "first year, defaults to the first published year")
	cmd.Flags().IntVar(&to, "to", time.Now().Year(), "last year")
	cmd.Flags().BoolVar(&care, "care", false, "apply the CARE discount")
	return cmd
}

func newDefaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the default profile as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := types.DefaultProfile(types.YearMonthOf(time.Now().In(utility.Location())))
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(p); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
