// Package projection replays a solar installation's finances month by month
// from install through the evaluation month.
package projection

import (
	"context"
	"log/slog"

	"github.com/raterudder/solarledger/pkg/battery"
	"github.com/raterudder/solarledger/pkg/financing"
	"github.com/raterudder/solarledger/pkg/log"
	"github.com/raterudder/solarledger/pkg/nem"
	"github.com/raterudder/solarledger/pkg/solar"
	"github.com/raterudder/solarledger/pkg/types"
	"github.com/raterudder/solarledger/pkg/utility"
)

// Project computes the summary for a profile as of p.Now. It only returns an
// error for a structurally invalid profile. Degenerate numeric inputs, like
// zero usage at install, are not guarded and surface as NaN or Inf figures.
func Project(ctx context.Context, p types.InstallationProfile) (types.ProjectionSummary, error) {
	if err := p.Validate(); err != nil {
		return types.ProjectionSummary{}, err
	}
	schedule, err := financing.New(p)
	if err != nil {
		return types.ProjectionSummary{}, err
	}
	arbitrage, err := battery.ArbitrageSavings(p.Battery, p.Utility)
	if err != nil {
		return types.ProjectionSummary{}, err
	}
	rateAt := func(year float64) float64 {
		return utility.MustRate(p.Utility, year, p.CareDiscount)
	}

	months := p.Installed.MonthsUntil(p.Now)
	years := float64(months) / 12
	growth := solar.ImpliedGrowthRate(p.UsageAtInstallKWH, p.CurrentUsageKWH, years)
	batteryMonthly := battery.MonthlyCost(p.Battery)
	fee := utility.ConnectionFee(p.NEM.Version)

	s := types.ProjectionSummary{
		MonthsSinceInstall:     months,
		YearsSinceInstall:      years,
		InitialUtilityRate:     rateAt(float64(p.Installed.Year)),
		CurrentUtilityRate:     rateAt(float64(p.Now.Year)),
		UsageGrowthRatePercent: growth * 100,
		PaymentStructure:       schedule.Structure(),
		TaxCredit:              schedule.CalculatedTaxCredit(),
		Yearly:                 []types.YearlyRecord{},
	}

	// the final year only replays the months elapsed in it, or a full year
	// when now is an exact anniversary, and only full years are recorded
	lastYear := months / 12
	var lastSolarPayment float64
	for year := 0; year <= lastYear; year++ {
		rate := rateAt(float64(p.Installed.Year + year))
		usage := solar.ProjectedUsage(p.UsageAtInstallKWH, growth, float64(year))
		production := solar.Degrade(p.AnnualProductionKWH, float64(year))
		impact := nem.Impact(production, usage, rate, p.NEM.Version, p.NEM.ExportRate)
		utilityWouldPay := usage / 12 * rate

		monthsInYear := 12
		if year == lastYear && months%12 != 0 {
			monthsInYear = months % 12
		}

		rec := types.YearlyRecord{
			Year:              p.Installed.Year + year,
			UtilityRate:       rate,
			ProjectedUsageKWH: usage,
			ProductionKWH:     production,
			UtilityCost:       utilityWouldPay * 12,
			BatteryCost:       batteryMonthly * 12,
			ConnectionFees:    fee * 12,
			ArbitrageSavings:  arbitrage,
			NEMImpact:         impact.Signed(),
			NetProductionKWH:  impact.Quantity,
		}
		for m := 0; m < monthsInYear; m++ {
			solarCost := schedule.Payment(year*12 + m)
			savings := utilityWouldPay - solarCost - batteryMonthly - fee + arbitrage/12 + impact.Signed()/12

			s.CumulativeSavings += savings
			s.CumulativeCost += solarCost
			s.CumulativeBatteryCost += batteryMonthly
			s.CumulativeArbitrageSavings += arbitrage / 12
			s.CumulativeNEMCredits += impact.Credit() / 12
			s.CumulativeTrueUpCharges += impact.TrueUp() / 12
			s.CumulativeConnectionFees += fee

			rec.SolarCost += solarCost
			rec.AnnualSavings += savings
			lastSolarPayment = solarCost
		}
		rec.CumulativeSavings = s.CumulativeSavings

		log.Ctx(ctx).DebugContext(
			ctx,
			"projected year",
			slog.Int("year", rec.Year),
			slog.Int("months", monthsInYear),
			slog.Float64("rate", rate),
			slog.Float64("usageKWH", usage),
			slog.Float64("productionKWH", production),
			slog.String("nem", string(impact.Type)),
			slog.Float64("savings", rec.AnnualSavings),
		)

		if monthsInYear == 12 {
			s.Yearly = append(s.Yearly, rec)
		}
	}

	s.CumulativeSavings += schedule.TaxCredit()
	s.PayoffCost = schedule.Payoff()
	s.CumulativeCost += s.PayoffCost

	s.TotalInvestment = schedule.TotalInvestment() + battery.ScheduledTotal(p.Battery)
	s.PaybackYears = s.TotalInvestment / (s.CumulativeSavings / years)
	s.PaybackMonths = s.PaybackYears * 12
	s.ROIPercent = s.CumulativeSavings / s.TotalInvestment * 100
	if months > 0 {
		s.AvgMonthlySavings = s.CumulativeSavings / float64(months)
	}

	s.RateIncreasePercent = (s.CurrentUtilityRate - s.InitialUtilityRate) / s.InitialUtilityRate * 100
	s.UtilityBillAtInstall = p.UsageAtInstallKWH / 12 * s.InitialUtilityRate
	s.UtilityBillNow = p.CurrentUsageKWH / 12 * s.CurrentUtilityRate
	s.UtilityBillIncreasePercent = (s.UtilityBillNow - s.UtilityBillAtInstall) / s.UtilityBillAtInstall * 100

	s.CurrentProductionKWH = solar.Degrade(p.AnnualProductionKWH, years)
	s.OffsetPercent = s.CurrentProductionKWH / p.CurrentUsageKWH * 100
	s.CurrentNEMImpact = nem.Impact(s.CurrentProductionKWH, p.CurrentUsageKWH, s.CurrentUtilityRate, p.NEM.Version, p.NEM.ExportRate)
	s.CurrentAnnualCost = (lastSolarPayment+batteryMonthly+fee)*12 + s.CurrentNEMImpact.TrueUp()

	log.Ctx(ctx).DebugContext(
		ctx,
		"projection complete",
		slog.Int("months", months),
		slog.Float64("cumulativeSavings", s.CumulativeSavings),
		slog.Float64("totalInvestment", s.TotalInvestment),
		slog.Int("yearlyRecords", len(s.Yearly)),
	)

	return s, nil
}
