package types

import "github.com/shopspring/decimal"

// RoundTo rounds v half away from zero to the given decimal places. v must be
// finite.
func RoundTo(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// RoundDollars rounds v to cents.
func RoundDollars(v float64) float64 {
	return RoundTo(v, 2)
}

// FormatDollars formats v with exactly two decimal places.
func FormatDollars(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// Rounded returns a copy of the summary with every figure rounded the way it
// is displayed: dollars to cents, rates to a tenth of a cent, percentages and
// years to one decimal, energy to whole kWh. s must be finite.
func (s ProjectionSummary) Rounded() ProjectionSummary {
	out := s
	out.YearsSinceInstall = RoundTo(s.YearsSinceInstall, 1)
	out.CumulativeSavings = RoundDollars(s.CumulativeSavings)
	out.CumulativeCost = RoundDollars(s.CumulativeCost)
	out.CumulativeBatteryCost = RoundDollars(s.CumulativeBatteryCost)
	out.CumulativeArbitrageSavings = RoundDollars(s.CumulativeArbitrageSavings)
	out.CumulativeNEMCredits = RoundDollars(s.CumulativeNEMCredits)
	out.CumulativeTrueUpCharges = RoundDollars(s.CumulativeTrueUpCharges)
	out.CumulativeConnectionFees = RoundDollars(s.CumulativeConnectionFees)
	out.PayoffCost = RoundDollars(s.PayoffCost)
	out.AvgMonthlySavings = RoundDollars(s.AvgMonthlySavings)
	out.InitialUtilityRate = RoundTo(s.InitialUtilityRate, 3)
	out.CurrentUtilityRate = RoundTo(s.CurrentUtilityRate, 3)
	out.RateIncreasePercent = RoundTo(s.RateIncreasePercent, 1)
	out.UtilityBillAtInstall = RoundDollars(s.UtilityBillAtInstall)
	out.UtilityBillNow = RoundDollars(s.UtilityBillNow)
	out.UtilityBillIncreasePercent = RoundTo(s.UtilityBillIncreasePercent, 1)
	out.UsageGrowthRatePercent = RoundTo(s.UsageGrowthRatePercent, 1)
	out.CurrentProductionKWH = RoundTo(s.CurrentProductionKWH, 0)
	out.OffsetPercent = RoundTo(s.OffsetPercent, 0)
	out.TotalInvestment = RoundDollars(s.TotalInvestment)
	out.TaxCredit = RoundDollars(s.TaxCredit)
	out.PaybackYears = RoundTo(s.PaybackYears, 1)
	out.PaybackMonths = RoundTo(s.PaybackMonths, 1)
	out.ROIPercent = RoundTo(s.ROIPercent, 1)
	out.CurrentAnnualCost = RoundDollars(s.CurrentAnnualCost)
	out.CurrentNEMImpact.Amount = RoundDollars(s.CurrentNEMImpact.Amount)
	out.CurrentNEMImpact.Quantity = RoundTo(s.CurrentNEMImpact.Quantity, 0)
	out.CurrentNEMImpact.Rate = RoundTo(s.CurrentNEMImpact.Rate, 3)
	out.PaymentStructure.InitialPayment = RoundDollars(s.PaymentStructure.InitialPayment)
	out.PaymentStructure.ReducedPayment = RoundDollars(s.PaymentStructure.ReducedPayment)

	out.Yearly = make([]YearlyRecord, len(s.Yearly))
	for i, y := range s.Yearly {
		out.Yearly[i] = YearlyRecord{
			Year:              y.Year,
			UtilityRate:       RoundTo(y.UtilityRate, 3),
			ProjectedUsageKWH: RoundTo(y.ProjectedUsageKWH, 0),
			ProductionKWH:     RoundTo(y.ProductionKWH, 0),
			UtilityCost:       RoundTo(y.UtilityCost, 0),
			SolarCost:         RoundTo(y.SolarCost, 0),
			BatteryCost:       RoundTo(y.BatteryCost, 0),
			ConnectionFees:    RoundTo(y.ConnectionFees, 0),
			ArbitrageSavings:  RoundTo(y.ArbitrageSavings, 0),
			NEMImpact:         RoundTo(y.NEMImpact, 0),
			NetProductionKWH:  RoundTo(y.NetProductionKWH, 0),
			AnnualSavings:     RoundTo(y.AnnualSavings, 0),
			CumulativeSavings: RoundTo(y.CumulativeSavings, 0),
		}
	}
	return out
}
